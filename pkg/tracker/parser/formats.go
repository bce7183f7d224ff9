package parser

import (
	"github.com/xuri/excelize/v2"
	"github.com/xuri/nfp"
)

// isDateFormat reports whether a number format code renders a date or time.
// Only the first (positive) section is considered.
func isDateFormat(code string) bool {
	tokenizer := nfp.NumberFormatParser()
	sections := tokenizer.Parse(code)
	if len(sections) == 0 {
		return false
	}
	for _, token := range sections[0].Items {
		switch token.TType {
		case nfp.TokenTypeDateTimes, nfp.TokenTypeElapsedDateTimes:
			return true
		}
	}
	return false
}

// isBuiltInDateFmt reports whether a built-in number format ID is a date or
// time format, counting the East Asian locale date formats.
func isBuiltInDateFmt(id int) bool {
	switch {
	case id >= 14 && id <= 22, id >= 45 && id <= 47:
		return true
	case id >= 27 && id <= 36, id >= 50 && id <= 58:
		return true
	}
	return false
}

// dateStyles answers whether a cell's style formats it as a date, caching
// the answer per style index.
type dateStyles struct {
	f     *excelize.File
	known map[int]bool
}

func newDateStyles(f *excelize.File) *dateStyles {
	return &dateStyles{f: f, known: make(map[int]bool)}
}

func (d *dateStyles) isDate(sheet, cell string) (bool, error) {
	idx, err := d.f.GetCellStyle(sheet, cell)
	if err != nil {
		return false, err
	}
	if v, ok := d.known[idx]; ok {
		return v, nil
	}
	var v bool
	// Workbooks without a style sheet have no formats to look up.
	if style, err := d.f.GetStyle(idx); err == nil {
		v = isBuiltInDateFmt(style.NumFmt)
		if style.CustomNumFmt != nil {
			v = isDateFormat(*style.CustomNumFmt)
		}
	}
	d.known[idx] = v
	return v, nil
}
