// Package output serializes tracker documents and reports.
package output

import (
	"bytes"
	"encoding/json"

	"github.com/ukaji3/dsatracker-go/pkg/tracker/models"
)

// ToJSON serializes a document. Non-ASCII and HTML characters are written
// as-is; pretty uses 2-space indentation.
func ToJSON(doc *models.Document, pretty bool) ([]byte, error) {
	return marshal(doc, pretty)
}

// ReportToJSON serializes an inspection report.
func ReportToJSON(report *models.WorkbookReport, pretty bool) ([]byte, error) {
	return marshal(report, pretty)
}

func marshal(v interface{}, pretty bool) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return unescapeLineSeparators(bytes.TrimSuffix(buf.Bytes(), []byte("\n"))), nil
}

// unescapeLineSeparators turns the \u2028 and \u2029 escapes encoding/json
// always emits back into raw runes. An escaped backslash followed by the
// letters u2028 is left alone.
func unescapeLineSeparators(data []byte) []byte {
	if !bytes.Contains(data, []byte(`\u202`)) {
		return data
	}
	out := make([]byte, 0, len(data))
	for i := 0; i < len(data); i++ {
		if data[i] != '\\' || i+1 >= len(data) {
			out = append(out, data[i])
			continue
		}
		switch rest := data[i+1:]; {
		case bytes.HasPrefix(rest, []byte("u2028")):
			out = append(out, "\u2028"...)
			i += 5
		case bytes.HasPrefix(rest, []byte("u2029")):
			out = append(out, "\u2029"...)
			i += 5
		default:
			out = append(out, data[i], data[i+1])
			i++
		}
	}
	return out
}
