package parser

import (
	"github.com/ukaji3/dsatracker-go/pkg/tracker/models"
)

// LoadTopicSummary converts the topic summary rows. Rows with a blank topic
// and the TOTAL row are skipped. Blank counts become 0; non-numeric counts
// fail with a *TypeConversionError.
func LoadTopicSummary(sheet *Sheet) ([]models.TopicSummaryEntry, []models.SkippedRow, error) {
	entries := make([]models.TopicSummaryEntry, 0, len(sheet.Rows))
	var skipped []models.SkippedRow

	for _, row := range sheet.Rows {
		topic := row.Text(colSummaryTopic)
		switch topic {
		case "":
			skipped = append(skipped, models.SkippedRow{
				Sheet:  sheet.Name,
				Row:    row.Num,
				Reason: missingReason(row, "topic"),
			})
			continue
		case TotalSentinel:
			continue
		}

		entry := models.TopicSummaryEntry{
			Topic:       topic,
			KeyPatterns: row.Text(colKeyPatterns),
		}
		counts := []struct {
			col int
			dst *int
		}{
			{colTotal, &entry.Total},
			{colEasy, &entry.Easy},
			{colMedium, &entry.Medium},
			{colHard, &entry.Hard},
		}
		for _, c := range counts {
			n, err := countCell(sheet.Name, row, c.col)
			if err != nil {
				return nil, nil, err
			}
			*c.dst = n
		}

		entries = append(entries, entry)
	}

	return entries, skipped, nil
}

func countCell(sheetName string, row Row, col int) (int, error) {
	s := row.Text(col)
	if s == "" {
		return 0, nil
	}
	n, ok := parseInt(s)
	if !ok {
		return 0, &TypeConversionError{
			Sheet:  sheetName,
			Row:    row.Num,
			Column: TopicSummaryColumns[col].Label,
			Value:  s,
			Err:    ErrNotNumeric,
		}
	}
	return n, nil
}
