package output

import (
	"fmt"
	"io"

	"github.com/ukaji3/dsatracker-go/pkg/tracker/models"
)

// WriteSummary prints the human-readable run summary for a written document.
func WriteSummary(w io.Writer, name string, doc *models.Document) error {
	m := doc.Metadata
	_, err := fmt.Fprintf(w, `Generated %s:
  Problems: %d
  Study Plan entries: %d
  Topic summaries: %d
  Difficulties: Easy=%d, Medium=%d, Hard=%d
  Topics: %d
  Patterns: %d
`,
		name,
		len(doc.Problems),
		len(doc.StudyPlan),
		len(doc.TopicSummary),
		m.TotalEasy, m.TotalMedium, m.TotalHard,
		len(m.Topics),
		len(m.Patterns),
	)
	return err
}
