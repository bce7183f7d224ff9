// Package tracker converts the DSA practice workbook into the tracker website's JSON document.
package tracker

import (
	"time"

	"github.com/ukaji3/dsatracker-go/internal/logger"
)

// Default file locations, relative to the working directory.
const (
	DefaultInputPath  = "DSA_500_Problems_Roadmap.xlsx"
	DefaultOutputPath = "data.json"
)

// Options configures conversion and inspection.
type Options struct {
	// StrictHeaders fails the run when a header label does not match its
	// expected column. Otherwise mismatches are logged as warnings.
	StrictHeaders bool
	// IncludeCells adds raw cell rows to inspection reports.
	IncludeCells bool
	// Logger receives progress and skipped-row logs. Nil discards them.
	Logger *logger.Logger
	// Now supplies the generation timestamp. Nil means time.Now.
	Now func() time.Time
}

// DefaultOptions returns lenient header checking, no cell dump, a no-op
// logger and the wall clock.
func DefaultOptions() Options {
	return Options{
		Logger: logger.Nop(),
		Now:    time.Now,
	}
}

func (o Options) logger() *logger.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return logger.Nop()
}

func (o Options) now() time.Time {
	if o.Now != nil {
		return o.Now()
	}
	return time.Now()
}
