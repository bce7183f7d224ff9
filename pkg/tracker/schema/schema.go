// Package schema checks serialized tracker documents.
package schema

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"github.com/ukaji3/dsatracker-go/pkg/tracker/models"
)

//go:embed document.schema.json
var documentSchema []byte

const schemaURL = "schema://document.json"

var (
	compileOnce sync.Once
	compiled    *jsonschema.Schema
	compileErr  error
)

// ValidationError reports a document that fails the schema or an invariant.
type ValidationError struct {
	Err error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid document: %v", e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Validate checks raw JSON against the document schema and then against the
// cross-field invariants the schema cannot express.
func Validate(raw []byte) error {
	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return &ValidationError{Err: fmt.Errorf("invalid JSON: %w", err)}
	}

	sch, err := compile()
	if err != nil {
		return fmt.Errorf("compile document schema: %w", err)
	}
	if err := sch.Validate(inst); err != nil {
		return &ValidationError{Err: fmt.Errorf("schema validation failed: %w", err)}
	}

	var doc models.Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return &ValidationError{Err: fmt.Errorf("decode document: %w", err)}
	}
	return CheckInvariants(&doc)
}

// CheckInvariants verifies metadata against the problem list: totals match,
// difficulty counts do not exceed the total, and the value sets are sorted
// without duplicates.
func CheckInvariants(doc *models.Document) error {
	var errs []error
	m := doc.Metadata

	if m.TotalProblems != len(doc.Problems) {
		errs = append(errs, fmt.Errorf("totalProblems is %d but there are %d problems", m.TotalProblems, len(doc.Problems)))
	}
	if sum := m.TotalEasy + m.TotalMedium + m.TotalHard; sum > m.TotalProblems {
		errs = append(errs, fmt.Errorf("difficulty totals sum to %d, more than totalProblems %d", sum, m.TotalProblems))
	}
	for _, set := range []struct {
		name   string
		values []string
	}{
		{"topics", m.Topics},
		{"priorities", m.Priorities},
		{"patterns", m.Patterns},
	} {
		if !strictlySorted(set.values) {
			errs = append(errs, fmt.Errorf("%s is not sorted and unique", set.name))
		}
	}

	if len(errs) > 0 {
		return &ValidationError{Err: errors.Join(errs...)}
	}
	return nil
}

func strictlySorted(values []string) bool {
	if !sort.StringsAreSorted(values) {
		return false
	}
	for i := 1; i < len(values); i++ {
		if values[i] == values[i-1] {
			return false
		}
	}
	return true
}

func compile() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		def, err := jsonschema.UnmarshalJSON(bytes.NewReader(documentSchema))
		if err != nil {
			compileErr = fmt.Errorf("parse schema definition: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource(schemaURL, def); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiled, compileErr = c.Compile(schemaURL)
	})
	return compiled, compileErr
}
