package export

import (
	"embed"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/xeipuuv/gojsonschema"

	"github.com/ansonlam23/algorithm-visualizer/pkg/replay"
)

//go:embed schema/trace.schema.json
var schemaFS embed.FS

var (
	compiledSchema *gojsonschema.Schema
	schemaOnce     sync.Once
	errSchema      error
)

func traceSchema() (*gojsonschema.Schema, error) {
	schemaOnce.Do(func() {
		data, err := schemaFS.ReadFile("schema/trace.schema.json")
		if err != nil {
			errSchema = fmt.Errorf("read embedded schema: %w", err)

			return
		}

		compiledSchema, err = gojsonschema.NewSchema(gojsonschema.NewBytesLoader(data))
		if err != nil {
			errSchema = fmt.Errorf("compile schema: %w", err)
		}
	})

	return compiledSchema, errSchema
}

// Schema returns the embedded JSON schema.
func Schema() []byte {
	data, err := schemaFS.ReadFile("schema/trace.schema.json")
	if err != nil {
		return nil
	}

	return data
}

// ValidationError lists every schema violation of a document.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", ErrInvalidDocument, strings.Join(e.Problems, "; "))
}

// Unwrap makes errors.Is(err, ErrInvalidDocument) hold.
func (e *ValidationError) Unwrap() error { return ErrInvalidDocument }

// Validate checks JSON bytes against the schema.
func Validate(data []byte) error {
	return validateLoader(gojsonschema.NewBytesLoader(data))
}

// ValidateValue checks an already decoded value against the schema.
func ValidateValue(value any) error {
	return validateLoader(gojsonschema.NewGoLoader(value))
}

func validateLoader(loader gojsonschema.JSONLoader) error {
	schema, err := traceSchema()
	if err != nil {
		return err
	}

	result, err := schema.Validate(loader)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDocument, err)
	}

	if result.Valid() {
		return nil
	}

	problems := make([]string, 0, len(result.Errors()))
	for _, resErr := range result.Errors() {
		problems = append(problems, fmt.Sprintf("%s: %s", resErr.Field(), resErr.Description()))
	}

	return &ValidationError{Problems: problems}
}

// CheckTrace verifies the structural properties every generated trace has:
// consecutive steps, slot indices, a single final complete snapshot carrying
// the total, every snapshot a permutation of the input, and final values in
// ascending order.
func CheckTrace(doc Document) error {
	var problems []string

	want := slices.Sorted(slices.Values(doc.Input))
	last := len(doc.Trace) - 1

	for i, snap := range doc.Trace {
		if snap.Step != i {
			problems = append(problems, fmt.Sprintf("trace[%d]: step %d", i, snap.Step))
		}

		if snap.IsComplete != (i == last) {
			problems = append(problems, fmt.Sprintf("trace[%d]: isComplete %t", i, snap.IsComplete))
		}

		for slot, el := range snap.Array {
			if el.Index != slot {
				problems = append(problems, fmt.Sprintf("trace[%d].array[%d]: index %d", i, slot, el.Index))
			}
		}

		if !slices.Equal(slices.Sorted(slices.Values(snap.Values())), want) {
			problems = append(problems, fmt.Sprintf("trace[%d]: not a permutation of the input", i))
		}
	}

	if last >= 0 {
		final := doc.Trace[last]

		if final.TotalSteps != last {
			problems = append(problems, fmt.Sprintf("final totalSteps %d, want %d", final.TotalSteps, last))
		}

		if len(final.IndicesWith(replay.StatusSorted)) != len(final.Array) {
			problems = append(problems, "final snapshot not fully sorted")
		}

		if !slices.IsSorted(final.Values()) {
			problems = append(problems, "final values not ascending")
		}
	}

	if len(problems) > 0 {
		return &ValidationError{Problems: problems}
	}

	return nil
}
