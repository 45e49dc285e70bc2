package export_test

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ansonlam23/algorithm-visualizer/internal/export"
	"github.com/ansonlam23/algorithm-visualizer/pkg/replay"
	"github.com/ansonlam23/algorithm-visualizer/pkg/sorting"
)

func sampleDocument(t *testing.T) export.Document {
	t.Helper()

	input := []int{5, 3, 8, 1, 3}

	res, err := sorting.Run(sorting.HeapSortName, input)
	require.NoError(t, err)

	return export.NewDocument(res, input)
}

func TestWriteRead_AllFormats(t *testing.T) {
	t.Parallel()

	doc := sampleDocument(t)

	for _, format := range []export.Format{export.FormatJSON, export.FormatYAML, export.FormatLZ4} {
		t.Run(string(format), func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer

			require.NoError(t, export.Write(&buf, doc, format))

			got, err := export.Read(&buf, format)
			require.NoError(t, err)
			assert.Equal(t, doc, got)
		})
	}
}

func TestWriteFile_InfersFormat(t *testing.T) {
	t.Parallel()

	doc := sampleDocument(t)
	dir := t.TempDir()

	jsonSize, err := export.WriteFile(filepath.Join(dir, "trace.json"), doc)
	require.NoError(t, err)

	lz4Size, err := export.WriteFile(filepath.Join(dir, "trace.lz4"), doc)
	require.NoError(t, err)
	assert.Less(t, lz4Size, jsonSize)

	got, err := export.ReadFile(filepath.Join(dir, "trace.lz4"))
	require.NoError(t, err)
	assert.Equal(t, doc.Algorithm, got.Algorithm)

	_, err = export.WriteFile(filepath.Join(dir, "trace.csv"), doc)
	require.ErrorIs(t, err, export.ErrUnknownFormat)
}

func TestParseFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in       string
		expected export.Format
		wantErr  bool
	}{
		{in: "json", expected: export.FormatJSON},
		{in: "YAML", expected: export.FormatYAML},
		{in: "yml", expected: export.FormatYAML},
		{in: "lz4", expected: export.FormatLZ4},
		{in: "xml", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()

			got, err := export.ParseFormat(tt.in)
			if tt.wantErr {
				require.ErrorIs(t, err, export.ErrUnknownFormat)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestValidate_Schema(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	require.NoError(t, export.Write(&buf, sampleDocument(t), export.FormatJSON))
	require.NoError(t, export.Validate(buf.Bytes()))

	var doc map[string]any

	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))

	doc["algorithm"] = "bogo-sort"
	delete(doc, "counters")

	err := export.ValidateValue(doc)
	require.ErrorIs(t, err, export.ErrInvalidDocument)

	var verr *export.ValidationError

	require.ErrorAs(t, err, &verr)
	assert.Len(t, verr.Problems, 2)
}

func TestValidate_BadStatus(t *testing.T) {
	t.Parallel()

	doc := sampleDocument(t)
	doc.Trace[0].Array[0].Status = "glowing"

	data, err := json.Marshal(doc)
	require.NoError(t, err)

	require.ErrorIs(t, export.Validate(data), export.ErrInvalidDocument)
}

func TestCheckTrace(t *testing.T) {
	t.Parallel()

	require.NoError(t, export.CheckTrace(sampleDocument(t)))

	tests := []struct {
		name   string
		mutate func(doc *export.Document)
	}{
		{name: "step_gap", mutate: func(doc *export.Document) { doc.Trace[2].Step = 7 }},
		{name: "early_complete", mutate: func(doc *export.Document) { doc.Trace[1].IsComplete = true }},
		{name: "wrong_total", mutate: func(doc *export.Document) { doc.Trace[len(doc.Trace)-1].TotalSteps = 1 }},
		{name: "bad_index", mutate: func(doc *export.Document) { doc.Trace[0].Array[1].Index = 0 }},
		{name: "value_lost", mutate: func(doc *export.Document) { doc.Trace[3].Array[0].Value = 99 }},
		{
			name: "final_unsorted",
			mutate: func(doc *export.Document) {
				doc.Trace[len(doc.Trace)-1].Array[0].Status = replay.StatusDefault
			},
		},
		{
			name: "final_out_of_order",
			mutate: func(doc *export.Document) {
				final := doc.Trace[len(doc.Trace)-1].Array
				final[0].Value, final[len(final)-1].Value = final[len(final)-1].Value, final[0].Value
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			doc := sampleDocument(t)
			tt.mutate(&doc)

			require.ErrorIs(t, export.CheckTrace(doc), export.ErrInvalidDocument)
		})
	}
}

func TestRead_RejectsGarbage(t *testing.T) {
	t.Parallel()

	_, err := export.Read(bytes.NewBufferString("{not json"), export.FormatJSON)
	require.ErrorIs(t, err, export.ErrInvalidDocument)

	_, err = export.Read(bytes.NewBufferString("{}"), export.Format("xml"))
	require.ErrorIs(t, err, export.ErrUnknownFormat)
}

func TestSchema_Embedded(t *testing.T) {
	t.Parallel()

	assert.Contains(t, string(export.Schema()), "sortviz trace document")
}
