// Package export reads and writes trace documents as JSON, YAML or
// lz4-compressed JSON, and validates them against the embedded schema.
package export

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pierrec/lz4/v4"
	"gopkg.in/yaml.v3"

	"github.com/ansonlam23/algorithm-visualizer/pkg/replay"
	"github.com/ansonlam23/algorithm-visualizer/pkg/sorting"
)

// DocumentVersion is the current document format version.
const DocumentVersion = 1

// Format is a document encoding.
type Format string

// Supported formats.
const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatLZ4  Format = "lz4"
)

// Sentinel errors.
var (
	// ErrUnknownFormat indicates an unsupported encoding name or extension.
	ErrUnknownFormat = errors.New("unknown export format")
	// ErrInvalidDocument indicates a document failed schema or trace checks.
	ErrInvalidDocument = errors.New("invalid trace document")
)

// Document is the persisted form of one generator run.
type Document struct {
	Version   int               `json:"version"   yaml:"version"`
	Algorithm sorting.Algorithm `json:"algorithm" yaml:"algorithm"`
	Input     []int             `json:"input"     yaml:"input"`
	Counters  replay.Counters   `json:"counters"  yaml:"counters"`
	Trace     replay.Trace      `json:"trace"     yaml:"trace"`
}

// NewDocument wraps a run and the input it was generated from.
func NewDocument(res sorting.Result, input []int) Document {
	in := make([]int, len(input))
	copy(in, input)

	return Document{
		Version:   DocumentVersion,
		Algorithm: res.Algorithm,
		Input:     in,
		Counters:  res.Counters,
		Trace:     res.Trace,
	}
}

// ParseFormat resolves a format name.
func ParseFormat(name string) (Format, error) {
	switch Format(strings.ToLower(name)) {
	case FormatJSON:
		return FormatJSON, nil
	case FormatYAML, "yml":
		return FormatYAML, nil
	case FormatLZ4:
		return FormatLZ4, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
}

// FormatFromPath infers the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return "", fmt.Errorf("%w: %s has no extension", ErrUnknownFormat, path)
	}

	return ParseFormat(ext)
}

// Write encodes doc to w.
func Write(w io.Writer, doc Document, format Format) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")

		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}

		return nil
	case FormatYAML:
		enc := yaml.NewEncoder(w)

		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}

		if err := enc.Close(); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}

		return nil
	case FormatLZ4:
		zw := lz4.NewWriter(w)

		if err := json.NewEncoder(zw).Encode(doc); err != nil {
			return fmt.Errorf("encode lz4: %w", err)
		}

		if err := zw.Close(); err != nil {
			return fmt.Errorf("close lz4 stream: %w", err)
		}

		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// Read decodes and validates a document from r.
func Read(r io.Reader, format Format) (Document, error) {
	raw, err := decodeRaw(r, format)
	if err != nil {
		return Document{}, err
	}

	if err := ValidateValue(raw); err != nil {
		return Document{}, err
	}

	data, err := json.Marshal(raw)
	if err != nil {
		return Document{}, fmt.Errorf("normalise document: %w", err)
	}

	var doc Document

	if err := json.Unmarshal(data, &doc); err != nil {
		return Document{}, fmt.Errorf("decode document: %w", err)
	}

	if err := CheckTrace(doc); err != nil {
		return Document{}, err
	}

	return doc, nil
}

// WriteFile writes doc to path, picking the format from the extension.
func WriteFile(path string, doc Document) (int64, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return 0, err
	}

	var buf bytes.Buffer

	if err := Write(&buf, doc, format); err != nil {
		return 0, err
	}

	if err := os.WriteFile(path, buf.Bytes(), 0o600); err != nil {
		return 0, fmt.Errorf("write %s: %w", path, err)
	}

	return int64(buf.Len()), nil
}

// ReadFile reads and validates the document at path.
func ReadFile(path string) (Document, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return Document{}, err
	}

	f, err := os.Open(path)
	if err != nil {
		return Document{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	return Read(f, format)
}

// decodeRaw decodes into generic values so the schema sees the document
// exactly as stored.
func decodeRaw(r io.Reader, format Format) (any, error) {
	var raw any

	switch format {
	case FormatJSON:
		if err := json.NewDecoder(r).Decode(&raw); err != nil {
			return nil, fmt.Errorf("%w: decode json: %w", ErrInvalidDocument, err)
		}
	case FormatYAML:
		if err := yaml.NewDecoder(r).Decode(&raw); err != nil {
			return nil, fmt.Errorf("%w: decode yaml: %w", ErrInvalidDocument, err)
		}
	case FormatLZ4:
		if err := json.NewDecoder(lz4.NewReader(r)).Decode(&raw); err != nil {
			return nil, fmt.Errorf("%w: decode lz4: %w", ErrInvalidDocument, err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	return raw, nil
}
