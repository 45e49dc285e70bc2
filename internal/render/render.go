// Package render draws traces in the terminal: coloured bar frames, trace
// and comparison tables, and step-to-step diffs.
package render

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/ansonlam23/algorithm-visualizer/pkg/replay"
)

const (
	// DefaultWidth is used when neither the option nor COLUMNS sets one.
	DefaultWidth = 80
	minBarWidth  = 10
	barGlyph     = "█"
	negGlyph     = "▒"
)

// Options controls terminal output.
type Options struct {
	Theme            string
	NoColor          bool
	Width            int
	ShowDescriptions bool
}

// Renderer writes frames and tables to w.
type Renderer struct {
	w       io.Writer
	opts    Options
	palette palette
}

// New creates a renderer. Width 0 falls back to TerminalWidth; NO_COLOR in
// the environment forces monochrome.
func New(w io.Writer, opts Options) *Renderer {
	if opts.Width <= 0 {
		opts.Width = TerminalWidth()
	}

	if os.Getenv("NO_COLOR") != "" {
		opts.NoColor = true
	}

	return &Renderer{w: w, opts: opts, palette: newPalette(opts.Theme, opts.NoColor)}
}

// TerminalWidth reads COLUMNS, defaulting to DefaultWidth.
func TerminalWidth() int {
	cols, err := strconv.Atoi(os.Getenv("COLUMNS"))
	if err != nil || cols <= 0 {
		return DefaultWidth
	}

	return cols
}

// Frame writes one snapshot: a header, one bar per element, and the
// description when enabled.
func (r *Renderer) Frame(snap replay.Snapshot, totalSteps int) error {
	_, err := io.WriteString(r.w, r.FrameString(snap, totalSteps))
	if err != nil {
		return fmt.Errorf("write frame: %w", err)
	}

	return nil
}

// FrameString is Frame into a string.
func (r *Renderer) FrameString(snap replay.Snapshot, totalSteps int) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Step %d/%d", snap.Step, totalSteps)

	if snap.IsComplete {
		sb.WriteString(" (complete)")
	}

	sb.WriteByte('\n')
	sb.WriteString(r.Bars(snap))

	if r.opts.ShowDescriptions && snap.Description != "" {
		sb.WriteString(snap.Description)
		sb.WriteByte('\n')
	}

	return sb.String()
}

// Bars renders one horizontal bar per element, scaled to the widest value.
func (r *Renderer) Bars(snap replay.Snapshot) string {
	if len(snap.Array) == 0 {
		return "(empty)\n"
	}

	maxAbs := 1
	valueWidth := 1

	for _, el := range snap.Array {
		maxAbs = max(maxAbs, abs(el.Value))
		valueWidth = max(valueWidth, len(strconv.Itoa(el.Value)))
	}

	indexWidth := len(strconv.Itoa(len(snap.Array) - 1))
	barWidth := max(minBarWidth, r.opts.Width-indexWidth-valueWidth-4)

	var sb strings.Builder

	for _, el := range snap.Array {
		length := abs(el.Value) * barWidth / maxAbs
		if el.Value != 0 {
			length = max(length, 1)
		}

		glyph := barGlyph
		if el.Value < 0 {
			glyph = negGlyph
		}

		bar := r.palette.paint(el.Status, strings.Repeat(glyph, length))
		fmt.Fprintf(&sb, "%*d │%s %d\n", indexWidth, el.Index, bar, el.Value)
	}

	return sb.String()
}

// Legend lists every status in its colour.
func (r *Renderer) Legend() string {
	parts := make([]string, 0, len(replay.Statuses()))
	for _, status := range replay.Statuses() {
		parts = append(parts, r.palette.paint(status, barGlyph+" "+string(status)))
	}

	return strings.Join(parts, "  ") + "\n"
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
