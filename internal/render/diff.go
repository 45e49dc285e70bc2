package render

import (
	"strconv"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/ansonlam23/algorithm-visualizer/pkg/replay"
)

// StepDiff shows how the values changed between two snapshots: removed
// values in the comparing colour, inserted ones in the sorted colour.
func (r *Renderer) StepDiff(prev, next replay.Snapshot) string {
	dmp := diffmatchpatch.New()

	src, dst, lines := dmp.DiffLinesToRunes(valueLines(prev), valueLines(next))
	diffs := dmp.DiffCharsToLines(dmp.DiffMainRunes(src, dst, false), lines)

	var sb strings.Builder

	for _, d := range diffs {
		for _, value := range strings.Fields(d.Text) {
			switch d.Type {
			case diffmatchpatch.DiffDelete:
				sb.WriteString(r.palette.paint(replay.StatusComparing, "-"+value))
			case diffmatchpatch.DiffInsert:
				sb.WriteString(r.palette.paint(replay.StatusSorted, "+"+value))
			case diffmatchpatch.DiffEqual:
				sb.WriteString(" " + value)
			}

			sb.WriteByte(' ')
		}
	}

	return strings.TrimRight(sb.String(), " ") + "\n"
}

// valueLines puts one value per line so the line-mode diff works per element.
func valueLines(snap replay.Snapshot) string {
	var sb strings.Builder

	for _, el := range snap.Array {
		sb.WriteString(strconv.Itoa(el.Value))
		sb.WriteByte('\n')
	}

	return sb.String()
}
