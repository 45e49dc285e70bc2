package render

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/ansonlam23/algorithm-visualizer/internal/bench"
	"github.com/ansonlam23/algorithm-visualizer/pkg/replay"
	"github.com/ansonlam23/algorithm-visualizer/pkg/sorting"
)

func newTable() table.Writer {
	tbl := table.NewWriter()
	tbl.SetStyle(table.StyleLight)
	tbl.Style().Options.SeparateRows = false
	tbl.Style().Options.DrawBorder = false

	return tbl
}

// TraceTable lists every snapshot: step, values with status marks, and the
// description.
func (r *Renderer) TraceTable(trace replay.Trace) string {
	tbl := newTable()
	tbl.AppendHeader(table.Row{"Step", "Values", "Description"})

	for _, snap := range trace {
		tbl.AppendRow(table.Row{snap.Step, r.markedValues(snap), snap.Description})
	}

	tbl.AppendFooter(table.Row{"", "Total steps", humanize.Comma(int64(trace.TotalSteps()))})

	return tbl.Render() + "\n"
}

// markedValues colours each value by its status.
func (r *Renderer) markedValues(snap replay.Snapshot) string {
	parts := make([]string, len(snap.Array))
	for i, el := range snap.Array {
		parts[i] = r.palette.paint(el.Status, strconv.Itoa(el.Value))
	}

	return strings.Join(parts, " ")
}

// AlgorithmTable describes the catalog.
func (r *Renderer) AlgorithmTable(infos []sorting.Info) string {
	tbl := newTable()
	tbl.AppendHeader(table.Row{"Name", "Title", "Time", "Space", "Best", "Average", "Worst"})

	for _, info := range infos {
		tbl.AppendRow(table.Row{
			info.Name, info.Title, info.TimeComplexity, info.SpaceComplexity,
			info.BestCase, info.AverageCase, info.WorstCase,
		})
	}

	out := tbl.Render() + "\n"

	if r.opts.ShowDescriptions {
		var sb strings.Builder

		sb.WriteString(out)

		for _, info := range infos {
			fmt.Fprintf(&sb, "\n%s: %s", info.Title, info.Description)
		}

		sb.WriteByte('\n')

		return sb.String()
	}

	return out
}

// CompareTable summarises runs of several algorithms over one input.
func (r *Renderer) CompareTable(results []sorting.Result) string {
	tbl := newTable()
	tbl.AppendHeader(table.Row{"Algorithm", "Steps", "Comparisons", "Exchanges"})

	fewest := -1
	for _, res := range results {
		if fewest < 0 || res.Trace.TotalSteps() < fewest {
			fewest = res.Trace.TotalSteps()
		}
	}

	for _, res := range results {
		steps := humanize.Comma(int64(res.Trace.TotalSteps()))
		if res.Trace.TotalSteps() == fewest {
			steps = r.palette.paint(replay.StatusSorted, steps)
		}

		tbl.AppendRow(table.Row{
			res.Algorithm,
			steps,
			humanize.Comma(int64(res.Counters.Comparisons)),
			humanize.Comma(int64(res.Counters.Exchanges)),
		})
	}

	return tbl.Render() + "\n"
}

// BenchTable prints mean, median and p95 per algorithm and counter.
func (r *Renderer) BenchTable(report bench.Report) string {
	tbl := newTable()
	tbl.SetTitle("%s runs, size %d, seed %d, %s",
		humanize.Comma(int64(report.Runs)), report.Size, report.Seed, report.Elapsed.Round(time.Millisecond))
	tbl.AppendHeader(table.Row{"Algorithm", "Counter", "Mean", "Median", "P95", "Min", "Max"})

	for _, alg := range report.Algorithms {
		for _, row := range []struct {
			name string
			sum  bench.Summary
		}{
			{"steps", alg.Steps},
			{"comparisons", alg.Comparisons},
			{"exchanges", alg.Exchanges},
		} {
			tbl.AppendRow(table.Row{
				alg.Algorithm, row.name,
				fmt.Sprintf("%.1f ± %.1f", row.sum.Mean, row.sum.StdDev),
				fmt.Sprintf("%.1f", row.sum.Median),
				fmt.Sprintf("%.1f", row.sum.P95),
				row.sum.Min, row.sum.Max,
			})
		}

		tbl.AppendSeparator()
	}

	return tbl.Render() + "\n"
}
