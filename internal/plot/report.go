package plot

import (
	"fmt"
	"io"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/ansonlam23/algorithm-visualizer/internal/render"
	"github.com/ansonlam23/algorithm-visualizer/pkg/replay"
	"github.com/ansonlam23/algorithm-visualizer/pkg/sorting"
)

// DefaultFrames is the number of sampled snapshots drawn as bar frames.
const DefaultFrames = 6

const (
	frameHeight = "320px"
	chartHeight = "420px"
	fullWidth   = "100%"
)

// Options controls report content.
type Options struct {
	Frames int
	Theme  Theme
}

// SampleFrames picks up to n evenly spaced snapshot indices, always
// including the first and the last.
func SampleFrames(trace replay.Trace, n int) []int {
	if len(trace) == 0 || n <= 0 {
		return nil
	}

	if n >= len(trace) {
		out := make([]int, len(trace))
		for i := range out {
			out[i] = i
		}

		return out
	}

	if n == 1 {
		return []int{len(trace) - 1}
	}

	out := make([]int, 0, n)
	last := len(trace) - 1

	for i := range n {
		idx := i * last / (n - 1)
		if len(out) > 0 && out[len(out)-1] == idx {
			continue
		}

		out = append(out, idx)
	}

	return out
}

// AdjacentInversions counts neighbouring pairs that are out of order;
// zero means the snapshot is sorted.
func AdjacentInversions(snap replay.Snapshot) int {
	count := 0

	for i := 1; i < len(snap.Array); i++ {
		if snap.Array[i-1].Value > snap.Array[i].Value {
			count++
		}
	}

	return count
}

// TraceReport writes an HTML report of one algorithm run.
func TraceReport(w io.Writer, res sorting.Result, o Options) error {
	if o.Frames <= 0 {
		o.Frames = DefaultFrames
	}

	info, err := sorting.Lookup(res.Algorithm)
	if err != nil {
		return fmt.Errorf("trace report: %w", err)
	}

	co := NewChartOpts(o.Theme)

	page := NewPage(info.Title+" trace",
		fmt.Sprintf("%d steps, %d comparisons, %d exchanges. %s",
			res.Trace.TotalSteps(), res.Counters.Comparisons, res.Counters.Exchanges, info.Description),
	).WithTheme(o.Theme)

	for _, idx := range SampleFrames(res.Trace, o.Frames) {
		snap := res.Trace[idx]

		page.Add(Section{
			Title:    fmt.Sprintf("Step %d", snap.Step),
			Subtitle: snap.Description,
			Chart:    frameChart(co, snap),
		})
	}

	page.Add(Section{
		Title:    "Sortedness",
		Subtitle: "Adjacent out-of-order pairs after each step.",
		Chart:    sortednessChart(co, res.Trace),
		Hint: Hint{
			Title: "How to interpret:",
			Items: []string{
				"The curve reaches zero once the sequence is sorted.",
				"Flat stretches are comparisons that moved nothing.",
			},
		},
	})

	return page.Render(w)
}

// CompareReport writes an HTML report comparing several runs over one input.
func CompareReport(w io.Writer, results []sorting.Result, o Options) error {
	co := NewChartOpts(o.Theme)

	page := NewPage("Algorithm comparison", "Every algorithm over the same input.").WithTheme(o.Theme)

	page.Add(Section{
		Title:    "Operation counts",
		Subtitle: "Steps, comparisons and exchanges per algorithm.",
		Chart:    comparisonChart(co, results),
	})

	if len(results) > 0 {
		page.Add(Section{
			Title:    "Sortedness",
			Subtitle: "Adjacent out-of-order pairs after each step.",
			Chart:    sortednessChart(co, longestTrace(results)),
		})
	}

	return page.Render(w)
}

func frameChart(co *ChartOpts, snap replay.Snapshot) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(co.Init(fullWidth, frameHeight)),
		charts.WithTooltipOpts(co.Tooltip("item")),
		charts.WithGridOpts(co.Grid()),
		charts.WithXAxisOpts(co.XAxis("index")),
		charts.WithYAxisOpts(co.YAxis("value")),
		charts.WithLegendOpts(co.Legend(false)),
	)

	labels := make([]string, len(snap.Array))
	data := make([]opts.BarData, len(snap.Array))

	for i, el := range snap.Array {
		labels[i] = strconv.Itoa(el.Index)
		data[i] = opts.BarData{
			Name:      string(el.Status),
			Value:     el.Value,
			ItemStyle: &opts.ItemStyle{Color: render.StatusHex(el.Status)},
		}
	}

	bar.SetXAxis(labels)
	bar.AddSeries("values", data)

	return bar
}

func sortednessChart(co *ChartOpts, trace replay.Trace) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(co.Init(fullWidth, chartHeight)),
		charts.WithTooltipOpts(co.Tooltip("axis")),
		charts.WithGridOpts(co.Grid()),
		charts.WithDataZoomOpts(co.DataZoom()...),
		charts.WithXAxisOpts(co.XAxis("step")),
		charts.WithYAxisOpts(co.YAxis("inversions")),
		charts.WithLegendOpts(co.Legend(false)),
	)

	labels := make([]string, len(trace))
	data := make([]opts.LineData, len(trace))

	for i, snap := range trace {
		labels[i] = strconv.Itoa(snap.Step)
		data[i] = opts.LineData{Value: AdjacentInversions(snap)}
	}

	line.SetXAxis(labels)
	line.AddSeries("inversions", data,
		charts.WithItemStyleOpts(opts.ItemStyle{Color: co.SeriesColor()}),
		charts.WithLineStyleOpts(opts.LineStyle{Color: co.SeriesColor()}),
	)

	return line
}

func comparisonChart(co *ChartOpts, results []sorting.Result) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(co.Init(fullWidth, chartHeight)),
		charts.WithTooltipOpts(co.Tooltip("axis")),
		charts.WithGridOpts(co.Grid()),
		charts.WithXAxisOpts(co.XAxis("")),
		charts.WithYAxisOpts(co.YAxis("operations")),
		charts.WithLegendOpts(co.Legend(true)),
	)

	labels := make([]string, len(results))
	steps := make([]opts.BarData, len(results))
	comparisons := make([]opts.BarData, len(results))
	exchanges := make([]opts.BarData, len(results))

	for i, res := range results {
		labels[i] = string(res.Algorithm)
		steps[i] = opts.BarData{Value: res.Trace.TotalSteps()}
		comparisons[i] = opts.BarData{Value: res.Counters.Comparisons}
		exchanges[i] = opts.BarData{Value: res.Counters.Exchanges}
	}

	bar.SetXAxis(labels)
	bar.AddSeries("steps", steps,
		charts.WithItemStyleOpts(opts.ItemStyle{Color: render.StatusHex(replay.StatusDefault)}))
	bar.AddSeries("comparisons", comparisons,
		charts.WithItemStyleOpts(opts.ItemStyle{Color: render.StatusHex(replay.StatusComparing)}))
	bar.AddSeries("exchanges", exchanges,
		charts.WithItemStyleOpts(opts.ItemStyle{Color: render.StatusHex(replay.StatusSwapping)}))

	return bar
}

func longestTrace(results []sorting.Result) replay.Trace {
	longest := results[0].Trace
	for _, res := range results[1:] {
		if len(res.Trace) > len(longest) {
			longest = res.Trace
		}
	}

	return longest
}
