package commands

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/ansonlam23/algorithm-visualizer/internal/render"
	"github.com/ansonlam23/algorithm-visualizer/pkg/replay"
	"github.com/ansonlam23/algorithm-visualizer/pkg/sorting"
)

// TraceCommand prints a generated trace frame by frame.
type TraceCommand struct {
	input  inputFlags
	table  bool
	legend bool
	from   int
	to     int
}

// NewTraceCommand creates the trace command.
func NewTraceCommand() *cobra.Command {
	tc := &TraceCommand{}

	cmd := &cobra.Command{
		Use:   "trace [algorithm]",
		Short: "Print every step of a sort",
		Long: `Generate the trace of one algorithm and print its snapshots as bar frames,
or as a single table with --table. The algorithm defaults to bubble sort.`,
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: algorithmArgs,
		RunE:              tc.run,
	}

	tc.input.register(cmd)
	cmd.Flags().BoolVar(&tc.table, "table", false, "Print one table row per step instead of frames")
	cmd.Flags().BoolVar(&tc.legend, "legend", false, "Print the status colour legend first")
	cmd.Flags().IntVar(&tc.from, "from", 0, "First step to print")
	cmd.Flags().IntVar(&tc.to, "to", -1, "Last step to print (-1 = final)")

	return cmd
}

func (tc *TraceCommand) run(cmd *cobra.Command, args []string) error {
	alg, err := parseAlgorithm(args)
	if err != nil {
		return err
	}

	cfg, err := tc.input.load(cmd)
	if err != nil {
		return err
	}

	input, err := tc.input.input(cfg)
	if err != nil {
		return err
	}

	res, err := sorting.Run(alg, input)
	if err != nil {
		return err
	}

	slog.Debug("trace generated", "algorithm", alg, "size", len(input), "snapshots", len(res.Trace))

	to := tc.to
	if to < 0 {
		to = res.Trace.TotalSteps()
	}

	window := res.Trace.Window(tc.from, to)
	out := cmd.OutOrStdout()
	r := newRenderer(out, cfg)

	if tc.legend {
		_, err = io.WriteString(out, r.Legend())
		if err != nil {
			return err
		}
	}

	if tc.table {
		_, err = io.WriteString(out, r.TraceTable(window))

		return err
	}

	return writeFrames(r, window, res.Trace.TotalSteps())
}

func writeFrames(r *render.Renderer, window replay.Trace, total int) error {
	for _, snap := range window {
		err := r.Frame(snap, total)
		if err != nil {
			return err
		}
	}

	return nil
}
