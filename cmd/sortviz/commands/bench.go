package commands

import (
	"encoding/json"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/ansonlam23/algorithm-visualizer/internal/bench"
)

// BenchCommand summarises operation counts over many random inputs.
type BenchCommand struct {
	input   inputFlags
	runs    int
	workers int
	asJSON  bool
}

// NewBenchCommand creates the bench command.
func NewBenchCommand() *cobra.Command {
	bc := &BenchCommand{}

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Summarise step counts over many random inputs",
		Long: `Run every algorithm over --runs random sequences and report mean, median,
p95 and extremes of steps, comparisons and exchanges. A fixed --seed makes the
report reproducible regardless of --workers.`,
		Args: cobra.NoArgs,
		RunE: bc.run,
	}

	bc.input.register(cmd)
	cmd.Flags().IntVar(&bc.runs, "runs", bench.DefaultRuns, "Number of random inputs")
	cmd.Flags().IntVar(&bc.workers, "workers", 0, "Parallel workers (0 = CPU count)")
	cmd.Flags().BoolVar(&bc.asJSON, "json", false, "Print the report as JSON")

	return cmd
}

func (bc *BenchCommand) run(cmd *cobra.Command, _ []string) error {
	cfg, err := bc.input.load(cmd)
	if err != nil {
		return err
	}

	report, err := bench.Run(cmd.Context(), bench.Options{
		Runs:    bc.runs,
		Spec:    cfg.SequenceSpec(),
		Seed:    cfg.Input.Seed,
		Workers: bc.workers,
	})
	if err != nil {
		return err
	}

	slog.Debug("bench finished", "runs", report.Runs, "elapsed", report.Elapsed)

	out := cmd.OutOrStdout()

	if bc.asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")

		return enc.Encode(report)
	}

	_, err = io.WriteString(out, newRenderer(out, cfg).BenchTable(report))

	return err
}
