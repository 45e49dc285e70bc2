package commands

import (
	"errors"
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/ansonlam23/algorithm-visualizer/internal/plot"
	"github.com/ansonlam23/algorithm-visualizer/pkg/sorting"
)

// ErrNoOutput is returned when a command that writes a file has no --output.
var ErrNoOutput = errors.New("--output is required")

// PlotCommand writes an HTML report.
type PlotCommand struct {
	input   inputFlags
	output  string
	frames  int
	compare bool
}

// NewPlotCommand creates the plot command.
func NewPlotCommand() *cobra.Command {
	pc := &PlotCommand{}

	cmd := &cobra.Command{
		Use:   "plot [algorithm]",
		Short: "Write an HTML report of a trace",
		Long: `Render sampled frames and a sortedness curve of one algorithm as an
interactive HTML page. With --compare, chart every algorithm on the same input.`,
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: algorithmArgs,
		RunE:              pc.run,
	}

	pc.input.register(cmd)
	cmd.Flags().StringVarP(&pc.output, "output", "o", "", "HTML file to write")
	cmd.Flags().IntVar(&pc.frames, "frames", plot.DefaultFrames, "Number of sampled frames")
	cmd.Flags().BoolVar(&pc.compare, "compare", false, "Compare every algorithm instead")

	return cmd
}

func (pc *PlotCommand) run(cmd *cobra.Command, args []string) (err error) {
	if pc.output == "" {
		return ErrNoOutput
	}

	alg, err := parseAlgorithm(args)
	if err != nil {
		return err
	}

	cfg, err := pc.input.load(cmd)
	if err != nil {
		return err
	}

	input, err := pc.input.input(cfg)
	if err != nil {
		return err
	}

	file, err := os.Create(pc.output)
	if err != nil {
		return fmt.Errorf("create report: %w", err)
	}

	defer func() {
		err = errors.Join(err, file.Close())
	}()

	opts := plot.Options{Frames: pc.frames, Theme: plot.ParseTheme(cfg.Render.Theme)}

	if pc.compare {
		err = plot.CompareReport(file, sorting.RunAll(input), opts)
	} else {
		var res sorting.Result

		res, err = sorting.Run(alg, input)
		if err != nil {
			return err
		}

		err = plot.TraceReport(file, res, opts)
	}

	if err != nil {
		return err
	}

	info, err := file.Stat()
	if err != nil {
		return fmt.Errorf("stat report: %w", err)
	}

	fmt.Fprintf(cmd.ErrOrStderr(), "wrote %s (%s)\n", pc.output, humanize.Bytes(uint64(info.Size())))

	return nil
}
