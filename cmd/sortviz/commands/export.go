package commands

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/ansonlam23/algorithm-visualizer/internal/export"
	"github.com/ansonlam23/algorithm-visualizer/pkg/sorting"
)

// ExportCommand writes a trace document to disk.
type ExportCommand struct {
	input  inputFlags
	output string
}

// NewExportCommand creates the export command.
func NewExportCommand() *cobra.Command {
	ec := &ExportCommand{}

	cmd := &cobra.Command{
		Use:   "export [algorithm]",
		Short: "Save a trace as JSON, YAML or LZ4-compressed JSON",
		Long: `Generate one trace and write it with its input and counters. The format
follows the --output extension: .json, .yaml/.yml or .lz4.`,
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: algorithmArgs,
		RunE:              ec.run,
	}

	ec.input.register(cmd)
	cmd.Flags().StringVarP(&ec.output, "output", "o", "", "Document path (.json, .yaml, .lz4)")

	return cmd
}

func (ec *ExportCommand) run(cmd *cobra.Command, args []string) error {
	if ec.output == "" {
		return ErrNoOutput
	}

	alg, err := parseAlgorithm(args)
	if err != nil {
		return err
	}

	cfg, err := ec.input.load(cmd)
	if err != nil {
		return err
	}

	input, err := ec.input.input(cfg)
	if err != nil {
		return err
	}

	res, err := sorting.Run(alg, input)
	if err != nil {
		return err
	}

	size, err := export.WriteFile(ec.output, export.NewDocument(res, input))
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.ErrOrStderr(), "wrote %s: %d snapshots, %s\n",
		ec.output, len(res.Trace), humanize.Bytes(uint64(size)))

	return nil
}
