package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/ansonlam23/algorithm-visualizer/pkg/sequence"
	"github.com/ansonlam23/algorithm-visualizer/pkg/sorting"
)

// NewCompareCommand creates the compare command.
func NewCompareCommand() *cobra.Command {
	var input inputFlags

	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Compare step and operation counts of every algorithm",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := input.load(cmd)
			if err != nil {
				return err
			}

			values, err := input.input(cfg)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Input: %s\n\n", sequence.Format(values))

			_, err = io.WriteString(out, newRenderer(out, cfg).CompareTable(sorting.RunAll(values)))

			return err
		},
	}

	input.register(cmd)

	return cmd
}
