package commands

import (
	"encoding/json"
	"io"

	"github.com/spf13/cobra"

	"github.com/ansonlam23/algorithm-visualizer/pkg/sorting"
)

// NewAlgorithmsCommand creates the algorithms command.
func NewAlgorithmsCommand() *cobra.Command {
	var (
		asJSON bool
		input  inputFlags
	)

	cmd := &cobra.Command{
		Use:     "algorithms",
		Aliases: []string{"list"},
		Short:   "List the available algorithms",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()

			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")

				return enc.Encode(sorting.Catalog())
			}

			cfg, err := input.load(cmd)
			if err != nil {
				return err
			}

			_, err = io.WriteString(out, newRenderer(out, cfg).AlgorithmTable(sorting.Catalog()))

			return err
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the catalog as JSON")
	cmd.Flags().BoolVar(&input.noColor, "no-color", false, "Disable coloured output")

	return cmd
}
