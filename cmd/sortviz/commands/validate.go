package commands

import (
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ansonlam23/algorithm-visualizer/internal/export"
)

// ErrInvalidFiles is returned when at least one document fails validation.
var ErrInvalidFiles = errors.New("invalid trace documents")

// NewValidateCommand creates the validate command.
func NewValidateCommand() *cobra.Command {
	var noColor bool

	cmd := &cobra.Command{
		Use:   "validate <file>...",
		Short: "Check exported trace documents",
		Long: `Validate documents written by "sortviz export" against the embedded JSON
schema, then check the trace itself: consecutive steps, one final complete
snapshot, and every snapshot a permutation of the input.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ok := color.New(color.FgGreen)
			bad := color.New(color.FgRed, color.Bold)

			if noColor {
				ok.DisableColor()
				bad.DisableColor()
			}

			out := cmd.OutOrStdout()
			failed := 0

			for _, path := range args {
				doc, err := export.ReadFile(path)
				if err != nil {
					failed++

					fmt.Fprintf(out, "%s %s\n", bad.Sprint("FAIL"), path)
					printProblems(out, err)

					continue
				}

				fmt.Fprintf(out, "%s %s (%s, %d snapshots)\n",
					ok.Sprint("ok"), path, doc.Algorithm, len(doc.Trace))
			}

			if failed > 0 {
				return fmt.Errorf("%w: %d of %d", ErrInvalidFiles, failed, len(args))
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable coloured output")

	return cmd
}

func printProblems(out io.Writer, err error) {
	var verr *export.ValidationError
	if !errors.As(err, &verr) {
		fmt.Fprintf(out, "    %v\n", err)

		return
	}

	for _, problem := range verr.Problems {
		fmt.Fprintf(out, "    %s\n", problem)
	}
}
