package commands

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ansonlam23/algorithm-visualizer/pkg/sorting"
)

// StepCommand prints what changed at each step.
type StepCommand struct {
	input inputFlags
	at    int
}

// NewStepCommand creates the step command.
func NewStepCommand() *cobra.Command {
	sc := &StepCommand{}

	cmd := &cobra.Command{
		Use:   "step [algorithm]",
		Short: "Show how values move between steps",
		Long: `List every step with its description and a value diff against the previous
snapshot. With --at, print that single step as a frame followed by its diff.`,
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: algorithmArgs,
		RunE:              sc.run,
	}

	sc.input.register(cmd)
	cmd.Flags().IntVar(&sc.at, "at", -1, "Print only this step (-1 = all)")

	return cmd
}

func (sc *StepCommand) run(cmd *cobra.Command, args []string) error {
	alg, err := parseAlgorithm(args)
	if err != nil {
		return err
	}

	cfg, err := sc.input.load(cmd)
	if err != nil {
		return err
	}

	input, err := sc.input.input(cfg)
	if err != nil {
		return err
	}

	trace, err := sorting.Generate(alg, input)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	r := newRenderer(out, cfg)
	total := trace.TotalSteps()

	if sc.at >= 0 {
		snap := trace.At(sc.at)

		err = r.Frame(snap, total)
		if err != nil {
			return err
		}

		if snap.Step > 0 {
			fmt.Fprint(out, r.StepDiff(trace.At(snap.Step-1), snap))
		}

		return nil
	}

	for i, snap := range trace {
		fmt.Fprintf(out, "%*d  %s\n", len(strconv.Itoa(total)), snap.Step, snap.Description)

		if i > 0 && !slices.Equal(trace[i-1].Values(), snap.Values()) {
			fmt.Fprint(out, "    "+r.StepDiff(trace[i-1], snap))
		}
	}

	return nil
}
