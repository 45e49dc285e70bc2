package commands

import (
	"github.com/spf13/cobra"

	"github.com/ansonlam23/algorithm-visualizer/internal/tui"
	"github.com/ansonlam23/algorithm-visualizer/pkg/sorting"
)

// PlayCommand runs the interactive terminal player.
type PlayCommand struct {
	input    inputFlags
	autoplay bool
}

// NewPlayCommand creates the play command.
func NewPlayCommand() *cobra.Command {
	pc := &PlayCommand{}

	cmd := &cobra.Command{
		Use:   "play [algorithm]",
		Short: "Play a sort interactively in the terminal",
		Long: `Open a full-screen player for one algorithm.

Keys: space play/pause, ←/→ step, home/end jump, +/- speed, ? help, q quit.`,
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: algorithmArgs,
		RunE:              pc.run,
	}

	pc.input.register(cmd)
	pc.input.registerSpeed(cmd)
	cmd.Flags().BoolVar(&pc.autoplay, "autoplay", false, "Start playing immediately")

	return cmd
}

func (pc *PlayCommand) run(cmd *cobra.Command, args []string) error {
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

	res, err := sorting.Run(alg, input)
	if err != nil {
		return err
	}

	return tui.Run(cmd.Context(), res, tui.Options{
		Speed:            cfg.Playback.Speed,
		Autoplay:         pc.autoplay || cfg.Playback.Autoplay,
		ShowDescriptions: cfg.Render.ShowDescriptions,
	})
}
