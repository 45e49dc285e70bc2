// Package commands implements the sortviz subcommands.
package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/ansonlam23/algorithm-visualizer/internal/config"
	"github.com/ansonlam23/algorithm-visualizer/internal/render"
	"github.com/ansonlam23/algorithm-visualizer/pkg/sequence"
	"github.com/ansonlam23/algorithm-visualizer/pkg/sorting"
)

// ConfigFlag is the root persistent flag naming an explicit config file.
const ConfigFlag = "config"

// inputFlags are shared by every command that generates a trace.
type inputFlags struct {
	values  string
	size    int
	min     int
	max     int
	seed    uint64
	speed   float64
	theme   string
	width   int
	noColor bool
}

func (f *inputFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.values, "values", "", "Comma or space separated input values (default: random)")
	cmd.Flags().IntVarP(&f.size, "size", "n", 0, "Random input size (0 = config)")
	cmd.Flags().IntVar(&f.min, "min", 0, "Smallest random value")
	cmd.Flags().IntVar(&f.max, "max", 0, "Largest random value")
	cmd.Flags().Uint64Var(&f.seed, "seed", 0, "Random seed (0 = fresh)")
	cmd.Flags().StringVar(&f.theme, "theme", "", "Colour theme: dark, light")
	cmd.Flags().IntVar(&f.width, "width", 0, "Output width (0 = terminal)")
	cmd.Flags().BoolVar(&f.noColor, "no-color", false, "Disable coloured output")
}

func (f *inputFlags) registerSpeed(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&f.speed, "speed", 0, "Playback speed multiplier (0.1 to 5)")
}

// overrides converts explicitly set flags into config overrides.
func (f *inputFlags) overrides(cmd *cobra.Command) config.Overrides {
	o := config.Overrides{
		Size:    f.size,
		Seed:    f.seed,
		Speed:   f.speed,
		Theme:   f.theme,
		Width:   f.width,
		NoColor: f.noColor,
	}

	if cmd.Flags().Changed("min") {
		o.Min = &f.min
	}

	if cmd.Flags().Changed("max") {
		o.Max = &f.max
	}

	return o
}

// load reads the config file and applies flag overrides.
func (f *inputFlags) load(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}

	err = cfg.Apply(f.overrides(cmd))
	if err != nil {
		return nil, fmt.Errorf("apply flags: %w", err)
	}

	return cfg, nil
}

// input returns the parsed --values, or a random sequence drawn per cfg.
func (f *inputFlags) input(cfg *config.Config) ([]int, error) {
	if f.values != "" {
		return sequence.Parse(f.values)
	}

	return sequence.Random(sequence.NewRand(cfg.Input.Seed), cfg.SequenceSpec())
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	var path string

	if flag := cmd.Root().PersistentFlags().Lookup(ConfigFlag); flag != nil {
		path = flag.Value.String()
	}

	return config.LoadConfig(path)
}

func newRenderer(w io.Writer, cfg *config.Config) *render.Renderer {
	return render.New(w, render.Options{
		Theme:            cfg.Render.Theme,
		NoColor:          cfg.Render.NoColor,
		Width:            cfg.Render.Width,
		ShowDescriptions: cfg.Render.ShowDescriptions,
	})
}

func parseAlgorithm(args []string) (sorting.Algorithm, error) {
	if len(args) == 0 {
		return sorting.ExchangeSortName, nil
	}

	return sorting.ParseAlgorithm(args[0])
}

// algorithmArgs completes algorithm names for the first positional argument.
func algorithmArgs(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	names := make([]string, 0, len(sorting.Algorithms()))
	for _, info := range sorting.Catalog() {
		names = append(names, string(info.Name)+"\t"+info.Title)
	}

	return names, cobra.ShellCompDirectiveNoFileComp
}
