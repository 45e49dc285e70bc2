package commands

import (
	"log/slog"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ansonlam23/algorithm-visualizer/internal/config"
	"github.com/ansonlam23/algorithm-visualizer/internal/observability"
)

func TestObservabilityConfig_EnvWins(t *testing.T) {
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "collector:4317")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", "x-team=viz")
	t.Setenv("OTEL_EXPORTER_OTLP_INSECURE", "true")

	cfg := config.Default()
	cfg.Observability.OTLPEndpoint = "ignored:4317"
	cfg.Observability.LogLevel = "warn"

	obs, err := observabilityConfig(cfg, observability.ModeServe, false)
	require.NoError(t, err)

	assert.Equal(t, "collector:4317", obs.OTLPEndpoint)
	assert.Equal(t, map[string]string{"x-team": "viz"}, obs.OTLPHeaders)
	assert.True(t, obs.OTLPInsecure)
	assert.Equal(t, slog.LevelWarn, obs.LogLevel)
	assert.Equal(t, observability.ModeServe, obs.Mode)
}

func TestObservabilityConfig_DebugOverridesLevel(t *testing.T) {
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "")

	cfg := config.Default()
	cfg.Observability.OTLPEndpoint = "file:4317"

	obs, err := observabilityConfig(cfg, observability.ModeMCP, true)
	require.NoError(t, err)

	assert.Equal(t, "file:4317", obs.OTLPEndpoint)
	assert.Equal(t, slog.LevelDebug, obs.LogLevel)
}

func TestRootLoggerConfig(t *testing.T) {
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "")

	cfg := config.Default()
	cfg.Observability.LogLevel = "warn"
	cfg.Observability.LogJSON = true

	tests := []struct {
		name    string
		verbose bool
		quiet   bool
		want    slog.Level
	}{
		{name: "from_config", want: slog.LevelWarn},
		{name: "verbose", verbose: true, want: slog.LevelDebug},
		{name: "quiet", quiet: true, want: slog.LevelError},
		{name: "quiet_beats_verbose", verbose: true, quiet: true, want: slog.LevelError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			obs, err := rootLoggerConfig(cfg, tt.verbose, tt.quiet)
			require.NoError(t, err)

			assert.Equal(t, tt.want, obs.LogLevel)
			assert.True(t, obs.LogJSON)
			assert.Equal(t, observability.ModeCLI, obs.Mode)
		})
	}

	cfg.Observability.LogLevel = "loud"

	_, err := rootLoggerConfig(cfg, false, false)
	require.ErrorIs(t, err, observability.ErrUnknownLogLevel)
}

func TestInputFlags_Overrides(t *testing.T) {
	t.Parallel()

	var flags inputFlags

	cmd := &cobra.Command{}
	flags.register(cmd)
	flags.registerSpeed(cmd)

	require.NoError(t, cmd.Flags().Set("min", "-3"))
	require.NoError(t, cmd.Flags().Set("size", "12"))
	require.NoError(t, cmd.Flags().Set("speed", "2"))

	o := flags.overrides(cmd)

	require.NotNil(t, o.Min)
	assert.Equal(t, -3, *o.Min)
	assert.Nil(t, o.Max)
	assert.Equal(t, 12, o.Size)
	assert.InDelta(t, 2.0, o.Speed, 0.0001)
}

func TestInputFlags_ValuesBeatRandom(t *testing.T) {
	t.Parallel()

	flags := inputFlags{values: "4, 5 6"}

	got, err := flags.input(config.Default())
	require.NoError(t, err)
	assert.Equal(t, []int{4, 5, 6}, got)

	flags.values = ""

	cfg := config.Default()
	cfg.Input.Seed = 3

	a, err := flags.input(cfg)
	require.NoError(t, err)

	b, err := flags.input(cfg)
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.Len(t, a, config.DefaultInputSize)
}

func TestParseAlgorithm_DefaultsToBubble(t *testing.T) {
	t.Parallel()

	alg, err := parseAlgorithm(nil)
	require.NoError(t, err)
	assert.Equal(t, "exchange-sort", alg.String())

	names, _ := algorithmArgs(nil, nil, "")
	assert.Len(t, names, 6)
}
