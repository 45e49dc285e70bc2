// Package config loads sortviz settings from .sortviz.yaml, SORTVIZ_*
// environment variables and built-in defaults.
package config

import (
	"errors"
	"slices"

	"github.com/ansonlam23/algorithm-visualizer/pkg/replay"
	"github.com/ansonlam23/algorithm-visualizer/pkg/sequence"
)

// Config is the top-level configuration struct for sortviz.
// Field tags use mapstructure for viper unmarshalling.
type Config struct {
	Input         InputConfig         `mapstructure:"input"`
	Playback      PlaybackConfig      `mapstructure:"playback"`
	Render        RenderConfig        `mapstructure:"render"`
	Server        ServerConfig        `mapstructure:"server"`
	Observability ObservabilityConfig `mapstructure:"observability"`
}

// InputConfig describes the random sequence used when no values are given.
type InputConfig struct {
	Size int    `mapstructure:"size"`
	Min  int    `mapstructure:"min"`
	Max  int    `mapstructure:"max"`
	Seed uint64 `mapstructure:"seed"`
}

// PlaybackConfig holds player settings.
type PlaybackConfig struct {
	Speed    float64 `mapstructure:"speed"`
	Autoplay bool    `mapstructure:"autoplay"`
}

// RenderConfig holds terminal and HTML rendering settings.
type RenderConfig struct {
	Theme            string `mapstructure:"theme"`
	NoColor          bool   `mapstructure:"no_color"`
	Width            int    `mapstructure:"width"`
	ShowDescriptions bool   `mapstructure:"show_descriptions"`
}

// ServerConfig holds HTTP and MCP serving limits.
type ServerConfig struct {
	Addr         string `mapstructure:"addr"`
	MaxInput     int    `mapstructure:"max_input"`
	CacheEntries int    `mapstructure:"cache_entries"`
}

// ObservabilityConfig holds logging and telemetry export settings.
type ObservabilityConfig struct {
	OTLPEndpoint string `mapstructure:"otlp_endpoint"`
	OTLPInsecure bool   `mapstructure:"otlp_insecure"`
	LogJSON      bool   `mapstructure:"log_json"`
	LogLevel     string `mapstructure:"log_level"`
	Environment  string `mapstructure:"environment"`
}

// Supported render themes.
const (
	ThemeDark  = "dark"
	ThemeLight = "light"
)

var (
	themes    = []string{ThemeDark, ThemeLight}
	logLevels = []string{"debug", "info", "warn", "error"}
)

// Sentinel errors for configuration validation.
var (
	// ErrInvalidInputSize indicates input.size is outside 0..sequence.MaxSize.
	ErrInvalidInputSize = errors.New("input.size out of range")
	// ErrInvalidInputRange indicates input.min exceeds input.max.
	ErrInvalidInputRange = errors.New("input.min must not exceed input.max")
	// ErrInvalidSpeed indicates playback.speed is outside the player's limits.
	ErrInvalidSpeed = errors.New("playback.speed out of range")
	// ErrInvalidTheme indicates an unknown render.theme.
	ErrInvalidTheme = errors.New("render.theme must be dark or light")
	// ErrInvalidWidth indicates render.width is negative.
	ErrInvalidWidth = errors.New("render.width must be non-negative")
	// ErrInvalidMaxInput indicates server.max_input is not positive.
	ErrInvalidMaxInput = errors.New("server.max_input must be positive")
	// ErrInvalidCacheEntries indicates server.cache_entries is negative.
	ErrInvalidCacheEntries = errors.New("server.cache_entries must be non-negative")
	// ErrInvalidLogLevel indicates an unknown observability.log_level.
	ErrInvalidLogLevel = errors.New("observability.log_level must be debug, info, warn or error")
)

// Validate checks Config invariants and returns the first error found.
func (c *Config) Validate() error {
	inputErr := c.validateInput()
	if inputErr != nil {
		return inputErr
	}

	if c.Playback.Speed < replay.MinSpeed || c.Playback.Speed > replay.MaxSpeed {
		return ErrInvalidSpeed
	}

	if !slices.Contains(themes, c.Render.Theme) {
		return ErrInvalidTheme
	}

	if c.Render.Width < 0 {
		return ErrInvalidWidth
	}

	if c.Server.MaxInput <= 0 {
		return ErrInvalidMaxInput
	}

	if c.Server.CacheEntries < 0 {
		return ErrInvalidCacheEntries
	}

	if !slices.Contains(logLevels, c.Observability.LogLevel) {
		return ErrInvalidLogLevel
	}

	return nil
}

func (c *Config) validateInput() error {
	if c.Input.Size < 0 || c.Input.Size > sequence.MaxSize {
		return ErrInvalidInputSize
	}

	if c.Input.Min > c.Input.Max {
		return ErrInvalidInputRange
	}

	return nil
}

// SequenceSpec returns the random input description.
func (c *Config) SequenceSpec() sequence.Spec {
	return sequence.Spec{Size: c.Input.Size, Min: c.Input.Min, Max: c.Input.Max}
}
