package config

import "github.com/ansonlam23/algorithm-visualizer/pkg/sequence"

// Input defaults.
const (
	DefaultInputSize = sequence.DefaultSize
	DefaultInputMin  = sequence.DefaultMin
	DefaultInputMax  = sequence.DefaultMax
	DefaultInputSeed = 0
)

// Playback defaults.
const (
	DefaultPlaybackSpeed    = 1.0
	DefaultPlaybackAutoplay = false
)

// Render defaults.
const (
	DefaultRenderTheme            = ThemeDark
	DefaultRenderNoColor          = false
	DefaultRenderWidth            = 0
	DefaultRenderShowDescriptions = true
)

// Server defaults.
const (
	DefaultServerAddr         = ":8080"
	DefaultServerMaxInput     = 64
	DefaultServerCacheEntries = 128
)

// Observability defaults.
const (
	DefaultOTLPEndpoint = ""
	DefaultOTLPInsecure = false
	DefaultLogJSON      = false
	DefaultLogLevel     = "info"
	DefaultEnvironment  = ""
)

// Default returns the configuration used when nothing is overridden.
func Default() *Config {
	return &Config{
		Input: InputConfig{
			Size: DefaultInputSize,
			Min:  DefaultInputMin,
			Max:  DefaultInputMax,
			Seed: DefaultInputSeed,
		},
		Playback: PlaybackConfig{
			Speed:    DefaultPlaybackSpeed,
			Autoplay: DefaultPlaybackAutoplay,
		},
		Render: RenderConfig{
			Theme:            DefaultRenderTheme,
			NoColor:          DefaultRenderNoColor,
			Width:            DefaultRenderWidth,
			ShowDescriptions: DefaultRenderShowDescriptions,
		},
		Server: ServerConfig{
			Addr:         DefaultServerAddr,
			MaxInput:     DefaultServerMaxInput,
			CacheEntries: DefaultServerCacheEntries,
		},
		Observability: ObservabilityConfig{
			OTLPEndpoint: DefaultOTLPEndpoint,
			OTLPInsecure: DefaultOTLPInsecure,
			LogJSON:      DefaultLogJSON,
			LogLevel:     DefaultLogLevel,
			Environment:  DefaultEnvironment,
		},
	}
}
