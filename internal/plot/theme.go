package plot

// Theme selects the report colour scheme.
type Theme string

// Themes.
const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// ThemeConfig holds the page and chart colours of one theme.
type ThemeConfig struct {
	Background    string
	Surface       string
	Border        string
	TextPrimary   string
	TextSecondary string
	Accent        string

	ChartGrid      string
	ChartAxis      string
	ChartText      string
	ChartTextMuted string
	SeriesLine     string
}

// GetThemeConfig returns the configuration for theme, defaulting to dark.
func GetThemeConfig(theme Theme) ThemeConfig {
	if theme == ThemeLight {
		return lightTheme
	}

	return darkTheme
}

// ParseTheme maps a config value onto a Theme.
func ParseTheme(name string) Theme {
	if Theme(name) == ThemeLight {
		return ThemeLight
	}

	return ThemeDark
}

var lightTheme = ThemeConfig{
	Background:    "#fafaf9", // stone-50.
	Surface:       "#ffffff",
	Border:        "#e7e5e4", // stone-200.
	TextPrimary:   "#1c1917", // stone-900.
	TextSecondary: "#78716c", // stone-500.
	Accent:        "#a16207", // amber-700.

	ChartGrid:      "#e7e5e4",
	ChartAxis:      "#a8a29e",
	ChartText:      "#44403c",
	ChartTextMuted: "#78716c",
	SeriesLine:     "#2563eb", // blue-600.
}

var darkTheme = ThemeConfig{
	Background:    "#0c0a09", // stone-950.
	Surface:       "#1c1917", // stone-900.
	Border:        "#44403c", // stone-700.
	TextPrimary:   "#fafaf9",
	TextSecondary: "#a8a29e", // stone-400.
	Accent:        "#d97706", // amber-600.

	ChartGrid:      "#44403c",
	ChartAxis:      "#57534e",
	ChartText:      "#d6d3d1",
	ChartTextMuted: "#a8a29e",
	SeriesLine:     "#3b82f6", // blue-500.
}
