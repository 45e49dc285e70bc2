package render

import (
	"github.com/fatih/color"

	"github.com/ansonlam23/algorithm-visualizer/pkg/replay"
)

// Themes.
const (
	ThemeDark  = "dark"
	ThemeLight = "light"
)

// statusHex is the web palette, shared with the HTML report.
var statusHex = map[replay.Status]string{
	replay.StatusDefault:   "#6c757d",
	replay.StatusComparing: "#ff6b6b",
	replay.StatusSwapping:  "#4ecdc4",
	replay.StatusSorted:    "#51cf66",
	replay.StatusPivot:     "#ffd93d",
	replay.StatusPartition: "#ff8a80",
}

// StatusHex returns the CSS colour for status.
func StatusHex(status replay.Status) string {
	if hex, ok := statusHex[status]; ok {
		return hex
	}

	return statusHex[replay.StatusDefault]
}

var darkAttrs = map[replay.Status]color.Attribute{
	replay.StatusDefault:   color.FgHiBlack,
	replay.StatusComparing: color.FgHiRed,
	replay.StatusSwapping:  color.FgHiCyan,
	replay.StatusSorted:    color.FgHiGreen,
	replay.StatusPivot:     color.FgHiYellow,
	replay.StatusPartition: color.FgRed,
}

var lightAttrs = map[replay.Status]color.Attribute{
	replay.StatusDefault:   color.FgBlack,
	replay.StatusComparing: color.FgRed,
	replay.StatusSwapping:  color.FgCyan,
	replay.StatusSorted:    color.FgGreen,
	replay.StatusPivot:     color.FgYellow,
	replay.StatusPartition: color.FgMagenta,
}

// palette maps statuses to terminal colours for one theme.
type palette struct {
	colors map[replay.Status]*color.Color
}

func newPalette(theme string, noColor bool) palette {
	attrs := darkAttrs
	if theme == ThemeLight {
		attrs = lightAttrs
	}

	colors := make(map[replay.Status]*color.Color, len(attrs))

	for status, attr := range attrs {
		c := color.New(attr)
		if noColor {
			c.DisableColor()
		} else {
			c.EnableColor()
		}

		colors[status] = c
	}

	return palette{colors: colors}
}

func (p palette) paint(status replay.Status, text string) string {
	c, ok := p.colors[status]
	if !ok {
		c = p.colors[replay.StatusDefault]
	}

	return c.Sprint(text)
}
