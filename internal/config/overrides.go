package config

// positive constrains types eligible for skip-on-zero overrides.
type positive interface {
	~int | ~uint64 | ~float64
}

// Overrides carries command-line flag values. Zero values mean "keep the
// configured value".
type Overrides struct {
	Size    int
	Min     *int
	Max     *int
	Seed    uint64
	Speed   float64
	Theme   string
	Width   int
	NoColor bool
	Addr    string
}

func applyPositive[T positive](dst *T, value T) {
	if value > 0 {
		*dst = value
	}
}

func applyNonEmpty(dst *string, value string) {
	if value != "" {
		*dst = value
	}
}

func applyPtr[T any](dst *T, value *T) {
	if value != nil {
		*dst = *value
	}
}

// Apply merges flag overrides into the config and re-validates it.
// NoColor only ever switches colour off.
func (c *Config) Apply(o Overrides) error {
	applyPositive(&c.Input.Size, o.Size)
	applyPtr(&c.Input.Min, o.Min)
	applyPtr(&c.Input.Max, o.Max)
	applyPositive(&c.Input.Seed, o.Seed)
	applyPositive(&c.Playback.Speed, o.Speed)
	applyNonEmpty(&c.Render.Theme, o.Theme)
	applyPositive(&c.Render.Width, o.Width)
	applyNonEmpty(&c.Server.Addr, o.Addr)

	if o.NoColor {
		c.Render.NoColor = true
	}

	return c.Validate()
}
