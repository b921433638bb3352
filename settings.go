package grid

import "math/rand/v2"

// Settings are the renderer knobs read on every draw call. The renderer
// holds a Settings value, not a pointer, so a snapshot taken at
// construction stays stable until UpdateSettings replaces it.
type Settings struct {
	// DebugRenderer paints every drawn cell in a random color so damage
	// regions and overdraw are visible.
	DebugRenderer bool

	// UnderlineStrokeScale scales underline stroke width relative to
	// em size. 1.0 gives emSize/10, clamped to at least one pixel.
	UnderlineStrokeScale float64
}

// DefaultSettings returns the settings used when none are supplied.
func DefaultSettings() Settings {
	return Settings{
		DebugRenderer:        false,
		UnderlineStrokeScale: 1.0,
	}
}

// Option configures a GridRenderer during creation.
//
// Example:
//
//	// Default renderer
//	gr := grid.New(shaper, 1.0)
//
//	// Debug visualization with a fixed random sequence
//	gr := grid.New(shaper, 1.0,
//	    grid.WithSettings(grid.Settings{DebugRenderer: true, UnderlineStrokeScale: 1.0}),
//	    grid.WithRandom(rand.New(rand.NewPCG(1, 2))),
//	)
type Option func(*rendererOptions)

// rendererOptions holds optional configuration for GridRenderer creation.
type rendererOptions struct {
	settings     Settings
	defaultStyle *Style
	rng          *rand.Rand
}

// defaultRendererOptions returns the default renderer options.
func defaultRendererOptions() rendererOptions {
	return rendererOptions{
		settings:     DefaultSettings(),
		defaultStyle: nil, // New installs the white-on-black default
		rng:          nil, // nil means the shared global source
	}
}

// WithSettings sets the initial settings snapshot.
func WithSettings(s Settings) Option {
	return func(o *rendererOptions) {
		o.settings = s
	}
}

// WithDefaultStyle replaces the built-in white-on-black default style.
// The style must have a background color: the renderer treats a missing
// default background as a programmer error and panics when it is first
// needed.
func WithDefaultStyle(s *Style) Option {
	return func(o *rendererOptions) {
		if s != nil {
			o.defaultStyle = s
		}
	}
}

// WithRandom sets the random source for debug-renderer colors.
// Tests pass a seeded source to make the color sequence reproducible.
//
// Example:
//
//	rng := rand.New(rand.NewPCG(42, 0))
//	gr := grid.New(shaper, 1.0, grid.WithRandom(rng))
func WithRandom(rng *rand.Rand) Option {
	return func(o *rendererOptions) {
		o.rng = rng
	}
}
