package grid

// BlendMode specifies how source pixels combine with the destination.
type BlendMode int

const (
	// BlendSrcOver composites the source over the destination.
	// This is the default mode and the one used for text, decorations
	// and strikethrough marks.
	BlendSrcOver BlendMode = iota

	// BlendSrc replaces the destination with the source, alpha included.
	// Cell backgrounds use this so that a transparent background writes
	// its transparency into the framebuffer instead of blending with
	// whatever was below.
	BlendSrc
)

// String returns the name of the blend mode.
func (m BlendMode) String() string {
	switch m {
	case BlendSrcOver:
		return "SrcOver"
	case BlendSrc:
		return "Src"
	default:
		return "Unknown"
	}
}

// PaintStyle specifies whether geometry is filled or stroked.
type PaintStyle int

const (
	// PaintFill fills the geometry interior.
	PaintFill PaintStyle = iota
	// PaintStroke strokes the geometry outline.
	PaintStroke
)

// Paint represents the styling information for drawing.
// Lines are always stroked at StrokeWidth regardless of Style;
// Style selects fill versus stroke for rectangles and paths.
type Paint struct {
	// Color is the solid draw color.
	Color Color

	// Blend is how source pixels combine with the destination.
	Blend BlendMode

	// Antialias enables anti-aliasing.
	Antialias bool

	// StrokeWidth is the width of stroked geometry and lines.
	StrokeWidth float64

	// Style selects filling or stroking for closed geometry.
	Style PaintStyle

	// Dash is the dash pattern for stroked lines, nil for solid.
	Dash *Dash
}

// NewPaint creates a new Paint with default values: opaque black,
// source-over blending, no anti-aliasing, hairline solid strokes.
func NewPaint() *Paint {
	return &Paint{
		Color:       Black,
		Blend:       BlendSrcOver,
		Antialias:   false,
		StrokeWidth: 1.0,
		Style:       PaintFill,
		Dash:        nil,
	}
}

// Clone creates a copy of the Paint. The dash pattern is deep-copied so
// the clone stays valid if the original is mutated.
func (p *Paint) Clone() *Paint {
	return &Paint{
		Color:       p.Color,
		Blend:       p.Blend,
		Antialias:   p.Antialias,
		StrokeWidth: p.StrokeWidth,
		Style:       p.Style,
		Dash:        p.Dash.Clone(),
	}
}
