package grid

import (
	"math"
	"math/rand/v2"
	"strings"
	"unicode"
	"unicode/utf8"
)

// GridRenderer composites styled character cells onto a Canvas. It owns
// the default style and the cached font metrics; glyph shaping is
// delegated to the Shaper and pixel output to the Canvas.
//
// A GridRenderer is not safe for concurrent use. One renderer drives one
// surface at a time.
type GridRenderer struct {
	shaper         Shaper
	defaultStyle   *Style
	emSize         float64
	fontDimensions Dimensions
	scaleFactor    float64
	isReady        bool

	settings Settings
	rng      *rand.Rand
}

// BackgroundInfo describes the cell a DrawBackground call painted.
type BackgroundInfo struct {
	// CustomColor is true if the cell's resolved background differs
	// from the default background, alpha included.
	CustomColor bool

	// Transparent is true if the cell's style carries any blend.
	Transparent bool
}

// New creates a renderer drawing at the given display scale factor.
// The scale factor is pushed into the shaper, and the initial metrics are
// read back from it. The default style is white on black with grey
// decorations unless WithDefaultStyle overrides it.
//
// The renderer reports IsReady() == false until the first font or scale
// mutation confirms the metrics.
func New(shaper Shaper, scaleFactor float64, opts ...Option) *GridRenderer {
	o := defaultRendererOptions()
	for _, opt := range opts {
		opt(&o)
	}

	shaper.UpdateScaleFactor(scaleFactor)

	defaultStyle := o.defaultStyle
	if defaultStyle == nil {
		defaultStyle = NewStyle(NewColors(&White, &Black, &Grey))
	}

	return &GridRenderer{
		shaper:         shaper,
		defaultStyle:   defaultStyle,
		emSize:         shaper.CurrentSize(),
		fontDimensions: shaper.FontBaseDimensions(),
		scaleFactor:    scaleFactor,
		isReady:        false,
		settings:       o.settings,
		rng:            o.rng,
	}
}

// FontNames returns the shaper's registered font names in fallback order.
func (r *GridRenderer) FontNames() []string {
	return r.shaper.FontNames()
}

// EmSize returns the current em size in pixels.
func (r *GridRenderer) EmSize() float64 {
	return r.emSize
}

// FontDimensions returns the current cell size in pixels.
func (r *GridRenderer) FontDimensions() Dimensions {
	return r.fontDimensions
}

// ScaleFactor returns the display scale factor last applied.
func (r *GridRenderer) ScaleFactor() float64 {
	return r.scaleFactor
}

// IsReady reports whether font metrics have been confirmed by a mutation
// since construction.
func (r *GridRenderer) IsReady() bool {
	return r.isReady
}

// DefaultStyle returns the style cells fall back to.
func (r *GridRenderer) DefaultStyle() *Style {
	return r.defaultStyle
}

// Settings returns the current settings snapshot.
func (r *GridRenderer) Settings() Settings {
	return r.settings
}

// UpdateSettings replaces the settings snapshot. The new values take
// effect on the next draw call.
func (r *GridRenderer) UpdateSettings(s Settings) {
	r.settings = s
}

// ConvertPhysicalToGrid converts a pixel size to whole grid cells.
func (r *GridRenderer) ConvertPhysicalToGrid(physical Dimensions) Dimensions {
	return physical.Div(r.fontDimensions)
}

// ConvertGridToPhysical converts a grid size to pixels.
func (r *GridRenderer) ConvertGridToPhysical(grid Dimensions) Dimensions {
	return grid.Mul(r.fontDimensions)
}

// HandleScaleFactorUpdate applies a new display scale factor and
// refreshes the cached font metrics.
func (r *GridRenderer) HandleScaleFactorUpdate(scaleFactor float64) {
	r.scaleFactor = scaleFactor
	r.shaper.UpdateScaleFactor(scaleFactor)
	r.updateFontDimensions()
}

// UpdateFont applies a font specification string such as
// "JetBrains Mono:h14:b". A spec that cannot be applied leaves the
// current fonts in place; metrics are refreshed either way.
func (r *GridRenderer) UpdateFont(spec string) {
	if err := r.shaper.UpdateFont(spec); err != nil {
		Logger().Warn("font spec not applied", "spec", spec, "err", err)
	}
	r.updateFontDimensions()
}

// UpdateFontOptions applies structured font options.
func (r *GridRenderer) UpdateFontOptions(opts FontOptions) {
	r.shaper.UpdateFontOptions(opts)
	r.updateFontDimensions()
}

// UpdateLinespace sets the additional leading per cell in pixels.
func (r *GridRenderer) UpdateLinespace(px int) {
	r.shaper.UpdateLinespace(px)
	r.updateFontDimensions()
}

func (r *GridRenderer) updateFontDimensions() {
	r.emSize = r.shaper.CurrentSize()
	r.fontDimensions = r.shaper.FontBaseDimensions()
	r.isReady = true
	Logger().Debug("updated font dimensions",
		"width", r.fontDimensions.Width,
		"height", r.fontDimensions.Height)
}

// computeTextRegion returns the pixel rectangle covered by cellWidth
// cells starting at the given grid position.
func (r *GridRenderer) computeTextRegion(pos GridPos, cellWidth int) Rect {
	x := pos.X * r.fontDimensions.Width
	y := pos.Y * r.fontDimensions.Height
	width := cellWidth * r.fontDimensions.Width
	height := r.fontDimensions.Height
	return NewRect(
		Pt(float64(x), float64(y)),
		Pt(float64(x+width), float64(y+height)),
	)
}

// DefaultBackground returns the default style's background color.
// A default style without a background is a programmer error; this
// panics rather than guessing a color.
func (r *GridRenderer) DefaultBackground() Color {
	bg := r.defaultStyle.Colors.Background
	if bg == nil {
		panic("grid: default style has no background color")
	}
	return *bg
}

// DrawBackground paints the background of cellWidth cells starting at
// pos. Cells whose resolved background equals the default background are
// skipped entirely; the surface is expected to be cleared to the default
// background before the cell pass.
//
// The returned BackgroundInfo reports whether the cell deviated from the
// default background and whether it carries transparency.
func (r *GridRenderer) DrawBackground(canvas Canvas, pos GridPos, cellWidth int, style *Style) BackgroundInfo {
	debug := r.settings.DebugRenderer
	if style == nil && !debug {
		return BackgroundInfo{
			CustomColor: false,
			Transparent: false,
		}
	}

	region := r.computeTextRegion(pos, cellWidth)
	if style == nil {
		style = r.defaultStyle
	}

	paint := NewPaint()
	paint.Antialias = false
	paint.Blend = BlendSrc

	if debug {
		paint.Color = HSV(r.randFloat()*360.0, 0.3, 0.3)
	} else {
		paint.Color = style.Background(r.defaultStyle.Colors)
	}
	if style.Blend > 0 {
		paint.Color = paint.Color.WithAlpha(float64(100-style.Blend) / 100.0)
	} else {
		paint.Color = paint.Color.WithAlpha(1.0)
	}

	customColor := paint.Color != r.DefaultBackground()
	if customColor {
		canvas.DrawRect(region, paint)
	}

	return BackgroundInfo{
		CustomColor: customColor,
		Transparent: style.Blend > 0,
	}
}

// DrawForeground composites the text of cellWidth cells starting at pos:
// underline decoration, shaped glyph runs, then strikethrough, in that
// order. Returns true if anything was drawn.
func (r *GridRenderer) DrawForeground(canvas Canvas, text string, pos GridPos, cellWidth int, style *Style) bool {
	x := float64(pos.X * r.fontDimensions.Width)
	y := float64(pos.Y * r.fontDimensions.Height)
	width := float64(cellWidth * r.fontDimensions.Width)

	if style == nil {
		style = r.defaultStyle
	}
	drawn := false

	// Text must clip vertically but never horizontally, so the clip
	// region is widened by one cell on each side.
	clipPos := GridPos{X: pos.X - 1, Y: pos.Y}
	if clipPos.X < 0 {
		clipPos.X = 0
	}
	region := r.computeTextRegion(clipPos, cellWidth+2)

	if style.Underline != nil {
		linePosition := r.shaper.UnderlinePosition()
		lineY := y - linePosition + float64(r.fontDimensions.Height)
		p1 := Pt(x, lineY)
		p2 := Pt(x+width, lineY)

		r.drawUnderline(canvas, style, *style.Underline, p1, p2)
		drawn = true
	}

	canvas.Save()
	canvas.ClipRect(region)
	defer canvas.Restore()

	yAdjustment := r.shaper.YAdjustment()

	paint := NewPaint()
	paint.Antialias = false
	paint.Blend = BlendSrcOver

	if r.settings.DebugRenderer {
		paint.Color = HSV(r.randFloat()*360.0, 1.0, 1.0)
	} else {
		paint.Color = style.Foreground(r.defaultStyle.Colors)
	}

	// Whitespace-only runs shape into empty blobs that still miss the
	// cache every time, so trim the spaces and shift the origin instead.
	trimmed := strings.TrimLeftFunc(text, unicode.IsSpace)
	leadingSpaces := utf8.RuneCountInString(text[:len(text)-len(trimmed)])
	trimmed = strings.TrimRightFunc(trimmed, unicode.IsSpace)
	xAdjustment := float64(leadingSpaces * r.fontDimensions.Width)

	if trimmed != "" {
		for _, blob := range r.shaper.ShapeCached(trimmed, style.CoarseStyle()) {
			canvas.DrawTextBlob(blob, Pt(x+xAdjustment, y+yAdjustment), paint)
			drawn = true
		}
	}

	if style.Strikethrough {
		linePosition := region.Center().Y
		paint.Color = style.Special(r.defaultStyle.Colors)
		canvas.DrawLine(Pt(x, linePosition), Pt(x+width, linePosition), paint)
		drawn = true
	}

	return drawn
}

// drawUnderline strokes one underline decoration between p1 and p2, both
// on the underline baseline.
func (r *GridRenderer) drawUnderline(canvas Canvas, style *Style, kind UnderlineStyle, p1, p2 Point) {
	canvas.Save()
	defer canvas.Restore()

	paint := NewPaint()
	paint.Antialias = false
	paint.Blend = BlendSrcOver

	// Stroke widths below one pixel alias badly, so clamp to one.
	strokeWidth := math.Max(r.shaper.CurrentSize()*r.settings.UnderlineStrokeScale/10.0, 1.0)

	paint.Color = style.Special(r.defaultStyle.Colors)
	paint.StrokeWidth = strokeWidth

	switch kind {
	case Underline:
		paint.Dash = nil
		canvas.DrawLine(p1, p2, paint)
	case UnderDouble:
		paint.Dash = nil
		canvas.DrawLine(p1, p2, paint)
		canvas.DrawLine(Pt(p1.X, p1.Y-2), Pt(p2.X, p2.Y-2), paint)
	case UnderCurl:
		q1 := Pt(p1.X, p1.Y-3+strokeWidth)
		q2 := Pt(p2.X, p2.Y-3+strokeWidth)
		paint.Dash = nil
		paint.Antialias = true
		paint.Style = PaintStroke

		path := NewPath()
		path.MoveTo(q1.X, q1.Y)
		i := q1.X
		sin := -2.0 * strokeWidth
		increment := float64(r.fontDimensions.Width) / 2.0
		for i < q2.X {
			sin *= -1.0
			i += increment
			path.QuadTo(i-increment/2.0, q1.Y+sin, i, q1.Y)
		}
		canvas.DrawPath(path, paint)
	case UnderDash:
		paint.Dash = NewDash(6.0*strokeWidth, 2.0*strokeWidth)
		canvas.DrawLine(p1, p2, paint)
	case UnderDot:
		paint.Dash = NewDash(1.0*strokeWidth, 1.0*strokeWidth)
		canvas.DrawLine(p1, p2, paint)
	}
}

// randFloat returns the next debug color sample from the injected source,
// or the shared global source when none was injected.
func (r *GridRenderer) randFloat() float64 {
	if r.rng != nil {
		return r.rng.Float64()
	}
	return rand.Float64()
}
