package grid

// Glyph is a single positioned glyph within a TextBlob.
type Glyph struct {
	// ID is the glyph index in the blob's font.
	ID uint32

	// X, Y are the glyph origin relative to the blob origin, which sits
	// on the baseline at the left edge of the run.
	X, Y float64

	// Cluster is the rune index in the blob's text this glyph maps to.
	// Multiple glyphs can share a cluster (ligatures, marks).
	Cluster int
}

// TextBlob is one shaped glyph run in a single font and size. A line of
// cells shapes into one or more blobs when font fallback or direction
// changes split the run.
type TextBlob struct {
	// Source is the font the glyphs index into.
	Source *FontSource

	// Size is the font size in pixels the run was shaped at.
	Size float64

	// Glyphs are the positioned glyphs in visual order.
	Glyphs []Glyph

	// Text is the source text of the run.
	Text string
}

// Shaper turns cell text into positioned glyph runs and reports the font
// metrics the renderer lays cells out with. shapers/gotext provides the
// production implementation on top of go-text/typesetting.
//
// All pixel metrics already include the current scale factor and
// linespace. The renderer re-reads them after every mutation, so
// implementations must keep the metric methods cheap.
type Shaper interface {
	// ShapeCached shapes text with the font variant selected by the
	// coarse style and caches the result. The returned blobs are shared
	// with the cache and must be treated as immutable.
	ShapeCached(text string, style CoarseStyle) []*TextBlob

	// CurrentSize returns the em size in pixels, scale factor applied.
	CurrentSize() float64

	// FontBaseDimensions returns the cell size in whole pixels,
	// linespace included. Both extents must be at least one pixel.
	FontBaseDimensions() Dimensions

	// UnderlinePosition returns the distance in pixels from the cell's
	// bottom edge up to the underline baseline.
	UnderlinePosition() float64

	// YAdjustment returns the distance in pixels from the cell's top
	// edge down to the text baseline.
	YAdjustment() float64

	// UpdateScaleFactor sets the display scale factor.
	UpdateScaleFactor(scaleFactor float64)

	// UpdateFont replaces the font list from a font specification
	// string such as "JetBrains Mono,Noto Sans:h14:b". Unknown
	// families are skipped; an error is returned when nothing in the
	// spec could be applied.
	UpdateFont(spec string) error

	// UpdateFontOptions replaces the structured font options.
	UpdateFontOptions(opts FontOptions)

	// UpdateLinespace sets additional whole pixels of leading per cell.
	UpdateLinespace(px int)

	// FontNames returns the names of the registered fonts in fallback
	// order.
	FontNames() []string
}
