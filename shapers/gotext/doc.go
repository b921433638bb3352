// Package gotext implements grid.Shaper on top of go-text/typesetting's
// HarfBuzz port.
//
// Fonts register through AddFont (or the AddFontBytes / AddFontFile
// conveniences) and form a fallback chain: the families requested by the
// current font options come first, in request order, followed by the
// remaining registered fonts in registration order. Each line of text is
// split into runs by bidirectional level and again wherever glyph
// coverage moves to a different font in the chain, and every run shapes
// into one grid.TextBlob. Pen position accumulates across the blobs of a
// line, so a renderer can draw all of them at the same origin.
//
// Shaping results are cached per text and coarse style. Mutations that
// would change shaped output (font list, options, scale factor,
// linespace) do not flush the cache; they bump a generation counter that
// is part of the cache key, and entries from older generations age out
// through ordinary LRU eviction.
//
// Cell metrics come from the primary font via x/image/font/sfnt: the
// cell width is the widest probe-rune advance, the cell height is the
// font's line height plus the configured linespace, and the baseline and
// underline positions derive from the ascent and descent at the current
// pixel size.
package gotext
