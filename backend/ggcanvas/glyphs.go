// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ggcanvas

import (
	"fmt"

	"github.com/gogpu/gg"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/grid"
)

// DrawTextBlob implements grid.Canvas. Each glyph's outline loads from
// the blob's font source at the blob size and fills at the glyph
// position relative to origin. Glyphs without an outline (spaces,
// bitmap-only entries) are skipped.
func (c *Canvas) DrawTextBlob(blob *grid.TextBlob, origin grid.Point, paint *grid.Paint) {
	if blob == nil || len(blob.Glyphs) == 0 {
		return
	}

	fnt, err := c.fontFor(blob.Source)
	if err != nil {
		c.setErr(err)
		return
	}

	c.applyPaint(paint)
	c.ctx.ClearDash()
	ppem := fixed.Int26_6(blob.Size * 64)

	for _, g := range blob.Glyphs {
		segments, err := fnt.LoadGlyph(&c.buf, sfnt.GlyphIndex(g.ID), ppem, nil)
		if err != nil || len(segments) == 0 {
			continue
		}
		c.ctx.ClearPath()
		appendSegments(c.ctx, segments, origin.X+g.X, origin.Y+g.Y)
		c.setErr(c.ctx.Fill())
	}
}

// fontFor returns the parsed sfnt font for a source, parsing once and
// caching by the source pointer.
func (c *Canvas) fontFor(source *grid.FontSource) (*sfnt.Font, error) {
	if source == nil {
		return nil, ErrNilFontSource
	}
	if fnt, ok := c.fonts[source]; ok {
		return fnt, nil
	}

	fnt, err := opentype.Parse(source.Data())
	if err != nil {
		return nil, fmt.Errorf("ggcanvas: parsing font %q: %w", source.Name(), err)
	}
	c.fonts[source] = fnt
	return fnt, nil
}

// appendSegments walks sfnt outline segments onto the context path.
// Segment coordinates are y-down 26.6 fixed point relative to the glyph
// origin on the baseline, matching the canvas coordinate system.
func appendSegments(ctx *gg.Context, segments []sfnt.Segment, dx, dy float64) {
	for _, seg := range segments {
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			ctx.MoveTo(dx+fixedToFloat(seg.Args[0].X), dy+fixedToFloat(seg.Args[0].Y))
		case sfnt.SegmentOpLineTo:
			ctx.LineTo(dx+fixedToFloat(seg.Args[0].X), dy+fixedToFloat(seg.Args[0].Y))
		case sfnt.SegmentOpQuadTo:
			ctx.QuadraticTo(
				dx+fixedToFloat(seg.Args[0].X), dy+fixedToFloat(seg.Args[0].Y),
				dx+fixedToFloat(seg.Args[1].X), dy+fixedToFloat(seg.Args[1].Y))
		case sfnt.SegmentOpCubeTo:
			ctx.CubicTo(
				dx+fixedToFloat(seg.Args[0].X), dy+fixedToFloat(seg.Args[0].Y),
				dx+fixedToFloat(seg.Args[1].X), dy+fixedToFloat(seg.Args[1].Y),
				dx+fixedToFloat(seg.Args[2].X), dy+fixedToFloat(seg.Args[2].Y))
		}
	}
}

// fixedToFloat converts a fixed.Int26_6 value to float64.
func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64.0
}
