// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ggcanvas

import (
	"errors"
	"fmt"
	"image"
	"io"

	"github.com/gogpu/gg"
	"golang.org/x/image/font/sfnt"

	"github.com/gogpu/grid"
)

// Common errors returned by Canvas operations.
var (
	// ErrInvalidDimensions is returned when width or height is invalid.
	ErrInvalidDimensions = errors.New("ggcanvas: invalid dimensions")

	// ErrNilFontSource is returned when a text blob carries no font.
	ErrNilFontSource = errors.New("ggcanvas: text blob has nil font source")
)

// Canvas implements grid.Canvas on top of a gg.Context.
//
// Draw errors from the underlying context are sticky: the first one is
// kept and returned by Err, later operations still run.
//
// Canvas is NOT safe for concurrent use. Create one Canvas per
// goroutine, or use external synchronization.
type Canvas struct {
	ctx   *gg.Context
	fonts map[*grid.FontSource]*sfnt.Font
	buf   sfnt.Buffer
	depth int
	err   error
}

var _ grid.Canvas = (*Canvas)(nil)

// New creates a Canvas backed by a fresh gg context of the given pixel
// size. Returns an error if the dimensions are invalid.
func New(width, height int) (*Canvas, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: width=%d, height=%d", ErrInvalidDimensions, width, height)
	}
	return FromContext(gg.NewContext(width, height)), nil
}

// MustNew is like New but panics on error.
// Use only when errors are programming mistakes (e.g., hardcoded dimensions).
func MustNew(width, height int) *Canvas {
	c, err := New(width, height)
	if err != nil {
		panic(err)
	}
	return c
}

// FromContext wraps an existing gg context. The caller keeps ownership;
// drawing through both the Canvas and the context directly is fine as
// long as Save/Restore pairs stay balanced.
func FromContext(ctx *gg.Context) *Canvas {
	return &Canvas{
		ctx:   ctx,
		fonts: make(map[*grid.FontSource]*sfnt.Font),
	}
}

// Context returns the underlying gg drawing context.
func (c *Canvas) Context() *gg.Context {
	return c.ctx
}

// Err returns the first drawing error encountered, or nil.
func (c *Canvas) Err() error {
	return c.err
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int {
	return c.ctx.Width()
}

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int {
	return c.ctx.Height()
}

// Image returns the rendered frame.
func (c *Canvas) Image() image.Image {
	return c.ctx.Image()
}

// EncodePNG writes the rendered frame as PNG.
func (c *Canvas) EncodePNG(w io.Writer) error {
	return c.ctx.EncodePNG(w)
}

// SavePNG writes the rendered frame to a PNG file.
func (c *Canvas) SavePNG(path string) error {
	return c.ctx.SavePNG(path)
}

// Save implements grid.Canvas.
func (c *Canvas) Save() {
	c.ctx.Push()
	c.depth++
}

// Restore implements grid.Canvas. Restores without a matching Save are
// ignored.
func (c *Canvas) Restore() {
	if c.depth == 0 {
		return
	}
	c.ctx.Pop()
	c.depth--
}

// ClipRect implements grid.Canvas.
func (c *Canvas) ClipRect(rect grid.Rect) {
	c.ctx.ClipRect(rect.Min.X, rect.Min.Y, rect.Width(), rect.Height())
}

// Clear fills the whole surface with col, ignoring any clip. The cell
// background pass skips cells that match the default background, so the
// surface must be cleared to that color first.
func (c *Canvas) Clear(col grid.Color) {
	c.ctx.ClearWithColor(gg.RGBA{R: col.R, G: col.G, B: col.B, A: col.A})
}

// DrawRect implements grid.Canvas.
func (c *Canvas) DrawRect(rect grid.Rect, paint *grid.Paint) {
	c.applyPaint(paint)
	c.ctx.DrawRectangle(rect.Min.X, rect.Min.Y, rect.Width(), rect.Height())
	c.finish(paint)
}

// DrawLine implements grid.Canvas. Lines always stroke at the paint's
// stroke width.
func (c *Canvas) DrawLine(p1, p2 grid.Point, paint *grid.Paint) {
	c.applyPaint(paint)
	c.ctx.DrawLine(p1.X, p1.Y, p2.X, p2.Y)
	c.setErr(c.ctx.Stroke())
}

// DrawPath implements grid.Canvas.
func (c *Canvas) DrawPath(path *grid.Path, paint *grid.Paint) {
	if path == nil || path.IsEmpty() {
		return
	}

	c.applyPaint(paint)
	c.ctx.ClearPath()
	for _, el := range path.Elements() {
		switch el := el.(type) {
		case grid.MoveTo:
			c.ctx.MoveTo(el.Point.X, el.Point.Y)
		case grid.LineTo:
			c.ctx.LineTo(el.Point.X, el.Point.Y)
		case grid.QuadTo:
			c.ctx.QuadraticTo(el.Control.X, el.Control.Y, el.Point.X, el.Point.Y)
		}
	}
	c.finish(paint)
}

// applyPaint moves the paint's color, stroke width and dash pattern onto
// the context.
func (c *Canvas) applyPaint(paint *grid.Paint) {
	c.ctx.SetRGBA(paint.Color.R, paint.Color.G, paint.Color.B, paint.Color.A)
	c.ctx.SetLineWidth(paint.StrokeWidth)
	if paint.Dash.IsDashed() {
		c.ctx.SetDash(paint.Dash.Array...)
		c.ctx.SetDashOffset(paint.Dash.Offset)
	} else {
		c.ctx.ClearDash()
	}
}

// finish fills or strokes the current context path per the paint style.
func (c *Canvas) finish(paint *grid.Paint) {
	if paint.Style == grid.PaintStroke {
		c.setErr(c.ctx.Stroke())
		return
	}
	c.setErr(c.ctx.Fill())
}

// setErr keeps the first error.
func (c *Canvas) setErr(err error) {
	if err != nil && c.err == nil {
		c.err = err
	}
}
