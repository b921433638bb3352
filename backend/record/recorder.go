package record

import "github.com/gogpu/grid"

// Canvas records draw calls as typed operations. The zero value is not
// usable; create recorders with New.
//
// Canvas is NOT safe for concurrent use, matching the single-threaded
// contract of grid.Canvas.
type Canvas struct {
	ops   []Op
	depth int
}

// New creates an empty recording canvas.
func New() *Canvas {
	return &Canvas{
		ops: make([]Op, 0, 64),
	}
}

var _ grid.Canvas = (*Canvas)(nil)

// DrawRect implements grid.Canvas.
func (c *Canvas) DrawRect(r grid.Rect, p *grid.Paint) {
	c.ops = append(c.ops, RectOp{Rect: r, Paint: p.Clone()})
}

// DrawLine implements grid.Canvas.
func (c *Canvas) DrawLine(p1, p2 grid.Point, p *grid.Paint) {
	c.ops = append(c.ops, LineOp{P1: p1, P2: p2, Paint: p.Clone()})
}

// DrawPath implements grid.Canvas.
func (c *Canvas) DrawPath(path *grid.Path, p *grid.Paint) {
	c.ops = append(c.ops, PathOp{Path: path.Clone(), Paint: p.Clone()})
}

// DrawTextBlob implements grid.Canvas.
func (c *Canvas) DrawTextBlob(blob *grid.TextBlob, origin grid.Point, p *grid.Paint) {
	c.ops = append(c.ops, TextBlobOp{Blob: blob, Origin: origin, Paint: p.Clone()})
}

// ClipRect implements grid.Canvas.
func (c *Canvas) ClipRect(r grid.Rect) {
	c.ops = append(c.ops, ClipOp{Rect: r})
}

// Save implements grid.Canvas.
func (c *Canvas) Save() {
	c.ops = append(c.ops, SaveOp{})
	c.depth++
}

// Restore implements grid.Canvas.
func (c *Canvas) Restore() {
	c.ops = append(c.ops, RestoreOp{})
	c.depth--
}

// Ops returns the recorded operations in call order.
// The returned slice is owned by the canvas and valid until Reset.
func (c *Canvas) Ops() []Op {
	return c.ops
}

// OpsOfType returns the recorded operations of one type, in call order.
func (c *Canvas) OpsOfType(t OpType) []Op {
	var out []Op
	for _, op := range c.ops {
		if op.Type() == t {
			out = append(out, op)
		}
	}
	return out
}

// Depth returns the current Save nesting depth. A balanced recording
// ends at depth zero.
func (c *Canvas) Depth() int {
	return c.depth
}

// Len returns the number of recorded operations.
func (c *Canvas) Len() int {
	return len(c.ops)
}

// Reset discards all recorded operations and state.
func (c *Canvas) Reset() {
	c.ops = c.ops[:0]
	c.depth = 0
}

// Replay issues the recorded operations against another canvas in the
// original call order.
func (c *Canvas) Replay(dst grid.Canvas) {
	for _, op := range c.ops {
		switch op := op.(type) {
		case RectOp:
			dst.DrawRect(op.Rect, op.Paint)
		case LineOp:
			dst.DrawLine(op.P1, op.P2, op.Paint)
		case PathOp:
			dst.DrawPath(op.Path, op.Paint)
		case TextBlobOp:
			dst.DrawTextBlob(op.Blob, op.Origin, op.Paint)
		case ClipOp:
			dst.ClipRect(op.Rect)
		case SaveOp:
			dst.Save()
		case RestoreOp:
			dst.Restore()
		}
	}
}
