package grid

// Canvas is the drawing surface the renderer composites onto.
//
// Implementations translate these calls to a concrete backend:
// backend/ggcanvas rasterizes through a gg drawing context, and
// backend/record captures the calls for inspection and replay.
//
// Save and Restore must nest: every Save is balanced by exactly one
// Restore, and Restore unwinds clip state back to the matching Save.
// The renderer brackets every clipped draw in a Save/Restore pair and
// never leaves state pushed between calls.
//
// The Paint passed to draw calls is only valid for the duration of the
// call; implementations that retain paints must copy them.
type Canvas interface {
	// DrawRect fills or strokes a rectangle according to the paint.
	DrawRect(r Rect, p *Paint)

	// DrawLine strokes a line between two points at the paint's
	// stroke width, applying its dash pattern if any.
	DrawLine(p1, p2 Point, p *Paint)

	// DrawPath draws a path according to the paint's style.
	DrawPath(path *Path, p *Paint)

	// DrawTextBlob draws a positioned glyph run with its baseline-left
	// origin at the given point.
	DrawTextBlob(blob *TextBlob, origin Point, p *Paint)

	// ClipRect intersects the current clip with a rectangle.
	// The clip applies to all subsequent draws until the enclosing
	// Save is restored.
	ClipRect(r Rect)

	// Save pushes the current clip state.
	Save()

	// Restore pops to the state of the matching Save.
	Restore()
}
