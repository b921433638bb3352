package record

import "github.com/gogpu/grid"

// OpType identifies the type of a recorded operation.
type OpType uint8

const (
	// State operations
	OpTypeSave    OpType = iota // Push clip state
	OpTypeRestore               // Pop clip state
	OpTypeClip                  // Intersect clip with a rectangle

	// Drawing operations
	OpTypeRect     // Fill or stroke a rectangle
	OpTypeLine     // Stroke a line
	OpTypePath     // Draw a path
	OpTypeTextBlob // Draw a glyph run
)

// opTypeNames maps OpType values to their string representation.
var opTypeNames = [...]string{
	OpTypeSave:     "Save",
	OpTypeRestore:  "Restore",
	OpTypeClip:     "Clip",
	OpTypeRect:     "Rect",
	OpTypeLine:     "Line",
	OpTypePath:     "Path",
	OpTypeTextBlob: "TextBlob",
}

// String returns the string representation of an OpType.
func (t OpType) String() string {
	if int(t) < len(opTypeNames) {
		return opTypeNames[t]
	}
	return "Unknown"
}

// Op is the interface implemented by all recorded operations.
type Op interface {
	// Type returns the OpType for this operation.
	Type() OpType
}

// SaveOp records a Canvas.Save call.
type SaveOp struct{}

// Type implements Op.
func (SaveOp) Type() OpType { return OpTypeSave }

// RestoreOp records a Canvas.Restore call.
type RestoreOp struct{}

// Type implements Op.
func (RestoreOp) Type() OpType { return OpTypeRestore }

// ClipOp records a Canvas.ClipRect call.
type ClipOp struct {
	// Rect is the clip rectangle.
	Rect grid.Rect
}

// Type implements Op.
func (ClipOp) Type() OpType { return OpTypeClip }

// RectOp records a Canvas.DrawRect call.
type RectOp struct {
	// Rect is the drawn rectangle.
	Rect grid.Rect
	// Paint is a deep copy of the paint used.
	Paint *grid.Paint
}

// Type implements Op.
func (RectOp) Type() OpType { return OpTypeRect }

// LineOp records a Canvas.DrawLine call.
type LineOp struct {
	// P1, P2 are the line endpoints.
	P1, P2 grid.Point
	// Paint is a deep copy of the paint used.
	Paint *grid.Paint
}

// Type implements Op.
func (LineOp) Type() OpType { return OpTypeLine }

// PathOp records a Canvas.DrawPath call.
type PathOp struct {
	// Path is a deep copy of the drawn path.
	Path *grid.Path
	// Paint is a deep copy of the paint used.
	Paint *grid.Paint
}

// Type implements Op.
func (PathOp) Type() OpType { return OpTypePath }

// TextBlobOp records a Canvas.DrawTextBlob call.
type TextBlobOp struct {
	// Blob is the drawn glyph run. Blobs are immutable by contract and
	// shared with the shaper cache, not copied.
	Blob *grid.TextBlob
	// Origin is the baseline-left origin the blob was drawn at.
	Origin grid.Point
	// Paint is a deep copy of the paint used.
	Paint *grid.Paint
}

// Type implements Op.
func (TextBlobOp) Type() OpType { return OpTypeTextBlob }
