package record

import (
	"testing"

	"github.com/gogpu/grid"
)

func TestRecordsOpsInOrder(t *testing.T) {
	rec := New()

	paint := grid.NewPaint()
	rec.Save()
	rec.ClipRect(grid.RectXYWH(0, 0, 10, 10))
	rec.DrawRect(grid.RectXYWH(1, 1, 4, 4), paint)
	rec.DrawLine(grid.Pt(0, 5), grid.Pt(10, 5), paint)
	rec.Restore()

	want := []OpType{OpTypeSave, OpTypeClip, OpTypeRect, OpTypeLine, OpTypeRestore}
	ops := rec.Ops()
	if len(ops) != len(want) {
		t.Fatalf("recorded %d ops, want %d", len(ops), len(want))
	}
	for i, op := range ops {
		if op.Type() != want[i] {
			t.Errorf("op[%d] = %v, want %v", i, op.Type(), want[i])
		}
	}
}

func TestPaintIsCopied(t *testing.T) {
	rec := New()

	paint := grid.NewPaint()
	paint.Color = grid.Red
	paint.Dash = grid.NewDash(4, 2)
	rec.DrawLine(grid.Pt(0, 0), grid.Pt(8, 0), paint)

	// Mutating the caller's paint after recording must not change the op.
	paint.Color = grid.Blue
	paint.Dash.Array[0] = 99

	op := rec.Ops()[0].(LineOp)
	if op.Paint.Color != grid.Red {
		t.Errorf("recorded color = %v, want red", op.Paint.Color)
	}
	if op.Paint.Dash.Array[0] != 4 {
		t.Errorf("recorded dash = %v, want [4 2]", op.Paint.Dash.Array)
	}
}

func TestPathIsCopied(t *testing.T) {
	rec := New()

	path := grid.NewPath()
	path.MoveTo(0, 0)
	path.QuadTo(1, 2, 3, 0)
	rec.DrawPath(path, grid.NewPaint())

	path.LineTo(100, 100)

	op := rec.Ops()[0].(PathOp)
	if len(op.Path.Elements()) != 2 {
		t.Errorf("recorded path has %d elements, want 2", len(op.Path.Elements()))
	}
}

func TestDepthTracksSaveRestore(t *testing.T) {
	rec := New()

	rec.Save()
	rec.Save()
	if rec.Depth() != 2 {
		t.Errorf("Depth() = %d, want 2", rec.Depth())
	}
	rec.Restore()
	rec.Restore()
	if rec.Depth() != 0 {
		t.Errorf("Depth() = %d, want 0", rec.Depth())
	}
}

func TestOpsOfType(t *testing.T) {
	rec := New()
	paint := grid.NewPaint()

	rec.DrawLine(grid.Pt(0, 0), grid.Pt(1, 0), paint)
	rec.DrawRect(grid.RectXYWH(0, 0, 1, 1), paint)
	rec.DrawLine(grid.Pt(0, 1), grid.Pt(1, 1), paint)

	lines := rec.OpsOfType(OpTypeLine)
	if len(lines) != 2 {
		t.Fatalf("OpsOfType(Line) returned %d ops, want 2", len(lines))
	}
	if got := lines[1].(LineOp).P1; got != grid.Pt(0, 1) {
		t.Errorf("second line P1 = %v, want (0,1)", got)
	}
}

func TestReplayPreservesSequence(t *testing.T) {
	rec := New()
	paint := grid.NewPaint()
	paint.Color = grid.Green

	rec.Save()
	rec.ClipRect(grid.RectXYWH(0, 0, 20, 10))
	rec.DrawRect(grid.RectXYWH(2, 2, 6, 6), paint)
	rec.Restore()

	dst := New()
	rec.Replay(dst)

	if dst.Len() != rec.Len() {
		t.Fatalf("replayed %d ops, want %d", dst.Len(), rec.Len())
	}
	for i := range rec.Ops() {
		if rec.Ops()[i].Type() != dst.Ops()[i].Type() {
			t.Errorf("op[%d] = %v, want %v", i, dst.Ops()[i].Type(), rec.Ops()[i].Type())
		}
	}
	got := dst.Ops()[2].(RectOp)
	if got.Paint.Color != grid.Green {
		t.Errorf("replayed paint color = %v, want green", got.Paint.Color)
	}
}

func TestReset(t *testing.T) {
	rec := New()
	rec.Save()
	rec.DrawLine(grid.Pt(0, 0), grid.Pt(1, 1), grid.NewPaint())

	rec.Reset()

	if rec.Len() != 0 {
		t.Errorf("Len() after Reset = %d, want 0", rec.Len())
	}
	if rec.Depth() != 0 {
		t.Errorf("Depth() after Reset = %d, want 0", rec.Depth())
	}
}
