package grid

import "testing"

func TestPathBuilding(t *testing.T) {
	p := NewPath()

	if !p.IsEmpty() {
		t.Error("new path is not empty")
	}

	p.MoveTo(0, 10)
	p.QuadTo(2.5, 14, 5, 10)
	p.LineTo(10, 10)

	els := p.Elements()
	if len(els) != 3 {
		t.Fatalf("Elements() has %d entries, want 3", len(els))
	}
	if got, ok := els[0].(MoveTo); !ok || got.Point != Pt(0, 10) {
		t.Errorf("element 0 = %+v, want MoveTo(0, 10)", els[0])
	}
	if got, ok := els[1].(QuadTo); !ok || got != (QuadTo{Control: Pt(2.5, 14), Point: Pt(5, 10)}) {
		t.Errorf("element 1 = %+v, want QuadTo((2.5, 14), (5, 10))", els[1])
	}
	if got, ok := els[2].(LineTo); !ok || got.Point != Pt(10, 10) {
		t.Errorf("element 2 = %+v, want LineTo(10, 10)", els[2])
	}
	if p.Current() != Pt(10, 10) {
		t.Errorf("Current() = %+v, want the last point (10, 10)", p.Current())
	}
	if p.IsEmpty() {
		t.Error("built path reports empty")
	}
}

func TestPathClone(t *testing.T) {
	p := NewPath()
	p.MoveTo(1, 2)
	p.LineTo(3, 4)

	c := p.Clone()
	if len(c.Elements()) != 2 || c.Current() != p.Current() {
		t.Fatalf("Clone = %d elements, current %+v; want copy of original", len(c.Elements()), c.Current())
	}

	// Extending the original leaves the clone alone.
	p.LineTo(5, 6)
	if len(c.Elements()) != 2 {
		t.Errorf("clone has %d elements after original grew, want 2", len(c.Elements()))
	}
}
