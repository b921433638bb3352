package grid

import "testing"

func TestNewPaint(t *testing.T) {
	p := NewPaint()

	if p.Color != Black {
		t.Errorf("Color = %+v, want black", p.Color)
	}
	if p.Blend != BlendSrcOver {
		t.Errorf("Blend = %v, want SrcOver", p.Blend)
	}
	if p.Antialias {
		t.Error("Antialias = true, want false")
	}
	if p.StrokeWidth != 1.0 {
		t.Errorf("StrokeWidth = %v, want 1.0", p.StrokeWidth)
	}
	if p.Style != PaintFill {
		t.Errorf("Style = %v, want PaintFill", p.Style)
	}
	if p.Dash != nil {
		t.Errorf("Dash = %+v, want nil", p.Dash)
	}
}

func TestPaintClone(t *testing.T) {
	p := NewPaint()
	p.Color = Red
	p.Blend = BlendSrc
	p.StrokeWidth = 3
	p.Style = PaintStroke
	p.Dash = NewDash(5, 3)

	c := p.Clone()

	if c.Color != p.Color || c.Blend != p.Blend || c.StrokeWidth != p.StrokeWidth || c.Style != p.Style {
		t.Errorf("Clone = %+v, want copy of %+v", c, p)
	}
	if c.Dash == p.Dash {
		t.Error("Clone shares the dash pointer with the original")
	}

	// Deep copy: mutating the original dash leaves the clone alone.
	p.Dash.Array[0] = 99
	if c.Dash.Array[0] != 5 {
		t.Errorf("clone dash = %v after mutating original, want 5", c.Dash.Array[0])
	}
}

func TestPaintCloneNilDash(t *testing.T) {
	c := NewPaint().Clone()
	if c.Dash != nil {
		t.Errorf("Clone dash = %+v, want nil", c.Dash)
	}
}

func TestBlendModeString(t *testing.T) {
	tests := []struct {
		mode BlendMode
		want string
	}{
		{BlendSrcOver, "SrcOver"},
		{BlendSrc, "Src"},
		{BlendMode(9), "Unknown"},
	}

	for _, tt := range tests {
		if got := tt.mode.String(); got != tt.want {
			t.Errorf("BlendMode(%d).String() = %q, want %q", int(tt.mode), got, tt.want)
		}
	}
}
