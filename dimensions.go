package grid

// Dimensions is a width/height pair in whole units. The same type covers
// both domains the renderer converts between: pixels (the size of one font
// cell, or of a surface) and cells (the size of a grid).
type Dimensions struct {
	Width, Height int
}

// Mul returns the elementwise product of two dimensions.
// Multiplying a grid size by the font cell size yields pixels.
func (d Dimensions) Mul(other Dimensions) Dimensions {
	return Dimensions{
		Width:  d.Width * other.Width,
		Height: d.Height * other.Height,
	}
}

// Div returns the elementwise quotient of two dimensions, truncating
// toward zero. Dividing a pixel size by the font cell size yields the
// number of whole cells that fit.
func (d Dimensions) Div(other Dimensions) Dimensions {
	return Dimensions{
		Width:  d.Width / other.Width,
		Height: d.Height / other.Height,
	}
}

// GridPos is a cell coordinate on the grid, origin top-left.
type GridPos struct {
	X, Y int
}
