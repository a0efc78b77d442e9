package render

import "math"

// Viewport maps world pixels onto terminal cells
// One cell covers CellWidth x CellHeight world pixels
type Viewport struct {
	CellWidth  float64
	CellHeight float64
}

// NewViewport creates a viewport, falling back to 1x1 cells for non-positive sizes
func NewViewport(cellWidth, cellHeight float64) Viewport {
	if cellWidth <= 0 {
		cellWidth = 1
	}
	if cellHeight <= 0 {
		cellHeight = 1
	}
	return Viewport{CellWidth: cellWidth, CellHeight: cellHeight}
}

// CellAt returns the cell containing the world point
func (v Viewport) CellAt(x, y float64) (int, int) {
	return int(math.Floor(x / v.CellWidth)), int(math.Floor(y / v.CellHeight))
}

// CellCenter returns the world point at the center of a cell
// Pointer input is resolved through this so clicks hit what RectCells drew
func (v Viewport) CellCenter(cx, cy int) (float64, float64) {
	return (float64(cx) + 0.5) * v.CellWidth, (float64(cy) + 0.5) * v.CellHeight
}

// RectCells returns the inclusive cell span whose centers fall inside the box
// Boxes smaller than a cell collapse onto the cell holding their center
func (v Viewport) RectCells(x, y, w, h float64) (x0, y0, x1, y1 int) {
	x0, x1 = span(x, w, v.CellWidth)
	y0, y1 = span(y, h, v.CellHeight)
	return x0, y0, x1, y1
}

// WorldSize returns the world extent covered by a cols x rows grid
func (v Viewport) WorldSize(cols, rows int) (float64, float64) {
	return float64(cols) * v.CellWidth, float64(rows) * v.CellHeight
}

func span(origin, length, cell float64) (int, int) {
	lo := int(math.Ceil((origin - cell/2) / cell))
	hi := int(math.Floor((origin + length - cell/2) / cell))
	if hi < lo {
		c := int(math.Floor((origin + length/2) / cell))
		return c, c
	}
	return lo, hi
}
