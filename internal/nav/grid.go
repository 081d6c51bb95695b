package nav

import "fmt"

// Grid is a bit-packed occupancy map. A set bit marks a blocked cell.
// Coordinates outside the grid are always reported as blocked, so the
// search never needs a separate bounds check. Mutation happens only
// through Toggle and SetBlocked, between queries.
type Grid struct {
	width  int32
	height int32
	cells  *BitArray
}

// NewGrid creates an all-free occupancy grid of the given dimensions.
func NewGrid(width, height int32) *Grid {
	return &Grid{
		width:  width,
		height: height,
		cells:  NewBitArray(int(width) * int(height)),
	}
}

// Width returns the grid width in cells.
func (g *Grid) Width() int32 { return g.width }

// Height returns the grid height in cells.
func (g *Grid) Height() int32 { return g.height }

// Index returns the flat cell index for (x, y).
func (g *Grid) Index(x, y int32) int {
	return int(y)*int(g.width) + int(x)
}

// XY returns the cell coordinates for a flat index.
func (g *Grid) XY(index int) (int32, int32) {
	return int32(index % int(g.width)), int32(index / int(g.width))
}

// IsBlocked reports whether (x, y) is occupied. Out-of-range
// coordinates count as blocked rather than erroring.
func (g *Grid) IsBlocked(x, y int32) bool {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		return true
	}
	return g.cells.Get(g.Index(x, y))
}

// Toggle flips the occupancy of (x, y). Mutating a cell outside the
// grid is a programmer error and panics.
func (g *Grid) Toggle(x, y int32) {
	g.checkBounds(x, y)
	g.cells.Toggle(g.Index(x, y))
}

// SetBlocked sets the occupancy of (x, y) explicitly.
func (g *Grid) SetBlocked(x, y int32, blocked bool) {
	g.checkBounds(x, y)
	g.cells.SetBool(g.Index(x, y), blocked)
}

func (g *Grid) checkBounds(x, y int32) {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		panic(fmt.Sprintf("nav: cell (%d,%d) outside %dx%d grid", x, y, g.width, g.height))
	}
}
