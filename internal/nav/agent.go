package nav

import "math"

// Agent holds the rectangular body geometry and the per-heading
// footprint cache. The cache is built once in NewAgent and never
// mutated, so a single Agent may serve concurrent queries.
type Agent struct {
	halfWidth     float64
	halfHeight    float64
	maxIncrements int32
	footprints    [][]Offset
}

// NewAgent builds the footprint cache for a body with the given half
// extents, one entry per heading increment.
func NewAgent(halfWidth, halfHeight float64, maxIncrements int32) *Agent {
	a := &Agent{
		halfWidth:     halfWidth,
		halfHeight:    halfHeight,
		maxIncrements: maxIncrements,
		footprints:    make([][]Offset, maxIncrements),
	}
	for h := int32(0); h < maxIncrements; h++ {
		a.footprints[h] = buildFootprint(halfWidth, halfHeight, headingAngle(h, maxIncrements))
	}
	return a
}

// MaxIncrements returns the heading discretization the cache was built for.
func (a *Agent) MaxIncrements() int32 { return a.maxIncrements }

// HalfExtents returns the body half width and half height in cells.
func (a *Agent) HalfExtents() (float64, float64) { return a.halfWidth, a.halfHeight }

// RotationFootprint returns the cached cell offsets covered by the body
// at the given heading, relative to the agent center. The slice is
// shared and must not be modified.
func (a *Agent) RotationFootprint(heading int32) []Offset {
	return a.footprints[heading]
}

// Footprint returns the cells covered by the body at the given position
// and heading, as a fresh translated copy.
func (a *Agent) Footprint(x, y, heading int32) []Offset {
	cached := a.footprints[heading]
	cells := make([]Offset, len(cached))
	for i, off := range cached {
		cells[i] = Offset{X: x + off.X, Y: y + off.Y}
	}
	return cells
}

// buildFootprint collects every cell whose unit square overlaps the body
// rectangle rotated to the given angle. The rectangle is centered at
// (0.5, 0.5), the middle of the agent's own cell, so a body smaller
// than one cell degrades to the single offset (0,0).
func buildFootprint(halfW, halfH float64, angle float64) []Offset {
	sin, cos := math.Sincos(angle)

	corners := [4][2]float64{
		{-halfW, -halfH},
		{halfW, -halfH},
		{halfW, halfH},
		{-halfW, halfH},
	}

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, c := range corners {
		x := c[0]*cos - c[1]*sin + 0.5
		y := c[0]*sin + c[1]*cos + 0.5
		minX = math.Min(minX, x)
		maxX = math.Max(maxX, x)
		minY = math.Min(minY, y)
		maxY = math.Max(maxY, y)
	}

	var cells []Offset
	for x := int32(math.Round(minX)); x <= int32(math.Round(maxX)); x++ {
		for y := int32(math.Round(minY)); y <= int32(math.Round(maxY)); y++ {
			if cellOverlapsRect(float64(x), float64(y), 0.5, 0.5, halfW, halfH, angle) {
				cells = append(cells, Offset{X: x, Y: y})
			}
		}
	}
	return cells
}

// cellOverlapsRect reports whether the unit cell with min corner
// (cellX, cellY) overlaps the rectangle centered at (cx, cy) with the
// given half extents and rotation. Separating axis theorem over four
// candidate axes: the rectangle's two face normals and the grid axes.
func cellOverlapsRect(cellX, cellY, cx, cy, halfW, halfH, angle float64) bool {
	sin, cos := math.Sincos(angle)

	rect := [4][2]float64{}
	for i, c := range [4][2]float64{
		{halfW, halfH},
		{halfW, -halfH},
		{-halfW, halfH},
		{-halfW, -halfH},
	} {
		rect[i] = [2]float64{
			cx + c[0]*cos - c[1]*sin,
			cy + c[0]*sin + c[1]*cos,
		}
	}

	cell := [4][2]float64{
		{cellX, cellY},
		{cellX + 1, cellY},
		{cellX, cellY + 1},
		{cellX + 1, cellY + 1},
	}

	axes := [4][2]float64{
		{cos, sin},
		{-sin, cos},
		{1, 0},
		{0, 1},
	}

	for _, axis := range axes {
		rMin, rMax := projectOntoAxis(rect, axis)
		cMin, cMax := projectOntoAxis(cell, axis)
		if rMax < cMin || cMax < rMin {
			return false
		}
	}
	return true
}

func projectOntoAxis(vertices [4][2]float64, axis [2]float64) (float64, float64) {
	min := vertices[0][0]*axis[0] + vertices[0][1]*axis[1]
	max := min
	for _, v := range vertices[1:] {
		p := v[0]*axis[0] + v[1]*axis[1]
		if p < min {
			min = p
		}
		if p > max {
			max = p
		}
	}
	return min, max
}
