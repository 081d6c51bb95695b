package nav

import "math"

// A heading is a discretized orientation in [0, maxIncrements), where
// heading h corresponds to the angle h * 2π / maxIncrements and heading
// 0 points along +X. All heading arithmetic is modular.

// Offset is a cell-relative integer displacement.
type Offset struct {
	X, Y int32
}

// Pose is a search state: a grid position plus a discretized heading.
// Reverse records that the pose was entered driving backward. It takes
// part in equality, so a forward arrival and a reverse arrival at the
// same position and heading are tracked as distinct states.
type Pose struct {
	X, Y    int32
	Heading int32
	Reverse bool
}

// ClampHeading wraps a heading one step over or under the valid range
// back into [0, maxIncrements).
func ClampHeading(h, maxIncrements int32) int32 {
	if h < 0 {
		return maxIncrements + h
	}
	if h >= maxIncrements {
		return h - maxIncrements
	}
	return h
}

// OppositeHeading returns the heading rotated by a half turn.
func OppositeHeading(h, maxIncrements int32) int32 {
	return ClampHeading(h+maxIncrements/2, maxIncrements)
}

// HeadingDistance returns the smallest number of increments separating
// two headings, whichever rotation direction is shorter.
func HeadingDistance(a, b, maxIncrements int32) int32 {
	clockwise := (b - a + maxIncrements) % maxIncrements
	counter := (a - b + maxIncrements) % maxIncrements
	if clockwise < counter {
		return clockwise
	}
	return counter
}

// headingAngle returns the heading's angle in radians.
func headingAngle(h, maxIncrements int32) float64 {
	return 2 * math.Pi * float64(h) / float64(maxIncrements)
}

// headingOffset returns the one-cell step a heading points at: cosine
// and sine rounded, then clamped to {-1, 0, 1} per axis.
func headingOffset(h, maxIncrements int32) Offset {
	sin, cos := math.Sincos(headingAngle(h, maxIncrements))
	return Offset{
		X: clampUnit(int32(math.Round(cos))),
		Y: clampUnit(int32(math.Round(sin))),
	}
}

func clampUnit(v int32) int32 {
	if v < -1 {
		return -1
	}
	if v > 1 {
		return 1
	}
	return v
}
