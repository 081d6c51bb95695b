package nav

import (
	"fmt"
	"math"
)

// Move is one precomputed motion primitive: the cell offset to step by,
// the heading after the step, and whether the step is driven in reverse.
type Move struct {
	Offset  Offset
	Heading int32
	Reverse bool
}

// TemplateCache maps each heading increment to its candidate moves.
// Built once per (maxIncrements, arc) pair and read-only afterwards.
type TemplateCache struct {
	maxIncrements int32
	arc           int32
	moves         [][]Move
	cardinal      map[Offset]int32
}

// NewTemplateCache precomputes the motion templates. Forward candidates
// cover turns within ±arc increments, reverse candidates a doubled arc.
// A configuration that would produce a zero-offset move is rejected here
// so it never reaches search time.
func NewTemplateCache(maxIncrements, arc int32) (*TemplateCache, error) {
	if maxIncrements < 4 {
		return nil, fmt.Errorf("nav: need at least 4 heading increments, got %d", maxIncrements)
	}
	if arc < 1 || 2*arc >= maxIncrements {
		return nil, fmt.Errorf("nav: arc %d out of range for %d increments", arc, maxIncrements)
	}

	c := &TemplateCache{
		maxIncrements: maxIncrements,
		arc:           arc,
		moves:         make([][]Move, maxIncrements),
		cardinal:      make(map[Offset]int32, 8),
	}

	// Map each compass direction to the heading pointing most directly
	// at it. Straight moves are only meaningful along these headings;
	// a straight move at any other heading skips over grid cells.
	directions := []Offset{
		{0, 1}, {1, 0}, {0, -1}, {-1, 0},
		{1, 1}, {1, -1}, {-1, 1}, {-1, -1},
	}
	for _, dir := range directions {
		best := int32(0)
		bestDot := math.Inf(-1)
		for h := int32(0); h < maxIncrements; h++ {
			sin, cos := math.Sincos(headingAngle(h, maxIncrements))
			dot := cos*float64(dir.X) + sin*float64(dir.Y)
			if dot > bestDot {
				bestDot = dot
				best = h
			}
		}
		c.cardinal[dir] = best
	}

	for h := int32(0); h < maxIncrements; h++ {
		moves, err := c.buildMoves(h)
		if err != nil {
			return nil, err
		}
		c.moves[h] = moves
	}
	return c, nil
}

// MaxIncrements returns the heading discretization the cache was built for.
func (c *TemplateCache) MaxIncrements() int32 { return c.maxIncrements }

// Arc returns the maximum forward turn in increments per step.
func (c *TemplateCache) Arc() int32 { return c.arc }

// MovesFor returns the candidate moves for a heading. The slice is
// shared and must not be modified.
func (c *TemplateCache) MovesFor(heading int32) []Move {
	return c.moves[heading]
}

func (c *TemplateCache) buildMoves(heading int32) ([]Move, error) {
	moves := make([]Move, 0, 6*c.arc+2)

	for i := -c.arc; i <= c.arc; i++ {
		h := ClampHeading(heading+i, c.maxIncrements)
		off := headingOffset(h, c.maxIncrements)
		if off == (Offset{}) {
			return nil, fmt.Errorf("nav: zero-offset move at heading %d (arc %d, %d increments)", h, c.arc, c.maxIncrements)
		}
		moves = append(moves, Move{Offset: off, Heading: h})
	}

	// Reverse candidates travel along the flipped heading while the body
	// keeps facing the other way.
	opposite := OppositeHeading(heading, c.maxIncrements)
	for i := -2 * c.arc; i <= 2*c.arc; i++ {
		h := ClampHeading(opposite+i, c.maxIncrements)
		off := headingOffset(h, c.maxIncrements)
		if off == (Offset{}) {
			return nil, fmt.Errorf("nav: zero-offset reverse move at heading %d (arc %d, %d increments)", h, c.arc, c.maxIncrements)
		}
		moves = append(moves, Move{
			Offset:  off,
			Heading: OppositeHeading(h, c.maxIncrements),
			Reverse: true,
		})
	}

	// Keep a candidate only if it turned, reversed, or goes straight
	// along a cardinal heading.
	kept := moves[:0]
	for _, m := range moves {
		if m.Reverse || m.Heading != heading || c.isCardinal(m.Heading) {
			kept = append(kept, m)
		}
	}
	return kept, nil
}

func (c *TemplateCache) isCardinal(heading int32) bool {
	for _, h := range c.cardinal {
		if h == heading {
			return true
		}
	}
	return false
}
