package nav

import "math"

// Cost scaling. Edge costs are integer-scaled so the search works on
// uint32 arithmetic. The heuristic deliberately uses a much smaller
// scale than the edge distance cost; squared-distance heuristics
// overestimate over long spans, so the search is near-optimal
// best-first rather than provably shortest.
const (
	angleCostScale    = 1000
	distanceCostScale = 1000
	heuristicScale    = 10
)

// Physical constants behind the turning penalty. The maximum safe
// cornering speed for a turn of angle θ is sqrt(μg/θ), capped at the
// reference speed; the penalty is the fraction of reference speed lost.
const (
	referenceSpeed = 10.0
	frictionCoeff  = 0.7
	gravity        = 9.81
)

// DefaultReverseMultiplier is the flat penalty factor on reverse moves.
const DefaultReverseMultiplier = 5

// CostModel scores motion edges: a speed-loss turning penalty plus a
// squared-distance travel cost, multiplied when the move is in reverse.
type CostModel struct {
	maxIncrements     int32
	reverseMultiplier uint32
}

// NewCostModel creates a cost model for the given heading
// discretization. A multiplier below 1 is treated as 1.
func NewCostModel(maxIncrements int32, reverseMultiplier uint32) CostModel {
	if reverseMultiplier < 1 {
		reverseMultiplier = 1
	}
	return CostModel{
		maxIncrements:     maxIncrements,
		reverseMultiplier: reverseMultiplier,
	}
}

// Cost returns the edge cost of entering to from from. A nil from marks
// the start state, which costs nothing.
func (m CostModel) Cost(to Pose, from *Pose) uint32 {
	if from == nil {
		return 0
	}

	turn := HeadingDistance(from.Heading, to.Heading, m.maxIncrements)
	angleCost := uint32(m.speedLoss(turn) * angleCostScale)

	dx := float64(to.X - from.X)
	dy := float64(to.Y - from.Y)
	distanceCost := uint32((dx*dx + dy*dy) * distanceCostScale)

	total := angleCost + distanceCost
	if to.Reverse {
		total *= m.reverseMultiplier
	}
	return total
}

// Heuristic estimates the remaining cost to the goal position from the
// squared Euclidean distance. Heading and reverse state are irrelevant
// to reaching the goal.
func (m CostModel) Heuristic(p Pose, goalX, goalY int32) uint32 {
	dx := float64(p.X - goalX)
	dy := float64(p.Y - goalY)
	return uint32((dx*dx + dy*dy) * heuristicScale)
}

// speedLoss returns the fraction of the reference speed given up to
// corner by the given number of increments, clamped to [0, 1].
func (m CostModel) speedLoss(turnIncrements int32) float64 {
	if turnIncrements == 0 {
		return 0
	}
	theta := headingAngle(turnIncrements, m.maxIncrements)
	maxSafe := math.Sqrt(frictionCoeff * gravity / theta)
	if maxSafe > referenceSpeed {
		maxSafe = referenceSpeed
	}
	loss := (referenceSpeed - maxSafe) / referenceSpeed
	return math.Min(1, math.Max(0, loss))
}
