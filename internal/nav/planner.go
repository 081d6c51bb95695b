package nav

import (
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/skyne98/vehicle-pathfinding/internal/search"
)

// Params configures a Planner.
type Params struct {
	// MaxIncrements partitions a full turn into discrete headings.
	MaxIncrements int32
	// Arc is the maximum forward turn in increments per step.
	Arc int32
	// HalfWidth and HalfHeight are the body half extents in cells.
	HalfWidth  float64
	HalfHeight float64
	// ReverseMultiplier is the flat penalty factor on reverse moves;
	// 0 selects DefaultReverseMultiplier.
	ReverseMultiplier uint32
}

// Planner answers path queries for one agent over a caller-maintained
// occupancy grid. The footprint and template caches are built once in
// NewPlanner and shared read-only across queries, so concurrent FindPath
// calls are safe as long as the grid is not mutated mid-query. The
// planner borrows the grid; the caller keeps mutating it between
// queries via Toggle.
type Planner struct {
	grid      *Grid
	agent     *Agent
	templates *TemplateCache
	cost      CostModel
}

// NewPlanner builds the caches for the given grid and agent parameters.
// Footprints and motion templates are independent, so the two caches are
// built concurrently.
func NewPlanner(grid *Grid, p Params) (*Planner, error) {
	if grid == nil {
		return nil, fmt.Errorf("nav: planner needs a grid")
	}
	if p.ReverseMultiplier == 0 {
		p.ReverseMultiplier = DefaultReverseMultiplier
	}

	var (
		agent     *Agent
		templates *TemplateCache
		eg        errgroup.Group
	)
	eg.Go(func() error {
		agent = NewAgent(p.HalfWidth, p.HalfHeight, p.MaxIncrements)
		return nil
	})
	eg.Go(func() error {
		var err error
		templates, err = NewTemplateCache(p.MaxIncrements, p.Arc)
		return err
	})
	if err := eg.Wait(); err != nil {
		return nil, fmt.Errorf("building planner caches: %w", err)
	}

	slog.Info("planner caches built",
		"increments", p.MaxIncrements,
		"arc", p.Arc,
		"footprint_cells", len(agent.RotationFootprint(0)),
		"moves_heading_0", len(templates.MovesFor(0)))

	return &Planner{
		grid:      grid,
		agent:     agent,
		templates: templates,
		cost:      NewCostModel(p.MaxIncrements, p.ReverseMultiplier),
	}, nil
}

// Grid returns the occupancy grid the planner was built over.
func (p *Planner) Grid() *Grid { return p.grid }

// Agent returns the agent whose footprints gate the search.
func (p *Planner) Agent() *Agent { return p.agent }

// FindPath searches for a motion path from the start pose to the goal
// position. The goal test is position-only; any heading at the goal
// cell counts. ok is false when the goal is unreachable, which is a
// normal result rather than an error.
func (p *Planner) FindPath(startX, startY, startHeading, goalX, goalY int32) ([]Pose, uint32, bool) {
	maxIncrements := p.agent.MaxIncrements()
	start := Pose{X: startX, Y: startY, Heading: ClampHeading(startHeading, maxIncrements)}
	capacity := int(p.grid.Width()) * int(p.grid.Height()) * int(maxIncrements)

	path, total, ok := search.FindPath(
		start,
		capacity,
		p.neighbors,
		func(s Pose) uint32 { return p.cost.Heuristic(s, goalX, goalY) },
		func(s Pose) bool { return s.X == goalX && s.Y == goalY },
	)
	if !ok {
		slog.Debug("no path",
			"start_x", startX, "start_y", startY, "heading", start.Heading,
			"goal_x", goalX, "goal_y", goalY)
		return nil, 0, false
	}

	slog.Debug("path found", "poses", len(path), "cost", total)
	return path, total, true
}

// neighbors expands the motion templates for a pose, dropping any move
// whose resulting footprint touches a blocked cell.
func (p *Planner) neighbors(s Pose) []search.Edge[Pose] {
	moves := p.templates.MovesFor(s.Heading)
	edges := make([]search.Edge[Pose], 0, len(moves))
	for _, m := range moves {
		next := Pose{
			X:       s.X + m.Offset.X,
			Y:       s.Y + m.Offset.Y,
			Heading: m.Heading,
			Reverse: m.Reverse,
		}
		if p.footprintBlocked(next) {
			continue
		}
		from := s
		edges = append(edges, search.Edge[Pose]{State: next, Cost: p.cost.Cost(next, &from)})
	}
	return edges
}

func (p *Planner) footprintBlocked(pose Pose) bool {
	for _, off := range p.agent.RotationFootprint(pose.Heading) {
		if p.grid.IsBlocked(pose.X+off.X, pose.Y+off.Y) {
			return true
		}
	}
	return false
}
