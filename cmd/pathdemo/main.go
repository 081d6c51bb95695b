// pathdemo runs a single motion-planning query from the command line.
// It stands in for the rendering front end: it owns the occupancy grid,
// toggles cells blocked, and prints the resulting pose sequence.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/skyne98/vehicle-pathfinding/internal/config"
	"github.com/skyne98/vehicle-pathfinding/internal/nav"
)

const DefaultConfigPath = "config/planner.yaml"

func main() {
	if err := run(); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run() error {
	cfgPath := flag.String("config", DefaultConfigPath, "planner config file")
	startArg := flag.String("start", "0,0", "start cell as x,y")
	headingArg := flag.Int("heading", 0, "start heading increment")
	goalArg := flag.String("goal", "5,0", "goal cell as x,y")
	blockedArg := flag.String("blocked", "", "blocked cells as x,y;x,y;...")
	flag.Parse()

	if p := os.Getenv("PATHDEMO_CONFIG"); p != "" && *cfgPath == DefaultConfigPath {
		*cfgPath = p
	}
	cfg, err := config.LoadPlanner(*cfgPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.LogLevel),
	})))

	startX, startY, err := parseCell(*startArg)
	if err != nil {
		return fmt.Errorf("parsing -start: %w", err)
	}
	goalX, goalY, err := parseCell(*goalArg)
	if err != nil {
		return fmt.Errorf("parsing -goal: %w", err)
	}

	grid := nav.NewGrid(cfg.GridWidth, cfg.GridHeight)
	if *blockedArg != "" {
		for _, cell := range strings.Split(*blockedArg, ";") {
			x, y, err := parseCell(cell)
			if err != nil {
				return fmt.Errorf("parsing -blocked: %w", err)
			}
			grid.Toggle(x, y)
		}
	}

	planner, err := nav.NewPlanner(grid, nav.Params{
		MaxIncrements:     cfg.MaxIncrements,
		Arc:               cfg.Arc,
		HalfWidth:         cfg.AgentWidth / 2,
		HalfHeight:        cfg.AgentHeight / 2,
		ReverseMultiplier: cfg.ReverseMultiplier,
	})
	if err != nil {
		return err
	}

	path, cost, ok := planner.FindPath(startX, startY, int32(*headingArg), goalX, goalY)
	if !ok {
		fmt.Println("no path")
		return nil
	}

	fmt.Printf("path of %d poses, cost %d:\n", len(path), cost)
	for i, pose := range path {
		gear := "forward"
		if pose.Reverse {
			gear = "reverse"
		}
		fmt.Printf("%3d: (%d,%d) heading %d %s\n", i, pose.X, pose.Y, pose.Heading, gear)
	}
	return nil
}

func parseCell(s string) (int32, int32, error) {
	var x, y int32
	if _, err := fmt.Sscanf(strings.TrimSpace(s), "%d,%d", &x, &y); err != nil {
		return 0, 0, fmt.Errorf("want x,y got %q", s)
	}
	return x, y, nil
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
