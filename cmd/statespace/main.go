// Command statespace demonstrates the search strategies on the bundled
// example problems: route finding over a small town map and word building
// over a letter alphabet.
package main

import (
	"errors"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/katalvlaran/statespace/core"
	"github.com/katalvlaran/statespace/mapgraph"
	"github.com/katalvlaran/statespace/problems"
	"github.com/katalvlaran/statespace/search"
)

func main() {
	app := &cli.App{
		Name:   "statespace",
		Usage:  "State-space search demos: route finding and word building",
		Before: setupLogger,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "route",
				Usage:  "Find a route between two towns on the demo map",
				Action: routeCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "from",
						Usage:    "Start town (one of: " + townList + ")",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "to",
						Usage:    "Goal town",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "strategy",
						Usage: "Search strategy: bfs, dfs, ucs, astar, ids",
						Value: "astar",
					},
				},
			},
			{
				Name:   "word",
				Usage:  "Build a word by prepending letters, breadth-first",
				Action: wordCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "goal",
						Usage:    "Word to build",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "alphabet",
						Usage: "Letters available for building",
						Value: "abrcd",
					},
					&cli.IntFlag{
						Name:  "max-len",
						Usage: "Maximum word length to explore",
						Value: 11,
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

// setupLogger configures the global slog handler from --log-level.
func setupLogger(c *cli.Context) error {
	var level slog.Level
	switch strings.ToLower(c.String("log-level")) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return cli.Exit(fmt.Sprintf("unknown log level %q", c.String("log-level")), 2)
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))

	return nil
}

// demoMap builds the bundled town map: weights are road lengths, and every
// town carries a coordinate so the A* strategy can use straight-line
// distance.
func demoMap() *mapgraph.Graph {
	g := mapgraph.New()
	for _, e := range demoEdges {
		if err := g.AddEdge(e.u, e.v, e.w); err != nil {
			panic(err) // the bundled edge list is static and valid
		}
	}
	for id, p := range demoLocs {
		if err := g.SetLocation(id, p.X, p.Y); err != nil {
			panic(err)
		}
	}

	return g
}

var demoEdges = []struct {
	u, v string
	w    float64
}{
	{"Harbor", "Market", 4},
	{"Harbor", "Mill", 7},
	{"Market", "Chapel", 4},
	{"Market", "Forge", 6},
	{"Mill", "Forge", 5},
	{"Chapel", "Keep", 5},
	{"Forge", "Keep", 4},
	{"Forge", "Quarry", 3},
	{"Quarry", "Keep", 6},
	{"Mill", "Quarry", 8},
}

var demoLocs = map[string]mapgraph.Point{
	"Harbor": {X: 0, Y: 0},
	"Market": {X: 4, Y: 0},
	"Mill":   {X: 1, Y: 6},
	"Chapel": {X: 7, Y: 1},
	"Forge":  {X: 5, Y: 4},
	"Keep":   {X: 9, Y: 4},
	"Quarry": {X: 5, Y: 7},
}

const townList = "Harbor, Market, Mill, Chapel, Forge, Quarry, Keep"

func routeCommand(c *cli.Context) error {
	g := demoMap()
	prob, err := problems.NewRoute(g, c.String("from"), c.String("to"))
	if err != nil {
		return cli.Exit(err.Error(), 2)
	}

	strategy := strings.ToLower(c.String("strategy"))
	slog.Debug("running route search", "strategy", strategy, "from", c.String("from"), "to", c.String("to"))

	var goal *core.Node[string, string]
	switch strategy {
	case "bfs":
		goal, err = search.BreadthFirstGraph[string, string](prob)
	case "dfs":
		goal, err = search.DepthFirstGraph[string, string](prob)
	case "ucs":
		goal, err = search.UniformCost[string, string](prob)
	case "astar":
		goal, err = search.AStar(prob, problems.EuclideanHeuristic(g, c.String("to")))
	case "ids":
		goal, err = search.IterativeDeepening[string, string](prob, search.WithMaxDepth(32))
	default:
		return cli.Exit(fmt.Sprintf("unknown strategy %q", strategy), 2)
	}
	if errors.Is(err, search.ErrNoSolution) {
		return cli.Exit(fmt.Sprintf("no route from %s to %s", c.String("from"), c.String("to")), 1)
	}
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	fmt.Printf("%s  (cost %.1f, %d steps)\n", strings.Join(goal.States(), " -> "), goal.PathCost, goal.Depth)

	return nil
}

func wordCommand(c *cli.Context) error {
	prob, err := problems.NewWords(c.String("goal"), c.String("alphabet"), c.Int("max-len"))
	if err != nil {
		return cli.Exit(err.Error(), 2)
	}

	expanded := 0
	goal, err := search.BreadthFirstTree[string, string](prob,
		search.WithOnExpand(func(int, float64) { expanded++ }),
	)
	if errors.Is(err, search.ErrNoSolution) {
		return cli.Exit(fmt.Sprintf("cannot build %q from %q within %d letters",
			c.String("goal"), c.String("alphabet"), c.Int("max-len")), 1)
	}
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	slog.Info("word found", "expanded", expanded, "depth", goal.Depth)
	fmt.Println(strings.Join(goal.States(), " | "))

	return nil
}
