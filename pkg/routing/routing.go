package routing

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/natevvv/grid-path-search/pkg/grid"
	"github.com/natevvv/grid-path-search/pkg/grid/path"
)

// Route is the outcome of one strategy for one query.
type Route struct {
	Algorithm   path.Algorithm
	Origin      grid.Position
	Destination grid.Position
	Exists      bool            // whether a path was found
	Waypoints   []grid.Position // origin..destination inclusive, empty if no path exists
	Length      int             // number of moves
	Expansions  int
	SearchSpace []grid.Position // cells taken from the frontier, in order
	Duration    time.Duration
}

// Router validates queries and runs the strategies selected by its mode on a shared grid.
// Every run uses a new navigator, so ComputeRoutesWithMode and ComputeRoute may be called
// concurrently. SetMode must not race with ComputeRoutes.
type Router struct {
	grid       *grid.Grid
	mode       Mode
	logger     *slog.Logger
	metrics    *Metrics
	debugLevel int
}

type Option func(*Router)

func WithLogger(logger *slog.Logger) Option {
	return func(r *Router) { r.logger = logger }
}

// WithMetrics records every run in m.
func WithMetrics(m *Metrics) Option {
	return func(r *Router) { r.metrics = m }
}

// WithDebugLevel enables the expansion trace of the navigators.
func WithDebugLevel(level int) Option {
	return func(r *Router) { r.debugLevel = level }
}

// NewRouter creates a router for g running A* until another mode is set.
func NewRouter(g *grid.Grid, opts ...Option) *Router {
	r := &Router{
		grid:   g,
		mode:   ModeAStar,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// SetMode selects the strategies used by ComputeRoutes. Unknown modes are rejected and
// leave the current mode unchanged.
func (r *Router) SetMode(name string) bool {
	mode, err := ParseMode(name)
	if err != nil {
		r.logger.Warn("rejected search mode", "mode", name)
		return false
	}
	r.mode = mode
	return true
}

func (r *Router) Mode() Mode          { return r.mode }
func (r *Router) GetGrid() *grid.Grid { return r.grid }

// Validate checks that both positions are free cells of the grid and differ.
func (r *Router) Validate(origin, destination grid.Position) error {
	if err := r.grid.CheckPosition(origin); err != nil {
		return fmt.Errorf("origin: %w", err)
	}
	if err := r.grid.CheckPosition(destination); err != nil {
		return fmt.Errorf("destination: %w", err)
	}
	if origin == destination {
		return fmt.Errorf("%w: %v", ErrSameOriginDestination, origin)
	}
	return nil
}

// ComputeRoutes runs the strategies of the current mode.
func (r *Router) ComputeRoutes(origin, destination grid.Position) ([]Route, error) {
	return r.ComputeRoutesWithMode(origin, destination, r.mode)
}

// ComputeRoutesWithMode validates the query once and runs the strategies of mode in order,
// one route per strategy.
func (r *Router) ComputeRoutesWithMode(origin, destination grid.Position, mode Mode) ([]Route, error) {
	algorithms := mode.Algorithms()
	if len(algorithms) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrUnknownMode, mode)
	}
	if err := r.validate(origin, destination); err != nil {
		return nil, err
	}

	routes := make([]Route, 0, len(algorithms))
	for _, algorithm := range algorithms {
		routes = append(routes, r.run(algorithm, origin, destination))
	}
	return routes, nil
}

// ComputeRoute runs a single strategy.
func (r *Router) ComputeRoute(origin, destination grid.Position, algorithm path.Algorithm) (Route, error) {
	if err := r.validate(origin, destination); err != nil {
		return Route{}, err
	}
	return r.run(algorithm, origin, destination), nil
}

func (r *Router) validate(origin, destination grid.Position) error {
	err := r.Validate(origin, destination)
	if err != nil {
		r.logger.Warn("rejected query", "origin", origin.String(), "destination", destination.String(), "error", err)
	}
	return err
}

func (r *Router) run(algorithm path.Algorithm, origin, destination grid.Position) Route {
	navigator := r.newNavigator(algorithm)

	start := time.Now()
	result := path.Search(navigator, origin, destination)
	elapsed := time.Since(start)

	route := Route{
		Algorithm:   algorithm,
		Origin:      origin,
		Destination: destination,
		Exists:      result.Found,
		Waypoints:   result.Path,
		Expansions:  result.Expansions,
		SearchSpace: navigator.GetSearchSpace(),
		Duration:    elapsed,
	}
	if route.Exists {
		route.Length = len(route.Waypoints) - 1
	}

	r.metrics.observe(route)
	r.logger.Debug("search finished",
		"algorithm", algorithm.String(),
		"origin", origin.String(),
		"destination", destination.String(),
		"found", route.Exists,
		"expansions", route.Expansions,
		"length", route.Length,
		"duration", elapsed)
	return route
}

func (r *Router) newNavigator(algorithm path.Algorithm) path.Navigator {
	switch algorithm {
	case path.BFS:
		n := path.NewBreadthFirstSearch(r.grid)
		n.SetDebugLevel(r.debugLevel)
		return n
	case path.DFS:
		n := path.NewDepthFirstSearch(r.grid)
		n.SetDebugLevel(r.debugLevel)
		return n
	case path.AStar:
		n := path.NewAStarSearch(r.grid)
		n.SetDebugLevel(r.debugLevel)
		return n
	}
	return path.NewNavigator(algorithm, r.grid)
}
