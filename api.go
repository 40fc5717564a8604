package astar

import (
	"context"
	"log/slog"
	"runtime"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// CornerRule decides which diagonal steps need clear orthogonal cells.
type CornerRule int

const (
	// CornerStrict rejects a diagonal step unless both orthogonal cells it
	// passes between are walkable.
	CornerStrict CornerRule = iota
	// CornerLegacy only checks the cell beside right-down and left-up steps.
	CornerLegacy
)

// Options defines parameters for the engine.
type Options struct {
	NumberOfWorkers int
	MaxOpenNodes    int
	Heuristic       Heuristic
	CornerRule      CornerRule
	Logger          *slog.Logger
}

// Option is a function that modifies Options.
type Option func(*Options)

// WithWorkers specifies how many goroutines SearchAll runs.
func WithWorkers(numberOfWorkers int) Option {
	return func(options *Options) { options.NumberOfWorkers = numberOfWorkers }
}

// WithMaxOpenNodes lowers the open-list ceiling below MaxOpenNodeSize.
func WithMaxOpenNodes(n int) Option {
	return func(options *Options) { options.MaxOpenNodes = n }
}

func WithHeuristic(h Heuristic) Option {
	return func(options *Options) { options.Heuristic = h }
}

func WithCornerRule(rule CornerRule) Option {
	return func(options *Options) { options.CornerRule = rule }
}

func WithLogger(logger *slog.Logger) Option {
	return func(options *Options) { options.Logger = logger }
}

func resolveOptions(options []Option) Options {
	opts := Options{
		NumberOfWorkers: runtime.NumCPU(),
		MaxOpenNodes:    MaxOpenNodeSize,
		Heuristic:       HCost,
	}
	for _, option := range options {
		option(&opts)
	}
	if opts.Heuristic == nil {
		opts.Heuristic = HCost
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	return opts
}

// Stats describes the last search an engine ran.
type Stats struct {
	Expanded int
	PeakOpen int
}

// Engine runs grid searches. It keeps its open list between calls so repeated
// searches do not reallocate. An Engine is not safe for concurrent use; see
// Pool for per-goroutine engines.
type Engine struct {
	nodes     *Nodes
	heuristic Heuristic
	corners   CornerRule
	logger    *slog.Logger
	stats     Stats
}

// New creates an engine.
func New(options ...Option) *Engine {
	opts := resolveOptions(options)
	return &Engine{
		nodes:     newNodes(opts.MaxOpenNodes),
		heuristic: opts.Heuristic,
		corners:   opts.CornerRule,
		logger:    opts.Logger,
	}
}

// Stats returns counters from the most recent search.
func (e *Engine) Stats() Stats { return e.stats }

// IsClean reports whether neither the engine nor grid hold search state.
func (e *Engine) IsClean(grid *Grid) bool {
	return e.nodes.IsClean() && grid.IsClean()
}

// Search finds a route from (sx, sy) to (ex, ey). An empty Path means there is
// no route; a non-nil error is a fault.
func (e *Engine) Search(sx, sy, ex, ey int, grid *Grid, smooth bool) (*Path, error) {
	return e.SearchContext(context.Background(), sx, sy, ex, ey, grid, smooth)
}

// SearchInto is Search writing into a caller-owned path.
func (e *Engine) SearchInto(sx, sy, ex, ey int, grid *Grid, path *Path, smooth bool) error {
	return e.SearchIntoContext(context.Background(), sx, sy, ex, ey, grid, path, smooth)
}

func (e *Engine) SearchContext(ctx context.Context, sx, sy, ex, ey int, grid *Grid, smooth bool) (*Path, error) {
	path := NewPath()
	err := e.SearchIntoContext(ctx, sx, sy, ex, ey, grid, path, smooth)
	return path, err
}

// SearchIntoContext is the traced and measured entry point behind the other
// Search variants. It checks ctx every few thousand expansions.
func (e *Engine) SearchIntoContext(ctx context.Context, sx, sy, ex, ey int, grid *Grid, path *Path, smooth bool) error {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "astar.Engine.Search",
		trace.WithAttributes(
			attribute.Int("start.x", sx),
			attribute.Int("start.y", sy),
			attribute.Int("goal.x", ex),
			attribute.Int("goal.y", ey),
			attribute.Bool("smooth", smooth),
		),
	)
	defer span.End()

	began := time.Now()
	result, err := e.run(ctx, sx, sy, ex, ey, grid, path, smooth)
	duration := time.Since(began)
	observeSearch(result, err, duration, e.stats)

	span.SetAttributes(
		attribute.String("result", string(result)),
		attribute.Int("expanded", e.stats.Expanded),
		attribute.Int("path.size", path.Size()),
	)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, FaultKind(err))
		e.logger.Warn("astar search fault",
			slog.String("kind", FaultKind(err)),
			slog.String("start", ToPoint(sx, sy).String()),
			slog.String("goal", ToPoint(ex, ey).String()),
			slog.Int("expanded", e.stats.Expanded),
			slog.Int("peak_open", e.stats.PeakOpen),
			slog.Any("error", err),
		)
		return err
	}
	span.SetStatus(codes.Ok, string(result))
	e.logger.Debug("astar search",
		slog.String("result", string(result)),
		slog.String("start", ToPoint(sx, sy).String()),
		slog.String("goal", ToPoint(ex, ey).String()),
		slog.Int("expanded", e.stats.Expanded),
		slog.Int("path_size", path.Size()),
		slog.Duration("duration", duration),
	)
	return nil
}

type searchResult string

const (
	resultFound    searchResult = "found"
	resultNoPath   searchResult = "no_path"
	resultRejected searchResult = "rejected"
	resultFault    searchResult = "fault"
)

// ctxCheckMask sets how often run polls ctx, in closed nodes.
const ctxCheckMask = 1<<12 - 1

func (e *Engine) run(ctx context.Context, sx, sy, ex, ey int, grid *Grid, path *Path, smooth bool) (searchResult, error) {
	path.Clear()
	e.stats = Stats{}

	started, err := e.begin(sx, sy, ex, ey, grid)
	if err != nil {
		return resultFault, err
	}
	if !started {
		return resultRejected, nil
	}
	defer e.reset(grid)

	for {
		if e.stats.Expanded&ctxCheckMask == 0 {
			if err := ctx.Err(); err != nil {
				return resultFault, err
			}
		}
		n, state, err := e.advance(ex, ey, grid)
		if err != nil {
			path.Clear()
			return resultFault, err
		}
		switch state {
		case stepExhausted:
			return resultNoPath, nil
		case stepGoal:
			e.reconstruct(n.X(), n.Y(), sx, sy, path, grid, smooth)
			return resultFound, nil
		}
	}
}

type stepState int

const (
	stepExpanded stepState = iota
	stepExhausted
	stepGoal
)

// begin validates the endpoints and seeds the open list. It returns false
// when the endpoints cannot form a route.
func (e *Engine) begin(sx, sy, ex, ey int, grid *Grid) (bool, error) {
	if sx == ex && sy == ey {
		return false, nil
	}
	if !grid.IsWalkable(sx, sy) || !grid.IsWalkable(ex, ey) {
		return false, nil
	}
	e.nodes.bind(grid)
	if err := e.nodes.Open(sx, sy, 0, e.heuristic(sx, sy, ex, ey), DirNone); err != nil {
		e.reset(grid)
		return false, err
	}
	e.stats.PeakOpen = e.nodes.Size()
	return true, nil
}

// advance closes the cheapest open node and, unless it is the goal, expands
// its neighbours.
func (e *Engine) advance(ex, ey int, grid *Grid) (Node, stepState, error) {
	n, ok := e.nodes.Close()
	if !ok {
		return 0, stepExhausted, nil
	}
	e.stats.Expanded++
	if n.X() == ex && n.Y() == ey {
		return n, stepGoal, nil
	}
	if err := e.expand(n, ex, ey, grid); err != nil {
		return n, stepExpanded, err
	}
	if size := e.nodes.Size(); size > e.stats.PeakOpen {
		e.stats.PeakOpen = size
	}
	return n, stepExpanded, nil
}

// reset restores the clean state every search must end in.
func (e *Engine) reset(grid *Grid) {
	e.nodes.Clear()
	e.nodes.bind(nil)
	grid.Clear()
}

// Neighbour offsets with the parent direction recorded at the neighbour.
var expansions = [...]struct {
	dx, dy int
	dir    Direction
	cost   int
}{
	{0, 1, DirDown, CostOrthogonal},
	{0, -1, DirUp, CostOrthogonal},
	{-1, 0, DirRight, CostOrthogonal},
	{1, 0, DirLeft, CostOrthogonal},
	{-1, 1, DirRightDown, CostDiagonal},
	{1, 1, DirLeftDown, CostDiagonal},
	{-1, -1, DirRightUp, CostDiagonal},
	{1, -1, DirLeftUp, CostDiagonal},
}

func (e *Engine) expand(n Node, ex, ey int, grid *Grid) error {
	x, y, g := n.X(), n.Y(), n.G()
	for _, s := range expansions {
		if err := e.open(x+s.dx, y+s.dy, g+s.cost, s.dir, ex, ey, grid); err != nil {
			return err
		}
	}
	return nil
}

// open offers cell (x, y), whose parent lies toward dir, to the open list.
func (e *Engine) open(x, y, g int, dir Direction, ex, ey int, grid *Grid) error {
	if !grid.IsWalkable(x, y) {
		return nil
	}
	if dir.Diagonal() && !e.cornerClear(x, y, dir, grid) {
		return nil
	}
	return e.nodes.Open(x, y, g, e.heuristic(x, y, ex, ey), dir)
}

// cornerClear checks the orthogonal cells a diagonal step into (x, y) passes
// between.
func (e *Engine) cornerClear(x, y int, dir Direction, grid *Grid) bool {
	switch e.corners {
	case CornerLegacy:
		switch dir {
		case DirRightDown:
			return grid.IsWalkable(x+1, y)
		case DirLeftUp:
			return grid.IsWalkable(x, y+1)
		}
		return true
	default:
		dx, dy := dir.Offset()
		return grid.IsWalkable(x+dx, y) && grid.IsWalkable(x, y+dy)
	}
}

// reconstruct follows parent directions from the goal (ex, ey) back to the
// start, so the start ends up at index 0 of path.
func (e *Engine) reconstruct(ex, ey, sx, sy int, path *Path, grid *Grid, smooth bool) {
	x, y := ex, ey
	e.fillPath(x, y, path, grid, smooth)
	for x != sx || y != sy {
		dir := grid.NodeParentDirection(x, y)
		if dir == DirNone {
			break
		}
		dx, dy := dir.Offset()
		x, y = x+dx, y+dy
		e.fillPath(x, y, path, grid, smooth)
	}
}

// fillPath appends (x, y). When smoothing and the waypoint before the last one
// can see (x, y) directly, the last waypoint is replaced instead.
func (e *Engine) fillPath(x, y int, path *Path, grid *Grid, smooth bool) {
	if smooth && path.Size() >= 2 {
		prev := path.Get(1)
		if IsReachable(prev.X(), prev.Y(), x, y, grid) {
			path.Remove()
		}
	}
	path.Add(x, y)
}
