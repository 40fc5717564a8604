package astar

import "context"

// StepSnapshot exposes the per-iteration state of the search
type StepSnapshot struct {
	Current   Point
	Open      []Point
	Closed    []Point
	Done      bool
	Found     bool
	Path      *Path
	StepIndex int
}

// Stepper runs a search one closed node per Step, for UIs and debugging.
// It owns the grid's search state until it is done or closed.
type Stepper struct {
	ctx    context.Context
	engine *Engine
	grid   *Grid
	start  Point
	goal   Point
	smooth bool

	stepCount int
	started   bool
	done      bool
	found     bool
}

// NewStepper prepares a step-by-step search from start to goal
func NewStepper(
	ctx context.Context,
	grid *Grid,
	start Point,
	goal Point,
	smooth bool,
	options ...Option,
) *Stepper {
	return &Stepper{
		ctx:    ctx,
		engine: New(options...),
		grid:   grid,
		start:  start,
		goal:   goal,
		smooth: smooth,
	}
}

// Close abandons the search and cleans the grid
func (s *Stepper) Close() {
	if s.started && !s.done {
		s.engine.reset(s.grid)
	}
	s.done = true
}

// Step closes one node and returns a snapshot
func (s *Stepper) Step() (StepSnapshot, error) {
	if s.done {
		return StepSnapshot{Done: true, Found: s.found, StepIndex: s.stepCount}, nil
	}
	if err := s.ctx.Err(); err != nil {
		s.Close()
		return StepSnapshot{Done: true, StepIndex: s.stepCount}, err
	}
	sx, sy, ex, ey := s.start.X(), s.start.Y(), s.goal.X(), s.goal.Y()

	if !s.started {
		s.engine.stats = Stats{}
		ok, err := s.engine.begin(sx, sy, ex, ey, s.grid)
		if err != nil || !ok {
			s.done = true
			return StepSnapshot{Done: true, StepIndex: s.stepCount}, err
		}
		s.started = true
	}

	s.stepCount++
	n, state, err := s.engine.advance(ex, ey, s.grid)
	if err != nil {
		s.Close()
		return StepSnapshot{Done: true, StepIndex: s.stepCount}, err
	}

	snap := StepSnapshot{
		Current:   ToPoint(n.X(), n.Y()),
		Open:      s.openPoints(),
		Closed:    s.closedPoints(),
		StepIndex: s.stepCount,
	}
	switch state {
	case stepExhausted:
		snap.Current = 0
		snap.Done = true
		s.finish()
	case stepGoal:
		path := NewPath()
		s.engine.reconstruct(ex, ey, sx, sy, path, s.grid, s.smooth)
		snap.Path = path
		snap.Done = true
		snap.Found = true
		s.found = true
		s.finish()
	}
	return snap, nil
}

func (s *Stepper) finish() {
	s.engine.reset(s.grid)
	s.done = true
}

func (s *Stepper) openPoints() []Point {
	q := s.engine.nodes
	out := make([]Point, 0, q.Size())
	for i := 0; i < q.Size(); i++ {
		n := q.OpenNode(i)
		out = append(out, ToPoint(n.X(), n.Y()))
	}
	return out
}

func (s *Stepper) closedPoints() []Point {
	var out []Point
	for y := 0; y < s.grid.Height(); y++ {
		for x := 0; x < s.grid.Width(); x++ {
			if IsClosedNode(s.grid.Info(x, y)) {
				out = append(out, ToPoint(x, y))
			}
		}
	}
	return out
}
