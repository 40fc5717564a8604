package astar

const (
	initialPathCap = 8

	// Capacities above this grow by half instead of doubling.
	growThrottle = 64
)

// nextCap returns the capacity to grow a full buffer of size n to.
func nextCap(n, initial int) int {
	switch {
	case n < initial:
		return initial
	case n < growThrottle:
		return n * 2
	}
	return n + n/2
}

// Path accumulates route points in reverse: index 0 is the most recently
// added point. A search appends from goal back to start, so Get(0) is the
// start and Get(Size()-1) the goal.
type Path struct {
	points []Point
	size   int
}

func NewPath() *Path {
	return &Path{points: make([]Point, initialPathCap)}
}

func (p *Path) Add(x, y int) {
	if p.size == len(p.points) {
		grown := make([]Point, nextCap(p.size, initialPathCap))
		copy(grown, p.points[:p.size])
		p.points = grown
	}
	p.points[p.size] = ToPoint(x, y)
	p.size++
}

// Get returns the i-th point counting back from the most recently added one.
func (p *Path) Get(i int) Point {
	return p.points[p.size-1-i]
}

// Remove drops the most recently added point.
func (p *Path) Remove() {
	if p.size > 0 {
		p.size--
	}
}

func (p *Path) Clear() { p.size = 0 }

func (p *Path) Size() int { return p.size }

// IsEmpty reports whether the path is unusable. A single point is not a
// route, so callers must test IsEmpty rather than Size() == 0.
func (p *Path) IsEmpty() bool { return p.size < 2 }

// Points returns a copy of the route ordered Get(0), Get(1), ...
func (p *Path) Points() []Point {
	out := make([]Point, p.size)
	for i := range out {
		out[i] = p.Get(i)
	}
	return out
}
