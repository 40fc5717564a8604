package astar

import "fmt"

const (
	initialOpenCap = 16

	// MaxOpenNodeSize is the hard ceiling on the open list. It bounds memory
	// on huge or disconnected grids and fits the grid's open-index field.
	MaxOpenNodeSize = 1 << 20
)

// Nodes is the open list: a binary min-heap of packed Nodes ordered by f.
// Each entry's slot is mirrored into its grid cell so a cell that is already
// open can be found and lowered in place.
type Nodes struct {
	grid  *Grid
	nodes []Node
	size  int
	limit int
}

func newNodes(limit int) *Nodes {
	if limit <= 0 || limit > MaxOpenNodeSize {
		limit = MaxOpenNodeSize
	}
	return &Nodes{nodes: make([]Node, initialOpenCap), limit: limit}
}

// bind attaches the grid whose cells mirror heap slots.
func (q *Nodes) bind(g *Grid) { q.grid = g }

// Open offers cell (x, y) with cost g and heuristic h, reached from dir.
func (q *Nodes) Open(x, y, g, h int, dir Direction) error {
	info := q.grid.Info(x, y)
	if IsClosedNode(info) {
		return nil
	}
	f := g + h
	if idx := OpenNodeIdx(info); idx >= 0 {
		n := q.nodes[idx]
		if n.G() <= g {
			return nil
		}
		q.nodes[idx] = n.SetGF(g, f)
		q.siftUp(idx)
		q.grid.NodeParentDirectionUpdate(x, y, dir)
		return nil
	}

	if q.size >= q.limit {
		return fmt.Errorf("%w: limit %d reached opening (%d,%d)", ErrTooManyOpenNodes, q.limit, x, y)
	}
	n, err := ToNode(x, y, g, f)
	if err != nil {
		return err
	}
	if q.size == len(q.nodes) {
		grown := make([]Node, nextCap(q.size, initialOpenCap))
		copy(grown, q.nodes[:q.size])
		q.nodes = grown
	}
	q.nodes[q.size] = n
	q.size++
	q.grid.NodeParentDirectionUpdate(x, y, dir)
	q.siftUp(q.size - 1)
	return nil
}

// Close removes the cheapest node, marks its cell closed and returns it.
// ok is false when the list is empty.
func (q *Nodes) Close() (n Node, ok bool) {
	if q.size == 0 {
		return 0, false
	}
	n = q.nodes[0]
	q.size--
	if q.size > 0 {
		q.place(0, q.nodes[q.size])
		q.siftDown(0)
	}
	q.nodes[q.size] = 0
	q.grid.NodeClosed(n.X(), n.Y())
	return n, true
}

// OpenNode returns the node stored in heap slot i.
func (q *Nodes) OpenNode(i int) Node { return q.nodes[i] }

func (q *Nodes) Size() int { return q.size }

func (q *Nodes) IsClean() bool { return q.size == 0 }

// Clear empties the list without touching the grid.
func (q *Nodes) Clear() {
	for i := 0; i < q.size; i++ {
		q.nodes[i] = 0
	}
	q.size = 0
}

// place stores n at slot i and records the slot in its cell.
func (q *Nodes) place(i int, n Node) {
	q.nodes[i] = n
	q.grid.OpenNodeIdxUpdate(n.X(), n.Y(), i+1)
}

func (q *Nodes) siftUp(i int) {
	n := q.nodes[i]
	for i > 0 {
		parent := (i - 1) / 2
		if q.nodes[parent].F() <= n.F() {
			break
		}
		q.place(i, q.nodes[parent])
		i = parent
	}
	q.place(i, n)
}

func (q *Nodes) siftDown(i int) {
	n := q.nodes[i]
	for {
		child := 2*i + 1
		if child >= q.size {
			break
		}
		if right := child + 1; right < q.size && q.nodes[right].F() < q.nodes[child].F() {
			child = right
		}
		if n.F() <= q.nodes[child].F() {
			break
		}
		q.place(i, q.nodes[child])
		i = child
	}
	q.place(i, n)
}
