package astar

import (
	"fmt"

	"github.com/pdrpinto/gridastar/internal"
)

// Node is a packed open-list record.
//
//	bits  0..11  x
//	bits 12..23  y
//	bits 24..43  g (cost from start)
//	bits 44..63  f (g + heuristic)
type Node uint64

const (
	nodeCoordBits = 12
	nodeCostBits  = 20

	nodeYShift = nodeCoordBits
	nodeGShift = 2 * nodeCoordBits
	nodeFShift = nodeGShift + nodeCostBits

	// MaxGridSize bounds both grid dimensions so coordinates fit a Node.
	MaxGridSize = 1 << nodeCoordBits
	// MaxNodeCost is the largest g or f a Node can hold.
	MaxNodeCost = 1<<nodeCostBits - 1
)

var (
	nodeCoordMask = internal.Mask(nodeCoordBits)
	nodeCostMask  = internal.Mask(nodeCostBits)
	nodeGFMask    = nodeCostMask<<nodeGShift | nodeCostMask<<nodeFShift
)

// ToNode packs a search record. A negative or oversized cost means the path
// cost overflowed and is reported as ErrPathTooLong.
func ToNode(x, y, g, f int) (Node, error) {
	if f < 0 || g < 0 || f > MaxNodeCost || g > MaxNodeCost {
		return 0, fmt.Errorf("%w: g=%d f=%d at (%d,%d)", ErrPathTooLong, g, f, x, y)
	}
	return Node(uint64(x)&nodeCoordMask |
		(uint64(y)&nodeCoordMask)<<nodeYShift |
		uint64(g)<<nodeGShift |
		uint64(f)<<nodeFShift), nil
}

func (n Node) X() int { return int(uint64(n) & nodeCoordMask) }
func (n Node) Y() int { return int(uint64(n) >> nodeYShift & nodeCoordMask) }
func (n Node) G() int { return int(uint64(n) >> nodeGShift & nodeCostMask) }
func (n Node) F() int { return int(uint64(n) >> nodeFShift & nodeCostMask) }

// SetGF returns n with g and f replaced. Callers only lower costs of a node
// that was already packed, so the values are known to fit.
func (n Node) SetGF(g, f int) Node {
	return Node(uint64(n)&^nodeGFMask |
		(uint64(g)&nodeCostMask)<<nodeGShift |
		(uint64(f)&nodeCostMask)<<nodeFShift)
}

func (n Node) String() string {
	return fmt.Sprintf("(%d,%d g=%d f=%d)", n.X(), n.Y(), n.G(), n.F())
}
