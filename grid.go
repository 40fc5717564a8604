package astar

import (
	"fmt"

	"github.com/pdrpinto/gridastar/internal"
)

// Direction names the side of a cell its search parent lies on.
type Direction uint8

const (
	DirNone      Direction = iota
	DirUp                  // parent at (x, y+1)
	DirDown                // parent at (x, y-1)
	DirLeft                // parent at (x-1, y)
	DirRight               // parent at (x+1, y)
	DirLeftUp              // parent at (x-1, y+1)
	DirLeftDown            // parent at (x-1, y-1)
	DirRightUp             // parent at (x+1, y+1)
	DirRightDown           // parent at (x+1, y-1)
	dirCount
)

// Offsets to the parent cell, indexed by Direction.
var dirVectors = [dirCount][2]int{
	DirNone:      {0, 0},
	DirUp:        {0, 1},
	DirDown:      {0, -1},
	DirLeft:      {-1, 0},
	DirRight:     {1, 0},
	DirLeftUp:    {-1, 1},
	DirLeftDown:  {-1, -1},
	DirRightUp:   {1, 1},
	DirRightDown: {1, -1},
}

// Offset returns the step from a cell to its parent.
func (d Direction) Offset() (dx, dy int) {
	if d >= dirCount {
		return 0, 0
	}
	v := dirVectors[d]
	return v[0], v[1]
}

// Diagonal reports whether d moves along both axes.
func (d Direction) Diagonal() bool {
	dx, dy := d.Offset()
	return dx != 0 && dy != 0
}

func (d Direction) String() string {
	switch d {
	case DirNone:
		return "none"
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	case DirLeftUp:
		return "left-up"
	case DirLeftDown:
		return "left-down"
	case DirRightUp:
		return "right-up"
	case DirRightDown:
		return "right-down"
	}
	return fmt.Sprintf("Direction(%d)", uint8(d))
}

// Cell info word layout.
//
//	bit  0     blocked (unwalkable)
//	bit  1     closed
//	bits 2..5  parent direction
//	bits 6..31 open-list index + 1 (0 = not open)
const (
	infoBlocked   = 1 << 0
	infoClosed    = 1 << 1
	infoDirShift  = 2
	infoDirBits   = 4
	infoOpenShift = infoDirShift + infoDirBits
	infoOpenBits  = 32 - infoOpenShift
)

var (
	infoDirMask   = uint32(internal.Mask(infoDirBits)) << infoDirShift
	infoOpenMask  = uint32(internal.Mask(infoOpenBits)) << infoOpenShift
	infoSearchBit = infoClosed | infoDirMask | infoOpenMask
)

// Grid is a width x height walkability map. Each cell also carries the
// scratch state of the search running on it, so a Grid must not be searched
// by two engines at the same time.
type Grid struct {
	width, height int
	info          []uint32
}

// NewGrid returns a fully walkable grid. Both dimensions must be in
// [1, MaxGridSize].
func NewGrid(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 || width > MaxGridSize || height > MaxGridSize {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	return &Grid{
		width:  width,
		height: height,
		info:   make([]uint32, width*height),
	}, nil
}

func (g *Grid) Width() int  { return g.width }
func (g *Grid) Height() int { return g.height }

func (g *Grid) inBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

func (g *Grid) index(x, y int) int { return y*g.width + x }

// Info returns the raw info word of an in-bounds cell.
func (g *Grid) Info(x, y int) uint32 { return g.info[g.index(x, y)] }

// IsWalkable is false for blocked cells and for anything out of bounds.
func (g *Grid) IsWalkable(x, y int) bool {
	return g.inBounds(x, y) && g.info[g.index(x, y)]&infoBlocked == 0
}

// SetWalkable marks a cell passable or blocked. Out-of-bounds writes are
// ignored.
func (g *Grid) SetWalkable(x, y int, walkable bool) {
	if !g.inBounds(x, y) {
		return
	}
	i := g.index(x, y)
	if walkable {
		g.info[i] &^= infoBlocked
	} else {
		g.info[i] |= infoBlocked
	}
}

// NodeClosed settles a cell. A closed cell is never open.
func (g *Grid) NodeClosed(x, y int) {
	i := g.index(x, y)
	g.info[i] = g.info[i]&^infoOpenMask | infoClosed
}

// OpenNodeIdxUpdate stores the raw 1-based open-list slot of a cell (0 clears it).
func (g *Grid) OpenNodeIdxUpdate(x, y, idx int) {
	i := g.index(x, y)
	g.info[i] = g.info[i]&^infoOpenMask | uint32(idx)<<infoOpenShift&infoOpenMask
}

func (g *Grid) NodeParentDirectionUpdate(x, y int, d Direction) {
	i := g.index(x, y)
	g.info[i] = g.info[i]&^infoDirMask | uint32(d)<<infoDirShift&infoDirMask
}

func (g *Grid) NodeParentDirection(x, y int) Direction {
	return Direction(g.info[g.index(x, y)] & infoDirMask >> infoDirShift)
}

// Clear drops all search state and keeps walkability.
func (g *Grid) Clear() {
	for i := range g.info {
		g.info[i] &^= infoSearchBit
	}
}

// IsClean reports whether no cell carries search state.
func (g *Grid) IsClean() bool {
	for _, v := range g.info {
		if v&infoSearchBit != 0 {
			return false
		}
	}
	return true
}

// Clone copies walkability into a new grid with clean search state.
func (g *Grid) Clone() *Grid {
	c := &Grid{width: g.width, height: g.height, info: make([]uint32, len(g.info))}
	for i, v := range g.info {
		c.info[i] = v & infoBlocked
	}
	return c
}

// IsNullNode reports a cell the current search has not touched.
func IsNullNode(info uint32) bool { return info&infoSearchBit == 0 }

func IsClosedNode(info uint32) bool { return info&infoClosed != 0 }

func IsUnwalkable(info uint32) bool { return info&infoBlocked != 0 }

// OpenNodeIdx returns the 0-based heap slot of a cell, or -1 if it is not open.
func OpenNodeIdx(info uint32) int {
	return int(info&infoOpenMask>>infoOpenShift) - 1
}
