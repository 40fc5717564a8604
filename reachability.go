package astar

import (
	"fmt"

	"github.com/pdrpinto/gridastar/internal"
)

// Fence is an extra obstruction test for a step from cell (x1, y1) to the
// adjacent cell (x2, y2). It returns true if the step is allowed.
type Fence func(x1, y1, x2, y2 int) bool

// ScaleUp returns the sample coordinate at the centre of cell c.
func ScaleUp(c, scale int) int { return c*scale + scale/2 }

// ScaleUpFloat converts a fractional cell coordinate to a sample coordinate.
func ScaleUpFloat(v float64, scale int) int { return int(v * float64(scale)) }

// ScaleDown converts a sample coordinate to a fractional cell coordinate.
func ScaleDown(v, scale int) float64 { return float64(v) / float64(scale) }

func ScaleUpPoint(x, y float64, scale int) Point {
	return ToPoint(ScaleUpFloat(x, scale), ScaleUpFloat(y, scale))
}

// ClosestWalkablePoint walks the straight line from cell (x1, y1) toward cell
// (x2, y2) and returns the target if every crossed cell is walkable, otherwise
// the last walkable cell before the first obstruction.
func ClosestWalkablePoint(x1, y1, x2, y2 int, grid *Grid) Point {
	p, _ := ClosestWalkablePointScaled(x1, y1, x2, y2, 1, grid, nil)
	return p
}

// IsReachable reports whether cell (x2, y2) is visible from cell (x1, y1).
func IsReachable(x1, y1, x2, y2 int, grid *Grid) bool {
	return ClosestWalkablePoint(x1, y1, x2, y2, grid) == ToPoint(x2, y2)
}

// IsReachableScaled is IsReachable for sample coordinates, with an optional
// fence.
func IsReachableScaled(x1, y1, x2, y2, scale int, grid *Grid, fence Fence) (bool, error) {
	p, err := ClosestWalkablePointScaled(x1, y1, x2, y2, scale, grid, fence)
	if err != nil {
		return false, err
	}
	return p == ToPoint(x2, y2), nil
}

// ClosestWalkablePointScaled works on sample coordinates: scale samples per
// cell along each axis, the cell of sample v being floor(v/scale). The line
// joins the two samples and every cell it enters must be walkable and, when
// fence is not nil, allowed by the fence.
//
// It returns the start sample if the start cell is itself blocked or the very
// first step fails, the centre sample of the last good cell on a later
// failure, and the target sample when nothing is in the way.
func ClosestWalkablePointScaled(x1, y1, x2, y2, scale int, grid *Grid, fence Fence) (Point, error) {
	if scale <= 0 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidScale, scale)
	}
	start, target := ToPoint(x1, y1), ToPoint(x2, y2)
	cx, cy := internal.FloorDiv(x1, scale), internal.FloorDiv(y1, scale)
	tx, ty := internal.FloorDiv(x2, scale), internal.FloorDiv(y2, scale)

	if !grid.IsWalkable(cx, cy) {
		return start, nil
	}
	if cx == tx && cy == ty {
		if fence != nil && !fence(cx, cy, tx, ty) {
			return start, nil
		}
		return target, nil
	}

	w := lineWalker{grid: grid, fence: fence, x: cx, y: cy}
	var ok bool
	if cx == tx || cy == ty {
		ok = w.axis(tx, ty)
	} else {
		ok = w.diagonal(x1, y1, x2, y2, scale, tx, ty)
	}
	if ok {
		return target, nil
	}
	if w.x == cx && w.y == cy {
		return start, nil
	}
	return ToPoint(ScaleUp(w.x, scale), ScaleUp(w.y, scale)), nil
}

// lineWalker holds the last cell that passed while stepping along a line.
type lineWalker struct {
	grid  *Grid
	fence Fence
	x, y  int
}

// step moves to (nx, ny) if that cell can be entered from the current one.
func (w *lineWalker) step(nx, ny int) bool {
	if !w.grid.IsWalkable(nx, ny) {
		return false
	}
	if w.fence != nil && !w.fence(w.x, w.y, nx, ny) {
		return false
	}
	w.x, w.y = nx, ny
	return true
}

// axis walks a straight row or column of cells.
func (w *lineWalker) axis(tx, ty int) bool {
	sx, sy := internal.Sign(tx-w.x), internal.Sign(ty-w.y)
	for w.x != tx || w.y != ty {
		if !w.step(w.x+sx, w.y+sy) {
			return false
		}
	}
	return true
}

// diagonal visits every cell the segment between two sample centres passes
// through. Coordinates are doubled so sample centres are odd and cell edges
// even; a centre can therefore never sit on an edge, and all comparisons stay
// in integers.
func (w *lineWalker) diagonal(x1, y1, x2, y2, scale, tx, ty int) bool {
	ox, oy := 2*x1+1, 2*y1+1
	dx, dy := 2*(x2-x1), 2*(y2-y1)
	adx, ady := internal.Abs(dx), internal.Abs(dy)
	sx, sy := internal.Sign(dx), internal.Sign(dy)
	size := 2 * scale

	for w.x != tx || w.y != ty {
		// Distance along each axis from the origin to the next edge crossed.
		var ex, ey int
		if sx > 0 {
			ex = (w.x+1)*size - ox
		} else {
			ex = ox - w.x*size
		}
		if sy > 0 {
			ey = (w.y+1)*size - oy
		} else {
			ey = oy - w.y*size
		}

		// Compare ex/adx with ey/ady.
		switch l, r := ex*ady, ey*adx; {
		case l < r:
			if !w.step(w.x+sx, w.y) {
				return false
			}
		case l > r:
			if !w.step(w.x, w.y+sy) {
				return false
			}
		default:
			// The line crosses a cell corner and touches the side cells only
			// in that point.
			if !w.step(w.x+sx, w.y+sy) {
				return false
			}
		}
	}
	return true
}
