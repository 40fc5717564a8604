package astar

import "github.com/pdrpinto/gridastar/internal"

// Step costs.
const (
	CostOrthogonal = 5
	CostDiagonal   = 7
)

// Heuristic returns the estimated cost from (x1, y1) to (x2, y2).
type Heuristic func(x1, y1, x2, y2 int) int

// HCost is the default heuristic: Manhattan distance scaled by the orthogonal
// step cost.
func HCost(x1, y1, x2, y2 int) int {
	return (internal.Abs(x2-x1) + internal.Abs(y2-y1)) * CostOrthogonal
}

// Octile never overestimates the cost of an 8-connected path with the step
// costs above.
func Octile(x1, y1, x2, y2 int) int {
	dx, dy := internal.Abs(x2-x1), internal.Abs(y2-y1)
	if dx < dy {
		dx, dy = dy, dx
	}
	return dy*CostDiagonal + (dx-dy)*CostOrthogonal
}
