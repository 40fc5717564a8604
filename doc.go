// Package astar provides a reusable A* pathfinding engine for 2D grids.
//
// It exposes these main entry points:
//
//   - Engine.Search: run one search to completion and get a Path.
//   - Search: the same, on an engine borrowed from a per-goroutine Pool.
//   - Stepper: iterate the search one expansion at a time to drive UIs or debugging tools.
//   - SearchAll: run many independent queries on a pool of workers.
//
// Node, Point and grid cell state are packed into plain integers so a search
// allocates nothing per node. A search that finds no route returns an empty
// Path; errors are reserved for faults such as ErrTooManyOpenNodes.
//
// A Grid carries the scratch state of the search running on it. Walkability
// may be read concurrently, but only one engine may search a given Grid at a
// time.
package astar
