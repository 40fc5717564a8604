package astar

import (
	"context"
	"errors"
)

// Faults. A search that simply finds no route is not an error: it returns an
// empty Path.
var (
	// ErrTooManyOpenNodes is returned when the open list would grow past its
	// ceiling.
	ErrTooManyOpenNodes = errors.New("astar: too many open nodes")
	// ErrPathTooLong is returned when a path cost no longer fits a Node.
	ErrPathTooLong = errors.New("astar: path too long")
	// ErrInvalidScale is returned for a sub-cell scale below 1.
	ErrInvalidScale = errors.New("astar: scale must be positive")
	// ErrInvalidDimensions is returned by NewGrid for unusable sizes.
	ErrInvalidDimensions = errors.New("astar: invalid grid dimensions")
)

// FaultKind classifies err for logs and metric labels.
func FaultKind(err error) string {
	switch {
	case err == nil:
		return "none"
	case errors.Is(err, ErrTooManyOpenNodes):
		return "too_many_open_nodes"
	case errors.Is(err, ErrPathTooLong):
		return "path_too_long"
	case errors.Is(err, ErrInvalidScale):
		return "invalid_scale"
	case errors.Is(err, ErrInvalidDimensions):
		return "invalid_dimensions"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "canceled"
	}
	return "unknown"
}
