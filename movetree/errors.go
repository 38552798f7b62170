package movetree

import "errors"

// Sentinel errors for MoveTree operations, usable with errors.Is.
var (
	// ErrInvalidNode is returned when an operation is given a NodeID
	// that doesn't exist in the tree's arena.
	ErrInvalidNode = errors.New("movetree: invalid node id")

	// ErrCycle is returned by AddEdge when the requested edge would
	// make the DAG cyclic.
	ErrCycle = errors.New("movetree: add_edge would create a cycle")

	// ErrReplay is returned by AsBoard on a missing node or an attempt
	// to place a stone on an already-occupied point.
	ErrReplay = errors.New("movetree: replay error")

	// ErrIndexOutOfBounds is returned by SetIndex when the requested
	// index exceeds the current active path length.
	ErrIndexOutOfBounds = errors.New("movetree: index out of bounds")
)
