package movetree

import "github.com/renjulib/renjulib/geometry"

// UnsourcedIndex marks a BoardMarker that was not produced by a decoder
// (e.g. one created by an interactive edit rather than by parsing a
// byte stream).
const UnsourcedIndex = -1

// BoardMarker is the unit of tree content: a single node's stone
// placement (or annotation-only record) plus whatever text payload the
// source format attached to it.
type BoardMarker struct {
	Point            geometry.Point
	Color            geometry.Stone
	Command          Command
	OnelineComment   string
	MultilineComment string
	BoardText        string
	SourceIndex      int
}

// NewRootMarker builds the synthetic null-point root marker every Tree
// starts from.
func NewRootMarker() BoardMarker {
	return BoardMarker{
		Point:       geometry.Null,
		Color:       geometry.Empty,
		Command:     NoMove,
		SourceIndex: UnsourcedIndex,
	}
}

// IsMove reports whether this marker represents an actual stone
// placement: the NOMOVE bit is clear and the point is not the null
// sentinel. Bounds are not checked.
func (m BoardMarker) IsMove() bool {
	return !m.Command.Has(NoMove) && !m.Point.IsNull()
}

// HasComment reports whether either comment field carries text.
func (m BoardMarker) HasComment() bool {
	return m.OnelineComment != "" || m.MultilineComment != ""
}
