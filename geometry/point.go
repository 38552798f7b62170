// Package geometry defines the grid coordinate system, the stone board
// array, and the line-iteration primitives the evaluator and decoder
// build on.
package geometry

import "fmt"

// BoardSize is the fixed Renju grid dimension.
const BoardSize = 15

// Point is a grid coordinate. The zero value is the on-board point
// (0,0), equal to New(0,0); the root sentinel is Null, not the zero value.
type Point struct {
	X, Y   int
	isNull bool
}

// Null is the synthetic root position: no x/y, used for the tree's
// synthetic root marker.
var Null = Point{isNull: true}

// New builds an on-board point. It does not validate bounds; callers
// that read x/y from untrusted input should check InBounds themselves
// after construction (see FromByte for the format that validates).
func New(x, y int) Point {
	return Point{X: x, Y: y}
}

// IsNull reports whether p is the synthetic root sentinel.
func (p Point) IsNull() bool {
	return p.isNull
}

// InBounds reports whether a non-null point lies on a BoardSize grid.
func (p Point) InBounds() bool {
	if p.isNull {
		return false
	}
	return p.X >= 0 && p.X < BoardSize && p.Y >= 0 && p.Y < BoardSize
}

// Equal compares two points, including null-ness.
func (p Point) Equal(o Point) bool {
	if p.isNull || o.isNull {
		return p.isNull == o.isNull
	}
	return p.X == o.X && p.Y == o.Y
}

// To1D returns the row-major index of p on a board of the given width.
// Panics if p is null — callers must guard with IsNull first.
func (p Point) To1D(width int) int {
	if p.isNull {
		panic("geometry: To1D on null point")
	}
	return p.Y*width + p.X
}

// FromByte decodes the packed RenLib position byte: the low nibble is
// column+1, the high nibble is the row. A zero low nibble (b&0x0F == 0)
// underflows when the +1 is removed and is rejected rather than wrapped,
// as is a high nibble of 15, which names a row off the board. A zero byte overall means "null point" per the RenLib body grammar and
// is reported via ok=false so callers can special-case the root marker.
func FromByte(b byte) (p Point, ok bool, err error) {
	if b == 0x00 {
		return Null, false, nil
	}
	low := b & 0x0F
	if low == 0 {
		return Point{}, false, fmt.Errorf("geometry: position byte 0x%02X underflows column nibble", b)
	}
	x := int(low) - 1
	y := int(b >> 4)
	if y >= BoardSize {
		return Point{}, false, fmt.Errorf("geometry: position byte 0x%02X has row %d off the board", b, y)
	}
	return New(x, y), true, nil
}

// ToByte packs an on-board point into the RenLib position-byte form.
// Panics on a null or out-of-bounds point.
func (p Point) ToByte() byte {
	if p.isNull || !p.InBounds() {
		panic("geometry: ToByte on null or out-of-bounds point")
	}
	return byte((p.X+1)&0x0F) | byte(p.Y<<4)
}

// FromPacked is the inverse of the §8 pack() helper: pack(x,y) =
// ((x+1) & 0x0F) | (y << 4). Provided for the round-trip property test.
func FromPacked(b byte) (Point, error) {
	p, ok, err := FromByte(b)
	if err != nil {
		return Point{}, err
	}
	if !ok {
		return Null, nil
	}
	return p, nil
}

// From1D is the inverse of To1D for a board of the given width.
func From1D(idx, width int) Point {
	return New(idx%width, idx/width)
}

func (p Point) String() string {
	if p.isNull {
		return "<null>"
	}
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}
