// Package transform implements the 8-element rotation/mirror symmetry
// group of the 15x15 Renju board, centred on (7,7).
package transform

import (
	"fmt"

	"github.com/renjulib/renjulib/geometry"
)

// Mirror identifies which axis, if any, a Transform reflects across
// after rotating.
type Mirror int

const (
	MirrorNone Mirror = iota
	MirrorHorizontal
	MirrorVertical
)

func (m Mirror) String() string {
	switch m {
	case MirrorHorizontal:
		return "horizontal"
	case MirrorVertical:
		return "vertical"
	default:
		return "none"
	}
}

// Transform is a rotation (degrees, one of 0/90/180/270) composed with
// an optional mirror, applied in that order: rotate about (7,7), then
// mirror.
type Transform struct {
	Rotation int
	Mirror   Mirror
}

var center = (geometry.BoardSize - 1) / 2 // 7, for BoardSize=15

func rotate(p geometry.Point, degrees int) geometry.Point {
	dx, dy := p.X-center, p.Y-center
	switch ((degrees % 360) + 360) % 360 {
	case 0:
		// unchanged
	case 90:
		dx, dy = dy, -dx
	case 180:
		dx, dy = -dx, -dy
	case 270:
		dx, dy = -dy, dx
	default:
		panic(fmt.Sprintf("transform: unsupported rotation %d", degrees))
	}
	return geometry.New(center+dx, center+dy)
}

func mirror(p geometry.Point, m Mirror) geometry.Point {
	switch m {
	case MirrorHorizontal:
		return geometry.New(2*center-p.X, p.Y)
	case MirrorVertical:
		return geometry.New(p.X, 2*center-p.Y)
	default:
		return p
	}
}

// Apply rotates p about the board centre then mirrors it. Null points
// are left unchanged.
func (t Transform) Apply(p geometry.Point) geometry.Point {
	if p.IsNull() {
		return p
	}
	return mirror(rotate(p, t.Rotation), t.Mirror)
}

// InverseApply undoes Apply: InverseApply(Apply(p)) == p for every p.
func (t Transform) InverseApply(p geometry.Point) geometry.Point {
	if p.IsNull() {
		return p
	}
	// Mirror is its own inverse; undo it first, then undo the rotation.
	unmirrored := mirror(p, t.Mirror)
	return rotate(unmirrored, -t.Rotation)
}

// identity is the do-nothing transform, always present in Types().
var identity = Transform{Rotation: 0, Mirror: MirrorNone}

// samplePoints is a small, non-symmetric set of on-board points used to
// fingerprint a transform's behaviour when deduplicating and composing.
// It deliberately avoids the centre and any point lying on a mirror axis
// of the board so that all 8 group elements act distinctly on it.
var samplePoints = [4]geometry.Point{
	geometry.New(2, 3),
	geometry.New(11, 4),
	geometry.New(9, 12),
	geometry.New(1, 1),
}

func signature(apply func(geometry.Point) geometry.Point) [len(samplePoints)]geometry.Point {
	var sig [len(samplePoints)]geometry.Point
	for i, p := range samplePoints {
		sig[i] = apply(p)
	}
	return sig
}

// Types returns the 8 canonical transforms of the group, in a stable
// order with the identity first. Raw (rotation, mirror) pairs that
// produce the same point mapping (there are 12 raw pairs but only 8
// distinct functions) collapse to a single canonical representative —
// the first encountered in rotation-major, mirror-minor order.
func Types() []Transform {
	rotations := []int{0, 90, 180, 270}
	mirrors := []Mirror{MirrorNone, MirrorHorizontal, MirrorVertical}

	seen := make(map[[len(samplePoints)]geometry.Point]bool)
	var result []Transform

	for _, r := range rotations {
		for _, m := range mirrors {
			t := Transform{Rotation: r, Mirror: m}
			sig := signature(t.Apply)
			if seen[sig] {
				continue
			}
			seen[sig] = true
			result = append(result, t)
		}
	}
	return result
}

// Compose returns the canonical Transform equivalent to applying b then
// a: Compose(a, b).Apply(p) == a.Apply(b.Apply(p)).
func Compose(a, b Transform) Transform {
	composed := func(p geometry.Point) geometry.Point {
		return a.Apply(b.Apply(p))
	}
	sig := signature(composed)

	for _, t := range Types() {
		if signature(t.Apply) == sig {
			return t
		}
	}
	// Unreachable: Types() covers every function the group can produce.
	panic("transform: composition did not match any canonical transform")
}

// Identity returns the canonical identity transform.
func Identity() Transform {
	return identity
}
