// Package variantfinder locates alternative branches of a move tree
// that reach an equivalent position to the current active path, modulo
// one of the 8 board symmetries.
package variantfinder

import (
	"fmt"

	"github.com/renjulib/renjulib/config"
	"github.com/renjulib/renjulib/geometry"
	"github.com/renjulib/renjulib/movetree"
	"github.com/renjulib/renjulib/transform"
)

// Type classifies a found pairing: whether the candidate branch is an
// exact symmetry duplicate of the active path, or genuinely diverges at
// one move.
type Type int

const (
	// Transformation marks a candidate branch that is the transformed
	// active path verbatim — a pure symmetry duplicate, no new content.
	Transformation Type = iota
	// Variant marks a candidate branch that matches the transformed
	// active path at every move but one — a genuinely novel continuation.
	Variant
)

func (t Type) String() string {
	if t == Variant {
		return "variant"
	}
	return "transformation"
}

// Match is one (differing move, node, transformation, type) finding.
type Match struct {
	DifferingMove  geometry.Point
	NodeID         movetree.NodeID
	Transformation transform.Transform
	Type           Type
}

var centre = geometry.New(config.CentreOrdinate, config.CentreOrdinate)

// candidate is one root-to-node walk, restricted to the move-bearing
// nodes along it (root and annotation-only markers are skipped).
type candidate struct {
	points []geometry.Point
	nodes  []movetree.NodeID
}

// Find walks every one of the 7 non-identity transforms of activePath
// against every branch of tree, reporting each branch whose move
// sequence matches the transformed active path everywhere but at most
// one point.
//
// activePath is a full node chain from Root, as returned by
// Tree.MoveList(). Paths of fewer than two moves are not searched: with
// zero or one move to compare, every branch of the tree would trivially
// "match except at one point," which is not a meaningful finding.
func Find(tree *movetree.Tree, activePath []movetree.NodeID) ([]Match, error) {
	active, err := movesOf(tree, activePath)
	if err != nil {
		return nil, err
	}
	n := len(active.points)
	if n < 2 {
		return nil, nil
	}
	if n > config.MaxVariantSearchDepth {
		return nil, fmt.Errorf("variantfinder: active path of %d moves exceeds max search depth %d", n, config.MaxVariantSearchDepth)
	}

	candidates, err := allCandidates(tree, n)
	if err != nil {
		return nil, err
	}

	var matches []Match
	for _, t := range transform.Types() {
		if t == transform.Identity() {
			continue
		}
		transformed := make([]geometry.Point, n)
		for i, p := range active.points {
			transformed[i] = t.Apply(p)
		}

		for _, c := range candidates {
			if sameChain(c.nodes, active.nodes) {
				continue
			}
			diffIdx, diffCount := compare(c.points, transformed)
			if diffCount > 1 {
				continue
			}

			if diffCount == 0 {
				if active.points[0].Equal(centre) && t.Rotation == 0 && t.Mirror != transform.MirrorNone {
					// A lone mirror applied to a centre-opening path
					// reproduces the same stones trivially; not a finding.
					continue
				}
				matches = append(matches, Match{
					DifferingMove:  c.points[n-1],
					NodeID:         c.nodes[n-1],
					Transformation: t,
					Type:           Transformation,
				})
				continue
			}

			matches = append(matches, Match{
				DifferingMove:  c.points[diffIdx],
				NodeID:         c.nodes[diffIdx],
				Transformation: t,
				Type:           Variant,
			})
		}
	}
	return matches, nil
}

// movesOf reduces a node chain (as produced by Tree.MoveList) to its
// move-bearing points and node ids, in root-to-tip order.
func movesOf(tree *movetree.Tree, chain []movetree.NodeID) (candidate, error) {
	var c candidate
	for _, id := range chain {
		marker, err := tree.Marker(id)
		if err != nil {
			return candidate{}, err
		}
		if !marker.IsMove() {
			continue
		}
		c.points = append(c.points, marker.Point)
		c.nodes = append(c.nodes, id)
	}
	return c, nil
}

// allCandidates enumerates every node reachable from the root whose
// move-depth is exactly n, returning the move-bearing root-to-node path
// for each. The walk follows every child edge, so a node with more than
// one parent is reached once through each of its parents and can appear
// in several candidates.
func allCandidates(tree *movetree.Tree, n int) ([]candidate, error) {
	var out []candidate
	var walk func(id movetree.NodeID, points []geometry.Point, nodes []movetree.NodeID) error
	walk = func(id movetree.NodeID, points []geometry.Point, nodes []movetree.NodeID) error {
		marker, err := tree.Marker(id)
		if err != nil {
			return err
		}
		if marker.IsMove() {
			points = append(points, marker.Point)
			nodes = append(nodes, id)
		}
		if len(points) == n {
			out = append(out, candidate{
				points: append([]geometry.Point(nil), points...),
				nodes:  append([]movetree.NodeID(nil), nodes...),
			})
			return nil
		}
		if len(points) > n {
			return nil
		}
		children, err := tree.GetChildren(id)
		if err != nil {
			return err
		}
		for _, child := range children {
			if err := walk(child, points, nodes); err != nil {
				return err
			}
		}
		return nil
	}
	if err := walk(movetree.Root, nil, nil); err != nil {
		return nil, err
	}
	return out, nil
}

func sameChain(a, b []movetree.NodeID) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// compare reports the index and count of positions at which a and b
// differ; diffCount is capped in usefulness beyond 2 since callers only
// care whether it's 0, 1, or "more than 1".
func compare(a, b []geometry.Point) (diffIdx int, diffCount int) {
	diffIdx = -1
	for i := range a {
		if !a[i].Equal(b[i]) {
			diffCount++
			diffIdx = i
		}
	}
	return diffIdx, diffCount
}
