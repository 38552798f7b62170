// Package movetree implements the DAG-based move tree: an arena of
// BoardMarker nodes connected by explicit parent/child adjacency lists,
// plus a linear "active path" cursor view decoupled from the DAG
// itself. Nodes may have more than one parent (a later branch rejoining
// an earlier position) but the graph must stay acyclic.
package movetree

import (
	"fmt"

	"github.com/renjulib/renjulib/geometry"
)

// NodeID indexes into a Tree's node arena. The root is always 0.
type NodeID int

// Root is the NodeID every Tree starts from.
const Root NodeID = 0

// parentEdge records one incoming edge: which node this edge arrived
// from, tagged with the order it was added in. The edge with the
// highest edgeID among a node's parents is that node's "strong"
// parent — the one the active path and DownToRoot walk through.
type parentEdge struct {
	edgeID int
	parent NodeID
}

type node struct {
	marker   BoardMarker
	parents  []parentEdge
	children []NodeID
}

// Tree is an arena-backed DAG of BoardMarker nodes, with a linear
// active-path cursor layered on top for sequential move navigation.
type Tree struct {
	nodes      []node
	edgeSeq    int
	activePath []NodeID
	// activeIndex is the cursor position within activePath; activePath[activeIndex]
	// is the current move.
	activeIndex int
}

// NewTree creates a tree containing only a root node built from the
// given marker (ordinarily NewRootMarker()).
func NewTree(root BoardMarker) *Tree {
	t := &Tree{
		nodes: []node{{marker: root}},
	}
	t.activePath = []NodeID{Root}
	t.activeIndex = 0
	return t
}

func (t *Tree) valid(id NodeID) bool {
	return id >= 0 && int(id) < len(t.nodes)
}

func (t *Tree) requireValid(id NodeID) error {
	if !t.valid(id) {
		return fmt.Errorf("%w: %d", ErrInvalidNode, id)
	}
	return nil
}

// Marker returns the BoardMarker stored at id.
func (t *Tree) Marker(id NodeID) (BoardMarker, error) {
	if err := t.requireValid(id); err != nil {
		return BoardMarker{}, err
	}
	return t.nodes[id].marker, nil
}

// reachable reports whether to is reachable from from by following
// child edges — used to reject edges that would close a cycle.
func (t *Tree) reachable(from, to NodeID) bool {
	if from == to {
		return true
	}
	seen := make(map[NodeID]bool)
	stack := []NodeID{from}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if seen[n] {
			continue
		}
		seen[n] = true
		if n == to {
			return true
		}
		stack = append(stack, t.nodes[n].children...)
	}
	return false
}

// AddEdge links parent -> child, rejecting the edge if child can
// already reach parent (which would close a cycle).
func (t *Tree) AddEdge(parent, child NodeID) error {
	if err := t.requireValid(parent); err != nil {
		return err
	}
	if err := t.requireValid(child); err != nil {
		return err
	}
	if t.reachable(child, parent) {
		return fmt.Errorf("%w: %d -> %d", ErrCycle, parent, child)
	}
	t.edgeSeq++
	t.nodes[child].parents = append(t.nodes[child].parents, parentEdge{edgeID: t.edgeSeq, parent: parent})
	t.nodes[parent].children = append(t.nodes[parent].children, child)
	return nil
}

// InsertMove appends a brand-new node holding marker as a child of
// parent and returns its id. It does not touch the active path; most
// callers want AddMove instead.
func (t *Tree) InsertMove(parent NodeID, marker BoardMarker) (NodeID, error) {
	if err := t.requireValid(parent); err != nil {
		return 0, err
	}
	id := NodeID(len(t.nodes))
	t.nodes = append(t.nodes, node{marker: marker})
	if err := t.AddEdge(parent, id); err != nil {
		// Unreachable: a freshly appended node has no children yet, so it
		// cannot already be an ancestor of parent.
		return 0, err
	}
	return id, nil
}

// AddMove inserts marker as a child of parent, and — if marker is an
// actual stone placement — advances the active path to the new node.
func (t *Tree) AddMove(parent NodeID, marker BoardMarker) (NodeID, error) {
	id, err := t.InsertMove(parent, marker)
	if err != nil {
		return 0, err
	}
	if marker.IsMove() {
		t.activePath = append(t.activePath[:t.activeIndex+1], id)
		t.activeIndex = len(t.activePath) - 1
	}
	return id, nil
}

// GetChildren returns id's children, in the order their edges were
// added.
func (t *Tree) GetChildren(id NodeID) ([]NodeID, error) {
	if err := t.requireValid(id); err != nil {
		return nil, err
	}
	out := make([]NodeID, len(t.nodes[id].children))
	copy(out, t.nodes[id].children)
	return out, nil
}

// GetParentStrong returns id's strong parent: the parent reached by the
// most-recently-added incoming edge. ok is false for the root, which
// has no parent.
func (t *Tree) GetParentStrong(id NodeID) (parent NodeID, ok bool, err error) {
	if err := t.requireValid(id); err != nil {
		return 0, false, err
	}
	parents := t.nodes[id].parents
	if len(parents) == 0 {
		return 0, false, nil
	}
	best := parents[0]
	for _, pe := range parents[1:] {
		if pe.edgeID > best.edgeID {
			best = pe
		}
	}
	return best.parent, true, nil
}

// DownToRoot walks strong-parent links from id back to the root,
// returning the chain starting at id and ending at Root.
func (t *Tree) DownToRoot(id NodeID) ([]NodeID, error) {
	if err := t.requireValid(id); err != nil {
		return nil, err
	}
	var chain []NodeID
	cur := id
	for {
		chain = append(chain, cur)
		parent, ok, err := t.GetParentStrong(cur)
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		cur = parent
	}
	return chain, nil
}

// AsBoard replays the strong-parent chain from root to end and returns
// the resulting board together with the ordered sequence of points
// played. Non-move markers (root, annotation-only nodes) are skipped.
// Replaying a point already occupied is a decoder-level inconsistency
// and is reported as ErrReplay rather than silently overwritten.
func (t *Tree) AsBoard(end NodeID) (*geometry.BoardArray, []geometry.Point, error) {
	chain, err := t.DownToRoot(end)
	if err != nil {
		return nil, nil, err
	}

	board := geometry.NewBoardArray()
	var moves []geometry.Point
	// chain runs end -> root; replay root -> end.
	for i := len(chain) - 1; i >= 0; i-- {
		marker, err := t.Marker(chain[i])
		if err != nil {
			return nil, nil, err
		}
		if !marker.IsMove() {
			continue
		}
		if board.GetPoint(marker.Point) != geometry.Empty {
			return nil, nil, fmt.Errorf("%w: point %v already occupied replaying node %d", ErrReplay, marker.Point, chain[i])
		}
		board.SetPoint(marker.Point, marker.Color)
		moves = append(moves, marker.Point)
	}
	return board, moves, nil
}

// UpToBranch follows the single-child chain forward from id until
// reaching a node whose child count is not exactly one — either a leaf
// or the next branch point. It returns the chain of nodes walked
// through (not including id itself) and the child set at the stopping
// node: empty for a leaf, two or more alternatives at a branch.
func (t *Tree) UpToBranch(id NodeID) (walked []NodeID, branchChildren []NodeID, err error) {
	if err := t.requireValid(id); err != nil {
		return nil, nil, err
	}
	children, err := t.GetChildren(id)
	if err != nil {
		return nil, nil, err
	}
	for len(children) == 1 {
		walked = append(walked, children[0])
		children, err = t.GetChildren(children[0])
		if err != nil {
			return nil, nil, err
		}
	}
	return walked, children, nil
}

// DownToBranch walks strong-parent links from id towards the root until
// reaching a node that has siblings — an alternative continuation at
// its depth — and returns that node's strong parent: the branching node
// whose children are the alternatives. ok is false when every ancestor
// of id is an only child, i.e. no branch lies between id and the root.
func (t *Tree) DownToBranch(id NodeID) (NodeID, bool, error) {
	if err := t.requireValid(id); err != nil {
		return 0, false, err
	}
	cur := id
	for {
		parent, ok, err := t.GetParentStrong(cur)
		if err != nil {
			return 0, false, err
		}
		if !ok {
			return 0, false, nil
		}
		siblings, err := t.GetChildren(parent)
		if err != nil {
			return 0, false, err
		}
		if len(siblings) > 1 {
			return parent, true, nil
		}
		cur = parent
	}
}

// MoveList returns a copy of the current active path, root first.
func (t *Tree) MoveList() []NodeID {
	out := make([]NodeID, len(t.activePath))
	copy(out, t.activePath)
	return out
}

// CurrentMove returns the node the active-path cursor sits on.
func (t *Tree) CurrentMove() NodeID {
	return t.activePath[t.activeIndex]
}

// PrevMove moves the cursor one step back along the active path. ok is
// false if the cursor is already at the root.
func (t *Tree) PrevMove() (NodeID, bool) {
	if t.activeIndex == 0 {
		return t.activePath[0], false
	}
	t.activeIndex--
	return t.activePath[t.activeIndex], true
}

// NextMove moves the cursor one step forward along the active path. ok
// is false if the cursor is already at the end of the active path.
func (t *Tree) NextMove() (NodeID, bool) {
	if t.activeIndex == len(t.activePath)-1 {
		return t.activePath[t.activeIndex], false
	}
	t.activeIndex++
	return t.activePath[t.activeIndex], true
}

// SetIndex moves the cursor to position k of the active path and drops
// every entry beyond k+1 — rewinding is a commitment, not a peek; use
// PrevMove/NextMove to step along the path without shrinking it.
func (t *Tree) SetIndex(k int) error {
	if k < 0 || k >= len(t.activePath) {
		return fmt.Errorf("%w: index %d, path length %d", ErrIndexOutOfBounds, k, len(t.activePath))
	}
	t.activeIndex = k
	t.activePath = t.activePath[:k+1]
	return nil
}

// MoveToRoot rewinds the cursor to the root, truncating the active path
// to just the root entry.
func (t *Tree) MoveToRoot() {
	// SetIndex(0) cannot fail: the path always contains the root.
	_ = t.SetIndex(0)
}

// SetActivePath replaces the active path verbatim and moves the cursor
// to its end. Ordinary navigation never needs this — AddMove maintains
// the active path incrementally — but a decoder reconstructing a path
// via node-reuse/coalescing rules of its own sits outside that
// incremental flow, and needs to hand the finished path to the tree
// directly.
func (t *Tree) SetActivePath(path []NodeID) error {
	if len(path) == 0 || path[0] != Root {
		return fmt.Errorf("%w: active path must start at root", ErrInvalidNode)
	}
	for _, id := range path {
		if err := t.requireValid(id); err != nil {
			return err
		}
	}
	t.activePath = append([]NodeID(nil), path...)
	t.activeIndex = len(t.activePath) - 1
	return nil
}

// SetComment backfills a node's comment fields in place. It does not
// overwrite an existing non-empty comment; callers that want to replace
// one outright should build a fresh marker instead.
func (t *Tree) SetComment(id NodeID, oneline, multiline string) error {
	if err := t.requireValid(id); err != nil {
		return err
	}
	if t.nodes[id].marker.HasComment() {
		return nil
	}
	t.nodes[id].marker.OnelineComment = oneline
	t.nodes[id].marker.MultilineComment = multiline
	return nil
}

// Metadata summarises the tree's size and shape.
type Metadata struct {
	TotalNodes   int
	TotalMoves   int
	DeepestDepth int
}

// Metadata walks the whole DAG breadth-first from the root and
// computes aggregate counts: total node count, how many of those are
// actual stone placements, and the greatest node depth, where a node's
// depth is its shortest distance from the root over any parent edge (not
// just the strong one).
func (t *Tree) Metadata() Metadata {
	var md Metadata
	md.TotalNodes = len(t.nodes)

	depth := make([]int, len(t.nodes))
	visited := make([]bool, len(t.nodes))
	queue := []NodeID{Root}
	visited[Root] = true

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		if t.nodes[cur].marker.IsMove() {
			md.TotalMoves++
		}
		if depth[cur] > md.DeepestDepth {
			md.DeepestDepth = depth[cur]
		}
		for _, c := range t.nodes[cur].children {
			if visited[c] {
				continue
			}
			visited[c] = true
			depth[c] = depth[cur] + 1
			queue = append(queue, c)
		}
	}
	return md
}
