package movetree

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renjulib/renjulib/geometry"
)

func move(x, y int, color geometry.Stone) BoardMarker {
	return BoardMarker{
		Point:       geometry.New(x, y),
		Color:       color,
		SourceIndex: UnsourcedIndex,
	}
}

func TestNewTree_RootOnly(t *testing.T) {
	tree := NewTree(NewRootMarker())
	assert.Equal(t, []NodeID{Root}, tree.MoveList())
	assert.Equal(t, Root, tree.CurrentMove())

	md := tree.Metadata()
	assert.Equal(t, 1, md.TotalNodes)
	assert.Equal(t, 0, md.TotalMoves)
	assert.Equal(t, 0, md.DeepestDepth)
}

func TestAddMove_AdvancesActivePath(t *testing.T) {
	tree := NewTree(NewRootMarker())

	h8, err := tree.AddMove(Root, move(7, 7, geometry.Black))
	require.NoError(t, err)
	h7, err := tree.AddMove(h8, move(7, 6, geometry.White))
	require.NoError(t, err)

	assert.Equal(t, []NodeID{Root, h8, h7}, tree.MoveList())
	assert.Equal(t, h7, tree.CurrentMove())
}

func TestAddMove_NonMoveDoesNotAdvanceActivePath(t *testing.T) {
	tree := NewTree(NewRootMarker())
	annotation := BoardMarker{Point: geometry.Null, Command: NoMove, SourceIndex: UnsourcedIndex}

	_, err := tree.AddMove(Root, annotation)
	require.NoError(t, err)

	assert.Equal(t, []NodeID{Root}, tree.MoveList())
}

func TestGetChildren_MultipleVariants(t *testing.T) {
	tree := NewTree(NewRootMarker())

	a, err := tree.AddMove(Root, move(7, 7, geometry.Black))
	require.NoError(t, err)
	b, err := tree.InsertMove(Root, move(6, 6, geometry.Black))
	require.NoError(t, err)

	children, err := tree.GetChildren(Root)
	require.NoError(t, err)
	assert.Equal(t, []NodeID{a, b}, children)
}

func TestGetParentStrong_Root_HasNone(t *testing.T) {
	tree := NewTree(NewRootMarker())
	_, ok, err := tree.GetParentStrong(Root)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestGetParentStrong_MultipleParents_PicksMostRecentEdge(t *testing.T) {
	tree := NewTree(NewRootMarker())

	a, err := tree.AddMove(Root, move(7, 7, geometry.Black))
	require.NoError(t, err)
	b, err := tree.InsertMove(Root, move(6, 6, geometry.Black))
	require.NoError(t, err)

	c, err := tree.InsertMove(a, move(8, 8, geometry.White))
	require.NoError(t, err)
	require.NoError(t, tree.AddEdge(b, c))

	parent, ok, err := tree.GetParentStrong(c)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, b, parent)
}

func TestAddEdge_RejectsCycle(t *testing.T) {
	tree := NewTree(NewRootMarker())

	a, err := tree.AddMove(Root, move(7, 7, geometry.Black))
	require.NoError(t, err)
	b, err := tree.AddMove(a, move(7, 6, geometry.White))
	require.NoError(t, err)

	err = tree.AddEdge(b, Root)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrCycle))

	err = tree.AddEdge(b, a)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrCycle))
}

func TestInvalidNode_Errors(t *testing.T) {
	tree := NewTree(NewRootMarker())

	_, err := tree.Marker(NodeID(99))
	assert.True(t, errors.Is(err, ErrInvalidNode))

	_, err = tree.GetChildren(NodeID(99))
	assert.True(t, errors.Is(err, ErrInvalidNode))

	_, _, err = tree.GetParentStrong(NodeID(99))
	assert.True(t, errors.Is(err, ErrInvalidNode))
}

func TestDownToRoot_OrderIsSelfToRoot(t *testing.T) {
	tree := NewTree(NewRootMarker())

	a, err := tree.AddMove(Root, move(7, 7, geometry.Black))
	require.NoError(t, err)
	b, err := tree.AddMove(a, move(7, 6, geometry.White))
	require.NoError(t, err)

	chain, err := tree.DownToRoot(b)
	require.NoError(t, err)
	assert.Equal(t, []NodeID{b, a, Root}, chain)
}

func TestAsBoard_ReplaysStrongParentChain(t *testing.T) {
	tree := NewTree(NewRootMarker())

	h8, err := tree.AddMove(Root, move(7, 7, geometry.Black))
	require.NoError(t, err)
	h7, err := tree.AddMove(h8, move(7, 6, geometry.White))
	require.NoError(t, err)
	g8, err := tree.AddMove(h7, move(6, 7, geometry.Black))
	require.NoError(t, err)

	board, seq, err := tree.AsBoard(g8)
	require.NoError(t, err)

	assert.Equal(t, geometry.Black, board.GetPoint(geometry.New(7, 7)))
	assert.Equal(t, geometry.White, board.GetPoint(geometry.New(7, 6)))
	assert.Equal(t, geometry.Black, board.GetPoint(geometry.New(6, 7)))
	assert.Equal(t, geometry.Empty, board.GetPoint(geometry.New(0, 0)))

	assert.Equal(t, []geometry.Point{
		geometry.New(7, 7), geometry.New(7, 6), geometry.New(6, 7),
	}, seq)
}

func TestAsBoard_SkipsNonMoveNodes(t *testing.T) {
	tree := NewTree(NewRootMarker())

	h8, err := tree.AddMove(Root, move(7, 7, geometry.Black))
	require.NoError(t, err)
	annotated := BoardMarker{Point: geometry.Null, Command: NoMove, SourceIndex: UnsourcedIndex, OnelineComment: "good move"}
	note, err := tree.InsertMove(h8, annotated)
	require.NoError(t, err)

	board, seq, err := tree.AsBoard(note)
	require.NoError(t, err)
	assert.Equal(t, geometry.Black, board.GetPoint(geometry.New(7, 7)))
	assert.Equal(t, []geometry.Point{geometry.New(7, 7)}, seq)
}

func TestAsBoard_DuplicatePlacementIsReplayError(t *testing.T) {
	tree := NewTree(NewRootMarker())

	h8, err := tree.AddMove(Root, move(7, 7, geometry.Black))
	require.NoError(t, err)
	dup, err := tree.InsertMove(h8, move(7, 7, geometry.White))
	require.NoError(t, err)

	_, _, err = tree.AsBoard(dup)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrReplay))
}

func TestAsBoard_Idempotent(t *testing.T) {
	tree := NewTree(NewRootMarker())

	a, err := tree.AddMove(Root, move(7, 7, geometry.Black))
	require.NoError(t, err)
	b, err := tree.AddMove(a, move(7, 6, geometry.White))
	require.NoError(t, err)

	board1, seq1, err := tree.AsBoard(b)
	require.NoError(t, err)
	board2, seq2, err := tree.AsBoard(b)
	require.NoError(t, err)

	assert.Equal(t, board1, board2)
	assert.Equal(t, seq1, seq2)
}

func TestUpToBranch_WalksSingleChildChainToBranchPoint(t *testing.T) {
	tree := NewTree(NewRootMarker())

	a, err := tree.AddMove(Root, move(7, 7, geometry.Black))
	require.NoError(t, err)
	b, err := tree.AddMove(a, move(7, 6, geometry.White))
	require.NoError(t, err)
	c, err := tree.AddMove(b, move(6, 7, geometry.Black))
	require.NoError(t, err)
	d, err := tree.AddMove(c, move(6, 6, geometry.White))
	require.NoError(t, err)
	e, err := tree.InsertMove(c, move(8, 8, geometry.White))
	require.NoError(t, err)

	walked, branchChildren, err := tree.UpToBranch(a)
	require.NoError(t, err)
	assert.Equal(t, []NodeID{b, c}, walked)
	assert.Equal(t, []NodeID{d, e}, branchChildren)
}

func TestUpToBranch_LeafYieldsNoChildren(t *testing.T) {
	tree := NewTree(NewRootMarker())

	a, err := tree.AddMove(Root, move(7, 7, geometry.Black))
	require.NoError(t, err)
	b, err := tree.AddMove(a, move(7, 6, geometry.White))
	require.NoError(t, err)

	walked, branchChildren, err := tree.UpToBranch(a)
	require.NoError(t, err)
	assert.Equal(t, []NodeID{b}, walked)
	assert.Empty(t, branchChildren)
}

func TestDownToBranch_ReturnsBranchingAncestor(t *testing.T) {
	tree := NewTree(NewRootMarker())

	a, err := tree.AddMove(Root, move(7, 7, geometry.Black))
	require.NoError(t, err)
	b, err := tree.AddMove(a, move(7, 6, geometry.White))
	require.NoError(t, err)
	c, err := tree.AddMove(b, move(6, 7, geometry.Black))
	require.NoError(t, err)
	_, err = tree.InsertMove(a, move(6, 6, geometry.White))
	require.NoError(t, err)

	branch, ok, err := tree.DownToBranch(c)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, a, branch, "nearest ancestor with an alternative sits under a")
}

func TestDownToBranch_ImmediateSiblings(t *testing.T) {
	tree := NewTree(NewRootMarker())

	a, err := tree.AddMove(Root, move(7, 7, geometry.Black))
	require.NoError(t, err)
	_, err = tree.InsertMove(Root, move(6, 6, geometry.Black))
	require.NoError(t, err)

	branch, ok, err := tree.DownToBranch(a)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, Root, branch)
}

func TestDownToBranch_NoneOnBranchlessLine(t *testing.T) {
	tree := NewTree(NewRootMarker())

	a, err := tree.AddMove(Root, move(7, 7, geometry.Black))
	require.NoError(t, err)
	b, err := tree.AddMove(a, move(7, 6, geometry.White))
	require.NoError(t, err)

	_, ok, err := tree.DownToBranch(b)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestNavigation_PrevNextSetIndexMoveToRoot(t *testing.T) {
	tree := NewTree(NewRootMarker())

	a, err := tree.AddMove(Root, move(7, 7, geometry.Black))
	require.NoError(t, err)
	b, err := tree.AddMove(a, move(7, 6, geometry.White))
	require.NoError(t, err)

	prev, ok := tree.PrevMove()
	assert.True(t, ok)
	assert.Equal(t, a, prev)

	next, ok := tree.NextMove()
	assert.True(t, ok)
	assert.Equal(t, b, next)

	_, ok = tree.NextMove()
	assert.False(t, ok)

	require.NoError(t, tree.SetIndex(0))
	assert.Equal(t, Root, tree.CurrentMove())

	err = tree.SetIndex(99)
	assert.True(t, errors.Is(err, ErrIndexOutOfBounds))

	tree.MoveToRoot()
	assert.Equal(t, Root, tree.CurrentMove())
}

func TestSetIndex_TruncatesActivePath(t *testing.T) {
	tree := NewTree(NewRootMarker())

	a, err := tree.AddMove(Root, move(7, 7, geometry.Black))
	require.NoError(t, err)
	b, err := tree.AddMove(a, move(7, 6, geometry.White))
	require.NoError(t, err)
	_, err = tree.AddMove(b, move(6, 7, geometry.Black))
	require.NoError(t, err)

	require.NoError(t, tree.SetIndex(1))
	assert.Equal(t, []NodeID{Root, a}, tree.MoveList())
	assert.Equal(t, a, tree.CurrentMove())

	_, ok := tree.NextMove()
	assert.False(t, ok, "entries past the rewind point are gone")
}

func TestMoveToRoot_TruncatesToRootOnly(t *testing.T) {
	tree := NewTree(NewRootMarker())

	a, err := tree.AddMove(Root, move(7, 7, geometry.Black))
	require.NoError(t, err)
	_, err = tree.AddMove(a, move(7, 6, geometry.White))
	require.NoError(t, err)

	tree.MoveToRoot()
	assert.Equal(t, []NodeID{Root}, tree.MoveList())
	assert.Equal(t, Root, tree.CurrentMove())
}

func TestSetComment_BackfillsButNeverOverwrites(t *testing.T) {
	tree := NewTree(NewRootMarker())

	a, err := tree.AddMove(Root, move(7, 7, geometry.Black))
	require.NoError(t, err)

	require.NoError(t, tree.SetComment(a, "opening", "the usual centre start"))
	m, err := tree.Marker(a)
	require.NoError(t, err)
	assert.Equal(t, "opening", m.OnelineComment)
	assert.Equal(t, "the usual centre start", m.MultilineComment)

	require.NoError(t, tree.SetComment(a, "something else", ""))
	m, err = tree.Marker(a)
	require.NoError(t, err)
	assert.Equal(t, "opening", m.OnelineComment, "existing comment must not be overwritten")

	err = tree.SetComment(NodeID(99), "x", "")
	assert.True(t, errors.Is(err, ErrInvalidNode))
}

func TestMetadata_CountsMovesAndDepth(t *testing.T) {
	tree := NewTree(NewRootMarker())

	a, err := tree.AddMove(Root, move(7, 7, geometry.Black))
	require.NoError(t, err)
	_, err = tree.AddMove(a, move(7, 6, geometry.White))
	require.NoError(t, err)
	_, err = tree.InsertMove(a, move(6, 6, geometry.White))
	require.NoError(t, err)

	md := tree.Metadata()
	assert.Equal(t, 4, md.TotalNodes)
	assert.Equal(t, 3, md.TotalMoves)
	assert.Equal(t, 2, md.DeepestDepth)
}
