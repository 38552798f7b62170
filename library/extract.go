package library

import (
	"fmt"

	"github.com/renjulib/renjulib/movetree"
)

// ExtractSubtree builds a brand-new standalone tree holding the "spine"
// from root down to id plus id's full subtree, so a single variation
// can be studied or saved on its own. A MoveTree node may be reachable
// through more than one parent; the spine follows id's strong parent
// chain only, matching how DownToRoot already defines "the" path to a
// node. The source tree is left untouched — a DAG node may be shared by
// other active paths, so deleting it in place is not a supported
// MoveTree operation.
func ExtractSubtree(tree *movetree.Tree, id movetree.NodeID) (*movetree.Tree, error) {
	spine, err := tree.DownToRoot(id)
	if err != nil {
		return nil, err
	}
	// spine runs id -> root; walk root -> id to rebuild in order.
	for i, j := 0, len(spine)-1; i < j; i, j = i+1, j-1 {
		spine[i], spine[j] = spine[j], spine[i]
	}

	out := movetree.NewTree(movetree.NewRootMarker())
	mapped := map[movetree.NodeID]movetree.NodeID{spine[0]: movetree.Root}

	newParent := movetree.Root
	for _, oldID := range spine[1:] {
		marker, err := tree.Marker(oldID)
		if err != nil {
			return nil, err
		}
		newID, err := out.InsertMove(newParent, marker)
		if err != nil {
			return nil, fmt.Errorf("library: building spine: %w", err)
		}
		mapped[oldID] = newID
		newParent = newID
	}

	if err := copySubtree(tree, out, id, mapped[id]); err != nil {
		return nil, err
	}
	return out, nil
}

// copySubtree recursively clones every descendant of oldRoot (already
// present in dst as newRoot) into dst, preserving marker content but
// assigning fresh node ids.
func copySubtree(src, dst *movetree.Tree, oldRoot, newRoot movetree.NodeID) error {
	children, err := src.GetChildren(oldRoot)
	if err != nil {
		return err
	}
	for _, child := range children {
		marker, err := src.Marker(child)
		if err != nil {
			return err
		}
		newChild, err := dst.InsertMove(newRoot, marker)
		if err != nil {
			return fmt.Errorf("library: cloning subtree: %w", err)
		}
		if err := copySubtree(src, dst, child, newChild); err != nil {
			return err
		}
	}
	return nil
}

// MergeInto folds src's tree into dst in place, coalescing moves that
// share a (point, colour) pair under the same parent rather than
// duplicating them — the same rule renlib's decoder uses to merge
// rejoining branches, applied here across two independently built
// trees. Unmatched branches are cloned into dst wholesale.
func MergeInto(dst, src *movetree.Tree) error {
	return mergeChildren(dst, src, movetree.Root, movetree.Root)
}

func mergeChildren(dst, src *movetree.Tree, dstParent, srcParent movetree.NodeID) error {
	srcChildren, err := src.GetChildren(srcParent)
	if err != nil {
		return err
	}
	for _, srcChild := range srcChildren {
		srcMarker, err := src.Marker(srcChild)
		if err != nil {
			return err
		}

		dstChildren, err := dst.GetChildren(dstParent)
		if err != nil {
			return err
		}
		var matched movetree.NodeID
		found := false
		for _, dstChild := range dstChildren {
			dstMarker, err := dst.Marker(dstChild)
			if err != nil {
				return err
			}
			if dstMarker.Point.Equal(srcMarker.Point) && dstMarker.Color == srcMarker.Color {
				matched = dstChild
				found = true
				break
			}
		}

		if !found {
			newChild, err := dst.InsertMove(dstParent, srcMarker)
			if err != nil {
				return fmt.Errorf("library: merging: %w", err)
			}
			matched = newChild
		} else if !srcMarker.HasComment() {
			// nothing to backfill
		} else {
			dstMarker, err := dst.Marker(matched)
			if err != nil {
				return err
			}
			if !dstMarker.HasComment() {
				if err := dst.SetComment(matched, srcMarker.OnelineComment, srcMarker.MultilineComment); err != nil {
					return err
				}
			}
		}

		if err := mergeChildren(dst, src, matched, srcChild); err != nil {
			return err
		}
	}
	return nil
}
