package renlib

import (
	"errors"
	"fmt"
	"io"

	"github.com/renjulib/renjulib/config"
	"github.com/renjulib/renjulib/geometry"
	"github.com/renjulib/renjulib/internal/renlog"
	"github.com/renjulib/renjulib/library"
	"github.com/renjulib/renjulib/movetree"
)

var logger = renlog.New("renlib", nil)

// Decode reads a complete RenLib file — header plus body — and returns
// the assembled library, stamped with the header's format version.
func Decode(r io.Reader) (*library.Library, error) {
	header, err := ReadHeader(r)
	if err != nil {
		return nil, err
	}
	tree, err := DecodeBody(r)
	if err != nil {
		return nil, err
	}
	return library.New("", library.SourceRenLib, tree).WithVersion(header.Major, header.Minor), nil
}

// DecodeBody assembles a tree from the record stream that follows a
// RenLib header (exposed separately so callers that have already
// consumed or synthesised a header can resume from the body, e.g. in
// tests built from a literal byte fixture).
//
// Tree assembly mirrors CRenLibDoc::AddLibrary: each record attaches as
// a child of the current node pointer by default. A RIGHT flag instead
// attaches it as a child of a saved ancestor — either the most recently
// DOWN-pushed one, or, absent any pushed frame, the current node's own
// strong parent. A DOWN flag saves the node just attached so a later,
// possibly much deeper, RIGHT can pop back up to it directly rather than
// one level at a time.
func DecodeBody(r io.Reader) (*movetree.Tree, error) {
	tree := movetree.NewTree(movetree.NewRootMarker())

	cr := &countingReader{r: r}
	current := movetree.Root
	var stack []movetree.NodeID
	checkRoot := true
	sourceIndex := 0

	for {
		recordOffset := cr.n

		posByte, err := readByte(cr)
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, err
		}

		cmdByte, err := readByte(cr)
		if err != nil {
			return nil, fmt.Errorf("%w: truncated record at body offset %d: missing command byte", ErrDecode, recordOffset)
		}

		raw := uint32(cmdByte)
		if cmdByte&byte(movetree.Extension) != 0 {
			ext := make([]byte, config.MaxCommandExtensionBytes)
			if _, err := io.ReadFull(cr, ext); err != nil {
				return nil, fmt.Errorf("%w: truncated command extension at body offset %d", ErrDecode, recordOffset)
			}
			raw |= uint32(ext[0]) << 8
			raw |= uint32(ext[1]) << 16
		}

		cmd, err := movetree.NewCommand(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: at body offset %d: %v", ErrDecode, recordOffset, err)
		}

		point, ok, err := geometry.FromByte(posByte)
		if err != nil {
			return nil, fmt.Errorf("%w: at body offset %d: %v", ErrDecode, recordOffset, err)
		}

		var oneline, multiline, boardText string
		switch {
		case cmd.Has(movetree.Comment):
			payload, err := readPairedPayload(cr)
			if err != nil {
				return nil, fmt.Errorf("at body offset %d: %w", recordOffset, err)
			}
			oneline, multiline = splitComment(payload)
		case cmd.Has(movetree.OldComment):
			payload, err := readPairedPayload(cr)
			if err != nil {
				return nil, fmt.Errorf("at body offset %d: %w", recordOffset, err)
			}
			oneline, multiline = splitComment(applyNordicRemap(payload))
		}
		if cmd.Has(movetree.BoardText) {
			payload, err := readPairedPayload(cr)
			if err != nil {
				return nil, fmt.Errorf("at body offset %d: %w", recordOffset, err)
			}
			boardText = string(payload)
		}

		if checkRoot && !ok {
			checkRoot = false
			current, stack, err = advance(tree, current, stack, cmd)
			if err != nil {
				return nil, err
			}
			sourceIndex++
			continue
		}
		checkRoot = false

		if !ok && cmd.Has(movetree.Start) {
			logger.Printf("second library start marker found mid-stream, skipping record %d (multi-library files decode only the first tree)", sourceIndex)
			sourceIndex++
			continue
		}

		parent, err := parentFor(tree, current, stack, cmd)
		if err != nil {
			return nil, err
		}
		if cmd.Has(movetree.Right) && len(stack) > 0 {
			stack = stack[:len(stack)-1]
		}

		marker := movetree.BoardMarker{
			Point:            pointOrNull(point, ok),
			Color:            colorAtDepth(tree, parent, cmd),
			Command:          cmd,
			OnelineComment:   oneline,
			MultilineComment: multiline,
			BoardText:        boardText,
			SourceIndex:      sourceIndex,
		}
		sourceIndex++

		id, err := attachNode(tree, parent, marker)
		if err != nil {
			return nil, err
		}
		current = id

		if cmd.Has(movetree.Down) {
			stack = append(stack, current)
		}
	}

	chain, err := tree.DownToRoot(current)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	path := make([]movetree.NodeID, len(chain))
	for i, id := range chain {
		path[len(chain)-1-i] = id
	}
	if err := tree.SetActivePath(path); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return tree, nil
}

// parentFor resolves the attachment parent for the record about to be
// created, per the RIGHT rule described above DecodeBody.
func parentFor(tree *movetree.Tree, current movetree.NodeID, stack []movetree.NodeID, cmd movetree.Command) (movetree.NodeID, error) {
	if !cmd.Has(movetree.Right) {
		return current, nil
	}
	if len(stack) > 0 {
		return stack[len(stack)-1], nil
	}
	parent, ok, err := tree.GetParentStrong(current)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	if !ok {
		return movetree.Root, nil
	}
	return parent, nil
}

// advance applies a record's DOWN/RIGHT flags without attaching a node —
// used only for the skipped root-sentinel record.
func advance(tree *movetree.Tree, current movetree.NodeID, stack []movetree.NodeID, cmd movetree.Command) (movetree.NodeID, []movetree.NodeID, error) {
	if cmd.Has(movetree.Right) && len(stack) > 0 {
		current = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
	}
	if cmd.Has(movetree.Down) {
		stack = append(stack, current)
	}
	return current, stack, nil
}

// colorAtDepth infers stone colour from ply parity: the first move is
// Black, alternating thereafter. RenLib records carry no explicit
// colour field.
func colorAtDepth(tree *movetree.Tree, parent movetree.NodeID, cmd movetree.Command) geometry.Stone {
	if cmd.Has(movetree.NoMove) {
		return geometry.Empty
	}
	depth := 0
	cur := parent
	for {
		p, ok, err := tree.GetParentStrong(cur)
		if err != nil || !ok {
			break
		}
		depth++
		cur = p
	}
	if depth%2 == 0 {
		return geometry.Black
	}
	return geometry.White
}

func pointOrNull(p geometry.Point, ok bool) geometry.Point {
	if !ok {
		return geometry.Null
	}
	return p
}

// attachNode implements the get_variant_weird coalescing rule: reuse an
// existing child of parent at the same (point, colour) rather than
// creating a duplicate, so that a record revisiting a known position
// lands on the same DAG node. GetChildren already returns children in
// "first DOWN child, then its RIGHT siblings" order, so a plain linear
// search suffices. A reused record's comment payload is backfilled onto
// the existing node — SetComment's no-overwrite rule keeps a later,
// sparser record from clobbering an earlier annotation.
func attachNode(tree *movetree.Tree, parent movetree.NodeID, marker movetree.BoardMarker) (movetree.NodeID, error) {
	children, err := tree.GetChildren(parent)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	for _, child := range children {
		existing, err := tree.Marker(child)
		if err != nil {
			return 0, fmt.Errorf("%w: %v", ErrDecode, err)
		}
		if existing.Point.Equal(marker.Point) && existing.Color == marker.Color {
			if marker.HasComment() {
				if err := tree.SetComment(child, marker.OnelineComment, marker.MultilineComment); err != nil {
					return 0, fmt.Errorf("%w: %v", ErrDecode, err)
				}
			}
			return child, nil
		}
	}
	id, err := tree.InsertMove(parent, marker)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return id, nil
}

func readByte(r io.Reader) (byte, error) {
	buf := make([]byte, 1)
	if _, err := io.ReadFull(r, buf); err != nil {
		return 0, err
	}
	return buf[0], nil
}

// countingReader tracks how many body bytes have been consumed so
// decode failures can report the offset of the record they died in.
type countingReader struct {
	r io.Reader
	n int64
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.n += int64(n)
	return n, err
}
