// Package posfile decodes the trivial ".pos" sequential position
// listing: an opening move-count byte (ignored beyond validating the
// stream length) followed by that many packed position bytes,
// alternating Black and White starting with Black. It carries no
// commands, branching, or comments — unlike renlib, there is exactly
// one line, so the result is a Library whose tree has no branches at
// all.
package posfile

import (
	"fmt"
	"io"

	"github.com/renjulib/renjulib/geometry"
	"github.com/renjulib/renjulib/library"
	"github.com/renjulib/renjulib/movetree"
)

// ErrDecode reports a malformed .pos stream: a position byte that
// geometry.FromByte rejects, a null position byte, or fewer position
// bytes than the opening count byte promised.
var ErrDecode = fmt.Errorf("posfile: decode error")

// Decode reads a full .pos stream and returns the resulting Library: a
// single linear line of moves alternating Black, White from the root.
func Decode(r io.Reader) (*library.Library, error) {
	header := make([]byte, 1)
	if _, err := io.ReadFull(r, header); err != nil {
		return nil, fmt.Errorf("%w: reading move count: %v", ErrDecode, err)
	}
	count := int(header[0])

	tree := movetree.NewTree(movetree.NewRootMarker())
	current := movetree.Root
	color := geometry.Black

	for i := 0; i < count; i++ {
		posByte := make([]byte, 1)
		if _, err := io.ReadFull(r, posByte); err != nil {
			return nil, fmt.Errorf("%w: reading position %d of %d: %v", ErrDecode, i+1, count, err)
		}
		point, ok, err := geometry.FromByte(posByte[0])
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrDecode, err)
		}
		if !ok {
			return nil, fmt.Errorf("%w: null point at position %d", ErrDecode, i+1)
		}

		marker := movetree.BoardMarker{
			Point:       point,
			Color:       color,
			SourceIndex: i,
		}
		id, err := tree.AddMove(current, marker)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrDecode, err)
		}
		current = id
		color = color.Opponent()
	}

	return library.New("", library.SourcePos, tree), nil
}
