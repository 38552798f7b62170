// Package library bundles an assembled movetree.Tree with the identity
// and source metadata a caller needs once decoding is done: a stable
// ID, a display name, the originating format and its version.
package library

import (
	"time"

	"github.com/google/uuid"

	"github.com/renjulib/renjulib/movetree"
)

// SourceFormat identifies which decoder produced a Library.
type SourceFormat string

const (
	// SourceRenLib marks a library assembled by renlib.Decode.
	SourceRenLib SourceFormat = "renlib"
	// SourcePos marks a library assembled by posfile.Decode.
	SourcePos SourceFormat = "pos"
	// SourceManual marks a library built programmatically rather than
	// decoded from a byte stream.
	SourceManual SourceFormat = "manual"
)

// Library is the unit renlib.Decode and posfile.Decode both
// return: a tree plus enough provenance to distinguish one decoded
// library from another once several are in play.
type Library struct {
	ID           uuid.UUID
	Name         string
	Source       SourceFormat
	MajorVersion byte
	MinorVersion byte
	Tree         *movetree.Tree
	DecodedAt    time.Time
}

// New wraps tree with a freshly minted identity. Name may be empty; the
// version fields are only meaningful for SourceRenLib and are left zero
// otherwise.
func New(name string, source SourceFormat, tree *movetree.Tree) *Library {
	return &Library{
		ID:        uuid.New(),
		Name:      name,
		Source:    source,
		Tree:      tree,
		DecodedAt: time.Now(),
	}
}

// WithVersion records the RenLib header version a library was decoded
// from. It mutates and returns the receiver for chaining at construction
// time.
func (l *Library) WithVersion(major, minor byte) *Library {
	l.MajorVersion = major
	l.MinorVersion = minor
	return l
}

// Metadata proxies the underlying tree's size/shape summary.
func (l *Library) Metadata() movetree.Metadata {
	return l.Tree.Metadata()
}
