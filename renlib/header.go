// Package renlib decodes the RenLib binary library format: a 20-byte
// header followed by a sequence of move records that assemble into a
// movetree.Tree via a DOWN-stack/RIGHT-sibling state machine.
package renlib

import (
	"bytes"
	"fmt"
	"io"
)

var magic = []byte{0xFF, 'R', 'e', 'n', 'L', 'i', 'b', 0xFF}

// Header is the 20-byte file preamble: the magic signature, a
// major/minor version pair, and ten 0xFF padding bytes.
type Header struct {
	Major byte
	Minor byte
}

func supportedVersion(major, minor byte) bool {
	return (major == 3 && minor == 0) || (major == 3 && minor == 4)
}

// ReadHeader reads and validates the 20-byte RenLib preamble.
func ReadHeader(r io.Reader) (Header, error) {
	buf := make([]byte, 20)
	if _, err := io.ReadFull(r, buf); err != nil {
		return Header{}, fmt.Errorf("%w: reading header: %v", ErrIO, err)
	}
	if !bytes.Equal(buf[0:8], magic) {
		return Header{}, fmt.Errorf("%w: bad magic signature", ErrUnsupportedFile)
	}
	major, minor := buf[8], buf[9]
	if !supportedVersion(major, minor) {
		return Header{}, fmt.Errorf("%w: version %d.%d", ErrUnsupportedVersion, major, minor)
	}
	return Header{Major: major, Minor: minor}, nil
}
