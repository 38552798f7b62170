package renlib

import (
	"errors"
	"fmt"
	"io"

	"github.com/renjulib/renjulib/config"
)

// nordicRemap maps the OLDCOMMENT encoding's placeholder bytes to their
// Nordic upper/lower-case letter equivalents.
var nordicRemap = map[byte]byte{
	0x5B: 0xC4, // Ä
	0x5C: 0xD6, // Ö
	0x5D: 0xC5, // Å
	0x7B: 0xE4, // ä
	0x7C: 0xF6, // ö
	0x7D: 0xE5, // å
}

// readPairedPayload reads bytes two at a time until a terminating 0x00
// appears in either position of a pair, matching the RenLib comment and
// board-text encodings. The terminator itself is not included in the
// result. Payloads longer than config.MaxTextPayloadBytes are rejected
// so a stream that never terminates cannot force an unbounded read.
func readPairedPayload(r io.Reader) ([]byte, error) {
	var out []byte
	pair := make([]byte, 2)
	for {
		if len(out) > config.MaxTextPayloadBytes {
			return nil, fmt.Errorf("%w: text payload exceeds %d bytes", ErrDecode, config.MaxTextPayloadBytes)
		}
		if _, err := io.ReadFull(r, pair); err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
				return nil, fmt.Errorf("%w: unterminated text payload", ErrDecode)
			}
			return nil, fmt.Errorf("%w: %v", ErrIO, err)
		}
		if pair[0] == 0x00 {
			return out, nil
		}
		out = append(out, pair[0])
		if len(out) > config.MaxTextPayloadBytes {
			return nil, fmt.Errorf("%w: text payload exceeds %d bytes", ErrDecode, config.MaxTextPayloadBytes)
		}
		if pair[1] == 0x00 {
			return out, nil
		}
		out = append(out, pair[1])
	}
}

// applyNordicRemap rewrites the OLDCOMMENT placeholder bytes in place.
func applyNordicRemap(payload []byte) []byte {
	out := make([]byte, len(payload))
	for i, b := range payload {
		if mapped, ok := nordicRemap[b]; ok {
			out[i] = mapped
		} else {
			out[i] = b
		}
	}
	return out
}

// splitComment divides a decoded comment payload into its oneline and
// multiline parts. A payload starting with 0x08 is multiline only;
// otherwise the first 0x08 found, if any, separates the two.
func splitComment(payload []byte) (oneline string, multiline string) {
	if len(payload) > 0 && payload[0] == 0x08 {
		return "", string(payload[1:])
	}
	for i, b := range payload {
		if b == 0x08 {
			return string(payload[:i]), string(payload[i+1:])
		}
	}
	return string(payload), ""
}
