// Package renjulib is the front door to the engine: it opens an
// on-disk library file and hands it to the decoder matching its
// extension. Everything else lives in the subpackages — geometry and
// movetree for the data model, renlib and posfile for the two on-disk
// formats, evaluator and variantfinder for analysis.
package renjulib

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/renjulib/renjulib/library"
	"github.com/renjulib/renjulib/posfile"
	"github.com/renjulib/renjulib/renlib"
)

// ErrUnsupportedFile reports a path whose extension matches no known
// library format.
var ErrUnsupportedFile = fmt.Errorf("renjulib: unsupported file extension")

// OpenFile decodes the library file at path, choosing the decoder by
// extension: ".lib" is the RenLib binary format, ".pos" the flat
// sequential position listing. Any other extension is rejected with
// ErrUnsupportedFile before a single byte is read.
func OpenFile(path string) (*library.Library, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".lib", ".pos":
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFile, ext)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	name := strings.TrimSuffix(filepath.Base(path), ext)
	if ext == ".pos" {
		lib, err := posfile.Decode(f)
		if err != nil {
			return nil, err
		}
		lib.Name = name
		return lib, nil
	}

	lib, err := renlib.Decode(f)
	if err != nil {
		return nil, err
	}
	lib.Name = name
	return lib, nil
}
