package renlib

import "fmt"

// Error taxonomy for the RenLib decoder. All are surfaced to the caller;
// the decoder never silently discards or recovers from a bad byte.
var (
	ErrUnsupportedFile    = fmt.Errorf("renlib: unsupported file")
	ErrUnsupportedVersion = fmt.Errorf("renlib: unsupported version")
	ErrDecode             = fmt.Errorf("renlib: decode error")
	ErrIO                 = fmt.Errorf("renlib: io error")
)
