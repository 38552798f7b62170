// Package renlog is a small wrapper around the standard log package,
// used by the decoder to report skipped or ambiguous records without
// pulling in a structured logging dependency the rest of the module has
// no other use for.
package renlog

import "log"

// Logger is the minimal surface renlog needs from *log.Logger, so
// callers can substitute a test double without importing log directly.
type Logger interface {
	Printf(format string, args ...any)
}

// Component wraps a Logger with a fixed "renlib: " style prefix,
// embedding the tag in each Printf call rather than configuring a
// per-package prefix on the logger itself.
type Component struct {
	tag string
	log Logger
}

// New builds a Component. A nil logger falls back to log.Default().
func New(tag string, logger Logger) Component {
	if logger == nil {
		logger = log.Default()
	}
	return Component{tag: tag, log: logger}
}

// Printf logs a message tagged with the component's name, e.g.
// "renlib: second library start marker found mid-stream, skipping record 12 ...".
func (c Component) Printf(format string, args ...any) {
	c.log.Printf(c.tag+": "+format, args...)
}
