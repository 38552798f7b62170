package config

// Engine-wide limits and constants.
const (
	// BoardSize is the fixed Renju board dimension; geometry and the
	// evaluator both assume a 15x15 grid centred on (7,7).
	BoardSize = 15

	// CentreOrdinate is both x and y of the board centre point (7,7).
	CentreOrdinate = BoardSize / 2

	// MaxCommandExtensionBytes is how many extra command bytes follow a
	// record whose EXTENSION flag is set.
	MaxCommandExtensionBytes = 2

	// MaxTextPayloadBytes caps a single comment/board-text payload so a
	// truncated or hostile stream cannot force an unbounded read.
	MaxTextPayloadBytes = 1 << 20 // 1 MiB

	// MaxVariantSearchDepth caps how many plies VariantFinder will walk
	// down any single branch while searching for a transformed match.
	MaxVariantSearchDepth = 225 // BoardSize * BoardSize
)
