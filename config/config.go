// Package config loads the small set of engine-wide tunables a consuming
// application may want to override, and holds the constants that don't
// need to be (see limits.go).
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the engine-wide tunables that Load reads. The decoder,
// evaluator and variant finder do not take a Config: they read the
// constants in limits.go and geometry.BoardSize directly, so an override
// changes only the Config value that Load returns.
type Config struct {
	// BoardSize defaults to the 15x15 board dimension that geometry and
	// evaluation assume. geometry fixes that size with its own constant,
	// so overriding this field does not resize the board.
	BoardSize int

	// StrictDecoding rejects any RenLib record the decoder cannot fully
	// account for (unknown command bits, short reads). The decoder
	// always behaves this way; the flag exists so a caller can assert
	// the intent explicitly rather than relying on the default.
	StrictDecoding bool

	// MaxVariantSearchDepth defaults to the MaxVariantSearchDepth
	// constant, which is the bound VariantFinder enforces; VariantFinder
	// does not read this field.
	MaxVariantSearchDepth int
}

// Load reads optional RENJU_* environment variables, falling back to the
// package defaults. It loads a ".env" file from the working directory if
// present, without overriding variables already set in the environment.
func Load() Config {
	_ = godotenv.Load(".env")

	cfg := Config{
		BoardSize:             BoardSize,
		StrictDecoding:        true,
		MaxVariantSearchDepth: MaxVariantSearchDepth,
	}

	if v := os.Getenv("RENJU_BOARD_SIZE"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			panic(fmt.Sprintf("invalid RENJU_BOARD_SIZE value: %s", v))
		}
		cfg.BoardSize = n
	}

	if v := os.Getenv("RENJU_STRICT_DECODING"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			panic(fmt.Sprintf("invalid RENJU_STRICT_DECODING value: %s", v))
		}
		cfg.StrictDecoding = b
	}

	if v := os.Getenv("RENJU_MAX_VARIANT_SEARCH_DEPTH"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			panic(fmt.Sprintf("invalid RENJU_MAX_VARIANT_SEARCH_DEPTH value: %s", v))
		}
		cfg.MaxVariantSearchDepth = n
	}

	return cfg
}
