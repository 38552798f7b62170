package config

import (
	"os"
	"testing"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"RENJU_BOARD_SIZE", "RENJU_STRICT_DECODING", "RENJU_MAX_VARIANT_SEARCH_DEPTH"} {
		os.Unsetenv(k)
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg := Load()

	if cfg.BoardSize != BoardSize {
		t.Errorf("expected default board size %d, got %d", BoardSize, cfg.BoardSize)
	}
	if !cfg.StrictDecoding {
		t.Error("expected strict decoding to default to true")
	}
	if cfg.MaxVariantSearchDepth != MaxVariantSearchDepth {
		t.Errorf("expected default max variant search depth %d, got %d", MaxVariantSearchDepth, cfg.MaxVariantSearchDepth)
	}
}

func TestLoad_CustomBoardSize(t *testing.T) {
	clearEnv(t)
	os.Setenv("RENJU_BOARD_SIZE", "19")
	defer clearEnv(t)

	cfg := Load()

	if cfg.BoardSize != 19 {
		t.Errorf("expected board size 19, got %d", cfg.BoardSize)
	}
}

func TestLoad_InvalidBoardSize(t *testing.T) {
	clearEnv(t)
	os.Setenv("RENJU_BOARD_SIZE", "not-a-number")
	defer clearEnv(t)

	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic on invalid RENJU_BOARD_SIZE")
		}
	}()
	Load()
}

func TestLoad_StrictDecodingOverride(t *testing.T) {
	clearEnv(t)
	os.Setenv("RENJU_STRICT_DECODING", "false")
	defer clearEnv(t)

	cfg := Load()

	if cfg.StrictDecoding {
		t.Error("expected strict decoding to be disabled")
	}
}
