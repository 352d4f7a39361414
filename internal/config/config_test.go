package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestDefaultHasAllThreeSizes(t *testing.T) {
	cfg := Default()
	for _, size := range []int{6, 8, 12} {
		sc, ok := cfg.Sizes[size]
		if !ok {
			t.Fatalf("missing default SizeConfig for size %d", size)
		}
		if sc.Depth <= 0 {
			t.Fatalf("size %d: expected a positive depth, got %d", size, sc.Depth)
		}
		if sc.StartingSFEN == "" {
			t.Fatalf("size %d: expected a non-empty starting SFEN", size)
		}
	}
}

func TestLoadMissingFileFallsBackToDefault(t *testing.T) {
	cfg := Load(filepath.Join(t.TempDir(), "does-not-exist.toml"))
	if !reflect.DeepEqual(cfg, Default()) {
		t.Fatalf("expected Default() for a missing file, got %+v", cfg)
	}
}

func TestLoadMalformedFileFallsBackToDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shuuro-engine.toml")
	if err := os.WriteFile(path, []byte("not valid [[[ toml"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	cfg := Load(path)
	if !reflect.DeepEqual(cfg, Default()) {
		t.Fatalf("expected Default() for a malformed file, got %+v", cfg)
	}
}

func TestLoadOverridesSelectively(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shuuro-engine.toml")
	contents := `
data_dir = "/tmp/shuuro-data"

[sizes.8]
depth = 5
`
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg := Load(path)
	if cfg.DataDir != "/tmp/shuuro-data" {
		t.Fatalf("expected overridden data dir, got %q", cfg.DataDir)
	}
	if cfg.Sizes[8].Depth != 5 {
		t.Fatalf("expected overridden depth 5 for size 8, got %d", cfg.Sizes[8].Depth)
	}
	if cfg.Sizes[8].StartingSFEN != defaultStartingSFEN(8) {
		t.Fatalf("expected starting SFEN left at its default since the file didn't set it")
	}
	if cfg.Sizes[6] != Default().Sizes[6] {
		t.Fatalf("expected size 6 config untouched by a file that only configures size 8")
	}
}

func TestParseSize(t *testing.T) {
	cases := map[string]int{"6": 6, "8": 8, "12": 12, "10": 0, "": 0, "abc": 0}
	for in, want := range cases {
		if got := parseSize(in); got != want {
			t.Fatalf("parseSize(%q) = %d, want %d", in, got, want)
		}
	}
}
