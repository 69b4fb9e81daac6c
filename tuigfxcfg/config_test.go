package tuigfxcfg

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfigDurations(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.InputTick() != 100*time.Millisecond {
		t.Fatalf("InputTick() = %v, want 100ms", cfg.InputTick())
	}
	if cfg.RenderInterval() != time.Second/60 {
		t.Fatalf("RenderInterval() = %v, want 1/60s", cfg.RenderInterval())
	}
}

func TestRenderIntervalUncappedWhenHzNonPositive(t *testing.T) {
	cfg := Config{RenderCapHz: 0}
	if got := cfg.RenderInterval(); got != 0 {
		t.Fatalf("RenderInterval() with RenderCapHz=0 = %v, want 0", got)
	}
}

func TestLoadMergesOverDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tuigfx.yaml")
	if err := os.WriteFile(path, []byte("strategy: parallel\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Strategy != "parallel" {
		t.Fatalf("Strategy = %q, want parallel", cfg.Strategy)
	}
	if cfg.InputTickMillis != 100 {
		t.Fatalf("InputTickMillis = %d, want default 100 to survive the merge", cfg.InputTickMillis)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("Load of a missing file should return an error")
	}
}

func TestNewWithNoArgsReturnsDefaults(t *testing.T) {
	if got := New(); got != DefaultConfig() {
		t.Fatalf("New() = %+v, want DefaultConfig()", got)
	}
}

func TestNewWithOverride(t *testing.T) {
	override := Config{InputTickMillis: 50, RenderCapHz: 30, Strategy: "single"}
	if got := New(override); got != override {
		t.Fatalf("New(override) = %+v, want %+v", got, override)
	}
}
