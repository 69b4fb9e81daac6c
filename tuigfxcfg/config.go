// Package tuigfxcfg is the engine's ambient YAML configuration surface: the
// input-tick interval, render cadence cap, runner strategy, and an optional
// color-mode override, loaded the way xyk4tc-wordle's internal/config loads
// its game config -- a plain yaml.v3-backed struct with a DefaultConfig and
// a Load that merges a file's contents over the defaults.
package tuigfxcfg

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/garaekz/tuigfx/internal/share"
)

// Config is the module's YAML-backed run configuration. engine.Runner does
// not take a Config; callers map its values onto the Runner's builder calls.
type Config struct {
	// InputTickMillis is the seconds-per-round target, in milliseconds.
	InputTickMillis int `yaml:"input_tick_ms"`

	// RenderCapHz is the render cadence cap; 0 falls back to DefaultConfig's.
	RenderCapHz int `yaml:"render_cap_hz"`

	// Strategy names one of "orig", "single", "parallel". Unrecognized or
	// empty values fall back to "orig".
	Strategy string `yaml:"strategy"`

	// ColorModeOverride is loaded from the color_mode key; nothing in this
	// module reads it.
	ColorModeOverride string `yaml:"color_mode"`
}

// DefaultConfig returns the engine's own built-in defaults: a 100ms input
// tick and roughly 60Hz rendering, with the Orig runner strategy.
func DefaultConfig() Config {
	return Config{
		InputTickMillis: 100,
		RenderCapHz:     60,
		Strategy:        "orig",
	}
}

// InputTick returns the configured input tick as a time.Duration.
func (c Config) InputTick() time.Duration {
	return time.Duration(c.InputTickMillis) * time.Millisecond
}

// RenderInterval returns the configured render cadence cap as a
// time.Duration. A non-positive RenderCapHz is treated as "uncapped"
// (Interval of 0), which adapter.FrameTimer treats as always-ready.
func (c Config) RenderInterval() time.Duration {
	if c.RenderCapHz <= 0 {
		return 0
	}
	return time.Second / time.Duration(c.RenderCapHz)
}

// Load reads a YAML config file and merges it over DefaultConfig: any
// field the file doesn't set keeps its default rather than zeroing out.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("tuigfxcfg: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("tuigfxcfg: parse %s: %w", path, err)
	}
	return cfg, nil
}

// New is the module's multipath-style constructor, mirroring
// runfx.Start(args ...any)'s "zero or one config argument" shape: call it
// with no arguments for defaults, or a *Config/Config to override them.
func New(args ...any) Config {
	return share.Overload(args, DefaultConfig())
}
