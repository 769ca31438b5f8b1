package app

import (
	"fmt"
	"strings"
	"time"

	"mandelview/hal"
	"mandelview/internal/buildinfo"
	"mandelview/viewport"
)

// Backend names a runner.
type Backend string

const (
	BackendEbiten   Backend = "ebiten"
	BackendGLFW     Backend = "glfw"
	BackendHeadless Backend = "headless"
)

// Config is the viewer configuration as parsed from flags.
type Config struct {
	Backend        Backend
	Size           int
	TPS            int
	Variant        viewport.Variant
	Cycles         int
	RepeatDelay    time.Duration
	RepeatInterval time.Duration
	Ticks          uint64
	Script         string
	Verbose        bool
}

// DefaultConfig mirrors the original viewer: 800x800 at 25 ticks per second
// with a 50ms key repeat.
func DefaultConfig() Config {
	return Config{
		Backend:        BackendEbiten,
		Size:           800,
		TPS:            25,
		Variant:        viewport.Rich,
		RepeatDelay:    50 * time.Millisecond,
		RepeatInterval: 50 * time.Millisecond,
	}
}

// ParseVariant maps a flag value to a variant.
func ParseVariant(s string) (viewport.Variant, error) {
	switch strings.ToLower(s) {
	case "", "rich":
		return viewport.Rich, nil
	case "simple":
		return viewport.Simple, nil
	}
	return viewport.Rich, fmt.Errorf("unknown variant %q (want rich or simple)", s)
}

// Verify fills zero fields with defaults and rejects values that cannot run.
func (c *Config) Verify() error {
	def := DefaultConfig()
	switch c.Backend {
	case "":
		c.Backend = def.Backend
	case BackendGLFW:
		if !hal.GLFWAvailable {
			return fmt.Errorf("backend %q not compiled in (build with -tags glfw)", c.Backend)
		}
	case BackendEbiten, BackendHeadless:
	default:
		return fmt.Errorf("unknown backend %q", c.Backend)
	}
	if c.Size <= 0 {
		c.Size = def.Size
	}
	if c.TPS <= 0 {
		c.TPS = def.TPS
	}
	if c.Cycles > viewport.MaxCycles {
		c.Cycles = viewport.MaxCycles
	}
	if c.RepeatDelay < 0 || c.RepeatInterval < 0 {
		return fmt.Errorf("negative key repeat (delay %s, interval %s)", c.RepeatDelay, c.RepeatInterval)
	}
	return nil
}

// Window converts the config for a window backend.
func (c Config) Window() hal.WindowConfig {
	return hal.WindowConfig{
		Width:  c.Size,
		Height: c.Size,
		TPS:    c.TPS,
		Title:  "Mandelbrot (" + buildinfo.Short() + ")",
		Repeat: hal.Repeat{Delay: c.RepeatDelay, Interval: c.RepeatInterval},
	}
}

// Headless converts the config for the headless runner.
func (c Config) Headless() (hal.HeadlessConfig, error) {
	script, err := hal.ParseScript(c.Script)
	if err != nil {
		return hal.HeadlessConfig{}, err
	}
	return hal.HeadlessConfig{
		Enabled: c.Backend == BackendHeadless,
		Width:   c.Size,
		Height:  c.Size,
		Hz:      c.TPS,
		Ticks:   c.Ticks,
		Script:  script,
	}, nil
}
