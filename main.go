package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"

	"mandelview/app"
	"mandelview/hal"
	"mandelview/internal/logging"
)

func main() {
	cfg := app.DefaultConfig()
	var backend, variant string
	flag.StringVar(&backend, "backend", string(cfg.Backend), "Renderer: ebiten, glfw or headless.")
	flag.IntVar(&cfg.Size, "size", cfg.Size, "Window width and height in pixels.")
	flag.IntVar(&cfg.TPS, "tps", cfg.TPS, "Logical ticks per second.")
	flag.StringVar(&variant, "variant", "rich", "Controls: rich (brightness keys, 2000 cycles) or simple.")
	flag.IntVar(&cfg.Cycles, "cycles", 0, "Max escape iterations (0 = variant default).")
	flag.DurationVar(&cfg.RepeatDelay, "repeat-delay", cfg.RepeatDelay, "Held key repeat delay.")
	flag.DurationVar(&cfg.RepeatInterval, "repeat-interval", cfg.RepeatInterval, "Held key repeat interval (0 = no repeat).")
	flag.Uint64Var(&cfg.Ticks, "ticks", 0, "Stop after N ticks in headless mode (0 = run forever).")
	flag.StringVar(&cfg.Script, "script", "", `Headless input script, e.g. "down*5,release,left".`)
	flag.BoolVar(&cfg.Verbose, "v", false, "Log every frame.")
	flag.Parse()

	logging.SetVerbose(cfg.Verbose)
	logger := logging.New("Main")

	cfg.Backend = app.Backend(backend)
	v, err := app.ParseVariant(variant)
	if err != nil {
		logger.Fatal(err.Error())
	}
	cfg.Variant = v
	if err := cfg.Verify(); err != nil {
		logger.Fatal(err.Error())
	}

	newApp := func(h hal.HAL) func() error { return app.New(h, cfg) }

	switch cfg.Backend {
	case app.BackendHeadless:
		hc, err := cfg.Headless()
		if err != nil {
			logger.Fatal(err.Error())
		}
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if err := hal.RunHeadless(ctx, newApp, hc); err != nil {
			if errors.Is(err, context.Canceled) {
				return
			}
			logger.Fatal(err.Error())
		}
	case app.BackendGLFW:
		if err := hal.RunGLFW(cfg.Window(), newApp); err != nil {
			logger.Fatal(err.Error())
		}
	default:
		if err := hal.RunWindow(cfg.Window(), newApp); err != nil {
			logger.Fatal(err.Error())
		}
	}
}
