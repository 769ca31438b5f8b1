package hal

import (
	"context"
	"errors"
	"fmt"
	"time"

	"mandelview/internal/logging"
	"mandelview/shader"

	"github.com/BrugadaSyndrome/bslogger"
)

// HeadlessConfig controls the no-window runner.
type HeadlessConfig struct {
	Enabled bool
	Width   int
	Height  int
	Hz      int
	Ticks   uint64

	// Script holds the events delivered on each tick, in order.
	Script [][]Event
}

// RunHeadless drives the viewer without opening a window. Frames go to a
// renderer that only records and logs the uniforms it is given.
func RunHeadless(ctx context.Context, newApp func(HAL) func() error, cfg HeadlessConfig) error {
	if cfg.Hz <= 0 {
		cfg.Hz = 25
	}
	if cfg.Width <= 0 {
		cfg.Width = 800
	}
	if cfg.Height <= 0 {
		cfg.Height = cfg.Width
	}

	h := newHeadlessHAL(cfg.Width, cfg.Height, len(cfg.Script))
	step := newApp(h)

	d := time.Second / time.Duration(cfg.Hz)
	if d <= 0 {
		return fmt.Errorf("invalid headless hz: %d", cfg.Hz)
	}
	t := time.NewTicker(d)
	defer t.Stop()

	var tick uint64
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			if tick < uint64(len(cfg.Script)) {
				for _, ev := range cfg.Script[tick] {
					emit(h.in.ch, ev)
				}
			}
			if step != nil {
				if err := step(); err != nil {
					if errors.Is(err, ErrQuit) {
						return nil
					}
					return err
				}
			}
			tick++
			if cfg.Ticks > 0 && tick >= cfg.Ticks {
				return nil
			}
		}
	}
}

type headlessHAL struct {
	in *headlessInput
	r  *recordingRenderer
}

func newHeadlessHAL(w, h, queue int) *headlessHAL {
	if queue < 64 {
		queue = 64
	}
	return &headlessHAL{
		in: &headlessInput{ch: make(chan Event, queue)},
		r:  &recordingRenderer{w: w, h: h, log: logging.New("Headless")},
	}
}

func (h *headlessHAL) Input() Input       { return h.in }
func (h *headlessHAL) Renderer() Renderer { return h.r }

type headlessInput struct {
	ch chan Event
}

func (in *headlessInput) Events() <-chan Event { return in.ch }

type recordingRenderer struct {
	w, h   int
	log    bslogger.Logger
	frames int
	last   shader.Uniforms
	title  string
}

func (r *recordingRenderer) Size() (int, int) { return r.w, r.h }
func (r *recordingRenderer) Clear()           {}
func (r *recordingRenderer) Present() error   { return nil }

func (r *recordingRenderer) Draw(u shader.Uniforms) error {
	r.frames++
	r.last = u
	r.log.Debugf("frame %d: angle=%.6f scale=%.6f offset=(%.3f,%.3f) cycles=%d brightness_div=%.1f",
		r.frames, u.Angle, u.Scale, u.Offset[0], u.Offset[1], u.Cycles, u.BrightnessDiv)
	return nil
}

func (r *recordingRenderer) SetTitle(title string) {
	if title != r.title {
		r.title = title
		r.log.Info(title)
	}
}
