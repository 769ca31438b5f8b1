package app

import (
	"fmt"

	"mandelview/hal"
	"mandelview/internal/buildinfo"
	"mandelview/internal/logging"
	"mandelview/shader"
	"mandelview/viewport"

	"github.com/BrugadaSyndrome/bslogger"
)

// ErrQuit ends the run loop; backends treat it as a clean exit.
var ErrQuit = hal.ErrQuit

// Loop is the per-tick driver: it drains input, feeds the viewport
// controller and redraws when something changed.
type Loop struct {
	in     hal.Input
	r      hal.Renderer
	vp     *viewport.Controller
	logger bslogger.Logger

	dirty  bool
	frames uint64
}

// NewLoop wires a controller to the HAL.
func NewLoop(h hal.HAL, vp *viewport.Controller) *Loop {
	return &Loop{
		in:     h.Input(),
		r:      h.Renderer(),
		vp:     vp,
		logger: logging.New("RenderLoop"),
		dirty:  true,
	}
}

// New builds the viewer for cfg and returns its step function, in the shape
// the hal runners expect. Panics inside the step come back as *PanicError.
func New(h hal.HAL, cfg Config) func() error {
	l := NewLoop(h, viewport.New(cfg.Variant, cfg.Cycles))
	l.logger.Infof("%s: variant=%s cycles=%d", buildinfo.String(), cfg.Variant, l.vp.State().Cycles)
	return guard(l.logger, l.Step)
}

// Controller exposes the viewport being driven.
func (l *Loop) Controller() *viewport.Controller { return l.vp }

// Frames is the number of frames drawn so far.
func (l *Loop) Frames() uint64 { return l.frames }

// Step runs one iteration of the loop.
func (l *Loop) Step() error {
	if l.in != nil {
		ch := l.in.Events()
	drain:
		for {
			select {
			case ev := <-ch:
				if ev.Kind == hal.EventQuit {
					l.logger.Info("quit requested")
					return ErrQuit
				}
				if l.handle(ev) {
					l.dirty = true
				}
			default:
				break drain
			}
		}
	}

	if !l.dirty {
		return nil
	}
	if err := l.draw(); err != nil {
		return err
	}
	l.dirty = false
	return nil
}

func (l *Loop) handle(ev hal.Event) bool {
	if ev.Kind != hal.EventKey {
		return false
	}
	key := keyFor(ev.Code)
	if !ev.Press {
		return l.vp.KeyUp(key)
	}
	return l.vp.KeyDown(key)
}

// draw advances the camera one tick and renders it. On failure the camera
// is put back so the same frame is attempted again on the next step.
func (l *Loop) draw() error {
	prev := l.vp.State()
	f := l.vp.Tick()
	w, h := l.r.Size()

	l.r.Clear()
	if err := l.r.Draw(shader.FromFrame(f, w, h)); err != nil {
		l.vp.Restore(prev)
		return fmt.Errorf("draw frame %d: %w", l.frames+1, err)
	}
	if err := l.r.Present(); err != nil {
		l.vp.Restore(prev)
		return fmt.Errorf("present frame %d: %w", l.frames+1, err)
	}
	l.frames++
	l.r.SetTitle(Caption(l.vp.State(), l.vp.Variant(), w))
	return nil
}
