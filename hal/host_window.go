//go:build cgo

package hal

import (
	"errors"
	"fmt"

	"mandelview/shader"

	"github.com/hajimehoshi/ebiten/v2"
)

// RunWindow opens a desktop window, runs the Kage Mandelbrot shader in it and
// forwards keyboard input. It blocks until the window closes.
func RunWindow(cfg WindowConfig, newApp func(HAL) func() error) error {
	cfg.defaults()

	prog, err := ebiten.NewShader(shader.Kage)
	if err != nil {
		return fmt.Errorf("compile shader: %w", err)
	}

	h := &windowHAL{
		kbd: newHostKeyboard(cfg.Repeat, cfg.TPS),
		r:   &ebitenRenderer{w: cfg.Width, h: cfg.Height, prog: prog},
	}
	g := &hostGame{h: h, step: newApp(h)}

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowClosingHandled(true)
	// Frames are only redrawn when the view moved; keep the last one on screen.
	ebiten.SetScreenClearedEveryFrame(false)

	err = ebiten.RunGame(g)
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

type windowHAL struct {
	kbd *hostKeyboard
	r   *ebitenRenderer
}

func (h *windowHAL) Input() Input       { return h.kbd }
func (h *windowHAL) Renderer() Renderer { return h.r }

type hostGame struct {
	h    *windowHAL
	step func() error
}

func (g *hostGame) Update() error {
	g.h.kbd.poll()
	if g.step != nil {
		if err := g.step(); err != nil {
			if errors.Is(err, ErrQuit) {
				return ebiten.Termination
			}
			return err
		}
	}
	return nil
}

func (g *hostGame) Draw(screen *ebiten.Image) {
	g.h.r.flush(screen)
}

func (g *hostGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.h.r.w, g.h.r.h
}

// ebitenRenderer queues the draw requested during Update and performs it on
// the next Draw callback.
type ebitenRenderer struct {
	w, h   int
	prog   *ebiten.Shader
	clear  bool
	queued *shader.Uniforms
	title  string
}

func (r *ebitenRenderer) Size() (int, int) { return r.w, r.h }
func (r *ebitenRenderer) Clear()           { r.clear = true }
func (r *ebitenRenderer) Present() error   { return nil }

func (r *ebitenRenderer) Draw(u shader.Uniforms) error {
	r.queued = &u
	return nil
}

func (r *ebitenRenderer) SetTitle(title string) {
	if title == r.title {
		return
	}
	r.title = title
	ebiten.SetWindowTitle(title)
}

func (r *ebitenRenderer) flush(screen *ebiten.Image) {
	if r.clear {
		screen.Clear()
		r.clear = false
	}
	if r.queued == nil {
		return
	}
	op := &ebiten.DrawRectShaderOptions{}
	op.Uniforms = r.queued.KageMap()
	screen.DrawRectShader(r.w, r.h, r.prog, op)
	r.queued = nil
}
