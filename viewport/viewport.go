// Package viewport holds the navigation state machine of the viewer.
//
// A Controller turns discrete key presses into velocities and advances the
// camera (rotation, zoom, pan) once per rendered frame. It never talks to a
// window or GPU; the render loop feeds it events and reads back a Frame.
package viewport

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

const (
	MaxSpeed     = 180.0
	MaxZoomSpeed = 2500.0
	MaxZoom      = 5.0
	MinZoom      = 0.00001
	MaxCycles    = 2000
	BrightMax    = 500.0
	BrightMin    = 50.0

	// Fixed shader parameters of the simple variant.
	SimpleCycles        = 300
	SimpleBrightnessDiv = 30.0

	angularStep    = 0.5
	zoomStep       = 0.01
	panStep        = 5.0
	brightnessStep = 10.0
)

// Variant selects which controls are exposed.
type Variant uint8

const (
	// Rich exposes brightness (Z/X) and runs the deep iteration count.
	Rich Variant = iota
	// Simple pins cycles and brightness to fixed values.
	Simple
)

func (v Variant) String() string {
	switch v {
	case Rich:
		return "rich"
	case Simple:
		return "simple"
	default:
		return "unknown"
	}
}

// Vec2 is a plain 2D vector.
type Vec2 struct {
	X, Y float64
}

// State is the full mutable camera state.
type State struct {
	Angle         float64 // degrees
	AngularSpeed  float64 // degrees per tick
	Zoom          float64
	ZoomSpeed     float64
	Pan           Vec2 // screen space
	Center        Vec2 // world space
	Cycles        int
	BrightnessDiv float64
}

// Frame is the resolved parameter set handed to the renderer.
type Frame struct {
	AngleRad      float64
	Scale         float64
	Offset        Vec2
	Cycles        int
	BrightnessDiv float64
}

// Controller owns a State and applies input and ticks to it.
type Controller struct {
	variant controls
	st      State
}

// controls is what a Variant turns on.
type controls struct {
	kind          Variant
	brightness    bool
	brightnessDiv float64
}

// New returns a controller in its launch state. cycles <= 0 selects the
// variant default.
func New(v Variant, cycles int) *Controller {
	c := &Controller{variant: variantOf(v)}
	if cycles <= 0 {
		cycles = MaxCycles
		if v == Simple {
			cycles = SimpleCycles
		}
	}
	c.st = State{
		Zoom:          MaxZoom,
		Cycles:        clampInt(cycles, 1, MaxCycles),
		BrightnessDiv: c.variant.brightnessDiv,
	}
	return c
}

func variantOf(v Variant) controls {
	if v == Simple {
		return controls{kind: Simple, brightnessDiv: SimpleBrightnessDiv}
	}
	return controls{kind: Rich, brightness: true, brightnessDiv: BrightMax}
}

// Variant reports the controller's variant.
func (c *Controller) Variant() Variant { return c.variant.kind }

// State returns a copy of the current state.
func (c *Controller) State() State { return c.st }

// Restore replaces the state with s, typically one taken earlier with State.
func (c *Controller) Restore(s State) { c.st = s }

// KeyDown applies one press (or auto-repeat) of key. It reports whether the
// key was handled and the view needs a redraw.
func (c *Controller) KeyDown(key Key) bool {
	s := &c.st
	switch key {
	case KeyLeft:
		s.AngularSpeed = stepUp(s.AngularSpeed, angularStep, MaxSpeed)
	case KeyRight:
		s.AngularSpeed = stepDown(s.AngularSpeed, angularStep, -MaxSpeed)
	case KeyDown:
		s.ZoomSpeed = stepUp(s.ZoomSpeed, zoomStep, MaxZoomSpeed)
	case KeyUp:
		s.ZoomSpeed = stepDown(s.ZoomSpeed, zoomStep, -MaxZoomSpeed)
	case KeyA:
		s.Pan.X -= panStep
	case KeyD:
		s.Pan.X += panStep
	case KeyW:
		s.Pan.Y += panStep
	case KeyS:
		s.Pan.Y -= panStep
	case KeyZ:
		if !c.variant.brightness {
			return false
		}
		s.BrightnessDiv = stepUp(s.BrightnessDiv, brightnessStep, BrightMax)
	case KeyX:
		if !c.variant.brightness {
			return false
		}
		s.BrightnessDiv = stepDown(s.BrightnessDiv, brightnessStep, BrightMin)
	case KeySpace:
		c.reset()
	default:
		return false
	}
	return true
}

// KeyUp stops every kind of drift, whichever key was released.
func (c *Controller) KeyUp(Key) bool {
	c.st.AngularSpeed = 0
	c.st.ZoomSpeed = 0
	c.st.Pan = Vec2{}
	return true
}

func (c *Controller) reset() {
	s := &c.st
	s.AngularSpeed = 0
	s.ZoomSpeed = 0
	s.Pan = Vec2{}
	s.Center = Vec2{}
	s.Angle = 0
	s.BrightnessDiv = c.variant.brightnessDiv
	s.Zoom = MaxZoom
}

// Tick advances the state by one frame and returns the resolved parameters.
func (c *Controller) Tick() Frame {
	s := &c.st
	s.Angle += s.AngularSpeed

	// Pan input is screen relative; counter-rotate it into world space.
	pan := mgl64.Rotate2D(-s.Angle * math.Pi / 180).Mul2x1(mgl64.Vec2{s.Pan.X, s.Pan.Y})
	s.Center.X += pan.X() * s.Zoom
	s.Center.Y += pan.Y() * s.Zoom

	if s.Zoom > MinZoom && s.Zoom < MaxZoom {
		s.Zoom += s.ZoomSpeed * s.Zoom
	}
	if s.Zoom <= MinZoom {
		s.ZoomSpeed = 0
		s.Zoom = MinZoom + MinZoom/10
	}
	if s.Zoom >= MaxZoom {
		s.ZoomSpeed = 0
		s.Zoom = MaxZoom - MinZoom
	}

	return c.Frame()
}

// Frame resolves the current state without advancing it.
func (c *Controller) Frame() Frame {
	return Frame{
		AngleRad:      c.st.Angle * math.Pi / 180,
		Scale:         c.st.Zoom,
		Offset:        c.st.Center,
		Cycles:        c.st.Cycles,
		BrightnessDiv: c.st.BrightnessDiv,
	}
}

// stepUp adds step when v is still below limit, never overshooting it.
func stepUp(v, step, limit float64) float64 {
	if v < limit {
		v = math.Min(v+step, limit)
	}
	return v
}

func stepDown(v, step, limit float64) float64 {
	if v > limit {
		v = math.Max(v-step, limit)
	}
	return v
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
