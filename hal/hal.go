package hal

import (
	"errors"

	"mandelview/shader"
)

// ErrQuit is returned by a step function to end the run loop cleanly.
var ErrQuit = errors.New("quit")

// KeyCode is a minimal key identifier.
type KeyCode uint16

const (
	KeyUnknown KeyCode = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyA
	KeyD
	KeyW
	KeyS
	KeyZ
	KeyX
	KeySpace
)

var keyCodeNames = [...]string{
	KeyUnknown: "unknown",
	KeyUp:      "up",
	KeyDown:    "down",
	KeyLeft:    "left",
	KeyRight:   "right",
	KeyA:       "a",
	KeyD:       "d",
	KeyW:       "w",
	KeyS:       "s",
	KeyZ:       "z",
	KeyX:       "x",
	KeySpace:   "space",
}

func (k KeyCode) String() string {
	if int(k) < len(keyCodeNames) {
		return keyCodeNames[k]
	}
	return "unknown"
}

// EventKind tells key events from window events.
type EventKind uint8

const (
	EventKey EventKind = iota + 1
	EventQuit
)

// Event is one input event. Auto-repeat of a held key arrives as another
// press. Releases of keys outside the KeyCode set carry KeyUnknown.
type Event struct {
	Kind  EventKind
	Code  KeyCode
	Press bool
}

// Input provides input events (best-effort on each platform).
type Input interface {
	Events() <-chan Event
}

// Renderer is the GPU side: one full-screen shader with named uniforms.
type Renderer interface {
	// Size is the drawable size in pixels.
	Size() (w, h int)
	Clear()
	// Draw renders the full-screen quad with u bound.
	Draw(u shader.Uniforms) error
	Present() error
	SetTitle(title string)
}

// HAL provides the only contact point between the viewer and the platform.
type HAL interface {
	Input() Input
	Renderer() Renderer
}

// WindowConfig is shared by the window backends.
type WindowConfig struct {
	Width  int
	Height int
	// TPS is the fixed logical tick rate.
	TPS    int
	Title  string
	Repeat Repeat
}

func (c *WindowConfig) defaults() {
	if c.Width <= 0 {
		c.Width = 800
	}
	if c.Height <= 0 {
		c.Height = c.Width
	}
	if c.TPS <= 0 {
		c.TPS = 25
	}
}

// keyEvent builds the event for a physical key transition. Presses of keys
// the viewer does not use are dropped; every release is kept, since any
// release stops the view.
func keyEvent(code KeyCode, press bool) (Event, bool) {
	if press && code == KeyUnknown {
		return Event{}, false
	}
	return Event{Kind: EventKey, Code: code, Press: press}, true
}

// emit pushes ev without blocking; a full queue drops the event.
func emit(ch chan Event, ev Event) {
	select {
	case ch <- ev:
	default:
	}
}
