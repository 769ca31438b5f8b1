package app

import (
	"testing"

	"mandelview/hal"
	"mandelview/viewport"
)

func TestKeyFor(t *testing.T) {
	cases := map[hal.KeyCode]viewport.Key{
		hal.KeyUp:      viewport.KeyUp,
		hal.KeyDown:    viewport.KeyDown,
		hal.KeyLeft:    viewport.KeyLeft,
		hal.KeyRight:   viewport.KeyRight,
		hal.KeyA:       viewport.KeyA,
		hal.KeyD:       viewport.KeyD,
		hal.KeyW:       viewport.KeyW,
		hal.KeyS:       viewport.KeyS,
		hal.KeyZ:       viewport.KeyZ,
		hal.KeyX:       viewport.KeyX,
		hal.KeySpace:   viewport.KeySpace,
		hal.KeyUnknown: viewport.KeyNone,
	}
	for code, want := range cases {
		if got := keyFor(code); got != want {
			t.Fatalf("keyFor(%v) = %v, want %v", code, got, want)
		}
	}
	if got := keyFor(hal.KeyCode(99)); got != viewport.KeyNone {
		t.Fatalf("keyFor(99) = %v, want none", got)
	}
}
