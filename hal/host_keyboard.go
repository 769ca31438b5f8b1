//go:build cgo

package hal

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var ebitenKeys = []struct {
	key  ebiten.Key
	code KeyCode
}{
	{ebiten.KeyArrowUp, KeyUp},
	{ebiten.KeyArrowDown, KeyDown},
	{ebiten.KeyArrowLeft, KeyLeft},
	{ebiten.KeyArrowRight, KeyRight},
	{ebiten.KeyA, KeyA},
	{ebiten.KeyD, KeyD},
	{ebiten.KeyW, KeyW},
	{ebiten.KeyS, KeyS},
	{ebiten.KeyZ, KeyZ},
	{ebiten.KeyX, KeyX},
	{ebiten.KeySpace, KeySpace},
}

type hostKeyboard struct {
	ch       chan Event
	repeat   Repeat
	tps      int
	released []ebiten.Key
}

func newHostKeyboard(repeat Repeat, tps int) *hostKeyboard {
	return &hostKeyboard{ch: make(chan Event, 64), repeat: repeat, tps: tps}
}

func ebitenKeyCode(key ebiten.Key) KeyCode {
	for _, m := range ebitenKeys {
		if m.key == key {
			return m.code
		}
	}
	return KeyUnknown
}

func (k *hostKeyboard) Events() <-chan Event { return k.ch }

func (k *hostKeyboard) poll() {
	if ebiten.IsWindowBeingClosed() {
		emit(k.ch, Event{Kind: EventQuit})
	}

	for _, m := range ebitenKeys {
		switch {
		case inpututil.IsKeyJustPressed(m.key):
			emit(k.ch, Event{Kind: EventKey, Code: m.code, Press: true})
		case inpututil.IsKeyJustReleased(m.key):
			emit(k.ch, Event{Kind: EventKey, Code: m.code, Press: false})
		default:
			if held := inpututil.KeyPressDuration(m.key); k.repeat.Fire(held, k.tps) {
				emit(k.ch, Event{Kind: EventKey, Code: m.code, Press: true})
			}
		}
	}

	// Mapped keys were handled above; the rest still report their release.
	k.released = inpututil.AppendJustReleasedKeys(k.released[:0])
	for _, key := range k.released {
		if ebitenKeyCode(key) != KeyUnknown {
			continue
		}
		if ev, ok := keyEvent(KeyUnknown, false); ok {
			emit(k.ch, ev)
		}
	}
}
