package app

import (
	"mandelview/hal"
	"mandelview/viewport"
)

// keyFor translates a platform key code into a navigation key by name.
// Codes with no navigation meaning map to KeyNone.
func keyFor(code hal.KeyCode) viewport.Key {
	if k, ok := viewport.ParseKey(code.String()); ok {
		return k
	}
	return viewport.KeyNone
}
