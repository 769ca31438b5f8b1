package viewport

// Key is an abstract navigation key.
type Key uint8

const (
	KeyNone Key = iota
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyA
	KeyD
	KeyW
	KeyS
	KeyZ
	KeyX
	KeySpace
)

var keyNames = [...]string{
	KeyNone:  "none",
	KeyLeft:  "left",
	KeyRight: "right",
	KeyUp:    "up",
	KeyDown:  "down",
	KeyA:     "a",
	KeyD:     "d",
	KeyW:     "w",
	KeyS:     "s",
	KeyZ:     "z",
	KeyX:     "x",
	KeySpace: "space",
}

func (k Key) String() string {
	if int(k) < len(keyNames) {
		return keyNames[k]
	}
	return "unknown"
}

// ParseKey returns the key with the given name.
func ParseKey(name string) (Key, bool) {
	for i, n := range keyNames {
		if i != int(KeyNone) && n == name {
			return Key(i), true
		}
	}
	return KeyNone, false
}
