package hal

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseScript turns a comma separated input script into per-tick event
// batches for the headless runner.
//
// Tokens: a key name presses that key, "release" releases every key, "idle"
// delivers nothing and "quit" closes the window. A "*N" suffix repeats the
// token for N ticks, e.g. "down*5,release,left".
func ParseScript(s string) ([][]Event, error) {
	var out [][]Event
	for _, tok := range strings.Split(s, ",") {
		tok = strings.TrimSpace(strings.ToLower(tok))
		if tok == "" {
			continue
		}
		n := 1
		if name, count, ok := strings.Cut(tok, "*"); ok {
			v, err := strconv.Atoi(count)
			if err != nil || v < 1 {
				return nil, fmt.Errorf("script: bad repeat count in %q", tok)
			}
			tok, n = name, v
		}

		var batch []Event
		switch tok {
		case "idle":
		case "release":
			batch = []Event{{Kind: EventKey, Code: KeyUnknown, Press: false}}
		case "quit":
			batch = []Event{{Kind: EventQuit}}
		default:
			code, ok := keyCodeByName(tok)
			if !ok {
				return nil, fmt.Errorf("script: unknown key %q", tok)
			}
			batch = []Event{{Kind: EventKey, Code: code, Press: true}}
		}
		for i := 0; i < n; i++ {
			out = append(out, batch)
		}
	}
	return out, nil
}

func keyCodeByName(name string) (KeyCode, bool) {
	for i, n := range keyCodeNames {
		if KeyCode(i) != KeyUnknown && n == name {
			return KeyCode(i), true
		}
	}
	return KeyUnknown, false
}
