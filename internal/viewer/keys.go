package viewer

import "slices"

// KeyMap names the keys that move between slides. Keys are compared with
// the host's string form of a key press, for example "l" or "right".
type KeyMap struct {
	Previous []string
	Next     []string
}

// DefaultKeyMap steps with h/l and the arrow keys.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Previous: []string{"h", "left"},
		Next:     []string{"l", "right"},
	}
}

func (k KeyMap) isPrevious(key string) bool { return slices.Contains(k.Previous, key) }
func (k KeyMap) isNext(key string) bool     { return slices.Contains(k.Next, key) }
