package input

import (
	"fmt"
	"sort"
)

// Bindings maps each command to a portable key name such as "W", "F1" or
// "PageUp". Backends translate the names to their own key codes.
type Bindings map[Command]string

// DefaultBindings is the stock keyboard layout.
func DefaultBindings() Bindings {
	return Bindings{
		RotateXPos:      "W",
		RotateXNeg:      "S",
		RotateYPos:      "D",
		RotateYNeg:      "A",
		RotateZPos:      "E",
		RotateZNeg:      "Q",
		TranslateXPos:   "Right",
		TranslateXNeg:   "Left",
		TranslateYPos:   "Down",
		TranslateYNeg:   "Up",
		TranslateZPos:   "PageDown",
		TranslateZNeg:   "PageUp",
		Reset:           "F1",
		ModeLocal:       "F2",
		ModeGlobal:      "F3",
		ModeCoordSystem: "F4",
		ModeCycle:       "Tab",
		ToggleAxes:      "F5",
		Quit:            "Escape",
	}
}

// ParseBindings overlays name->key pairs from configuration on the defaults.
func ParseBindings(raw map[string]string) (Bindings, error) {
	b := DefaultBindings()
	names := make([]string, 0, len(raw))
	for name := range raw {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		c, err := ParseCommand(name)
		if err != nil {
			return nil, err
		}
		if raw[name] == "" {
			return nil, fmt.Errorf("command %s: empty key", c)
		}
		b[c] = raw[name]
	}
	return b, nil
}

// Resolve translates every binding with lookup. Unknown key names are an error.
func Resolve[K any](b Bindings, lookup map[string]K) (map[Command]K, error) {
	out := make(map[Command]K, len(b))
	for c, name := range b {
		k, ok := lookup[name]
		if !ok {
			return nil, fmt.Errorf("command %s: unknown key %q", c, name)
		}
		out[c] = k
	}
	return out, nil
}

// Sample builds the held set by asking down for each bound key.
func Sample[K any](keys map[Command]K, down func(K) bool) Set {
	var s Set
	for c, k := range keys {
		if down(k) {
			s = s.With(c)
		}
	}
	return s
}
