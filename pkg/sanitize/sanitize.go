package sanitize

import (
	"errors"
	"fmt"
	"strings"
	"sync"
)

// Transform is a single string sanitization step.
type Transform func(string) string

// ErrUnknownTransform is returned when a chain references an unregistered
// transform name. It is a configuration error, raised before any data is
// processed.
var ErrUnknownTransform = errors.New("unknown sanitize transform")

var (
	mu         sync.RWMutex
	transforms = map[string]Transform{
		"trim":       Trim,
		"lower":      Lower,
		"upper":      Upper,
		"capitalize": Capitalize,
		"squish":     Squish,
		"digits":     Digits,
		"ascii":      ASCII,
	}
)

// Register adds or replaces a named transform. Registration normally
// happens once at startup.
func Register(name string, t Transform) {
	mu.Lock()
	defer mu.Unlock()
	transforms[name] = t
}

// Resolve looks up a transform by name.
func Resolve(name string) (Transform, bool) {
	mu.RLock()
	defer mu.RUnlock()
	t, ok := transforms[name]
	return t, ok
}

// Chain resolves a pipe-joined spec such as "trim|lower" into an ordered
// transform list.
func Chain(spec string) ([]Transform, error) {
	var chain []Transform
	for _, name := range strings.Split(spec, "|") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		t, ok := Resolve(name)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownTransform, name)
		}
		chain = append(chain, t)
	}
	return chain, nil
}

// Apply runs the transforms over the value in order.
func Apply(value string, chain ...Transform) string {
	for _, t := range chain {
		value = t(value)
	}
	return value
}

// Compose folds several transforms into one reusable Transform.
func Compose(chain ...Transform) Transform {
	return func(value string) string {
		return Apply(value, chain...)
	}
}
