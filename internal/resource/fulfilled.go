package resource

import (
	"fmt"
	"maps"
)

// Fulfilled maps requirement names to their fulfilled values. Values are
// strings, ints, bools, string slices or model resources.
type Fulfilled map[string]any

// Has reports whether key has been fulfilled.
func (f Fulfilled) Has(key string) bool {
	_, ok := f[key]
	return ok
}

// Clone returns a shallow copy. Cloning a nil map yields an empty one.
func (f Fulfilled) Clone() Fulfilled {
	out := make(Fulfilled, len(f))
	maps.Copy(out, f)
	return out
}

// Require returns a DependencyError naming every key not yet fulfilled.
func (f Fulfilled) Require(keys ...string) error {
	var missing []string
	for _, key := range keys {
		if !f.Has(key) {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		return &DependencyError{Missing: missing}
	}
	return nil
}

// Value returns the value of key as a T. A missing key is a DependencyError;
// a value of another type is an error as well, never a silent conversion.
func Value[T any](f Fulfilled, key string) (T, error) {
	var zero T
	raw, ok := f[key]
	if !ok {
		return zero, &DependencyError{Missing: []string{key}}
	}
	v, ok := raw.(T)
	if !ok {
		return zero, fmt.Errorf("fulfilled requirement %q is a %T, not a %T", key, raw, zero)
	}
	return v, nil
}

// String returns a string value.
func (f Fulfilled) String(key string) (string, error) {
	return Value[string](f, key)
}

// Int returns an int value.
func (f Fulfilled) Int(key string) (int, error) {
	return Value[int](f, key)
}

// Bool returns a bool value.
func (f Fulfilled) Bool(key string) (bool, error) {
	return Value[bool](f, key)
}

// Strings returns a string slice value.
func (f Fulfilled) Strings(key string) ([]string, error) {
	return Value[[]string](f, key)
}
