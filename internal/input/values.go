package input

import "strings"

var _ Input = Values{}

// Values is an in-memory Input, mostly useful in tests and for handlers that
// build input programmatically. Options hold string, int, bool or []string
// values.
type Values struct {
	Arguments map[string][]string
	Options   map[string]any
}

// Empty returns an Input without arguments or options.
func Empty() Values {
	return Values{}
}

// HasArgument implements Input.
func (v Values) HasArgument(name string) bool {
	return len(nonEmpty(v.Arguments[name])) > 0
}

// StringArgument implements Input.
func (v Values) StringArgument(name string) string {
	values := nonEmpty(v.Arguments[name])
	if len(values) == 0 {
		return ""
	}
	return values[0]
}

// ArrayArgument implements Input.
func (v Values) ArrayArgument(name string) []string {
	return nonEmpty(v.Arguments[name])
}

// HasOption implements Input.
func (v Values) HasOption(name string) bool {
	_, ok := v.Options[name]
	return ok
}

// StringOption implements Input.
func (v Values) StringOption(name string) string {
	s, _ := v.Options[name].(string)
	return strings.TrimSpace(s)
}

// NumericOption implements Input.
func (v Values) NumericOption(name string) (int, bool) {
	i, ok := v.Options[name].(int)
	return i, ok
}

// BooleanOption implements Input.
func (v Values) BooleanOption(name string) bool {
	b, _ := v.Options[name].(bool)
	return b
}

// ArrayOption implements Input.
func (v Values) ArrayOption(name string) []string {
	switch o := v.Options[name].(type) {
	case []string:
		return nonEmpty(o)
	case string:
		return nonEmpty([]string{o})
	}
	return nil
}
