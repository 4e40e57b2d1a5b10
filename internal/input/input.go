// Package input exposes command arguments and options to requirements.
package input

import (
	"strconv"
	"strings"

	"github.com/spf13/pflag"
)

// Input gives typed access to the arguments and options of a command.
type Input interface {
	HasArgument(name string) bool
	StringArgument(name string) string
	// ArrayArgument returns the named argument and every argument after it.
	ArrayArgument(name string) []string

	// HasOption reports whether the option was explicitly set.
	HasOption(name string) bool
	StringOption(name string) string
	// NumericOption returns the option value and whether it was set.
	NumericOption(name string) (int, bool)
	BooleanOption(name string) bool
	ArrayOption(name string) []string
}

var _ Input = (*Command)(nil)

// Command adapts cobra positional arguments and a pflag set to Input.
// Positional arguments are named by their position in argNames.
type Command struct {
	flags    *pflag.FlagSet
	args     []string
	argNames []string
}

// NewCommand creates an Input for a parsed command.
func NewCommand(flags *pflag.FlagSet, args []string, argNames ...string) *Command {
	if flags == nil {
		flags = pflag.NewFlagSet("empty", pflag.ContinueOnError)
	}
	return &Command{flags: flags, args: args, argNames: argNames}
}

func (c *Command) argIndex(name string) int {
	for i, n := range c.argNames {
		if n == name {
			return i
		}
	}
	return -1
}

// HasArgument implements Input.
func (c *Command) HasArgument(name string) bool {
	i := c.argIndex(name)
	return i >= 0 && i < len(c.args) && strings.TrimSpace(c.args[i]) != ""
}

// StringArgument implements Input.
func (c *Command) StringArgument(name string) string {
	if !c.HasArgument(name) {
		return ""
	}
	return strings.TrimSpace(c.args[c.argIndex(name)])
}

// ArrayArgument implements Input.
func (c *Command) ArrayArgument(name string) []string {
	i := c.argIndex(name)
	if i < 0 || i >= len(c.args) {
		return nil
	}
	return nonEmpty(c.args[i:])
}

// HasOption implements Input.
func (c *Command) HasOption(name string) bool {
	f := c.flags.Lookup(name)
	return f != nil && f.Changed
}

// StringOption implements Input.
func (c *Command) StringOption(name string) string {
	f := c.flags.Lookup(name)
	if f == nil {
		return ""
	}
	return strings.TrimSpace(f.Value.String())
}

// NumericOption implements Input.
func (c *Command) NumericOption(name string) (int, bool) {
	if !c.HasOption(name) {
		return 0, false
	}
	v, err := strconv.Atoi(c.flags.Lookup(name).Value.String())
	if err != nil {
		return 0, false
	}
	return v, true
}

// BooleanOption implements Input.
func (c *Command) BooleanOption(name string) bool {
	v, err := c.flags.GetBool(name)
	return err == nil && v
}

// ArrayOption implements Input.
func (c *Command) ArrayOption(name string) []string {
	f := c.flags.Lookup(name)
	if f == nil {
		return nil
	}
	if sv, ok := f.Value.(pflag.SliceValue); ok {
		return nonEmpty(sv.GetSlice())
	}
	if v := strings.TrimSpace(f.Value.String()); v != "" {
		return []string{v}
	}
	return nil
}

func nonEmpty(values []string) []string {
	var out []string
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
