package console

import (
	"context"
	"errors"
	"strconv"

	"github.com/imamik/ymir/internal/model"
)

// ErrAborted is returned when the user interrupts a prompt (ctrl+c).
var ErrAborted = errors.New("prompt aborted")

// Validator checks a prompted value. A non-nil error re-prompts in
// interactive sessions and fails the prompt otherwise.
type Validator func(string) error

// Option is a selectable choice. Key is returned when the option is chosen.
type Option struct {
	Key   string
	Label string
}

// Options builds options whose keys equal their labels.
func Options(values ...string) []Option {
	out := make([]Option, 0, len(values))
	for _, v := range values {
		out = append(out, Option{Key: v, Label: v})
	}
	return out
}

// Console is the interactive I/O boundary.
type Console interface {
	Ask(ctx context.Context, question, defaultValue string, validate Validator) (string, error)
	AskHidden(ctx context.Context, question string) (string, error)
	// AskSlug asks for a value and converts the answer into a slug.
	AskSlug(ctx context.Context, question, defaultValue string, validate Validator) (string, error)
	Confirm(ctx context.Context, question string, defaultValue bool) (bool, error)
	// Choice returns the key of the selected option.
	Choice(ctx context.Context, question string, options []Option, defaultKey string) (string, error)
	// ChoiceWithID returns the ID of the selected resource.
	ChoiceWithID(ctx context.Context, question string, resources []model.Resource) (int, error)
	// ChoiceWithResourceDetails returns the ID of the selected resource as a
	// string, or its name for resources without an ID.
	ChoiceWithResourceDetails(ctx context.Context, question string, resources []model.Resource) (string, error)
	Multichoice(ctx context.Context, question string, options []Option, defaults []string) ([]string, error)

	Info(format string, args ...any)
	Success(format string, args ...any)
	Warn(format string, args ...any)
	Error(format string, args ...any)
	Table(headers []string, rows [][]string)
	Newline()

	// Interactive reports whether prompts reach a user.
	Interactive() bool
}

// ResourceKey is the value returned by ChoiceWithResourceDetails for r.
func ResourceKey(r model.Resource) string {
	if r.ID() == 0 {
		return r.Name()
	}
	return strconv.Itoa(r.ID())
}

// ResourceDetails describes r for selection lists.
func ResourceDetails(r model.Resource) string {
	label := r.Name()
	if attributed, ok := r.(model.Attributed); ok {
		if region, ok := attributed.Attribute("region"); ok && region != "" {
			label += " (" + region + ")"
		}
	}
	if r.ID() == 0 {
		return label
	}
	return "[" + strconv.Itoa(r.ID()) + "] " + label
}
