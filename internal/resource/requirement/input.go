package requirement

import (
	"strings"

	"github.com/imamik/ymir/internal/console"
	"github.com/imamik/ymir/internal/resource"
	"github.com/imamik/ymir/internal/util/naming"
)

// DefaultFunc computes a prompt default from the context.
type DefaultFunc func(ctx *resource.Context, fulfilled resource.Fulfilled) string

// Text is a direct input requirement: it reads an argument, then an option,
// and prompts when neither is set.
type Text struct {
	Argument string
	Option   string
	Question string
	// Thing names the value in validation messages, e.g. "name".
	Thing   string
	Default DefaultFunc
	// Slug normalises the prompted value and requires the final value to be
	// a slug.
	Slug     bool
	Validate console.Validator
}

// Name reads the "name" argument or asks for a name.
func Name(question string) Text {
	return Text{Argument: "name", Question: question, Thing: "name"}
}

// NameSlug is Name restricted to slugs, defaulting to def when given.
func NameSlug(question string, def DefaultFunc) Text {
	return Text{Argument: "name", Question: question, Thing: "name", Slug: true, Default: def}
}

// StringArgument reads argument name or asks question.
func StringArgument(argument, question string) Text {
	return Text{Argument: argument, Question: question, Thing: strings.ReplaceAll(argument, "_", " ")}
}

// Fulfill implements resource.Requirement.
func (r Text) Fulfill(ctx *resource.Context, fulfilled resource.Fulfilled) (any, error) {
	value := r.explicit(ctx)

	if value == "" {
		def := ""
		if r.Default != nil {
			def = r.Default(ctx, fulfilled)
		}
		check := r.validator()

		var err error
		if r.Slug {
			value, err = ctx.Console().AskSlug(ctx, r.Question, def, check)
		} else {
			value, err = ctx.Console().Ask(ctx, r.Question, def, check)
		}
		if err != nil {
			return nil, err
		}
	}

	value = strings.TrimSpace(value)
	if err := r.validator()(value); err != nil {
		return nil, err
	}
	return value, nil
}

func (r Text) explicit(ctx *resource.Context) string {
	in := ctx.Input()
	if r.Argument != "" {
		if v := in.StringArgument(r.Argument); v != "" {
			return v
		}
	}
	if r.Option != "" {
		return in.StringOption(r.Option)
	}
	return ""
}

func (r Text) validator() console.Validator {
	thing := r.Thing
	if thing == "" {
		thing = "value"
	}
	required := notEmpty(thing)
	return func(s string) error {
		if err := required(s); err != nil {
			return err
		}
		if r.Slug && !naming.IsSlug(s) {
			return resource.NewValidationError("The %s can only contain lowercase alphanumeric characters and hyphens", thing)
		}
		if r.Validate != nil {
			return r.Validate(s)
		}
		return nil
	}
}
