package resource

import (
	"strings"

	"github.com/imamik/ymir/internal/model"
)

// Resolver implements the resolution chain shared by every definition:
// explicit argument, explicit option, contextual fallback, then an
// interactive choice over the (filtered) candidates.
type Resolver[T model.Resource] struct {
	Kind Kind
	// Argument and Option name the inputs holding an explicit ID or name.
	// Either may be empty.
	Argument string
	Option   string
	// Fetch returns the candidates.
	Fetch func(ctx *Context) (model.Collection[T], error)
	// Fallback returns an ID or name derived from the context, or "".
	Fallback func(ctx *Context) string
}

// Resolve returns the resource selected by the chain.
func (r Resolver[T]) Resolve(ctx *Context, question string, filters Filters) (T, error) {
	var zero T

	idOrName := r.explicit(ctx)

	resources, err := r.Fetch(ctx)
	if err != nil {
		return zero, err
	}
	resources = resources.Filter(filters)

	if resources.IsEmpty() {
		return zero, &NoResourcesFoundError{Kind: r.Kind}
	}

	if idOrName == "" && r.Fallback != nil {
		idOrName = r.Fallback(ctx)
	}
	if idOrName == "" {
		idOrName, err = ctx.Console().ChoiceWithResourceDetails(ctx, question, toResources(resources))
		if err != nil {
			return zero, err
		}
		idOrName = strings.TrimSpace(idOrName)
	}

	if idOrName == "" {
		return zero, NewValidationError("You must provide a %s ID or name", r.Kind.Label())
	}
	if resources.HasNameCollision(idOrName) {
		return zero, &ResolutionError{Kind: r.Kind, Name: idOrName}
	}

	found, ok := resources.FirstWhereIDOrName(idOrName)
	if !ok {
		return zero, &NotFoundError{Kind: r.Kind, IDOrName: idOrName}
	}

	ctx.Logger().V(1).Info("resolved resource", "kind", string(r.Kind), "id", found.ID(), "name", found.Name())
	return found, nil
}

func (r Resolver[T]) explicit(ctx *Context) string {
	in := ctx.Input()
	if r.Argument != "" {
		if v := in.StringArgument(r.Argument); v != "" {
			return v
		}
	}
	if r.Option != "" {
		if v := in.StringOption(r.Option); v != "" {
			return v
		}
	}
	return ""
}

func toResources[T model.Resource](c model.Collection[T]) []model.Resource {
	return model.Map(c, func(item T) model.Resource { return item })
}
