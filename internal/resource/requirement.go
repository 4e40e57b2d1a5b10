package resource

import (
	"context"

	"github.com/imamik/ymir/internal/api"
	"github.com/imamik/ymir/internal/model"
)

// Requirement is a single fulfillable input needed to provision a resource.
// fulfilled holds the values of the requirements declared before it.
type Requirement interface {
	Fulfill(ctx *Context, fulfilled Fulfilled) (any, error)
}

// RequirementFunc adapts a function to Requirement.
type RequirementFunc func(ctx *Context, fulfilled Fulfilled) (any, error)

// Fulfill implements Requirement.
func (f RequirementFunc) Fulfill(ctx *Context, fulfilled Fulfilled) (any, error) {
	return f(ctx, fulfilled)
}

// NamedRequirement binds a requirement to the key its value is stored under.
type NamedRequirement struct {
	Name        string
	Requirement Requirement
}

// Filters narrows the candidates considered while resolving, e.g.
// {"region": "us-east-1"}.
type Filters map[string]string

// ResolvableDefinition locates existing resources of a kind.
type ResolvableDefinition interface {
	Kind() Kind
	Resolve(ctx *Context, question string, filters Filters) (model.Resource, error)
}

// ProvisionableDefinition creates resources of a kind.
type ProvisionableDefinition interface {
	Kind() Kind
	// Requirements returns the requirements in fulfillment order.
	Requirements() []NamedRequirement
	Provision(ctx context.Context, client api.Client, fulfilled Fulfilled) (model.Resource, error)
}

// Definition is a kind that can be both resolved and provisioned.
type Definition interface {
	ResolvableDefinition
	ProvisionableDefinition
}
