package definition

import (
	"context"

	"github.com/imamik/ymir/internal/api"
	"github.com/imamik/ymir/internal/model"
	"github.com/imamik/ymir/internal/resource"
	"github.com/imamik/ymir/internal/resource/requirement"
)

// Network creates and resolves private networks.
type Network struct{}

var networkResolver = resource.Resolver[*model.Network]{
	Kind:     resource.KindNetwork,
	Argument: "network",
	Option:   "network",
	Fetch: teamScoped(func(ctx *resource.Context, team *model.Team) (model.Collection[*model.Network], error) {
		return ctx.Client().GetNetworks(ctx, team)
	}),
}

func (Network) Kind() resource.Kind { return resource.KindNetwork }

func (Network) Requirements() []resource.NamedRequirement {
	return []resource.NamedRequirement{
		{Name: "name", Requirement: requirement.Name("What is the name of the network?")},
		{Name: "provider", Requirement: requirement.CloudProvider("Which cloud provider should the network be created on?")},
		{Name: "region", Requirement: requirement.Region{Question: "Which region should the network be created in?"}},
	}
}

func (Network) Provision(ctx context.Context, client api.Client, fulfilled resource.Fulfilled) (model.Resource, error) {
	name, err := fulfilled.String("name")
	if err != nil {
		return nil, err
	}
	provider, err := resource.Value[*model.CloudProvider](fulfilled, "provider")
	if err != nil {
		return nil, err
	}
	region, err := fulfilled.String("region")
	if err != nil {
		return nil, err
	}
	return created(client.CreateNetwork(ctx, provider, name, region))
}

func (Network) Resolve(ctx *resource.Context, question string, filters resource.Filters) (model.Resource, error) {
	return resolveWith(networkResolver, ctx, question, filters)
}
