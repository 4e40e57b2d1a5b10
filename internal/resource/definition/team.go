package definition

import (
	"context"

	"github.com/imamik/ymir/internal/api"
	"github.com/imamik/ymir/internal/model"
	"github.com/imamik/ymir/internal/resource"
	"github.com/imamik/ymir/internal/resource/requirement"
)

// Team creates and resolves teams. Teams are not scoped to the active team.
type Team struct{}

var teamResolver = resource.Resolver[*model.Team]{
	Kind:     resource.KindTeam,
	Argument: "team",
	Option:   "team",
	Fetch: func(ctx *resource.Context) (model.Collection[*model.Team], error) {
		return ctx.Client().GetTeams(ctx)
	},
}

func (Team) Kind() resource.Kind { return resource.KindTeam }

func (Team) Requirements() []resource.NamedRequirement {
	return []resource.NamedRequirement{
		{Name: "name", Requirement: requirement.Name("What is the name of the team?")},
	}
}

func (Team) Provision(ctx context.Context, client api.Client, fulfilled resource.Fulfilled) (model.Resource, error) {
	name, err := fulfilled.String("name")
	if err != nil {
		return nil, err
	}
	return created(client.CreateTeam(ctx, name))
}

func (Team) Resolve(ctx *resource.Context, question string, filters resource.Filters) (model.Resource, error) {
	return resolveWith(teamResolver, ctx, question, filters)
}
