package definition

import (
	"context"

	"github.com/imamik/ymir/internal/api"
	"github.com/imamik/ymir/internal/model"
	"github.com/imamik/ymir/internal/resource"
	"github.com/imamik/ymir/internal/resource/requirement"
)

// CloudProvider connects cloud accounts to the active team. Resolution
// falls back to the provider of the active project.
type CloudProvider struct {
	Credentials requirement.CredentialsSource
}

var providerResolver = resource.Resolver[*model.CloudProvider]{
	Kind:     resource.KindCloudProvider,
	Argument: "provider",
	Option:   "provider",
	Fetch: teamScoped(func(ctx *resource.Context, team *model.Team) (model.Collection[*model.CloudProvider], error) {
		return ctx.Client().GetProviders(ctx, team)
	}),
	Fallback: func(ctx *resource.Context) string {
		if project := ctx.Project(); project != nil && project.Provider != nil {
			return idString(project.Provider)
		}
		return ""
	},
}

func (CloudProvider) Kind() resource.Kind { return resource.KindCloudProvider }

// Requirements fulfills "team" from the context so the creation call knows
// which team the provider belongs to.
func (p CloudProvider) Requirements() []resource.NamedRequirement {
	return []resource.NamedRequirement{
		{Name: "team", Requirement: requirement.Team{Question: "Which team should the cloud provider be connected to?"}},
		{Name: "name", Requirement: requirement.Text{
			Argument: "name",
			Question: "What is the name of the cloud provider?",
			Thing:    "name",
			Default:  func(*resource.Context, resource.Fulfilled) string { return "AWS" },
		}},
		{Name: "credentials", Requirement: requirement.AwsCredentials{Source: p.Credentials}},
	}
}

func (CloudProvider) Provision(ctx context.Context, client api.Client, fulfilled resource.Fulfilled) (model.Resource, error) {
	team, err := resource.Value[*model.Team](fulfilled, "team")
	if err != nil {
		return nil, err
	}
	name, err := fulfilled.String("name")
	if err != nil {
		return nil, err
	}
	creds, err := resource.Value[api.AwsCredentials](fulfilled, "credentials")
	if err != nil {
		return nil, err
	}
	return created(client.CreateProvider(ctx, team, name, creds))
}

func (CloudProvider) Resolve(ctx *resource.Context, question string, filters resource.Filters) (model.Resource, error) {
	return resolveWith(providerResolver, ctx, question, filters)
}
