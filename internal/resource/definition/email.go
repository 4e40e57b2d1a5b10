package definition

import (
	"context"

	"github.com/imamik/ymir/internal/api"
	"github.com/imamik/ymir/internal/model"
	"github.com/imamik/ymir/internal/resource"
	"github.com/imamik/ymir/internal/resource/requirement"
)

// EmailIdentity creates and resolves email sending identities.
type EmailIdentity struct{}

var emailIdentityResolver = resource.Resolver[*model.EmailIdentity]{
	Kind:     resource.KindEmailIdentity,
	Argument: "identity",
	Option:   "identity",
	Fetch: teamScoped(func(ctx *resource.Context, team *model.Team) (model.Collection[*model.EmailIdentity], error) {
		return ctx.Client().GetEmailIdentities(ctx, team)
	}),
}

func (EmailIdentity) Kind() resource.Kind { return resource.KindEmailIdentity }

func (EmailIdentity) Requirements() []resource.NamedRequirement {
	return []resource.NamedRequirement{
		{Name: "name", Requirement: requirement.EmailIdentityName{Question: "What is the email address or domain name to verify?"}},
		{Name: "provider", Requirement: requirement.CloudProvider("Which cloud provider should the email identity be created on?")},
		{Name: "region", Requirement: requirement.Region{Question: "Which region should the email identity be created in?"}},
	}
}

func (EmailIdentity) Provision(ctx context.Context, client api.Client, fulfilled resource.Fulfilled) (model.Resource, error) {
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
	return created(client.CreateEmailIdentity(ctx, provider, name, region))
}

func (EmailIdentity) Resolve(ctx *resource.Context, question string, filters resource.Filters) (model.Resource, error) {
	return resolveWith(emailIdentityResolver, ctx, question, filters)
}
