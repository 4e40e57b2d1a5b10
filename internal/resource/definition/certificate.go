package definition

import (
	"context"

	"github.com/imamik/ymir/internal/api"
	"github.com/imamik/ymir/internal/model"
	"github.com/imamik/ymir/internal/resource"
	"github.com/imamik/ymir/internal/resource/requirement"
)

// Certificate requests and resolves SSL certificates.
type Certificate struct{}

var certificateResolver = resource.Resolver[*model.Certificate]{
	Kind:     resource.KindCertificate,
	Argument: "certificate",
	Option:   "certificate",
	Fetch: teamScoped(func(ctx *resource.Context, team *model.Team) (model.Collection[*model.Certificate], error) {
		return ctx.Client().GetCertificates(ctx, team)
	}),
}

func (Certificate) Kind() resource.Kind { return resource.KindCertificate }

func (Certificate) Requirements() []resource.NamedRequirement {
	return []resource.NamedRequirement{
		{Name: "domains", Requirement: requirement.DomainNames{Question: "Which domains should the certificate cover? (comma separated)"}},
		{Name: "provider", Requirement: requirement.CloudProvider("Which cloud provider should the certificate be requested on?")},
		{Name: "region", Requirement: requirement.Region{Question: "Which region should the certificate be requested in?"}},
	}
}

func (Certificate) Provision(ctx context.Context, client api.Client, fulfilled resource.Fulfilled) (model.Resource, error) {
	domains, err := fulfilled.Strings("domains")
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
	return created(client.CreateCertificate(ctx, provider, domains, region))
}

func (Certificate) Resolve(ctx *resource.Context, question string, filters resource.Filters) (model.Resource, error) {
	return resolveWith(certificateResolver, ctx, question, filters)
}
