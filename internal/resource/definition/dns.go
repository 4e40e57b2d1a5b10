package definition

import (
	"context"

	"github.com/imamik/ymir/internal/api"
	"github.com/imamik/ymir/internal/model"
	"github.com/imamik/ymir/internal/resource"
	"github.com/imamik/ymir/internal/resource/requirement"
)

// DnsZone creates and resolves hosted DNS zones.
type DnsZone struct{}

var dnsZoneResolver = resource.Resolver[*model.DnsZone]{
	Kind:     resource.KindDnsZone,
	Argument: "zone",
	Option:   "zone",
	Fetch: teamScoped(func(ctx *resource.Context, team *model.Team) (model.Collection[*model.DnsZone], error) {
		return ctx.Client().GetDnsZones(ctx, team)
	}),
}

func (DnsZone) Kind() resource.Kind { return resource.KindDnsZone }

func (DnsZone) Requirements() []resource.NamedRequirement {
	return []resource.NamedRequirement{
		{Name: "name", Requirement: requirement.DomainName("What is the domain name of the DNS zone?")},
		{Name: "provider", Requirement: requirement.CloudProvider("Which cloud provider should the DNS zone be created on?")},
	}
}

func (DnsZone) Provision(ctx context.Context, client api.Client, fulfilled resource.Fulfilled) (model.Resource, error) {
	name, err := fulfilled.String("name")
	if err != nil {
		return nil, err
	}
	provider, err := resource.Value[*model.CloudProvider](fulfilled, "provider")
	if err != nil {
		return nil, err
	}
	return created(client.CreateDnsZone(ctx, provider, name))
}

func (DnsZone) Resolve(ctx *resource.Context, question string, filters resource.Filters) (model.Resource, error) {
	return resolveWith(dnsZoneResolver, ctx, question, filters)
}
