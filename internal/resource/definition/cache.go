package definition

import (
	"context"

	"github.com/imamik/ymir/internal/api"
	"github.com/imamik/ymir/internal/model"
	"github.com/imamik/ymir/internal/resource"
	"github.com/imamik/ymir/internal/resource/requirement"
)

// CacheCluster creates and resolves managed cache clusters.
type CacheCluster struct{}

var cacheClusterResolver = resource.Resolver[*model.CacheCluster]{
	Kind:     resource.KindCacheCluster,
	Argument: "cache",
	Option:   "cache",
	Fetch: teamScoped(func(ctx *resource.Context, team *model.Team) (model.Collection[*model.CacheCluster], error) {
		return ctx.Client().GetCacheClusters(ctx, team)
	}),
}

func (CacheCluster) Kind() resource.Kind { return resource.KindCacheCluster }

func (CacheCluster) Requirements() []resource.NamedRequirement {
	return []resource.NamedRequirement{
		{Name: "name", Requirement: requirement.NameSlug("What is the name of the cache cluster?", nil)},
		{Name: "engine", Requirement: requirement.CacheEngine{Question: "Which cache engine should the cache cluster use?"}},
		{Name: "network", Requirement: requirement.Network("Which network should the cache cluster be created on?")},
		{Name: "nat_gateway", Requirement: requirement.NatGateway{Question: "A cache cluster requires a NAT gateway on its network, which costs roughly $32/month. Do you want to continue?"}},
		{Name: "type", Requirement: requirement.CacheClusterType{Question: "Which type should the cache cluster be?"}},
	}
}

func (CacheCluster) Provision(ctx context.Context, client api.Client, fulfilled resource.Fulfilled) (model.Resource, error) {
	name, err := fulfilled.String("name")
	if err != nil {
		return nil, err
	}
	engine, err := fulfilled.String("engine")
	if err != nil {
		return nil, err
	}
	network, err := resource.Value[*model.Network](fulfilled, "network")
	if err != nil {
		return nil, err
	}
	cacheType, err := fulfilled.String("type")
	if err != nil {
		return nil, err
	}
	return created(client.CreateCacheCluster(ctx, network, name, engine, cacheType))
}

func (CacheCluster) Resolve(ctx *resource.Context, question string, filters resource.Filters) (model.Resource, error) {
	return resolveWith(cacheClusterResolver, ctx, question, filters)
}
