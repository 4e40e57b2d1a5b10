package api

import (
	"context"
	"fmt"

	"github.com/imamik/ymir/internal/model"
)

// GetCacheClusters returns the cache clusters of a team.
func (c *HTTPClient) GetCacheClusters(ctx context.Context, team *model.Team) (model.Collection[*model.CacheCluster], error) {
	var resp []cacheClusterSchema
	if err := c.get(ctx, fmt.Sprintf("/teams/%d/caches", team.ID()), nil, &resp); err != nil {
		return model.Collection[*model.CacheCluster]{}, err
	}
	return collect(resp, (*cacheClusterSchema).toModel), nil
}

// GetCacheTypes returns the cache cluster types available on a provider.
func (c *HTTPClient) GetCacheTypes(ctx context.Context, provider *model.CloudProvider, opts CacheTypeOptions) (map[string]InstanceType, error) {
	var resp map[string]InstanceType
	if err := c.get(ctx, fmt.Sprintf("/providers/%d/caches/types", provider.ID()), opts, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// CreateCacheCluster creates a cache cluster on a network.
func (c *HTTPClient) CreateCacheCluster(ctx context.Context, network *model.Network, name, engine, cacheType string) (*model.CacheCluster, error) {
	body := map[string]string{
		"name":   name,
		"engine": engine,
		"type":   cacheType,
	}

	var resp cacheClusterSchema
	if err := c.post(ctx, fmt.Sprintf("/networks/%d/caches", network.ID()), body, &resp); err != nil {
		return nil, err
	}
	cache := resp.toModel()
	if cache.Network == nil {
		cache.Network = network
	}
	return cache, nil
}
