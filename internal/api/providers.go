package api

import (
	"context"
	"fmt"

	"github.com/imamik/ymir/internal/model"
)

// GetProviders returns the cloud providers connected to a team.
func (c *HTTPClient) GetProviders(ctx context.Context, team *model.Team) (model.Collection[*model.CloudProvider], error) {
	var resp []providerSchema
	if err := c.get(ctx, fmt.Sprintf("/teams/%d/providers", team.ID()), nil, &resp); err != nil {
		return model.Collection[*model.CloudProvider]{}, err
	}
	providers := collect(resp, (*providerSchema).toModel)
	for _, p := range providers.All() {
		if p.Team == nil {
			p.Team = team
		}
	}
	return providers, nil
}

// CreateProvider connects an AWS account to a team.
func (c *HTTPClient) CreateProvider(ctx context.Context, team *model.Team, name string, credentials AwsCredentials) (*model.CloudProvider, error) {
	body := map[string]any{
		"provider":    "aws",
		"name":        name,
		"credentials": credentials,
	}

	var resp providerSchema
	if err := c.post(ctx, fmt.Sprintf("/teams/%d/providers", team.ID()), body, &resp); err != nil {
		return nil, err
	}
	provider := resp.toModel()
	provider.Team = team
	return provider, nil
}

// GetRegions returns the regions supported by a provider.
func (c *HTTPClient) GetRegions(ctx context.Context, provider *model.CloudProvider) (map[string]string, error) {
	var resp map[string]string
	if err := c.get(ctx, fmt.Sprintf("/providers/%d/regions", provider.ID()), nil, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}
