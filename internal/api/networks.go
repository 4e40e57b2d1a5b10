package api

import (
	"context"
	"fmt"

	"github.com/imamik/ymir/internal/model"
)

// GetNetworks returns the networks of a team.
func (c *HTTPClient) GetNetworks(ctx context.Context, team *model.Team) (model.Collection[*model.Network], error) {
	var resp []networkSchema
	if err := c.get(ctx, fmt.Sprintf("/teams/%d/networks", team.ID()), nil, &resp); err != nil {
		return model.Collection[*model.Network]{}, err
	}
	return collect(resp, (*networkSchema).toModel), nil
}

// GetNetwork returns a single network.
func (c *HTTPClient) GetNetwork(ctx context.Context, networkID int) (*model.Network, error) {
	var resp networkSchema
	if err := c.get(ctx, fmt.Sprintf("/networks/%d", networkID), nil, &resp); err != nil {
		return nil, err
	}
	return resp.toModel(), nil
}

// CreateNetwork creates a network on a provider.
func (c *HTTPClient) CreateNetwork(ctx context.Context, provider *model.CloudProvider, name, region string) (*model.Network, error) {
	body := map[string]string{"name": name, "region": region}

	var resp networkSchema
	if err := c.post(ctx, fmt.Sprintf("/providers/%d/networks", provider.ID()), body, &resp); err != nil {
		return nil, err
	}
	network := resp.toModel()
	if network.Provider == nil {
		network.Provider = provider
	}
	return network, nil
}

// AddNatGateway adds a NAT gateway to a network.
func (c *HTTPClient) AddNatGateway(ctx context.Context, network *model.Network) error {
	return c.post(ctx, fmt.Sprintf("/networks/%d/nat", network.ID()), nil, nil)
}
