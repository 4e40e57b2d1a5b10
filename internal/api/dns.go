package api

import (
	"context"
	"fmt"

	"github.com/imamik/ymir/internal/model"
)

// GetDnsZones returns the DNS zones of a team.
func (c *HTTPClient) GetDnsZones(ctx context.Context, team *model.Team) (model.Collection[*model.DnsZone], error) {
	var resp []dnsZoneSchema
	if err := c.get(ctx, fmt.Sprintf("/teams/%d/zones", team.ID()), nil, &resp); err != nil {
		return model.Collection[*model.DnsZone]{}, err
	}
	return collect(resp, (*dnsZoneSchema).toModel), nil
}

// CreateDnsZone creates a DNS zone on a provider.
func (c *HTTPClient) CreateDnsZone(ctx context.Context, provider *model.CloudProvider, name string) (*model.DnsZone, error) {
	var resp dnsZoneSchema
	if err := c.post(ctx, fmt.Sprintf("/providers/%d/zones", provider.ID()), map[string]string{"domain_name": name}, &resp); err != nil {
		return nil, err
	}
	zone := resp.toModel()
	if zone.Provider == nil {
		zone.Provider = provider
	}
	return zone, nil
}
