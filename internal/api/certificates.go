package api

import (
	"context"
	"fmt"

	"github.com/imamik/ymir/internal/model"
)

// GetCertificates returns the SSL certificates of a team.
func (c *HTTPClient) GetCertificates(ctx context.Context, team *model.Team) (model.Collection[*model.Certificate], error) {
	var resp []certificateSchema
	if err := c.get(ctx, fmt.Sprintf("/teams/%d/certificates", team.ID()), nil, &resp); err != nil {
		return model.Collection[*model.Certificate]{}, err
	}
	return collect(resp, (*certificateSchema).toModel), nil
}

// CreateCertificate requests an SSL certificate for the given domains.
func (c *HTTPClient) CreateCertificate(ctx context.Context, provider *model.CloudProvider, domains []string, region string) (*model.Certificate, error) {
	body := map[string]any{
		"domains": domains,
		"region":  region,
	}

	var resp certificateSchema
	if err := c.post(ctx, fmt.Sprintf("/providers/%d/certificates", provider.ID()), body, &resp); err != nil {
		return nil, err
	}
	certificate := resp.toModel()
	if certificate.Provider == nil {
		certificate.Provider = provider
	}
	return certificate, nil
}
