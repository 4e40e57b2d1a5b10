package api

import (
	"context"
	"fmt"

	"github.com/imamik/ymir/internal/model"
)

// GetEmailIdentities returns the email identities of a team.
func (c *HTTPClient) GetEmailIdentities(ctx context.Context, team *model.Team) (model.Collection[*model.EmailIdentity], error) {
	var resp []emailIdentitySchema
	if err := c.get(ctx, fmt.Sprintf("/teams/%d/email-identities", team.ID()), nil, &resp); err != nil {
		return model.Collection[*model.EmailIdentity]{}, err
	}
	return collect(resp, (*emailIdentitySchema).toModel), nil
}

// CreateEmailIdentity creates an email identity on a provider.
func (c *HTTPClient) CreateEmailIdentity(ctx context.Context, provider *model.CloudProvider, name, region string) (*model.EmailIdentity, error) {
	body := map[string]string{"name": name, "region": region}

	var resp emailIdentitySchema
	if err := c.post(ctx, fmt.Sprintf("/providers/%d/email-identities", provider.ID()), body, &resp); err != nil {
		return nil, err
	}
	identity := resp.toModel()
	if identity.Provider == nil {
		identity.Provider = provider
	}
	return identity, nil
}
