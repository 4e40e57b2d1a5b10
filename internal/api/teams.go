package api

import (
	"context"
	"fmt"

	"github.com/imamik/ymir/internal/model"
)

// GetAccessToken exchanges user credentials for an API token.
func (c *HTTPClient) GetAccessToken(ctx context.Context, email, password, authenticationCode string) (string, error) {
	body := map[string]string{
		"host":     "ymir-cli",
		"email":    email,
		"password": password,
	}
	if authenticationCode != "" {
		body["authentication_code"] = authenticationCode
	}

	var resp struct {
		Token string `json:"access_token"`
	}
	if err := c.post(ctx, "/token", body, &resp); err != nil {
		return "", err
	}
	if resp.Token == "" {
		return "", fmt.Errorf("the API did not return an access token")
	}
	return resp.Token, nil
}

// GetAuthenticatedUser returns the user owning the API token.
func (c *HTTPClient) GetAuthenticatedUser(ctx context.Context) (*model.User, error) {
	var resp userSchema
	if err := c.get(ctx, "/user", nil, &resp); err != nil {
		return nil, err
	}
	return resp.toModel(), nil
}

// GetTeams returns the teams the user belongs to.
func (c *HTTPClient) GetTeams(ctx context.Context) (model.Collection[*model.Team], error) {
	var resp []teamSchema
	if err := c.get(ctx, "/teams", nil, &resp); err != nil {
		return model.Collection[*model.Team]{}, err
	}
	return collect(resp, (*teamSchema).toModel), nil
}

// GetTeam returns a single team.
func (c *HTTPClient) GetTeam(ctx context.Context, teamID int) (*model.Team, error) {
	var resp teamSchema
	if err := c.get(ctx, fmt.Sprintf("/teams/%d", teamID), nil, &resp); err != nil {
		return nil, err
	}
	return resp.toModel(), nil
}

// CreateTeam creates a team owned by the authenticated user.
func (c *HTTPClient) CreateTeam(ctx context.Context, name string) (*model.Team, error) {
	var resp teamSchema
	if err := c.post(ctx, "/teams", map[string]string{"name": name}, &resp); err != nil {
		return nil, err
	}
	return resp.toModel(), nil
}
