package api

import (
	"context"
	"fmt"

	"github.com/imamik/ymir/internal/model"
)

// GetDatabaseServers returns the database servers of a team.
func (c *HTTPClient) GetDatabaseServers(ctx context.Context, team *model.Team) (model.Collection[*model.DatabaseServer], error) {
	var resp []databaseServerSchema
	if err := c.get(ctx, fmt.Sprintf("/teams/%d/database-servers", team.ID()), nil, &resp); err != nil {
		return model.Collection[*model.DatabaseServer]{}, err
	}
	return collect(resp, (*databaseServerSchema).toModel), nil
}

// GetDatabaseServerTypes returns the database server types available on a provider.
func (c *HTTPClient) GetDatabaseServerTypes(ctx context.Context, provider *model.CloudProvider) (map[string]InstanceType, error) {
	var resp map[string]InstanceType
	if err := c.get(ctx, fmt.Sprintf("/providers/%d/database-servers/types", provider.ID()), nil, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// CreateDatabaseServer creates a database server on a network.
func (c *HTTPClient) CreateDatabaseServer(ctx context.Context, network *model.Network, name, serverType string, storage int, public bool) (*model.DatabaseServer, error) {
	body := map[string]any{
		"name":    name,
		"public":  public,
		"type":    serverType,
		"storage": storage,
	}

	var resp databaseServerSchema
	if err := c.post(ctx, fmt.Sprintf("/networks/%d/database-servers", network.ID()), body, &resp); err != nil {
		return nil, err
	}
	server := resp.toModel()
	if server.Network == nil {
		server.Network = network
	}
	return server, nil
}

// GetDatabases returns the databases on a server.
func (c *HTTPClient) GetDatabases(ctx context.Context, server *model.DatabaseServer) (model.Collection[*model.Database], error) {
	var resp []string
	if err := c.get(ctx, fmt.Sprintf("/database-servers/%d/databases", server.ID()), nil, &resp); err != nil {
		return model.Collection[*model.Database]{}, err
	}
	databases := make([]*model.Database, 0, len(resp))
	for _, name := range resp {
		databases = append(databases, &model.Database{Label: name, Server: server})
	}
	return model.NewCollection(databases...), nil
}

// CreateDatabase creates a database on a server.
func (c *HTTPClient) CreateDatabase(ctx context.Context, server *model.DatabaseServer, name string) (*model.Database, error) {
	if err := c.post(ctx, fmt.Sprintf("/database-servers/%d/databases", server.ID()), map[string]string{"name": name}, nil); err != nil {
		return nil, err
	}
	return &model.Database{Label: name, Server: server}, nil
}

// GetDatabaseUsers returns the users on a server.
func (c *HTTPClient) GetDatabaseUsers(ctx context.Context, server *model.DatabaseServer) (model.Collection[*model.DatabaseUser], error) {
	var resp []databaseUserSchema
	if err := c.get(ctx, fmt.Sprintf("/database-servers/%d/users", server.ID()), nil, &resp); err != nil {
		return model.Collection[*model.DatabaseUser]{}, err
	}
	return collect(resp, func(s *databaseUserSchema) *model.DatabaseUser {
		return s.toModel(server)
	}), nil
}

// CreateDatabaseUser creates a user with access to the given databases.
// An empty databases list grants access to every database.
func (c *HTTPClient) CreateDatabaseUser(ctx context.Context, server *model.DatabaseServer, username string, databases []string) (*model.DatabaseUser, error) {
	body := map[string]any{
		"username":  username,
		"databases": databases,
	}

	var resp databaseUserSchema
	if err := c.post(ctx, fmt.Sprintf("/database-servers/%d/users", server.ID()), body, &resp); err != nil {
		return nil, err
	}
	return resp.toModel(server), nil
}

func (s *databaseUserSchema) toModel(server *model.DatabaseServer) *model.DatabaseUser {
	return &model.DatabaseUser{
		Identifier: s.ID,
		Username:   s.Username,
		Password:   s.Password,
		Databases:  s.Databases,
		Server:     server,
	}
}
