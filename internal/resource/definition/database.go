package definition

import (
	"context"

	"github.com/imamik/ymir/internal/api"
	"github.com/imamik/ymir/internal/model"
	"github.com/imamik/ymir/internal/resource"
	"github.com/imamik/ymir/internal/resource/requirement"
)

// DatabaseServer creates and resolves managed database servers.
type DatabaseServer struct{}

var databaseServerResolver = resource.Resolver[*model.DatabaseServer]{
	Kind:     resource.KindDatabaseServer,
	Argument: "server",
	Option:   "server",
	Fetch: teamScoped(func(ctx *resource.Context, team *model.Team) (model.Collection[*model.DatabaseServer], error) {
		return ctx.Client().GetDatabaseServers(ctx, team)
	}),
}

func (DatabaseServer) Kind() resource.Kind { return resource.KindDatabaseServer }

func (DatabaseServer) Requirements() []resource.NamedRequirement {
	return []resource.NamedRequirement{
		{Name: "name", Requirement: requirement.NameSlug("What is the name of the database server?", nil)},
		{Name: "network", Requirement: requirement.Network("Which network should the database server be created on?")},
		{Name: "type", Requirement: requirement.DatabaseServerType{Question: "Which type should the database server be?"}},
		{Name: "storage", Requirement: requirement.DatabaseServerStorage{Question: "How much storage (in GB) should the database server have?"}},
		{Name: "private", Requirement: requirement.PrivateDatabaseServer{Question: "Should the database server be publicly accessible?"}},
	}
}

func (DatabaseServer) Provision(ctx context.Context, client api.Client, fulfilled resource.Fulfilled) (model.Resource, error) {
	name, err := fulfilled.String("name")
	if err != nil {
		return nil, err
	}
	network, err := resource.Value[*model.Network](fulfilled, "network")
	if err != nil {
		return nil, err
	}
	serverType, err := fulfilled.String("type")
	if err != nil {
		return nil, err
	}
	storage, err := fulfilled.Int("storage")
	if err != nil {
		return nil, err
	}
	private, err := fulfilled.Bool("private")
	if err != nil {
		return nil, err
	}
	return created(client.CreateDatabaseServer(ctx, network, name, serverType, storage, !private))
}

func (DatabaseServer) Resolve(ctx *resource.Context, question string, filters resource.Filters) (model.Resource, error) {
	return resolveWith(databaseServerResolver, ctx, question, filters)
}

// parentServer returns the database server a database or user belongs to:
// the context parent when there is one, otherwise a resolved server.
func parentServer(ctx *resource.Context) (*model.DatabaseServer, error) {
	if server, ok := ctx.ParentResource().(*model.DatabaseServer); ok {
		return server, nil
	}
	return resource.ResolveAs[*model.DatabaseServer](ctx, resource.KindDatabaseServer, "On which database server?", nil)
}

// Database creates and resolves databases. Databases are scoped to their
// server and have no ID of their own.
type Database struct{}

var databaseResolver = resource.Resolver[*model.Database]{
	Kind:     resource.KindDatabase,
	Argument: "database",
	Option:   "database",
	Fetch: func(ctx *resource.Context) (model.Collection[*model.Database], error) {
		server, err := parentServer(ctx)
		if err != nil {
			return model.Collection[*model.Database]{}, err
		}
		return ctx.Client().GetDatabases(ctx, server)
	},
}

func (Database) Kind() resource.Kind { return resource.KindDatabase }

func (Database) Requirements() []resource.NamedRequirement {
	return []resource.NamedRequirement{
		{Name: "database_server", Requirement: requirement.DatabaseServer("On which database server should the database be created?")},
		{Name: "name", Requirement: requirement.Name("What is the name of the database?")},
	}
}

func (Database) Provision(ctx context.Context, client api.Client, fulfilled resource.Fulfilled) (model.Resource, error) {
	server, err := resource.Value[*model.DatabaseServer](fulfilled, "database_server")
	if err != nil {
		return nil, err
	}
	name, err := fulfilled.String("name")
	if err != nil {
		return nil, err
	}
	return created(client.CreateDatabase(ctx, server, name))
}

func (Database) Resolve(ctx *resource.Context, question string, filters resource.Filters) (model.Resource, error) {
	return resolveWith(databaseResolver, ctx, question, filters)
}

// DatabaseUser creates and resolves users of a database server.
type DatabaseUser struct{}

var databaseUserResolver = resource.Resolver[*model.DatabaseUser]{
	Kind:     resource.KindDatabaseUser,
	Argument: "username",
	Option:   "user",
	Fetch: func(ctx *resource.Context) (model.Collection[*model.DatabaseUser], error) {
		server, err := parentServer(ctx)
		if err != nil {
			return model.Collection[*model.DatabaseUser]{}, err
		}
		return ctx.Client().GetDatabaseUsers(ctx, server)
	},
}

func (DatabaseUser) Kind() resource.Kind { return resource.KindDatabaseUser }

func (DatabaseUser) Requirements() []resource.NamedRequirement {
	return []resource.NamedRequirement{
		{Name: "database_server", Requirement: requirement.DatabaseServer("On which database server should the user be created?")},
		{Name: "username", Requirement: requirement.StringArgument("username", "What is the username of the new database user?")},
		{Name: "databases", Requirement: requirement.DatabaseNames{Question: "Which databases should the user have access to? (none gives access to all)"}},
	}
}

func (DatabaseUser) Provision(ctx context.Context, client api.Client, fulfilled resource.Fulfilled) (model.Resource, error) {
	server, err := resource.Value[*model.DatabaseServer](fulfilled, "database_server")
	if err != nil {
		return nil, err
	}
	username, err := fulfilled.String("username")
	if err != nil {
		return nil, err
	}
	databases, err := fulfilled.Strings("databases")
	if err != nil {
		return nil, err
	}
	return created(client.CreateDatabaseUser(ctx, server, username, databases))
}

func (DatabaseUser) Resolve(ctx *resource.Context, question string, filters resource.Filters) (model.Resource, error) {
	return resolveWith(databaseUserResolver, ctx, question, filters)
}
