package definition_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imamik/ymir/internal/api"
	"github.com/imamik/ymir/internal/api/mock"
	"github.com/imamik/ymir/internal/console"
	"github.com/imamik/ymir/internal/input"
	"github.com/imamik/ymir/internal/model"
	"github.com/imamik/ymir/internal/resource"
	"github.com/imamik/ymir/internal/resource/definition"
)

// argumentOf maps each kind to the argument holding an explicit ID or name.
var argumentOf = map[resource.Kind]string{
	resource.KindCacheCluster:   "cache",
	resource.KindCertificate:    "certificate",
	resource.KindCloudProvider:  "provider",
	resource.KindDatabase:       "database",
	resource.KindDatabaseServer: "server",
	resource.KindDatabaseUser:   "username",
	resource.KindDnsZone:        "zone",
	resource.KindEmailIdentity:  "identity",
	resource.KindEnvironment:    "environment",
	resource.KindNetwork:        "network",
	resource.KindProject:        "project",
	resource.KindTeam:           "team",
}

// scoped adds the parent server and project that scoped kinds resolve in.
func scoped(ctx *resource.Context) *resource.Context {
	return ctx.
		WithParentResource(&model.DatabaseServer{Identifier: 9, Label: "db"}).
		WithProject(&model.Project{Identifier: 1, Label: "alpha"})
}

func explicit(kind resource.Kind, value string) input.Values {
	return input.Values{Arguments: map[string][]string{argumentOf[kind]: {value}}}
}

func TestNewLocator_RegistersEveryKind(t *testing.T) {
	locator := definition.NewLocator(staticCredentials{})
	assert.Equal(t, len(resource.Kinds()), locator.Len())

	for _, kind := range resource.Kinds() {
		resolvable, err := locator.Resolvable(kind)
		require.NoError(t, err, kind)
		assert.Equal(t, kind, resolvable.Kind())

		provisionable, err := locator.Provisionable(kind)
		require.NoError(t, err, kind)
		assert.NotEmpty(t, provisionable.Requirements(), kind)
	}
}

func TestResolve_ExplicitArgumentNeverPrompts(t *testing.T) {
	for _, kind := range resource.Kinds() {
		kind := kind
		t.Run(string(kind), func(t *testing.T) {
			scripted := console.NewScripted()
			ctx := scoped(newContext(fixtureClient(false), explicit(kind, "beta"), scripted))

			found, err := ctx.Resolve(kind, "Which one?", nil)
			require.NoError(t, err)
			assert.Equal(t, "beta", found.Name())
			assert.Empty(t, scripted.Asked)
		})
	}
}

func TestResolve_NameCollision(t *testing.T) {
	for _, kind := range resource.Kinds() {
		kind := kind
		t.Run(string(kind), func(t *testing.T) {
			ctx := scoped(newContext(fixtureClient(true), explicit(kind, "alpha"), console.NewScripted()))

			_, err := ctx.Resolve(kind, "Which one?", nil)
			var collision *resource.ResolutionError
			require.True(t, errors.As(err, &collision), "got %v", err)
			assert.Contains(t, err.Error(), `"alpha"`)
		})
	}
}

func TestResolve_EmptyNamesRemediationCommand(t *testing.T) {
	for _, kind := range resource.Kinds() {
		kind := kind
		t.Run(string(kind), func(t *testing.T) {
			ctx := scoped(newContext(&mock.Client{}, nil, console.NewScripted()))

			_, err := ctx.Resolve(kind, "Which one?", nil)
			require.True(t, resource.IsNoResourcesFound(err), "got %v", err)
			assert.Contains(t, err.Error(), kind.Command())
		})
	}
}

func TestResolve_ChoiceOverCandidates(t *testing.T) {
	scripted := console.NewScripted("2")
	ctx := newContext(fixtureClient(false), nil, scripted)

	found, err := ctx.Resolve(resource.KindNetwork, "Which network?", nil)
	require.NoError(t, err)
	assert.Equal(t, "beta", found.Name())
	assert.Equal(t, [][]string{{"1", "2"}}, scripted.Offered)
}

func TestResolve_CloudProviderFallsBackToProject(t *testing.T) {
	scripted := console.NewScripted()
	project := &model.Project{Identifier: 5, Label: "blog", Provider: &model.CloudProvider{Identifier: 2}}
	ctx := newContext(fixtureClient(false), nil, scripted).WithProject(project)

	found, err := ctx.Resolve(resource.KindCloudProvider, "Which provider?", nil)
	require.NoError(t, err)
	assert.Equal(t, "beta", found.Name())
	assert.Empty(t, scripted.Asked)
}

func TestResolve_ProjectFallsBackToContext(t *testing.T) {
	scripted := console.NewScripted()
	ctx := newContext(fixtureClient(false), nil, scripted).WithProject(&model.Project{Identifier: 2})

	found, err := ctx.Resolve(resource.KindProject, "Which project?", nil)
	require.NoError(t, err)
	assert.Equal(t, "beta", found.Name())
	assert.Empty(t, scripted.Asked)
}

func TestResolve_EnvironmentNeedsProject(t *testing.T) {
	ctx := newContext(fixtureClient(false), nil, console.NewScripted())

	_, err := ctx.Resolve(resource.KindEnvironment, "Which environment?", nil)
	var state *resource.StateError
	require.True(t, errors.As(err, &state))
	assert.Contains(t, err.Error(), "project init")
}

func TestResolve_DatabaseResolvesServerWithoutParent(t *testing.T) {
	client := fixtureClient(false)
	var scopedTo *model.DatabaseServer
	client.GetDatabasesFunc = func(_ context.Context, server *model.DatabaseServer) (model.Collection[*model.Database], error) {
		scopedTo = server
		return model.NewCollection(&model.Database{Label: "wordpress", Server: server}), nil
	}
	in := input.Values{
		Arguments: map[string][]string{"database": {"wordpress"}},
		Options:   map[string]any{"server": "alpha"},
	}

	found, err := newContext(client, in, console.NewScripted()).Resolve(resource.KindDatabase, "Which database?", nil)
	require.NoError(t, err)
	assert.Equal(t, "wordpress", found.Name())
	require.NotNil(t, scopedTo)
	assert.Equal(t, 1, scopedTo.ID())
}

func TestProvision_Network(t *testing.T) {
	client := fixtureClient(false)
	client.GetRegionsFunc = func(context.Context, *model.CloudProvider) (map[string]string, error) {
		return map[string]string{"us-east-1": "N. Virginia"}, nil
	}
	client.CreateNetworkFunc = func(_ context.Context, p *model.CloudProvider, name, region string) (*model.Network, error) {
		return &model.Network{Identifier: 10, Label: name, Region: region, Provider: p}, nil
	}
	in := input.Values{
		Arguments: map[string][]string{"name": {"main"}},
		Options:   map[string]any{"provider": "alpha", "region": "us-east-1"},
	}
	scripted := console.NewScripted()

	network, err := resource.ProvisionAs[*model.Network](newContext(client, in, scripted), resource.KindNetwork, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "main", network.Name())
	assert.Equal(t, "us-east-1", network.Region)
	assert.Equal(t, 1, network.Provider.ID())
	assert.Equal(t, []string{"CreateNetwork"}, client.Mutations)
	assert.Empty(t, scripted.Asked)
}

func TestProvision_DatabaseServerCreatesMissingNetwork(t *testing.T) {
	client := &mock.Client{
		GetProvidersFunc: func(context.Context, *model.Team) (model.Collection[*model.CloudProvider], error) {
			return model.NewCollection(provider), nil
		},
		GetRegionsFunc: func(context.Context, *model.CloudProvider) (map[string]string, error) {
			return map[string]string{"us-east-1": "N. Virginia"}, nil
		},
		CreateNetworkFunc: func(_ context.Context, p *model.CloudProvider, name, region string) (*model.Network, error) {
			return &model.Network{Identifier: 10, Label: name, Region: region, Provider: p}, nil
		},
		GetDatabaseServerTypesFunc: func(context.Context, *model.CloudProvider) (map[string]api.InstanceType, error) {
			return map[string]api.InstanceType{"db.t3.micro": {CPU: 2, Memory: 1024}}, nil
		},
		CreateDatabaseServerFunc: func(_ context.Context, network *model.Network, name, serverType string, storage int, public bool) (*model.DatabaseServer, error) {
			return &model.DatabaseServer{Identifier: 20, Label: name, Type: serverType, Storage: storage, Public: public, Network: network}, nil
		},
	}
	in := input.Values{
		Arguments: map[string][]string{"name": {"db"}},
		Options:   map[string]any{"type": "db.t3.micro", "storage": 100, "public": true},
	}
	// The nested network asks for its own name, provider and region.
	scripted := console.NewScripted("main", "3", "us-east-1")

	server, err := resource.ProvisionAs[*model.DatabaseServer](newContext(client, in, scripted), resource.KindDatabaseServer, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"CreateNetwork", "CreateDatabaseServer"}, client.Mutations)
	assert.Equal(t, "db", server.Name())
	assert.Equal(t, "main", server.Network.Name())
	assert.Equal(t, 100, server.Storage)
	assert.True(t, server.Public)
	assert.Equal(t, 0, scripted.Remaining())
	assert.Contains(t, scripted.Output.String(), "No network found")
}

func TestProvision_DatabaseUsesParentServer(t *testing.T) {
	parent := &model.DatabaseServer{Identifier: 4, Label: "db"}
	client := &mock.Client{
		CreateDatabaseFunc: func(_ context.Context, server *model.DatabaseServer, name string) (*model.Database, error) {
			return &model.Database{Label: name, Server: server}, nil
		},
	}
	scripted := console.NewScripted("wordpress")

	database, err := resource.ProvisionAs[*model.Database](newContext(client, nil, scripted), resource.KindDatabase, nil, parent)
	require.NoError(t, err)
	assert.Same(t, parent, database.Server)
	assert.Equal(t, []string{"What is the name of the database?"}, scripted.Asked)
}

func TestProvision_DatabaseUser(t *testing.T) {
	parent := &model.DatabaseServer{Identifier: 4, Label: "db"}
	var granted []string
	client := &mock.Client{
		CreateDatabaseUserFunc: func(_ context.Context, server *model.DatabaseServer, username string, databases []string) (*model.DatabaseUser, error) {
			granted = databases
			return &model.DatabaseUser{Identifier: 8, Username: username, Databases: databases, Server: server}, nil
		},
	}
	in := input.Values{
		Arguments: map[string][]string{"username": {"jane"}},
		Options:   map[string]any{"databases": []string{"wordpress", "shop"}},
	}

	user, err := resource.ProvisionAs[*model.DatabaseUser](newContext(client, in, console.NewScripted()), resource.KindDatabaseUser, nil, parent)
	require.NoError(t, err)
	assert.Equal(t, "jane", user.Name())
	assert.Equal(t, []string{"wordpress", "shop"}, granted)
}

func TestProvision_CloudProviderWithProfile(t *testing.T) {
	var gotCreds api.AwsCredentials
	client := &mock.Client{
		CreateProviderFunc: func(_ context.Context, owner *model.Team, name string, creds api.AwsCredentials) (*model.CloudProvider, error) {
			gotCreds = creds
			return &model.CloudProvider{Identifier: 7, Label: name, Team: owner}, nil
		},
	}
	in := input.Values{
		Arguments: map[string][]string{"name": {"production"}},
		Options:   map[string]any{"profile": "ymir"},
	}

	created, err := resource.ProvisionAs[*model.CloudProvider](newContext(client, in, console.NewScripted()), resource.KindCloudProvider, nil, nil)
	require.NoError(t, err)
	assert.Same(t, team, created.Team)
	assert.Equal(t, api.AwsCredentials{Key: "AKIA", Secret: "secret"}, gotCreds)
}

func TestProvision_ProjectDefaultsEnvironments(t *testing.T) {
	var gotEnvironments []string
	client := &mock.Client{
		GetProvidersFunc: func(context.Context, *model.Team) (model.Collection[*model.CloudProvider], error) {
			return model.NewCollection(provider), nil
		},
		GetRegionsFunc: func(context.Context, *model.CloudProvider) (map[string]string, error) {
			return map[string]string{"us-east-1": "N. Virginia"}, nil
		},
		CreateProjectFunc: func(_ context.Context, p *model.CloudProvider, name, region string, environments []string) (*model.Project, error) {
			gotEnvironments = environments
			return &model.Project{Identifier: 30, Label: name, Region: region, Provider: p}, nil
		},
	}
	in := input.Values{
		Arguments: map[string][]string{"name": {"blog"}},
		Options:   map[string]any{"provider": "aws", "region": "us-east-1"},
	}

	project, err := resource.ProvisionAs[*model.Project](newContext(client, in, console.NewScripted()), resource.KindProject, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "blog", project.Name())
	assert.Equal(t, []string{"staging", "production"}, gotEnvironments)
}

func TestProvision_EnvironmentInActiveProject(t *testing.T) {
	project := &model.Project{Identifier: 30, Label: "blog"}
	client := &mock.Client{
		CreateEnvironmentFunc: func(_ context.Context, p *model.Project, name string) (*model.Environment, error) {
			return &model.Environment{Identifier: 40, Label: name, Project: p}, nil
		},
	}
	in := input.Values{Arguments: map[string][]string{"name": {"preview"}}}

	env, err := resource.ProvisionAs[*model.Environment](newContext(client, in, console.NewScripted()).WithProject(project), resource.KindEnvironment, nil, nil)
	require.NoError(t, err)
	assert.Same(t, project, env.Project)
}

func TestProvision_InvalidDomainNeverCreates(t *testing.T) {
	client := fixtureClient(false)
	in := input.Values{Arguments: map[string][]string{"name": {"not a zone"}}}

	_, err := newContext(client, in, console.NewScripted()).Provision(resource.KindDnsZone, nil, nil)
	var validation *resource.ValidationError
	require.True(t, errors.As(err, &validation))
	assert.Empty(t, client.Mutations)
}

func TestProvision_CreationErrorIsReturnedUnmodified(t *testing.T) {
	apiErr := &api.Error{StatusCode: 422, Message: "The name has already been taken."}
	client := &mock.Client{
		CreateTeamFunc: func(context.Context, string) (*model.Team, error) { return nil, apiErr },
	}
	in := input.Values{Arguments: map[string][]string{"name": {"acme"}}}

	created, err := newContext(client, in, console.NewScripted()).Provision(resource.KindTeam, nil, nil)
	assert.Nil(t, created)
	assert.Same(t, apiErr, err)
}
