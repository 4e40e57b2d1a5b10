package definition_test

import (
	"context"

	"github.com/imamik/ymir/internal/api"
	"github.com/imamik/ymir/internal/api/mock"
	"github.com/imamik/ymir/internal/console"
	"github.com/imamik/ymir/internal/input"
	"github.com/imamik/ymir/internal/model"
	"github.com/imamik/ymir/internal/resource"
	"github.com/imamik/ymir/internal/resource/definition"
)

var (
	team     = &model.Team{Identifier: 1, Label: "acme"}
	provider = &model.CloudProvider{Identifier: 3, Label: "aws", Team: team}
)

// staticCredentials accepts every profile and key.
type staticCredentials struct{}

func (staticCredentials) LoadProfile(context.Context, string) (api.AwsCredentials, error) {
	return api.AwsCredentials{Key: "AKIA", Secret: "secret"}, nil
}

func (staticCredentials) Verify(context.Context, api.AwsCredentials) error { return nil }

func newContext(client *mock.Client, in input.Input, c console.Console) *resource.Context {
	return resource.NewContext(context.Background(), resource.ContextConfig{
		Team:    team,
		Input:   in,
		Console: c,
		Client:  client,
		Locator: definition.NewLocator(staticCredentials{}),
	})
}

// fixtureClient returns a client whose every query yields resources named
// "alpha" (ID 1) and "beta" (ID 2). With collide, a second "alpha" (ID 3)
// is added.
func fixtureClient(collide bool) *mock.Client {
	names := []string{"alpha", "beta"}
	if collide {
		names = append(names, "alpha")
	}
	server := &model.DatabaseServer{Identifier: 9, Label: "db"}

	return &mock.Client{
		GetTeamsFunc: func(context.Context) (model.Collection[*model.Team], error) {
			return fixtures(names, func(id int, name string) *model.Team { return &model.Team{Identifier: id, Label: name} }), nil
		},
		GetProvidersFunc: func(context.Context, *model.Team) (model.Collection[*model.CloudProvider], error) {
			return fixtures(names, func(id int, name string) *model.CloudProvider { return &model.CloudProvider{Identifier: id, Label: name} }), nil
		},
		GetNetworksFunc: func(context.Context, *model.Team) (model.Collection[*model.Network], error) {
			return fixtures(names, func(id int, name string) *model.Network { return &model.Network{Identifier: id, Label: name} }), nil
		},
		GetDatabaseServersFunc: func(context.Context, *model.Team) (model.Collection[*model.DatabaseServer], error) {
			return fixtures(names, func(id int, name string) *model.DatabaseServer { return &model.DatabaseServer{Identifier: id, Label: name} }), nil
		},
		GetDatabasesFunc: func(context.Context, *model.DatabaseServer) (model.Collection[*model.Database], error) {
			return fixtures(names, func(_ int, name string) *model.Database { return &model.Database{Label: name, Server: server} }), nil
		},
		GetDatabaseUsersFunc: func(context.Context, *model.DatabaseServer) (model.Collection[*model.DatabaseUser], error) {
			return fixtures(names, func(id int, name string) *model.DatabaseUser { return &model.DatabaseUser{Identifier: id, Username: name} }), nil
		},
		GetCacheClustersFunc: func(context.Context, *model.Team) (model.Collection[*model.CacheCluster], error) {
			return fixtures(names, func(id int, name string) *model.CacheCluster { return &model.CacheCluster{Identifier: id, Label: name} }), nil
		},
		GetCertificatesFunc: func(context.Context, *model.Team) (model.Collection[*model.Certificate], error) {
			return fixtures(names, func(id int, name string) *model.Certificate { return &model.Certificate{Identifier: id, Domains: []string{name}} }), nil
		},
		GetDnsZonesFunc: func(context.Context, *model.Team) (model.Collection[*model.DnsZone], error) {
			return fixtures(names, func(id int, name string) *model.DnsZone { return &model.DnsZone{Identifier: id, Label: name} }), nil
		},
		GetEmailIdentitiesFunc: func(context.Context, *model.Team) (model.Collection[*model.EmailIdentity], error) {
			return fixtures(names, func(id int, name string) *model.EmailIdentity { return &model.EmailIdentity{Identifier: id, Label: name} }), nil
		},
		GetProjectsFunc: func(context.Context, *model.Team) (model.Collection[*model.Project], error) {
			return fixtures(names, func(id int, name string) *model.Project { return &model.Project{Identifier: id, Label: name} }), nil
		},
		GetEnvironmentsFunc: func(_ context.Context, project *model.Project) (model.Collection[*model.Environment], error) {
			return fixtures(names, func(id int, name string) *model.Environment { return &model.Environment{Identifier: id, Label: name, Project: project} }), nil
		},
	}
}

func fixtures[T model.Resource](names []string, fn func(id int, name string) T) model.Collection[T] {
	items := make([]T, 0, len(names))
	for i, name := range names {
		items = append(items, fn(i+1, name))
	}
	return model.NewCollection(items...)
}
