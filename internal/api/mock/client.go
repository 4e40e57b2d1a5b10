// Package mock provides a function-field implementation of api.Client for tests.
package mock

import (
	"context"
	"errors"

	"github.com/imamik/ymir/internal/api"
	"github.com/imamik/ymir/internal/model"
)

var _ api.Client = (*Client)(nil)

// ErrNotConfigured is returned by mutations without a configured function.
var ErrNotConfigured = errors.New("mock: function not configured")

// Client is a mock implementation of api.Client. Queries without a configured
// function return empty results; mutations return ErrNotConfigured. Every
// mutation is recorded in Mutations.
type Client struct {
	GetAccessTokenFunc       func(ctx context.Context, email, password, code string) (string, error)
	GetAuthenticatedUserFunc func(ctx context.Context) (*model.User, error)

	// Teams
	GetTeamsFunc   func(ctx context.Context) (model.Collection[*model.Team], error)
	GetTeamFunc    func(ctx context.Context, teamID int) (*model.Team, error)
	CreateTeamFunc func(ctx context.Context, name string) (*model.Team, error)

	// Providers
	GetProvidersFunc   func(ctx context.Context, team *model.Team) (model.Collection[*model.CloudProvider], error)
	CreateProviderFunc func(ctx context.Context, team *model.Team, name string, credentials api.AwsCredentials) (*model.CloudProvider, error)
	GetRegionsFunc     func(ctx context.Context, provider *model.CloudProvider) (map[string]string, error)

	// Networks
	GetNetworksFunc   func(ctx context.Context, team *model.Team) (model.Collection[*model.Network], error)
	GetNetworkFunc    func(ctx context.Context, networkID int) (*model.Network, error)
	CreateNetworkFunc func(ctx context.Context, provider *model.CloudProvider, name, region string) (*model.Network, error)
	AddNatGatewayFunc func(ctx context.Context, network *model.Network) error

	// Databases
	GetDatabaseServersFunc     func(ctx context.Context, team *model.Team) (model.Collection[*model.DatabaseServer], error)
	GetDatabaseServerTypesFunc func(ctx context.Context, provider *model.CloudProvider) (map[string]api.InstanceType, error)
	CreateDatabaseServerFunc   func(ctx context.Context, network *model.Network, name, serverType string, storage int, public bool) (*model.DatabaseServer, error)
	GetDatabasesFunc           func(ctx context.Context, server *model.DatabaseServer) (model.Collection[*model.Database], error)
	CreateDatabaseFunc         func(ctx context.Context, server *model.DatabaseServer, name string) (*model.Database, error)
	GetDatabaseUsersFunc       func(ctx context.Context, server *model.DatabaseServer) (model.Collection[*model.DatabaseUser], error)
	CreateDatabaseUserFunc     func(ctx context.Context, server *model.DatabaseServer, username string, databases []string) (*model.DatabaseUser, error)

	// Caches
	GetCacheClustersFunc   func(ctx context.Context, team *model.Team) (model.Collection[*model.CacheCluster], error)
	GetCacheTypesFunc      func(ctx context.Context, provider *model.CloudProvider, opts api.CacheTypeOptions) (map[string]api.InstanceType, error)
	CreateCacheClusterFunc func(ctx context.Context, network *model.Network, name, engine, cacheType string) (*model.CacheCluster, error)

	// Certificates
	GetCertificatesFunc   func(ctx context.Context, team *model.Team) (model.Collection[*model.Certificate], error)
	CreateCertificateFunc func(ctx context.Context, provider *model.CloudProvider, domains []string, region string) (*model.Certificate, error)

	// DNS
	GetDnsZonesFunc   func(ctx context.Context, team *model.Team) (model.Collection[*model.DnsZone], error)
	CreateDnsZoneFunc func(ctx context.Context, provider *model.CloudProvider, name string) (*model.DnsZone, error)

	// Email
	GetEmailIdentitiesFunc  func(ctx context.Context, team *model.Team) (model.Collection[*model.EmailIdentity], error)
	CreateEmailIdentityFunc func(ctx context.Context, provider *model.CloudProvider, name, region string) (*model.EmailIdentity, error)

	// Projects
	GetProjectsFunc       func(ctx context.Context, team *model.Team) (model.Collection[*model.Project], error)
	GetProjectFunc        func(ctx context.Context, projectID int) (*model.Project, error)
	CreateProjectFunc     func(ctx context.Context, provider *model.CloudProvider, name, region string, environments []string) (*model.Project, error)
	GetEnvironmentsFunc   func(ctx context.Context, project *model.Project) (model.Collection[*model.Environment], error)
	CreateEnvironmentFunc func(ctx context.Context, project *model.Project, name string) (*model.Environment, error)

	// Mutations records the name of every mutation called, in order.
	Mutations []string
}

func (m *Client) record(name string) {
	m.Mutations = append(m.Mutations, name)
}

func (m *Client) GetAccessToken(ctx context.Context, email, password, code string) (string, error) {
	if m.GetAccessTokenFunc != nil {
		return m.GetAccessTokenFunc(ctx, email, password, code)
	}
	return "mock-token", nil
}

func (m *Client) GetAuthenticatedUser(ctx context.Context) (*model.User, error) {
	if m.GetAuthenticatedUserFunc != nil {
		return m.GetAuthenticatedUserFunc(ctx)
	}
	return &model.User{Identifier: 1, Label: "mock"}, nil
}

func (m *Client) GetTeams(ctx context.Context) (model.Collection[*model.Team], error) {
	if m.GetTeamsFunc != nil {
		return m.GetTeamsFunc(ctx)
	}
	return model.Collection[*model.Team]{}, nil
}

func (m *Client) GetTeam(ctx context.Context, teamID int) (*model.Team, error) {
	if m.GetTeamFunc != nil {
		return m.GetTeamFunc(ctx, teamID)
	}
	return &model.Team{Identifier: teamID}, nil
}

func (m *Client) CreateTeam(ctx context.Context, name string) (*model.Team, error) {
	m.record("CreateTeam")
	if m.CreateTeamFunc != nil {
		return m.CreateTeamFunc(ctx, name)
	}
	return nil, ErrNotConfigured
}

func (m *Client) GetProviders(ctx context.Context, team *model.Team) (model.Collection[*model.CloudProvider], error) {
	if m.GetProvidersFunc != nil {
		return m.GetProvidersFunc(ctx, team)
	}
	return model.Collection[*model.CloudProvider]{}, nil
}

func (m *Client) CreateProvider(ctx context.Context, team *model.Team, name string, credentials api.AwsCredentials) (*model.CloudProvider, error) {
	m.record("CreateProvider")
	if m.CreateProviderFunc != nil {
		return m.CreateProviderFunc(ctx, team, name, credentials)
	}
	return nil, ErrNotConfigured
}

func (m *Client) GetRegions(ctx context.Context, provider *model.CloudProvider) (map[string]string, error) {
	if m.GetRegionsFunc != nil {
		return m.GetRegionsFunc(ctx, provider)
	}
	return map[string]string{}, nil
}

func (m *Client) GetNetworks(ctx context.Context, team *model.Team) (model.Collection[*model.Network], error) {
	if m.GetNetworksFunc != nil {
		return m.GetNetworksFunc(ctx, team)
	}
	return model.Collection[*model.Network]{}, nil
}

func (m *Client) GetNetwork(ctx context.Context, networkID int) (*model.Network, error) {
	if m.GetNetworkFunc != nil {
		return m.GetNetworkFunc(ctx, networkID)
	}
	return &model.Network{Identifier: networkID}, nil
}

func (m *Client) CreateNetwork(ctx context.Context, provider *model.CloudProvider, name, region string) (*model.Network, error) {
	m.record("CreateNetwork")
	if m.CreateNetworkFunc != nil {
		return m.CreateNetworkFunc(ctx, provider, name, region)
	}
	return nil, ErrNotConfigured
}

func (m *Client) AddNatGateway(ctx context.Context, network *model.Network) error {
	m.record("AddNatGateway")
	if m.AddNatGatewayFunc != nil {
		return m.AddNatGatewayFunc(ctx, network)
	}
	return ErrNotConfigured
}

func (m *Client) GetDatabaseServers(ctx context.Context, team *model.Team) (model.Collection[*model.DatabaseServer], error) {
	if m.GetDatabaseServersFunc != nil {
		return m.GetDatabaseServersFunc(ctx, team)
	}
	return model.Collection[*model.DatabaseServer]{}, nil
}

func (m *Client) GetDatabaseServerTypes(ctx context.Context, provider *model.CloudProvider) (map[string]api.InstanceType, error) {
	if m.GetDatabaseServerTypesFunc != nil {
		return m.GetDatabaseServerTypesFunc(ctx, provider)
	}
	return map[string]api.InstanceType{}, nil
}

func (m *Client) CreateDatabaseServer(ctx context.Context, network *model.Network, name, serverType string, storage int, public bool) (*model.DatabaseServer, error) {
	m.record("CreateDatabaseServer")
	if m.CreateDatabaseServerFunc != nil {
		return m.CreateDatabaseServerFunc(ctx, network, name, serverType, storage, public)
	}
	return nil, ErrNotConfigured
}

func (m *Client) GetDatabases(ctx context.Context, server *model.DatabaseServer) (model.Collection[*model.Database], error) {
	if m.GetDatabasesFunc != nil {
		return m.GetDatabasesFunc(ctx, server)
	}
	return model.Collection[*model.Database]{}, nil
}

func (m *Client) CreateDatabase(ctx context.Context, server *model.DatabaseServer, name string) (*model.Database, error) {
	m.record("CreateDatabase")
	if m.CreateDatabaseFunc != nil {
		return m.CreateDatabaseFunc(ctx, server, name)
	}
	return nil, ErrNotConfigured
}

func (m *Client) GetDatabaseUsers(ctx context.Context, server *model.DatabaseServer) (model.Collection[*model.DatabaseUser], error) {
	if m.GetDatabaseUsersFunc != nil {
		return m.GetDatabaseUsersFunc(ctx, server)
	}
	return model.Collection[*model.DatabaseUser]{}, nil
}

func (m *Client) CreateDatabaseUser(ctx context.Context, server *model.DatabaseServer, username string, databases []string) (*model.DatabaseUser, error) {
	m.record("CreateDatabaseUser")
	if m.CreateDatabaseUserFunc != nil {
		return m.CreateDatabaseUserFunc(ctx, server, username, databases)
	}
	return nil, ErrNotConfigured
}

func (m *Client) GetCacheClusters(ctx context.Context, team *model.Team) (model.Collection[*model.CacheCluster], error) {
	if m.GetCacheClustersFunc != nil {
		return m.GetCacheClustersFunc(ctx, team)
	}
	return model.Collection[*model.CacheCluster]{}, nil
}

func (m *Client) GetCacheTypes(ctx context.Context, provider *model.CloudProvider, opts api.CacheTypeOptions) (map[string]api.InstanceType, error) {
	if m.GetCacheTypesFunc != nil {
		return m.GetCacheTypesFunc(ctx, provider, opts)
	}
	return map[string]api.InstanceType{}, nil
}

func (m *Client) CreateCacheCluster(ctx context.Context, network *model.Network, name, engine, cacheType string) (*model.CacheCluster, error) {
	m.record("CreateCacheCluster")
	if m.CreateCacheClusterFunc != nil {
		return m.CreateCacheClusterFunc(ctx, network, name, engine, cacheType)
	}
	return nil, ErrNotConfigured
}

func (m *Client) GetCertificates(ctx context.Context, team *model.Team) (model.Collection[*model.Certificate], error) {
	if m.GetCertificatesFunc != nil {
		return m.GetCertificatesFunc(ctx, team)
	}
	return model.Collection[*model.Certificate]{}, nil
}

func (m *Client) CreateCertificate(ctx context.Context, provider *model.CloudProvider, domains []string, region string) (*model.Certificate, error) {
	m.record("CreateCertificate")
	if m.CreateCertificateFunc != nil {
		return m.CreateCertificateFunc(ctx, provider, domains, region)
	}
	return nil, ErrNotConfigured
}

func (m *Client) GetDnsZones(ctx context.Context, team *model.Team) (model.Collection[*model.DnsZone], error) {
	if m.GetDnsZonesFunc != nil {
		return m.GetDnsZonesFunc(ctx, team)
	}
	return model.Collection[*model.DnsZone]{}, nil
}

func (m *Client) CreateDnsZone(ctx context.Context, provider *model.CloudProvider, name string) (*model.DnsZone, error) {
	m.record("CreateDnsZone")
	if m.CreateDnsZoneFunc != nil {
		return m.CreateDnsZoneFunc(ctx, provider, name)
	}
	return nil, ErrNotConfigured
}

func (m *Client) GetEmailIdentities(ctx context.Context, team *model.Team) (model.Collection[*model.EmailIdentity], error) {
	if m.GetEmailIdentitiesFunc != nil {
		return m.GetEmailIdentitiesFunc(ctx, team)
	}
	return model.Collection[*model.EmailIdentity]{}, nil
}

func (m *Client) CreateEmailIdentity(ctx context.Context, provider *model.CloudProvider, name, region string) (*model.EmailIdentity, error) {
	m.record("CreateEmailIdentity")
	if m.CreateEmailIdentityFunc != nil {
		return m.CreateEmailIdentityFunc(ctx, provider, name, region)
	}
	return nil, ErrNotConfigured
}

func (m *Client) GetProjects(ctx context.Context, team *model.Team) (model.Collection[*model.Project], error) {
	if m.GetProjectsFunc != nil {
		return m.GetProjectsFunc(ctx, team)
	}
	return model.Collection[*model.Project]{}, nil
}

func (m *Client) GetProject(ctx context.Context, projectID int) (*model.Project, error) {
	if m.GetProjectFunc != nil {
		return m.GetProjectFunc(ctx, projectID)
	}
	return &model.Project{Identifier: projectID}, nil
}

func (m *Client) CreateProject(ctx context.Context, provider *model.CloudProvider, name, region string, environments []string) (*model.Project, error) {
	m.record("CreateProject")
	if m.CreateProjectFunc != nil {
		return m.CreateProjectFunc(ctx, provider, name, region, environments)
	}
	return nil, ErrNotConfigured
}

func (m *Client) GetEnvironments(ctx context.Context, project *model.Project) (model.Collection[*model.Environment], error) {
	if m.GetEnvironmentsFunc != nil {
		return m.GetEnvironmentsFunc(ctx, project)
	}
	return model.Collection[*model.Environment]{}, nil
}

func (m *Client) CreateEnvironment(ctx context.Context, project *model.Project, name string) (*model.Environment, error) {
	m.record("CreateEnvironment")
	if m.CreateEnvironmentFunc != nil {
		return m.CreateEnvironmentFunc(ctx, project, name)
	}
	return nil, ErrNotConfigured
}
