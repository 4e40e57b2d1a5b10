package api

import (
	"context"

	"github.com/imamik/ymir/internal/model"
)

// AwsCredentials are the access keys used to connect an AWS account.
type AwsCredentials struct {
	Key    string `json:"key"`
	Secret string `json:"secret"`
}

// InstanceType describes a database server or cache cluster instance size.
type InstanceType struct {
	CPU    int   `json:"cpu"`
	Memory int64 `json:"ram"` // MiB
}

// CacheTypeOptions narrows the cache types returned for a provider.
type CacheTypeOptions struct {
	Engine string `url:"engine,omitempty"`
}

// AuthClient handles authentication.
type AuthClient interface {
	GetAccessToken(ctx context.Context, email, password, authenticationCode string) (string, error)
	GetAuthenticatedUser(ctx context.Context) (*model.User, error)
}

// TeamClient manages teams.
type TeamClient interface {
	GetTeams(ctx context.Context) (model.Collection[*model.Team], error)
	GetTeam(ctx context.Context, teamID int) (*model.Team, error)
	CreateTeam(ctx context.Context, name string) (*model.Team, error)
}

// ProviderClient manages cloud providers.
type ProviderClient interface {
	GetProviders(ctx context.Context, team *model.Team) (model.Collection[*model.CloudProvider], error)
	CreateProvider(ctx context.Context, team *model.Team, name string, credentials AwsCredentials) (*model.CloudProvider, error)
	// GetRegions returns region codes mapped to their display names.
	GetRegions(ctx context.Context, provider *model.CloudProvider) (map[string]string, error)
}

// NetworkClient manages networks.
type NetworkClient interface {
	GetNetworks(ctx context.Context, team *model.Team) (model.Collection[*model.Network], error)
	GetNetwork(ctx context.Context, networkID int) (*model.Network, error)
	CreateNetwork(ctx context.Context, provider *model.CloudProvider, name, region string) (*model.Network, error)
	AddNatGateway(ctx context.Context, network *model.Network) error
}

// DatabaseClient manages database servers, databases and database users.
type DatabaseClient interface {
	GetDatabaseServers(ctx context.Context, team *model.Team) (model.Collection[*model.DatabaseServer], error)
	GetDatabaseServerTypes(ctx context.Context, provider *model.CloudProvider) (map[string]InstanceType, error)
	CreateDatabaseServer(ctx context.Context, network *model.Network, name, serverType string, storage int, public bool) (*model.DatabaseServer, error)
	GetDatabases(ctx context.Context, server *model.DatabaseServer) (model.Collection[*model.Database], error)
	CreateDatabase(ctx context.Context, server *model.DatabaseServer, name string) (*model.Database, error)
	GetDatabaseUsers(ctx context.Context, server *model.DatabaseServer) (model.Collection[*model.DatabaseUser], error)
	CreateDatabaseUser(ctx context.Context, server *model.DatabaseServer, username string, databases []string) (*model.DatabaseUser, error)
}

// CacheClient manages cache clusters.
type CacheClient interface {
	GetCacheClusters(ctx context.Context, team *model.Team) (model.Collection[*model.CacheCluster], error)
	GetCacheTypes(ctx context.Context, provider *model.CloudProvider, opts CacheTypeOptions) (map[string]InstanceType, error)
	CreateCacheCluster(ctx context.Context, network *model.Network, name, engine, cacheType string) (*model.CacheCluster, error)
}

// CertificateClient manages SSL certificates.
type CertificateClient interface {
	GetCertificates(ctx context.Context, team *model.Team) (model.Collection[*model.Certificate], error)
	CreateCertificate(ctx context.Context, provider *model.CloudProvider, domains []string, region string) (*model.Certificate, error)
}

// DNSClient manages DNS zones.
type DNSClient interface {
	GetDnsZones(ctx context.Context, team *model.Team) (model.Collection[*model.DnsZone], error)
	CreateDnsZone(ctx context.Context, provider *model.CloudProvider, name string) (*model.DnsZone, error)
}

// EmailClient manages email identities.
type EmailClient interface {
	GetEmailIdentities(ctx context.Context, team *model.Team) (model.Collection[*model.EmailIdentity], error)
	CreateEmailIdentity(ctx context.Context, provider *model.CloudProvider, name, region string) (*model.EmailIdentity, error)
}

// ProjectClient manages projects and their environments.
type ProjectClient interface {
	GetProjects(ctx context.Context, team *model.Team) (model.Collection[*model.Project], error)
	GetProject(ctx context.Context, projectID int) (*model.Project, error)
	CreateProject(ctx context.Context, provider *model.CloudProvider, name, region string, environments []string) (*model.Project, error)
	GetEnvironments(ctx context.Context, project *model.Project) (model.Collection[*model.Environment], error)
	CreateEnvironment(ctx context.Context, project *model.Project, name string) (*model.Environment, error)
}

// Client combines every API capability used by the CLI.
type Client interface {
	AuthClient
	TeamClient
	ProviderClient
	NetworkClient
	DatabaseClient
	CacheClient
	CertificateClient
	DNSClient
	EmailClient
	ProjectClient
}
