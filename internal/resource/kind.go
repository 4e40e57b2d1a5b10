package resource

import "strings"

// Kind identifies a resource kind.
type Kind string

// The supported resource kinds.
const (
	KindCacheCluster   Kind = "cache_cluster"
	KindCertificate    Kind = "certificate"
	KindCloudProvider  Kind = "cloud_provider"
	KindDatabase       Kind = "database"
	KindDatabaseServer Kind = "database_server"
	KindDatabaseUser   Kind = "database_user"
	KindDnsZone        Kind = "dns_zone"
	KindEmailIdentity  Kind = "email_identity"
	KindEnvironment    Kind = "environment"
	KindNetwork        Kind = "network"
	KindProject        Kind = "project"
	KindTeam           Kind = "team"
)

type kindInfo struct {
	label   string
	plural  string
	command string
	// owner is what resources of the kind belong to.
	owner string
}

const activeTeam = "The currently active team"

var kinds = map[Kind]kindInfo{
	KindCacheCluster:   {"cache cluster", "cache clusters", "cache create", activeTeam},
	KindCertificate:    {"SSL certificate", "SSL certificates", "certificate request", activeTeam},
	KindCloudProvider:  {"cloud provider", "cloud providers", "provider connect", activeTeam},
	KindDatabase:       {"database", "databases", "database create", "The database server"},
	KindDatabaseServer: {"database server", "database servers", "database server create", activeTeam},
	KindDatabaseUser:   {"database user", "database users", "database user create", "The database server"},
	KindDnsZone:        {"DNS zone", "DNS zones", "dns zone create", activeTeam},
	KindEmailIdentity:  {"email identity", "email identities", "email identity create", activeTeam},
	KindEnvironment:    {"environment", "environments", "environment create", "The project"},
	KindNetwork:        {"network", "networks", "network create", activeTeam},
	KindProject:        {"project", "projects", "project init", activeTeam},
	KindTeam:           {"team", "teams", "team create", "Your account"},
}

// Kinds returns every supported kind.
func Kinds() []Kind {
	return []Kind{
		KindCacheCluster, KindCertificate, KindCloudProvider, KindDatabase,
		KindDatabaseServer, KindDatabaseUser, KindDnsZone, KindEmailIdentity,
		KindEnvironment, KindNetwork, KindProject, KindTeam,
	}
}

// Label returns the human readable singular name.
func (k Kind) Label() string {
	if info, ok := kinds[k]; ok {
		return info.label
	}
	return strings.ReplaceAll(string(k), "_", " ")
}

// Plural returns the human readable plural name.
func (k Kind) Plural() string {
	if info, ok := kinds[k]; ok {
		return info.plural
	}
	return k.Label() + "s"
}

// Command returns the command that creates a resource of this kind.
func (k Kind) Command() string {
	if info, ok := kinds[k]; ok {
		return info.command
	}
	return strings.ReplaceAll(string(k), "_", " ") + " create"
}

// Owner returns what resources of this kind belong to, as the subject of a
// sentence.
func (k Kind) Owner() string {
	if info, ok := kinds[k]; ok {
		return info.owner
	}
	return activeTeam
}
