package model

import (
	"strings"
	"time"
)

// Resource is implemented by every model returned by the API.
type Resource interface {
	// ID returns the resource identifier. Databases have no identifier and
	// always return 0.
	ID() int

	// Name returns the human readable name used for lookups.
	Name() string
}

// User is the owner of a team.
type User struct {
	Identifier int
	Label      string
	Email      string
}

func (u *User) ID() int      { return u.Identifier }
func (u *User) Name() string { return u.Label }

// Team groups projects and cloud providers.
type Team struct {
	Identifier int
	Label      string
	Owner      *User
}

func (t *Team) ID() int      { return t.Identifier }
func (t *Team) Name() string { return t.Label }

// CloudProvider is a cloud account connected to a team.
type CloudProvider struct {
	Identifier int
	Label      string
	Team       *Team
}

func (p *CloudProvider) ID() int      { return p.Identifier }
func (p *CloudProvider) Name() string { return p.Label }

// Network is a private network (VPC) created on a cloud provider.
type Network struct {
	Identifier    int
	Label         string
	Region        string
	Status        string
	HasNatGateway bool
	Provider      *CloudProvider
}

func (n *Network) ID() int      { return n.Identifier }
func (n *Network) Name() string { return n.Label }

// BastionHost is an SSH jump host attached to a network.
type BastionHost struct {
	Identifier int
	Label      string
	Endpoint   string
	PrivateKey string
	Network    *Network
}

func (b *BastionHost) ID() int      { return b.Identifier }
func (b *BastionHost) Name() string { return b.Label }

// DatabaseServer is a managed database server.
type DatabaseServer struct {
	Identifier int
	Label      string
	Region     string
	Status     string
	Type       string
	Storage    int
	Public     bool
	Endpoint   string
	Username   string
	Password   string
	Network    *Network
}

func (s *DatabaseServer) ID() int      { return s.Identifier }
func (s *DatabaseServer) Name() string { return s.Label }

// IsAurora reports whether the server runs a serverless Aurora engine.
func (s *DatabaseServer) IsAurora() bool {
	return IsAuroraType(s.Type)
}

// IsAuroraType reports whether a database server type is a serverless Aurora
// engine ("aurora", "aurora-mysql", "aurora-postgresql"). Aurora servers have
// no fixed storage and cannot be public.
func IsAuroraType(serverType string) bool {
	return strings.HasPrefix(serverType, "aurora")
}

// Database is a schema on a database server. Databases have no identifier of
// their own; they are unique by name within their server.
type Database struct {
	Label  string
	Server *DatabaseServer
}

func (d *Database) ID() int      { return 0 }
func (d *Database) Name() string { return d.Label }

// DatabaseUser is a user account on a database server.
type DatabaseUser struct {
	Identifier int
	Username   string
	Password   string
	Databases  []string
	Server     *DatabaseServer
}

func (u *DatabaseUser) ID() int      { return u.Identifier }
func (u *DatabaseUser) Name() string { return u.Username }

// CacheCluster is a managed cache cluster.
type CacheCluster struct {
	Identifier int
	Label      string
	Region     string
	Status     string
	Engine     string
	Type       string
	Endpoint   string
	Network    *Network
}

func (c *CacheCluster) ID() int      { return c.Identifier }
func (c *CacheCluster) Name() string { return c.Label }

// Certificate is an SSL certificate covering one or more domains.
type Certificate struct {
	Identifier int
	Region     string
	Status     string
	InUse      bool
	Domains    []string
	Provider   *CloudProvider
}

func (c *Certificate) ID() int { return c.Identifier }

// Name returns the first domain covered by the certificate.
func (c *Certificate) Name() string {
	if len(c.Domains) == 0 {
		return ""
	}
	return c.Domains[0]
}

// DnsZone is a hosted DNS zone.
type DnsZone struct {
	Identifier  int
	Label       string
	NameServers []string
	Provider    *CloudProvider
}

func (z *DnsZone) ID() int      { return z.Identifier }
func (z *DnsZone) Name() string { return z.Label }

// EmailIdentity is a verified sender identity (an email address or a domain).
type EmailIdentity struct {
	Identifier int
	Label      string
	Type       string
	Region     string
	Verified   bool
	Provider   *CloudProvider
}

func (e *EmailIdentity) ID() int      { return e.Identifier }
func (e *EmailIdentity) Name() string { return e.Label }

// Project is a deployable application.
type Project struct {
	Identifier int
	Label      string
	Region     string
	Provider   *CloudProvider
}

func (p *Project) ID() int      { return p.Identifier }
func (p *Project) Name() string { return p.Label }

// Environment is a deployment target inside a project.
type Environment struct {
	Identifier   int
	Label        string
	VanityDomain string
	Deployed     bool
	Project      *Project
}

func (e *Environment) ID() int      { return e.Identifier }
func (e *Environment) Name() string { return e.Label }

// Deployment is a single deployment or redeployment of an environment.
type Deployment struct {
	Identifier int
	UUID       string
	Type       string
	Status     string
	CreatedAt  time.Time
}

func (d *Deployment) ID() int      { return d.Identifier }
func (d *Deployment) Name() string { return d.UUID }

// Secret is an encrypted environment secret. Only its name is exposed.
type Secret struct {
	Identifier int
	Label      string
	UpdatedAt  time.Time
}

func (s *Secret) ID() int      { return s.Identifier }
func (s *Secret) Name() string { return s.Label }
