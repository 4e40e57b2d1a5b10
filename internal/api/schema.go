package api

import (
	"time"

	"github.com/imamik/ymir/internal/model"
)

// Wire representations of API resources. Nested parents are optional and
// only mapped when the API embeds them.

type userSchema struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (s *userSchema) toModel() *model.User {
	if s == nil {
		return nil
	}
	return &model.User{Identifier: s.ID, Label: s.Name, Email: s.Email}
}

type teamSchema struct {
	ID    int         `json:"id"`
	Name  string      `json:"name"`
	Owner *userSchema `json:"owner"`
}

func (s *teamSchema) toModel() *model.Team {
	if s == nil {
		return nil
	}
	return &model.Team{Identifier: s.ID, Label: s.Name, Owner: s.Owner.toModel()}
}

type providerSchema struct {
	ID   int         `json:"id"`
	Name string      `json:"name"`
	Team *teamSchema `json:"team"`
}

func (s *providerSchema) toModel() *model.CloudProvider {
	if s == nil {
		return nil
	}
	return &model.CloudProvider{Identifier: s.ID, Label: s.Name, Team: s.Team.toModel()}
}

type networkSchema struct {
	ID            int             `json:"id"`
	Name          string          `json:"name"`
	Region        string          `json:"region"`
	Status        string          `json:"status"`
	HasNatGateway bool            `json:"has_nat_gateway"`
	Provider      *providerSchema `json:"provider"`
}

func (s *networkSchema) toModel() *model.Network {
	if s == nil {
		return nil
	}
	return &model.Network{
		Identifier:    s.ID,
		Label:         s.Name,
		Region:        s.Region,
		Status:        s.Status,
		HasNatGateway: s.HasNatGateway,
		Provider:      s.Provider.toModel(),
	}
}

type databaseServerSchema struct {
	ID       int            `json:"id"`
	Name     string         `json:"name"`
	Region   string         `json:"region"`
	Status   string         `json:"status"`
	Type     string         `json:"type"`
	Storage  int            `json:"storage"`
	Public   bool           `json:"publicly_accessible"`
	Endpoint string         `json:"endpoint"`
	Username string         `json:"username"`
	Password string         `json:"password"`
	Network  *networkSchema `json:"network"`
}

func (s *databaseServerSchema) toModel() *model.DatabaseServer {
	if s == nil {
		return nil
	}
	return &model.DatabaseServer{
		Identifier: s.ID,
		Label:      s.Name,
		Region:     s.Region,
		Status:     s.Status,
		Type:       s.Type,
		Storage:    s.Storage,
		Public:     s.Public,
		Endpoint:   s.Endpoint,
		Username:   s.Username,
		Password:   s.Password,
		Network:    s.Network.toModel(),
	}
}

type databaseUserSchema struct {
	ID        int      `json:"id"`
	Username  string   `json:"username"`
	Password  string   `json:"password"`
	Databases []string `json:"databases"`
}

type cacheClusterSchema struct {
	ID       int            `json:"id"`
	Name     string         `json:"name"`
	Region   string         `json:"region"`
	Status   string         `json:"status"`
	Engine   string         `json:"engine"`
	Type     string         `json:"type"`
	Endpoint string         `json:"endpoint"`
	Network  *networkSchema `json:"network"`
}

func (s *cacheClusterSchema) toModel() *model.CacheCluster {
	if s == nil {
		return nil
	}
	return &model.CacheCluster{
		Identifier: s.ID,
		Label:      s.Name,
		Region:     s.Region,
		Status:     s.Status,
		Engine:     s.Engine,
		Type:       s.Type,
		Endpoint:   s.Endpoint,
		Network:    s.Network.toModel(),
	}
}

type certificateSchema struct {
	ID       int             `json:"id"`
	Region   string          `json:"region"`
	Status   string          `json:"status"`
	InUse    bool            `json:"in_use"`
	Domains  []domainSchema  `json:"domains"`
	Provider *providerSchema `json:"provider"`
}

type domainSchema struct {
	Name string `json:"domain_name"`
}

func (s *certificateSchema) toModel() *model.Certificate {
	if s == nil {
		return nil
	}
	domains := make([]string, 0, len(s.Domains))
	for _, d := range s.Domains {
		domains = append(domains, d.Name)
	}
	return &model.Certificate{
		Identifier: s.ID,
		Region:     s.Region,
		Status:     s.Status,
		InUse:      s.InUse,
		Domains:    domains,
		Provider:   s.Provider.toModel(),
	}
}

type dnsZoneSchema struct {
	ID          int             `json:"id"`
	Name        string          `json:"domain_name"`
	NameServers []string        `json:"name_servers"`
	Provider    *providerSchema `json:"provider"`
}

func (s *dnsZoneSchema) toModel() *model.DnsZone {
	if s == nil {
		return nil
	}
	return &model.DnsZone{
		Identifier:  s.ID,
		Label:       s.Name,
		NameServers: s.NameServers,
		Provider:    s.Provider.toModel(),
	}
}

type emailIdentitySchema struct {
	ID       int             `json:"id"`
	Name     string          `json:"name"`
	Type     string          `json:"type"`
	Region   string          `json:"region"`
	Verified bool            `json:"verified"`
	Provider *providerSchema `json:"provider"`
}

func (s *emailIdentitySchema) toModel() *model.EmailIdentity {
	if s == nil {
		return nil
	}
	return &model.EmailIdentity{
		Identifier: s.ID,
		Label:      s.Name,
		Type:       s.Type,
		Region:     s.Region,
		Verified:   s.Verified,
		Provider:   s.Provider.toModel(),
	}
}

type projectSchema struct {
	ID       int             `json:"id"`
	Name     string          `json:"name"`
	Region   string          `json:"region"`
	Provider *providerSchema `json:"provider"`
}

func (s *projectSchema) toModel() *model.Project {
	if s == nil {
		return nil
	}
	return &model.Project{
		Identifier: s.ID,
		Label:      s.Name,
		Region:     s.Region,
		Provider:   s.Provider.toModel(),
	}
}

type environmentSchema struct {
	ID           int       `json:"id"`
	Name         string    `json:"name"`
	VanityDomain string    `json:"vanity_domain"`
	LastDeployed time.Time `json:"last_deployed_at"`
}

func (s *environmentSchema) toModel(project *model.Project) *model.Environment {
	return &model.Environment{
		Identifier:   s.ID,
		Label:        s.Name,
		VanityDomain: s.VanityDomain,
		Deployed:     !s.LastDeployed.IsZero(),
		Project:      project,
	}
}

// collect maps a slice of wire values onto a model collection.
func collect[S any, T model.Resource](items []S, convert func(*S) T) model.Collection[T] {
	out := make([]T, 0, len(items))
	for i := range items {
		out = append(out, convert(&items[i]))
	}
	return model.NewCollection(out...)
}
