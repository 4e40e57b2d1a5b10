package handlers

import (
	"context"
	"strconv"
	"strings"

	"github.com/imamik/ymir/internal/console"
	"github.com/imamik/ymir/internal/input"
	"github.com/imamik/ymir/internal/model"
	"github.com/imamik/ymir/internal/resource"
)

// Create provisions a resource of kind and prints its details.
func Create(ctx context.Context, g *Globals, kind resource.Kind, in input.Input) error {
	s, err := newSession(g)
	if err != nil {
		return err
	}
	rctx, err := s.resourceContext(ctx, in)
	if err != nil {
		return err
	}

	created, err := rctx.Provision(kind, nil, nil)
	if err != nil {
		return err
	}

	s.console.Success("%s %q created", capitalize(kind.Label()), created.Name())
	printDetails(s.console, created)
	return nil
}

// Info resolves a resource of kind and prints its details.
func Info(ctx context.Context, g *Globals, kind resource.Kind, in input.Input) error {
	s, err := newSession(g)
	if err != nil {
		return err
	}
	rctx, err := s.resourceContext(ctx, in)
	if err != nil {
		return err
	}

	found, err := rctx.Resolve(kind, "Which "+kind.Label()+" would you like to see?", nil)
	if err != nil {
		return err
	}

	printDetails(s.console, found)
	return nil
}

func printDetails(c console.Console, r model.Resource) {
	rows := details(r)
	c.Table([]string{"Field", "Value"}, rows)
}

// details returns the rows describing r.
func details(r model.Resource) [][]string {
	rows := [][]string{}
	if r.ID() != 0 {
		rows = append(rows, []string{"ID", strconv.Itoa(r.ID())})
	}
	rows = append(rows, []string{"Name", r.Name()})

	switch v := r.(type) {
	case *model.Network:
		rows = append(rows,
			[]string{"Region", v.Region},
			[]string{"Status", v.Status},
			[]string{"NAT gateway", console.FormatBool(v.HasNatGateway)})
	case *model.DatabaseServer:
		rows = append(rows,
			[]string{"Region", v.Region},
			[]string{"Status", v.Status},
			[]string{"Type", v.Type},
			[]string{"Public", console.FormatBool(v.Public)})
		if !v.IsAurora() {
			rows = append(rows, []string{"Storage", console.FormatInt(v.Storage) + " GB"})
		}
		if v.Endpoint != "" {
			rows = append(rows, []string{"Endpoint", v.Endpoint})
		}
		if v.Username != "" {
			rows = append(rows, []string{"Username", v.Username})
		}
		if v.Password != "" {
			rows = append(rows, []string{"Password", v.Password})
		}
	case *model.Database:
		if v.Server != nil {
			rows = append(rows, []string{"Server", v.Server.Name()})
		}
	case *model.DatabaseUser:
		databases := "all"
		if len(v.Databases) > 0 {
			databases = strings.Join(v.Databases, ", ")
		}
		rows = append(rows, []string{"Databases", databases})
		if v.Password != "" {
			rows = append(rows, []string{"Password", v.Password})
		}
	case *model.CacheCluster:
		rows = append(rows,
			[]string{"Region", v.Region},
			[]string{"Status", v.Status},
			[]string{"Engine", v.Engine},
			[]string{"Type", v.Type})
		if v.Endpoint != "" {
			rows = append(rows, []string{"Endpoint", v.Endpoint})
		}
	case *model.Certificate:
		rows = append(rows,
			[]string{"Domains", strings.Join(v.Domains, ", ")},
			[]string{"Region", v.Region},
			[]string{"Status", v.Status},
			[]string{"In use", console.FormatBool(v.InUse)})
	case *model.DnsZone:
		rows = append(rows, []string{"Name servers", strings.Join(v.NameServers, ", ")})
	case *model.EmailIdentity:
		rows = append(rows,
			[]string{"Type", v.Type},
			[]string{"Region", v.Region},
			[]string{"Verified", console.FormatBool(v.Verified)})
	case *model.Project:
		rows = append(rows, []string{"Region", v.Region})
		if v.Provider != nil {
			rows = append(rows, []string{"Provider", v.Provider.Name()})
		}
	case *model.Environment:
		if v.VanityDomain != "" {
			rows = append(rows, []string{"Domain", v.VanityDomain})
		}
		rows = append(rows, []string{"Deployed", console.FormatBool(v.Deployed)})
	case *model.CloudProvider:
		if v.Team != nil {
			rows = append(rows, []string{"Team", v.Team.Name()})
		}
	case *model.Team:
		if v.Owner != nil {
			rows = append(rows, []string{"Owner", v.Owner.Name()})
		}
	}
	return rows
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
