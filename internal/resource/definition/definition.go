package definition

import (
	"strconv"

	"github.com/imamik/ymir/internal/model"
	"github.com/imamik/ymir/internal/resource"
	"github.com/imamik/ymir/internal/resource/requirement"
)

// NewLocator returns a locator holding every definition. creds loads and
// verifies the credentials of new cloud providers.
func NewLocator(creds requirement.CredentialsSource) *resource.Locator {
	return resource.NewLocator(
		CacheCluster{},
		Certificate{},
		CloudProvider{Credentials: creds},
		Database{},
		DatabaseServer{},
		DatabaseUser{},
		DnsZone{},
		EmailIdentity{},
		Environment{},
		Network{},
		Project{},
		Team{},
	)
}

// resolveWith runs r and returns its result as a plain model.Resource,
// never a typed nil.
func resolveWith[T model.Resource](r resource.Resolver[T], ctx *resource.Context, question string, filters resource.Filters) (model.Resource, error) {
	found, err := r.Resolve(ctx, question, filters)
	if err != nil {
		return nil, err
	}
	return found, nil
}

// created converts the result of a creation call, never returning a typed
// nil resource.
func created[T model.Resource](r T, err error) (model.Resource, error) {
	if err != nil {
		return nil, err
	}
	return r, nil
}

// teamScoped adapts a query over the active team to a resolver fetch.
func teamScoped[T model.Resource](query func(ctx *resource.Context, team *model.Team) (model.Collection[T], error)) func(*resource.Context) (model.Collection[T], error) {
	return func(ctx *resource.Context) (model.Collection[T], error) {
		team, err := ctx.TeamOrFail()
		if err != nil {
			return model.Collection[T]{}, err
		}
		return query(ctx, team)
	}
}

func idString(r model.Resource) string {
	return strconv.Itoa(r.ID())
}
