package requirement

import (
	"slices"

	"github.com/imamik/ymir/internal/api"
	"github.com/imamik/ymir/internal/console"
	"github.com/imamik/ymir/internal/model"
	"github.com/imamik/ymir/internal/resource"
)

// CacheEngines are the supported cache cluster engines.
var CacheEngines = []string{"redis", "valkey"}

// CacheEngine reads the "engine" option or asks to choose an engine.
type CacheEngine struct {
	Question string
}

// Fulfill implements resource.Requirement.
func (r CacheEngine) Fulfill(ctx *resource.Context, _ resource.Fulfilled) (any, error) {
	engine := ctx.Input().StringOption("engine")
	if engine == "" {
		var err error
		engine, err = ctx.Console().Choice(ctx, r.Question, console.Options(CacheEngines...), CacheEngines[0])
		if err != nil {
			return nil, err
		}
	}
	if !slices.Contains(CacheEngines, engine) {
		return nil, resource.NewValidationError("The %q engine isn't a valid cache cluster engine", engine)
	}
	return engine, nil
}

// CacheClusterType chooses the instance type of a cache cluster. It depends
// on "engine" and "network".
type CacheClusterType struct {
	Question string
}

// Fulfill implements resource.Requirement.
func (r CacheClusterType) Fulfill(ctx *resource.Context, fulfilled resource.Fulfilled) (any, error) {
	if err := fulfilled.Require("engine", "network"); err != nil {
		return nil, err
	}
	engine, err := fulfilled.String("engine")
	if err != nil {
		return nil, err
	}
	network, err := resource.Value[*model.Network](fulfilled, "network")
	if err != nil {
		return nil, err
	}
	provider, err := providerOf(ctx, network)
	if err != nil {
		return nil, err
	}

	types, err := ctx.Client().GetCacheTypes(ctx, provider, api.CacheTypeOptions{Engine: engine})
	if err != nil {
		return nil, err
	}
	if len(types) == 0 {
		return nil, resource.NewFulfillmentError("No cache cluster types found")
	}

	return chooseInstanceType(ctx, r.Question, types, "cache.t3.micro")
}
