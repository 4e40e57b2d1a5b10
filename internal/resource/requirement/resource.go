package requirement

import (
	"github.com/imamik/ymir/internal/input"
	"github.com/imamik/ymir/internal/model"
	"github.com/imamik/ymir/internal/resource"
)

// FiltersFunc derives resolution filters from the fulfilled values.
type FiltersFunc func(fulfilled resource.Fulfilled) resource.Filters

// PresetsFunc derives the presets of a nested provisioning.
type PresetsFunc func(ctx *resource.Context, fulfilled resource.Fulfilled) resource.Fulfilled

// ByRegion scopes a resolution to the fulfilled "region", when there is one.
func ByRegion(fulfilled resource.Fulfilled) resource.Filters {
	region, ok := fulfilled["region"].(string)
	if !ok || region == "" {
		return nil
	}
	return resource.Filters{"region": region}
}

// RegionPreset carries the fulfilled "region" into a nested provisioning, so
// the new resource lands in the region the resolution was scoped to.
func RegionPreset(_ *resource.Context, fulfilled resource.Fulfilled) resource.Fulfilled {
	region, ok := fulfilled["region"].(string)
	if !ok || region == "" {
		return nil
	}
	return resource.Fulfilled{"region": region}
}

// Resolve is a resource valued requirement resolving an existing resource.
type Resolve struct {
	Kind     resource.Kind
	Question string
	Filters  FiltersFunc
}

// Fulfill implements resource.Requirement.
func (r Resolve) Fulfill(ctx *resource.Context, fulfilled resource.Fulfilled) (any, error) {
	var filters resource.Filters
	if r.Filters != nil {
		filters = r.Filters(fulfilled)
	}
	return ctx.Resolve(r.Kind, r.Question, filters)
}

// CloudProvider resolves the cloud provider a resource is created on.
func CloudProvider(question string) Resolve {
	return Resolve{Kind: resource.KindCloudProvider, Question: question}
}

// ResolveOrProvision resolves a resource and provisions a new one when none
// exists yet.
type ResolveOrProvision struct {
	Kind     resource.Kind
	Question string
	Filters  FiltersFunc
	Presets  PresetsFunc
}

// Network resolves or provisions the network a resource is created on.
func Network(question string) ResolveOrProvision {
	return ResolveOrProvision{Kind: resource.KindNetwork, Question: question, Filters: ByRegion, Presets: RegionPreset}
}

// Fulfill implements resource.Requirement.
func (r ResolveOrProvision) Fulfill(ctx *resource.Context, fulfilled resource.Fulfilled) (any, error) {
	var filters resource.Filters
	if r.Filters != nil {
		filters = r.Filters(fulfilled)
	}

	found, err := ctx.Resolve(r.Kind, r.Question, filters)
	if err == nil {
		return found, nil
	}
	if !resource.IsNoResourcesFound(err) {
		return nil, err
	}

	ctx.Console().Info("No %s found, a new one will be created", r.Kind.Label())

	var presets resource.Fulfilled
	if r.Presets != nil {
		presets = r.Presets(ctx, fulfilled)
	}
	// The arguments and options of the command belong to the outer resource.
	return ctx.WithInput(input.Empty()).Provision(r.Kind, presets, nil)
}

// ParentResource uses the context parent when it is a T and otherwise
// resolves one.
type ParentResource[T model.Resource] struct {
	Kind     resource.Kind
	Question string
}

// Fulfill implements resource.Requirement.
func (r ParentResource[T]) Fulfill(ctx *resource.Context, _ resource.Fulfilled) (any, error) {
	if parent, ok := ctx.ParentResource().(T); ok {
		return parent, nil
	}
	return resource.ResolveAs[T](ctx, r.Kind, r.Question, nil)
}

// DatabaseServer is the parent database server of databases and users.
func DatabaseServer(question string) ParentResource[*model.DatabaseServer] {
	return ParentResource[*model.DatabaseServer]{Kind: resource.KindDatabaseServer, Question: question}
}

// Project uses the active project or resolves one.
type Project struct {
	Question string
}

// Fulfill implements resource.Requirement.
func (r Project) Fulfill(ctx *resource.Context, _ resource.Fulfilled) (any, error) {
	if project := ctx.Project(); project != nil && !ctx.Input().HasOption("project") {
		return project, nil
	}
	return resource.ResolveAs[*model.Project](ctx, resource.KindProject, r.Question, nil)
}

// Team uses the active team or resolves one.
type Team struct {
	Question string
}

// Fulfill implements resource.Requirement.
func (r Team) Fulfill(ctx *resource.Context, _ resource.Fulfilled) (any, error) {
	if team := ctx.Team(); team != nil {
		return team, nil
	}
	return resource.ResolveAs[*model.Team](ctx, resource.KindTeam, r.Question, nil)
}
