package definition

import (
	"context"

	"github.com/imamik/ymir/internal/api"
	"github.com/imamik/ymir/internal/model"
	"github.com/imamik/ymir/internal/resource"
	"github.com/imamik/ymir/internal/resource/requirement"
)

// Project creates and resolves projects. Resolution falls back to the
// project of the working directory.
type Project struct{}

var projectResolver = resource.Resolver[*model.Project]{
	Kind:     resource.KindProject,
	Argument: "project",
	Option:   "project",
	Fetch: teamScoped(func(ctx *resource.Context, team *model.Team) (model.Collection[*model.Project], error) {
		return ctx.Client().GetProjects(ctx, team)
	}),
	Fallback: func(ctx *resource.Context) string {
		if project := ctx.Project(); project != nil {
			return idString(project)
		}
		return ""
	},
}

func (Project) Kind() resource.Kind { return resource.KindProject }

func (Project) Requirements() []resource.NamedRequirement {
	return []resource.NamedRequirement{
		{Name: "name", Requirement: requirement.NameSlug("What is the name of the project?", requirement.ProjectDirectoryName)},
		{Name: "provider", Requirement: requirement.CloudProvider("Which cloud provider should the project be created on?")},
		{Name: "region", Requirement: requirement.Region{Question: "Which region should the project be created in?"}},
		{Name: "environments", Requirement: requirement.Environments{}},
	}
}

func (Project) Provision(ctx context.Context, client api.Client, fulfilled resource.Fulfilled) (model.Resource, error) {
	name, err := fulfilled.String("name")
	if err != nil {
		return nil, err
	}
	provider, err := resource.Value[*model.CloudProvider](fulfilled, "provider")
	if err != nil {
		return nil, err
	}
	region, err := fulfilled.String("region")
	if err != nil {
		return nil, err
	}
	environments, err := fulfilled.Strings("environments")
	if err != nil {
		return nil, err
	}
	return created(client.CreateProject(ctx, provider, name, region, environments))
}

func (Project) Resolve(ctx *resource.Context, question string, filters resource.Filters) (model.Resource, error) {
	return resolveWith(projectResolver, ctx, question, filters)
}

// Environment creates and resolves environments of a project.
type Environment struct{}

var environmentResolver = resource.Resolver[*model.Environment]{
	Kind:     resource.KindEnvironment,
	Argument: "environment",
	Fetch: func(ctx *resource.Context) (model.Collection[*model.Environment], error) {
		project, err := ctx.ProjectOrFail()
		if err != nil {
			return model.Collection[*model.Environment]{}, err
		}
		return ctx.Client().GetEnvironments(ctx, project)
	},
}

func (Environment) Kind() resource.Kind { return resource.KindEnvironment }

func (Environment) Requirements() []resource.NamedRequirement {
	return []resource.NamedRequirement{
		{Name: "project", Requirement: requirement.Project{Question: "Which project should the environment be added to?"}},
		{Name: "name", Requirement: requirement.NameSlug("What is the name of the environment?", nil)},
	}
}

func (Environment) Provision(ctx context.Context, client api.Client, fulfilled resource.Fulfilled) (model.Resource, error) {
	project, err := resource.Value[*model.Project](fulfilled, "project")
	if err != nil {
		return nil, err
	}
	name, err := fulfilled.String("name")
	if err != nil {
		return nil, err
	}
	return created(client.CreateEnvironment(ctx, project, name))
}

func (Environment) Resolve(ctx *resource.Context, question string, filters resource.Filters) (model.Resource, error) {
	return resolveWith(environmentResolver, ctx, question, filters)
}
