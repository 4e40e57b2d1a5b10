package handlers

import (
	"context"
	"fmt"

	"github.com/imamik/ymir/internal/config"
	"github.com/imamik/ymir/internal/input"
	"github.com/imamik/ymir/internal/model"
	"github.com/imamik/ymir/internal/resource"
)

// ProjectInit creates a project and writes its ymir.yml to the working
// directory.
func ProjectInit(ctx context.Context, g *Globals, in input.Input) error {
	s, err := newSession(g)
	if err != nil {
		return err
	}
	if s.project != nil {
		return resource.NewValidationError("A project already exists in this directory (%q)", s.project.Name)
	}
	rctx, err := s.resourceContext(ctx, in)
	if err != nil {
		return err
	}

	project, err := resource.ProvisionAs[*model.Project](rctx, resource.KindProject, nil, nil)
	if err != nil {
		return err
	}

	environments, err := s.client.GetEnvironments(ctx, project)
	if err != nil {
		return fmt.Errorf("failed to fetch environments of project %q: %w", project.Name(), err)
	}

	if err := config.WriteProject(s.dir, config.NewProjectConfig(project.ID(), project.Name(), environments.Names())); err != nil {
		return err
	}

	s.console.Success("Project %q initialized, its configuration was written to %s", project.Name(), config.ProjectFileName)
	return nil
}

// EnvironmentCreate adds an environment to a project. When the project is
// the one of the working directory, ymir.yml is updated too.
func EnvironmentCreate(ctx context.Context, g *Globals, in input.Input) error {
	s, err := newSession(g)
	if err != nil {
		return err
	}
	rctx, err := s.resourceContext(ctx, in)
	if err != nil {
		return err
	}

	env, err := resource.ProvisionAs[*model.Environment](rctx, resource.KindEnvironment, nil, nil)
	if err != nil {
		return err
	}

	if s.project != nil && env.Project != nil && env.Project.ID() == s.project.ID && !s.project.HasEnvironment(env.Name()) {
		if s.project.Environments == nil {
			s.project.Environments = map[string]config.EnvironmentConfig{}
		}
		s.project.Environments[env.Name()] = config.EnvironmentConfig{}
		if err := config.WriteProject(s.dir, s.project); err != nil {
			return err
		}
	}

	s.console.Success("Environment %q created", env.Name())
	return nil
}
