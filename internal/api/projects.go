package api

import (
	"context"
	"fmt"

	"github.com/imamik/ymir/internal/model"
)

// GetProjects returns the projects of a team.
func (c *HTTPClient) GetProjects(ctx context.Context, team *model.Team) (model.Collection[*model.Project], error) {
	var resp []projectSchema
	if err := c.get(ctx, fmt.Sprintf("/teams/%d/projects", team.ID()), nil, &resp); err != nil {
		return model.Collection[*model.Project]{}, err
	}
	return collect(resp, (*projectSchema).toModel), nil
}

// GetProject returns a single project.
func (c *HTTPClient) GetProject(ctx context.Context, projectID int) (*model.Project, error) {
	var resp projectSchema
	if err := c.get(ctx, fmt.Sprintf("/projects/%d", projectID), nil, &resp); err != nil {
		return nil, err
	}
	return resp.toModel(), nil
}

// CreateProject creates a project with its initial environments.
func (c *HTTPClient) CreateProject(ctx context.Context, provider *model.CloudProvider, name, region string, environments []string) (*model.Project, error) {
	body := map[string]any{
		"name":         name,
		"region":       region,
		"environments": environments,
	}

	var resp projectSchema
	if err := c.post(ctx, fmt.Sprintf("/providers/%d/projects", provider.ID()), body, &resp); err != nil {
		return nil, err
	}
	project := resp.toModel()
	if project.Provider == nil {
		project.Provider = provider
	}
	return project, nil
}

// GetEnvironments returns the environments of a project.
func (c *HTTPClient) GetEnvironments(ctx context.Context, project *model.Project) (model.Collection[*model.Environment], error) {
	var resp []environmentSchema
	if err := c.get(ctx, fmt.Sprintf("/projects/%d/environments", project.ID()), nil, &resp); err != nil {
		return model.Collection[*model.Environment]{}, err
	}
	return collect(resp, func(s *environmentSchema) *model.Environment {
		return s.toModel(project)
	}), nil
}

// CreateEnvironment creates an environment in a project.
func (c *HTTPClient) CreateEnvironment(ctx context.Context, project *model.Project, name string) (*model.Environment, error) {
	var resp environmentSchema
	if err := c.post(ctx, fmt.Sprintf("/projects/%d/environments", project.ID()), map[string]string{"name": name}, &resp); err != nil {
		return nil, err
	}
	return resp.toModel(project), nil
}
