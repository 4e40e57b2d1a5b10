package resource

import (
	"context"
	"fmt"

	"github.com/go-logr/logr"

	"github.com/imamik/ymir/internal/api"
	"github.com/imamik/ymir/internal/console"
	"github.com/imamik/ymir/internal/input"
	"github.com/imamik/ymir/internal/model"
)

// ContextConfig holds the collaborators of a Context.
type ContextConfig struct {
	Team       *model.Team
	Project    *model.Project
	ProjectDir string
	Input      input.Input
	Console    console.Console
	Client     api.Client
	Locator    *Locator
	Logger     logr.Logger
	// Runner wraps creation calls. Calls run directly when nil.
	Runner Runner
}

// Context is the per-command execution context. It is never mutated once
// created; the With* methods return modified copies.
type Context struct {
	context.Context

	team        *model.Team
	project     *model.Project
	parent      model.Resource
	projectDir  string
	input       input.Input
	console     console.Console
	client      api.Client
	locator     *Locator
	provisioner *Provisioner
	logger      logr.Logger
}

// NewContext creates a Context for a command invocation.
func NewContext(parent context.Context, cfg ContextConfig) *Context {
	in := cfg.Input
	if in == nil {
		in = input.Empty()
	}
	logger := cfg.Logger
	if logger.GetSink() == nil {
		logger = logr.Discard()
	}
	locator := cfg.Locator
	if locator == nil {
		locator = NewLocator()
	}
	return &Context{
		Context:     parent,
		team:        cfg.Team,
		project:     cfg.Project,
		projectDir:  cfg.ProjectDir,
		input:       in,
		console:     cfg.Console,
		client:      cfg.Client,
		locator:     locator,
		provisioner: NewProvisioner(logger, cfg.Runner),
		logger:      logger,
	}
}

// Team returns the active team, or nil.
func (c *Context) Team() *model.Team { return c.team }

// Project returns the active project, or nil.
func (c *Context) Project() *model.Project { return c.project }

// ParentResource returns the resource the context is scoped under, or nil.
func (c *Context) ParentResource() model.Resource { return c.parent }

// ProjectDir returns the directory holding ymir.yml, or "".
func (c *Context) ProjectDir() string { return c.projectDir }

// Input returns the command input.
func (c *Context) Input() input.Input { return c.input }

// Console returns the console.
func (c *Context) Console() console.Console { return c.console }

// Client returns the API client.
func (c *Context) Client() api.Client { return c.client }

// Logger returns the logger.
func (c *Context) Logger() logr.Logger { return c.logger }

// TeamOrFail returns the active team or a StateError naming the command
// that selects one.
func (c *Context) TeamOrFail() (*model.Team, error) {
	if c.team == nil {
		return nil, NewStateError("You do not have a currently active team, but you can select a team using the %q command", "team select")
	}
	return c.team, nil
}

// ProjectOrFail returns the active project or a StateError naming the
// command that initializes one.
func (c *Context) ProjectOrFail() (*model.Project, error) {
	if c.project == nil {
		return nil, NewStateError("No ymir.yml file found in the current directory, but you can initialize a project using the %q command", "project init")
	}
	return c.project, nil
}

// WithParentResource returns a copy scoped under parent.
func (c *Context) WithParentResource(parent model.Resource) *Context {
	cp := *c
	cp.parent = parent
	return &cp
}

// WithProject returns a copy with project as the active project.
func (c *Context) WithProject(project *model.Project) *Context {
	cp := *c
	cp.project = project
	return &cp
}

// WithInput returns a copy reading from in.
func (c *Context) WithInput(in input.Input) *Context {
	cp := *c
	cp.input = in
	return &cp
}

// Fulfill fulfills a single requirement given preset values.
func (c *Context) Fulfill(req Requirement, presets Fulfilled) (any, error) {
	return req.Fulfill(c, presets.Clone())
}

// Resolve resolves an existing resource of kind.
func (c *Context) Resolve(kind Kind, question string, filters Filters) (model.Resource, error) {
	def, err := c.locator.Resolvable(kind)
	if err != nil {
		return nil, err
	}
	return def.Resolve(c, question, filters)
}

// Provision provisions a resource of kind. Presets are used as fulfilled
// values and never prompted for. When parent is non-nil the requirements run
// scoped under it. A declined confirmation returns ErrCancelled.
func (c *Context) Provision(kind Kind, presets Fulfilled, parent model.Resource) (model.Resource, error) {
	def, err := c.locator.Provisionable(kind)
	if err != nil {
		return nil, err
	}
	ctx := c
	if parent != nil {
		ctx = c.WithParentResource(parent)
	}
	return c.provisioner.Provision(ctx, def, presets)
}

// ResolveAs resolves a resource of kind as a T.
func ResolveAs[T model.Resource](ctx *Context, kind Kind, question string, filters Filters) (T, error) {
	resource, err := ctx.Resolve(kind, question, filters)
	if err != nil {
		var zero T
		return zero, err
	}
	return as[T](kind, resource)
}

// ProvisionAs provisions a resource of kind as a T.
func ProvisionAs[T model.Resource](ctx *Context, kind Kind, presets Fulfilled, parent model.Resource) (T, error) {
	resource, err := ctx.Provision(kind, presets, parent)
	if err != nil {
		var zero T
		return zero, err
	}
	return as[T](kind, resource)
}

func as[T model.Resource](kind Kind, resource model.Resource) (T, error) {
	typed, ok := resource.(T)
	if !ok {
		var zero T
		return zero, fmt.Errorf("%s definition returned a %T, not a %T", kind, resource, zero)
	}
	return typed, nil
}
