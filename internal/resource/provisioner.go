package resource

import (
	"context"
	"errors"
	"time"

	"github.com/go-logr/logr"

	"github.com/imamik/ymir/internal/model"
)

// Runner runs a creation call, e.g. behind a progress indicator.
type Runner interface {
	Run(ctx context.Context, title string, fn func(context.Context) error) error
}

// RunnerFunc adapts a function to Runner.
type RunnerFunc func(ctx context.Context, title string, fn func(context.Context) error) error

// Run implements Runner.
func (f RunnerFunc) Run(ctx context.Context, title string, fn func(context.Context) error) error {
	return f(ctx, title, fn)
}

func runDirect(ctx context.Context, _ string, fn func(context.Context) error) error {
	return fn(ctx)
}

// Provisioner fulfills the requirements of a definition in order and then
// calls its creation call. It performs no retries and no rollback.
type Provisioner struct {
	logger logr.Logger
	runner Runner
}

// NewProvisioner creates a provisioner. A nil runner runs creation calls
// directly.
func NewProvisioner(logger logr.Logger, runner Runner) *Provisioner {
	if runner == nil {
		runner = RunnerFunc(runDirect)
	}
	return &Provisioner{logger: logger, runner: runner}
}

// Provision creates a resource. Requirements whose name is a key of presets
// are skipped. If a requirement returns ErrCancelled the definition's
// creation call is never made and (nil, ErrCancelled) is returned. Any other
// error is returned unmodified.
func (p *Provisioner) Provision(ctx *Context, def ProvisionableDefinition, presets Fulfilled) (model.Resource, error) {
	kind := def.Kind()
	log := p.logger.WithValues("kind", string(kind))
	fulfilled := presets.Clone()

	for _, req := range def.Requirements() {
		if fulfilled.Has(req.Name) {
			log.V(1).Info("requirement preset", "requirement", req.Name)
			continue
		}

		value, err := req.Requirement.Fulfill(ctx, fulfilled)
		if errors.Is(err, ErrCancelled) {
			log.V(1).Info("provisioning cancelled", "requirement", req.Name)
			return nil, ErrCancelled
		}
		if err != nil {
			return nil, err
		}

		fulfilled[req.Name] = value
		log.V(1).Info("requirement fulfilled", "requirement", req.Name)
	}

	start := time.Now()
	var created model.Resource
	err := p.runner.Run(ctx, "Creating "+kind.Label(), func(runCtx context.Context) error {
		var err error
		created, err = def.Provision(runCtx, ctx.Client(), fulfilled)
		return err
	})
	if err != nil {
		return nil, err
	}

	log.V(1).Info("resource created", "id", created.ID(), "name", created.Name(),
		"duration", time.Since(start).Round(time.Millisecond).String())
	return created, nil
}
