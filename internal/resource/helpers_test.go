package resource

import (
	"context"
	"errors"
	"testing"

	"github.com/imamik/ymir/internal/api"
	"github.com/imamik/ymir/internal/api/mock"
	"github.com/imamik/ymir/internal/console"
	"github.com/imamik/ymir/internal/input"
	"github.com/imamik/ymir/internal/model"
)

var testTeam = &model.Team{Identifier: 1, Label: "acme"}

func newTestContext(t *testing.T, in input.Input, c console.Console, defs ...Definition) (*Context, *mock.Client) {
	t.Helper()
	client := &mock.Client{}
	ctx := NewContext(context.Background(), ContextConfig{
		Team:    testTeam,
		Input:   in,
		Console: c,
		Client:  client,
		Locator: NewLocator(defs...),
	})
	return ctx, client
}

// fakeDefinition records provisioning calls and resolves from a fixed list.
type fakeDefinition struct {
	kind         Kind
	requirements []NamedRequirement
	networks     []*model.Network
	provisioned  []Fulfilled
}

func (d *fakeDefinition) Kind() Kind { return d.kind }

func (d *fakeDefinition) Requirements() []NamedRequirement { return d.requirements }

func (d *fakeDefinition) Provision(ctx context.Context, client api.Client, fulfilled Fulfilled) (model.Resource, error) {
	d.provisioned = append(d.provisioned, fulfilled)
	name, err := fulfilled.String("name")
	if err != nil {
		return nil, err
	}
	return client.CreateNetwork(ctx, &model.CloudProvider{Identifier: 1}, name, "us-east-1")
}

func (d *fakeDefinition) Resolve(ctx *Context, question string, filters Filters) (model.Resource, error) {
	return Resolver[*model.Network]{
		Kind:     d.kind,
		Argument: "network",
		Fetch: func(*Context) (model.Collection[*model.Network], error) {
			return model.NewCollection(d.networks...), nil
		},
	}.Resolve(ctx, question, filters)
}

// recordingRequirement returns a fixed value and counts its calls.
type recordingRequirement struct {
	value any
	err   error
	calls int
	seen  []Fulfilled
}

func (r *recordingRequirement) Fulfill(_ *Context, fulfilled Fulfilled) (any, error) {
	r.calls++
	r.seen = append(r.seen, fulfilled.Clone())
	return r.value, r.err
}

var errBoom = errors.New("boom")

func newMockWithNetwork() *mock.Client {
	return &mock.Client{CreateNetworkFunc: createNetwork}
}
