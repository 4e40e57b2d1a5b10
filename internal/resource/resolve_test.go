package resource

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imamik/ymir/internal/console"
	"github.com/imamik/ymir/internal/input"
	"github.com/imamik/ymir/internal/model"
)

func networkResolver(networks ...*model.Network) Resolver[*model.Network] {
	return Resolver[*model.Network]{
		Kind:     KindNetwork,
		Argument: "network",
		Option:   "network",
		Fetch: func(*Context) (model.Collection[*model.Network], error) {
			return model.NewCollection(networks...), nil
		},
	}
}

var (
	east = &model.Network{Identifier: 1, Label: "east", Region: "us-east-1"}
	west = &model.Network{Identifier: 2, Label: "west", Region: "us-west-2"}
)

func TestResolver_ExplicitArgumentSkipsPrompt(t *testing.T) {
	scripted := console.NewScripted()
	in := input.Values{Arguments: map[string][]string{"network": {"west"}}}
	ctx, _ := newTestContext(t, in, scripted)

	found, err := networkResolver(east, west).Resolve(ctx, "Which network?", nil)
	require.NoError(t, err)
	assert.Same(t, west, found)
	assert.Empty(t, scripted.Asked)
}

func TestResolver_ExplicitOptionByID(t *testing.T) {
	scripted := console.NewScripted()
	in := input.Values{Options: map[string]any{"network": "1"}}
	ctx, _ := newTestContext(t, in, scripted)

	found, err := networkResolver(east, west).Resolve(ctx, "Which network?", nil)
	require.NoError(t, err)
	assert.Same(t, east, found)
	assert.Empty(t, scripted.Asked)
}

func TestResolver_ArgumentWinsOverOption(t *testing.T) {
	in := input.Values{
		Arguments: map[string][]string{"network": {"east"}},
		Options:   map[string]any{"network": "west"},
	}
	ctx, _ := newTestContext(t, in, console.NewScripted())

	found, err := networkResolver(east, west).Resolve(ctx, "Which network?", nil)
	require.NoError(t, err)
	assert.Same(t, east, found)
}

func TestResolver_Fallback(t *testing.T) {
	scripted := console.NewScripted()
	ctx, _ := newTestContext(t, input.Empty(), scripted)

	r := networkResolver(east, west)
	r.Fallback = func(*Context) string { return "2" }

	found, err := r.Resolve(ctx, "Which network?", nil)
	require.NoError(t, err)
	assert.Same(t, west, found)
	assert.Empty(t, scripted.Asked)
}

func TestResolver_InteractiveChoiceOverFilteredCollection(t *testing.T) {
	scripted := console.NewScripted("2")
	ctx, _ := newTestContext(t, input.Empty(), scripted)

	found, err := networkResolver(east, west).Resolve(ctx, "Which network?", Filters{"region": "us-west-2"})
	require.NoError(t, err)
	assert.Same(t, west, found)
	require.Len(t, scripted.Offered, 1)
	assert.Equal(t, []string{"2"}, scripted.Offered[0])
}

func TestResolver_NameCollision(t *testing.T) {
	duplicate := &model.Network{Identifier: 3, Label: "east"}
	in := input.Values{Arguments: map[string][]string{"network": {"east"}}}
	ctx, _ := newTestContext(t, in, console.NewScripted())

	_, err := networkResolver(east, duplicate).Resolve(ctx, "Which network?", nil)
	var resErr *ResolutionError
	require.True(t, errors.As(err, &resErr))
	assert.Equal(t, "east", resErr.Name)
	assert.Equal(t, `Unable to select a network because more than one network has the name "east"`, err.Error())
}

func TestResolver_EmptyCollection(t *testing.T) {
	in := input.Values{Arguments: map[string][]string{"network": {"east"}}}
	ctx, _ := newTestContext(t, in, console.NewScripted())

	_, err := networkResolver().Resolve(ctx, "Which network?", nil)
	require.True(t, IsNoResourcesFound(err))
	assert.Contains(t, err.Error(), `"network create" command`)
}

func TestResolver_EmptyAfterFilter(t *testing.T) {
	ctx, _ := newTestContext(t, input.Empty(), console.NewScripted())

	_, err := networkResolver(east).Resolve(ctx, "Which network?", Filters{"region": "eu-west-1"})
	assert.True(t, IsNoResourcesFound(err))
}

func TestResolver_NotFound(t *testing.T) {
	in := input.Values{Arguments: map[string][]string{"network": {"123"}}}
	ctx, _ := newTestContext(t, in, console.NewScripted())

	_, err := networkResolver(east).Resolve(ctx, "Which network?", nil)
	var notFound *NotFoundError
	require.True(t, errors.As(err, &notFound))
	assert.Equal(t, `Unable to find a network with "123" as the ID or name`, err.Error())
}

func TestResolver_BlankChoice(t *testing.T) {
	ctx, _ := newTestContext(t, input.Empty(), console.NewScripted("  "))

	_, err := networkResolver(east).Resolve(ctx, "Which network?", nil)
	var validation *ValidationError
	require.True(t, errors.As(err, &validation))
	assert.Equal(t, "You must provide a network ID or name", err.Error())
}

func TestResolver_FetchErrorPropagates(t *testing.T) {
	ctx, _ := newTestContext(t, input.Empty(), console.NewScripted())
	r := Resolver[*model.Network]{
		Kind: KindNetwork,
		Fetch: func(*Context) (model.Collection[*model.Network], error) {
			return model.Collection[*model.Network]{}, errBoom
		},
	}

	_, err := r.Resolve(ctx, "Which network?", nil)
	assert.Same(t, errBoom, err)
}
