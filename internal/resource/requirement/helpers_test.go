package requirement

import (
	"context"
	"errors"
	"testing"

	"github.com/imamik/ymir/internal/api"
	"github.com/imamik/ymir/internal/api/mock"
	"github.com/imamik/ymir/internal/console"
	"github.com/imamik/ymir/internal/input"
	"github.com/imamik/ymir/internal/model"
	"github.com/imamik/ymir/internal/resource"
)

var (
	testTeam     = &model.Team{Identifier: 1, Label: "acme"}
	testProvider = &model.CloudProvider{Identifier: 3, Label: "aws", Team: testTeam}
)

func newContext(t *testing.T, in input.Input, c console.Console, client *mock.Client) *resource.Context {
	t.Helper()
	if in == nil {
		in = input.Empty()
	}
	if client == nil {
		client = &mock.Client{}
	}
	return resource.NewContext(context.Background(), resource.ContextConfig{
		Team:    testTeam,
		Input:   in,
		Console: c,
		Client:  client,
	})
}

func options(values map[string]any) input.Values {
	return input.Values{Options: values}
}

var errProfileNotFound = errors.New("profile not found")

// fakeCredentials is a CredentialsSource returning fixed values.
type fakeCredentials struct {
	profiles  map[string]api.AwsCredentials
	verifyErr error
	verified  []api.AwsCredentials
}

func (f *fakeCredentials) LoadProfile(_ context.Context, profile string) (api.AwsCredentials, error) {
	creds, ok := f.profiles[profile]
	if !ok {
		return api.AwsCredentials{}, errProfileNotFound
	}
	return creds, nil
}

func (f *fakeCredentials) Verify(_ context.Context, creds api.AwsCredentials) error {
	f.verified = append(f.verified, creds)
	return f.verifyErr
}
