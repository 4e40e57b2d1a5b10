package handlers

import (
	"context"
	"io"
	"testing"

	"github.com/go-logr/logr"
	"github.com/stretchr/testify/require"

	"github.com/imamik/ymir/internal/api"
	"github.com/imamik/ymir/internal/api/mock"
	"github.com/imamik/ymir/internal/config"
	"github.com/imamik/ymir/internal/console"
	"github.com/imamik/ymir/internal/model"
	"github.com/imamik/ymir/internal/resource"
	"github.com/imamik/ymir/internal/resource/requirement"
)

var testTeam = &model.Team{Identifier: 1, Label: "acme"}

type fixture struct {
	client   *mock.Client
	console  *console.Scripted
	dir      string
	settings string
}

type acceptAllCredentials struct{}

func (acceptAllCredentials) LoadProfile(context.Context, string) (api.AwsCredentials, error) {
	return api.AwsCredentials{Key: "AKIA", Secret: "secret"}, nil
}

func (acceptAllCredentials) Verify(context.Context, api.AwsCredentials) error { return nil }

// setup replaces the factory variables with test doubles. The settings are
// stored in a temporary directory holding a token and team 1 as active team
// unless loggedIn is false.
func setup(t *testing.T, loggedIn bool, answers ...any) *fixture {
	t.Helper()
	t.Setenv("YMIR_API_TOKEN", "")
	t.Setenv("YMIR_TEAM", "")
	t.Setenv("YMIR_API_URL", "")

	f := &fixture{
		client: &mock.Client{
			GetTeamFunc: func(_ context.Context, id int) (*model.Team, error) {
				return &model.Team{Identifier: id, Label: "acme"}, nil
			},
		},
		console:  console.NewScripted(answers...),
		dir:      t.TempDir(),
		settings: t.TempDir(),
	}

	if loggedIn {
		settings, err := config.LoadSettingsFrom(f.settings)
		require.NoError(t, err)
		settings.SetToken("token")
		settings.SetActiveTeam(testTeam.ID())
		require.NoError(t, settings.Save())
	}

	origSettings, origClient, origConsole := loadSettings, newAPIClient, newConsole
	origRunner, origCreds, origTerminal := newRunner, newCredentials, isTerminal
	origDir, origLog := workingDir, logOutput
	t.Cleanup(func() {
		loadSettings, newAPIClient, newConsole = origSettings, origClient, origConsole
		newRunner, newCredentials, isTerminal = origRunner, origCreds, origTerminal
		workingDir, logOutput = origDir, origLog
	})

	loadSettings = func() (*config.Settings, error) { return config.LoadSettingsFrom(f.settings) }
	newAPIClient = func(*config.Settings, logr.Logger) api.Client { return f.client }
	newConsole = func(bool) console.Console { return f.console }
	newRunner = func(bool) resource.Runner { return nil }
	newCredentials = func() requirement.CredentialsSource { return acceptAllCredentials{} }
	isTerminal = func() bool { return false }
	workingDir = func() (string, error) { return f.dir, nil }
	logOutput = io.Discard

	return f
}

func (f *fixture) savedSettings(t *testing.T) *config.Settings {
	t.Helper()
	settings, err := config.LoadSettingsFrom(f.settings)
	require.NoError(t, err)
	return settings
}
