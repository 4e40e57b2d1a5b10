// Package handlers implements the execution of every ymir command.
//
// Handlers build a resource.Context from the CLI settings, the project
// configuration of the working directory and the command input, then
// resolve or provision resources through it.
package handlers

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-logr/logr"
	"github.com/go-logr/logr/funcr"

	"github.com/imamik/ymir/internal/api"
	"github.com/imamik/ymir/internal/cloud/aws"
	"github.com/imamik/ymir/internal/config"
	"github.com/imamik/ymir/internal/console"
	"github.com/imamik/ymir/internal/input"
	"github.com/imamik/ymir/internal/model"
	"github.com/imamik/ymir/internal/resource"
	"github.com/imamik/ymir/internal/resource/definition"
	"github.com/imamik/ymir/internal/resource/requirement"
	"github.com/imamik/ymir/internal/ui/tui"
	"github.com/imamik/ymir/internal/util/async"
	"github.com/imamik/ymir/internal/util/retry"
)

// Globals holds the options shared by every command.
type Globals struct {
	NoInteraction bool
	Verbosity     int
}

// Factory function variables - can be replaced in tests.
var (
	// loadSettings loads the CLI settings.
	loadSettings = config.LoadSettings

	// newAPIClient creates the API client.
	newAPIClient = func(settings *config.Settings, logger logr.Logger) api.Client {
		return api.NewHTTPClient(settings.APIURL,
			api.WithToken(settings.Token()),
			api.WithTimeout(settings.Timeouts.HTTP),
			api.WithRetryPolicy(retryPolicy(settings.Timeouts.Attempts)),
			api.WithLogger(logger))
	}

	// newConsole creates the console used for prompts and output.
	newConsole = func(interactive bool) console.Console {
		return console.NewHuh(os.Stdout, interactive)
	}

	// newRunner creates the progress display wrapping creation calls.
	newRunner = func(interactive bool) resource.Runner {
		return tui.NewRunner(os.Stdout, interactive)
	}

	// newCredentials creates the AWS credentials source.
	newCredentials = func() requirement.CredentialsSource {
		return aws.NewClient()
	}

	// isTerminal reports whether prompts can be shown.
	isTerminal = console.IsTerminal

	// workingDir returns the project directory.
	workingDir = os.Getwd

	// logOutput receives log lines.
	logOutput io.Writer = os.Stderr
)

func retryPolicy(attempts int) retry.Policy {
	p := retry.DefaultPolicy()
	p.Attempts = attempts
	return p
}

// session bundles the collaborators of a single command run.
type session struct {
	settings *config.Settings
	client   api.Client
	console  console.Console
	logger   logr.Logger
	dir      string
	project  *config.ProjectConfig
}

func newLogger(verbosity int) logr.Logger {
	return funcr.New(func(prefix, args string) {
		if prefix != "" {
			_, _ = fmt.Fprintf(logOutput, "%s: %s\n", prefix, args)
			return
		}
		_, _ = fmt.Fprintln(logOutput, args)
	}, funcr.Options{Verbosity: verbosity})
}

// newSession loads the settings and the project configuration of the
// working directory, when there is one.
func newSession(g *Globals) (*session, error) {
	settings, err := loadSettings()
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	dir, err := workingDir()
	if err != nil {
		return nil, fmt.Errorf("failed to determine working directory: %w", err)
	}

	project, err := config.LoadProject(dir)
	if err != nil && !errors.Is(err, config.ErrNoProject) {
		return nil, err
	}

	logger := newLogger(g.Verbosity)
	return &session{
		settings: settings,
		client:   newAPIClient(settings, logger),
		console:  newConsole(!g.NoInteraction && isTerminal()),
		logger:   logger,
		dir:      dir,
		project:  project,
	}, nil
}

// requireAuth fails unless a token is configured.
func (s *session) requireAuth() error {
	if s.settings.Token() == "" {
		return resource.NewStateError("You must be logged in to run this command, use the \"login\" command")
	}
	return nil
}

// resourceContext builds the execution context of a command: the active
// team and the project of the working directory are fetched up front. A
// team or project that is gone or forbidden is left unset with a warning so
// that commands like "team select" still run.
func (s *session) resourceContext(ctx context.Context, in input.Input) (*resource.Context, error) {
	if err := s.requireAuth(); err != nil {
		return nil, err
	}

	var (
		team        *model.Team
		project     *model.Project
		teamGone    bool
		projectGone bool
		tasks       []async.Task
	)
	if id := s.settings.ActiveTeam(); id != 0 {
		tasks = append(tasks, async.Task{Name: "fetch the active team", Func: func(ctx context.Context) error {
			fetched, err := s.client.GetTeam(ctx, id)
			if api.IsInaccessible(err) {
				s.logger.V(1).Info("active team is inaccessible", "team", id, "error", err.Error())
				teamGone = true
				return nil
			}
			team = fetched
			return err
		}})
	}
	if s.project != nil {
		cfg := s.project
		tasks = append(tasks, async.Task{Name: fmt.Sprintf("fetch project %q", cfg.Name), Func: func(ctx context.Context) error {
			fetched, err := s.client.GetProject(ctx, cfg.ID)
			if api.IsInaccessible(err) {
				s.logger.V(1).Info("project is inaccessible", "project", cfg.ID, "error", err.Error())
				projectGone = true
				return nil
			}
			project = fetched
			return err
		}})
	}
	if err := async.Run(ctx, tasks...); err != nil {
		return nil, err
	}
	if teamGone {
		s.console.Warn("Your active team no longer exists or you lost access to it, use the %q command to select another one", "team select")
	}
	if projectGone {
		s.console.Warn("The project %q of %s no longer exists or you lost access to it", s.project.Name, config.ProjectFileName)
	}

	return resource.NewContext(ctx, resource.ContextConfig{
		Team:       team,
		Project:    project,
		ProjectDir: s.dir,
		Input:      in,
		Console:    s.console,
		Client:     s.client,
		Locator:    definition.NewLocator(newCredentials()),
		Logger:     s.logger,
		Runner:     newRunner(s.console.Interactive()),
	}), nil
}
