package handlers

import (
	"context"
	"errors"
	"strings"

	"github.com/imamik/ymir/internal/api"
	"github.com/imamik/ymir/internal/input"
	"github.com/imamik/ymir/internal/resource"
)

func required(thing string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return resource.NewValidationError("You must enter your %s", thing)
		}
		return nil
	}
}

// Login exchanges the user's email and password for an access token and
// stores it. The first team of the user becomes the active team.
func Login(ctx context.Context, g *Globals, in input.Input) error {
	s, err := newSession(g)
	if err != nil {
		return err
	}

	email := in.StringOption("email")
	if email == "" {
		if email, err = s.console.Ask(ctx, "Enter your email", "", required("email")); err != nil {
			return err
		}
	}
	password, err := s.console.AskHidden(ctx, "Enter your password")
	if err != nil {
		return err
	}
	if err := required("password")(password); err != nil {
		return err
	}

	token, err := s.client.GetAccessToken(ctx, email, password, "")
	if needsAuthenticationCode(err) {
		code, askErr := s.console.Ask(ctx, "Enter your authentication code", "", required("authentication code"))
		if askErr != nil {
			return askErr
		}
		token, err = s.client.GetAccessToken(ctx, email, password, code)
		if needsAuthenticationCode(err) {
			return resource.NewValidationError("The authentication code you entered is invalid")
		}
	}
	if api.IsUnauthorized(err) || api.IsValidation(err) {
		return resource.NewValidationError("The email or password you entered is invalid")
	}
	if err != nil {
		return err
	}

	s.settings.SetToken(token)

	// The stored team may belong to a previous account.
	teams, err := newAPIClient(s.settings, s.logger).GetTeams(ctx)
	if err != nil {
		return err
	}
	activeTeam := 0
	if first, ok := teams.First(); ok {
		activeTeam = first.ID()
	}
	s.settings.SetActiveTeam(activeTeam)

	if err := s.settings.Save(); err != nil {
		return err
	}

	s.console.Success("Logged in successfully")
	return nil
}

func needsAuthenticationCode(err error) bool {
	var apiErr *api.Error
	if !errors.As(err, &apiErr) {
		return false
	}
	_, ok := apiErr.Errors["authentication_code"]
	return ok
}
