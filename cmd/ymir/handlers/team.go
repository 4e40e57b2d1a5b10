package handlers

import (
	"context"

	"github.com/imamik/ymir/internal/input"
	"github.com/imamik/ymir/internal/model"
	"github.com/imamik/ymir/internal/resource"
)

// TeamSelect switches the active team.
func TeamSelect(ctx context.Context, g *Globals, in input.Input) error {
	s, err := newSession(g)
	if err != nil {
		return err
	}
	rctx, err := s.resourceContext(ctx, in)
	if err != nil {
		return err
	}

	team, err := resource.ResolveAs[*model.Team](rctx, resource.KindTeam, "Which team would you like to switch to?", nil)
	if err != nil {
		return err
	}

	s.settings.SetActiveTeam(team.ID())
	if err := s.settings.Save(); err != nil {
		return err
	}

	s.console.Success("Your active team is now %q", team.Name())
	return nil
}

// TeamCurrent prints the active team.
func TeamCurrent(ctx context.Context, g *Globals) error {
	s, err := newSession(g)
	if err != nil {
		return err
	}
	rctx, err := s.resourceContext(ctx, input.Empty())
	if err != nil {
		return err
	}

	team, err := rctx.TeamOrFail()
	if err != nil {
		return err
	}

	printDetails(s.console, team)
	return nil
}
