package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/ymir/cmd/ymir/handlers"
	"github.com/imamik/ymir/internal/input"
	"github.com/imamik/ymir/internal/resource"
)

// Team returns the team command group.
func Team(g *handlers.Globals) *cobra.Command {
	return group("team", "Manage teams",
		createCommand(g, "create [name]", "Create a new team", resource.KindTeam, "name"),
		teamSelect(g),
		teamCurrent(g),
		infoCommand(g, resource.KindTeam, "team"),
	)
}

func teamSelect(g *handlers.Globals) *cobra.Command {
	return &cobra.Command{
		Use:   "select [team]",
		Short: "Select a new active team",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return handlers.TeamSelect(cmd.Context(), g, input.NewCommand(cmd.Flags(), args, "team"))
		},
	}
}

func teamCurrent(g *handlers.Globals) *cobra.Command {
	return &cobra.Command{
		Use:   "current",
		Short: "Get the details on your currently active team",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.TeamCurrent(cmd.Context(), g)
		},
	}
}
