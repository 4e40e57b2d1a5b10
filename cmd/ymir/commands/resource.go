package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/ymir/cmd/ymir/handlers"
	"github.com/imamik/ymir/internal/input"
	"github.com/imamik/ymir/internal/resource"
)

// createCommand returns a command provisioning a resource of kind. The
// positional arguments are named by argNames.
func createCommand(g *handlers.Globals, use, short string, kind resource.Kind, argNames ...string) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.MaximumNArgs(len(argNames)),
		RunE: func(cmd *cobra.Command, args []string) error {
			return handlers.Create(cmd.Context(), g, kind, input.NewCommand(cmd.Flags(), args, argNames...))
		},
	}
}

// infoCommand returns a command printing the details of a resource of kind.
// Its single positional argument is the ID or name of the resource.
func infoCommand(g *handlers.Globals, kind resource.Kind, argument string) *cobra.Command {
	return &cobra.Command{
		Use:   "info [" + argument + "]",
		Short: "Get information on a " + kind.Label(),
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return handlers.Info(cmd.Context(), g, kind, input.NewCommand(cmd.Flags(), args, argument))
		},
	}
}
