package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/ymir/cmd/ymir/handlers"
	"github.com/imamik/ymir/internal/input"
)

// Login returns the command storing an API token.
func Login(g *handlers.Globals) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Authenticate with the Ymir API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return handlers.Login(cmd.Context(), g, input.NewCommand(cmd.Flags(), args))
		},
	}

	cmd.Flags().String("email", "", "Email address of your Ymir account")

	return cmd
}
