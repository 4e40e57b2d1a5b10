package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/ymir/cmd/ymir/handlers"
	"github.com/imamik/ymir/internal/resource"
)

// Email returns the email command group.
func Email(g *handlers.Globals) *cobra.Command {
	create := createCommand(g, "create [name]", "Create a new email identity", resource.KindEmailIdentity, "name")
	create.Flags().String("provider", "", "Cloud provider ID or name")
	create.Flags().String("region", "", "Region to create the identity in")

	identity := group("identity", "Manage email identities",
		create,
		infoCommand(g, resource.KindEmailIdentity, "identity"),
	)

	return group("email", "Manage email sending", identity)
}
