package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/ymir/cmd/ymir/handlers"
	"github.com/imamik/ymir/internal/resource"
)

// DNS returns the DNS command group.
func DNS(g *handlers.Globals) *cobra.Command {
	create := createCommand(g, "create [name]", "Create a new DNS zone", resource.KindDnsZone, "name")
	create.Flags().String("provider", "", "Cloud provider ID or name")

	zone := group("zone", "Manage DNS zones",
		create,
		infoCommand(g, resource.KindDnsZone, "zone"),
	)

	return group("dns", "Manage DNS", zone)
}
