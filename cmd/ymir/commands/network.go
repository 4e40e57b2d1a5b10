package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/ymir/cmd/ymir/handlers"
	"github.com/imamik/ymir/internal/input"
	"github.com/imamik/ymir/internal/resource"
)

// Network returns the network command group.
func Network(g *handlers.Globals) *cobra.Command {
	create := createCommand(g, "create [name]", "Create a new network", resource.KindNetwork, "name")
	create.Flags().String("provider", "", "Cloud provider ID or name")
	create.Flags().String("region", "", "Region to create the network in")

	nat := group("nat", "Manage the NAT gateway of a network", natAdd(g))

	return group("network", "Manage networks",
		create,
		infoCommand(g, resource.KindNetwork, "network"),
		nat,
	)
}

func natAdd(g *handlers.Globals) *cobra.Command {
	return &cobra.Command{
		Use:   "add [network]",
		Short: "Add a NAT gateway to a network",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return handlers.NatAdd(cmd.Context(), g, input.NewCommand(cmd.Flags(), args, "network"))
		},
	}
}
