package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/ymir/cmd/ymir/handlers"
	"github.com/imamik/ymir/internal/resource"
)

// Provider returns the cloud provider command group.
func Provider(g *handlers.Globals) *cobra.Command {
	connect := createCommand(g, "connect [name]", "Connect a cloud provider to the active team", resource.KindCloudProvider, "name")
	connect.Flags().String("profile", "", "AWS credentials profile to use")
	connect.Flags().String("key", "", "AWS access key ID; the secret is prompted")

	return group("provider", "Manage cloud providers",
		connect,
		infoCommand(g, resource.KindCloudProvider, "provider"),
	)
}
