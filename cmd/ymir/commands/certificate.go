package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/ymir/cmd/ymir/handlers"
	"github.com/imamik/ymir/internal/resource"
)

// Certificate returns the SSL certificate command group.
func Certificate(g *handlers.Globals) *cobra.Command {
	request := createCommand(g, "request [domains...]", "Request a new SSL certificate", resource.KindCertificate, "domains")
	request.Args = cobra.ArbitraryArgs
	request.Flags().String("provider", "", "Cloud provider ID or name")
	request.Flags().String("region", "", "Region to request the certificate in")

	return group("certificate", "Manage SSL certificates",
		request,
		infoCommand(g, resource.KindCertificate, "certificate"),
	)
}
