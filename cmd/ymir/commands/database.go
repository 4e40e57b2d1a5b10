package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/ymir/cmd/ymir/handlers"
	"github.com/imamik/ymir/internal/resource"
)

// Database returns the database command group, including database servers
// and users.
func Database(g *handlers.Globals) *cobra.Command {
	create := createCommand(g, "create [name]", "Create a new database on a database server", resource.KindDatabase, "name")
	create.Flags().String("server", "", "Database server ID or name")

	info := infoCommand(g, resource.KindDatabase, "database")
	info.Flags().String("server", "", "Database server ID or name")

	server := group("server", "Manage database servers",
		databaseServerCreate(g),
		infoCommand(g, resource.KindDatabaseServer, "server"),
	)

	userCreate := createCommand(g, "create [username]", "Create a new user on a database server", resource.KindDatabaseUser, "username")
	userCreate.Flags().String("server", "", "Database server ID or name")
	userCreate.Flags().StringSlice("databases", nil, "Databases the user can access (default: all)")

	return group("database", "Manage databases",
		create,
		info,
		server,
		group("user", "Manage database users", userCreate),
	)
}

func databaseServerCreate(g *handlers.Globals) *cobra.Command {
	cmd := createCommand(g, "create [name]", "Create a new database server", resource.KindDatabaseServer, "name")

	cmd.Flags().String("network", "", "Network ID or name to create the server on")
	cmd.Flags().String("type", "", "Database server type")
	cmd.Flags().Int("storage", 50, "Maximum storage in GB")
	cmd.Flags().Bool("public", false, "Make the server publicly accessible")
	cmd.Flags().Bool("private", false, "Keep the server inside its network")
	cmd.MarkFlagsMutuallyExclusive("public", "private")

	return cmd
}
