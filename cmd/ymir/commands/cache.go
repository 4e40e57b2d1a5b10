package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/ymir/cmd/ymir/handlers"
	"github.com/imamik/ymir/internal/resource"
)

// Cache returns the cache cluster command group.
func Cache(g *handlers.Globals) *cobra.Command {
	create := createCommand(g, "create [name]", "Create a new cache cluster", resource.KindCacheCluster, "name")
	create.Flags().String("engine", "", "Cache engine (redis or valkey)")
	create.Flags().String("network", "", "Network ID or name to create the cluster on")
	create.Flags().String("type", "", "Cache cluster type")

	return group("cache", "Manage cache clusters",
		create,
		infoCommand(g, resource.KindCacheCluster, "cache"),
	)
}
