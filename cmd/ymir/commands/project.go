package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/ymir/cmd/ymir/handlers"
	"github.com/imamik/ymir/internal/input"
	"github.com/imamik/ymir/internal/resource"
)

// Project returns the project command group.
func Project(g *handlers.Globals) *cobra.Command {
	return group("project", "Manage projects",
		projectInit(g),
		infoCommand(g, resource.KindProject, "project"),
	)
}

func projectInit(g *handlers.Globals) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init [name]",
		Short: "Initialize a new project in the current directory",
		Long: `Create a new project and write its ymir.yml configuration file
to the current directory.

The project starts with the "staging" and "production" environments
unless --environment is given.
`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return handlers.ProjectInit(cmd.Context(), g, input.NewCommand(cmd.Flags(), args, "name"))
		},
	}

	cmd.Flags().String("provider", "", "Cloud provider ID or name")
	cmd.Flags().String("region", "", "Region to create the project in")
	cmd.Flags().StringArray("environment", nil, "Environment to create, can be repeated")

	return cmd
}

// Environment returns the environment command group.
func Environment(g *handlers.Globals) *cobra.Command {
	create := &cobra.Command{
		Use:   "create [name]",
		Short: "Create a new environment",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return handlers.EnvironmentCreate(cmd.Context(), g, input.NewCommand(cmd.Flags(), args, "name"))
		},
	}
	create.Flags().String("project", "", "Project ID or name (default: project of the current directory)")

	return group("environment", "Manage project environments",
		create,
		infoCommand(g, resource.KindEnvironment, "environment"),
	)
}
