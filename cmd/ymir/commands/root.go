// Package commands defines the CLI command structure and flag bindings.
//
// This package contains cobra command definitions that handle argument parsing,
// flag binding, and validation. Command execution is delegated to handler
// functions in the handlers package.
package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/ymir/cmd/ymir/handlers"
)

// Root returns the root command for the ymir CLI.
//
// The global flags are bound to a single handlers.Globals shared by every
// subcommand.
func Root() *cobra.Command {
	g := &handlers.Globals{}

	cmd := &cobra.Command{
		Use:           "ymir",
		Short:         "Manage serverless WordPress infrastructure on AWS",
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	cmd.PersistentFlags().BoolVarP(&g.NoInteraction, "no-interaction", "n", false, "Do not ask any interactive question")
	cmd.PersistentFlags().CountVarP(&g.Verbosity, "verbose", "v", "Increase the verbosity of messages")

	// Account commands
	cmd.AddCommand(Login(g))
	cmd.AddCommand(Team(g))
	cmd.AddCommand(Provider(g))

	// Infrastructure commands
	cmd.AddCommand(Network(g))
	cmd.AddCommand(Database(g))
	cmd.AddCommand(Cache(g))
	cmd.AddCommand(Certificate(g))
	cmd.AddCommand(DNS(g))
	cmd.AddCommand(Email(g))

	// Project commands
	cmd.AddCommand(Project(g))
	cmd.AddCommand(Environment(g))

	cmd.AddCommand(Version())
	cmd.AddCommand(Completion())

	return cmd
}

// group returns a command that only holds subcommands.
func group(use, short string, subcommands ...*cobra.Command) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
	}
	cmd.AddCommand(subcommands...)
	return cmd
}
