// Package cli wires the dreamhouse commands.
package cli

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dreamhouse",
		Short: "Turn a house description into a room layout and keep saved designs",
		Long: `Dream House reads a free-text house description ("3BHK modern house with balcony"),
turns it into room counts, style and extras, and produces a schematic room layout.

Layouts can be saved, listed and fetched again through the HTTP API.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Load .env file if present (ignore errors)
			_ = godotenv.Load()
		},
	}

	cmd.AddCommand(newServeCmd())
	cmd.AddCommand(newMigrateCmd())
	cmd.AddCommand(newGenerateCmd())
	cmd.AddCommand(newRemoteCmd())

	return cmd
}
