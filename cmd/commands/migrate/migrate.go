package migrate

import (
	"fmt"

	"github.com/ncobase/tablekit/data"
	"github.com/ncobase/tablekit/examples/users"
	"github.com/spf13/cobra"
)

// Opener opens the configured database for a command.
type Opener func(cmd *cobra.Command) (*data.Database, func(), error)

// NewCommand creates a new migrate command
func NewCommand(open Opener) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "migrate",
		Args:    cobra.NoArgs,
		Aliases: []string{"m"},
		Short:   "Database migration commands",
		Long:    `Create and seed the relations behind the bundled tables.`,
	}

	cmd.AddCommand(
		newUpCommand(open),
		newSeedCommand(open),
	)

	return cmd
}

func newUpCommand(open Opener) *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Create missing relations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			db, cleanup, err := open(cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			if err := users.Migrate(cmd.Context(), db); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Migrated %s database\n", db.Driver())
			return nil
		},
	}
}

func newSeedCommand(open Opener) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Create missing relations and insert the demo rows",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			db, cleanup, err := open(cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			if err := users.Migrate(cmd.Context(), db); err != nil {
				return err
			}
			if err := users.Seed(cmd.Context(), db); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Seeded %s database\n", db.Driver())
			return nil
		},
	}
}
