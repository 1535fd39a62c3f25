package commands

import (
	"github.com/ncobase/tablekit/cmd/commands/migrate"
	"github.com/ncobase/tablekit/data"
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	var configFile string

	rootCmd := &cobra.Command{
		Use:           "tablekit",
		Short:         "Render paginated, searchable tables as JSON",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "config file path")

	rootCmd.AddCommand(
		NewServeCommand(&configFile),
		NewRenderCommand(&configFile),
		NewVersionCommand(),
		migrate.NewCommand(func(cmd *cobra.Command) (*data.Database, func(), error) {
			_, db, cleanup, err := setup(cmd.Context(), configFile)
			return db, cleanup, err
		}),
	)

	return rootCmd
}
