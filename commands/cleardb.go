package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cppla/qaserver/config"
	"github.com/cppla/qaserver/utils"
)

var confirmClear bool

var cleardbCmd = &cobra.Command{
	Use:   "cleardb",
	Short: "Drop every application table",
	Long: `Drop the answers, users and questions tables and all data in them.
Requires --yes.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !confirmClear {
			return fmt.Errorf("refusing to drop tables without --yes")
		}
		cfg, err := bootstrap()
		if err != nil {
			return err
		}
		defer func() { _ = utils.Logger.Sync() }()

		db, err := config.OpenDatabase(cfg)
		if err != nil {
			return err
		}
		defer func() { _ = config.CloseDatabase(db) }()

		if err := config.DropTables(db); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "database cleared")
		return nil
	},
}

func init() {
	cleardbCmd.Flags().BoolVarP(&confirmClear, "yes", "y", false, "Confirm dropping all tables")
	rootCmd.AddCommand(cleardbCmd)
}
