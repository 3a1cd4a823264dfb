package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cppla/qaserver/config"
	"github.com/cppla/qaserver/utils"
)

var initdbCmd = &cobra.Command{
	Use:   "initdb",
	Short: "Create the questions, users and answers tables",
	Long:  `Create any missing table together with its indexes and foreign keys. Existing tables are left as they are.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := bootstrap()
		if err != nil {
			return err
		}
		defer func() { _ = utils.Logger.Sync() }()

		db, err := config.InitDatabase(cfg)
		if err != nil {
			return err
		}
		if err := config.CloseDatabase(db); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "database initialized")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initdbCmd)
}
