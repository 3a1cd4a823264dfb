package commands

import (
	"fmt"
	"net"
	"time"

	"github.com/spf13/cobra"

	"github.com/cppla/qaserver/config"
	"github.com/cppla/qaserver/routes"
	"github.com/cppla/qaserver/utils"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Create missing tables and start the HTTP server",
	Long: `Start the HTTP server on APP_PORT. Missing tables are created first.
SIGINT and SIGTERM drain in-flight requests, then the database is closed.`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := bootstrap()
	if err != nil {
		return err
	}
	defer func() { _ = utils.Logger.Sync() }()

	db, err := config.InitDatabase(cfg)
	if err != nil {
		utils.Sugar.Errorw("database init failed", "db_type", cfg.DBType, "error", err)
		return err
	}
	defer func() {
		if err := config.CloseDatabase(db); err != nil {
			utils.Sugar.Errorf("close database: %v", err)
		}
	}()

	r := routes.SetupRouter(db, cfg)
	addr := net.JoinHostPort("", cfg.AppPort)
	utils.Sugar.Infof("Starting server on port %s (graceful, db=%s)", cfg.AppPort, cfg.DBType)
	if err := utils.GraceServer(addr, r, time.Duration(cfg.ShutdownTimeout)*time.Second); err != nil {
		return fmt.Errorf("server stopped with error: %w", err)
	}
	utils.Sugar.Info("server stopped")
	return nil
}
