package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cppla/qaserver/config"
	"github.com/cppla/qaserver/utils"
)

var (
	// Global flags
	configPath string
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "qaserver",
	Short: "Question and answer HTTP service",
	Long: `qaserver stores questions, the answers users give to them, and the users themselves,
and serves them over a JSON HTTP API.

Without a subcommand it starts the server.`,
	SilenceUsage: true,
	RunE:         runServe,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", config.DefaultConfigPath, "Path to the JSON config file")
}

// bootstrap loads configuration and the logger every subcommand needs.
func bootstrap() (config.AppConfig, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return config.AppConfig{}, err
	}
	if err := utils.InitLogger(cfg); err != nil {
		return config.AppConfig{}, fmt.Errorf("init logger: %w", err)
	}
	return cfg, nil
}
