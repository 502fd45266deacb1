package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/investlab/investment-gateway/src/internal/config"
	"github.com/investlab/investment-gateway/src/internal/logger"
)

// rootCmd serves the API when no subcommand is given.
var rootCmd = &cobra.Command{
	Use:   "investment-gateway",
	Short: "HTTP gateway for the investment platform database",
	Long: `investment-gateway exposes account balances, portfolios, trade history,
asset catalogs, performance reports and a compound-interest simulator over HTTP,
forwarding deposits, withdrawals, buys and sells to database procedures.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd)
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serveCmd, simulateCmd, versionCmd)
}

func loadConfig() (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, err
	}
	logger.Setup(os.Stdout, cfg.LogLevel)
	return cfg, nil
}
