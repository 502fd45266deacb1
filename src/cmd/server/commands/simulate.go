package commands

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/investlab/investment-gateway/src/internal/adapter/http/models"
	"github.com/investlab/investment-gateway/src/internal/adapter/repository/implementations"
	"github.com/investlab/investment-gateway/src/internal/adapter/repository/postgres"
	"github.com/investlab/investment-gateway/src/internal/usecase/services"
)

var (
	simTicker string
	simAmount string
	simMonths int
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run a compound-interest simulation against the asset catalog",
	Long: `Simulate compounds the asset's fixed daily rate over months*21 trading days
and prints the result as JSON.

Examples:
  investment-gateway simulate --ticker DEB1 --amount 1000 --months 12`,
	RunE: func(cmd *cobra.Command, args []string) error {
		req, err := simulationRequestFromFlags()
		if err != nil {
			return err
		}

		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		gw, err := postgres.Open(cmd.Context(), cfg.Database)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer gw.Close()

		svc := services.NewSimulationService(implementations.NewAssetRepository(gw))
		resp, err := svc.Simulate(cmd.Context(), req)
		if err != nil {
			return err
		}

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(resp)
	},
}

func init() {
	simulateCmd.Flags().StringVar(&simTicker, "ticker", "", "Asset ticker")
	simulateCmd.Flags().StringVar(&simAmount, "amount", "", "Initial amount")
	simulateCmd.Flags().IntVar(&simMonths, "months", 12, "Number of months")
	_ = simulateCmd.MarkFlagRequired("ticker")
	_ = simulateCmd.MarkFlagRequired("amount")
}

func simulationRequestFromFlags() (models.SimulationRequest, error) {
	amount, err := decimal.NewFromString(simAmount)
	if err != nil {
		return models.SimulationRequest{}, fmt.Errorf("invalid --amount %q: %w", simAmount, err)
	}

	req := models.SimulationRequest{Ticker: simTicker, InitialAmount: &amount, Months: simMonths}
	if err := req.Validate(); err != nil {
		return models.SimulationRequest{}, err
	}
	return req, nil
}
