package models

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/investlab/investment-gateway/src/internal/commons"
	"github.com/investlab/investment-gateway/src/internal/domain"
)

const maxSimulationMonths = 1200

type SimulationRequest struct {
	Ticker        string           `json:"ticker"`
	InitialAmount *decimal.Decimal `json:"initial_amount"`
	Months        int              `json:"months"`
}

func (r SimulationRequest) Validate() error {
	var errs []commons.FieldError

	if msg := validateTicker(r.Ticker); msg != "" {
		errs = append(errs, commons.FieldError{Field: "ticker", Message: msg})
	}

	if r.InitialAmount == nil {
		errs = append(errs, commons.FieldError{Field: "initial_amount", Message: "is required"})
	} else if r.InitialAmount.LessThanOrEqual(decimal.Zero) {
		errs = append(errs, commons.FieldError{Field: "initial_amount", Message: "must be greater than zero"})
	}

	switch {
	case r.Months <= 0:
		errs = append(errs, commons.FieldError{Field: "months", Message: "must be greater than zero"})
	case r.Months > maxSimulationMonths:
		errs = append(errs, commons.FieldError{Field: "months", Message: "must be at most 1200"})
	}

	return domain.NewValidationError(errs...)
}

// NormalizedTicker upper-cases the ticker the way the asset catalog stores it.
func (r SimulationRequest) NormalizedTicker() string {
	return strings.ToUpper(strings.TrimSpace(r.Ticker))
}

type SimulationResponse struct {
	Ticker        string  `json:"ticker"`
	InitialAmount float64 `json:"valor_inicial"`
	Months        int     `json:"meses"`
	Days          int     `json:"dias_uteis"`
	DailyRate     float64 `json:"taxa_diaria"`
	FinalValue    float64 `json:"valor_final_estimado"`
	ReturnPct     float64 `json:"rentabilidade_total_percentual"`
}

func NewSimulationResponse(sim domain.Simulation) SimulationResponse {
	return SimulationResponse{
		Ticker:        sim.Ticker,
		InitialAmount: sim.InitialAmount.InexactFloat64(),
		Months:        sim.Months,
		Days:          sim.Days,
		DailyRate:     sim.DailyRate.InexactFloat64(),
		FinalValue:    sim.FinalValue.InexactFloat64(),
		ReturnPct:     sim.ReturnPct.InexactFloat64(),
	}
}
