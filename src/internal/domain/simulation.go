package domain

import (
	"math"

	"github.com/shopspring/decimal"
)

const TradingDaysPerMonth = 21

type Simulation struct {
	Ticker        string
	InitialAmount decimal.Decimal
	Months        int
	Days          int
	DailyRate     decimal.Decimal
	FinalValue    decimal.Decimal
	ReturnPct     decimal.Decimal
}

// Simulate compounds dailyRate over months*21 trading days. initial must be non-zero.
// ErrSimulationOutOfRange is returned when the result does not fit a float64.
func Simulate(ticker string, initial decimal.Decimal, dailyRate decimal.Decimal, months int) (Simulation, error) {
	days := months * TradingDaysPerMonth

	p := initial.InexactFloat64()
	final := p * math.Pow(1+dailyRate.InexactFloat64(), float64(days))
	pct := (final - p) / p * 100
	if !finite(final) || !finite(pct) {
		return Simulation{}, ErrSimulationOutOfRange
	}

	return Simulation{
		Ticker:        ticker,
		InitialAmount: initial,
		Months:        months,
		Days:          days,
		DailyRate:     dailyRate,
		FinalValue:    decimal.NewFromFloat(final).Round(2),
		ReturnPct:     decimal.NewFromFloat(pct).Round(2),
	}, nil
}

func finite(f float64) bool {
	return !math.IsInf(f, 0) && !math.IsNaN(f)
}
