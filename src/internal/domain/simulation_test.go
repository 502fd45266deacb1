package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimulateCompoundsOverTradingDays(t *testing.T) {
	sim, err := Simulate("TEST11", decimal.NewFromInt(1000), decimal.RequireFromString("0.001"), 12)
	require.NoError(t, err)

	assert.Equal(t, 252, sim.Days)
	assert.Equal(t, "1286.43", sim.FinalValue.StringFixed(2))
	assert.Equal(t, "28.64", sim.ReturnPct.StringFixed(2))
}

func TestSimulateRoundsToTwoDecimals(t *testing.T) {
	sim, err := Simulate("DEB1", decimal.NewFromInt(500), decimal.RequireFromString("0.0005"), 6)
	require.NoError(t, err)

	assert.Equal(t, 126, sim.Days)
	assert.True(t, sim.FinalValue.Equal(decimal.RequireFromString("532.51")), sim.FinalValue.String())
	assert.True(t, sim.ReturnPct.Equal(decimal.RequireFromString("6.5")), sim.ReturnPct.String())
	assert.LessOrEqual(t, -sim.FinalValue.Exponent(), int32(2))
}

func TestSimulateZeroRate(t *testing.T) {
	sim, err := Simulate("ZERO", decimal.NewFromInt(1000), decimal.Zero, 24)
	require.NoError(t, err)

	assert.True(t, sim.FinalValue.Equal(decimal.NewFromInt(1000)))
	assert.True(t, sim.ReturnPct.IsZero())
}

func TestSimulateRejectsOverflow(t *testing.T) {
	tests := []struct {
		name    string
		initial decimal.Decimal
		rate    decimal.Decimal
		months  int
	}{
		{"rate overflows over long horizon", decimal.NewFromInt(1000), decimal.RequireFromString("0.05"), 1200},
		{"initial amount beyond float range", decimal.RequireFromString("1e400"), decimal.RequireFromString("0.001"), 12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var err error
			assert.NotPanics(t, func() {
				_, err = Simulate("X", tt.initial, tt.rate, tt.months)
			})
			assert.ErrorIs(t, err, ErrSimulationOutOfRange)
		})
	}
}
