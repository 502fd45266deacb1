package commands

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionCommand(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"version"})
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	require.NoError(t, rootCmd.Execute())
	assert.Equal(t, "dev\n", out.String())
}

func TestSimulationRequestFromFlags(t *testing.T) {
	simTicker, simAmount, simMonths = "deb1", "1000", 12
	req, err := simulationRequestFromFlags()
	require.NoError(t, err)
	assert.Equal(t, "DEB1", req.NormalizedTicker())
	assert.Equal(t, "1000", req.InitialAmount.String())

	simAmount = "lots"
	_, err = simulationRequestFromFlags()
	assert.ErrorContains(t, err, "--amount")

	simAmount, simMonths = "1000", 0
	_, err = simulationRequestFromFlags()
	assert.ErrorContains(t, err, "months")
}
