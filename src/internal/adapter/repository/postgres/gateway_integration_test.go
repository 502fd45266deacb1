//go:build integration

package postgres

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/investlab/investment-gateway/src/internal/config"
)

const fixture = `
CREATE TABLE conta (
	id_conta INTEGER PRIMARY KEY,
	saldo NUMERIC(14,2) NOT NULL DEFAULT 0
);

CREATE VIEW vw_conta_resumo AS
SELECT id_conta, saldo AS saldo_disponivel FROM conta;

CREATE PROCEDURE sp_deposito(p_id INTEGER, p_valor NUMERIC)
LANGUAGE plpgsql AS $$
BEGIN
	UPDATE conta SET saldo = saldo + p_valor WHERE id_conta = p_id;
END;
$$;

CREATE PROCEDURE sp_retirada(p_id INTEGER, p_valor NUMERIC)
LANGUAGE plpgsql AS $$
BEGIN
	IF (SELECT saldo FROM conta WHERE id_conta = p_id) < p_valor THEN
		RAISE EXCEPTION 'Saldo insuficiente';
	END IF;
	UPDATE conta SET saldo = saldo - p_valor WHERE id_conta = p_id;
END;
$$;
`

func setupGateway(t *testing.T, driver string) *Gateway {
	t.Helper()
	testcontainers.SkipIfProviderIsNotHealthy(t)

	ctx := context.Background()
	container, err := tcpostgres.Run(ctx,
		"postgres:16-alpine",
		tcpostgres.WithDatabase("investimentos"),
		tcpostgres.WithUsername("test"),
		tcpostgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = testcontainers.TerminateContainer(container) })

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	g, err := Open(ctx, config.Database{Driver: driver, DSN: dsn, MaxOpenConns: 2, MaxIdleConns: 1})
	require.NoError(t, err)
	t.Cleanup(func() { _ = g.Close() })

	require.NoError(t, g.Execute(ctx, fixture))
	require.NoError(t, g.Execute(ctx, `INSERT INTO conta (id_conta, saldo) VALUES ($1, $2), ($3, $4)`, 1, "100.50", 2, "0"))
	return g
}

func TestGatewayAgainstPostgres(t *testing.T) {
	for _, driver := range []string{config.DriverPQ, config.DriverPGX} {
		t.Run(driver, func(t *testing.T) {
			g := setupGateway(t, driver)
			ctx := context.Background()

			rows, err := g.FetchAll(ctx, `SELECT * FROM vw_conta_resumo ORDER BY id_conta`)
			require.NoError(t, err)
			require.Len(t, rows, 2)
			raw, err := json.Marshal(rows[0])
			require.NoError(t, err)
			assert.JSONEq(t, `{"id_conta":1,"saldo_disponivel":100.50}`, string(raw))
			assert.Equal(t, []string{"id_conta", "saldo_disponivel"}, rows[0].Columns())

			_, ok, err := g.FetchOne(ctx, `SELECT * FROM vw_conta_resumo WHERE id_conta = $1`, 99)
			require.NoError(t, err)
			assert.False(t, ok)

			require.NoError(t, g.CallProcedure(ctx, ProcDeposit, 2, "25.00"))
			row, ok, err := g.FetchOne(ctx, `SELECT saldo_disponivel FROM vw_conta_resumo WHERE id_conta = $1`, 2)
			require.NoError(t, err)
			require.True(t, ok)
			saldo, _ := row.Get("saldo_disponivel")
			assert.Equal(t, json.Number("25"), saldo)

			err = g.CallProcedure(ctx, ProcWithdrawal, 2, "1000")
			require.Error(t, err)
			msg, ok := DatabaseMessage(err)
			assert.True(t, ok)
			assert.Equal(t, "Saldo insuficiente", msg)

			var balance string
			require.NoError(t, g.Get(ctx, &balance, `SELECT saldo::text FROM conta WHERE id_conta = $1`, 2))
			assert.Equal(t, "25.00", balance)

			stats := g.Stats()
			assert.Equal(t, 0, stats.InUse)
		})
	}
}
