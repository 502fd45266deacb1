package implementations

import (
	"context"
	"fmt"

	"github.com/investlab/investment-gateway/src/internal/adapter/repository/postgres"
	"github.com/investlab/investment-gateway/src/internal/domain"
	"github.com/investlab/investment-gateway/src/internal/logger"
)

type AccountRepository struct {
	db Querier
}

func NewAccountRepository(db Querier) *AccountRepository {
	return &AccountRepository{db: db}
}

func (r *AccountRepository) GetSummary(ctx context.Context, accountID int64) (domain.Row, error) {
	logger.Debug(ctx, "account repository get summary", logger.Fields{"accountId": accountID})

	const query = `SELECT * FROM vw_conta_resumo WHERE id_conta = $1`

	row, ok, err := r.db.FetchOne(ctx, query, accountID)
	if err != nil {
		logger.Error(ctx, "account repository get summary failed", err, logger.Fields{"accountId": accountID})
		return domain.Row{}, fmt.Errorf("get account summary: %w", err)
	}
	if !ok {
		logger.Info(ctx, "account repository record not found", logger.Fields{"accountId": accountID})
		return domain.Row{}, domain.ErrRecordNotFound
	}

	return row, nil
}

func (r *AccountRepository) GetPortfolio(ctx context.Context, accountID int64) ([]domain.Row, error) {
	logger.Debug(ctx, "account repository get portfolio", logger.Fields{"accountId": accountID})

	const query = `SELECT * FROM vw_carteira_detalhada WHERE id_conta = $1 ORDER BY nome_ativo`

	rows, err := r.db.FetchAll(ctx, query, accountID)
	if err != nil {
		logger.Error(ctx, "account repository get portfolio failed", err, logger.Fields{"accountId": accountID})
		return nil, fmt.Errorf("get portfolio: %w", err)
	}

	return rows, nil
}

func (r *AccountRepository) GetHistory(ctx context.Context, accountID int64, limit int) ([]domain.Row, error) {
	logger.Debug(ctx, "account repository get history", logger.Fields{
		"accountId": accountID,
		"limit":     limit,
	})

	const query = `
SELECT
	data_hora,
	tipo_op,
	ticker,
	nome_ativo,
	quantidade,
	preco_exec,
	fluxo_caixa
FROM vw_ordens_valor
WHERE id_conta = $1
ORDER BY data_hora DESC
LIMIT $2`

	rows, err := r.db.FetchAll(ctx, query, accountID, limit)
	if err != nil {
		logger.Error(ctx, "account repository get history failed", err, logger.Fields{"accountId": accountID})
		return nil, fmt.Errorf("get history: %w", err)
	}

	return rows, nil
}

func (r *AccountRepository) ApplyCashMovement(ctx context.Context, movement domain.CashMovement) error {
	proc := postgres.ProcDeposit
	if movement.Kind == domain.CashMovementWithdrawal {
		proc = postgres.ProcWithdrawal
	}

	logger.Info(ctx, "account repository cash movement", logger.Fields{
		"accountId": movement.AccountID,
		"kind":      movement.Kind,
		"amount":    movement.Amount.String(),
	})

	if err := r.db.CallProcedure(ctx, proc, movement.AccountID, movement.Amount); err != nil {
		logger.Error(ctx, "account repository cash movement failed", err, logger.Fields{
			"accountId": movement.AccountID,
			"kind":      movement.Kind,
		})
		return procedureError(string(proc), err)
	}

	logger.Info(ctx, "account repository cash movement success", logger.Fields{
		"accountId": movement.AccountID,
		"kind":      movement.Kind,
	})
	return nil
}
