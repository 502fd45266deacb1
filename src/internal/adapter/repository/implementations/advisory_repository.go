package implementations

import (
	"context"
	"fmt"

	"github.com/investlab/investment-gateway/src/internal/domain"
	"github.com/investlab/investment-gateway/src/internal/logger"
)

type AdvisoryRepository struct {
	db Querier
}

func NewAdvisoryRepository(db Querier) *AdvisoryRepository {
	return &AdvisoryRepository{db: db}
}

// AdvisorClients values each client's holdings at current prices.
func (r *AdvisoryRepository) AdvisorClients(ctx context.Context, advisorID string) ([]domain.Row, error) {
	logger.Debug(ctx, "advisory repository advisor clients", logger.Fields{"advisorId": advisorID})

	const query = `
SELECT
	cl.Nome AS nome_cliente,
	cl.CPF AS cpf_cliente,
	ct.Saldo AS saldo_disponivel,
	COALESCE(SUM(cd.quantidade * cd.preco_atual), 0) AS valor_investido,
	ct.Saldo + COALESCE(SUM(cd.quantidade * cd.preco_atual), 0) AS patrimonio_total
FROM Cliente cl
JOIN Conta ct ON ct.CPF_Cliente = cl.CPF
LEFT JOIN vw_carteira_detalhada cd ON cd.id_conta = ct.ID_Conta
WHERE cl.CPF_Assessor = $1
GROUP BY cl.Nome, cl.CPF, ct.Saldo
ORDER BY cl.Nome`

	rows, err := r.db.FetchAll(ctx, query, advisorID)
	if err != nil {
		logger.Error(ctx, "advisory repository advisor clients failed", err, logger.Fields{"advisorId": advisorID})
		return nil, fmt.Errorf("advisor clients: %w", err)
	}

	return rows, nil
}

func (r *AdvisoryRepository) ManagerTeam(ctx context.Context, managerID string) ([]domain.Row, error) {
	logger.Debug(ctx, "advisory repository manager team", logger.Fields{"managerId": managerID})

	const query = `
SELECT
	a.Nome AS nome_assessor,
	a.CPF AS cpf_assessor,
	cl.Nome AS nome_cliente,
	cl.CPF AS cpf_cliente
FROM Assessor a
LEFT JOIN Cliente cl ON cl.CPF_Assessor = a.CPF
WHERE a.CPF_Gerente = $1
ORDER BY a.Nome, cl.Nome`

	rows, err := r.db.FetchAll(ctx, query, managerID)
	if err != nil {
		logger.Error(ctx, "advisory repository manager team failed", err, logger.Fields{"managerId": managerID})
		return nil, fmt.Errorf("manager team: %w", err)
	}

	return rows, nil
}
