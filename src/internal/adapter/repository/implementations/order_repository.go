package implementations

import (
	"context"

	"github.com/investlab/investment-gateway/src/internal/adapter/repository/postgres"
	"github.com/investlab/investment-gateway/src/internal/domain"
	"github.com/investlab/investment-gateway/src/internal/logger"
)

type OrderRepository struct {
	db Querier
}

func NewOrderRepository(db Querier) *OrderRepository {
	return &OrderRepository{db: db}
}

func (r *OrderRepository) Place(ctx context.Context, order domain.Order) error {
	proc := postgres.ProcBuy
	if order.Side == domain.OrderSideSell {
		proc = postgres.ProcSell
	}

	fields := logger.Fields{
		"accountId": order.AccountID,
		"side":      order.Side,
		"ticker":    order.Ticker,
		"quantity":  order.Quantity,
	}
	logger.Info(ctx, "order repository place", fields)

	if err := r.db.CallProcedure(ctx, proc, order.AccountID, order.Ticker, order.Quantity); err != nil {
		logger.Error(ctx, "order repository place failed", err, fields)
		return procedureError(string(proc), err)
	}

	logger.Info(ctx, "order repository place success", fields)
	return nil
}
