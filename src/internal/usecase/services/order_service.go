package services

import (
	"context"

	"github.com/investlab/investment-gateway/src/internal/adapter/http/models"
	"github.com/investlab/investment-gateway/src/internal/adapter/repository/repo_interfaces"
	"github.com/investlab/investment-gateway/src/internal/commons"
	"github.com/investlab/investment-gateway/src/internal/domain"
	"github.com/investlab/investment-gateway/src/internal/logger"
	"github.com/investlab/investment-gateway/src/internal/usecase/service_interfaces"
)

var _ service_interfaces.OrderService = (*OrderService)(nil)

type OrderService struct {
	orderRepo repo_interfaces.OrderRepository
}

func NewOrderService(orderRepo repo_interfaces.OrderRepository) *OrderService {
	return &OrderService{orderRepo: orderRepo}
}

func (s *OrderService) Buy(ctx context.Context, req models.OrderRequest) (commons.MessageResponse, error) {
	return s.place(ctx, req, domain.OrderSideBuy, "Compra executada com sucesso")
}

func (s *OrderService) Sell(ctx context.Context, req models.OrderRequest) (commons.MessageResponse, error) {
	return s.place(ctx, req, domain.OrderSideSell, "Venda executada com sucesso")
}

func (s *OrderService) place(ctx context.Context, req models.OrderRequest, side domain.OrderSide, successMessage string) (commons.MessageResponse, error) {
	logger.Info(ctx, "order service place request", logger.Fields{
		"side":    side,
		"payload": logger.SanitizePayload(req),
	})

	if err := req.Validate(); err != nil {
		logger.Warn(ctx, "order service place validation failed", logger.Fields{"error": err.Error()})
		return commons.MessageResponse{}, err
	}

	order := req.ToDomain(side)
	if err := s.orderRepo.Place(ctx, order); err != nil {
		logger.Error(ctx, "order service place failed", err, logger.Fields{
			"side":      side,
			"accountId": order.AccountID,
			"ticker":    order.Ticker,
		})
		return commons.MessageResponse{}, err
	}

	logger.Info(ctx, "order service place success", logger.Fields{
		"side":      side,
		"accountId": order.AccountID,
		"ticker":    order.Ticker,
		"quantity":  order.Quantity,
	})

	return commons.NewMessageResponse(successMessage), nil
}
