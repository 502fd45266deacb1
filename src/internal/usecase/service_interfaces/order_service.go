package service_interfaces

import (
	"context"

	"github.com/investlab/investment-gateway/src/internal/adapter/http/models"
	"github.com/investlab/investment-gateway/src/internal/commons"
)

type OrderService interface {
	Buy(ctx context.Context, req models.OrderRequest) (commons.MessageResponse, error)
	Sell(ctx context.Context, req models.OrderRequest) (commons.MessageResponse, error)
}
