package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/investlab/investment-gateway/src/internal/adapter/http/models"
	"github.com/investlab/investment-gateway/src/internal/domain"
	"github.com/investlab/investment-gateway/src/internal/usecase/services"
)

func TestOrderServiceBuyAndSell(t *testing.T) {
	var placed []domain.Order
	svc := services.NewOrderService(orderRepoStub{
		placeFn: func(_ context.Context, order domain.Order) error {
			placed = append(placed, order)
			return nil
		},
	})

	req := models.OrderRequest{AccountID: 1, Ticker: " PETR4 ", Quantity: 100}

	buy, err := svc.Buy(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "Compra executada com sucesso", buy.Message)

	sell, err := svc.Sell(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "Venda executada com sucesso", sell.Message)

	require.Len(t, placed, 2)
	assert.Equal(t, domain.Order{AccountID: 1, Side: domain.OrderSideBuy, Ticker: "PETR4", Quantity: 100}, placed[0])
	assert.Equal(t, domain.OrderSideSell, placed[1].Side)
}

func TestOrderServiceRejectsInvalidOrder(t *testing.T) {
	svc := services.NewOrderService(orderRepoStub{
		placeFn: func(context.Context, domain.Order) error {
			t.Fatal("repository must not be called for an invalid order")
			return nil
		},
	})

	_, err := svc.Buy(context.Background(), models.OrderRequest{AccountID: 1, Ticker: "PETR4", Quantity: 0})

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "quantity", verr.Fields[0].Field)
}

func TestOrderServiceSurfacesBusinessRule(t *testing.T) {
	svc := services.NewOrderService(orderRepoStub{
		placeFn: func(context.Context, domain.Order) error {
			return &domain.BusinessRuleError{Message: "Quantidade insuficiente em carteira"}
		},
	})

	_, err := svc.Sell(context.Background(), models.OrderRequest{AccountID: 1, Ticker: "VALE3", Quantity: 10})

	assert.EqualError(t, err, "Quantidade insuficiente em carteira")
}
