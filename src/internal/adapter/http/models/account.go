package models

import (
	"github.com/shopspring/decimal"

	"github.com/investlab/investment-gateway/src/internal/commons"
	"github.com/investlab/investment-gateway/src/internal/domain"
)

// AmountRequest is the body of both deposit and withdrawal calls.
type AmountRequest struct {
	Amount *decimal.Decimal `json:"amount"`
}

type DepositRequest = AmountRequest

type WithdrawalRequest = AmountRequest

func (r AmountRequest) Validate() error {
	var errs []commons.FieldError

	if r.Amount == nil {
		errs = append(errs, commons.FieldError{Field: "amount", Message: "is required"})
	} else if r.Amount.LessThanOrEqual(decimal.Zero) {
		errs = append(errs, commons.FieldError{Field: "amount", Message: "must be greater than zero"})
	}

	return domain.NewValidationError(errs...)
}
