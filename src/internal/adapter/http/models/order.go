package models

import (
	"strings"
	"unicode/utf8"

	"github.com/investlab/investment-gateway/src/internal/commons"
	"github.com/investlab/investment-gateway/src/internal/domain"
)

const maxTickerLength = 10

type OrderRequest struct {
	AccountID int64  `json:"account_id"`
	Ticker    string `json:"ticker"`
	Quantity  int64  `json:"quantity"`
}

func (r OrderRequest) Validate() error {
	var errs []commons.FieldError

	if r.AccountID <= 0 {
		errs = append(errs, commons.FieldError{Field: "account_id", Message: "must be greater than zero"})
	}

	if msg := validateTicker(r.Ticker); msg != "" {
		errs = append(errs, commons.FieldError{Field: "ticker", Message: msg})
	}

	if r.Quantity <= 0 {
		errs = append(errs, commons.FieldError{Field: "quantity", Message: "must be greater than zero"})
	}

	return domain.NewValidationError(errs...)
}

func (r OrderRequest) ToDomain(side domain.OrderSide) domain.Order {
	return domain.Order{
		AccountID: r.AccountID,
		Side:      side,
		Ticker:    strings.TrimSpace(r.Ticker),
		Quantity:  r.Quantity,
	}
}

func validateTicker(raw string) string {
	n := utf8.RuneCountInString(strings.TrimSpace(raw))
	switch {
	case n == 0:
		return "is required"
	case n > maxTickerLength:
		return "must be at most 10 characters"
	default:
		return ""
	}
}
