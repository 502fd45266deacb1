package domain

import "github.com/shopspring/decimal"

type CashMovementKind string

const (
	CashMovementDeposit    CashMovementKind = "DEPOSIT"
	CashMovementWithdrawal CashMovementKind = "WITHDRAWAL"
)

type CashMovement struct {
	AccountID int64
	Kind      CashMovementKind
	Amount    decimal.Decimal
}

type OrderSide string

const (
	OrderSideBuy  OrderSide = "BUY"
	OrderSideSell OrderSide = "SELL"
)

type Order struct {
	AccountID int64
	Side      OrderSide
	Ticker    string
	Quantity  int64
}

const DefaultHistoryLimit = 10
