package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type ReportPeriod struct {
	ClientID string
	Start    time.Time
	End      time.Time
}

type AssetResult struct {
	Ticker     string              `db:"ticker"`
	AssetName  string              `db:"nome_ativo"`
	ProfitLoss decimal.NullDecimal `db:"lucro_prejuizo"`
}

type OperationRecord struct {
	Timestamp     time.Time           `db:"data_hora"`
	Type          string              `db:"tipo_op"`
	Ticker        string              `db:"ticker"`
	AssetName     string              `db:"nome_ativo"`
	Quantity      decimal.NullDecimal `db:"quantidade"`
	ExecutedPrice decimal.NullDecimal `db:"preco_exec"`
	CashFlow      decimal.NullDecimal `db:"fluxo_caixa"`
}

type PerformanceReport struct {
	Period  ReportPeriod
	Total   decimal.Decimal
	ByAsset []AssetResult
	History []OperationRecord
}

// Float coerces a nullable database numeric to float64, treating NULL as zero.
func Float(d decimal.NullDecimal) float64 {
	if !d.Valid {
		return 0
	}
	return d.Decimal.InexactFloat64()
}
