package models

import "github.com/investlab/investment-gateway/src/internal/domain"

// operationTimeLayout renders the stored wall-clock time without a zone suffix.
const operationTimeLayout = "2006-01-02T15:04:05.999999"

type ReportResponse struct {
	Total   float64                   `json:"total"`
	ByAsset []AssetResultResponse     `json:"detalhado_por_ativo"`
	History []ReportOperationResponse `json:"historico_operacoes"`
}

type AssetResultResponse struct {
	Ticker     string  `json:"ticker"`
	AssetName  string  `json:"nome_ativo"`
	ProfitLoss float64 `json:"lucro_prejuizo"`
}

type ReportOperationResponse struct {
	Timestamp     string  `json:"data_hora"`
	Type          string  `json:"tipo_op"`
	Ticker        string  `json:"ticker"`
	AssetName     string  `json:"nome_ativo"`
	Quantity      float64 `json:"quantidade"`
	ExecutedPrice float64 `json:"preco_exec"`
	CashFlow      float64 `json:"fluxo_caixa"`
}

// NewReportResponse coerces every numeric to float64; lists are never nil.
func NewReportResponse(report domain.PerformanceReport) ReportResponse {
	out := ReportResponse{
		Total:   report.Total.InexactFloat64(),
		ByAsset: make([]AssetResultResponse, 0, len(report.ByAsset)),
		History: make([]ReportOperationResponse, 0, len(report.History)),
	}

	for _, r := range report.ByAsset {
		out.ByAsset = append(out.ByAsset, AssetResultResponse{
			Ticker:     r.Ticker,
			AssetName:  r.AssetName,
			ProfitLoss: domain.Float(r.ProfitLoss),
		})
	}

	for _, op := range report.History {
		out.History = append(out.History, ReportOperationResponse{
			Timestamp:     op.Timestamp.Format(operationTimeLayout),
			Type:          op.Type,
			Ticker:        op.Ticker,
			AssetName:     op.AssetName,
			Quantity:      domain.Float(op.Quantity),
			ExecutedPrice: domain.Float(op.ExecutedPrice),
			CashFlow:      domain.Float(op.CashFlow),
		})
	}

	return out
}
