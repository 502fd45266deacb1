package models

import "github.com/investlab/investment-gateway/src/internal/domain"

type AssetTypeResponse struct {
	Type  string `json:"tipo"`
	Label string `json:"descricao"`
}

func NewAssetTypeResponses(types []domain.AssetTypeInfo) []AssetTypeResponse {
	out := make([]AssetTypeResponse, 0, len(types))
	for _, t := range types {
		out = append(out, AssetTypeResponse{Type: string(t.Type), Label: t.Label})
	}
	return out
}

type HealthResponse struct {
	Status string `json:"status"`
}
