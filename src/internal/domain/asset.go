package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

type AssetType string

const (
	AssetTypeEquity         AssetType = "ACAO"
	AssetTypeRealEstateFund AssetType = "FII"
	AssetTypeDebenture      AssetType = "DEBENTURE"
)

// NormalizeAssetType trims and upper-cases a caller supplied type such as "acao".
func NormalizeAssetType(raw string) AssetType {
	return AssetType(strings.ToUpper(strings.TrimSpace(raw)))
}

func (t AssetType) Valid() bool {
	switch t {
	case AssetTypeEquity, AssetTypeRealEstateFund, AssetTypeDebenture:
		return true
	default:
		return false
	}
}

type AssetTypeInfo struct {
	Type  AssetType
	Label string
}

type AssetFilter struct {
	Type   AssetType
	Sector string
}

// AssetYield is the fixed daily rate of an asset; DailyRate is invalid when the asset has none.
type AssetYield struct {
	Ticker    string              `db:"ticker"`
	DailyRate decimal.NullDecimal `db:"taxa_diaria"`
}
