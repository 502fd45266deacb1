package postgres

import (
	"encoding/json"
	"math"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"

	"github.com/investlab/investment-gateway/src/internal/domain"
)

// scanRows reads up to limit rows (all when limit <= 0) into ordered rows.
func scanRows(rows *sqlx.Rows, limit int) ([]domain.Row, error) {
	columns, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	types, err := rows.ColumnTypes()
	if err != nil {
		return nil, err
	}
	numeric := make([]bool, len(types))
	for i, t := range types {
		numeric[i] = strings.EqualFold(t.DatabaseTypeName(), "NUMERIC")
	}

	out := make([]domain.Row, 0)
	for rows.Next() {
		values, err := rows.SliceScan()
		if err != nil {
			return nil, err
		}
		for i := range values {
			values[i] = jsonValue(values[i], numeric[i])
		}
		out = append(out, domain.NewRow(columns, values))

		if limit > 0 && len(out) >= limit {
			break
		}
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// jsonValue turns a driver value into something encoding/json renders faithfully.
// NUMERIC values keep their exact digits as a JSON number.
func jsonValue(v any, numeric bool) any {
	switch typed := v.(type) {
	case []byte:
		return textValue(string(typed), numeric)
	case string:
		return textValue(typed, numeric)
	case float64:
		if math.IsNaN(typed) || math.IsInf(typed, 0) {
			return nil
		}
		return typed
	case float32:
		return jsonValue(float64(typed), numeric)
	default:
		return v
	}
}

func textValue(s string, numeric bool) any {
	if !numeric {
		return s
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		// NaN and friends.
		return s
	}
	return json.Number(d.String())
}
