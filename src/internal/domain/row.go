package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Row is one result row keyed by column name, keeping the column order of the query.
type Row struct {
	columns []string
	values  []any
}

func NewRow(columns []string, values []any) Row {
	return Row{columns: columns, values: values}
}

func (r Row) Columns() []string {
	return r.columns
}

func (r Row) Len() int {
	return len(r.columns)
}

func (r Row) Get(column string) (any, bool) {
	for i, c := range r.columns {
		if c == column {
			return r.values[i], true
		}
	}
	return nil, false
}

func (r Row) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, column := range r.columns {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(column)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')

		val, err := json.Marshal(r.values[i])
		if err != nil {
			return nil, fmt.Errorf("marshal column %q: %w", column, err)
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
