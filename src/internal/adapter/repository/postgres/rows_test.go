package postgres

import (
	"encoding/json"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestJSONValue(t *testing.T) {
	ts := time.Date(2024, 5, 2, 9, 30, 0, 0, time.UTC)

	assert.Equal(t, json.Number("1500.25"), jsonValue([]byte("1500.25"), true))
	assert.Equal(t, json.Number("42"), jsonValue("42", true))
	assert.Equal(t, "PETR4", jsonValue([]byte("PETR4"), false))
	assert.Equal(t, "NaN", jsonValue([]byte("NaN"), true))
	assert.Equal(t, int64(3), jsonValue(int64(3), false))
	assert.Equal(t, ts, jsonValue(ts, false))
	assert.Nil(t, jsonValue(nil, true))
	assert.Nil(t, jsonValue(math.Inf(1), false))
}
