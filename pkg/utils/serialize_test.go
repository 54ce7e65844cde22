package utils

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSerializeRowConvertsDBNativeValues(t *testing.T) {
	created := time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)

	row := map[string]any{
		"id":         42,
		"name":       "Egyptian Museum",
		"latitude":   decimal.RequireFromString("30.0478"),
		"rating":     decimal.RequireFromString("4.65"),
		"created_at": created,
		"open_for":   2 * time.Hour,
		"website":    "https://example.com",
		"parent_id":  nil,
	}

	out := SerializeRow(row)

	assert.Equal(t, 42, out["id"])
	assert.Equal(t, "Egyptian Museum", out["name"])
	assert.Equal(t, 30.0478, out["latitude"])
	assert.Equal(t, 4.65, out["rating"])
	assert.Equal(t, "2024-03-15T10:30:00Z", out["created_at"])
	assert.Equal(t, "2h0m0s", out["open_for"])
	assert.Equal(t, "https://example.com", out["website"])
	assert.Nil(t, out["parent_id"])
}

func TestSerializeRowIsIdempotent(t *testing.T) {
	row := map[string]any{
		"latitude":   decimal.RequireFromString("31.2357"),
		"created_at": time.Date(2023, 1, 2, 3, 4, 5, 0, time.UTC),
		"open_for":   90 * time.Minute,
		"name":       "Citadel",
	}

	once := SerializeRow(row)
	twice := SerializeRow(once)

	assert.Equal(t, once, twice)
}

func TestSerializeRowOutputIsJSONEncodable(t *testing.T) {
	rows := []map[string]any{
		{
			"id":         1,
			"rating":     decimal.RequireFromString("3.5"),
			"updated_at": time.Now(),
			"open_for":   time.Hour,
		},
	}

	_, err := json.Marshal(SerializeRows(rows))
	require.NoError(t, err)
}

func TestSerializeRowHandlesNilPointers(t *testing.T) {
	var ts *time.Time
	var dec *decimal.Decimal

	out := SerializeRow(map[string]any{"a": ts, "b": dec})

	assert.Nil(t, out["a"])
	assert.Nil(t, out["b"])
}

func TestSerializeRowsPreservesOrderAndLength(t *testing.T) {
	rows := []map[string]any{
		{"id": 1},
		{"id": 2},
		{"id": 3},
	}

	out := SerializeRows(rows)

	require.Len(t, out, 3)
	for i, row := range out {
		assert.Equal(t, i+1, row["id"])
	}
}
