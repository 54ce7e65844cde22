package utils

import (
	"time"

	"github.com/shopspring/decimal"
)

// SerializeRow converts DB-native values in a catalog row into JSON-safe
// primitives: temporal values become ISO-8601 text, fixed-point decimals
// become floats, durations become their canonical text form. Anything else
// passes through unchanged, so the function is total and idempotent.
func SerializeRow(row map[string]any) map[string]any {
	out := make(map[string]any, len(row))
	for k, v := range row {
		out[k] = serializeValue(v)
	}
	return out
}

func SerializeRows(rows []map[string]any) []map[string]any {
	out := make([]map[string]any, 0, len(rows))
	for _, row := range rows {
		out = append(out, SerializeRow(row))
	}
	return out
}

func serializeValue(v any) any {
	switch val := v.(type) {
	case time.Time:
		return val.Format(time.RFC3339)
	case *time.Time:
		if val == nil {
			return nil
		}
		return val.Format(time.RFC3339)
	case decimal.Decimal:
		f, _ := val.Float64()
		return f
	case *decimal.Decimal:
		if val == nil {
			return nil
		}
		f, _ := val.Float64()
		return f
	case time.Duration:
		return val.String()
	default:
		return v
	}
}
