package utils

import (
	"reflect"
	"strconv"
	"strings"
)

// ParseValue coerces a raw CSV cell to int, then float, then string.
func ParseValue(s string) interface{} {
	// Trim whitespace first
	s = strings.TrimSpace(s)

	// try int
	if i, err := strconv.Atoi(s); err == nil {
		return i
	}
	// try float
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}

// Numeric safely converts supported types to float64.
func Numeric(v interface{}) float64 {
	switch val := v.(type) {
	case int:
		return float64(val)
	case int64:
		return float64(val)
	case float64:
		return val
	case float32:
		return float64(val)
	default:
		rv := reflect.ValueOf(v)
		if rv.Kind() >= reflect.Int && rv.Kind() <= reflect.Float64 {
			return rv.Convert(reflect.TypeOf(float64(0))).Float()
		}
		return 0
	}
}

// IsNumeric reports whether v is one of the numeric types ParseValue
// or a JSON decoder can produce.
func IsNumeric(v interface{}) bool {
	switch v.(type) {
	case int, int64, float32, float64:
		return true
	default:
		return false
	}
}

// CleanHeader normalizes a raw CSV header cell: trims whitespace and
// strips quotes left over from sloppy survey exports.
func CleanHeader(h string) string {
	h = strings.TrimSpace(h)
	return strings.ReplaceAll(h, `"`, "")
}
