package utils

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// NormalizeValue converts a database driver value into the type the JSON
// decoder produces for the same value: json.Number for numbers, string for
// text and timestamps, bool for booleans and nil for NULL.
// Integers keep every digit, including BIGINT values beyond 2^53.
// The column type (as reported by the database, lower case) is used to
// recover numbers from drivers that return everything as text.
func NormalizeValue(val any, columnType string) any {
	switch v := val.(type) {
	case nil:
		return nil
	case bool:
		return v
	case int:
		return json.Number(strconv.FormatInt(int64(v), 10))
	case int64:
		return json.Number(strconv.FormatInt(v, 10))
	case int32:
		return json.Number(strconv.FormatInt(int64(v), 10))
	case int16:
		return json.Number(strconv.FormatInt(int64(v), 10))
	case int8:
		return json.Number(strconv.FormatInt(int64(v), 10))
	case uint:
		return json.Number(strconv.FormatUint(uint64(v), 10))
	case uint64:
		return json.Number(strconv.FormatUint(v, 10))
	case uint32:
		return json.Number(strconv.FormatUint(uint64(v), 10))
	case uint16:
		return json.Number(strconv.FormatUint(uint64(v), 10))
	case uint8:
		return json.Number(strconv.FormatUint(uint64(v), 10))
	case float64:
		return floatNumber(v, 64)
	case float32:
		return floatNumber(float64(v), 32)
	case time.Time:
		return v.Format(time.RFC3339Nano)
	case []byte:
		return normalizeText(string(v), columnType)
	case string:
		return normalizeText(v, columnType)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// floatNumber renders f with the fewest digits that round-trip at bitSize.
// NaN and infinities have no JSON form and are kept as text.
func floatNumber(f float64, bitSize int) any {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return strconv.FormatFloat(f, 'g', -1, bitSize)
	}
	return json.Number(strconv.FormatFloat(f, 'g', -1, bitSize))
}

func normalizeText(s, columnType string) any {
	if IsNumericColumn(columnType) && IsJSONNumber(s) {
		return json.Number(s)
	}
	return s
}

// IsNumericColumn reports whether a SQL column type holds numbers.
func IsNumericColumn(columnType string) bool {
	t := strings.ToLower(columnType)
	for _, prefix := range []string{"int", "tinyint", "smallint", "mediumint", "bigint", "integer", "decimal", "numeric", "float", "double", "real"} {
		if strings.HasPrefix(t, prefix) {
			return true
		}
	}
	return false
}

// FormatValue renders a decoded JSON value for display.
// Strings are returned bare, everything else as compact JSON text.
func FormatValue(val any) string {
	if s, ok := val.(string); ok {
		return s
	}
	data, err := json.Marshal(val)
	if err != nil {
		return fmt.Sprintf("%v", val)
	}
	return string(data)
}
