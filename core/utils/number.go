package utils

import (
	"encoding/json"
	"math"
	"math/big"
	"regexp"
	"strconv"
)

var jsonNumberPattern = regexp.MustCompile(`^-?(0|[1-9][0-9]*)(\.[0-9]+)?([eE]([+-]?[0-9]+))?$`)

// maxExponent bounds the exponents expanded into exact rationals.
// Larger ones are compared by their text.
const maxExponent = 4096

// IsJSONNumber reports whether s is a number literal in JSON syntax.
func IsJSONNumber(s string) bool {
	return jsonNumberPattern.MatchString(s)
}

// Rat returns the exact value of a numeric scalar: json.Number, any Go
// integer or a finite float. The second result is false for every other
// value, and for json.Number text that is not a valid or reasonably sized
// number.
func Rat(v any) (*big.Rat, bool) {
	r := new(big.Rat)
	switch n := v.(type) {
	case json.Number:
		m := jsonNumberPattern.FindStringSubmatch(string(n))
		if m == nil {
			return nil, false
		}
		if m[4] != "" {
			exp, err := strconv.Atoi(m[4])
			if err != nil || exp > maxExponent || exp < -maxExponent {
				return nil, false
			}
		}
		if _, ok := r.SetString(string(n)); !ok {
			return nil, false
		}
		return r, true
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return nil, false
		}
		return r.SetFloat64(n), true
	case float32:
		f := float64(n)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return nil, false
		}
		return r.SetFloat64(f), true
	case int:
		return r.SetInt64(int64(n)), true
	case int64:
		return r.SetInt64(n), true
	case int32:
		return r.SetInt64(int64(n)), true
	case int16:
		return r.SetInt64(int64(n)), true
	case int8:
		return r.SetInt64(int64(n)), true
	case uint:
		return r.SetUint64(uint64(n)), true
	case uint64:
		return r.SetUint64(n), true
	case uint32:
		return r.SetUint64(uint64(n)), true
	case uint16:
		return r.SetUint64(uint64(n)), true
	case uint8:
		return r.SetUint64(uint64(n)), true
	default:
		return nil, false
	}
}

// NumbersEqual reports whether a and b are both numbers of equal value,
// whatever their representation ("1", "1.0" and "1e0" are equal).
func NumbersEqual(a, b any) bool {
	ra, ok := Rat(a)
	if !ok {
		return false
	}
	rb, ok := Rat(b)
	if !ok {
		return false
	}
	return ra.Cmp(rb) == 0
}
