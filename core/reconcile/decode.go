package reconcile

import (
	"fmt"

	"github.com/7sDream/geko"
)

// Decode parses a JSON document.
//
// Objects that are direct elements of a top-level array become Records, which
// keep their key order. Every other object becomes a map[string]any, arrays
// become []any and numbers json.Number, so that no digit is lost.
func Decode(data []byte) (any, error) {
	// geko keeps object keys in document order.
	parsed, err := geko.JSONUnmarshal(data, geko.UseNumber(true))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedJSON, err)
	}

	arr, ok := parsed.(geko.Array)
	if !ok {
		return plain(parsed), nil
	}

	out := make([]any, len(arr.List))
	for i, item := range arr.List {
		if obj, ok := item.(geko.ObjectItems); ok {
			out[i] = toRecord(obj)
			continue
		}
		out[i] = plain(item)
	}
	return out, nil
}

func toRecord(obj geko.ObjectItems) Record {
	keys := obj.Keys()
	vals := obj.Values()
	values := make([]any, len(vals))
	for i := range vals {
		values[i] = plain(vals[i])
	}
	return NewRecord(keys, values)
}

// plain converts geko containers into map[string]any and []any.
func plain(v any) any {
	switch t := v.(type) {
	case geko.ObjectItems:
		keys := t.Keys()
		vals := t.Values()
		m := make(map[string]any, len(keys))
		for i, k := range keys {
			m[k] = plain(vals[i])
		}
		return m
	case geko.Array:
		list := make([]any, len(t.List))
		for i, item := range t.List {
			list[i] = plain(item)
		}
		return list
	default:
		return t
	}
}
