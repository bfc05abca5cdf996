package reconcile

import (
	"encoding/json"
	"fmt"
	"sort"

	"json-diff/core/utils"
)

// Record is a single object of a collection.
// It keeps the field order of the source document.
type Record struct {
	fields []string
	values map[string]any
}

// NewRecord builds a record from parallel field and value slices.
// A repeated field keeps its first position and its last value.
func NewRecord(fields []string, values []any) Record {
	r := Record{
		fields: make([]string, 0, len(fields)),
		values: make(map[string]any, len(fields)),
	}
	for i, f := range fields {
		if _, seen := r.values[f]; !seen {
			r.fields = append(r.fields, f)
		}
		var v any
		if i < len(values) {
			v = values[i]
		}
		r.values[f] = v
	}
	return r
}

// RecordFromMap builds a record from a map. Fields are sorted by name since
// maps carry no order.
func RecordFromMap(m map[string]any) Record {
	fields := make([]string, 0, len(m))
	for k := range m {
		fields = append(fields, k)
	}
	sort.Strings(fields)
	values := make([]any, len(fields))
	for i, f := range fields {
		values[i] = m[f]
	}
	return NewRecord(fields, values)
}

// Fields returns the field names in document order.
func (r Record) Fields() []string {
	return r.fields
}

// Value returns the value of a field and whether the field exists.
func (r Record) Value(field string) (any, bool) {
	v, ok := r.values[field]
	return v, ok
}

// Len returns the number of fields.
func (r Record) Len() int {
	return len(r.fields)
}

// Schema is the ordered list of field names shared by every record of a collection.
type Schema []string

// Has reports whether the schema contains the field.
func (s Schema) Has(field string) bool {
	for _, f := range s {
		if f == field {
			return true
		}
	}
	return false
}

// Equal reports whether both schemas hold the same set of fields, ignoring order.
func (s Schema) Equal(other Schema) bool {
	if len(s) != len(other) {
		return false
	}
	set := make(map[string]struct{}, len(s))
	for _, f := range s {
		set[f] = struct{}{}
	}
	for _, f := range other {
		if _, ok := set[f]; !ok {
			return false
		}
	}
	return true
}

// Identifier is the value of the identifier field of one record.
type Identifier struct {
	// key is the canonical form of Value, used for set membership.
	key string

	// Value is the decoded identifier value (string, json.Number, bool or nil).
	Value any
}

// NewIdentifier wraps a scalar identifier value.
//
// Numbers are keyed by their exact value, so 1, 1.0 and 1e0 are the same
// identifier while 9007199254740992 and 9007199254740993 are not. Any other
// scalar is keyed by its JSON text, which keeps "1" apart from 1.
func NewIdentifier(v any) (Identifier, error) {
	switch v.(type) {
	case map[string]any, []any:
		return Identifier{}, ErrUnhashableIdentifier
	}
	if r, ok := utils.Rat(v); ok {
		// RatString never starts with a quote, t, f or n, so it cannot
		// collide with the JSON text of other scalars.
		return Identifier{key: r.RatString(), Value: v}, nil
	}
	data, err := json.Marshal(v)
	if err != nil {
		return Identifier{}, fmt.Errorf("%w: %v", ErrUnhashableIdentifier, err)
	}
	return Identifier{key: string(data), Value: v}, nil
}

// Key returns the canonical form of the identifier.
func (id Identifier) Key() string {
	return id.key
}

// String renders the identifier for display.
func (id Identifier) String() string {
	return utils.FormatValue(id.Value)
}

// MarshalJSON encodes the identifier as its raw value.
func (id Identifier) MarshalJSON() ([]byte, error) {
	return json.Marshal(id.Value)
}

// Change describes one difference inside a differing field.
type Change struct {
	// Path is the field name, followed by a JSON pointer for nested changes.
	Path string `json:"path"`

	// Op is the operation turning the first value into the second
	// (add, remove, replace, move, copy).
	Op string `json:"op"`

	// Old is the value in the first collection, when known.
	Old any `json:"old,omitempty"`

	// New is the value in the second collection, when known.
	New any `json:"new,omitempty"`
}

// Discrepancy lists the fields that differ between two records sharing an identifier.
type Discrepancy struct {
	// ID is the shared identifier.
	ID Identifier `json:"id"`

	// Fields contains the differing field names in the first record's order.
	Fields []string `json:"differences"`

	// Changes is filled by Result.Explain.
	Changes []Change `json:"changes,omitempty"`

	left  Record
	right Record
}

// Records returns the matched records of the first and second collection.
func (d Discrepancy) Records() (Record, Record) {
	return d.left, d.right
}

// Result is the outcome of comparing two collections.
type Result struct {
	// Identifier is the field used to match records.
	Identifier string `json:"identifier"`

	// OnlyInA holds identifiers found only in the first collection, in its order.
	OnlyInA []Identifier `json:"only_in_a"`

	// OnlyInB holds identifiers found only in the second collection, in its order.
	OnlyInB []Identifier `json:"only_in_b"`

	// Common counts identifiers present in both collections.
	Common int `json:"common"`

	// Discrepancies holds one entry per matched pair with differing fields,
	// in the first collection's order.
	Discrepancies []Discrepancy `json:"discrepancies"`
}

// Identical reports whether the collections hold the same records.
func (r *Result) Identical() bool {
	return len(r.OnlyInA) == 0 && len(r.OnlyInB) == 0 && len(r.Discrepancies) == 0
}
