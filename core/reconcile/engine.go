package reconcile

import (
	"fmt"

	"github.com/google/go-cmp/cmp"

	"json-diff/core/utils"
)

// numericEqual compares numbers by value wherever they appear, including
// inside nested objects and arrays.
var numericEqual = cmp.FilterValues(func(x, y any) bool {
	_, okX := utils.Rat(x)
	_, okY := utils.Rat(y)
	return okX && okY
}, cmp.Comparer(utils.NumbersEqual))

// Diff compares two collections matched on field.
//
// Both collections must share the same schema and contain field. Diff does
// not check uniqueness; callers run IsUnique on both sides first. If b repeats
// an identifier, the first record carrying it is used for matching.
func Diff(a, b *Collection, field string) (*Result, error) {
	if !a.schema.Has(field) {
		return nil, fmt.Errorf("%s: %w: %q", a.name, ErrFieldAbsent, field)
	}
	if !b.schema.Has(field) {
		return nil, fmt.Errorf("%s: %w: %q", b.name, ErrFieldAbsent, field)
	}
	if !a.schema.Equal(b.schema) {
		return nil, fmt.Errorf("%s and %s: %w", a.name, b.name, ErrSchemaMismatch)
	}

	idsA, err := a.identifiers(field)
	if err != nil {
		return nil, err
	}
	idsB, err := b.identifiers(field)
	if err != nil {
		return nil, err
	}

	// Index b once so matching is a map lookup.
	indexB := make(map[string]Record, len(idsB))
	for i, id := range idsB {
		if _, exists := indexB[id.key]; !exists {
			indexB[id.key] = b.records[i]
		}
	}
	setA := make(map[string]struct{}, len(idsA))
	for _, id := range idsA {
		setA[id.key] = struct{}{}
	}

	result := &Result{
		Identifier:    field,
		OnlyInA:       []Identifier{},
		OnlyInB:       []Identifier{},
		Discrepancies: []Discrepancy{},
	}

	for i, id := range idsA {
		recB, found := indexB[id.key]
		if !found {
			result.OnlyInA = append(result.OnlyInA, id)
			continue
		}
		result.Common++

		recA := a.records[i]
		if fields := compareFields(recA, recB); len(fields) > 0 {
			result.Discrepancies = append(result.Discrepancies, Discrepancy{
				ID:     id,
				Fields: fields,
				left:   recA,
				right:  recB,
			})
		}
	}

	for _, id := range idsB {
		if _, found := setA[id.key]; !found {
			result.OnlyInB = append(result.OnlyInB, id)
		}
	}

	return result, nil
}

// compareFields returns the fields of a whose value differs in b, in a's order.
func compareFields(a, b Record) []string {
	var fields []string
	for _, f := range a.Fields() {
		va, _ := a.Value(f)
		vb, ok := b.Value(f)
		if !ok || !cmp.Equal(va, vb, numericEqual) {
			fields = append(fields, f)
		}
	}
	return fields
}

func (c *Collection) identifiers(field string) ([]Identifier, error) {
	ids := make([]Identifier, len(c.records))
	for i, rec := range c.records {
		id, err := identifierOf(rec, field)
		if err != nil {
			return nil, fmt.Errorf("%s: record %d: %w", c.name, i, err)
		}
		ids[i] = id
	}
	return ids, nil
}
