package reconcile

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/wI2L/jsondiff"

	"json-diff/core/utils"
)

// Explain fills Changes on every discrepancy of the result.
func (r *Result) Explain() error {
	for i := range r.Discrepancies {
		d := &r.Discrepancies[i]
		d.Changes = d.Changes[:0]
		for _, field := range d.Fields {
			oldVal, _ := d.left.Value(field)
			newVal, _ := d.right.Value(field)
			changes, err := FieldChanges(field, oldVal, newVal)
			if err != nil {
				return fmt.Errorf("record %s: %w", d.ID, err)
			}
			d.Changes = append(d.Changes, changes...)
		}
	}
	return nil
}

// FieldChanges describes how the value of field turns from oldVal into newVal.
//
// Two objects or two arrays are expanded into JSON Patch operations whose
// paths are prefixed with the field name. Any other pair yields a single
// replace change.
func FieldChanges(field string, oldVal, newVal any) ([]Change, error) {
	if !sameContainer(oldVal, newVal) {
		return []Change{{Path: field, Op: "replace", Old: oldVal, New: newVal}}, nil
	}

	patch, err := jsondiff.Compare(oldVal, newVal, jsondiff.UnmarshalFunc(unmarshalNumbers))
	if err != nil {
		return nil, fmt.Errorf("failed to compute changes for %q: %w", field, err)
	}

	changes := make([]Change, 0, len(patch))
	for _, op := range patch {
		// jsondiff compares numbers by text; 1 and 1.0 are not a change.
		if op.Type == jsondiff.OperationReplace && utils.NumbersEqual(op.OldValue, op.Value) {
			continue
		}
		changes = append(changes, Change{
			Path: field + fmt.Sprint(op.Path),
			Op:   op.Type,
			Old:  op.OldValue,
			New:  op.Value,
		})
	}
	if len(changes) == 0 {
		return []Change{{Path: field, Op: "replace", Old: oldVal, New: newVal}}, nil
	}
	return changes, nil
}

// unmarshalNumbers decodes like json.Unmarshal but keeps numbers as json.Number.
func unmarshalNumbers(data []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	return dec.Decode(v)
}

func sameContainer(a, b any) bool {
	switch a.(type) {
	case map[string]any:
		_, ok := b.(map[string]any)
		return ok
	case []any:
		_, ok := b.([]any)
		return ok
	default:
		return false
	}
}
