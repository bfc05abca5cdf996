package reconcile

import "fmt"

// IsUnique reports whether no two records share a value for field.
// It stops at the first repeated value.
//
// A record without the field yields ErrFieldAbsent and an object or array
// value yields ErrUnhashableIdentifier; neither is treated as unique.
func (c *Collection) IsUnique(field string) (bool, error) {
	seen := make(map[string]struct{}, len(c.records))
	for i, rec := range c.records {
		id, err := identifierOf(rec, field)
		if err != nil {
			return false, fmt.Errorf("%s: record %d: %w", c.name, i, err)
		}
		if _, dup := seen[id.key]; dup {
			return false, nil
		}
		seen[id.key] = struct{}{}
	}
	return true, nil
}

func identifierOf(rec Record, field string) (Identifier, error) {
	v, ok := rec.Value(field)
	if !ok {
		return Identifier{}, fmt.Errorf("%w: %q", ErrFieldAbsent, field)
	}
	return NewIdentifier(v)
}
