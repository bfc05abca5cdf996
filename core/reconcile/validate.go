package reconcile

import "fmt"

// Collection is a validated, non-empty list of records sharing one schema.
type Collection struct {
	name    string
	records []Record
	schema  Schema
}

// ValidateStructure reports whether v is a non-empty array whose elements are
// all objects carrying exactly the keys of the first element.
// It never panics on unexpected input.
func ValidateStructure(v any) bool {
	_, _, ok := asRecords(v)
	return ok
}

// NewCollection validates v and wraps it into a Collection.
// It returns ErrMalformedStructure if v fails ValidateStructure.
func NewCollection(name string, v any) (*Collection, error) {
	records, schema, ok := asRecords(v)
	if !ok {
		return nil, fmt.Errorf("%s: %w", name, ErrMalformedStructure)
	}
	return &Collection{name: name, records: records, schema: schema}, nil
}

// Name returns the name the collection was loaded from.
func (c *Collection) Name() string {
	return c.name
}

// Records returns the records in document order.
func (c *Collection) Records() []Record {
	return c.records
}

// Len returns the number of records.
func (c *Collection) Len() int {
	return len(c.records)
}

// Schema returns the field names of the first record.
func (c *Collection) Schema() Schema {
	return c.schema
}

func asRecords(v any) ([]Record, Schema, bool) {
	var records []Record
	switch t := v.(type) {
	case []Record:
		records = t
	case []any:
		records = make([]Record, 0, len(t))
		for _, item := range t {
			rec, ok := asRecord(item)
			if !ok {
				return nil, nil, false
			}
			records = append(records, rec)
		}
	default:
		return nil, nil, false
	}

	// An empty array has no first record to take the schema from.
	if len(records) == 0 {
		return nil, nil, false
	}

	schema := Schema(records[0].Fields())
	keys := make(map[string]struct{}, len(schema))
	for _, f := range schema {
		keys[f] = struct{}{}
	}
	for _, rec := range records[1:] {
		if rec.Len() != len(keys) {
			return nil, nil, false
		}
		for _, f := range rec.Fields() {
			if _, ok := keys[f]; !ok {
				return nil, nil, false
			}
		}
	}
	return records, schema, true
}

func asRecord(v any) (Record, bool) {
	switch t := v.(type) {
	case Record:
		return t, true
	case map[string]any:
		return RecordFromMap(t), true
	default:
		return Record{}, false
	}
}
