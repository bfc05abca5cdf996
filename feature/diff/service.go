package diff

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"json-diff/core/reconcile"
	"json-diff/core/source"

	"go.uber.org/zap"
)

// ErrInvalidRequest is returned when a request misses a required field.
var ErrInvalidRequest = errors.New("invalid request")

// CompareRequest names two collections of the source to compare.
type CompareRequest struct {
	FileA      string `json:"file_a"`
	FileB      string `json:"file_b"`
	Identifier string `json:"identifier"`
	Detail     bool   `json:"detail"`
}

// InlineRequest carries two JSON arrays to compare.
type InlineRequest struct {
	A          json.RawMessage `json:"a" swaggertype:"array,object"`
	B          json.RawMessage `json:"b" swaggertype:"array,object"`
	Identifier string          `json:"identifier"`
	Detail     bool            `json:"detail"`
}

// Report is a comparison result together with the compared names.
type Report struct {
	FileA string `json:"file_a"`
	FileB string `json:"file_b"`
	*reconcile.Result
}

// Service runs comparisons against one source.
type Service struct {
	source source.Source
	logger *zap.Logger
}

// NewService creates a new diff service.
func NewService(src source.Source, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{source: src, logger: logger}
}

// Source returns the source the service reads from.
func (s *Service) Source() source.Source {
	return s.source
}

// Files lists the collections offered by the source.
func (s *Service) Files(ctx context.Context) ([]string, error) {
	return s.source.List(ctx)
}

// Keys returns the schema of one collection.
func (s *Service) Keys(ctx context.Context, name string) (reconcile.Schema, error) {
	col, err := s.source.Load(ctx, name)
	if err != nil {
		return nil, err
	}
	return col.Schema(), nil
}

// LoadPair loads two collections and checks they share a schema.
func (s *Service) LoadPair(ctx context.Context, nameA, nameB string) (*reconcile.Collection, *reconcile.Collection, error) {
	a, err := s.source.Load(ctx, nameA)
	if err != nil {
		return nil, nil, err
	}
	b, err := s.source.Load(ctx, nameB)
	if err != nil {
		return nil, nil, err
	}
	if !a.Schema().Equal(b.Schema()) {
		return nil, nil, fmt.Errorf("%s and %s: %w", nameA, nameB, reconcile.ErrSchemaMismatch)
	}
	return a, b, nil
}

// Compare diffs two loaded collections on identifier.
// The identifier must be unique in both; with detail set every discrepancy
// also lists its field changes.
func (s *Service) Compare(a, b *reconcile.Collection, identifier string, detail bool) (*Report, error) {
	for _, col := range []*reconcile.Collection{a, b} {
		unique, err := col.IsUnique(identifier)
		if err != nil {
			return nil, err
		}
		if !unique {
			return nil, fmt.Errorf("%s: %w: %q", col.Name(), reconcile.ErrNotUnique, identifier)
		}
	}

	res, err := reconcile.Diff(a, b, identifier)
	if err != nil {
		return nil, err
	}
	if detail {
		if err := res.Explain(); err != nil {
			return nil, err
		}
	}

	s.logger.Debug("Comparison finished",
		zap.String("file_a", a.Name()),
		zap.String("file_b", b.Name()),
		zap.String("identifier", identifier),
		zap.Int("only_in_a", len(res.OnlyInA)),
		zap.Int("only_in_b", len(res.OnlyInB)),
		zap.Int("discrepancies", len(res.Discrepancies)),
	)
	return &Report{FileA: a.Name(), FileB: b.Name(), Result: res}, nil
}

// CompareFiles loads and compares two collections of the source.
func (s *Service) CompareFiles(ctx context.Context, req CompareRequest) (*Report, error) {
	if req.FileA == "" || req.FileB == "" || req.Identifier == "" {
		return nil, fmt.Errorf("%w: file_a, file_b and identifier are required", ErrInvalidRequest)
	}
	a, b, err := s.LoadPair(ctx, req.FileA, req.FileB)
	if err != nil {
		return nil, err
	}
	return s.Compare(a, b, req.Identifier, req.Detail)
}

// CompareInline compares the two arrays of the request.
func (s *Service) CompareInline(req InlineRequest) (*Report, error) {
	if len(req.A) == 0 || len(req.B) == 0 || req.Identifier == "" {
		return nil, fmt.Errorf("%w: a, b and identifier are required", ErrInvalidRequest)
	}
	a, err := inlineCollection("a", req.A)
	if err != nil {
		return nil, err
	}
	b, err := inlineCollection("b", req.B)
	if err != nil {
		return nil, err
	}
	if !a.Schema().Equal(b.Schema()) {
		return nil, fmt.Errorf("a and b: %w", reconcile.ErrSchemaMismatch)
	}
	return s.Compare(a, b, req.Identifier, req.Detail)
}

func inlineCollection(name string, raw json.RawMessage) (*reconcile.Collection, error) {
	v, err := reconcile.Decode(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return reconcile.NewCollection(name, v)
}
