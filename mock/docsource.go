package mock

import (
	"context"

	"github.com/fwojciec/nixdoc"
)

var _ nixdoc.DocSource = (*DocSource)(nil)

// DocSource is a mock implementation of nixdoc.DocSource.
type DocSource struct {
	AllKeysFn       func() []string
	SearchFn        func(query nixdoc.Lowercase) []nixdoc.DocEntry
	SearchLiberalFn func(query nixdoc.Lowercase) []nixdoc.DocEntry
	UpdateFn        func(ctx context.Context) (bool, error)
}

func (s *DocSource) AllKeys() []string {
	return s.AllKeysFn()
}

func (s *DocSource) Search(query nixdoc.Lowercase) []nixdoc.DocEntry {
	return s.SearchFn(query)
}

func (s *DocSource) SearchLiberal(query nixdoc.Lowercase) []nixdoc.DocEntry {
	return s.SearchLiberalFn(query)
}

func (s *DocSource) Update(ctx context.Context) (bool, error) {
	return s.UpdateFn(ctx)
}
