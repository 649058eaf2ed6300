package mock

import (
	"context"

	"github.com/fwojciec/nixdoc"
)

var _ nixdoc.CacheStore = (*CacheStore)(nil)

// CacheStore is a mock implementation of nixdoc.CacheStore.
type CacheStore struct {
	LoadOptionsFn func(ctx context.Context, source nixdoc.Source) (map[string]nixdoc.OptionDocumentation, error)
	SaveOptionsFn func(ctx context.Context, source nixdoc.Source, opts map[string]nixdoc.OptionDocumentation) error
}

func (s *CacheStore) LoadOptions(ctx context.Context, source nixdoc.Source) (map[string]nixdoc.OptionDocumentation, error) {
	return s.LoadOptionsFn(ctx, source)
}

func (s *CacheStore) SaveOptions(ctx context.Context, source nixdoc.Source, opts map[string]nixdoc.OptionDocumentation) error {
	return s.SaveOptionsFn(ctx, source, opts)
}
