package mock

import (
	"context"

	"github.com/fwojciec/nixdoc"
)

var _ nixdoc.Cache = (*Cache)(nil)

// Cache is a mock implementation of nixdoc.Cache.
type Cache struct {
	LoadCachedFn func(ctx context.Context) error
	SaveCacheFn  func(ctx context.Context) error
}

func (c *Cache) LoadCached(ctx context.Context) error {
	return c.LoadCachedFn(ctx)
}

func (c *Cache) SaveCache(ctx context.Context) error {
	return c.SaveCacheFn(ctx)
}
