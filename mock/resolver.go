package mock

import (
	"context"

	"github.com/fwojciec/nixdoc"
)

var _ nixdoc.PathResolver = (*PathResolver)(nil)

// PathResolver is a mock implementation of nixdoc.PathResolver.
type PathResolver struct {
	ResolveFn func(ctx context.Context, source nixdoc.Source) (string, error)
}

func (r *PathResolver) Resolve(ctx context.Context, source nixdoc.Source) (string, error) {
	return r.ResolveFn(ctx, source)
}
