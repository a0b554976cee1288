package mock

import (
	"context"

	"github.com/fwojciec/bookmeta"
)

var _ bookmeta.Provider = (*Provider)(nil)

// Provider is a mock implementation of bookmeta.Provider.
type Provider struct {
	SourceFn func() bookmeta.MetaSourceInfo
	SearchFn func(ctx context.Context, query, genericCover, locale string) ([]*bookmeta.MetaRecord, error)
}

func (p *Provider) Source() bookmeta.MetaSourceInfo {
	return p.SourceFn()
}

func (p *Provider) Search(ctx context.Context, query, genericCover, locale string) ([]*bookmeta.MetaRecord, error) {
	return p.SearchFn(ctx, query, genericCover, locale)
}
