package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/bookmeta"
)

// Ensure LoggingProvider implements bookmeta.Provider.
var _ bookmeta.Provider = (*LoggingProvider)(nil)

// LoggingProvider wraps a Provider with logging of every search.
type LoggingProvider struct {
	next   bookmeta.Provider
	logger *slog.Logger
}

// NewLoggingProvider creates a new LoggingProvider.
func NewLoggingProvider(next bookmeta.Provider, logger *slog.Logger) *LoggingProvider {
	return &LoggingProvider{next: next, logger: logger}
}

// Source delegates to the wrapped provider.
func (p *LoggingProvider) Source() bookmeta.MetaSourceInfo {
	return p.next.Source()
}

// Search delegates to the wrapped provider and logs the operation.
func (p *LoggingProvider) Search(ctx context.Context, query, genericCover, locale string) (records []*bookmeta.MetaRecord, err error) {
	defer func(begin time.Time) {
		p.logger.Info("search",
			"provider", p.next.Source().ID,
			"query", query,
			"locale", locale,
			"count", len(records),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return p.next.Search(ctx, query, genericCover, locale)
}
