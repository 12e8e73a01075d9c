// Package slog provides log/slog decorators for refscrape services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/refscrape"
)

// Ensure LoggingFetcher implements refscrape.Fetcher.
var _ refscrape.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher with request logging.
type LoggingFetcher struct {
	next   refscrape.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next refscrape.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch delegates to the wrapped fetcher and logs the operation.
func (f *LoggingFetcher) Fetch(ctx context.Context, url string) (doc *refscrape.Document, err error) {
	defer func(begin time.Time) {
		var bytes, status int
		if doc != nil {
			bytes = len(doc.HTML)
			status = doc.StatusCode
		}
		f.logger.Info("fetch",
			"url", url,
			"status", status,
			"bytes", bytes,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return f.next.Fetch(ctx, url)
}

// Close delegates to the wrapped fetcher.
func (f *LoggingFetcher) Close() error {
	return f.next.Close()
}
