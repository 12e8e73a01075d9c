package mock

import (
	"context"

	"github.com/fwojciec/refscrape"
)

var _ refscrape.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter is a mock implementation of refscrape.DomainLimiter.
type DomainLimiter struct {
	WaitFn func(ctx context.Context, domain string) error
}

func (l *DomainLimiter) Wait(ctx context.Context, domain string) error {
	if l.WaitFn == nil {
		return nil
	}
	return l.WaitFn(ctx, domain)
}
