package mock

import (
	"context"

	"github.com/fwojciec/entaudit"
)

var _ entaudit.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter is a mock implementation of entaudit.DomainLimiter.
type DomainLimiter struct {
	WaitFn func(ctx context.Context, domain string) error
}

func (d *DomainLimiter) Wait(ctx context.Context, domain string) error {
	if d.WaitFn == nil {
		return nil
	}
	return d.WaitFn(ctx, domain)
}
