package mock

import (
	"context"

	"github.com/fwojciec/entaudit"
)

var _ entaudit.Auditor = (*Auditor)(nil)

// Auditor is a mock implementation of entaudit.Auditor.
type Auditor struct {
	AuditFn func(ctx context.Context, req entaudit.AuditRequest) (*entaudit.AuditVerdict, error)
}

func (a *Auditor) Audit(ctx context.Context, req entaudit.AuditRequest) (*entaudit.AuditVerdict, error) {
	return a.AuditFn(ctx, req)
}
