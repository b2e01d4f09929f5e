package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/entaudit"
)

// Ensure LoggingAuditor implements entaudit.Auditor.
var _ entaudit.Auditor = (*LoggingAuditor)(nil)

// LoggingAuditor wraps an Auditor with logging.
type LoggingAuditor struct {
	next   entaudit.Auditor
	logger *slog.Logger
}

// NewLoggingAuditor creates a new LoggingAuditor.
func NewLoggingAuditor(next entaudit.Auditor, logger *slog.Logger) *LoggingAuditor {
	return &LoggingAuditor{next: next, logger: logger}
}

// Audit logs the main entity and resulting verdict and delegates to
// the wrapped auditor.
func (a *LoggingAuditor) Audit(ctx context.Context, req entaudit.AuditRequest) (verdict *entaudit.AuditVerdict, err error) {
	defer func(begin time.Time) {
		status := ""
		if verdict != nil {
			status = string(verdict.Status)
		}
		a.logger.Info("audit",
			"main", req.Main.Name,
			"subs", len(req.Subs),
			"verdict", status,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return a.next.Audit(ctx, req)
}
