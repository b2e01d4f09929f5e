package entaudit

import "context"

// AuditRequest carries the ranked entity summary for one item to the
// audit service.
type AuditRequest struct {
	// URL of the audited page; empty for raw-text items.
	URL string

	// TargetFocus is the caller's intended topic, when provided.
	TargetFocus string

	// Main is the highest-scored canonical entity.
	Main MergedEntity

	// Subs are the remaining entities in rank order.
	Subs []MergedEntity
}

// Auditor judges whether page content aligns with its topical focus.
type Auditor interface {
	// Audit returns the service's verdict for one item. A transport
	// failure or unparseable response is an error; callers turn it into
	// the Error sentinel verdict rather than a fabricated judgment.
	Audit(ctx context.Context, req AuditRequest) (*AuditVerdict, error)
}
