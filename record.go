package entaudit

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"
)

// VerdictStatus classifies the audit outcome for one item.
type VerdictStatus string

// Verdict statuses. Error is a local sentinel set when the audit call
// fails or any earlier pipeline stage degrades the item; it never comes
// from model output directly.
const (
	StatusPass     VerdictStatus = "Pass"
	StatusReview   VerdictStatus = "Review"
	StatusMismatch VerdictStatus = "Mismatch"
	StatusError    VerdictStatus = "Error"
)

// ParseVerdictStatus maps a model-reported verdict string onto the
// status taxonomy. Legacy "Fail" responses map to Mismatch; anything
// unrecognized defaults to Review so a sloppy model answer surfaces for
// a human rather than passing silently.
func ParseVerdictStatus(s string) VerdictStatus {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pass":
		return StatusPass
	case "mismatch", "fail":
		return StatusMismatch
	case "review":
		return StatusReview
	default:
		return StatusReview
	}
}

// AuditVerdict is the audit service's judgment of one item.
type AuditVerdict struct {
	Status         VerdictStatus `json:"status"`
	Reasoning      string        `json:"reasoning"`
	Recommendation string        `json:"recommendation"`
}

// ErrorVerdict builds the sentinel verdict for a degraded item. The
// reasoning and recommendation carry the diagnostic so the export never
// contains blank cells on the error path.
func ErrorVerdict(reasoning, recommendation string) *AuditVerdict {
	if reasoning == "" {
		reasoning = "audit unavailable"
	}
	if recommendation == "" {
		recommendation = "Retry the item"
	}
	return &AuditVerdict{
		Status:         StatusError,
		Reasoning:      reasoning,
		Recommendation: recommendation,
	}
}

// ResultRecord is the final per-item output row: item identity, the
// formatted entity summary, and the audit verdict. ID, BatchID,
// Position, and CreatedAt are assigned when a record is persisted.
type ResultRecord struct {
	ID       string `json:"id"`
	BatchID  string `json:"batchId"`
	Position int    `json:"position"`

	Label       string `json:"label"`
	URL         string `json:"url"`
	TargetFocus string `json:"targetFocus"`

	// MainEntity is "Name (0.35)" with the score at two decimals, or
	// empty when no entities were found.
	MainEntity string `json:"mainEntity"`

	// SubEntities is the comma-separated formatted sub-entity list in
	// rank order.
	SubEntities string `json:"subEntities"`

	Status         VerdictStatus `json:"status"`
	Reasoning      string        `json:"reasoning"`
	Recommendation string        `json:"recommendation"`

	// TextLength is the length of the cleaned text that was analyzed.
	TextLength int `json:"textLength"`

	// ContentHash fingerprints the cleaned text, letting history
	// queries spot unchanged pages across runs.
	ContentHash string `json:"contentHash"`

	CreatedAt time.Time `json:"createdAt"`
}

// Validate returns an error if the record contains invalid fields.
func (r *ResultRecord) Validate() error {
	if r.Label == "" {
		return Errorf(EINVALID, "record label required")
	}
	if r.Status == "" {
		return Errorf(EINVALID, "record status required")
	}
	return nil
}

// FormatEntity renders an entity for display with its aggregated score
// at two decimals. Downstream CSV and table consumers depend on this
// exact shape.
func FormatEntity(e MergedEntity) string {
	return fmt.Sprintf("%s (%.2f)", e.Name, e.Score)
}

// FormatSubEntities joins formatted sub-entities into one comma-separated
// string in rank order.
func FormatSubEntities(subs []MergedEntity) string {
	if len(subs) == 0 {
		return ""
	}
	parts := make([]string, 0, len(subs))
	for _, e := range subs {
		parts = append(parts, FormatEntity(e))
	}
	return strings.Join(parts, ", ")
}

// BuildRecord assembles the final record for an item from its ranked
// entities and verdict. A nil verdict produces the Error sentinel with
// non-blank diagnostics.
func BuildRecord(item AnalysisItem, ranked RankedResult, verdict *AuditVerdict) *ResultRecord {
	if verdict == nil {
		verdict = ErrorVerdict("", "")
	}

	rec := &ResultRecord{
		Label:          item.DisplayLabel(),
		URL:            item.URL,
		TargetFocus:    item.TargetFocus,
		SubEntities:    FormatSubEntities(ranked.Subs),
		Status:         verdict.Status,
		Reasoning:      verdict.Reasoning,
		Recommendation: verdict.Recommendation,
	}
	if ranked.Main != nil {
		rec.MainEntity = FormatEntity(*ranked.Main)
	}
	return rec
}

// RecordWriter exports result records to an external representation.
type RecordWriter interface {
	// WriteAll writes every record, in order, to w.
	WriteAll(w io.Writer, records []*ResultRecord) error
}

// RecordService represents a service for persisted result records.
type RecordService interface {
	// CreateRecord persists a record within a batch.
	CreateRecord(ctx context.Context, rec *ResultRecord) error

	// FindRecords retrieves records matching the filter, ordered by
	// position within their batch.
	FindRecords(ctx context.Context, filter RecordFilter) ([]*ResultRecord, error)
}

// RecordFilter represents a filter for FindRecords.
type RecordFilter struct {
	ID      *string `json:"id"`
	BatchID *string `json:"batchId"`
	Status  *string `json:"status"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
