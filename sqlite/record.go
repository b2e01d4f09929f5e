package sqlite

import (
	"context"
	"strings"
	"time"

	"github.com/fwojciec/entaudit"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ entaudit.RecordService = (*RecordService)(nil)

// RecordService implements entaudit.RecordService using SQLite.
type RecordService struct {
	db *DB
}

// NewRecordService creates a new RecordService.
func NewRecordService(db *DB) *RecordService {
	return &RecordService{db: db}
}

// CreateRecord persists a record within a batch. The caller sets
// BatchID and Position; ID and CreatedAt are assigned here.
func (s *RecordService) CreateRecord(ctx context.Context, rec *entaudit.ResultRecord) error {
	if err := rec.Validate(); err != nil {
		return err
	}
	if rec.BatchID == "" {
		return entaudit.Errorf(entaudit.EINVALID, "record batch ID required")
	}

	rec.ID = uuid.New().String()
	rec.CreatedAt = time.Now().UTC()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO records (id, batch_id, position, label, url, target_focus,
			main_entity, sub_entities, status, reasoning, recommendation,
			text_length, content_hash, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, rec.ID, rec.BatchID, rec.Position, rec.Label, rec.URL, rec.TargetFocus,
		rec.MainEntity, rec.SubEntities, string(rec.Status), rec.Reasoning, rec.Recommendation,
		rec.TextLength, rec.ContentHash, rec.CreatedAt.Format(time.RFC3339))

	return err
}

// FindRecords retrieves records matching the filter, ordered by
// position within their batch.
func (s *RecordService) FindRecords(ctx context.Context, filter entaudit.RecordFilter) ([]*entaudit.ResultRecord, error) {
	var query strings.Builder
	var args []any

	query.WriteString(`SELECT id, batch_id, position, label, url, target_focus,
		main_entity, sub_entities, status, reasoning, recommendation,
		text_length, content_hash, created_at FROM records WHERE 1=1`)

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.BatchID != nil {
		query.WriteString(" AND batch_id = ?")
		args = append(args, *filter.BatchID)
	}
	if filter.Status != nil {
		query.WriteString(" AND status = ?")
		args = append(args, *filter.Status)
	}

	query.WriteString(" ORDER BY batch_id, position")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*entaudit.ResultRecord
	for rows.Next() {
		var rec entaudit.ResultRecord
		var status, createdAt string

		if err := rows.Scan(&rec.ID, &rec.BatchID, &rec.Position, &rec.Label, &rec.URL, &rec.TargetFocus,
			&rec.MainEntity, &rec.SubEntities, &status, &rec.Reasoning, &rec.Recommendation,
			&rec.TextLength, &rec.ContentHash, &createdAt); err != nil {
			return nil, err
		}

		rec.Status = entaudit.VerdictStatus(status)
		rec.CreatedAt, err = parseRFC3339(createdAt, "created_at")
		if err != nil {
			return nil, err
		}

		records = append(records, &rec)
	}

	return records, rows.Err()
}
