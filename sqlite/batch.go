package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/fwojciec/entaudit"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ entaudit.BatchService = (*BatchService)(nil)

// BatchService implements entaudit.BatchService using SQLite.
type BatchService struct {
	db *DB
}

// NewBatchService creates a new BatchService.
func NewBatchService(db *DB) *BatchService {
	return &BatchService{db: db}
}

// CreateBatch creates a new batch.
func (s *BatchService) CreateBatch(ctx context.Context, batch *entaudit.Batch) error {
	if err := batch.Validate(); err != nil {
		return err
	}

	batch.ID = uuid.New().String()
	batch.CreatedAt = time.Now().UTC()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO batches (id, model, target_focus, item_count, created_at)
		VALUES (?, ?, ?, ?, ?)
	`, batch.ID, batch.Model, batch.TargetFocus, batch.ItemCount,
		batch.CreatedAt.Format(time.RFC3339))

	return err
}

// FindBatchByID retrieves a batch by ID.
func (s *BatchService) FindBatchByID(ctx context.Context, id string) (*entaudit.Batch, error) {
	var batch entaudit.Batch
	var createdAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT id, model, target_focus, item_count, created_at
		FROM batches
		WHERE id = ?
	`, id).Scan(&batch.ID, &batch.Model, &batch.TargetFocus, &batch.ItemCount, &createdAt)

	if err == sql.ErrNoRows {
		return nil, entaudit.Errorf(entaudit.ENOTFOUND, "batch not found")
	}
	if err != nil {
		return nil, err
	}

	batch.CreatedAt, err = parseRFC3339(createdAt, "created_at")
	if err != nil {
		return nil, err
	}

	return &batch, nil
}

// FindBatches retrieves batches matching the filter, newest first.
func (s *BatchService) FindBatches(ctx context.Context, filter entaudit.BatchFilter) ([]*entaudit.Batch, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, model, target_focus, item_count, created_at FROM batches WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}

	query.WriteString(" ORDER BY created_at DESC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var batches []*entaudit.Batch
	for rows.Next() {
		var batch entaudit.Batch
		var createdAt string

		if err := rows.Scan(&batch.ID, &batch.Model, &batch.TargetFocus, &batch.ItemCount, &createdAt); err != nil {
			return nil, err
		}

		batch.CreatedAt, err = parseRFC3339(createdAt, "created_at")
		if err != nil {
			return nil, err
		}

		batches = append(batches, &batch)
	}

	return batches, rows.Err()
}

// DeleteBatch permanently removes a batch. Its records cascade.
func (s *BatchService) DeleteBatch(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM batches WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return entaudit.Errorf(entaudit.ENOTFOUND, "batch not found")
	}

	return nil
}
