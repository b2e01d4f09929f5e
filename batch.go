package entaudit

import (
	"context"
	"time"
)

// Batch is one stored audit run: the settings it ran with and the
// records it produced. The pipeline itself does not need persistence;
// batches exist so past audits can be listed and re-exported.
type Batch struct {
	ID          string    `json:"id"`
	Model       string    `json:"model"`
	TargetFocus string    `json:"targetFocus"`
	ItemCount   int       `json:"itemCount"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Validate returns an error if the batch contains invalid fields.
func (b *Batch) Validate() error {
	if b.ItemCount < 0 {
		return Errorf(EINVALID, "batch item count cannot be negative")
	}
	return nil
}

// BatchService represents a service for managing stored audit batches.
type BatchService interface {
	// CreateBatch creates a new batch.
	CreateBatch(ctx context.Context, batch *Batch) error

	// FindBatchByID retrieves a batch by ID.
	// Returns ENOTFOUND if the batch does not exist.
	FindBatchByID(ctx context.Context, id string) (*Batch, error)

	// FindBatches retrieves batches matching the filter.
	FindBatches(ctx context.Context, filter BatchFilter) ([]*Batch, error)

	// DeleteBatch permanently removes a batch and its records.
	// Returns ENOTFOUND if the batch does not exist.
	DeleteBatch(ctx context.Context, id string) error
}

// BatchFilter represents a filter for FindBatches.
type BatchFilter struct {
	ID *string `json:"id"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
