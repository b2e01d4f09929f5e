package mock

import (
	"context"

	"github.com/fwojciec/entaudit"
)

var _ entaudit.BatchService = (*BatchService)(nil)

// BatchService is a mock implementation of entaudit.BatchService.
type BatchService struct {
	CreateBatchFn   func(ctx context.Context, batch *entaudit.Batch) error
	FindBatchByIDFn func(ctx context.Context, id string) (*entaudit.Batch, error)
	FindBatchesFn   func(ctx context.Context, filter entaudit.BatchFilter) ([]*entaudit.Batch, error)
	DeleteBatchFn   func(ctx context.Context, id string) error
}

func (s *BatchService) CreateBatch(ctx context.Context, batch *entaudit.Batch) error {
	return s.CreateBatchFn(ctx, batch)
}

func (s *BatchService) FindBatchByID(ctx context.Context, id string) (*entaudit.Batch, error) {
	return s.FindBatchByIDFn(ctx, id)
}

func (s *BatchService) FindBatches(ctx context.Context, filter entaudit.BatchFilter) ([]*entaudit.Batch, error) {
	return s.FindBatchesFn(ctx, filter)
}

func (s *BatchService) DeleteBatch(ctx context.Context, id string) error {
	return s.DeleteBatchFn(ctx, id)
}
