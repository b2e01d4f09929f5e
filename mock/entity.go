package mock

import (
	"context"

	"github.com/fwojciec/entaudit"
)

var _ entaudit.EntityExtractor = (*EntityExtractor)(nil)

// EntityExtractor is a mock implementation of entaudit.EntityExtractor.
type EntityExtractor struct {
	ExtractEntitiesFn func(ctx context.Context, text string) ([]entaudit.RawEntity, error)
}

func (e *EntityExtractor) ExtractEntities(ctx context.Context, text string) ([]entaudit.RawEntity, error) {
	return e.ExtractEntitiesFn(ctx, text)
}
