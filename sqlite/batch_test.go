package sqlite_test

import (
	"context"
	"testing"

	"github.com/fwojciec/entaudit"
	"github.com/fwojciec/entaudit/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBatchService_CreateBatch(t *testing.T) {
	t.Parallel()

	t.Run("assigns ID and creation time", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewBatchService(db)

		batch := &entaudit.Batch{
			Model:       "gemini-2.5-flash",
			TargetFocus: "plumbing services",
			ItemCount:   3,
		}

		err := svc.CreateBatch(context.Background(), batch)

		require.NoError(t, err)
		assert.NotEmpty(t, batch.ID)
		assert.False(t, batch.CreatedAt.IsZero())
	})

	t.Run("rejects negative item count", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewBatchService(db)

		err := svc.CreateBatch(context.Background(), &entaudit.Batch{ItemCount: -1})

		require.Error(t, err)
		assert.Equal(t, entaudit.EINVALID, entaudit.ErrorCode(err))
	})
}

func TestBatchService_FindBatchByID(t *testing.T) {
	t.Parallel()

	t.Run("returns the stored batch", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewBatchService(db)

		created := &entaudit.Batch{Model: "gemini-2.5-flash", ItemCount: 2}
		require.NoError(t, svc.CreateBatch(context.Background(), created))

		found, err := svc.FindBatchByID(context.Background(), created.ID)

		require.NoError(t, err)
		assert.Equal(t, created.ID, found.ID)
		assert.Equal(t, "gemini-2.5-flash", found.Model)
		assert.Equal(t, 2, found.ItemCount)
	})

	t.Run("returns ENOTFOUND for unknown ID", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewBatchService(db)

		_, err := svc.FindBatchByID(context.Background(), "no-such-batch")

		require.Error(t, err)
		assert.Equal(t, entaudit.ENOTFOUND, entaudit.ErrorCode(err))
	})
}

func TestBatchService_FindBatches(t *testing.T) {
	t.Parallel()

	t.Run("filters by ID", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewBatchService(db)

		a := &entaudit.Batch{Model: "a"}
		b := &entaudit.Batch{Model: "b"}
		require.NoError(t, svc.CreateBatch(context.Background(), a))
		require.NoError(t, svc.CreateBatch(context.Background(), b))

		batches, err := svc.FindBatches(context.Background(), entaudit.BatchFilter{ID: &a.ID})

		require.NoError(t, err)
		require.Len(t, batches, 1)
		assert.Equal(t, "a", batches[0].Model)
	})

	t.Run("applies limit and offset", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewBatchService(db)

		for i := 0; i < 5; i++ {
			require.NoError(t, svc.CreateBatch(context.Background(), &entaudit.Batch{}))
		}

		batches, err := svc.FindBatches(context.Background(), entaudit.BatchFilter{Limit: 2, Offset: 1})

		require.NoError(t, err)
		assert.Len(t, batches, 2)
	})
}

func TestBatchService_DeleteBatch(t *testing.T) {
	t.Parallel()

	t.Run("removes the batch and cascades to records", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		batches := sqlite.NewBatchService(db)
		records := sqlite.NewRecordService(db)

		batch := &entaudit.Batch{ItemCount: 1}
		require.NoError(t, batches.CreateBatch(context.Background(), batch))
		require.NoError(t, records.CreateRecord(context.Background(), &entaudit.ResultRecord{
			BatchID: batch.ID,
			Label:   "item",
			Status:  entaudit.StatusPass,
		}))

		require.NoError(t, batches.DeleteBatch(context.Background(), batch.ID))

		_, err := batches.FindBatchByID(context.Background(), batch.ID)
		assert.Equal(t, entaudit.ENOTFOUND, entaudit.ErrorCode(err))

		remaining, err := records.FindRecords(context.Background(), entaudit.RecordFilter{BatchID: &batch.ID})
		require.NoError(t, err)
		assert.Empty(t, remaining)
	})

	t.Run("returns ENOTFOUND for unknown ID", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewBatchService(db)

		err := svc.DeleteBatch(context.Background(), "no-such-batch")

		require.Error(t, err)
		assert.Equal(t, entaudit.ENOTFOUND, entaudit.ErrorCode(err))
	})
}
