package sqlite_test

import (
	"context"
	"testing"

	"github.com/fwojciec/entaudit"
	"github.com/fwojciec/entaudit/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// createTestBatch inserts a batch for records to hang off.
func createTestBatch(t *testing.T, db *sqlite.DB) *entaudit.Batch {
	t.Helper()

	batch := &entaudit.Batch{Model: "gemini-2.5-flash"}
	require.NoError(t, sqlite.NewBatchService(db).CreateBatch(context.Background(), batch))
	return batch
}

func TestRecordService_CreateRecord(t *testing.T) {
	t.Parallel()

	t.Run("persists all fields", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		batch := createTestBatch(t, db)
		svc := sqlite.NewRecordService(db)

		rec := &entaudit.ResultRecord{
			BatchID:        batch.ID,
			Position:       0,
			Label:          "https://example.com/plumbers",
			URL:            "https://example.com/plumbers",
			TargetFocus:    "plumbing services",
			MainEntity:     "Plumbers (0.35)",
			SubEntities:    "London (0.20)",
			Status:         entaudit.StatusPass,
			Reasoning:      "on topic",
			Recommendation: "None",
			TextLength:     1420,
			ContentHash:    "deadbeef",
		}

		require.NoError(t, svc.CreateRecord(context.Background(), rec))
		assert.NotEmpty(t, rec.ID)
		assert.False(t, rec.CreatedAt.IsZero())

		found, err := svc.FindRecords(context.Background(), entaudit.RecordFilter{ID: &rec.ID})
		require.NoError(t, err)
		require.Len(t, found, 1)
		assert.Equal(t, "Plumbers (0.35)", found[0].MainEntity)
		assert.Equal(t, "London (0.20)", found[0].SubEntities)
		assert.Equal(t, entaudit.StatusPass, found[0].Status)
		assert.Equal(t, 1420, found[0].TextLength)
		assert.Equal(t, "deadbeef", found[0].ContentHash)
	})

	t.Run("requires a batch ID", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewRecordService(db)

		err := svc.CreateRecord(context.Background(), &entaudit.ResultRecord{
			Label:  "item",
			Status: entaudit.StatusPass,
		})

		require.Error(t, err)
		assert.Equal(t, entaudit.EINVALID, entaudit.ErrorCode(err))
	})

	t.Run("rejects an invalid record", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		batch := createTestBatch(t, db)
		svc := sqlite.NewRecordService(db)

		err := svc.CreateRecord(context.Background(), &entaudit.ResultRecord{
			BatchID: batch.ID,
			Status:  entaudit.StatusPass,
		})

		require.Error(t, err)
		assert.Equal(t, entaudit.EINVALID, entaudit.ErrorCode(err))
	})
}

func TestRecordService_FindRecords(t *testing.T) {
	t.Parallel()

	t.Run("orders records by position within a batch", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		batch := createTestBatch(t, db)
		svc := sqlite.NewRecordService(db)

		// Insert out of order to prove ordering comes from position.
		for _, pos := range []int{2, 0, 1} {
			require.NoError(t, svc.CreateRecord(context.Background(), &entaudit.ResultRecord{
				BatchID:  batch.ID,
				Position: pos,
				Label:    "item",
				Status:   entaudit.StatusPass,
			}))
		}

		records, err := svc.FindRecords(context.Background(), entaudit.RecordFilter{BatchID: &batch.ID})

		require.NoError(t, err)
		require.Len(t, records, 3)
		for i, rec := range records {
			assert.Equal(t, i, rec.Position)
		}
	})

	t.Run("filters by status", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		batch := createTestBatch(t, db)
		svc := sqlite.NewRecordService(db)

		statuses := []entaudit.VerdictStatus{entaudit.StatusPass, entaudit.StatusError, entaudit.StatusPass}
		for i, status := range statuses {
			require.NoError(t, svc.CreateRecord(context.Background(), &entaudit.ResultRecord{
				BatchID:  batch.ID,
				Position: i,
				Label:    "item",
				Status:   status,
			}))
		}

		errStatus := string(entaudit.StatusError)
		records, err := svc.FindRecords(context.Background(), entaudit.RecordFilter{
			BatchID: &batch.ID,
			Status:  &errStatus,
		})

		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, entaudit.StatusError, records[0].Status)
	})

	t.Run("empty result for unknown batch", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewRecordService(db)

		unknown := "no-such-batch"
		records, err := svc.FindRecords(context.Background(), entaudit.RecordFilter{BatchID: &unknown})

		require.NoError(t, err)
		assert.Empty(t, records)
	})
}
