package mock

import (
	"context"
	"io"

	"github.com/fwojciec/entaudit"
)

var _ entaudit.RecordService = (*RecordService)(nil)

// RecordService is a mock implementation of entaudit.RecordService.
type RecordService struct {
	CreateRecordFn func(ctx context.Context, rec *entaudit.ResultRecord) error
	FindRecordsFn  func(ctx context.Context, filter entaudit.RecordFilter) ([]*entaudit.ResultRecord, error)
}

func (s *RecordService) CreateRecord(ctx context.Context, rec *entaudit.ResultRecord) error {
	return s.CreateRecordFn(ctx, rec)
}

func (s *RecordService) FindRecords(ctx context.Context, filter entaudit.RecordFilter) ([]*entaudit.ResultRecord, error) {
	return s.FindRecordsFn(ctx, filter)
}

var _ entaudit.RecordWriter = (*RecordWriter)(nil)

// RecordWriter is a mock implementation of entaudit.RecordWriter.
type RecordWriter struct {
	WriteAllFn func(w io.Writer, records []*entaudit.ResultRecord) error
}

func (rw *RecordWriter) WriteAll(w io.Writer, records []*entaudit.ResultRecord) error {
	return rw.WriteAllFn(w, records)
}
