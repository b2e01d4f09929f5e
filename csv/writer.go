// Package csv exports result records as CSV.
package csv

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/fwojciec/entaudit"
)

// Header is the column order of exported CSV files.
var Header = []string{
	"Label",
	"URL",
	"Target Focus",
	"Main Entity",
	"Sub Entities",
	"Verdict",
	"Reasoning",
	"Action",
	"Text Length",
}

// Ensure Writer implements entaudit.RecordWriter at compile time.
var _ entaudit.RecordWriter = (*Writer)(nil)

// Writer exports result records as UTF-8 CSV with a header row,
// preserving record order.
type Writer struct{}

// NewWriter creates a new Writer.
func NewWriter() *Writer {
	return &Writer{}
}

// WriteAll writes the header followed by one row per record.
func (wr *Writer) WriteAll(w io.Writer, records []*entaudit.ResultRecord) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(Header); err != nil {
		return err
	}

	for _, rec := range records {
		row := []string{
			rec.Label,
			rec.URL,
			rec.TargetFocus,
			rec.MainEntity,
			rec.SubEntities,
			string(rec.Status),
			rec.Reasoning,
			rec.Recommendation,
			strconv.Itoa(rec.TextLength),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
