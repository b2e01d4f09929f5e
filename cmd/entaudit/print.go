package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fwojciec/entaudit"
)

// printRecords writes a human-readable result listing.
func printRecords(w io.Writer, records []*entaudit.ResultRecord) {
	for i, rec := range records {
		fmt.Fprintf(w, "%d. %s  [%s]\n", i+1, rec.Label, rec.Status)
		if rec.MainEntity != "" {
			fmt.Fprintf(w, "   Main: %s\n", rec.MainEntity)
		}
		if rec.SubEntities != "" {
			fmt.Fprintf(w, "   Subs: %s\n", rec.SubEntities)
		}
		if rec.Reasoning != "" {
			fmt.Fprintf(w, "   %s\n", rec.Reasoning)
		}
		if rec.Recommendation != "" {
			fmt.Fprintf(w, "   Action: %s\n", rec.Recommendation)
		}
	}
}

// writeCSV exports records to path through the configured writer.
func writeCSV(deps *Dependencies, path string, records []*entaudit.ResultRecord) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := deps.Writer.WriteAll(f, records); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
