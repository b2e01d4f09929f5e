package main

import (
	"fmt"
	"time"

	"github.com/fwojciec/entaudit"
)

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	batch, err := deps.Batches.FindBatchByID(deps.Ctx, c.ID)
	if err != nil {
		if entaudit.ErrorCode(err) == entaudit.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: batch %q not found. Use 'entaudit history' to see stored batches.\n", c.ID)
		} else {
			fmt.Fprintf(deps.Stderr, "error: %s\n", entaudit.ErrorMessage(err))
		}
		return err
	}

	filter := entaudit.RecordFilter{BatchID: &batch.ID}
	if c.Status != "" {
		filter.Status = &c.Status
	}

	records, err := deps.Records.FindRecords(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", entaudit.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Batch %s (%s, %s, %d items)\n\n",
		batch.ID, batch.CreatedAt.Format(time.RFC3339), batch.Model, batch.ItemCount)

	if len(records) == 0 {
		fmt.Fprintln(deps.Stdout, "No matching records.")
		return nil
	}

	printRecords(deps.Stdout, records)

	if c.CSV != "" {
		if err := writeCSV(deps, c.CSV, records); err != nil {
			fmt.Fprintf(deps.Stderr, "error writing CSV: %v\n", err)
			return err
		}
		fmt.Fprintf(deps.Stdout, "\nWrote %s\n", c.CSV)
	}

	return nil
}
