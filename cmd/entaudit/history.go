package main

import (
	"fmt"
	"time"

	"github.com/fwojciec/entaudit"
)

// Run executes the history command.
func (c *HistoryCmd) Run(deps *Dependencies) error {
	batches, err := deps.Batches.FindBatches(deps.Ctx, entaudit.BatchFilter{Limit: c.Limit})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", entaudit.ErrorMessage(err))
		return err
	}

	if len(batches) == 0 {
		fmt.Fprintln(deps.Stdout, "No batches found. Use 'entaudit run' to audit something.")
		return nil
	}

	for _, b := range batches {
		focus := b.TargetFocus
		if focus == "" {
			focus = "-"
		}
		fmt.Fprintf(deps.Stdout, "%s  %s  %s  %d items  focus: %s\n",
			b.ID, b.CreatedAt.Format(time.RFC3339), b.Model, b.ItemCount, focus)
	}

	return nil
}
