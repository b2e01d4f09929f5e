package main

import (
	"fmt"

	"github.com/fwojciec/entaudit"
)

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return entaudit.Errorf(entaudit.EINVALID, "use --force to confirm deletion")
	}

	if err := deps.Batches.DeleteBatch(deps.Ctx, c.ID); err != nil {
		if entaudit.ErrorCode(err) == entaudit.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: batch %q not found. Use 'entaudit history' to see stored batches.\n", c.ID)
		} else {
			fmt.Fprintf(deps.Stderr, "error: %s\n", entaudit.ErrorMessage(err))
		}
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted batch %s\n", c.ID)
	return nil
}
