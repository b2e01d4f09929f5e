package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/entaudit"
	"github.com/fwojciec/entaudit/audit"
)

// Run executes the run command.
func (c *RunCmd) Run(deps *Dependencies) error {
	items, err := c.collectItems()
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", entaudit.ErrorMessage(err))
		return err
	}
	if len(items) == 0 {
		fmt.Fprintf(deps.Stderr, "error: nothing to audit. Pass URLs, --file, or --text-file.\n")
		return entaudit.Errorf(entaudit.EINVALID, "no items to audit")
	}

	exclusions, err := c.collectExclusions()
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", entaudit.ErrorMessage(err))
		return err
	}

	opts := audit.Options{
		Exclusions:  exclusions,
		Selectors:   c.Selector,
		TargetFocus: c.Focus,
		PreviewText: c.ShowText,
	}

	progress := func(event audit.ProgressEvent) {
		switch event.Type {
		case audit.ProgressStarted:
			fmt.Fprintf(deps.Stderr, "Auditing %d items\n", event.Total)
		case audit.ProgressItemDone:
			fmt.Fprintf(deps.Stderr, "  [%d/%d] %s: %s\n",
				event.Completed, event.Total, event.Label, event.Record.Status)
			if c.ShowText && event.Text != "" {
				fmt.Fprintf(deps.Stderr, "----- analyzed text (%s) -----\n%s\n-----\n", event.Label, event.Text)
			}
		case audit.ProgressFinished:
			// Summary printed after the run completes
		}
	}

	// A canceled run still yields one (degraded) record per item; show
	// and save whatever came back before reporting the interruption.
	records, runErr := deps.Runner.Run(deps.Ctx, items, opts, progress)
	if runErr != nil && len(records) == 0 {
		fmt.Fprintf(deps.Stderr, "error: %s\n", entaudit.ErrorMessage(runErr))
		return runErr
	}
	if runErr != nil {
		fmt.Fprintf(deps.Stderr, "batch interrupted: %s\n", entaudit.ErrorMessage(runErr))
	}

	printRecords(deps.Stdout, records)

	if !c.NoSave {
		// Detached from the run context so interrupted results still persist.
		saveCtx := context.WithoutCancel(deps.Ctx)

		batch := &entaudit.Batch{
			Model:       c.Model,
			TargetFocus: c.Focus,
			ItemCount:   len(items),
		}
		if err := deps.Batches.CreateBatch(saveCtx, batch); err != nil {
			fmt.Fprintf(deps.Stderr, "error saving batch: %s\n", entaudit.ErrorMessage(err))
			return err
		}
		for i, rec := range records {
			rec.BatchID = batch.ID
			rec.Position = i
			if err := deps.Records.CreateRecord(saveCtx, rec); err != nil {
				fmt.Fprintf(deps.Stderr, "error saving record: %s\n", entaudit.ErrorMessage(err))
				return err
			}
		}
		fmt.Fprintf(deps.Stdout, "\nSaved batch %s (%d records)\n", batch.ID, len(records))
	}

	if c.CSV != "" {
		if err := writeCSV(deps, c.CSV, records); err != nil {
			fmt.Fprintf(deps.Stderr, "error writing CSV: %v\n", err)
			return err
		}
		fmt.Fprintf(deps.Stdout, "Wrote %s\n", c.CSV)
	}

	return runErr
}

// collectItems assembles analysis items from positional URLs, the URL
// file, and raw text files, in that order.
func (c *RunCmd) collectItems() ([]entaudit.AnalysisItem, error) {
	var items []entaudit.AnalysisItem

	for _, u := range c.URLs {
		items = append(items, entaudit.AnalysisItem{URL: u, TargetFocus: c.Focus})
	}

	if c.File != "" {
		urls, err := readLines(c.File)
		if err != nil {
			return nil, err
		}
		for _, u := range urls {
			items = append(items, entaudit.AnalysisItem{URL: u, TargetFocus: c.Focus})
		}
	}

	for _, path := range c.TextFile {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, entaudit.Errorf(entaudit.EINVALID, "cannot read text file %q: %v", path, err)
		}
		items = append(items, entaudit.AnalysisItem{
			Label:       filepath.Base(path),
			RawText:     string(data),
			TargetFocus: c.Focus,
		})
	}

	return items, nil
}

// collectExclusions merges --exclude flags with the exclusion file.
func (c *RunCmd) collectExclusions() ([]string, error) {
	exclusions := append([]string(nil), c.Exclude...)

	if c.ExcludeFile != "" {
		lines, err := readLines(c.ExcludeFile)
		if err != nil {
			return nil, err
		}
		exclusions = append(exclusions, lines...)
	}

	return exclusions, nil
}

// readLines returns the non-blank, non-comment lines of a file.
func readLines(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, entaudit.Errorf(entaudit.EINVALID, "cannot read file %q: %v", path, err)
	}

	var lines []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		lines = append(lines, line)
	}
	return lines, nil
}
