// Package audit provides batch orchestration for the content-audit
// pipeline. It coordinates fetching, cleaning, entity extraction,
// deduplication, ranking, and the model audit for each input item,
// isolating per-item failures so one bad page never aborts the batch.
package audit

import (
	"context"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"net/url"
	"sync/atomic"
	"time"
	"unicode/utf8"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/entaudit"
	"golang.org/x/sync/errgroup"
)

// MinTextLength is the minimum cleaned-text length worth analyzing.
// Anything shorter is recorded as insufficient content without calling
// the extraction service.
const MinTextLength = 50

// Runner orchestrates a batch of analysis items through the pipeline.
// All collaborators are injected; Runner holds no ambient state.
type Runner struct {
	Fetcher     entaudit.Fetcher
	Texts       entaudit.TextExtractor
	Entities    entaudit.EntityExtractor
	Auditor     entaudit.Auditor
	RateLimiter entaudit.DomainLimiter
	Concurrency int
	RetryDelays []time.Duration
}

// Options configures a single batch run.
type Options struct {
	// Exclusions are literal phrases removed from extracted text before
	// analysis.
	Exclusions []string

	// Selectors are CSS selectors whose subtrees are removed from the
	// document before text serialization.
	Selectors []string

	// TargetFocus applies to items that don't carry their own.
	TargetFocus string

	// PreviewText includes the cleaned text in progress events so a
	// caller can show what was actually analyzed.
	PreviewText bool
}

// ProgressEvent reports progress during a batch run.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	Label     string
	Record    *entaudit.ResultRecord
	Text      string
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressItemDone
	ProgressFinished
)

// ProgressFunc is a callback for reporting batch progress. It is called
// after each item completes, successfully or degraded.
type ProgressFunc func(event ProgressEvent)

// itemResult holds the outcome of processing a single item.
type itemResult struct {
	position int
	record   *entaudit.ResultRecord
	text     string
}

// Run processes every item through the pipeline and returns exactly one
// record per item, in input order. A failure at any stage for one item
// produces a degraded record for that item; siblings are unaffected.
// Cancelling the context stops new items from starting (they degrade
// with a cancellation record) while in-flight items finish cleanly.
func (r *Runner) Run(ctx context.Context, items []entaudit.AnalysisItem, opts Options, progress ProgressFunc) ([]*entaudit.ResultRecord, error) {
	if len(items) == 0 {
		return []*entaudit.ResultRecord{}, nil
	}

	concurrency := r.Concurrency
	if concurrency <= 0 {
		concurrency = 1
	}

	total := len(items)
	if progress != nil {
		progress(ProgressEvent{Type: ProgressStarted, Total: total})
	}

	resultCh := make(chan itemResult, total)
	var completed atomic.Int64

	g := &errgroup.Group{}
	g.SetLimit(concurrency)

	go func() {
		for i, item := range items {
			i, item := i, item
			g.Go(func() error {
				resultCh <- r.processItem(ctx, i, item, opts)
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	records := make([]*entaudit.ResultRecord, total)
	for result := range resultCh {
		result.record.Position = result.position
		records[result.position] = result.record

		n := int(completed.Add(1))
		if progress != nil {
			event := ProgressEvent{
				Type:      ProgressItemDone,
				Completed: n,
				Total:     total,
				Label:     result.record.Label,
				Record:    result.record,
			}
			if opts.PreviewText {
				event.Text = result.text
			}
			progress(event)
		}
	}

	if progress != nil {
		progress(ProgressEvent{Type: ProgressFinished, Completed: total, Total: total})
	}

	return records, ctx.Err()
}

// processItem runs the per-item state machine:
// fetch -> clean -> length check -> extract -> dedupe -> rank -> audit.
// Every failure path returns a degraded record, never an error.
func (r *Runner) processItem(ctx context.Context, position int, item entaudit.AnalysisItem, opts Options) itemResult {
	result := itemResult{position: position}
	if item.TargetFocus == "" {
		item.TargetFocus = opts.TargetFocus
	}

	if err := item.Validate(); err != nil {
		result.record = entaudit.BuildRecord(item, entaudit.RankedResult{},
			entaudit.ErrorVerdict(entaudit.ErrorMessage(err), "Fix the item input"))
		return result
	}

	if ctx.Err() != nil {
		result.record = entaudit.BuildRecord(item, entaudit.RankedResult{},
			entaudit.ErrorVerdict("canceled before processing started", "Re-run the batch"))
		return result
	}

	text, err := r.acquireText(ctx, item, opts)
	if err != nil {
		result.record = entaudit.BuildRecord(item, entaudit.RankedResult{},
			entaudit.ErrorVerdict(fmt.Sprintf("scrape failed: %v", err), "Check URL"))
		return result
	}

	cleaned := entaudit.Clean(text, opts.Exclusions)
	result.text = cleaned

	// Character count, not byte count: multibyte text must not slip
	// past the gate just because it encodes wide.
	length := utf8.RuneCountInString(cleaned)

	if length < MinTextLength {
		rec := entaudit.BuildRecord(item, entaudit.RankedResult{},
			entaudit.ErrorVerdict(fmt.Sprintf("insufficient text (%d chars)", length), "Check content length"))
		rec.TextLength = length
		rec.ContentHash = hashContent(cleaned)
		result.record = rec
		return result
	}

	raw, err := r.Entities.ExtractEntities(ctx, cleaned)
	if err != nil {
		rec := entaudit.BuildRecord(item, entaudit.RankedResult{},
			entaudit.ErrorVerdict(fmt.Sprintf("entity extraction failed: %v", err), "Check extraction service"))
		rec.TextLength = length
		rec.ContentHash = hashContent(cleaned)
		result.record = rec
		return result
	}

	ranked := entaudit.Rank(entaudit.Deduplicate(raw))
	if ranked.Main == nil {
		rec := entaudit.BuildRecord(item, ranked,
			entaudit.ErrorVerdict("no entities found", "Check content length"))
		rec.TextLength = length
		rec.ContentHash = hashContent(cleaned)
		result.record = rec
		return result
	}

	verdict, err := r.Auditor.Audit(ctx, entaudit.AuditRequest{
		URL:         item.URL,
		TargetFocus: item.TargetFocus,
		Main:        *ranked.Main,
		Subs:        ranked.Subs,
	})
	if err != nil {
		verdict = entaudit.ErrorVerdict(fmt.Sprintf("audit failed: %v", err), "Check model")
	}

	rec := entaudit.BuildRecord(item, ranked, verdict)
	rec.TextLength = length
	rec.ContentHash = hashContent(cleaned)
	result.record = rec
	return result
}

// acquireText returns the raw text for an item: pasted content as-is, or
// the serialized text of the fetched page for URL items.
func (r *Runner) acquireText(ctx context.Context, item entaudit.AnalysisItem, opts Options) (string, error) {
	if item.RawText != "" {
		return item.RawText, nil
	}

	if r.RateLimiter != nil {
		u, err := url.Parse(item.URL)
		if err != nil {
			return "", err
		}
		if err := r.RateLimiter.Wait(ctx, u.Host); err != nil {
			return "", err
		}
	}

	delays := r.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}
	html, err := FetchWithRetryDelays(ctx, item.URL, r.Fetcher.Fetch, nil, delays)
	if err != nil {
		return "", err
	}

	return r.Texts.Text(html, opts.Selectors)
}

// hashContent computes an xxHash fingerprint of the cleaned text.
func hashContent(content string) string {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, xxhash.Sum64String(content))
	return hex.EncodeToString(b)
}
