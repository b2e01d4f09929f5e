package main

import (
	"context"
	"io"

	"github.com/fwojciec/entaudit"
	"github.com/fwojciec/entaudit/audit"
	"github.com/fwojciec/entaudit/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx     context.Context
	Stdout  io.Writer
	Stderr  io.Writer
	DB      *sqlite.DB
	Batches entaudit.BatchService
	Records entaudit.RecordService
	Writer  entaudit.RecordWriter
	Runner  *audit.Runner
	Model   string
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Run     RunCmd     `cmd:"" help:"Audit a batch of URLs or text files"`
	History HistoryCmd `cmd:"" help:"List stored audit batches"`
	Show    ShowCmd    `cmd:"" help:"Show the records of a stored batch"`
	Delete  DeleteCmd  `cmd:"" help:"Delete a stored batch and its records"`
}

// RunCmd is the "run" subcommand.
type RunCmd struct {
	URLs        []string `arg:"" optional:"" help:"URLs to audit"`
	File        string   `short:"f" help:"File with one URL per line"`
	TextFile    []string `name:"text-file" help:"Audit a file's contents as raw text (repeatable)"`
	Focus       string   `help:"Intended topic of the pages, passed to the audit model"`
	Exclude     []string `short:"x" help:"Literal phrase stripped from extracted text (repeatable)"`
	ExcludeFile string   `name:"exclude-file" help:"File with one exclusion phrase per line"`
	Selector    []string `short:"s" help:"CSS selector removed from pages before text extraction (repeatable)"`
	Model       string   `default:"gemini-2.5-flash" help:"Gemini model for the audit"`
	Concurrency int      `short:"c" default:"4" help:"Concurrent item limit"`
	Browser     bool     `default:"true" negatable:"" help:"Render pages in a headless browser (--no-browser for plain HTTP)"`
	Extractor   string   `default:"dom" enum:"dom,article,reader" help:"Text extraction strategy: dom (whole body), article (trafilatura main content), reader (readability heuristics)"`
	CSV         string   `name:"csv" help:"Also write results as CSV to this path"`
	NoSave      bool     `name:"no-save" help:"Don't store the batch in the database"`
	ShowText    bool     `name:"show-text" help:"Print the analyzed text of each item"`
	Verbose     bool     `short:"v" help:"Log pipeline activity to stderr"`
}

// HistoryCmd is the "history" subcommand.
type HistoryCmd struct {
	Limit int `default:"20" help:"Maximum number of batches to list"`
}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	ID     string `arg:"" help:"Batch ID"`
	Status string `help:"Only show records with this verdict status"`
	CSV    string `name:"csv" help:"Write the records as CSV to this path"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	ID    string `arg:"" help:"Batch ID"`
	Force bool   `help:"Confirm deletion"`
}
