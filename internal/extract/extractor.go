// Package extract orchestrates dump extraction: it runs the schema and row
// extractors per table, reconciles the results, and collects foreign key
// links, producing one Result per run.
package extract

import (
	"context"
	"log/slog"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/threesity/dumptab/pkg/dump"
)

// Status classifies a table's extraction outcome.
type Status string

const (
	// StatusOK means the table was reconciled and carries rows.
	StatusOK Status = "ok"
	// StatusMissingSchema means no CREATE TABLE block was found.
	StatusMissingSchema Status = "missing_schema"
	// StatusNoRows means the schema was found but no INSERT tuples were.
	StatusNoRows Status = "no_rows"
)

// Config configures an Extractor.
type Config struct {
	// Tables maps dump table names to the business names used for output
	// artifacts (e.g. users -> members).
	Tables map[string]string

	// Logger receives per-table diagnostics. Defaults to a discard logger.
	Logger *slog.Logger
}

// Extractor runs the full extraction pipeline over one dump text.
type Extractor struct {
	tables map[string]string
	logger *slog.Logger
}

// New creates an Extractor from cfg.
func New(cfg Config) *Extractor {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Extractor{
		tables: cfg.Tables,
		logger: logger,
	}
}

// TableResult is the outcome of one table's extraction.
type TableResult struct {
	// Name is the table's name in the dump; BusinessName the name used for
	// output artifacts and reporting.
	Name         string
	BusinessName string

	Status Status

	// Table holds the reconciled data when Status is StatusOK, nil
	// otherwise.
	Table *dump.Table

	// DeclaredColumns is the schema size before reconciliation; Columns
	// and Rows describe the reconciled table. When DeclaredColumns and
	// Columns differ, the schema was padded or truncated to the first
	// row's field count.
	DeclaredColumns int
	Columns         int
	Rows            int

	// Warning carries a non-fatal parse diagnostic (e.g. a malformed
	// trailing tuple); rows decoded before the fault are kept.
	Warning string
}

// Available reports whether the table produced usable output.
func (r TableResult) Available() bool {
	return r.Status == StatusOK
}

// Result is the outcome of one extraction run.
type Result struct {
	Tables    []TableResult
	Relations []dump.ForeignKey
}

// Available returns the results that produced usable tables.
func (r *Result) Available() []TableResult {
	var out []TableResult
	for _, tr := range r.Tables {
		if tr.Available() {
			out = append(out, tr)
		}
	}
	return out
}

// Run extracts every configured table from text. Each table's pipeline is
// a pure function of (text, name), so tables run concurrently; results are
// emitted in dump-name order to keep output deterministic. Relation
// scanning is dump-global and runs alongside the per-table work.
//
// Per-table failures never abort the run; the only fatal conditions are
// context cancellation and, upstream of this call, an unreadable input
// file.
func (e *Extractor) Run(ctx context.Context, text string) (*Result, error) {
	names := make([]string, 0, len(e.tables))
	for name := range e.tables {
		names = append(names, name)
	}
	sort.Strings(names)

	res := &Result{Tables: make([]TableResult, len(names))}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		res.Relations = dump.Relations(text)
		return nil
	})
	for i, name := range names {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res.Tables[i] = e.extractTable(text, name)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	e.logger.Info("extraction finished",
		"tables", len(res.Tables),
		"available", len(res.Available()),
		"relations", len(res.Relations))
	return res, nil
}

// extractTable runs schema extraction, row extraction, and reconciliation
// for one table.
func (e *Extractor) extractTable(text, name string) TableResult {
	tr := TableResult{
		Name:         name,
		BusinessName: e.tables[name],
	}

	cols := dump.Schema(text, name)
	tr.DeclaredColumns = len(cols)
	if len(cols) == 0 {
		tr.Status = StatusMissingSchema
		e.logger.Warn("no CREATE TABLE block found", "table", name)
		return tr
	}
	e.logger.Debug("schema extracted", "table", name, "columns", len(cols))

	rows, err := dump.Rows(text, name)
	if err != nil {
		// Keep whatever parsed before the fault.
		tr.Warning = err.Error()
		e.logger.Warn("row extraction degraded", "table", name, "error", err)
	}
	if len(rows) == 0 {
		tr.Status = StatusNoRows
		e.logger.Warn("no rows found", "table", name)
		return tr
	}
	e.logger.Debug("rows extracted", "table", name, "rows", len(rows))

	tbl := dump.Reconcile(name, cols, rows)
	if tbl == nil {
		tr.Status = StatusNoRows
		return tr
	}

	if len(tbl.Columns) != len(cols) {
		e.logger.Warn("column count mismatch adjusted",
			"table", name,
			"declared", len(cols),
			"actual", len(tbl.Columns))
	}

	tr.Status = StatusOK
	tr.Table = tbl
	tr.Columns = len(tbl.Columns)
	tr.Rows = len(tbl.Rows)
	return tr
}
