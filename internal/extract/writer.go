package extract

// writer.go - CSV and metadata output for extracted tables

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/threesity/dumptab/pkg/dump"
)

// metadataFile is written next to the per-table CSVs after every run.
const metadataFile = "extraction_metadata.json"

// Writer persists a Result as per-table CSV files plus a run metadata
// document.
type Writer struct {
	outDir string
	logger *slog.Logger
}

// NewWriter creates a Writer targeting outDir. The directory is created on
// first use.
func NewWriter(outDir string, logger *slog.Logger) *Writer {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Writer{outDir: outDir, logger: logger}
}

// Metadata describes one extraction run.
type Metadata struct {
	ExtractionDate string                   `json:"extraction_date"`
	SourceFile     string                   `json:"source_file"`
	Tables         map[string]TableMetadata `json:"tables_extracted"`
	TotalTables    int                      `json:"total_tables"`
}

// TableMetadata summarizes one extracted table.
type TableMetadata struct {
	Rows    int      `json:"rows"`
	Columns int      `json:"columns"`
	List    []string `json:"columns_list"`
}

// Write stores one CSV per available table, named after its business name,
// and the run metadata JSON. Unavailable tables produce no artifact.
// It returns the metadata written.
func (w *Writer) Write(res *Result, source string) (*Metadata, error) {
	if err := os.MkdirAll(w.outDir, 0750); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	meta := &Metadata{
		ExtractionDate: time.Now().Format(time.RFC3339),
		SourceFile:     source,
		Tables:         make(map[string]TableMetadata),
	}

	for _, tr := range res.Available() {
		path := filepath.Join(w.outDir, tr.BusinessName+".csv")
		if err := w.writeCSV(path, tr.Table); err != nil {
			return nil, fmt.Errorf("failed to write table %s: %w", tr.BusinessName, err)
		}
		w.logger.Debug("table written", "table", tr.BusinessName, "path", path, "rows", tr.Rows)

		meta.Tables[tr.BusinessName] = TableMetadata{
			Rows:    tr.Rows,
			Columns: tr.Columns,
			List:    tr.Table.Columns,
		}
	}
	meta.TotalTables = len(meta.Tables)

	if err := w.writeMetadata(meta); err != nil {
		return nil, err
	}
	return meta, nil
}

// writeCSV stores one reconciled table. NULL renders as an empty cell;
// text values go through verbatim, with encoding/csv handling quoting.
func (w *Writer) writeCSV(path string, tbl *dump.Table) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	cw := csv.NewWriter(f)
	if err := cw.Write(tbl.Columns); err != nil {
		return err
	}
	record := make([]string, len(tbl.Columns))
	for _, row := range tbl.Rows {
		for i, v := range row {
			if v.Null {
				record[i] = ""
			} else {
				record[i] = v.Text
			}
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return err
	}
	return f.Close()
}

func (w *Writer) writeMetadata(meta *Metadata) error {
	path := filepath.Join(w.outDir, metadataFile)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to write metadata: %w", err)
	}
	defer func() { _ = f.Close() }()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return fmt.Errorf("failed to encode metadata: %w", err)
	}
	return f.Close()
}
