package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/threesity/dumptab/internal/cli/output"
	"github.com/threesity/dumptab/internal/extract"
)

// NewExtractCommand creates the extract command.
func NewExtractCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "extract",
		Short: "Extract tables from a MySQL dump into CSV files",
		Long: `Extract the configured tables from a MySQL-style dump file.

For each table the dump text is scanned for its CREATE TABLE block and
INSERT statements, the two are reconciled, and the result is written as
<business-name>.csv in the output directory, together with an
extraction_metadata.json describing the run.

Tables without a schema or without rows are reported and skipped; they
never abort the run.

Output adapts to environment:
  - Terminal: Styled, colored output
  - Piped/Scripted: Markdown format (agent-friendly)

Use --output to override: auto, text, markdown, json`,
		Example: `  # Extract using the default dump and output directory
  dumptab extract

  # Extract a specific dump into a specific directory
  dumptab extract --dump backup.dump --out-dir ./csv

  # Extract and emit a JSON report
  dumptab extract --output json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runExtract(cmd)
		},
	}

	return cmd
}

func runExtract(cmd *cobra.Command) error {
	cmdCtx := NewCommandContext(cmd)
	r := cmdCtx.Renderer

	res, err := runExtraction(cmd, cmdCtx)
	if err != nil {
		return err
	}

	w := extract.NewWriter(cmdCtx.Cfg.OutDir, cmdCtx.Logger)
	if _, err := w.Write(res, cmdCtx.Cfg.DumpPath); err != nil {
		return err
	}

	infos := tableInfos(res)
	summary := extractSummary(res, cmdCtx.Cfg.OutDir)

	switch r.EffectiveMode() {
	case output.ModeJSON:
		return r.JSON(output.ExtractOutput{
			Source:  cmdCtx.Cfg.DumpPath,
			Tables:  infos,
			Summary: summary,
		})
	case output.ModeMarkdown:
		return extractMarkdown(r, cmdCtx.Cfg.DumpPath, infos, summary)
	default:
		return extractText(r, cmdCtx.Cfg.DumpPath, infos, summary)
	}
}

// extractText outputs extraction results in styled text format.
func extractText(r *output.Renderer, source string, infos []output.TableInfo, summary output.ExtractSummary) error {
	r.Header(1, "Extraction")

	for _, info := range infos {
		status, detail := statusDetail(info)
		r.StatusLine(info.BusinessName, status, detail)
		if info.Warning != "" {
			r.Muted("    " + info.Warning)
		}
	}

	r.Println("")
	r.Muted(fmt.Sprintf("Source: %s", source))
	r.Muted(fmt.Sprintf("Output: %s (%d tables, %d rows)",
		summary.OutputDir, summary.AvailableTables, summary.TotalRows))
	return nil
}

// extractMarkdown outputs extraction results in markdown format.
func extractMarkdown(r *output.Renderer, source string, infos []output.TableInfo, summary output.ExtractSummary) error {
	r.Println(output.FormatHeader(1, "Extraction"))
	r.Println("")

	for _, info := range infos {
		r.Println(output.FormatHeader(2, info.BusinessName))
		r.Println(output.FormatKeyValue("Table", info.Table))
		r.Println(output.FormatKeyValue("Status", info.Status))
		if info.Status == string(extract.StatusOK) {
			r.Println(output.FormatKeyValue("Rows", fmt.Sprintf("%d", info.Rows)))
			r.Println(output.FormatKeyValue("Columns", fmt.Sprintf("%d", info.Columns)))
		}
		if info.Warning != "" {
			r.Println(output.FormatKeyValue("Warning", info.Warning))
		}
		r.Println("")
	}

	r.Println(output.FormatKeyValue("Source", source))
	r.Println(output.FormatKeyValue("Output Directory", summary.OutputDir))
	r.Printf("**Tables Written:** %d\n", summary.AvailableTables)
	r.Printf("**Total Rows:** %d\n", summary.TotalRows)
	return nil
}
