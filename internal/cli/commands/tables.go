package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/threesity/dumptab/internal/cli/output"
	"github.com/threesity/dumptab/internal/extract"
)

// NewTablesCommand creates the tables command.
func NewTablesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tables",
		Short: "Report which configured tables the dump can provide",
		Long: `Run the extraction pipeline without writing any files and report,
per configured table, whether the dump provides a usable schema and rows.

Useful as a dry run before extract, or to inspect an unfamiliar dump.

Output adapts to environment:
  - Terminal: Styled, colored output
  - Piped/Scripted: Markdown format (agent-friendly)

Use --output to override: auto, text, markdown, json`,
		Example: `  # Inspect the default dump
  dumptab tables

  # Inspect a specific dump as JSON
  dumptab tables --dump backup.dump --output json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTables(cmd)
		},
	}

	return cmd
}

func runTables(cmd *cobra.Command) error {
	cmdCtx := NewCommandContext(cmd)
	r := cmdCtx.Renderer

	res, err := runExtraction(cmd, cmdCtx)
	if err != nil {
		return err
	}

	infos := tableInfos(res)

	if r.EffectiveMode() == output.ModeJSON {
		return r.JSON(output.ExtractOutput{
			Source:  cmdCtx.Cfg.DumpPath,
			Tables:  infos,
			Summary: extractSummary(res, ""),
		})
	}

	headers := []string{"Table", "Business Name", "Status", "Columns", "Rows"}
	rows := make([][]string, 0, len(infos))
	for _, info := range infos {
		cols, count := "-", "-"
		if info.Status == string(extract.StatusOK) {
			cols = fmt.Sprintf("%d", info.Columns)
			if info.Adjusted {
				cols += "*"
			}
			count = fmt.Sprintf("%d", info.Rows)
		}
		rows = append(rows, []string{info.Table, info.BusinessName, info.Status, cols, count})
	}

	r.Header(1, fmt.Sprintf("Tables (%s)", cmdCtx.Cfg.DumpPath))
	r.Table(headers, rows)

	var notes []string
	for _, info := range infos {
		if info.Adjusted {
			notes = append(notes, fmt.Sprintf("%s: schema adjusted to match row width", info.Table))
		}
		if info.Warning != "" {
			notes = append(notes, info.Warning)
		}
	}
	if len(notes) > 0 {
		r.Println("")
		r.Muted(strings.Join(notes, "\n"))
	}
	return nil
}
