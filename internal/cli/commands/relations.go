package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/threesity/dumptab/internal/cli/output"
	"github.com/threesity/dumptab/internal/extract"
	"github.com/threesity/dumptab/pkg/dump"
)

// NewRelationsCommand creates the relations command.
func NewRelationsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "relations",
		Short: "List foreign key links declared in the dump",
		Long: `Scan every CREATE TABLE block in the dump and list the foreign key
constraints it declares, both standalone CONSTRAINT ... FOREIGN KEY
clauses and inline REFERENCES column attributes.

Output adapts to environment:
  - Terminal: Styled, colored output
  - Piped/Scripted: Markdown format (agent-friendly)

Use --output to override: auto, text, markdown, json`,
		Example: `  # List relations in the default dump
  dumptab relations

  # List relations in a specific dump as JSON
  dumptab relations --dump backup.dump --output json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRelations(cmd)
		},
	}

	return cmd
}

func runRelations(cmd *cobra.Command) error {
	cmdCtx := NewCommandContext(cmd)
	r := cmdCtx.Renderer

	text, err := extract.ReadDump(cmdCtx.Cfg.DumpPath)
	if err != nil {
		return err
	}

	fks := dump.Relations(text)
	cmdCtx.Logger.Debug("relations scanned", "count", len(fks))

	if r.EffectiveMode() == output.ModeJSON {
		infos := make([]output.RelationInfo, 0, len(fks))
		for _, fk := range fks {
			infos = append(infos, output.RelationInfo{
				Table:     fk.Table,
				Column:    fk.Column,
				RefTable:  fk.RefTable,
				RefColumn: fk.RefColumn,
			})
		}
		return r.JSON(output.RelationsOutput{
			Source:    cmdCtx.Cfg.DumpPath,
			Relations: infos,
			Total:     len(infos),
		})
	}

	r.Header(1, fmt.Sprintf("Relations (%d total)", len(fks)))
	if len(fks) == 0 {
		r.Muted("No foreign key constraints found in " + cmdCtx.Cfg.DumpPath)
		return nil
	}

	rows := make([][]string, 0, len(fks))
	for _, fk := range fks {
		rows = append(rows, []string{
			fk.Table,
			fk.Column,
			fmt.Sprintf("%s.%s", fk.RefTable, fk.RefColumn),
		})
	}
	r.Table([]string{"Table", "Column", "References"}, rows)
	return nil
}
