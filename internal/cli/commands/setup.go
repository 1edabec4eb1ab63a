package commands

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/threesity/dumptab/internal/cli/config"
	"github.com/threesity/dumptab/internal/cli/output"
	"github.com/threesity/dumptab/internal/extract"
)

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg      *config.Config
	Logger   *slog.Logger
	Renderer *output.Renderer
}

// NewCommandContext creates a CommandContext from the command's environment.
func NewCommandContext(cmd *cobra.Command) *CommandContext {
	cfg := getConfig()
	logger := config.GetLogger(cmd.Context())

	mode := output.Mode(cfg.OutputFormat)
	r := output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), mode)

	return &CommandContext{
		Cfg:      cfg,
		Logger:   logger,
		Renderer: r,
	}
}

// Helper functions shared across commands

// getConfig returns the current configuration.
// It uses config.GetCurrentConfig() if available, otherwise falls back to environment variables.
func getConfig() *config.Config {
	if cfg := config.GetCurrentConfig(); cfg != nil {
		return cfg
	}

	// Fallback: read from environment with defaults
	dumpPath := getEnvOrDefault("DUMPTAB_DUMP", config.DefaultDumpFile)
	outDir := getEnvOrDefault("DUMPTAB_OUT_DIR", config.DefaultOutDir)
	verbose := os.Getenv("DUMPTAB_VERBOSE") == "true"
	outputFormat := os.Getenv("DUMPTAB_OUTPUT")

	return &config.Config{
		DumpPath:     dumpPath,
		OutDir:       outDir,
		Tables:       config.DefaultTables(),
		Verbose:      verbose,
		OutputFormat: outputFormat,
	}
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

// runExtraction reads the configured dump and runs the full pipeline.
func runExtraction(cmd *cobra.Command, cmdCtx *CommandContext) (*extract.Result, error) {
	text, err := extract.ReadDump(cmdCtx.Cfg.DumpPath)
	if err != nil {
		return nil, err
	}

	ex := extract.New(extract.Config{
		Tables: cmdCtx.Cfg.Tables,
		Logger: cmdCtx.Logger,
	})
	return ex.Run(cmd.Context(), text)
}

// tableInfos converts extraction results to their reporting form, in the
// result's (sorted) order.
func tableInfos(res *extract.Result) []output.TableInfo {
	infos := make([]output.TableInfo, 0, len(res.Tables))
	for _, tr := range res.Tables {
		info := output.TableInfo{
			Table:        tr.Name,
			BusinessName: tr.BusinessName,
			Status:       string(tr.Status),
			Rows:         tr.Rows,
			Columns:      tr.Columns,
			Adjusted:     tr.Available() && tr.Columns != tr.DeclaredColumns,
			Warning:      tr.Warning,
		}
		if tr.Table != nil {
			info.ColumnNames = tr.Table.Columns
		}
		infos = append(infos, info)
	}
	return infos
}

// extractSummary aggregates per-table outcomes for reporting.
func extractSummary(res *extract.Result, outDir string) output.ExtractSummary {
	s := output.ExtractSummary{
		TotalTables: len(res.Tables),
		OutputDir:   outDir,
	}
	for _, tr := range res.Available() {
		s.AvailableTables++
		s.TotalRows += tr.Rows
	}
	return s
}

// statusDetail renders one table's outcome as a StatusLine pair.
func statusDetail(info output.TableInfo) (string, string) {
	switch extract.Status(info.Status) {
	case extract.StatusOK:
		detail := fmt.Sprintf("%d rows, %d columns", info.Rows, info.Columns)
		if info.Adjusted {
			detail += " (adjusted)"
		}
		status := "success"
		if info.Warning != "" {
			status = "warning"
		}
		return status, detail
	case extract.StatusMissingSchema:
		return "error", "no CREATE TABLE block found"
	case extract.StatusNoRows:
		return "error", "no INSERT rows found"
	default:
		return "error", ""
	}
}
