// Package config provides configuration management for the dumptab CLI.
package config

// Config holds all CLI configuration options.
type Config struct {
	// DumpPath is the MySQL dump file to extract from.
	DumpPath string `koanf:"dump"`
	// OutDir receives the per-table CSV files and the run metadata.
	OutDir string `koanf:"out_dir"`
	// Tables maps dump table names to the business names used for output
	// files and reporting. Empty means the built-in gym mapping.
	Tables       map[string]string `koanf:"tables"`
	Verbose      bool              `koanf:"verbose"`
	OutputFormat string            `koanf:"output"`
}

// Default configuration values.
const (
	DefaultDumpFile = "threesity_final.dump"
	DefaultOutDir   = "extracted_data"
	DefaultOutput   = "auto" // Auto-detect: TTY=text, non-TTY=markdown
)

// DefaultTables returns the key business tables of the gym management
// dump, keyed by dump name with the business name as value.
func DefaultTables() map[string]string {
	return map[string]string{
		"users":              "members",
		"instructors":        "coaches",
		"subscriptions":      "subscriptions",
		"scheduled_sessions": "sessions",
		"plans":              "plans",
		"packages":           "packages",
	}
}
