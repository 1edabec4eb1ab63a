package output

// JSON payload types shared by the CLI commands.

// TableInfo describes one table's extraction outcome.
type TableInfo struct {
	Table        string   `json:"table"`
	BusinessName string   `json:"business_name"`
	Status       string   `json:"status"`
	Rows         int      `json:"rows"`
	Columns      int      `json:"columns"`
	ColumnNames  []string `json:"column_names,omitempty"`
	Adjusted     bool     `json:"adjusted,omitempty"`
	Warning      string   `json:"warning,omitempty"`
}

// ExtractSummary aggregates one extraction run.
type ExtractSummary struct {
	TotalTables     int    `json:"total_tables"`
	AvailableTables int    `json:"available_tables"`
	TotalRows       int    `json:"total_rows"`
	OutputDir       string `json:"output_dir,omitempty"`
}

// ExtractOutput is the JSON document for extract and tables commands.
type ExtractOutput struct {
	Source  string         `json:"source"`
	Tables  []TableInfo    `json:"tables"`
	Summary ExtractSummary `json:"summary"`
}

// RelationInfo describes one declared foreign key link.
type RelationInfo struct {
	Table     string `json:"table"`
	Column    string `json:"column"`
	RefTable  string `json:"references_table"`
	RefColumn string `json:"references_column"`
}

// RelationsOutput is the JSON document for the relations command.
type RelationsOutput struct {
	Source    string         `json:"source"`
	Relations []RelationInfo `json:"relations"`
	Total     int            `json:"total"`
}
