// Package dump extracts tabular structure from MySQL-style logical dumps.
//
// The extractors work purely on the dump text: Schema reads the column list
// out of a CREATE TABLE block, Rows decomposes INSERT statements into value
// tuples, Relations collects FOREIGN KEY declarations, and Reconcile aligns
// a schema with its extracted rows. No SQL is executed and no semantic
// validation is performed; values stay strings (or NULL) until a downstream
// consumer coerces them.
package dump

// Value is one extracted field: either SQL NULL or literal text.
// Type coercion is a downstream concern, so Text carries the raw
// characters exactly as they appeared between the quotes (or between
// commas for unquoted fields).
type Value struct {
	Text string
	Null bool
}

// NullValue returns the NULL marker.
func NullValue() Value {
	return Value{Null: true}
}

// TextValue returns a literal text value.
func TextValue(s string) Value {
	return Value{Text: s}
}

// Row is the ordered field list of one VALUES tuple. Fields relate to
// columns positionally, not by name, until reconciliation.
type Row []Value

// Table is a reconciled table: ordered columns and rows aligned to them.
type Table struct {
	Name    string
	Columns []string
	Rows    []Row
}

// ForeignKey records one declared column-to-column link between tables.
// It is descriptive only; no referential checking is done.
type ForeignKey struct {
	Table     string
	Column    string
	RefTable  string
	RefColumn string
}
