package dump

import "fmt"

// Reconcile pairs a table's declared schema with its extracted rows and
// returns a Table whose every row length equals its column count. It
// returns nil when the schema is empty or no rows were extracted: without a
// consistent header the table is unsafe for tabular consumption, so it is
// reported unavailable rather than written with a guessed shape.
//
// The first row's field count is authoritative. When it exceeds the schema,
// synthetic names column_<i+1> are appended; when it falls short, trailing
// schema columns are dropped. Later rows are assumed to share the first
// row's width and are padded or truncated to it without further
// validation — a deliberate compatibility choice with existing downstream
// CSV consumers, not a guarantee of per-row correctness.
func Reconcile(name string, columns []string, rows []Row) *Table {
	if len(columns) == 0 || len(rows) == 0 {
		return nil
	}

	actual := len(rows[0])
	cols := make([]string, len(columns))
	copy(cols, columns)

	switch {
	case actual > len(cols):
		for i := len(cols); i < actual; i++ {
			cols = append(cols, fmt.Sprintf("column_%d", i+1))
		}
	case actual < len(cols):
		cols = cols[:actual]
	}

	aligned := make([]Row, len(rows))
	for i, row := range rows {
		aligned[i] = alignRow(row, actual)
	}

	return &Table{Name: name, Columns: cols, Rows: aligned}
}

// alignRow fits a row to width: extra fields are dropped, missing ones
// become NULL.
func alignRow(row Row, width int) Row {
	if len(row) == width {
		return row
	}
	out := make(Row, width)
	for i := 0; i < width; i++ {
		if i < len(row) {
			out[i] = row[i]
		} else {
			out[i] = NullValue()
		}
	}
	return out
}
