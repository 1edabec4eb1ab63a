package dump_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/threesity/dumptab/pkg/dump"
)

func TestReconcile(t *testing.T) {
	t.Run("schema and rows already aligned", func(t *testing.T) {
		tbl := dump.Reconcile("plans", []string{"id", "name"}, []dump.Row{
			{text("1"), text("Basic")},
		})
		require.NotNil(t, tbl)
		assert.Equal(t, []string{"id", "name"}, tbl.Columns)
		assert.Len(t, tbl.Rows, 1)
	})

	t.Run("extra fields get synthetic column names", func(t *testing.T) {
		tbl := dump.Reconcile("plans", []string{"a", "b"}, []dump.Row{
			{text("1"), text("2"), text("3")},
			{text("4"), text("5"), text("6")},
		})
		require.NotNil(t, tbl)
		assert.Equal(t, []string{"a", "b", "column_3"}, tbl.Columns)
		for _, row := range tbl.Rows {
			assert.Len(t, row, 3)
		}
	})

	t.Run("missing fields truncate the schema", func(t *testing.T) {
		tbl := dump.Reconcile("plans", []string{"a", "b", "c"}, []dump.Row{
			{text("1"), text("2")},
			{text("3"), text("4")},
		})
		require.NotNil(t, tbl)
		assert.Equal(t, []string{"a", "b"}, tbl.Columns)
		for _, row := range tbl.Rows {
			assert.Len(t, row, 2)
		}
	})

	t.Run("empty schema is unavailable", func(t *testing.T) {
		assert.Nil(t, dump.Reconcile("plans", nil, []dump.Row{{text("1")}}))
	})

	t.Run("no rows is unavailable", func(t *testing.T) {
		assert.Nil(t, dump.Reconcile("plans", []string{"id"}, nil))
	})

	t.Run("input schema slice is not mutated", func(t *testing.T) {
		cols := []string{"a", "b"}
		_ = dump.Reconcile("plans", cols, []dump.Row{{text("1"), text("2"), text("3")}})
		assert.Equal(t, []string{"a", "b"}, cols)
	})
}

// The first row's field count is authoritative for the whole table: later
// rows with a different width are blindly padded or cut to it, not
// re-validated. Downstream consumers rely on this, so it is pinned here as
// intended behavior even though it can misalign ragged data.
func TestReconcileFirstRowCountIsAuthoritative(t *testing.T) {
	tbl := dump.Reconcile("plans", []string{"a", "b"}, []dump.Row{
		{text("1"), text("2")},
		{text("3")},
		{text("4"), text("5"), text("6")},
	})
	require.NotNil(t, tbl)
	assert.Equal(t, []string{"a", "b"}, tbl.Columns)

	assert.Equal(t, dump.Row{text("3"), null()}, tbl.Rows[1])
	assert.Equal(t, dump.Row{text("4"), text("5")}, tbl.Rows[2])
}
