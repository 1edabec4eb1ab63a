package dump_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/threesity/dumptab/pkg/dump"
)

func text(s string) dump.Value { return dump.TextValue(s) }
func null() dump.Value         { return dump.NullValue() }

func TestRows(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		table string
		want  []dump.Row
	}{
		{
			name:  "multiple tuples in one statement",
			text:  "INSERT INTO `plans` (`id`,`name`,`price`) VALUES (1,'Basic',100),(2,'Pro',200);",
			table: "plans",
			want: []dump.Row{
				{text("1"), text("Basic"), text("100")},
				{text("2"), text("Pro"), text("200")},
			},
		},
		{
			name: "statements accumulate in source order",
			text: "INSERT INTO `plans` (`id`,`name`) VALUES (1,'Basic');\n" +
				"INSERT INTO `plans` (`id`,`name`) VALUES (2,'Pro');\n",
			table: "plans",
			want: []dump.Row{
				{text("1"), text("Basic")},
				{text("2"), text("Pro")},
			},
		},
		{
			name:  "comma inside quoted string stays in one field",
			text:  "INSERT INTO `members` (`id`,`name`) VALUES (7,'Doe, John');",
			table: "members",
			want:  []dump.Row{{text("7"), text("Doe, John")}},
		},
		{
			name:  "parenthesis inside quoted string does not close the tuple",
			text:  "INSERT INTO `plans` (`id`,`name`) VALUES (1,'Basic (monthly)'),(2,'Pro');",
			table: "plans",
			want: []dump.Row{
				{text("1"), text("Basic (monthly)")},
				{text("2"), text("Pro")},
			},
		},
		{
			name:  "bare NULL and empty become null, quoted NULL stays text",
			text:  "INSERT INTO `members` (`a`,`b`,`c`,`d`) VALUES (NULL,,'NULL','');",
			table: "members",
			want:  []dump.Row{{null(), null(), text("NULL"), text("")}},
		},
		{
			name:  "backslash escaped quote stays inside the string",
			text:  `INSERT INTO ` + "`members`" + ` (` + "`id`,`name`" + `) VALUES (1,'O\'Brien, Pat');`,
			table: "members",
			want:  []dump.Row{{text("1"), text(`O\'Brien, Pat`)}},
		},
		{
			name:  "doubled quote escape stays inside the string",
			text:  "INSERT INTO `members` (`id`,`name`) VALUES (1,'O''Brien');",
			table: "members",
			want:  []dump.Row{{text("1"), text("O''Brien")}},
		},
		{
			name:  "semicolon inside quoted string does not end the statement",
			text:  "INSERT INTO `members` (`id`,`note`) VALUES (1,'late; rebooked'),(2,'ok');",
			table: "members",
			want: []dump.Row{
				{text("1"), text("late; rebooked")},
				{text("2"), text("ok")},
			},
		},
		{
			name:  "no statements for the table",
			text:  "INSERT INTO `plans` (`id`) VALUES (1);",
			table: "members",
			want:  nil,
		},
		{
			name:  "unquoted fields keep surrounding whitespace trimmed",
			text:  "INSERT INTO `plans` (`id`,`price`) VALUES ( 1 , 100 );",
			table: "plans",
			want:  []dump.Row{{text("1"), text("100")}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows, err := dump.Rows(tt.text, tt.table)
			require.NoError(t, err)
			assert.Equal(t, tt.want, rows)
		})
	}
}

func TestRowsMismatchedFieldCountIsNotRejected(t *testing.T) {
	// Count mismatches are the Reconciler's concern; the row extractor
	// reports what it saw.
	rows, err := dump.Rows("INSERT INTO `plans` (`id`,`name`) VALUES (1,'Basic',100,'extra');", "plans")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Len(t, rows[0], 4)
}

func TestRowsUnterminatedStringKeepsEarlierRows(t *testing.T) {
	input := "INSERT INTO `plans` (`id`,`name`) VALUES (1,'Basic'),(2,'Pro"
	rows, err := dump.Rows(input, "plans")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "plans")
	require.Len(t, rows, 2)
	assert.Equal(t, dump.Row{text("1"), text("Basic")}, rows[0])
}

func TestRowsMissingTerminatorTolerated(t *testing.T) {
	rows, err := dump.Rows("INSERT INTO `plans` (`id`) VALUES (1),(2)", "plans")
	require.NoError(t, err)
	assert.Len(t, rows, 2)
}
