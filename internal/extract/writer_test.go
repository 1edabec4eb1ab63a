package extract

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/threesity/dumptab/internal/testutil"
)

func TestWriterWritesCSVAndMetadata(t *testing.T) {
	text := "CREATE TABLE `users` (\n" +
		"  `id` int NOT NULL,\n" +
		"  `name` varchar(100),\n" +
		"  `email` varchar(100)\n" +
		") ENGINE=InnoDB;\n" +
		"INSERT INTO `users` VALUES (1,'Doe, John',NULL),(2,'Ada','ada@example.com');\n"

	e := testExtractor(t, map[string]string{"users": "members"})
	res, err := e.Run(context.Background(), text)
	require.NoError(t, err)

	outDir := t.TempDir()
	w := NewWriter(outDir, testutil.NewTestLogger(t))
	meta, err := w.Write(res, "gym.dump")
	require.NoError(t, err)

	f, err := os.Open(filepath.Join(outDir, "members.csv"))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, []string{"id", "name", "email"}, records[0])
	assert.Equal(t, []string{"1", "Doe, John", ""}, records[1])
	assert.Equal(t, []string{"2", "Ada", "ada@example.com"}, records[2])

	assert.Equal(t, 1, meta.TotalTables)
	assert.Equal(t, "gym.dump", meta.SourceFile)
	require.Contains(t, meta.Tables, "members")
	assert.Equal(t, 2, meta.Tables["members"].Rows)
	assert.Equal(t, []string{"id", "name", "email"}, meta.Tables["members"].List)

	// Metadata round-trips from disk.
	b, err := os.ReadFile(filepath.Join(outDir, metadataFile))
	require.NoError(t, err)
	var onDisk Metadata
	require.NoError(t, json.Unmarshal(b, &onDisk))
	assert.Equal(t, meta.Tables, onDisk.Tables)
}

func TestWriterSkipsUnavailableTables(t *testing.T) {
	// No CREATE TABLE block at all: nothing to write but the metadata.
	e := testExtractor(t, map[string]string{"ghosts": "ghosts"})
	res, err := e.Run(context.Background(), "-- empty dump\n")
	require.NoError(t, err)

	outDir := t.TempDir()
	w := NewWriter(outDir, testutil.NewTestLogger(t))
	meta, err := w.Write(res, "gym.dump")
	require.NoError(t, err)

	assert.Equal(t, 0, meta.TotalTables)
	_, statErr := os.Stat(filepath.Join(outDir, "ghosts.csv"))
	assert.True(t, os.IsNotExist(statErr))

	_, statErr = os.Stat(filepath.Join(outDir, metadataFile))
	assert.NoError(t, statErr)
}
