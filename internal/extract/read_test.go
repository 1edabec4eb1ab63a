package extract

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadDump(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gym.dump")
	require.NoError(t, os.WriteFile(path, []byte("CREATE TABLE `plans` (\xff\xfe`id` int\n) ENGINE=InnoDB;"), 0o644))

	text, err := ReadDump(path)
	require.NoError(t, err)
	// Invalid bytes are dropped, the rest survives.
	assert.Contains(t, text, "CREATE TABLE `plans` (`id` int")
}

func TestReadDumpMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope.dump")
	_, err := ReadDump(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), path)
}
