package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	ResetConfig()
	t.Cleanup(ResetConfig)

	cfg, err := LoadConfig("", nil)
	require.NoError(t, err)

	assert.Equal(t, DefaultDumpFile, cfg.DumpPath)
	assert.Equal(t, DefaultOutDir, cfg.OutDir)
	assert.Equal(t, DefaultOutput, cfg.OutputFormat)
	assert.False(t, cfg.Verbose)
	assert.Equal(t, DefaultTables(), cfg.Tables)
}

func TestLoadConfigFromFile(t *testing.T) {
	ResetConfig()
	t.Cleanup(ResetConfig)

	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "dumptab.yaml")
	content := `dump: gym.dump
out_dir: out
tables:
  users: members
  plans: plans
`
	require.NoError(t, os.WriteFile(cfgPath, []byte(content), 0o644))

	cfg, err := LoadConfig(cfgPath, nil)
	require.NoError(t, err)

	assert.Equal(t, "gym.dump", cfg.DumpPath)
	assert.Equal(t, "out", cfg.OutDir)
	assert.Equal(t, map[string]string{"users": "members", "plans": "plans"}, cfg.Tables)
	assert.Equal(t, cfgPath, GetConfigFileUsed())
}

func TestLoadConfigEnvOverridesFile(t *testing.T) {
	ResetConfig()
	t.Cleanup(ResetConfig)

	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "dumptab.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("dump: from-file.dump\n"), 0o644))

	t.Setenv("DUMPTAB_DUMP", "from-env.dump")

	cfg, err := LoadConfig(cfgPath, nil)
	require.NoError(t, err)
	assert.Equal(t, "from-env.dump", cfg.DumpPath)
}

func TestLoadConfigFlagsOverrideEverything(t *testing.T) {
	ResetConfig()
	t.Cleanup(ResetConfig)

	t.Setenv("DUMPTAB_OUT_DIR", "from-env")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("out-dir", "", "")
	flags.String("dump", "", "")
	require.NoError(t, flags.Parse([]string{"--out-dir", "from-flag", "--dump", "flag.dump"}))

	cfg, err := LoadConfig("", flags)
	require.NoError(t, err)

	assert.Equal(t, "from-flag", cfg.OutDir)
	assert.Equal(t, "flag.dump", cfg.DumpPath)
}

func TestLoadConfigUnchangedFlagsIgnored(t *testing.T) {
	ResetConfig()
	t.Cleanup(ResetConfig)

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("dump", "flag-default.dump", "")
	require.NoError(t, flags.Parse(nil))

	cfg, err := LoadConfig("", flags)
	require.NoError(t, err)

	// A flag left at its default must not shadow the config default.
	assert.Equal(t, DefaultDumpFile, cfg.DumpPath)
}

func TestGetCurrentConfig(t *testing.T) {
	ResetConfig()
	t.Cleanup(ResetConfig)

	assert.Nil(t, GetCurrentConfig())

	cfg, err := LoadConfig("", nil)
	require.NoError(t, err)
	assert.Equal(t, cfg, GetCurrentConfig())
}
