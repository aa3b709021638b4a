package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/aspen-lang/aspen/internal/config"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaultsWhenNothingSet(t *testing.T) {
	t.Setenv("ASPEN_CLOCK_EPOCH", "")
	t.Setenv("ASPEN_HISTORY_FILE", "")
	t.Setenv("ASPEN_NO_COLOR", "")
	t.Setenv("HOME", t.TempDir())

	cfg, err := config.Load()
	require.NoError(t, err)
	require.Equal(t, config.Config{}, cfg)
}

func TestLoadReadsEnvVars(t *testing.T) {
	t.Setenv("ASPEN_CLOCK_EPOCH", "1700000000")
	t.Setenv("ASPEN_HISTORY_FILE", "/tmp/aspen_history")
	t.Setenv("ASPEN_NO_COLOR", "true")
	t.Setenv("HOME", t.TempDir())

	cfg, err := config.Load()
	require.NoError(t, err)
	require.Equal(t, int64(1700000000), cfg.ClockEpochUnix)
	require.Equal(t, "/tmp/aspen_history", cfg.HistoryFile)
	require.True(t, cfg.NoColor)
}

func TestLoadFallsBackToRCFile(t *testing.T) {
	t.Setenv("ASPEN_CLOCK_EPOCH", "")
	t.Setenv("ASPEN_HISTORY_FILE", "")
	t.Setenv("ASPEN_NO_COLOR", "")
	home := t.TempDir()
	t.Setenv("HOME", home)

	rc := "clock_epoch_unix: 42\nhistory_file: /tmp/from-rc\n"
	require.NoError(t, os.WriteFile(filepath.Join(home, ".aspenrc.yaml"), []byte(rc), 0o644))

	cfg, err := config.Load()
	require.NoError(t, err)
	require.Equal(t, int64(42), cfg.ClockEpochUnix)
	require.Equal(t, "/tmp/from-rc", cfg.HistoryFile)
}
