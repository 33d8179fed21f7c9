package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadLeagueConfig_Defaults(t *testing.T) {
	cfg, err := LoadLeagueConfig("")
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "saves", cfg.DataDir)
	assert.Equal(t, 2024, cfg.StartYear)
	assert.Equal(t, 12, cfg.PlayersPerTeam)
	assert.Empty(t, cfg.ConferenceIDs)
}

func TestLoadLeagueConfig_FileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "league.yaml")
	yaml := "log_level: debug\nplayers_per_team: 9\nconference_ids: [1, 3]\n"
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o644))

	cfg, err := LoadLeagueConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 9, cfg.PlayersPerTeam)
	assert.Equal(t, []int64{1, 3}, cfg.ConferenceIDs)
	// Untouched keys keep their defaults.
	assert.Equal(t, "saves", cfg.DataDir)
	assert.Equal(t, 2024, cfg.StartYear)
}

func TestLoadLeagueConfig_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "league.yaml")
	require.NoError(t, os.WriteFile(path, []byte("data_dir: from-file\n"), 0o644))

	t.Setenv("XCSIM_DATA_DIR", "from-env")
	t.Setenv("XCSIM_START_YEAR", "1999")

	cfg, err := LoadLeagueConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.DataDir)
	assert.Equal(t, 1999, cfg.StartYear)
}

func TestLoadLeagueConfig_FileFromEnvPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "league.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log_level: warn\n"), 0o644))
	t.Setenv("XCSIM_CONFIG", path)

	cfg, err := LoadLeagueConfig("")
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestLoadLeagueConfig_Validation(t *testing.T) {
	t.Setenv("XCSIM_PLAYERS_PER_TEAM", "0")
	_, err := LoadLeagueConfig("")
	assert.Error(t, err)
}

func TestLoadLeagueConfig_MissingFileFails(t *testing.T) {
	_, err := LoadLeagueConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
