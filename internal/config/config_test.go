package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/goserg/cricketscore/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "server.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestNew_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := New(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestNew_File(t *testing.T) {
	path := writeConfig(t, `
[server]
port = 8080
debug_mode = true
log_level = "debug"

[storage]
driver = "file"
snapshot_file = "/tmp/store.json"

[match]
min_players = 2
share_odd_player = false
default_overs = 20
default_innings_per_team = 2
`)
	cfg, err := New(path)
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.True(t, cfg.Server.Debug)
	assert.Equal(t, "debug", cfg.Server.LogLevel)
	assert.Equal(t, "0.0.0.0", cfg.Server.Host, "unset keys keep their default")
	assert.Equal(t, DriverFile, cfg.Storage.Driver)
	assert.Equal(t, "/tmp/store.json", cfg.Storage.SnapshotFile)
	assert.Equal(t, 2, cfg.Match.MinPlayers)
	assert.False(t, cfg.Match.ShareOddPlayer)
	assert.Equal(t, domain.Overs(20), cfg.Match.DefaultOvers)
	assert.Equal(t, 2, cfg.Match.DefaultInningsPerTeam)
}

func TestNew_UnlimitedOvers(t *testing.T) {
	path := writeConfig(t, `
[match]
default_overs = "unlimited"
`)
	cfg, err := New(path)
	require.NoError(t, err)
	assert.True(t, cfg.Match.DefaultOvers.IsUnlimited())
}

func TestNew_EnvOverrides(t *testing.T) {
	t.Setenv("CRICKETSCORE_STORAGE_DRIVER", DriverMemory)
	t.Setenv("CRICKETSCORE_SQLITE_FILE", "other.sqlite")
	t.Setenv("CRICKETSCORE_PORT", "9000")

	cfg, err := New(writeConfig(t, "[storage]\ndriver = \"file\"\n"))
	require.NoError(t, err)
	assert.Equal(t, DriverMemory, cfg.Storage.Driver)
	assert.Equal(t, "other.sqlite", cfg.Storage.SqliteFile)
	assert.Equal(t, 9000, cfg.Server.Port)
}

func TestNew_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
		env  map[string]string
	}{
		{name: "driver", body: "[storage]\ndriver = \"postgres\"\n"},
		{name: "min players", body: "[match]\nmin_players = 1\n"},
		{name: "overs", body: "[match]\ndefault_overs = 0\n"},
		{name: "innings", body: "[match]\ndefault_innings_per_team = 3\n"},
		{name: "syntax", body: "[match\n"},
		{name: "port env", body: "", env: map[string]string{"CRICKETSCORE_PORT": "http"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := New(writeConfig(t, tt.body))
			assert.Error(t, err)
		})
	}
}
