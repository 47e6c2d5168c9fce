package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{
			name:    "valid config",
			yaml:    `address: "127.0.0.1:8080"`,
			wantErr: "",
		},
		{
			name:    "empty address fails validation",
			yaml:    `address: ""`,
			wantErr: "config validation failed",
		},
		{
			name:    "empty db filepath fails validation",
			yaml:    `db_filepath: ""`,
			wantErr: "config validation failed",
		},
		{
			name:    "bad log level fails validation",
			yaml:    `log_level: LOUD`,
			wantErr: "config validation failed",
		},
		{
			name:    "invalid yaml syntax",
			yaml:    `invalid: [yaml: content`,
			wantErr: "failed to unmarshal config file",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			path := writeTestConfig(t, test.yaml)
			cfg, err := Load(path)

			if test.wantErr != "" {
				require.ErrorContains(t, err, test.wantErr)
				assert.Nil(t, cfg)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, cfg)
		})
	}
}

func TestLoad_FileNotFound(t *testing.T) {
	t.Parallel()

	cfg, err := Load("/nonexistent/path/config.yaml")
	require.ErrorContains(t, err, "failed to read config file")
	assert.Nil(t, cfg)
}

func TestLoad_MergesDefaults(t *testing.T) {
	t.Parallel()

	path := writeTestConfig(t, `address: "127.0.0.1:8080"`)
	cfg, err := Load(path)
	require.NoError(t, err)

	def := Default()
	assert.Equal(t, "127.0.0.1:8080", cfg.Address)
	assert.Equal(t, def.LogLevel, cfg.LogLevel)
	assert.Equal(t, def.DBFilepath, cfg.DBFilepath)
}

func TestSlogLevel(t *testing.T) {
	t.Parallel()

	cfg := Default()
	cfg.LogLevel = "DEBUG"
	lvl, err := cfg.SlogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, lvl)

	cfg.LogLevel = "nope"
	_, err = cfg.SlogLevel()
	require.Error(t, err)
}

func writeTestConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	err := os.WriteFile(path, []byte(content), 0o600)
	require.NoError(t, err)
	return path
}
