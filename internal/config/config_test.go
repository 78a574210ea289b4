package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "0.12.2.5485", cfg.Versions.Game)
	assert.Equal(t, "0.9.1.935", cfg.Versions.Launcher)
	assert.Equal(t, "2018.4.13f1", cfg.Versions.Unity)
	assert.Equal(t, "live", cfg.Versions.Branch)
	assert.Equal(t, "https://prod.escapefromtarkov.com", cfg.Endpoints.Prod)
	assert.Equal(t, 30*time.Second, cfg.HTTP.Timeout)
	assert.Equal(t, "off", cfg.Log.Level)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("TARKOV_GAME_VERSION", "0.13.0.1")
	t.Setenv("TARKOV_PROD_ENDPOINT", "http://localhost:9000")
	t.Setenv("TARKOV_HTTP_TIMEOUT", "5s")
	t.Setenv("TARKOV_LOG_LEVEL", "debug")

	cfg := Load()

	assert.Equal(t, "0.13.0.1", cfg.Versions.Game)
	assert.Equal(t, "http://localhost:9000", cfg.Endpoints.Prod)
	assert.Equal(t, 5*time.Second, cfg.HTTP.Timeout)
	assert.Equal(t, "debug", cfg.Log.Level)
	// untouched keys keep their defaults
	assert.Equal(t, "2018.4.13f1", cfg.Versions.Unity)
}

func TestLoad_MalformedTimeoutIgnored(t *testing.T) {
	t.Setenv("TARKOV_HTTP_TIMEOUT", "soon")

	cfg := Load()

	assert.Equal(t, 30*time.Second, cfg.HTTP.Timeout)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tarkov.yaml")
	data := []byte(`
versions:
  game: "0.12.3.5776"
endpoints:
  ragfair: "http://127.0.0.1:8081"
http:
  timeout: 10s
log:
  level: info
  encoding: console
`)
	require.NoError(t, os.WriteFile(path, data, 0o600))

	cfg, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, "0.12.3.5776", cfg.Versions.Game)
	assert.Equal(t, "0.9.1.935", cfg.Versions.Launcher)
	assert.Equal(t, "http://127.0.0.1:8081", cfg.Endpoints.Ragfair)
	assert.Equal(t, "https://trading.escapefromtarkov.com", cfg.Endpoints.Trading)
	assert.Equal(t, 10*time.Second, cfg.HTTP.Timeout)
	assert.Equal(t, "console", cfg.Log.Encoding)
}

func TestLoadFile_EnvWinsOverFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tarkov.yaml")
	require.NoError(t, os.WriteFile(path, []byte("versions:\n  unity: \"2019.1\"\n"), 0o600))
	t.Setenv("TARKOV_UNITY_VERSION", "2020.2")

	cfg, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, "2020.2", cfg.Versions.Unity)
}

func TestLoadFile_Errors(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("versions: [not, a, map]\n"), 0o600))

	_, err = LoadFile(path)
	assert.Error(t, err)
}
