package tarkov

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexbotov/tarkov/internal/config"
)

func TestWithDefaults_PartialOverride(t *testing.T) {
	base := config.Load()

	cfg := (&ClientConfig{
		Versions:  Versions{Game: "0.13.0.1"},
		Endpoints: Endpoints{Prod: "http://127.0.0.1:8080"},
	}).withDefaults()

	assert.Equal(t, "0.13.0.1", cfg.Versions.Game)
	assert.Equal(t, base.Versions.Unity, cfg.Versions.Unity)
	assert.Equal(t, base.Versions.Launcher, cfg.Versions.Launcher)
	assert.Equal(t, base.Versions.Backend, cfg.Versions.Backend)
	assert.Equal(t, base.Versions.Branch, cfg.Versions.Branch)

	assert.Equal(t, "http://127.0.0.1:8080", cfg.Endpoints.Prod)
	assert.Equal(t, base.Endpoints.Launcher, cfg.Endpoints.Launcher)
	assert.Equal(t, base.Endpoints.Ragfair, cfg.Endpoints.Ragfair)

	h := Identity{Session: "s"}.Headers(cfg.Versions)
	assert.Equal(t, base.Versions.Unity, h.Get("X-Unity-Version"))
	assert.Contains(t, h.Get("User-Agent"), "UnityPlayer/"+base.Versions.Unity+" ")
	assert.Equal(t, "EFT Client 0.13.0.1", h.Get("App-Version"))
}

func TestWithDefaults_Nil(t *testing.T) {
	var cfg *ClientConfig

	out := cfg.withDefaults()

	require.NotNil(t, out)
	assert.NotEmpty(t, out.Versions.Game)
	assert.NotEmpty(t, out.Endpoints.Prod)
	assert.NotZero(t, out.Timeout)
	assert.NotNil(t, out.Transport)
	assert.NotNil(t, out.Logger)
}

func TestWithDefaults_KeepsCallerValues(t *testing.T) {
	in := &ClientConfig{Versions: testVersions, Timeout: 3 * time.Second}

	out := in.withDefaults()

	assert.Equal(t, testVersions, out.Versions)
	assert.Equal(t, 3*time.Second, out.Timeout)
	assert.Nil(t, in.Transport, "caller config must not be modified")
}
