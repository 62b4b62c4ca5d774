package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("ACCESS_TOKEN_EXPIRE_MINUTES", "1440")
	t.Setenv("USE_OFFLINE_FALLBACK", "")
	t.Setenv("MISTRAL_API_KEY", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 1440*time.Minute, cfg.TokenTTL)
	assert.Equal(t, 20*time.Second, cfg.GenerationTimeout)
	assert.False(t, cfg.OfflineFallback)
	assert.True(t, cfg.UseOfflineGeneration(), "missing API key forces offline generation")
}

func TestLoadConfigOfflineFlag(t *testing.T) {
	for _, value := range []string{"1", "true", "YES", " True "} {
		t.Setenv("USE_OFFLINE_FALLBACK", value)
		t.Setenv("MISTRAL_API_KEY", "key")

		cfg, err := LoadConfig()
		require.NoError(t, err)
		assert.True(t, cfg.OfflineFallback, value)
		assert.True(t, cfg.UseOfflineGeneration(), value)
	}

	t.Setenv("USE_OFFLINE_FALLBACK", "no")
	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.False(t, cfg.UseOfflineGeneration())
}

func TestLoadConfigRejectsBadTokenLifetime(t *testing.T) {
	t.Setenv("ACCESS_TOKEN_EXPIRE_MINUTES", "soon")
	_, err := LoadConfig()
	assert.Error(t, err)

	t.Setenv("ACCESS_TOKEN_EXPIRE_MINUTES", "0")
	_, err = LoadConfig()
	assert.Error(t, err)
}
