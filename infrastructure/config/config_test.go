package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var managedVars = []string{
	"YOUTUBE_API_KEY",
	"YOUTUBE_CHANNELS",
	"YOUTUBE_MAX_RESULTS",
	"YOUTUBE_WITH_DURATIONS",
	"LOG_DIR",
	"LOG_PREFIX",
}

// clearEnv unsets the variables Load reads and restores them after the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range managedVars {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func missingEnvFile(t *testing.T) string {
	return filepath.Join(t.TempDir(), "missing.env")
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("YOUTUBE_API_KEY", "secret")

	cfg, err := Load(missingEnvFile(t))
	require.NoError(t, err)

	assert.Equal(t, "secret", cfg.APIKey)
	assert.Equal(t, DefaultChannels, cfg.Channels)
	assert.Equal(t, int64(10), cfg.MaxResults)
	assert.False(t, cfg.WithDurations)
	assert.Equal(t, "logs", cfg.LogDir)
	assert.Equal(t, "channel_uploads", cfg.LogPrefix)
}

func TestLoad_MissingAPIKey(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(missingEnvFile(t))
	assert.ErrorIs(t, err, ErrMissingAPIKey)
	assert.Equal(t, "YOUTUBE_API_KEY not found in .env file", err.Error())
	assert.Equal(t, DefaultChannels, cfg.Channels)
}

func TestLoad_BlankAPIKey(t *testing.T) {
	clearEnv(t)
	t.Setenv("YOUTUBE_API_KEY", "   ")

	_, err := Load(missingEnvFile(t))
	assert.ErrorIs(t, err, ErrMissingAPIKey)
}

func TestLoad_FromEnvFile(t *testing.T) {
	clearEnv(t)

	envFile := filepath.Join(t.TempDir(), ".env")
	content := "YOUTUBE_API_KEY=from-file\n" +
		"YOUTUBE_CHANNELS=https://www.youtube.com/@one/videos, https://www.youtube.com/@two\n" +
		"YOUTUBE_MAX_RESULTS=3\n" +
		"YOUTUBE_WITH_DURATIONS=true\n"
	require.NoError(t, os.WriteFile(envFile, []byte(content), 0600))

	cfg, err := Load(envFile)
	require.NoError(t, err)

	assert.Equal(t, "from-file", cfg.APIKey)
	assert.Equal(t, []string{"https://www.youtube.com/@one/videos", "https://www.youtube.com/@two"}, cfg.Channels)
	assert.Equal(t, int64(3), cfg.MaxResults)
	assert.True(t, cfg.WithDurations)
}

func TestLoad_ProcessEnvWinsOverFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("YOUTUBE_API_KEY", "from-env")

	envFile := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("YOUTUBE_API_KEY=from-file\n"), 0600))

	cfg, err := Load(envFile)
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.APIKey)
}

func TestLoad_InvalidMaxResults(t *testing.T) {
	clearEnv(t)
	t.Setenv("YOUTUBE_API_KEY", "secret")

	t.Setenv("YOUTUBE_MAX_RESULTS", "0")
	_, err := Load(missingEnvFile(t))
	assert.Error(t, err)

	t.Setenv("YOUTUBE_MAX_RESULTS", "ten")
	_, err = Load(missingEnvFile(t))
	assert.Error(t, err)
}
