package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv(configPathEnv, "")
	t.Setenv(baseURLEnv, "")
	t.Setenv(hubURLEnv, "")
	t.Setenv(contentDirEnv, "")
	t.Setenv(outputDirEnv, "")
	t.Setenv(logLevelEnv, "")

	cfg := Load()

	assert.Equal(t, "https://www.maksugr.com", cfg.Site.BaseURL)
	assert.Equal(t, "content/notes", cfg.Content.Dir)
	assert.Equal(t, "notes", cfg.Content.Section)
	assert.Equal(t, filepath.Join("public", "feeds"), cfg.FeedsPath())
	assert.False(t, cfg.Scheduler.Enabled)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Empty(t, cfg.Ping.HubURL)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv(configPathEnv, "")
	t.Setenv(baseURLEnv, "https://staging.maksugr.com")
	t.Setenv(hubURLEnv, "https://hub.example.com/")
	t.Setenv(contentDirEnv, "fixtures/notes")
	t.Setenv(outputDirEnv, "out")
	t.Setenv(logLevelEnv, "debug")

	cfg := Load()

	assert.Equal(t, "https://staging.maksugr.com", cfg.Site.BaseURL)
	assert.Equal(t, "https://hub.example.com/", cfg.Ping.HubURL)
	assert.Equal(t, "fixtures/notes", cfg.Content.Dir)
	assert.Equal(t, filepath.Join("out", "feeds"), cfg.FeedsPath())
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoadYAMLFileMerge(t *testing.T) {
	path := filepath.Join(t.TempDir(), "feedgen.yml")
	require.NoError(t, os.WriteFile(path, []byte(`
site:
  title: Custom title
  author:
    name: Someone
content:
  limit: 25
scheduler:
  enabled: true
  interval: 2m
`), 0o644))

	t.Setenv(configPathEnv, path)
	t.Setenv(baseURLEnv, "")
	t.Setenv(hubURLEnv, "")
	t.Setenv(contentDirEnv, "")
	t.Setenv(outputDirEnv, "")
	t.Setenv(logLevelEnv, "")

	cfg := Load()

	assert.Equal(t, "Custom title", cfg.Site.Title)
	assert.Equal(t, "Someone", cfg.Site.Author.Name)
	// untouched fields keep defaults
	assert.Equal(t, "https://www.maksugr.com", cfg.Site.BaseURL)
	assert.Equal(t, "hello@maksugr.com", cfg.Site.Author.Email)
	assert.Equal(t, 25, cfg.Content.Limit)
	assert.True(t, cfg.Scheduler.Enabled)
	assert.Equal(t, 2*time.Minute, cfg.Scheduler.IntervalDuration())
}

func TestIntervalDuration(t *testing.T) {
	t.Parallel()

	assert.Equal(t, defaultInterval, SchedulerConfig{}.IntervalDuration())
	assert.Equal(t, defaultInterval, SchedulerConfig{Interval: "soon"}.IntervalDuration())
	assert.Equal(t, defaultInterval, SchedulerConfig{Interval: "-5s"}.IntervalDuration())
	assert.Equal(t, 45*time.Second, SchedulerConfig{Interval: "45s"}.IntervalDuration())
}

func TestSchedulerLocation(t *testing.T) {
	t.Parallel()

	loc := SchedulerConfig{}.Location()
	require.NotNil(t, loc)
	assert.Equal(t, "UTC", loc.String())
}
