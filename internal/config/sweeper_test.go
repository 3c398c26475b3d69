package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sweeper.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadSweeperConfig_Full(t *testing.T) {
	path := writeConfigFile(t, `
sweep:
  schedule: "0 6 * * *"
  timezone: "Asia/Tokyo"
  batch_size: 200
  timeout: 10m
notifications:
  slack:
    webhook_env: SLACK_WEBHOOK_URL
  discord:
    webhook_env: DISCORD_WEBHOOK_URL
`)

	cfg, err := LoadSweeperConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "0 6 * * *", cfg.Sweep.Schedule)
	assert.Equal(t, "Asia/Tokyo", cfg.Sweep.Timezone)
	assert.Equal(t, 200, cfg.Sweep.BatchSize)
	assert.Equal(t, 10*time.Minute, cfg.Sweep.Timeout)
	assert.Equal(t, "SLACK_WEBHOOK_URL", cfg.Notifications.Slack.WebhookEnv)
	assert.Equal(t, "DISCORD_WEBHOOK_URL", cfg.Notifications.Discord.WebhookEnv)
}

func TestLoadSweeperConfig_DefaultsApplied(t *testing.T) {
	path := writeConfigFile(t, `
notifications:
  slack:
    webhook_env: SLACK_WEBHOOK_URL
`)

	cfg, err := LoadSweeperConfig(path)
	require.NoError(t, err)

	assert.Equal(t, DefaultSweepSchedule, cfg.Sweep.Schedule)
	assert.Equal(t, DefaultSweepTimezone, cfg.Sweep.Timezone)
	assert.Equal(t, DefaultSweepBatchSize, cfg.Sweep.BatchSize)
	assert.Equal(t, DefaultSweepTimeout, cfg.Sweep.Timeout)
}

func TestLoadSweeperConfig_EmptyPathYieldsDefaults(t *testing.T) {
	cfg, err := LoadSweeperConfig("")
	require.NoError(t, err)
	assert.Equal(t, DefaultSweepSchedule, cfg.Sweep.Schedule)
}

func TestLoadSweeperConfig_MissingFile(t *testing.T) {
	_, err := LoadSweeperConfig("/no/such/file.yaml")
	assert.Error(t, err)
}

func TestLoadSweeperConfig_MalformedYAML(t *testing.T) {
	path := writeConfigFile(t, "sweep: [not a map")
	_, err := LoadSweeperConfig(path)
	assert.Error(t, err)
}

func TestLoadSweeperConfig_Validation(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name: "invalid cron schedule",
			content: `
sweep:
  schedule: "every day at noon"
`,
		},
		{
			name: "invalid timezone",
			content: `
sweep:
  timezone: "Mars/Olympus_Mons"
`,
		},
		{
			name: "negative batch size",
			content: `
sweep:
  batch_size: -5
`,
		},
		{
			name: "sub-second timeout",
			content: `
sweep:
  timeout: 100ms
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfigFile(t, tt.content)
			_, err := LoadSweeperConfig(path)
			assert.Error(t, err)
		})
	}
}

func TestSweeperConfig_WebhookURLResolution(t *testing.T) {
	t.Setenv("TEST_SLACK_HOOK", "https://hooks.slack.example/T000/B000")

	path := writeConfigFile(t, `
notifications:
  slack:
    webhook_env: TEST_SLACK_HOOK
`)
	cfg, err := LoadSweeperConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "https://hooks.slack.example/T000/B000", cfg.SlackWebhookURL())
	assert.Empty(t, cfg.DiscordWebhookURL(), "unconfigured channel resolves to empty")
}
