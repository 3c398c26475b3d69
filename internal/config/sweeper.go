// Package config loads application configuration from YAML files and
// environment variables.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	pkgcfg "fresh-catalog/internal/pkg/config"
)

// SweeperConfig holds configuration for the lifecycle sweeper: schedule,
// batching, and expiry notification channels.
type SweeperConfig struct {
	Sweep struct {
		// Schedule is a cron expression; when empty the default applies.
		Schedule string `yaml:"schedule"`
		// Timezone is an IANA zone name for schedule evaluation.
		Timezone string `yaml:"timezone"`
		// BatchSize bounds how many items one sweep batch reclassifies.
		BatchSize int `yaml:"batch_size"`
		// Timeout bounds one full sweep run.
		Timeout time.Duration `yaml:"timeout"`
	} `yaml:"sweep"`

	Notifications struct {
		Slack struct {
			// WebhookEnv names the environment variable holding the
			// webhook URL, so the URL itself stays out of config files.
			WebhookEnv string `yaml:"webhook_env"`
		} `yaml:"slack"`
		Discord struct {
			WebhookEnv string `yaml:"webhook_env"`
		} `yaml:"discord"`
	} `yaml:"notifications"`
}

// Defaults applied when a field is absent from the YAML file.
const (
	DefaultSweepSchedule  = "30 5 * * *"
	DefaultSweepTimezone  = "UTC"
	DefaultSweepBatchSize = 500
	DefaultSweepTimeout   = 30 * time.Minute
)

// LoadSweeperConfig loads sweeper configuration from a YAML file.
// The path parameter is expected to come from a trusted source (command-line
// argument or hardcoded default). An empty path yields the defaults.
func LoadSweeperConfig(path string) (*SweeperConfig, error) {
	var config SweeperConfig
	if path != "" {
		// #nosec G304 -- path is provided by trusted source (CLI arg or config), not user input
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &config); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	applySweeperDefaults(&config)

	if err := validateSweeperConfig(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &config, nil
}

func applySweeperDefaults(config *SweeperConfig) {
	if config.Sweep.Schedule == "" {
		config.Sweep.Schedule = DefaultSweepSchedule
	}
	if config.Sweep.Timezone == "" {
		config.Sweep.Timezone = DefaultSweepTimezone
	}
	if config.Sweep.BatchSize == 0 {
		config.Sweep.BatchSize = DefaultSweepBatchSize
	}
	if config.Sweep.Timeout == 0 {
		config.Sweep.Timeout = DefaultSweepTimeout
	}
}

func validateSweeperConfig(config *SweeperConfig) error {
	if err := pkgcfg.ValidateCronSchedule(config.Sweep.Schedule); err != nil {
		return fmt.Errorf("sweep.schedule: %w", err)
	}
	if err := pkgcfg.ValidateTimezone(config.Sweep.Timezone); err != nil {
		return fmt.Errorf("sweep.timezone: %w", err)
	}
	if config.Sweep.BatchSize < 1 {
		return fmt.Errorf("sweep.batch_size must be positive, got %d", config.Sweep.BatchSize)
	}
	if config.Sweep.Timeout < time.Second {
		return fmt.Errorf("sweep.timeout must be at least 1s, got %v", config.Sweep.Timeout)
	}
	return nil
}

// SlackWebhookURL resolves the Slack webhook URL from the configured
// environment variable. Empty when the channel is not configured.
func (c *SweeperConfig) SlackWebhookURL() string {
	if c.Notifications.Slack.WebhookEnv == "" {
		return ""
	}
	return os.Getenv(c.Notifications.Slack.WebhookEnv)
}

// DiscordWebhookURL resolves the Discord webhook URL from the configured
// environment variable. Empty when the channel is not configured.
func (c *SweeperConfig) DiscordWebhookURL() string {
	if c.Notifications.Discord.WebhookEnv == "" {
		return ""
	}
	return os.Getenv(c.Notifications.Discord.WebhookEnv)
}
