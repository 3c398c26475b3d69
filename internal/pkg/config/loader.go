// Package config loads environment configuration fail-open: a malformed or
// out-of-range value never stops a process, it falls back to the default and
// surfaces a warning the caller is expected to log and count.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// ConfigLoadResult carries the outcome of loading one value. Value holds the
// typed result (assert to the type matching the loader used); Warnings has
// one entry per fallback applied.
type ConfigLoadResult struct {
	Value           interface{}
	Warnings        []string
	FallbackApplied bool
}

func loaded(v interface{}) ConfigLoadResult {
	return ConfigLoadResult{Value: v}
}

func fellBack(v interface{}, envKey, raw string, reason interface{}) ConfigLoadResult {
	return ConfigLoadResult{
		Value: v,
		Warnings: []string{fmt.Sprintf(
			"Invalid %s='%s': %v, falling back to default '%v'",
			envKey, raw, reason, v,
		)},
		FallbackApplied: true,
	}
}

// LoadEnvString reads a plain string, returning defaultValue when the
// variable is unset or empty. No validation, no fallback tracking.
func LoadEnvString(envKey, defaultValue string) string {
	if v := os.Getenv(envKey); v != "" {
		return v
	}
	return defaultValue
}

// LoadEnvWithFallback reads a string and runs it through validator (nil
// skips validation). An unset variable uses the default silently; a value
// that fails validation uses the default with a warning.
func LoadEnvWithFallback(envKey, defaultValue string, validator func(string) error) ConfigLoadResult {
	raw := os.Getenv(envKey)
	if raw == "" {
		return loaded(defaultValue)
	}
	if validator != nil {
		if err := validator(raw); err != nil {
			return fellBack(defaultValue, envKey, raw, err)
		}
	}
	return loaded(raw)
}

// LoadEnvDuration reads a Go duration string ("90s", "1h30m"). Parse and
// validation failures both fall back with a warning.
func LoadEnvDuration(envKey string, defaultValue time.Duration, validator func(time.Duration) error) ConfigLoadResult {
	raw := os.Getenv(envKey)
	if raw == "" {
		return loaded(defaultValue)
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return fellBack(defaultValue, envKey, raw, err)
	}
	if validator != nil {
		if err := validator(d); err != nil {
			return fellBack(defaultValue, envKey, raw, err)
		}
	}
	return loaded(d)
}

// LoadEnvInt reads a base-10 integer. Parse and validation failures both
// fall back with a warning.
func LoadEnvInt(envKey string, defaultValue int, validator func(int) error) ConfigLoadResult {
	raw := os.Getenv(envKey)
	if raw == "" {
		return loaded(defaultValue)
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return fellBack(defaultValue, envKey, raw, "invalid integer format")
	}
	if validator != nil {
		if err := validator(n); err != nil {
			return fellBack(defaultValue, envKey, raw, err)
		}
	}
	return loaded(n)
}

// LoadEnvBool reads a boolean in strconv.ParseBool's vocabulary ("1", "t",
// "true", "0", "f", "false" in any common casing).
func LoadEnvBool(envKey string, defaultValue bool) ConfigLoadResult {
	raw := os.Getenv(envKey)
	if raw == "" {
		return loaded(defaultValue)
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return fellBack(defaultValue, envKey, raw, "invalid boolean format, expected 'true' or 'false'")
	}
	return loaded(b)
}
