// Package pagination provides a reusable keyset pagination framework:
// validated query parameters, a query plan over store-evaluable constraints,
// and an append-only cursor ledger for sequential page navigation.
package pagination

import (
	"os"
	"strconv"
)

// Config holds pagination configuration settings.
// These values can be loaded from environment variables or config files.
type Config struct {
	DefaultPageSize   int // Default items per page (typically 5)
	MaxPageSize       int // Maximum allowed items per page (typically 100)
	SearchFetchFactor int // Over-fetch multiplier applied when a search term is present (typically 3)
}

// DefaultConfig returns the default pagination configuration.
// Default values: page_size=5, max=100, search_fetch_factor=3
func DefaultConfig() Config {
	return Config{
		DefaultPageSize:   5,
		MaxPageSize:       100,
		SearchFetchFactor: 3,
	}
}

// LoadFromEnv loads pagination config from environment variables.
// Supported environment variables:
//   - PAGINATION_DEFAULT_PAGE_SIZE: Default items per page
//   - PAGINATION_MAX_PAGE_SIZE: Maximum items per page
//   - PAGINATION_SEARCH_FETCH_FACTOR: Over-fetch multiplier for text search
//
// Falls back to DefaultConfig() if environment variables are not set.
func LoadFromEnv() Config {
	return Config{
		DefaultPageSize:   getEnvAsInt("PAGINATION_DEFAULT_PAGE_SIZE", 5),
		MaxPageSize:       getEnvAsInt("PAGINATION_MAX_PAGE_SIZE", 100),
		SearchFetchFactor: getEnvAsInt("PAGINATION_SEARCH_FETCH_FACTOR", 3),
	}
}

// getEnvAsInt retrieves an environment variable and parses it as an integer.
// Returns the default value if the variable is not set or cannot be parsed.
func getEnvAsInt(key string, defaultValue int) int {
	valStr := os.Getenv(key)
	if valStr == "" {
		return defaultValue
	}
	val, err := strconv.Atoi(valStr)
	if err != nil {
		return defaultValue
	}
	return val
}
