// Package pathutil provides URL path helpers shared by the HTTP handlers
// and middleware: id extraction and metrics-label normalization.
package pathutil

import (
	"regexp"
	"strings"
)

// PathPattern represents a regex pattern and its normalized template.
type PathPattern struct {
	Pattern  *regexp.Regexp
	Template string
}

// pathPatterns defines the list of patterns for dynamic routes.
// Patterns are evaluated in order from most specific to least specific.
// Item ids are opaque strings (UUIDs in production), so the segment matcher
// accepts any single non-slash segment except the known static suffixes.
var pathPatterns = []*PathPattern{
	{Pattern: regexp.MustCompile(`^/items/classify$`), Template: "/items/classify"},
	{Pattern: regexp.MustCompile(`^/items/count$`), Template: "/items/count"},
	{Pattern: regexp.MustCompile(`^/items/[^/]+$`), Template: "/items/:id"},
}

// NormalizePath normalizes dynamic URL paths to prevent metrics label
// cardinality explosion. Paths carrying document ids (e.g. /items/seed-0001)
// are converted to template form (/items/:id); static paths pass through
// unchanged.
//
// Query parameters and trailing slashes are stripped first:
//
//	NormalizePath("/items/seed-0001?x=1") // "/items/:id"
//	NormalizePath("/items/count")         // "/items/count"
//	NormalizePath("/healthz")             // "/healthz"
func NormalizePath(path string) string {
	if idx := strings.IndexByte(path, '?'); idx != -1 {
		path = path[:idx]
	}
	if len(path) > 1 && path[len(path)-1] == '/' {
		path = path[:len(path)-1]
	}

	for _, p := range pathPatterns {
		if p.Pattern.MatchString(path) {
			return p.Template
		}
	}

	// Static paths like /healthz and /metrics pass through unchanged.
	return path
}
