// Package search provides the client-side text matching used by the catalog
// page fetcher. The document store cannot evaluate substring predicates
// server-side, so raw batches are over-fetched and filtered with this matcher.
package search

import "strings"

// Matches reports whether name contains term as a case-insensitive substring.
// An empty term matches everything.
func Matches(name, term string) bool {
	if term == "" {
		return true
	}
	return strings.Contains(strings.ToLower(name), strings.ToLower(term))
}

// Filter returns the elements of items whose name (per nameOf) matches term,
// preserving order, up to limit elements. A limit of 0 or less means no limit.
func Filter[T any](items []T, term string, limit int, nameOf func(T) string) []T {
	if term == "" && (limit <= 0 || len(items) <= limit) {
		return items
	}

	out := make([]T, 0, len(items))
	for _, it := range items {
		if !Matches(nameOf(it), term) {
			continue
		}
		out = append(out, it)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out
}
