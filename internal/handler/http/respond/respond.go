// Package respond writes JSON responses and keeps internal error detail
// out of client-facing bodies.
package respond

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
)

// JSON writes v with the given status. A nil v sends the status alone.
func JSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if v == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(v); err != nil {
		// Headers are already sent; the failure can only be logged.
		slog.Default().Error("failed to encode JSON response",
			slog.Int("status_code", code),
			slog.Any("error", err))
	}
}

// Phrases that mark a message as validation feedback, safe to show the
// caller verbatim.
var safePhrases = []string{
	"required",
	"invalid",
	"not found",
	"already exists",
	"must be",
	"cannot be",
	"too long",
	"too short",
	"out of",
	"unknown",
}

// SafeError writes an error body without leaking internals. Validation
// messages pass through untouched. Everything else, and every 5xx, turns
// into a generic body while the real error is logged with secrets masked.
func SafeError(w http.ResponseWriter, code int, err error) {
	if err == nil {
		return
	}

	msg := err.Error()
	if code < 500 && isValidationMessage(msg) {
		JSON(w, code, map[string]string{"error": msg})
		return
	}

	slog.Default().Error("internal server error",
		slog.String("status", http.StatusText(code)),
		slog.Int("code", code),
		slog.String("error", SanitizeError(err)))
	JSON(w, code, map[string]string{"error": "internal server error"})
}

func isValidationMessage(msg string) bool {
	lower := strings.ToLower(msg)
	for _, phrase := range safePhrases {
		if strings.Contains(lower, phrase) {
			return true
		}
	}
	return false
}
