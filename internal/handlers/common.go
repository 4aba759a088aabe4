// internal/handlers/common.go
package handlers

import (
	"net/http"
	"time"
)

// actingUser resolves the operator name from the X-User header. Requests
// without one are attributed to "system".
func actingUser(r *http.Request) string {
	if user := r.Header.Get("X-User"); user != "" {
		return user
	}
	return "system"
}

// parseDateParam reads a query parameter as a date, accepting either
// YYYY-MM-DD or full RFC 3339 timestamps.
func parseDateParam(r *http.Request, name string) (time.Time, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return time.Time{}, false
	}
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, true
	}
	return time.Time{}, false
}
