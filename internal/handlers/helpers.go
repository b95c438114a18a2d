// Package handlers exposes the dashboard state over a JSON HTTP API. The
// handlers are thin: all fleet and view-state logic lives in the
// reconciler and dashboard packages.
package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/aosipenko-sketch/fleet-dashboard/internal/dashboard"
	"github.com/aosipenko-sketch/fleet-dashboard/internal/middleware"
)

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

func readJSON(r *http.Request, v interface{}) error {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return err
	}
	return json.Unmarshal(body, v)
}

// sessionFromRequest resolves the dashboard session bound to the request's
// token claims. A missing session (expired or logged out) yields a 401.
func sessionFromRequest(w http.ResponseWriter, r *http.Request, sessions *dashboard.Registry) (*dashboard.Session, bool) {
	claims, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "User context not found")
		return nil, false
	}
	sess, ok := sessions.Get(claims.SessionID)
	if !ok {
		writeError(w, http.StatusUnauthorized, "Session expired")
		return nil, false
	}
	return sess, true
}
