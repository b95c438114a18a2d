// Package adapters contains the boundary clients that translate external
// service responses into domain records. Each client performs one network
// call per fetch; anything other than a well-formed success response is
// reported as a *FetchError and handled at the reconciler boundary.
package adapters

import (
	"fmt"
	"net/http"
	"time"
)

// FetchError is the typed failure raised by an adapter on a bad HTTP status
// or a malformed or error-flagged payload.
type FetchError struct {
	Provider   string
	StatusCode int
	Message    string
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s API error (%d): %s", e.Provider, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%s API error: %s", e.Provider, e.Message)
}

func newHTTPClient() *http.Client {
	return &http.Client{Timeout: 30 * time.Second}
}

const maxErrorBody = 512

func truncateBody(body []byte) string {
	if len(body) > maxErrorBody {
		return string(body[:maxErrorBody]) + "..."
	}
	return string(body)
}
