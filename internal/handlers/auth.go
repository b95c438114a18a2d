package handlers

import (
	"net/http"

	log "github.com/sirupsen/logrus"

	"github.com/aosipenko-sketch/fleet-dashboard/internal/auth"
	"github.com/aosipenko-sketch/fleet-dashboard/internal/dashboard"
	"github.com/aosipenko-sketch/fleet-dashboard/internal/models"
)

// AuthHandler handles the mock sign-in flow.
type AuthHandler struct {
	authService *auth.Service
	sessions    *dashboard.Registry
}

// NewAuthHandler creates a new authentication handler.
func NewAuthHandler(authService *auth.Service, sessions *dashboard.Registry) *AuthHandler {
	return &AuthHandler{authService: authService, sessions: sessions}
}

// Login authenticates a demo credential pair, starts a dashboard session,
// and returns the session token plus the user record.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var req models.LoginRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req.Email == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "Email and password are required")
		return
	}

	user, err := h.authService.Authenticate(req.Email, req.Password)
	if err != nil {
		writeError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	sess := h.sessions.Create(user)
	token, err := h.authService.GenerateToken(sess.ID(), user)
	if err != nil {
		h.sessions.Delete(sess.ID())
		writeError(w, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	log.WithField("email", user.Email).Info("User signed in")

	writeJSON(w, http.StatusOK, models.LoginResponse{Token: token, User: user})
}

// Logout deletes the dashboard session. The token itself simply stops
// resolving to a session.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}
	sess, ok := sessionFromRequest(w, r, h.sessions)
	if !ok {
		return
	}
	h.sessions.Delete(sess.ID())
	writeJSON(w, http.StatusOK, map[string]string{"message": "Logged out"})
}
