package models

// User represents the signed-in dashboard user.
type User struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	AvatarURL string `json:"avatarUrl"`
}

// LoginRequest represents a login request.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse represents a successful login response.
type LoginResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// Claims represents the JWT claims carried by a dashboard session token.
type Claims struct {
	SessionID string `json:"session_id"`
	Email     string `json:"email"`
	Exp       int64  `json:"exp"`
}
