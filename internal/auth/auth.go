package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/aosipenko-sketch/fleet-dashboard/internal/models"
)

var (
	ErrInvalidToken       = errors.New("invalid token")
	ErrExpiredToken       = errors.New("token expired")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// demoUser is one entry in the mock sign-in directory. There is no real
// identity provider; the directory stands in for the OAuth flow of the
// original dashboard.
type demoUser struct {
	user         models.User
	passwordHash string
}

var demoDirectory = []models.User{
	{
		Name:      "Alex Williams",
		Email:     "alex.williams@example.com",
		AvatarURL: "https://i.pravatar.cc/150?u=alexwilliams",
	},
	{
		Name:      "Jane Doe",
		Email:     "jane.doe@example.com",
		AvatarURL: "https://i.pravatar.cc/150?u=janedoe",
	},
}

// Service handles the mock sign-in and session-token operations.
type Service struct {
	jwtSecret []byte
	tokenExp  time.Duration
	users     map[string]demoUser
}

// NewService creates an authentication service. Every demo user shares the
// configured demo password, hashed once at startup.
func NewService(secret string, tokenExp time.Duration, demoPassword string) (*Service, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(demoPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash demo password: %w", err)
	}

	users := make(map[string]demoUser, len(demoDirectory))
	for _, u := range demoDirectory {
		users[u.Email] = demoUser{user: u, passwordHash: string(hash)}
	}

	return &Service{
		jwtSecret: []byte(secret),
		tokenExp:  tokenExp,
		users:     users,
	}, nil
}

// Authenticate checks a demo credential pair and returns the user record.
func (s *Service) Authenticate(email, password string) (models.User, error) {
	entry, ok := s.users[email]
	if !ok {
		return models.User{}, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(entry.passwordHash), []byte(password)) != nil {
		return models.User{}, ErrInvalidCredentials
	}
	return entry.user, nil
}

// GenerateToken signs a session token binding the dashboard session id to
// the user.
func (s *Service) GenerateToken(sessionID string, user models.User) (string, error) {
	claims := jwt.MapClaims{
		"session_id": sessionID,
		"email":      user.Email,
		"exp":        time.Now().Add(s.tokenExp).Unix(),
		"iat":        time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}

// ValidateToken validates a session token and returns its claims.
func (s *Service) ValidateToken(tokenString string) (*models.Claims, error) {
	tokenString = strings.TrimPrefix(tokenString, "Bearer ")

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}
	sessionID, ok := claims["session_id"].(string)
	if !ok {
		return nil, ErrInvalidToken
	}
	email, ok := claims["email"].(string)
	if !ok {
		return nil, ErrInvalidToken
	}
	exp, ok := claims["exp"].(float64)
	if !ok {
		return nil, ErrInvalidToken
	}

	return &models.Claims{
		SessionID: sessionID,
		Email:     email,
		Exp:       int64(exp),
	}, nil
}

// ExtractTokenFromHeader extracts the bearer token from an Authorization
// header.
func (s *Service) ExtractTokenFromHeader(authHeader string) (string, error) {
	if authHeader == "" {
		return "", ErrInvalidToken
	}
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		return "", ErrInvalidToken
	}
	return parts[1], nil
}
