package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"microfeed/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const defaultSessionTTL = 24 * time.Hour

// Domain errors for auth and account flows.
var (
	// ErrInvalidCredentials covers both an unknown email and a wrong
	// password, so the caller cannot tell which field was wrong.
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("email already registered")
	ErrUserNotFound       = errors.New("user not found")
	ErrForbidden          = errors.New("not the account owner")
	ErrInvalidSession     = errors.New("invalid session")
)

// SessionConfig holds the signing key and lifetime for session tokens.
type SessionConfig struct {
	SigningKey string
	TTL        time.Duration
}

// AuthService handles registration, login and session tokens.
type AuthService struct {
	users    repository.Users
	sessions SessionConfig
}

func NewAuthService(users repository.Users, sessions SessionConfig) *AuthService {
	if sessions.TTL <= 0 {
		sessions.TTL = defaultSessionTTL
	}
	return &AuthService{users: users, sessions: sessions}
}

// Register hashes the password and creates a new user. The plaintext is never
// stored. Returns ErrEmailTaken if the email is already registered.
func (s *AuthService) Register(ctx context.Context, username, email, password string) (int, error) {
	hash, err := hashPassword(password)
	if err != nil {
		return 0, fmt.Errorf("invalid password: %w", err)
	}
	id, err := s.users.Create(ctx, username, email, hash)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return 0, ErrEmailTaken
		}
		return 0, err
	}
	return id, nil
}

// sessionClaims defines the session token claims.
type sessionClaims struct {
	jwt.RegisteredClaims
	UserID int `json:"user_id"`
}

// Login verifies credentials and returns a signed session token for the
// cookie. Unknown email and wrong password yield the same error.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if u == nil {
		return "", ErrInvalidCredentials
	}

	if err := verifyPassword(u.PasswordHash, password); err != nil {
		return "", ErrInvalidCredentials
	}

	return s.issueSession(u.ID)
}

// ParseSession validates a session token and returns the user id it carries.
func (s *AuthService) ParseSession(token string) (int, error) {
	parsed, err := jwt.ParseWithClaims(token, &sessionClaims{}, func(t *jwt.Token) (interface{}, error) {
		// Ensure HMAC signing is used
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(s.sessions.SigningKey), nil
	})
	if err != nil {
		return 0, err
	}

	claims, ok := parsed.Claims.(*sessionClaims)
	if !ok || !parsed.Valid {
		return 0, ErrInvalidSession
	}

	return claims.UserID, nil
}

// helper: hash password safely
func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// helper: verify password against hash (constant-time underneath)
func verifyPassword(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}

// helper: issue a signed session token for a user
func (s *AuthService) issueSession(userID int) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &sessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.sessions.TTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		UserID: userID,
	})
	return token.SignedString([]byte(s.sessions.SigningKey))
}
