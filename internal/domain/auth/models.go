package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MGTheTrain/news-api/internal/pkg/apperr"

	"github.com/go-playground/validator/v10"
)

// User is a registered account. PasswordHash and Salt never leave the service.
type User struct {
	ID           int64
	Username     string
	Email        *string
	PasswordHash string
	Salt         string
	CreatedAt    time.Time
}

// Session maps an opaque token to the user that owns it.
// A user may hold any number of concurrent sessions.
type Session struct {
	Token     string
	UserID    int64
	CreatedAt time.Time
}

// Expired reports whether the session is older than ttl; a zero ttl never expires
func (s *Session) Expired(now time.Time, ttl time.Duration) bool {
	return ttl > 0 && now.Sub(s.CreatedAt) > ttl
}

// Identity is the authenticated caller attached to a request context
type Identity struct {
	UserID       int64
	SessionToken string
}

// Credentials carries sign up and sign in input
type Credentials struct {
	Username string `validate:"required,min=3,max=100,printascii"`
	Password string `validate:"required,min=8,max=128"`
}

// Validate checks the credentials shape, never their correctness
func (c *Credentials) Validate() error {
	err := validator.New().Struct(c)
	if err == nil {
		if strings.ContainsAny(c.Username, " \t") {
			return fmt.Errorf("username must not contain whitespace: %w", apperr.ErrInvalidArgument)
		}
		return nil
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		var messages []string
		for _, fieldErr := range validationErrors {
			messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
		}
		return fmt.Errorf("validation failed: %v: %w", messages, apperr.ErrInvalidArgument)
	}
	return fmt.Errorf("validation error: %v: %w", err, apperr.ErrInvalidArgument)
}

// TokenLength is the length of a hex encoded HMAC-SHA256 session token
const TokenLength = 64

// ErrInvalidCredentials is returned for unknown users and wrong passwords alike
var ErrInvalidCredentials = fmt.Errorf("invalid credentials: %w", apperr.ErrUnauthenticated)

// WellFormedToken reports whether token has the shape of an issued session token
func WellFormedToken(token string) bool {
	if len(token) != TokenLength {
		return false
	}
	for i := 0; i < len(token); i++ {
		c := token[i]
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return false
		}
	}
	return true
}
