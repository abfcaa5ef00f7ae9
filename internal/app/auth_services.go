package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/MGTheTrain/news-api/internal/domain/auth"
	"github.com/MGTheTrain/news-api/internal/pkg/apperr"
	"github.com/MGTheTrain/news-api/internal/pkg/logger"
)

// authService implements the auth.AuthService interface
type authService struct {
	users    auth.UserRepository
	sessions auth.SessionStore
	vault    auth.CredentialVault
	issuer   auth.TokenIssuer
	logger   logger.Logger
}

// NewAuthService creates a new instance of AuthService
func NewAuthService(
	users auth.UserRepository,
	sessions auth.SessionStore,
	vault auth.CredentialVault,
	issuer auth.TokenIssuer,
	logger logger.Logger,
) (auth.AuthService, error) {
	if users == nil || sessions == nil || vault == nil || issuer == nil {
		return nil, errors.New("users, sessions, vault and issuer are required")
	}
	return &authService{
		users:    users,
		sessions: sessions,
		vault:    vault,
		issuer:   issuer,
		logger:   logger,
	}, nil
}

// SignUp registers the user and opens a first session
func (s *authService) SignUp(ctx context.Context, credentials *auth.Credentials) (string, error) {
	if err := credentials.Validate(); err != nil {
		return "", err
	}

	hash, salt, err := s.vault.Hash(credentials.Password)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	user := &auth.User{
		Username:     credentials.Username,
		PasswordHash: hash,
		Salt:         salt,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return "", err
	}

	token, err := s.openSession(ctx, user.ID)
	if err != nil {
		// Without its first session the sign up failed, so the username is released again
		if delErr := s.users.Delete(context.WithoutCancel(ctx), user.ID); delErr != nil {
			s.logger.Error("Failed to remove user after session failure: ", delErr)
		}
		return "", err
	}

	s.logger.Info("Registered user with id ", user.ID)
	return token, nil
}

// SignIn verifies the credentials and opens a new session. Unknown users and wrong
// passwords are indistinguishable to the caller.
func (s *authService) SignIn(ctx context.Context, credentials *auth.Credentials) (string, error) {
	if err := credentials.Validate(); err != nil {
		return "", auth.ErrInvalidCredentials
	}

	user, err := s.users.GetByUsername(ctx, credentials.Username)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return "", auth.ErrInvalidCredentials
		}
		return "", err
	}

	if err := s.vault.Verify(credentials.Password, user.PasswordHash, user.Salt); err != nil {
		if errors.Is(err, apperr.ErrUnauthenticated) {
			return "", auth.ErrInvalidCredentials
		}
		return "", err
	}

	return s.openSession(ctx, user.ID)
}

// SignOut ends the session; signing out twice is not an error
func (s *authService) SignOut(ctx context.Context, token string) error {
	if token == "" {
		return fmt.Errorf("session token missing: %w", apperr.ErrUnauthenticated)
	}
	if err := s.sessions.Delete(ctx, token); err != nil {
		return err
	}
	return nil
}

func (s *authService) openSession(ctx context.Context, userID int64) (string, error) {
	token, err := s.issuer.Issue(userID)
	if err != nil {
		return "", fmt.Errorf("failed to issue session token: %w", err)
	}

	if err := s.sessions.Save(ctx, &auth.Session{Token: token, UserID: userID}); err != nil {
		return "", err
	}

	s.logger.Info("Opened session for user ", userID)
	return token, nil
}
