package v1

import (
	"context"
	"errors"

	"github.com/MGTheTrain/news-api/internal/domain/auth"
	"github.com/MGTheTrain/news-api/internal/pkg/logger"
)

// AuthServer handles gRPC requests for sign up, sign in and sign out
type AuthServer struct {
	authService auth.AuthService
	logger      logger.Logger
}

// NewAuthServer creates a new instance of AuthServer
func NewAuthServer(authService auth.AuthService, logger logger.Logger) (*AuthServer, error) {
	if authService == nil {
		return nil, errors.New("auth service is required")
	}
	return &AuthServer{
		authService: authService,
		logger:      logger,
	}, nil
}

// SignUp registers a user and returns its first session token
func (s *AuthServer) SignUp(ctx context.Context, req *CredentialsRequest) (*SessionResponse, error) {
	token, err := s.authService.SignUp(ctx, &auth.Credentials{Username: req.Username, Password: req.Password})
	if err != nil {
		return nil, toStatus(err, s.logger)
	}
	return &SessionResponse{SessionID: token}, nil
}

// SignIn returns a new session token for valid credentials
func (s *AuthServer) SignIn(ctx context.Context, req *CredentialsRequest) (*SessionResponse, error) {
	token, err := s.authService.SignIn(ctx, &auth.Credentials{Username: req.Username, Password: req.Password})
	if err != nil {
		return nil, toStatus(err, s.logger)
	}
	return &SessionResponse{SessionID: token}, nil
}

// SignOut ends the session the call was authenticated with
func (s *AuthServer) SignOut(ctx context.Context, _ *Empty) (*Empty, error) {
	identity, err := caller(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.authService.SignOut(ctx, identity.SessionToken); err != nil {
		return nil, toStatus(err, s.logger)
	}
	return &Empty{}, nil
}
