//go:build unit
// +build unit

package app

import (
	"context"
	"errors"
	"testing"

	"github.com/MGTheTrain/news-api/internal/domain/auth"
	"github.com/MGTheTrain/news-api/internal/pkg/apperr"
	"github.com/MGTheTrain/news-api/internal/pkg/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type authMocks struct {
	users    *MockUserRepository
	sessions *MockSessionStore
	vault    *MockCredentialVault
	issuer   *MockTokenIssuer
}

func (m *authMocks) assertExpectations(t *testing.T) {
	m.users.AssertExpectations(t)
	m.sessions.AssertExpectations(t)
	m.vault.AssertExpectations(t)
	m.issuer.AssertExpectations(t)
}

func setupAuthService(t *testing.T) (auth.AuthService, *authMocks) {
	t.Helper()

	m := &authMocks{
		users:    new(MockUserRepository),
		sessions: new(MockSessionStore),
		vault:    new(MockCredentialVault),
		issuer:   new(MockTokenIssuer),
	}
	svc, err := NewAuthService(m.users, m.sessions, m.vault, m.issuer, testutil.SetupTestLogger(t))
	require.NoError(t, err)
	return svc, m
}

func TestAuthService_SignUp_Success(t *testing.T) {
	svc, m := setupAuthService(t)
	creds := &auth.Credentials{Username: "alice", Password: "password123"}

	m.vault.On("Hash", "password123").Return("bcrypt-hash", "salt-hex", nil)
	m.users.On("Create", mock.Anything, mock.MatchedBy(func(u *auth.User) bool {
		return u.Username == "alice" && u.PasswordHash == "bcrypt-hash" && u.Salt == "salt-hex"
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*auth.User).ID = 11
	}).Return(nil)
	m.issuer.On("Issue", int64(11)).Return(validToken, nil)
	m.sessions.On("Save", mock.Anything, &auth.Session{Token: validToken, UserID: 11}).Return(nil)

	token, err := svc.SignUp(context.Background(), creds)

	require.NoError(t, err)
	assert.Equal(t, validToken, token)
	m.assertExpectations(t)
}

func TestAuthService_SignUp_SessionFailureReleasesUser(t *testing.T) {
	svc, m := setupAuthService(t)
	saveErr := errors.New("connection reset")

	m.vault.On("Hash", "password123").Return("h", "s", nil)
	m.users.On("Create", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		args.Get(1).(*auth.User).ID = 11
	}).Return(nil)
	m.issuer.On("Issue", int64(11)).Return(validToken, nil)
	m.sessions.On("Save", mock.Anything, mock.Anything).Return(saveErr)
	m.users.On("Delete", mock.Anything, int64(11)).Return(nil)

	token, err := svc.SignUp(context.Background(), &auth.Credentials{Username: "alice", Password: "password123"})

	assert.ErrorIs(t, err, saveErr)
	assert.Empty(t, token)
	m.users.AssertCalled(t, "Delete", mock.Anything, int64(11))
}

func TestAuthService_SignUp_ReleasesUserWhenCallerCancelled(t *testing.T) {
	svc, m := setupAuthService(t)
	ctx, cancel := context.WithCancel(context.Background())

	m.vault.On("Hash", "password123").Return("h", "s", nil)
	m.users.On("Create", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		args.Get(1).(*auth.User).ID = 12
		cancel()
	}).Return(nil)
	m.issuer.On("Issue", int64(12)).Return(validToken, nil)
	m.sessions.On("Save", mock.Anything, mock.Anything).Return(context.Canceled)
	m.users.On("Delete", mock.MatchedBy(func(c context.Context) bool {
		return c.Err() == nil
	}), int64(12)).Return(nil)

	_, err := svc.SignUp(ctx, &auth.Credentials{Username: "alice", Password: "password123"})

	assert.ErrorIs(t, err, context.Canceled)
	m.users.AssertExpectations(t)
}

func TestAuthService_SignUp_UsernameTaken(t *testing.T) {
	svc, m := setupAuthService(t)

	m.vault.On("Hash", "password123").Return("h", "s", nil)
	m.users.On("Create", mock.Anything, mock.Anything).Return(apperr.ErrConflict)

	_, err := svc.SignUp(context.Background(), &auth.Credentials{Username: "alice", Password: "password123"})

	assert.ErrorIs(t, err, apperr.ErrConflict)
	m.issuer.AssertNotCalled(t, "Issue", mock.Anything)
	m.sessions.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestAuthService_SignUp_InvalidCredentials(t *testing.T) {
	svc, m := setupAuthService(t)

	_, err := svc.SignUp(context.Background(), &auth.Credentials{Username: "al", Password: "short"})

	assert.ErrorIs(t, err, apperr.ErrInvalidArgument)
	m.vault.AssertNotCalled(t, "Hash", mock.Anything)
}

func TestAuthService_SignIn_Success(t *testing.T) {
	svc, m := setupAuthService(t)
	user := &auth.User{ID: 5, Username: "alice", PasswordHash: "h", Salt: "s"}

	m.users.On("GetByUsername", mock.Anything, "alice").Return(user, nil)
	m.vault.On("Verify", "password123", "h", "s").Return(nil)
	m.issuer.On("Issue", int64(5)).Return(validToken, nil)
	m.sessions.On("Save", mock.Anything, mock.MatchedBy(func(s *auth.Session) bool {
		return s.Token == validToken && s.UserID == 5
	})).Return(nil)

	token, err := svc.SignIn(context.Background(), &auth.Credentials{Username: "alice", Password: "password123"})

	require.NoError(t, err)
	assert.Equal(t, validToken, token)
	m.assertExpectations(t)
}

func TestAuthService_SignIn_FailuresAreIndistinguishable(t *testing.T) {
	user := &auth.User{ID: 5, Username: "alice", PasswordHash: "h", Salt: "s"}

	tests := []struct {
		name  string
		setup func(m *authMocks)
		creds *auth.Credentials
	}{
		{
			name: "UnknownUser",
			setup: func(m *authMocks) {
				m.users.On("GetByUsername", mock.Anything, "ghost").Return(nil, apperr.ErrNotFound)
			},
			creds: &auth.Credentials{Username: "ghost", Password: "password123"},
		},
		{
			name: "WrongPassword",
			setup: func(m *authMocks) {
				m.users.On("GetByUsername", mock.Anything, "alice").Return(user, nil)
				m.vault.On("Verify", "wrong-password", "h", "s").Return(auth.ErrInvalidCredentials)
			},
			creds: &auth.Credentials{Username: "alice", Password: "wrong-password"},
		},
		{
			name:  "MalformedInput",
			setup: func(m *authMocks) {},
			creds: &auth.Credentials{Username: "alice", Password: ""},
		},
	}

	var messages []string
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := setupAuthService(t)
			tt.setup(m)

			token, err := svc.SignIn(context.Background(), tt.creds)

			assert.Empty(t, token)
			assert.ErrorIs(t, err, apperr.ErrUnauthenticated)
			messages = append(messages, err.Error())
			m.issuer.AssertNotCalled(t, "Issue", mock.Anything)
		})
	}

	for _, msg := range messages {
		assert.Equal(t, messages[0], msg)
	}
}

func TestAuthService_SignIn_StoreFailure(t *testing.T) {
	svc, m := setupAuthService(t)
	m.users.On("GetByUsername", mock.Anything, "alice").Return(nil, errors.New("db down"))

	_, err := svc.SignIn(context.Background(), &auth.Credentials{Username: "alice", Password: "password123"})

	require.Error(t, err)
	assert.NotErrorIs(t, err, apperr.ErrUnauthenticated)
}

func TestAuthService_SignOut(t *testing.T) {
	svc, m := setupAuthService(t)
	m.sessions.On("Delete", mock.Anything, validToken).Return(nil)

	require.NoError(t, svc.SignOut(context.Background(), validToken))
	assert.ErrorIs(t, svc.SignOut(context.Background(), ""), apperr.ErrUnauthenticated)
	m.sessions.AssertNumberOfCalls(t, "Delete", 1)
}

func TestNewAuthService_MissingDependencies(t *testing.T) {
	_, err := NewAuthService(nil, nil, nil, nil, testutil.SetupTestLogger(t))
	assert.Error(t, err)
}
