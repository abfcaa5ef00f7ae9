package auth

import (
	"context"
)

// CredentialVault hashes and verifies passwords with a per-user salt and a
// server-wide pepper held by the implementation.
type CredentialVault interface {
	// Hash returns the slow hash of password and the freshly generated salt used for it.
	Hash(password string) (hash string, salt string, err error)

	// Verify returns nil only if password, salt and the vault's pepper reproduce hash.
	Verify(password, hash, salt string) error
}

// TokenIssuer derives opaque session tokens
type TokenIssuer interface {
	Issue(userID int64) (string, error)
}

// SessionStore persists session_token -> user_id mappings
type SessionStore interface {
	Save(ctx context.Context, session *Session) error
	// Lookup returns the live session for token or an error wrapping apperr.ErrNotFound.
	Lookup(ctx context.Context, token string) (*Session, error)
	Delete(ctx context.Context, token string) error
	// PurgeExpired removes sessions past their time to live and returns how many were removed.
	PurgeExpired(ctx context.Context) (int64, error)
}

// UserRepository persists users
type UserRepository interface {
	// Create stores the user and sets its ID; a taken username wraps apperr.ErrConflict.
	Create(ctx context.Context, user *User) error
	GetByUsername(ctx context.Context, username string) (*User, error)
	GetByID(ctx context.Context, userID int64) (*User, error)
	// Delete removes the user and its sessions; deleting a missing user is not an error.
	Delete(ctx context.Context, userID int64) error
}

// AuthService defines the sign up, sign in and sign out use cases.
// SignUp and SignIn return a new session token.
type AuthService interface {
	SignUp(ctx context.Context, credentials *Credentials) (string, error)
	SignIn(ctx context.Context, credentials *Credentials) (string, error)
	SignOut(ctx context.Context, token string) error
}

// Authorizer decides whether a request to path may proceed. On success it returns
// the context to continue with, carrying an Identity when the path is secure.
type Authorizer interface {
	Authorize(ctx context.Context, path, credential string) (context.Context, error)
}
