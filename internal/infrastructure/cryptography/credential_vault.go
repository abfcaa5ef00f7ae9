package cryptography

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/MGTheTrain/news-api/internal/domain/auth"
	"github.com/MGTheTrain/news-api/internal/pkg/logger"

	"golang.org/x/crypto/bcrypt"
)

// SaltSize is the number of random bytes generated per password hash
const SaltSize = 16

// bcryptCredentialVault implements the auth.CredentialVault interface.
// The bcrypt input is base64(HMAC-SHA256(pepper, salt || password)), which stays
// below bcrypt's 72 byte input limit regardless of password length.
type bcryptCredentialVault struct {
	pepper []byte
	cost   int
	logger logger.Logger
}

// NewCredentialVault creates a bcrypt based vault. A zero cost selects bcrypt.DefaultCost.
func NewCredentialVault(pepper string, cost int, logger logger.Logger) (auth.CredentialVault, error) {
	if pepper == "" {
		return nil, errors.New("pepper cannot be empty")
	}
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return nil, fmt.Errorf("bcrypt cost %d out of range [%d, %d]", cost, bcrypt.MinCost, bcrypt.MaxCost)
	}

	return &bcryptCredentialVault{
		pepper: []byte(pepper),
		cost:   cost,
		logger: logger,
	}, nil
}

// Hash generates a fresh salt and returns the bcrypt hash together with the hex encoded salt
func (v *bcryptCredentialVault) Hash(password string) (string, string, error) {
	saltBytes := make([]byte, SaltSize)
	if _, err := rand.Read(saltBytes); err != nil {
		return "", "", fmt.Errorf("failed to generate salt: %w", err)
	}
	salt := hex.EncodeToString(saltBytes)

	hash, err := bcrypt.GenerateFromPassword(v.combine(password, salt), v.cost)
	if err != nil {
		return "", "", fmt.Errorf("failed to hash password: %w", err)
	}

	return string(hash), salt, nil
}

// Verify recombines password, salt and pepper and compares against the stored hash
func (v *bcryptCredentialVault) Verify(password, hash, salt string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hash), v.combine(password, salt))
	if err == nil {
		return nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return auth.ErrInvalidCredentials
	}

	v.logger.Error("Stored password hash could not be compared: ", err)
	return fmt.Errorf("failed to verify password: %w", err)
}

func (v *bcryptCredentialVault) combine(password, salt string) []byte {
	mac := hmac.New(sha256.New, v.pepper)
	mac.Write([]byte(salt))
	mac.Write([]byte(password))
	return []byte(base64.StdEncoding.EncodeToString(mac.Sum(nil)))
}
