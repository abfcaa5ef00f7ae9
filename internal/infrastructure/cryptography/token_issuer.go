package cryptography

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strconv"

	"github.com/MGTheTrain/news-api/internal/domain/auth"

	"github.com/google/uuid"
)

// hmacTokenIssuer implements the auth.TokenIssuer interface
type hmacTokenIssuer struct {
	secret []byte
	nonce  func() string
}

// NewTokenIssuer creates a token issuer keyed by the server secret
func NewTokenIssuer(secretKey string) (auth.TokenIssuer, error) {
	if secretKey == "" {
		return nil, errors.New("secret key cannot be empty")
	}

	return &hmacTokenIssuer{
		secret: []byte(secretKey),
		nonce:  uuid.NewString,
	}, nil
}

// Issue returns hex(HMAC-SHA256(secret, userID || nonce)). The token carries no
// decodable payload; it is only meaningful together with a stored session.
func (i *hmacTokenIssuer) Issue(userID int64) (string, error) {
	mac := hmac.New(sha256.New, i.secret)
	mac.Write([]byte(strconv.FormatInt(userID, 10)))
	mac.Write([]byte(i.nonce()))

	return hex.EncodeToString(mac.Sum(nil)), nil
}
