// Package auth issues and verifies session tokens and hashes passwords.
package auth

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/dmitrijs2005/contactkeeper/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// DefaultTokenValidity is the lifetime of a session token.
const DefaultTokenValidity = 7 * 24 * time.Hour

// Claims is the JWT payload: the standard claims plus the account identity.
type Claims struct {
	jwt.RegisteredClaims
	UserID   int64  `json:"userId"`
	Username string `json:"username"`
}

// Identity is what a verified token tells about the caller.
type Identity struct {
	AccountID int64
	Username  string
}

// TokenIssuer signs and verifies HS256 session tokens with a single
// process-wide secret. Rotating the secret invalidates every issued token.
type TokenIssuer struct {
	secretKey        []byte
	validityDuration time.Duration
	now              func() time.Time
}

// NewTokenIssuer returns an issuer; a non-positive validity falls back to
// DefaultTokenValidity.
func NewTokenIssuer(secretKey []byte, validityDuration time.Duration) *TokenIssuer {
	if validityDuration <= 0 {
		validityDuration = DefaultTokenValidity
	}
	return &TokenIssuer{
		secretKey:        secretKey,
		validityDuration: validityDuration,
		now:              time.Now,
	}
}

// Issue mints a token for the account, valid for the configured duration.
func (i *TokenIssuer) Issue(accountID int64, username string) (string, error) {
	if len(i.secretKey) == 0 {
		return "", errors.New("signing key is not configured")
	}

	now := i.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(accountID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.validityDuration)),
		},
		UserID:   accountID,
		Username: username,
	})

	tokenString, err := token.SignedString(i.secretKey)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}

	return tokenString, nil
}

// Verify checks signature, algorithm and expiry. Any failure matches
// common.ErrInvalidToken; expiry additionally matches common.ErrTokenExpired.
func (i *TokenIssuer) Verify(tokenString string) (Identity, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims,
		func(t *jwt.Token) (interface{}, error) {
			return i.secretKey, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(i.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Identity{}, fmt.Errorf("%w: %w", common.ErrInvalidToken, common.ErrTokenExpired)
		}
		return Identity{}, fmt.Errorf("%w: %v", common.ErrInvalidToken, err)
	}

	if !token.Valid || claims.UserID <= 0 {
		return Identity{}, common.ErrInvalidToken
	}

	return Identity{AccountID: claims.UserID, Username: claims.Username}, nil
}
