// Package auth implements the credential primitives of the server: signed
// time-limited identity tokens and salted password digests.
package auth

import (
	"errors"
	"time"

	"github.com/dmitrijs2005/matchpredictor/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// Claims is the identity payload embedded in issued tokens: the standard
// registered claims plus the user id and email.
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"userId"`
	Email  string `json:"email"`
}

// TokenService signs and verifies compact, self-contained credentials
// (HS256 JWTs). The secret key and validity window are injected at
// construction so tests can supply deterministic values.
type TokenService struct {
	secretKey []byte
	validity  time.Duration
}

func NewTokenService(secretKey []byte, validity time.Duration) *TokenService {
	return &TokenService{secretKey: secretKey, validity: validity}
}

// Issue signs a token for the given identity with an expiration set to
// now plus the configured validity window.
func (s *TokenService) Issue(userID, email string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.validity)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		UserID: userID,
		Email:  email,
	})

	return token.SignedString(s.secretKey)
}

// Verify parses and validates a token and returns the embedded claims
// unmodified. Failures are reported as common.ErrTokenExpired,
// common.ErrMalformedToken, or common.ErrInvalidToken (bad signature and
// anything else).
func (s *TokenService) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return s.secretKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, common.ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenMalformed):
			return nil, common.ErrMalformedToken
		default:
			return nil, common.ErrInvalidToken
		}
	}

	if !token.Valid {
		return nil, common.ErrInvalidToken
	}

	return claims, nil
}
