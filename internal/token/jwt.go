package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/niura/niura-server/internal/model"
)

// Claims represents the JWT payload: the subject email plus the
// registered expiry/issue instants.
type Claims struct {
	jwt.RegisteredClaims
}

// JWT implements TokenManager backed by symmetric HMAC. The signing key
// is process-wide, loaded once at startup; rotating it invalidates all
// outstanding tokens.
type JWT struct {
	secretKey string
}

// NewJWT creates a new JWT token manager with the provided secret key.
func NewJWT(secretKey string) model.TokenManager {
	return &JWT{secretKey: secretKey}
}

// DefaultAccessTTL is used when the caller passes a zero ttl.
const DefaultAccessTTL = 30 * time.Minute

// Generate creates a signed token asserting subject until now+ttl.
func (j *JWT) Generate(subject string, ttl time.Duration) (string, error) {
	if ttl == 0 {
		ttl = DefaultAccessTTL
	}

	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	})

	tokenString, err := token.SignedString([]byte(j.secretKey))
	if err != nil {
		return "", fmt.Errorf("failed to sign access token: %w", err)
	}

	return tokenString, nil
}

// Validate verifies the signature and expiry and extracts the subject.
// Expired tokens yield model.ErrTokenExpired; anything else that fails
// to parse or verify yields model.ErrTokenMalformed.
func (j *JWT) Validate(tokenString string) (string, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("wrong signing method %v", t.Header["alg"])
		}
		return []byte(j.secretKey), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", model.ErrTokenExpired
		}
		return "", model.ErrTokenMalformed
	}
	if !token.Valid {
		return "", model.ErrTokenMalformed
	}
	if claims.Subject == "" {
		return "", model.ErrTokenMalformed
	}

	return claims.Subject, nil
}
