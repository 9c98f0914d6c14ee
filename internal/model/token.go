package model

import "time"

// TokenManager issues and validates signed bearer tokens. The subject is
// the user's email; validity is bounded by the TTL given at issue time.
type TokenManager interface {
	Generate(subject string, ttl time.Duration) (string, error)
	Validate(token string) (subject string, err error)
}

// Token is the shape every auth flow returns to the client.
type Token struct {
	AccessToken string
	TokenType   string
}

// TokenTypeBearer is the only token type this server issues.
const TokenTypeBearer = "bearer"
