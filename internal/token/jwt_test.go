package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/niura/niura-server/internal/model"
)

func TestJWT_Roundtrip(t *testing.T) {
	j := NewJWT("secret")

	access, err := j.Generate("user@example.com", time.Minute)
	require.NoError(t, err)

	subject, err := j.Validate(access)
	require.NoError(t, err)
	require.Equal(t, "user@example.com", subject)
}

func TestJWT_DefaultTTL(t *testing.T) {
	j := NewJWT("secret")

	access, err := j.Generate("user@example.com", 0)
	require.NoError(t, err)

	subject, err := j.Validate(access)
	require.NoError(t, err)
	require.Equal(t, "user@example.com", subject)
}

func TestJWT_Expired(t *testing.T) {
	j := NewJWT("secret")

	access, err := j.Generate("user@example.com", -time.Minute)
	require.NoError(t, err)

	_, err = j.Validate(access)
	require.ErrorIs(t, err, model.ErrTokenExpired)
}

func TestJWT_Malformed(t *testing.T) {
	j := NewJWT("secret")

	tests := []struct {
		name  string
		token string
	}{
		{name: "garbage", token: "not-a-token"},
		{name: "empty", token: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := j.Validate(tt.token)
			assert.ErrorIs(t, err, model.ErrTokenMalformed)
		})
	}
}

func TestJWT_WrongKey(t *testing.T) {
	issuer := NewJWT("secret-a")
	verifier := NewJWT("secret-b")

	access, err := issuer.Generate("user@example.com", time.Minute)
	require.NoError(t, err)

	_, err = verifier.Validate(access)
	require.ErrorIs(t, err, model.ErrTokenMalformed)
}

func TestJWT_EmptySubject(t *testing.T) {
	j := NewJWT("secret")

	access, err := j.Generate("", time.Minute)
	require.NoError(t, err)

	_, err = j.Validate(access)
	require.ErrorIs(t, err, model.ErrTokenMalformed)
}
