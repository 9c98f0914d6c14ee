package password

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/niura/niura-server/internal/model"
)

// Bcrypt implements PasswordHasher with the bcrypt KDF. Each Hash call
// draws a fresh salt, so hashes of equal inputs differ while all verify.
type Bcrypt struct {
	cost int
}

// NewBcrypt creates a bcrypt hasher with the given cost. Costs outside
// bcrypt's supported range fall back to the library default.
func NewBcrypt(cost int) model.PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &Bcrypt{cost: cost}
}

// Hash derives a salted one-way hash of the plaintext.
func (b *Bcrypt) Hash(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), b.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// Verify reports whether plaintext matches hash. A malformed hash is
// treated as a mismatch, never an error.
func (b *Bcrypt) Verify(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
