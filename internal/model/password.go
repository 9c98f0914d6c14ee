package model

// PasswordHasher performs one-way hashing and verification of plaintext
// passwords. Hash salts on every call, so two hashes of the same input
// differ while both verify. Verify never fails on a malformed hash; it
// just reports false.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext, hash string) bool
}
