package model

import "context"

// Identity is the trusted result of verifying a third-party assertion.
type Identity struct {
	Email string
	Name  string
}

// IdentityVerifier checks an opaque provider token against the external
// identity provider and extracts a verified identity. Implementations
// must bound the call with a timeout; any failure (including timeout)
// is surfaced by the auth service as ErrUnauthenticated.
type IdentityVerifier interface {
	Verify(ctx context.Context, providerToken string) (Identity, error)
}
