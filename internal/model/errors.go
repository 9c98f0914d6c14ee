package model

import "errors"

var (
	// ErrNotFound is returned by stores when no row matches.
	ErrNotFound = errors.New("not found")
	// ErrEmailTaken is returned when registering an already known email.
	ErrEmailTaken = errors.New("email already registered")
	// ErrUnauthenticated covers bad credentials, bad tokens and failed
	// provider verification. Login failures deliberately collapse into
	// this single error so callers cannot tell an unknown email from a
	// wrong password.
	ErrUnauthenticated = errors.New("could not validate credentials")
	// ErrInvalidRange is returned when a caller-supplied time window has
	// start after end.
	ErrInvalidRange = errors.New("invalid time range")
)

var (
	// ErrTokenExpired means the token was well-formed but its expiry
	// instant has passed.
	ErrTokenExpired = errors.New("access token expired")
	// ErrTokenMalformed means the token could not be parsed or its
	// signature did not verify.
	ErrTokenMalformed = errors.New("access token malformed")
)
