package model

import (
	"context"
	"time"
)

// UserStore defines persistence operations for users.
type UserStore interface {
	GetByEmail(ctx context.Context, email string) (User, error)
	GetByID(ctx context.Context, id int64) (User, error)
	Create(ctx context.Context, user User) (User, error)
}

// User represents a stored user identity. PasswordHash is opaque and is
// never serialized into API responses.
type User struct {
	ID            int64
	Email         string
	Name          string
	PasswordHash  string
	IsActive      bool
	IsSocialLogin bool
	CreatedAt     time.Time
}
