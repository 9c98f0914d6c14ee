package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/niura/niura-server/internal/logger"
	"github.com/niura/niura-server/internal/model"
)

// Access resolves bearer tokens into full user identities. It is a pure
// function of the token, the user store and the clock: no caching, no
// side effects.
type Access struct {
	userStore model.UserStore
	tokens    model.TokenManager
	logger    *logger.Logger
}

func NewAccess(userStore model.UserStore, tokens model.TokenManager, logger *logger.Logger) *Access {
	return &Access{
		userStore: userStore,
		tokens:    tokens,
		logger:    logger,
	}
}

// Authenticate validates the raw token and looks up its subject. Any
// token failure, and a subject that no longer resolves to a user,
// yields model.ErrUnauthenticated.
func (a *Access) Authenticate(ctx context.Context, rawToken string) (model.User, error) {
	if rawToken == "" {
		return model.User{}, model.ErrUnauthenticated
	}

	subject, err := a.tokens.Validate(rawToken)
	if err != nil {
		a.logger.Debug("Access guard: token validation failed",
			"error", err.Error())
		return model.User{}, model.ErrUnauthenticated
	}

	user, err := a.userStore.GetByEmail(ctx, subject)
	if errors.Is(err, model.ErrNotFound) {
		// The user record vanished after the token was issued.
		return model.User{}, model.ErrUnauthenticated
	}
	if err != nil {
		return model.User{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	return user, nil
}
