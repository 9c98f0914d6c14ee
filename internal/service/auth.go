package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/niura/niura-server/internal/logger"
	"github.com/niura/niura-server/internal/model"
)

// Auth implements the register, login and social-login flows on top of
// the user store, password hasher, token manager and identity verifier.
type Auth struct {
	userStore model.UserStore
	hasher    model.PasswordHasher
	tokens    model.TokenManager
	verifier  model.IdentityVerifier
	accessTTL time.Duration
	logger    *logger.Logger
}

func NewAuth(
	userStore model.UserStore,
	hasher model.PasswordHasher,
	tokens model.TokenManager,
	verifier model.IdentityVerifier,
	accessTTL time.Duration,
	logger *logger.Logger,
) *Auth {
	return &Auth{
		userStore: userStore,
		hasher:    hasher,
		tokens:    tokens,
		verifier:  verifier,
		accessTTL: accessTTL,
		logger:    logger,
	}
}

// Register creates a new user with a hashed password. The email is the
// identity key; a duplicate yields model.ErrEmailTaken.
func (a *Auth) Register(ctx context.Context, email, name, password string) (model.User, error) {
	email = normalizeEmail(email)

	a.logger.Debug("Auth service: starting user registration",
		"email", email)

	existing, err := a.userStore.GetByEmail(ctx, email)
	if err != nil && !errors.Is(err, model.ErrNotFound) {
		a.logger.Error("Auth service: failed to get user by email",
			"email", email,
			"error", err.Error())
		return model.User{}, fmt.Errorf("failed to get user by email: %w", err)
	}
	if existing.ID != 0 {
		a.logger.Info("Auth service: user already exists",
			"email", email)
		return model.User{}, model.ErrEmailTaken
	}

	hash, err := a.hasher.Hash(password)
	if err != nil {
		return model.User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := a.userStore.Create(ctx, model.User{
		Email:        email,
		Name:         name,
		PasswordHash: hash,
		IsActive:     true,
	})
	if err != nil {
		a.logger.Error("Auth service: failed to create user",
			"email", email,
			"error", err.Error())
		return model.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	a.logger.Info("Auth service: user registered",
		"email", email,
		"user_id", user.ID)

	// The hash never leaves the auth layer.
	user.PasswordHash = ""
	return user, nil
}

// Login verifies the credentials and issues a bearer token bound to the
// email. Unknown email and wrong password both yield the same
// model.ErrUnauthenticated.
func (a *Auth) Login(ctx context.Context, email, password string) (model.Token, error) {
	email = normalizeEmail(email)

	a.logger.Debug("Auth service: starting user login",
		"email", email)

	user, err := a.userStore.GetByEmail(ctx, email)
	if errors.Is(err, model.ErrNotFound) {
		return model.Token{}, model.ErrUnauthenticated
	}
	if err != nil {
		return model.Token{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	if !a.hasher.Verify(password, user.PasswordHash) {
		return model.Token{}, model.ErrUnauthenticated
	}

	token, err := a.issueToken(user.Email)
	if err != nil {
		return model.Token{}, err
	}

	a.logger.Info("Auth service: user logged in",
		"email", email)

	return token, nil
}

// SocialLogin verifies the provider token with the external identity
// provider and issues a bearer token for the verified email, creating
// the user on first sign-in. Social users get a hash of a random secret
// they will never use.
func (a *Auth) SocialLogin(ctx context.Context, providerToken string) (model.Token, error) {
	a.logger.Debug("Auth service: starting social login")

	identity, err := a.verifier.Verify(ctx, providerToken)
	if err != nil {
		a.logger.Info("Auth service: provider token verification failed",
			"error", err.Error())
		return model.Token{}, model.ErrUnauthenticated
	}

	email := normalizeEmail(identity.Email)

	user, err := a.userStore.GetByEmail(ctx, email)
	if errors.Is(err, model.ErrNotFound) {
		user, err = a.provisionSocialUser(ctx, email, identity.Name)
	}
	if err != nil {
		return model.Token{}, fmt.Errorf("failed to resolve social user: %w", err)
	}

	token, err := a.issueToken(user.Email)
	if err != nil {
		return model.Token{}, err
	}

	a.logger.Info("Auth service: social login completed",
		"email", email)

	return token, nil
}

func (a *Auth) provisionSocialUser(ctx context.Context, email, name string) (model.User, error) {
	secret, err := randomSecret()
	if err != nil {
		return model.User{}, fmt.Errorf("failed to generate social secret: %w", err)
	}
	hash, err := a.hasher.Hash(secret)
	if err != nil {
		return model.User{}, fmt.Errorf("failed to hash social secret: %w", err)
	}

	user, err := a.userStore.Create(ctx, model.User{
		Email:         email,
		Name:          name,
		PasswordHash:  hash,
		IsActive:      true,
		IsSocialLogin: true,
	})
	if err != nil {
		return model.User{}, fmt.Errorf("failed to create social user: %w", err)
	}

	a.logger.Info("Auth service: social user provisioned",
		"email", email,
		"user_id", user.ID)

	return user, nil
}

func (a *Auth) issueToken(email string) (model.Token, error) {
	accessToken, err := a.tokens.Generate(email, a.accessTTL)
	if err != nil {
		return model.Token{}, fmt.Errorf("failed to issue token: %w", err)
	}
	return model.Token{AccessToken: accessToken, TokenType: model.TokenTypeBearer}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// randomSecret draws 16 random bytes, hex-encoded. It exists so social
// user rows keep the same shape as password users.
func randomSecret() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
