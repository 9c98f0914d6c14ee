package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/niura/niura-server/internal/mocks"
	"github.com/niura/niura-server/internal/model"
	"github.com/niura/niura-server/internal/testutil"
)

func TestAuth_Register_NewUser(t *testing.T) {
	ctx := context.Background()
	userStore := mocks.NewUserStore(t)
	hasher := mocks.NewPasswordHasher(t)
	tokens := mocks.NewTokenManager(t)
	verifier := mocks.NewIdentityVerifier(t)

	userStore.On("GetByEmail", mock.Anything, "a@b.c").Return(model.User{}, model.ErrNotFound)
	hasher.On("Hash", "pass123").Return("$2a$hash", nil)
	userStore.On("Create", mock.Anything, mock.MatchedBy(func(u model.User) bool {
		return u.Email == "a@b.c" && u.Name == "Alice" && u.PasswordHash == "$2a$hash" &&
			u.IsActive && !u.IsSocialLogin
	})).Return(model.User{ID: 1, Email: "a@b.c", Name: "Alice", PasswordHash: "$2a$hash", IsActive: true}, nil)

	a := NewAuth(userStore, hasher, tokens, verifier, 30*time.Minute, testutil.MakeNoopLogger())

	user, err := a.Register(ctx, "A@B.C", "Alice", "pass123")
	require.NoError(t, err)
	assert.Equal(t, int64(1), user.ID)
	assert.Equal(t, "a@b.c", user.Email)
	assert.Empty(t, user.PasswordHash)
}

func TestAuth_Register_EmailTaken(t *testing.T) {
	ctx := context.Background()
	userStore := mocks.NewUserStore(t)
	hasher := mocks.NewPasswordHasher(t)
	tokens := mocks.NewTokenManager(t)
	verifier := mocks.NewIdentityVerifier(t)

	userStore.On("GetByEmail", mock.Anything, "existing@user.com").Return(model.User{ID: 7, Email: "existing@user.com"}, nil)

	a := NewAuth(userStore, hasher, tokens, verifier, 30*time.Minute, testutil.MakeNoopLogger())

	_, err := a.Register(ctx, "existing@user.com", "Bob", "pass123")
	require.ErrorIs(t, err, model.ErrEmailTaken)
}

func TestAuth_Register_StoreError(t *testing.T) {
	ctx := context.Background()
	userStore := mocks.NewUserStore(t)
	hasher := mocks.NewPasswordHasher(t)
	tokens := mocks.NewTokenManager(t)
	verifier := mocks.NewIdentityVerifier(t)

	userStore.On("GetByEmail", mock.Anything, "a@b.c").Return(model.User{}, errors.New("db down"))

	a := NewAuth(userStore, hasher, tokens, verifier, 30*time.Minute, testutil.MakeNoopLogger())

	_, err := a.Register(ctx, "a@b.c", "Alice", "pass123")
	require.Error(t, err)
	assert.NotErrorIs(t, err, model.ErrEmailTaken)
}

func TestAuth_Login(t *testing.T) {
	user := model.User{ID: 1, Email: "a@b.c", PasswordHash: "$2a$hash", IsActive: true}

	tests := []struct {
		name     string
		email    string
		password string
		setup    func(*mocks.UserStore, *mocks.PasswordHasher, *mocks.TokenManager)
		wantErr  error
	}{
		{
			name:     "success",
			email:    "a@b.c",
			password: "pass123",
			setup: func(us *mocks.UserStore, h *mocks.PasswordHasher, tm *mocks.TokenManager) {
				us.On("GetByEmail", mock.Anything, "a@b.c").Return(user, nil)
				h.On("Verify", "pass123", "$2a$hash").Return(true)
				tm.On("Generate", "a@b.c", 30*time.Minute).Return("signed-token", nil)
			},
		},
		{
			name:     "unknown email",
			email:    "ghost@b.c",
			password: "pass123",
			setup: func(us *mocks.UserStore, h *mocks.PasswordHasher, tm *mocks.TokenManager) {
				us.On("GetByEmail", mock.Anything, "ghost@b.c").Return(model.User{}, model.ErrNotFound)
			},
			wantErr: model.ErrUnauthenticated,
		},
		{
			name:     "wrong password",
			email:    "a@b.c",
			password: "nope",
			setup: func(us *mocks.UserStore, h *mocks.PasswordHasher, tm *mocks.TokenManager) {
				us.On("GetByEmail", mock.Anything, "a@b.c").Return(user, nil)
				h.On("Verify", "nope", "$2a$hash").Return(false)
			},
			wantErr: model.ErrUnauthenticated,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userStore := mocks.NewUserStore(t)
			hasher := mocks.NewPasswordHasher(t)
			tokens := mocks.NewTokenManager(t)
			verifier := mocks.NewIdentityVerifier(t)
			tt.setup(userStore, hasher, tokens)

			a := NewAuth(userStore, hasher, tokens, verifier, 30*time.Minute, testutil.MakeNoopLogger())

			token, err := a.Login(context.Background(), tt.email, tt.password)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "signed-token", token.AccessToken)
			assert.Equal(t, model.TokenTypeBearer, token.TokenType)
		})
	}
}

func TestAuth_Login_ErrorsIndistinguishable(t *testing.T) {
	ctx := context.Background()
	user := model.User{ID: 1, Email: "a@b.c", PasswordHash: "$2a$hash"}

	userStore := mocks.NewUserStore(t)
	hasher := mocks.NewPasswordHasher(t)
	tokens := mocks.NewTokenManager(t)
	verifier := mocks.NewIdentityVerifier(t)

	userStore.On("GetByEmail", mock.Anything, "ghost@b.c").Return(model.User{}, model.ErrNotFound)
	userStore.On("GetByEmail", mock.Anything, "a@b.c").Return(user, nil)
	hasher.On("Verify", "wrong", "$2a$hash").Return(false)

	a := NewAuth(userStore, hasher, tokens, verifier, 30*time.Minute, testutil.MakeNoopLogger())

	_, errUnknown := a.Login(ctx, "ghost@b.c", "wrong")
	_, errWrongPw := a.Login(ctx, "a@b.c", "wrong")

	require.Equal(t, errUnknown, errWrongPw)
}

func TestAuth_SocialLogin_ExistingUser(t *testing.T) {
	ctx := context.Background()
	userStore := mocks.NewUserStore(t)
	hasher := mocks.NewPasswordHasher(t)
	tokens := mocks.NewTokenManager(t)
	verifier := mocks.NewIdentityVerifier(t)

	verifier.On("Verify", mock.Anything, "provider-token").Return(model.Identity{Email: "Social@User.com", Name: "Social User"}, nil)
	userStore.On("GetByEmail", mock.Anything, "social@user.com").Return(model.User{ID: 3, Email: "social@user.com", IsSocialLogin: true}, nil)
	tokens.On("Generate", "social@user.com", 30*time.Minute).Return("signed-token", nil)

	a := NewAuth(userStore, hasher, tokens, verifier, 30*time.Minute, testutil.MakeNoopLogger())

	token, err := a.SocialLogin(ctx, "provider-token")
	require.NoError(t, err)
	assert.Equal(t, "signed-token", token.AccessToken)
	assert.Equal(t, model.TokenTypeBearer, token.TokenType)
}

func TestAuth_SocialLogin_ProvisionsUser(t *testing.T) {
	ctx := context.Background()
	userStore := mocks.NewUserStore(t)
	hasher := mocks.NewPasswordHasher(t)
	tokens := mocks.NewTokenManager(t)
	verifier := mocks.NewIdentityVerifier(t)

	verifier.On("Verify", mock.Anything, "provider-token").Return(model.Identity{Email: "new@user.com", Name: "New User"}, nil)
	userStore.On("GetByEmail", mock.Anything, "new@user.com").Return(model.User{}, model.ErrNotFound)
	hasher.On("Hash", mock.AnythingOfType("string")).Return("$2a$random", nil)
	userStore.On("Create", mock.Anything, mock.MatchedBy(func(u model.User) bool {
		return u.Email == "new@user.com" && u.Name == "New User" && u.IsSocialLogin &&
			u.IsActive && u.PasswordHash == "$2a$random"
	})).Return(model.User{ID: 9, Email: "new@user.com", IsSocialLogin: true}, nil)
	tokens.On("Generate", "new@user.com", 30*time.Minute).Return("signed-token", nil)

	a := NewAuth(userStore, hasher, tokens, verifier, 30*time.Minute, testutil.MakeNoopLogger())

	token, err := a.SocialLogin(ctx, "provider-token")
	require.NoError(t, err)
	assert.Equal(t, "signed-token", token.AccessToken)
}

func TestAuth_SocialLogin_VerificationFails(t *testing.T) {
	ctx := context.Background()
	userStore := mocks.NewUserStore(t)
	hasher := mocks.NewPasswordHasher(t)
	tokens := mocks.NewTokenManager(t)
	verifier := mocks.NewIdentityVerifier(t)

	verifier.On("Verify", mock.Anything, "bad-token").Return(model.Identity{}, errors.New("provider rejected token"))

	a := NewAuth(userStore, hasher, tokens, verifier, 30*time.Minute, testutil.MakeNoopLogger())

	_, err := a.SocialLogin(ctx, "bad-token")
	require.ErrorIs(t, err, model.ErrUnauthenticated)
}
