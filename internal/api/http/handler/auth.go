package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/niura/niura-server/internal/api/http/validation"
	"github.com/niura/niura-server/internal/logger"
	"github.com/niura/niura-server/internal/model"
)

// AuthService defines registration, login and social login operations.
type AuthService interface {
	Register(ctx context.Context, email, name, password string) (model.User, error)
	Login(ctx context.Context, email, password string) (model.Token, error)
	SocialLogin(ctx context.Context, providerToken string) (model.Token, error)
}

// Auth handles HTTP endpoints for authentication.
type Auth struct {
	authService AuthService
	logger      *logger.Logger
}

// NewAuth creates a new Auth handler.
func NewAuth(authService AuthService, logger *logger.Logger) *Auth {
	return &Auth{
		authService: authService,
		logger:      logger,
	}
}

type registerRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Name     string `json:"name" binding:"max=255"`
	Password string `json:"password" binding:"required,min=8"`
}

type userResponse struct {
	ID            int64     `json:"id"`
	Email         string    `json:"email"`
	Name          string    `json:"name"`
	IsActive      bool      `json:"is_active"`
	IsSocialLogin bool      `json:"is_social_login"`
	CreatedAt     time.Time `json:"created_at"`
}

type tokenRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type socialLoginRequest struct {
	Token string `json:"token" binding:"required"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// Register creates a new user account from email and password credentials.
func (h *Auth) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handleBindError(c, validation.ToDetails(err))
		return
	}

	h.logger.Debug("Auth handler: processing register request",
		"email", req.Email)

	user, err := h.authService.Register(c.Request.Context(), req.Email, req.Name, req.Password)
	if err != nil {
		h.logger.Error("Auth handler: register failed",
			"email", req.Email,
			"error", err.Error())
		handleError(c, err)
		return
	}

	h.logger.Info("Auth handler: register completed",
		"email", user.Email,
		"user_id", user.ID)

	c.JSON(http.StatusCreated, userResponse{
		ID:            user.ID,
		Email:         user.Email,
		Name:          user.Name,
		IsActive:      user.IsActive,
		IsSocialLogin: user.IsSocialLogin,
		CreatedAt:     user.CreatedAt,
	})
}

// Token exchanges email and password credentials for an access token.
func (h *Auth) Token(c *gin.Context) {
	var req tokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handleBindError(c, validation.ToDetails(err))
		return
	}

	h.logger.Debug("Auth handler: processing token request",
		"email", req.Email)

	token, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.logger.Error("Auth handler: login failed",
			"email", req.Email,
			"error", err.Error())
		handleError(c, err)
		return
	}

	h.logger.Info("Auth handler: login completed",
		"email", req.Email)

	c.JSON(http.StatusOK, tokenResponse{
		AccessToken: token.AccessToken,
		TokenType:   token.TokenType,
	})
}

// Google verifies a Google ID token and returns an access token,
// provisioning the account on first sight.
func (h *Auth) Google(c *gin.Context) {
	var req socialLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handleBindError(c, validation.ToDetails(err))
		return
	}

	h.logger.Debug("Auth handler: processing social login request")

	token, err := h.authService.SocialLogin(c.Request.Context(), req.Token)
	if err != nil {
		h.logger.Error("Auth handler: social login failed",
			"error", err.Error())
		handleError(c, err)
		return
	}

	h.logger.Info("Auth handler: social login completed")

	c.JSON(http.StatusOK, tokenResponse{
		AccessToken: token.AccessToken,
		TokenType:   token.TokenType,
	})
}
