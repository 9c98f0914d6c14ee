package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/niura/niura-server/internal/logger"
	"github.com/niura/niura-server/internal/model"
)

// userKey is the gin context key holding the authenticated user.
const userKey = "auth_user"

// AccessGuard resolves the authenticated user from a bearer token.
type AccessGuard interface {
	Authenticate(ctx context.Context, rawToken string) (model.User, error)
}

// Authenticate validates bearer tokens and injects the resolved user
// into the request context.
type Authenticate struct {
	guard  AccessGuard
	logger *logger.Logger
}

// NewAuthenticate creates a new Authenticate middleware instance.
func NewAuthenticate(guard AccessGuard, logger *logger.Logger) *Authenticate {
	return &Authenticate{guard: guard, logger: logger}
}

// Handle parses the Authorization header, validates the token and stores
// the user in the gin context. Requests without a valid token are
// rejected with 401 and a bearer challenge.
func (m *Authenticate) Handle(c *gin.Context) {
	tokenString := extractBearerToken(c.GetHeader("Authorization"))

	user, err := m.guard.Authenticate(c.Request.Context(), tokenString)
	if err != nil {
		m.logger.Debug("Authenticate middleware: rejected request",
			"path", c.Request.URL.Path,
			"error", err.Error())
		c.Header("WWW-Authenticate", "Bearer")
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": model.ErrUnauthenticated.Error()})
		return
	}

	SetUser(c, user)
	c.Next()
}

// SetUser stores the authenticated user in the gin context.
func SetUser(c *gin.Context, user model.User) {
	c.Set(userKey, user)
}

// UserFromContext retrieves the authenticated user stored by SetUser.
func UserFromContext(c *gin.Context) (model.User, bool) {
	v, ok := c.Get(userKey)
	if !ok {
		return model.User{}, false
	}
	user, ok := v.(model.User)
	return user, ok
}

func extractBearerToken(header string) string {
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
