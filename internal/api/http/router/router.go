package router

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/niura/niura-server/internal/api/http/handler"
	"github.com/niura/niura-server/internal/api/http/middleware"
	"github.com/niura/niura-server/internal/api/http/validation"
	"github.com/niura/niura-server/internal/logger"
)

// Router assembles the HTTP engine from services and middleware.
type Router struct {
	authService    handler.AuthService
	metricService  handler.MetricService
	accessGuard    middleware.AccessGuard
	allowedOrigins []string
	logger         *logger.Logger
}

// New creates a new Router instance.
func New(
	authService handler.AuthService,
	metricService handler.MetricService,
	accessGuard middleware.AccessGuard,
	allowedOrigins []string,
	logger *logger.Logger,
) *Router {
	return &Router{
		authService:    authService,
		metricService:  metricService,
		accessGuard:    accessGuard,
		allowedOrigins: allowedOrigins,
		logger:         logger,
	}
}

// Register builds the gin engine with all routes and middleware. Auth
// endpoints are public, metric endpoints require a bearer token.
func (r *Router) Register() *gin.Engine {
	validation.Init()

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestID())
	engine.Use(middleware.NewLogging(r.logger).Handle)
	engine.Use(cors.New(r.corsConfig()))

	engine.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Welcome to Niura API"})
	})

	authHandler := handler.NewAuth(r.authService, r.logger)
	auth := engine.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/token", authHandler.Token)
		auth.POST("/google", authHandler.Google)
	}

	authenticate := middleware.NewAuthenticate(r.accessGuard, r.logger)
	metricHandler := handler.NewMetric(r.metricService, r.logger)
	metrics := engine.Group("/metrics", authenticate.Handle)
	{
		metrics.POST("", metricHandler.Record)
		metrics.GET("", metricHandler.List)
		metrics.GET("/today", metricHandler.Today)
		metrics.GET("/range", metricHandler.Range)
		metrics.GET("/average", metricHandler.Average)
	}

	return engine
}

func (r *Router) corsConfig() cors.Config {
	cfg := cors.DefaultConfig()
	cfg.AllowHeaders = append(cfg.AllowHeaders, "Authorization")
	if len(r.allowedOrigins) == 1 && r.allowedOrigins[0] == "*" {
		cfg.AllowAllOrigins = true
		return cfg
	}
	cfg.AllowOrigins = r.allowedOrigins
	return cfg
}
