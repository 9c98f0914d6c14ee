package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/niura/niura-server/internal/api/http/router"
	httpServer "github.com/niura/niura-server/internal/api/http/server"
	"github.com/niura/niura-server/internal/config"
	"github.com/niura/niura-server/internal/identity"
	"github.com/niura/niura-server/internal/logger"
	"github.com/niura/niura-server/internal/model"
	"github.com/niura/niura-server/internal/password"
	"github.com/niura/niura-server/internal/repository/postgres"
	"github.com/niura/niura-server/internal/server"
	"github.com/niura/niura-server/internal/service"
	"github.com/niura/niura-server/internal/token"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.New(cfg.LogLevel)

	db, err := postgres.NewConnection(ctx, cfg.Database.DSN)
	if err != nil {
		logger.Fatal("failed to initialize storage", "error", err)
	}
	defer db.Close()

	userRepo := postgres.NewUserRepository(db)
	metricRepo := postgres.NewMetricRepository(db)

	tokenManager := token.NewJWT(cfg.JWT.Secret)
	hasher := password.NewBcrypt(bcrypt.DefaultCost)
	verifier := identity.NewGoogleVerifier(cfg.Google.ClientID, cfg.Google.VerifyTimeout)

	authService := service.NewAuth(userRepo, hasher, tokenManager, verifier, cfg.JWT.AccessTTL, logger)
	accessService := service.NewAccess(userRepo, tokenManager, logger)
	metricService := service.NewMetric(metricRepo, logger)

	r := router.New(authService, metricService, accessService, cfg.CORS.AllowedOrigins, logger)
	srv := httpServer.NewHTTPServer(r.Register(), fmt.Sprintf(":%s", cfg.HTTP.Port))

	var sl model.SecurityLayer

	if cfg.HTTP.EnableHTTPS {
		sl = server.NewTLSListener(cfg.HTTP.CertFileName, cfg.HTTP.PrivateKeyFileName)
	} else {
		sl = server.NewPlainListener()
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func(s model.Server) {
		defer wg.Done()
		logger.Info("Starting server on", "address", s.Address())
		err := s.Start(sl)
		if err != nil {
			logger.Error("failed to start server", "error", err)
		}
	}(srv)

	logAppVersion()

	<-ctx.Done()
	logger.Info("received interruption signal, shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Stop(shutdownCtx); err != nil {
		logger.Error("error during server shutdown", "error", err, "address", srv.Address())
	}

	wg.Wait()
	logger.Info("shutdown complete")
}

func logAppVersion() {
	tmpl := `
Build version: %s
Build date: %s
Build commit: %s
`

	fmt.Printf(tmpl, buildVersion, buildDate, buildCommit)
}
