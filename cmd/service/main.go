package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/sync/errgroup"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/s21platform/broadcast-service/internal/access"
	"github.com/s21platform/broadcast-service/internal/config"
	"github.com/s21platform/broadcast-service/internal/dispatch"
	"github.com/s21platform/broadcast-service/internal/infra"
	"github.com/s21platform/broadcast-service/internal/pkg/jwt"
	"github.com/s21platform/broadcast-service/internal/pkg/provider"
	"github.com/s21platform/broadcast-service/internal/pkg/validator"
	db "github.com/s21platform/broadcast-service/internal/repository/postgres"
	"github.com/s21platform/broadcast-service/internal/rest"
	"github.com/s21platform/broadcast-service/internal/signer"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.MustLoad()
	logger := logger_lib.New(cfg.Logger.Host, cfg.Logger.Port, cfg.Service.Name, cfg.Platform.Env)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	ctx = context.WithValue(ctx, config.KeyLogger, logger)

	dbRepo := db.New(cfg)
	defer dbRepo.Close()

	tokenSigner := signer.New(provider.Credentials(cfg))
	if err := tokenSigner.Check(); err != nil {
		logger.Warn(fmt.Sprintf("channel authorization is disabled: %v", err))
	}

	verifier := access.NewVerifier()
	for _, pattern := range cfg.Broadcast.MemberChannels {
		if err := verifier.Register(pattern, access.NewMembershipAuthorizer(dbRepo, pattern)); err != nil {
			logger.Error(fmt.Sprintf("failed to register channel pattern %s: %v", pattern, err))
			return
		}
	}

	broadcaster, err := provider.New(ctx, cfg)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to create broadcast provider: %v", err))
		return
	}
	defer broadcaster.Close()

	dispatcher := dispatch.New(broadcaster)
	vldtr := validator.New()
	jwtGenerator := jwt.New(cfg.JWT.Secret, cfg.JWT.TTL)

	handler := rest.New(dbRepo, verifier, tokenSigner, dispatcher, vldtr, jwtGenerator)
	router := chi.NewRouter()

	router.Use(middleware.Recoverer)
	router.Use(func(next http.Handler) http.Handler {
		return infra.LoggerHTTP(next, logger)
	})

	router.Get("/healthz", handler.Health)

	router.With(infra.AuthInterceptorHTTP(jwtGenerator)).Post("/broadcasting/auth", handler.Auth)

	router.Group(func(r chi.Router) {
		r.Use(infra.APIKeyHTTP(cfg.Service.APIKey))
		r.With(middleware.Timeout(cfg.Broadcast.DispatchTimeout)).Post("/broadcasting/events", handler.Broadcast)
		r.Put("/broadcasting/channels/{channel}/members", handler.AddChannelMembers)
		r.Post("/broadcasting/tokens", handler.IssueToken)
	})

	httpServer := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Service.Port),
		Handler: router,
	}

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info(fmt.Sprintf("listening on %s, driver %s", httpServer.Addr, cfg.Broadcast.Driver))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("HTTP server error: %v", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gCtx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		return httpServer.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error(fmt.Sprintf("server error: %v", err))
	}
}
