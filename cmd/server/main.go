package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"orderdesk/internal/auth"
	"orderdesk/internal/commons"
	"orderdesk/internal/config"
	"orderdesk/internal/domain"
	"orderdesk/internal/infrastructure/logger"
	"orderdesk/internal/infrastructure/metrics"
	"orderdesk/internal/order"
	orderrepo "orderdesk/internal/order/repository"
	"orderdesk/internal/server"
	"orderdesk/internal/session"
)

func main() {
	cfg, err := loadConfig()
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	zapLogger, err := logger.New(cfg.Log.Level)
	if err != nil {
		log.Fatalf("creating logger: %v", err)
	}
	defer zapLogger.Sync()

	repo := orderrepo.NewMemoryOrderRepository()
	if cfg.Seed.DemoOrders {
		repo.Seed(order.DemoOrders())
		zapLogger.Info("seeded demo orders")
	}

	sessions := session.NewMemoryStore(cfg.Session.TTL)

	authSvc, err := buildAuthService(cfg)
	if err != nil {
		zapLogger.Fatal("building auth service", zap.Error(err))
	}

	authCtrl := auth.NewController(authSvc, sessions, cfg.Session.CookieName, cfg.Session.TTL, zapLogger)
	ordersCtrl := order.NewModule(repo, zapLogger)
	gate := session.RequireAuth(sessions, cfg.Session.CookieName, zapLogger)
	serverMetrics := metrics.NewServerMetrics("server")

	router := server.NewRouter(authCtrl, ordersCtrl, gate, serverMetrics, zapLogger)
	srv := server.New(cfg.Server.Port, router, zapLogger)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := srv.Start(); err != nil {
			zapLogger.Fatal("server error", zap.Error(err))
		}
	}()

	<-quit
	zapLogger.Info("received shutdown signal")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		zapLogger.Fatal("server shutdown failed", zap.Error(err))
	}

	zapLogger.Info("server stopped gracefully")
}

// loadConfig prefers a config file when CONFIG_FILE is set and falls back to
// environment variables.
func loadConfig() (*config.Config, error) {
	if path := os.Getenv("CONFIG_FILE"); path != "" {
		return commons.LoadConfig(path)
	}
	return config.Load()
}

// buildAuthService assembles the verifier chain: the registered-user list is
// always checked; the demo shortcut is appended only when enabled.
func buildAuthService(cfg *config.Config) (*auth.Service, error) {
	hash, err := auth.HashPassword(cfg.Auth.AdminPassword)
	if err != nil {
		return nil, err
	}

	users := []domain.User{
		{ID: 1, Username: cfg.Auth.AdminUser, PasswordHash: hash, Name: "Administrator"},
	}

	verifiers := []auth.Verifier{auth.NewUserListVerifier(users)}
	if cfg.Auth.DemoLogin {
		verifiers = append(verifiers, auth.NewDemoVerifier(cfg.Auth.AdminUser, cfg.Auth.AdminPassword))
	}

	return auth.NewService(verifiers...), nil
}
