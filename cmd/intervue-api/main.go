package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dimitrije/intervue-api/internal/config"
	"github.com/dimitrije/intervue-api/internal/database"
	"github.com/dimitrije/intervue-api/internal/handlers"
	"github.com/dimitrije/intervue-api/internal/logger"
	"github.com/dimitrije/intervue-api/internal/metrics"
	"github.com/dimitrije/intervue-api/internal/services"
	"github.com/dimitrije/intervue-api/internal/sse"
	"github.com/dimitrije/intervue-api/internal/webhook"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
)

const sessionTokenExpiry = time.Hour

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	zlog, err := logger.New(cfg.LogLevel, cfg.IsProduction())
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer func() { _ = zlog.Sync() }()

	ctx := context.Background()

	db, err := database.New(ctx, cfg.DatabaseURL)
	if err != nil {
		zlog.Fatal("failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	if err := db.Migrate(ctx); err != nil {
		zlog.Fatal("failed to run migrations", zap.Error(err))
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	recorder := metrics.NewCollector(registry)

	jwtService := services.NewJWTService(cfg.Session.Secret, cfg.Session.Issuer, sessionTokenExpiry)
	userService := services.NewUserService(db)
	commentService := services.NewCommentService(db)

	verifier := webhook.NewVerifier(cfg.WebhookSecret)
	if !verifier.Configured() {
		zlog.Warn("CLERK_WEBHOOK_SECRET is missing or invalid; webhook deliveries will be rejected with 500")
	}
	dispatcher := webhook.NewDispatcher(userService, zlog.Named("webhook"))

	hub := sse.NewHub(zlog.Named("sse"))
	go hub.Run()

	webhookHandler := handlers.NewWebhookHandler(verifier, dispatcher, recorder, zlog.Named("webhook"))
	commentHandler := handlers.NewCommentHandler(commentService, hub, recorder, zlog.Named("comments"))
	userHandler := handlers.NewUserHandler(userService, zlog.Named("users"))
	sseHandler := handlers.NewSSEHandler(hub, zlog.Named("sse"))

	router := handlers.NewRouter(handlers.RouteConfig{
		Webhook:    webhookHandler,
		Comments:   commentHandler,
		Users:      userHandler,
		SSE:        sseHandler,
		Tokens:     jwtService,
		Production: cfg.IsProduction(),
	})

	// No write timeout: comment streams stay open.
	server := &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	var metricsServer *http.Server
	if cfg.MetricsPort != "" {
		metricsServer = &http.Server{
			Addr:              fmt.Sprintf(":%s", cfg.MetricsPort),
			Handler:           metrics.Handler(registry),
			ReadHeaderTimeout: 5 * time.Second,
		}
		go func() {
			zlog.Info("metrics server starting", zap.String("addr", metricsServer.Addr))
			if err := metricsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				zlog.Error("metrics server failed", zap.Error(err))
			}
		}()
	}

	go func() {
		zlog.Info("server starting", zap.String("addr", server.Addr), zap.String("env", cfg.Env))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zlog.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zlog.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		zlog.Warn("server shutdown incomplete", zap.Error(err))
	}
	if metricsServer != nil {
		_ = metricsServer.Shutdown(shutdownCtx)
	}
}
