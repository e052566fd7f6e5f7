package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/civictrack/internal/api/handlers"
	"github.com/linskybing/civictrack/internal/api/middleware"
	"github.com/linskybing/civictrack/internal/api/routes"
	"github.com/linskybing/civictrack/internal/application"
	"github.com/linskybing/civictrack/internal/events"
	"github.com/linskybing/civictrack/internal/metrics"
	"github.com/linskybing/civictrack/internal/repository"
	"github.com/linskybing/civictrack/pkg/storage"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

func serveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serveRun(cmd)
		},
	}
}

func serveRun(cmd *cobra.Command) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	conn, err := openDB()
	if err != nil {
		return err
	}

	middleware.Init(cfg.JwtSecret, cfg.Issuer)

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.New(reg)

	hub := events.NewHub(0)
	defer hub.Close()

	repos := repository.NewRepositories(conn)
	svc := application.New(repos, application.Options{
		Events:   hub,
		Metrics:  m,
		TokenTTL: cfg.TokenTTL(),
	})

	created, err := svc.Department.SeedDefaults(ctx)
	if err != nil {
		return fmt.Errorf("failed to seed departments: %w", err)
	}
	slog.Info("departments seeded", "created", created)

	opts := routes.Options{
		Logger:       slog.Default(),
		CORSOrigins:  cfg.CorsAllowedOrigins,
		Auth:         middleware.NewAuth(repos),
		ReportLimit:  cfg.ReportRateLimit,
		ReportWindow: cfg.ReportRateWindow,
		Metrics:      m,
		Gatherer:     reg,
	}
	if cfg.RedisEnabled() {
		client, err := middleware.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPassword)
		if err != nil {
			slog.Warn("report rate limiting disabled", "error", err)
		} else {
			defer client.Close()
			opts.RateCounter = middleware.NewRedisCounter(client)
		}
	}

	var store storage.ObjectStore
	if cfg.MinioEnabled() {
		ms, err := storage.NewMinioStore(ctx, storage.MinioConfig{
			Endpoint:  cfg.MinioEndpoint,
			AccessKey: cfg.MinioAccessKey,
			SecretKey: cfg.MinioSecretKey,
			Bucket:    cfg.MinioBucket,
			UseSSL:    cfg.MinioUseSSL,
			PublicURL: cfg.MinioPublicURL,
		})
		if err != nil {
			slog.Warn("image uploads disabled", "error", err)
		} else {
			store = ms
		}
	}

	if !globalFlags.debug {
		gin.SetMode(gin.ReleaseMode)
	}
	router := routes.NewRouter(handlers.New(svc, store, hub), opts)

	srv := &http.Server{
		Addr:              ":" + cfg.ServerPort,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("starting API server", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	slog.Info("shutting down")
	hub.Close()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
