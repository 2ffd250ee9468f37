package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"mediahub/internal/caching"
	"mediahub/internal/config"
	"mediahub/internal/handlers"
	"mediahub/internal/logging"
	"mediahub/internal/middleware"
	"mediahub/internal/repositories"
	"mediahub/internal/routes"
	"mediahub/internal/services"
	"mediahub/pkg/database"

	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var autoMigrate bool

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}
		return serve(cmd.Context(), cfg)
	},
}

func init() {
	serveCmd.Flags().BoolVar(&autoMigrate, "migrate", false, "Apply pending migrations before serving")
}

func serve(ctx context.Context, cfg *config.Config) error {
	logger := logging.New(cfg.Log.Level, cfg.Log.Format)

	if cfg.Auth.EnsureJWTSecret() {
		logger.Warn().Msg("JWT_SECRET not set, using a generated secret; tokens will not survive a restart")
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Database connection
	pool, err := database.NewPool(ctx, cfg.Database.URL, cfg.Database.MaxConns)
	if err != nil {
		return err
	}
	defer pool.Close()

	if autoMigrate {
		if _, err := database.Migrate(ctx, pool, logger); err != nil {
			return err
		}
	}

	checks := map[string]handlers.CheckFunc{"database": pool.Ping}

	// Auth throttle: Redis when configured, in-process otherwise
	var limiter echoMiddleware.RateLimiterStore
	if cfg.Auth.RateLimit > 0 {
		if cfg.Redis.Addr != "" {
			redisClient := caching.NewRedisClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
			defer redisClient.Close()
			limiter = caching.NewRedisRateLimiter(redisClient, "mediahub:ratelimit:auth", cfg.Auth.RateLimit, cfg.Auth.RateLimitWindow, logger)
			checks["redis"] = func(ctx context.Context) error { return redisClient.Ping(ctx).Err() }
		} else {
			limiter = middleware.NewMemoryRateLimiterStore(cfg.Auth.RateLimit, cfg.Auth.RateLimitWindow)
		}
	}

	storage, err := newStorage(ctx, cfg.Storage, logger)
	if err != nil {
		return err
	}
	if storage != nil {
		checks["storage"] = storage.Ping
	}

	// Create repositories and services
	repos := repositories.NewRepos(pool)
	txManager := repositories.NewTxManager(pool)

	authService := services.NewAuthService(repos.Users, cfg.Auth.JWTSecret, cfg.Auth.JWTExpiresIn, cfg.Auth.SaltRounds)
	imageService := services.NewImageService(repos, txManager)
	linkService := services.NewLinkService(repos, txManager)
	uploadService := services.NewUploadService(storage, cfg.Storage.URLExpiry)

	e := routes.New(routes.Handlers{
		Health: handlers.NewHealthHandlers(checks),
		Auth:   handlers.NewAuthHandlers(authService, logger),
		Images: handlers.NewImageHandlers(imageService, uploadService),
		Links:  handlers.NewLinkHandlers(linkService),
	}, routes.Options{
		Logger:          logger,
		CORSOrigins:     cfg.Server.CORSOrigins,
		BodyLimit:       cfg.Server.BodyLimit,
		TokenValidator:  authService,
		AuthRateLimiter: limiter,
	})

	errCh := make(chan error, 1)
	go func() {
		logger.Info().Str("version", version).Str("addr", cfg.Server.Address()).Msg("mediahub server starting")
		if err := e.Start(cfg.Server.Address()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return <-errCh
}

// newStorage returns nil when MinIO is not configured
func newStorage(ctx context.Context, cfg config.StorageConfig, logger zerolog.Logger) (services.ObjectStorage, error) {
	if cfg.Endpoint == "" {
		logger.Info().Msg("MINIO_ENDPOINT not set, image uploads disabled")
		return nil, nil
	}

	storage, err := services.NewMinioStorage(cfg.Endpoint, cfg.AccessKey, cfg.SecretKey, cfg.UseSSL, cfg.Bucket)
	if err != nil {
		return nil, err
	}
	if err := storage.EnsureBucketExists(ctx); err != nil {
		return nil, err
	}
	return storage, nil
}
