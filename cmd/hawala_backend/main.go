package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/SscSPs/hawala_settlement/internal/adapters/events"
	"github.com/SscSPs/hawala_settlement/internal/core/ports"
	"github.com/SscSPs/hawala_settlement/internal/core/services"
	"github.com/SscSPs/hawala_settlement/internal/handlers"
	"github.com/SscSPs/hawala_settlement/internal/middleware"
	"github.com/SscSPs/hawala_settlement/internal/platform/config"
	memorycache "github.com/SscSPs/hawala_settlement/internal/repositories/cache/memory"
	rediscache "github.com/SscSPs/hawala_settlement/internal/repositories/cache/redis"
	"github.com/SscSPs/hawala_settlement/internal/repositories/database/pgsql"
	"github.com/SscSPs/hawala_settlement/internal/utils/refcode"
	"github.com/SscSPs/hawala_settlement/pkg/database"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// @title Hawala Settlement API
// @version 1.0
// @description Rate catalog, quoting, transaction ledger and public tracking for hawala agents.

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer database.ClosePgxPool(dbPool)
	logger.Info("Database connection pool established.")

	logger.Info("Running database migrations...")
	if err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath, logger); err != nil {
		logger.Error("Failed to apply migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}

	codes, err := refcode.New(refcode.WithPrefix(cfg.ReferenceCodePrefix))
	if err != nil {
		logger.Error("Invalid reference code configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	trackingCache, closeCache := newTrackingCache(ctx, cfg, logger)
	defer closeCache()

	publisher, closePublisher := newEventPublisher(cfg, logger)
	defer closePublisher()

	serviceContainer := services.NewServiceContainer(cfg, pgsql.NewRepositoryProvider(dbPool), services.Collaborators{
		Codes:         codes,
		Publisher:     publisher,
		TrackingCache: trackingCache,
	})

	trackingLimiter, err := middleware.NewMemoryLimiter(cfg.TrackingRateLimit)
	if err != nil {
		logger.Error("Invalid TRACKING_RATE_LIMIT", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery, metrics, cors)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery(), middleware.Metrics())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSAllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", middleware.RequestIDHeader},
		ExposeHeaders:    []string{middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, serviceContainer, handlers.Infrastructure{
		DB:              dbPool,
		TrackingLimiter: trackingLimiter,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("Server starting", slog.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server failed to run", slog.String("error", err.Error()))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shutdown", slog.String("error", err.Error()))
	}
}

// newTrackingCache prefers Redis when REDIS_URL is set and falls back to an
// in-process LRU when it is unset or unreachable.
func newTrackingCache(ctx context.Context, cfg *config.Config, logger *slog.Logger) (ports.TrackingCache, func()) {
	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			logger.Warn("Invalid REDIS_URL, using in-process tracking cache", slog.String("error", err.Error()))
		} else {
			client := redis.NewClient(opts)
			if err := client.Ping(ctx).Err(); err != nil {
				logger.Warn("Redis unreachable, using in-process tracking cache", slog.String("error", err.Error()))
				_ = client.Close()
			} else {
				logger.Info("Tracking cache backed by Redis", slog.Duration("ttl", cfg.TrackingCacheTTL))
				return rediscache.NewTrackingCache(client, cfg.TrackingCacheTTL), func() { _ = client.Close() }
			}
		}
	}

	logger.Info("Tracking cache in process", slog.Int("size", cfg.TrackingCacheSize), slog.Duration("ttl", cfg.TrackingCacheTTL))
	return memorycache.NewTrackingCache(cfg.TrackingCacheSize, cfg.TrackingCacheTTL), func() {}
}

// newEventPublisher always logs events and additionally sends them to RabbitMQ when AMQP_URL is set.
func newEventPublisher(cfg *config.Config, logger *slog.Logger) (ports.TransactionEventPublisher, func()) {
	publishers := []events.Named{{Name: "log", Publisher: events.NewLogPublisher(logger)}}
	closeFn := func() {}

	if cfg.AMQPURL != "" {
		rabbit, err := events.DialRabbitMQ(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPRoutingKey)
		if err != nil {
			logger.Warn("RabbitMQ unavailable, transaction events are only logged", slog.String("error", err.Error()))
		} else {
			publishers = append(publishers, events.Named{Name: "rabbitmq", Publisher: rabbit})
			closeFn = func() {
				if err := rabbit.Close(); err != nil {
					logger.Warn("Error closing RabbitMQ publisher", slog.String("error", err.Error()))
				}
			}
		}
	}

	return events.NewFanOut(publishers...), closeFn
}
