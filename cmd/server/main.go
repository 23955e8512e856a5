package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"blog-engagement/internal/cache"
	"blog-engagement/internal/config"
	"blog-engagement/internal/events"
	"blog-engagement/internal/handler"
	"blog-engagement/internal/infrastructure/database"
	"blog-engagement/internal/logger"
	"blog-engagement/internal/metrics"
	"blog-engagement/internal/repository"
	"blog-engagement/internal/service"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration",
			slog.String("error", err.Error()))
	}
	logger.SetLevel(cfg.LogLevel)

	ctx := context.Background()

	poolConfig := database.PoolConfig{
		Host:              cfg.DBHost,
		Port:              cfg.DBPort,
		User:              cfg.DBUser,
		Password:          cfg.DBPassword,
		Database:          cfg.DBName,
		SSLMode:           cfg.DBSSLMode,
		MaxConns:          cfg.DBMaxConns,
		MinConns:          cfg.DBMinConns,
		MaxConnLifetime:   cfg.DBMaxConnLifetime,
		MaxConnIdleTime:   cfg.DBMaxConnIdleTime,
		HealthCheckPeriod: cfg.DBHealthCheckPeriod,
	}

	if cfg.MigrationsDir != "" {
		logger.Info("Applying migrations", slog.String("dir", cfg.MigrationsDir))
		if err := database.Migrate(poolConfig.URL(), cfg.MigrationsDir); err != nil {
			logger.Fatal("Failed to apply migrations",
				slog.String("error", err.Error()))
		}
	}

	// Connect to database
	pool, err := database.NewPostgres(ctx, poolConfig)
	if err != nil {
		logger.Fatal("Failed to connect to database",
			slog.String("error", err.Error()))
	}
	defer pool.Close()
	metrics.LogHealthCheckMetrics(ctx, pool)

	// Start database pool metrics collector
	poolStatsCollector := metrics.NewPoolStatsCollector(pool)
	poolStatsCollector.Start(15 * time.Second)
	defer poolStatsCollector.Stop()

	// Counter cache; without Redis every read goes to the database
	var counterCache cache.CounterCache = cache.NopCounterCache{}
	var cachePinger handler.Pinger
	if cfg.RedisEnabled {
		redisClient, err := database.NewRedis(ctx, database.RedisConfig{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err != nil {
			logger.Fatal("Failed to connect to redis",
				slog.String("error", err.Error()))
		}
		defer redisClient.Close()

		redisCache := cache.NewRedisCounterCache(redisClient, cfg.CounterTTL)
		counterCache = redisCache
		cachePinger = redisCache
	}

	// Event publisher; without a broker URL events are dropped
	var publisher events.Publisher = events.NopPublisher{}
	if cfg.RabbitMQURL != "" {
		mq, err := database.NewRabbitMQ(cfg.RabbitMQURL, cfg.RabbitMQExchange)
		if err != nil {
			logger.Fatal("Failed to connect to rabbitmq",
				slog.String("error", err.Error()))
		}
		defer mq.Close()
		publisher = events.NewRabbitPublisher(mq.Channel, mq.Exchange, cfg.PublisherWorkers)
	}

	// Initialize repositories
	articleRepo := repository.NewPostgresArticleRepository(pool)
	commentRepo := repository.NewPostgresCommentRepository(pool)
	likeRepo := repository.NewPostgresLikeRepository(pool)

	// Initialize services
	articleService := service.NewArticleService(articleRepo, counterCache)
	engagementService := service.NewEngagementService(
		articleRepo,
		commentRepo,
		likeRepo,
		counterCache,
		publisher,
		cfg.ShareBaseURL,
	)

	// Setup Gin router
	gin.SetMode(gin.ReleaseMode)
	router := handler.NewRouter(handler.RouterConfig{
		BasePath:    cfg.APIBasePath,
		CORSOrigins: cfg.CORSOrigins,
		Articles:    handler.NewArticleHandler(articleService),
		Engagement:  handler.NewEngagementHandler(engagementService),
		Health:      handler.NewHealthHandler(pool, cachePinger),
	})

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	// Start server in goroutine
	go func() {
		logger.Info("Starting server",
			slog.String("port", cfg.ServerPort),
			slog.String("base_path", cfg.APIBasePath),
			slog.Bool("redis", cfg.RedisEnabled),
			slog.Bool("rabbitmq", cfg.RabbitMQURL != ""))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server",
				slog.String("error", err.Error()))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server")

	// Shutdown HTTP server
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown error",
			slog.String("error", err.Error()))
	}

	// Drain queued events after the last request has finished
	logger.Info("Closing event publisher")
	if err := publisher.Close(); err != nil {
		logger.Error("Event publisher close error",
			slog.String("error", err.Error()))
	}

	logger.Info("Server exited")
}
