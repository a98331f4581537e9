package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"mortgage-registry/command"
	"mortgage-registry/config"
	httpLayer "mortgage-registry/http"
	"mortgage-registry/repository"
	"mortgage-registry/service"
	"mortgage-registry/shell"
)

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})

	cfg, err := config.NewConfig()
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}

	logLevel, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	cache := newCache(cfg, logger)

	mortgageService := service.NewMortgageService(cache, logger)
	registry := service.NewRegistryService(repository.NewClientRepositoryMemory(), mortgageService, logger)

	if cfg.Mode == config.ModeHTTP {
		serveHTTP(cfg, logger, registry, mortgageService)
		return
	}

	dispatcher := command.NewDispatcher(registry, logger)
	if err := shell.New(os.Stdin, os.Stdout, dispatcher, logger).Run(); err != nil {
		logger.Fatalf("Shell failed: %v", err)
	}
}

// newCache returns a Redis cache when REDIS_ADDR is set and reachable, and
// the in-process cache otherwise.
func newCache(cfg *config.Config, logger *logrus.Logger) repository.CacheRepository {
	if cfg.RedisAddr == "" {
		return repository.NewMemoryCache()
	}

	redisCache := repository.NewRedisCache(repository.RedisOptions{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
		TTL:      cfg.CacheTTL,
	}, logger)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := redisCache.Ping(ctx); err != nil {
		logger.WithError(err).Warn("redis unavailable, using in-memory cache")
		_ = redisCache.Close()
		return repository.NewMemoryCache()
	}

	logger.WithField("addr", cfg.RedisAddr).Info("using redis mortgage cache")
	return redisCache
}

func serveHTTP(
	cfg *config.Config,
	logger *logrus.Logger,
	registry *service.RegistryService,
	mortgageService *service.MortgageService,
) {
	rateLimiter := httpLayer.NewRateLimiter(cfg.RateLimitCapacity, cfg.RateLimitWindow, logger)
	defer rateLimiter.Stop()

	router := httpLayer.NewRouter(
		httpLayer.NewClientHandler(registry, logger),
		httpLayer.NewMortgageHandler(mortgageService, logger),
		rateLimiter,
	)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Infof("Starting server on %s", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		logger.Errorf("Error starting server: %v", err)
		return
	case <-quit:
		logger.Info("Shutting down server...")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Errorf("Error during server shutdown: %v", err)
	}

	logger.Info("Server exited")
}
