// ABOUTME: Main entry point for the Searchpage API server
// ABOUTME: Wires together all components and starts the HTTP server

package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"searchpage-api/api"
	"searchpage-api/api/handlers"
	"searchpage-api/core/answer"
	"searchpage-api/core/dispatch"
	"searchpage-api/core/geo"
	"searchpage-api/core/history"
	"searchpage-api/core/interfaces"
	"searchpage-api/infrastructure/cache/memory"
	"searchpage-api/infrastructure/cache/redis"
	stdhttp "searchpage-api/infrastructure/http/standard"
	stdlogger "searchpage-api/infrastructure/logger/standard"
	zaplogger "searchpage-api/infrastructure/logger/zap"
	"searchpage-api/infrastructure/provider/geocode"
	"searchpage-api/infrastructure/provider/openai"
	"searchpage-api/infrastructure/provider/serp"
	storesqlite "searchpage-api/infrastructure/storage/sqlite"
	"searchpage-api/pkg/config"
)

func main() {
	// Load configuration
	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// Create logger. When neither file nor console output is configured,
	// fall back to the plain stdout logger so startup is never silent.
	var logger interfaces.Logger
	if cfg.Logging.FilePath == "" && !cfg.Logging.Console {
		logger = stdlogger.NewStandardLogger()
	} else {
		zl := zaplogger.NewZapLogger(zaplogger.Config{
			Level:    cfg.Logging.Level,
			FilePath: cfg.Logging.FilePath,
			Console:  cfg.Logging.Console,
		})
		defer zl.Close()
		logger = zl
	}

	logger.Info("Starting Searchpage API", map[string]interface{}{
		"port":       cfg.Server.Port,
		"cache_type": cfg.Cache.Type,
	})

	// Create cache
	var cache interfaces.Cache
	switch cfg.Cache.Type {
	case "redis":
		redisCache, err := redis.NewRedisCache(cfg.Cache.Redis)
		if err != nil {
			logger.Error("Failed to create Redis cache, falling back to memory", map[string]interface{}{
				"error": err.Error(),
			})
			cache = memory.NewMemoryCache()
		} else {
			cache = redisCache
			logger.Info("Using Redis cache", map[string]interface{}{
				"address": cfg.Cache.Redis.Address,
			})
		}
	default:
		cache = memory.NewMemoryCache()
		logger.Info("Using memory cache", nil)
	}

	// Create HTTP client
	httpClient := stdhttp.NewStandardHTTPClient(30 * time.Second)

	// Create dependencies container
	deps := interfaces.Dependencies{
		Cache:      cache,
		HTTPClient: httpClient,
		Logger:     logger,
	}

	// Create providers
	searchProvider, err := serp.NewClient(deps, serp.Config{
		APIKey:  cfg.Search.APIKey,
		BaseURL: cfg.Search.BaseURL,
	})
	if err != nil {
		log.Fatalf("Failed to create search provider: %v", err)
	}

	answerProvider, err := openai.NewClient(logger, openai.Config{
		APIKey:  cfg.Answer.APIKey,
		BaseURL: cfg.Answer.BaseURL,
		Model:   cfg.Answer.Model,
	})
	if err != nil {
		log.Fatalf("Failed to create answer provider: %v", err)
	}

	// Geocoding is optional; local entries render without markers when absent
	var geocoder interfaces.Geocoder
	if cfg.Geocode.APIKey != "" {
		geocoder, err = geocode.NewClient(deps, geocode.Config{
			APIKey:  cfg.Geocode.APIKey,
			BaseURL: cfg.Geocode.BaseURL,
		})
		if err != nil {
			logger.Warn("Failed to create geocoding provider, map markers disabled", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}

	// Recency store failures degrade to no recent-search records
	var recencyStore interfaces.RecencyStore
	store, err := storesqlite.NewRecencyStore(cfg.Recency.DBPath)
	if err != nil {
		logger.Warn("Failed to open recency store, recent searches disabled", map[string]interface{}{
			"error": err.Error(),
		})
	} else {
		recencyStore = store
		defer store.Close()
	}

	// Create services
	dispatchService := dispatch.NewService(deps, searchProvider, recencyStore)
	answerPoller := answer.NewPoller(answerProvider, dispatchService, logger, answer.DefaultOptions())
	geoService := geo.NewService(deps, geocoder)
	session := history.NewSession()

	// Create API with middleware
	apiConfig := api.APIConfig{
		Logger:     logger,
		RateLimit:  cfg.Server.RateLimit,
		RateWindow: time.Duration(cfg.Server.RateWindowSeconds) * time.Second,
	}
	humaAPI, router := api.NewAPIWithMiddleware(apiConfig)

	// Create and register handlers
	searchHandler := handlers.NewSearchHandler(dispatchService, session)
	searchHandler.RegisterRoutes(humaAPI)

	answerHandler := handlers.NewAnswerHandler(answerPoller, session)
	answerHandler.RegisterRoutes(humaAPI)

	recentHandler := handlers.NewRecentHandler(recencyStore, logger)
	recentHandler.RegisterRoutes(humaAPI)

	geocodeHandler := handlers.NewGeocodeHandler(geoService)
	geocodeHandler.RegisterRoutes(humaAPI)

	sessionHandler := handlers.NewSessionHandler(session)
	sessionHandler.RegisterRoutes(humaAPI)

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("HTTP server starting", map[string]interface{}{
			"address": srv.Addr,
		})
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server error", map[string]interface{}{
				"error": err.Error(),
			})
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...", nil)

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", map[string]interface{}{
			"error": err.Error(),
		})
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	logger.Info("Server stopped", nil)
}
