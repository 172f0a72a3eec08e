// Package main is the entry point for the rental search service.
//
//	@title			Rental Search API
//	@version		1.0.0
//	@description	Availability window calculator and search flow for vehicle rentals.
//
//	@contact.name	API Support
//
//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT
//
//	@host			localhost:8080
//	@BasePath		/
//
//	@schemes		http https
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	// Import generated docs for swagger
	_ "github.com/vehicle-marketplace/rental-search/docs"

	// Application layers
	"github.com/vehicle-marketplace/rental-search/internal/adapter/directory"
	"github.com/vehicle-marketplace/rental-search/internal/adapter/directory/file"
	"github.com/vehicle-marketplace/rental-search/internal/adapter/directory/httpclient"
	rentalhttp "github.com/vehicle-marketplace/rental-search/internal/adapter/http"
	"github.com/vehicle-marketplace/rental-search/internal/adapter/http/middleware"
	"github.com/vehicle-marketplace/rental-search/internal/availability"
	"github.com/vehicle-marketplace/rental-search/internal/config"
	"github.com/vehicle-marketplace/rental-search/internal/domain"
	"github.com/vehicle-marketplace/rental-search/internal/infrastructure/cache"
	"github.com/vehicle-marketplace/rental-search/internal/infrastructure/logger"
	"github.com/vehicle-marketplace/rental-search/internal/infrastructure/metrics"
	"github.com/vehicle-marketplace/rental-search/internal/infrastructure/retry"
	"github.com/vehicle-marketplace/rental-search/internal/infrastructure/timeutil"
	"github.com/vehicle-marketplace/rental-search/internal/usecase"
)

const (
	shutdownTimeout  = 10 * time.Second
	metricsNamespace = "rental_search"
)

func main() {
	// Load configuration
	cfg := config.MustLoad()

	log := logger.New(logger.Config{
		Level:       cfg.Logging.Level,
		Format:      cfg.Logging.Format,
		ServiceName: "rental-search",
	})

	log.Info().
		Str("env", cfg.App.Env).
		Int("port", cfg.Server.Port).
		Str("timezone", cfg.Booking.Timezone).
		Str("directory", cfg.Directory.Source).
		Msg("Configuration loaded")

	var m *metrics.Metrics
	if cfg.Metrics.Enabled {
		m = metrics.New(metricsNamespace)
	}

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Configure server timeouts from config
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	middleware.SetupWithOptions(e, log, middleware.Options{
		Recovery:     middleware.DefaultRecoveryConfig(),
		Metrics:      m,
		SkipLogPaths: []string{"/health", cfg.Metrics.Path},
	})

	cleanup := setupRoutes(e, cfg, log, m)
	defer cleanup()

	// Start server with graceful shutdown
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	go func() {
		log.Info().Str("address", addr).Msg("Starting server")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	// Wait for interrupt signal
	gracefulShutdown(e, log)
}

// setupRoutes builds the application graph and registers the HTTP routes.
// The returned func releases the directory cache connection.
func setupRoutes(e *echo.Echo, cfg *config.Config, log *logger.Logger, m *metrics.Metrics) func() {
	loc := timeutil.MustLoadLocation(cfg.Booking.Timezone)
	calc := availability.NewCalculator(timeutil.NewRealClock(), &availability.Config{
		BookingBuffer:   cfg.Booking.Buffer,
		NoBookingBuffer: cfg.Booking.Buffer == 0,
		RentalDuration:  cfg.Booking.RentalDuration,
		SlotInterval:    cfg.Booking.SlotInterval,
		YearSpan:        cfg.Booking.YearSpan,
		Location:        loc,
	})

	c, cleanup := newCache(cfg, log)
	dir := newDirectory(cfg, c, log, m)

	ucConfig := &usecase.Config{
		ListingBaseURL: cfg.Listing.BaseURL,
		Logger:         log,
	}
	if m != nil {
		ucConfig.Observer = m
	}
	rentalUseCase := usecase.NewRentalSearchUseCase(calc, dir, ucConfig)

	handler := rentalhttp.NewRentalSearchHandler(rentalUseCase)
	rentalhttp.RegisterRoutes(e, handler)

	if m != nil {
		e.GET(cfg.Metrics.Path, m.Handler())
	}

	// Swagger documentation endpoint
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return cleanup
}

// newCache returns the directory cache: Redis when REDIS_ADDR is set, process memory otherwise.
func newCache(cfg *config.Config, log *logger.Logger) (cache.Cache, func()) {
	if !cfg.UsesRedis() {
		log.Info().Msg("directory cache in memory")
		return cache.NewMemory(timeutil.NewRealClock()), func() {}
	}

	rdb := cache.NewRedisClient(cfg.Cache.RedisAddr, cfg.Cache.RedisPassword, cfg.Cache.RedisDB)
	log.Info().Str("redis_addr", cfg.Cache.RedisAddr).Msg("directory cache in redis")
	return cache.NewRedis(rdb, cfg.Cache.Prefix), func() {
		if err := rdb.Close(); err != nil {
			log.Warn().Err(err).Msg("closing redis client")
		}
	}
}

// newDirectory builds the configured directory source behind the cache.
func newDirectory(cfg *config.Config, c cache.Cache, log *logger.Logger, m *metrics.Metrics) domain.StoreDirectory {
	var source domain.StoreDirectory
	switch cfg.Directory.Source {
	case httpclient.SourceName:
		source = httpclient.NewAdapter(cfg.Directory.BaseURL, cfg.Directory.Timeout,
			httpclient.WithRetry(retry.DefaultConfig.WithMaxAttempts(cfg.Directory.RetryAttempts)))
	default:
		source = file.NewAdapter(cfg.Directory.File)
	}

	opts := []directory.CachedOption{directory.WithLogger(log)}
	if m != nil {
		opts = append(opts, directory.WithObserver(m))
	}
	return directory.NewCached(source, c, cfg.Cache.TTL, opts...)
}

// gracefulShutdown handles graceful server shutdown on interrupt signals.
func gracefulShutdown(e *echo.Echo, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Error during server shutdown")
	}

	log.Info().Msg("Server stopped")
}
