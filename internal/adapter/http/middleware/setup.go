package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/vehicle-marketplace/rental-search/internal/infrastructure/logger"
	"github.com/vehicle-marketplace/rental-search/internal/infrastructure/metrics"
)

// Options selects the optional parts of the middleware chain.
type Options struct {
	// Recovery tunes the panic recovery middleware
	Recovery RecoveryConfig

	// Metrics, when set, records request counts and latencies
	Metrics *metrics.Metrics

	// SkipLogPaths are served without an access log entry (health checks, scrapes)
	SkipLogPaths []string
}

// Setup registers all middleware on the Echo instance in the correct order.
// The order is important:
//  1. RequestID - First, to generate/propagate request ID for all subsequent logging
//  2. Metrics - Second, so recorded latencies include logging and recovery
//  3. RequestLogger - Third, logs all requests with request ID
//  4. Recover - Last, catches panics and returns 500 (wraps handlers)
//
// This function should be called before registering routes.
func Setup(e *echo.Echo, log *logger.Logger) {
	SetupWithOptions(e, log, Options{Recovery: DefaultRecoveryConfig()})
}

// SetupWithOptions registers middleware with custom options.
func SetupWithOptions(e *echo.Echo, log *logger.Logger, opts Options) {
	e.Use(Chain(log, opts)...)
}

// Chain returns all middleware as a slice for use with route groups.
// Useful when you want to apply middleware to specific route groups only.
func Chain(log *logger.Logger, opts Options) []echo.MiddlewareFunc {
	chain := []echo.MiddlewareFunc{RequestID()}
	if opts.Metrics != nil {
		chain = append(chain, opts.Metrics.Middleware())
	}
	return append(chain,
		RequestLogger(log, opts.SkipLogPaths...),
		RecoverWithConfig(log, opts.Recovery),
	)
}
