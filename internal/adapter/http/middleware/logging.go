package middleware

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/vehicle-marketplace/rental-search/internal/infrastructure/logger"
)

// loggerKey is the context key for the request-scoped logger.
const loggerKey = "logger"

// RequestLogger returns middleware that logs HTTP requests.
// It logs on request completion with method, route, status, duration, and client info.
// Requests whose path is in skipPaths are served but not logged.
//
// The request-scoped logger, tagged with the request ID, is available to
// handlers through GetLogger.
func RequestLogger(log *logger.Logger, skipPaths ...string) echo.MiddlewareFunc {
	skip := make(map[string]bool, len(skipPaths))
	for _, p := range skipPaths {
		skip[p] = true
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			reqLog := log.WithRequestID(GetRequestID(c))
			c.Set(loggerKey, reqLog)

			err := next(c)
			if err != nil {
				// Let Echo's error handler process the error
				c.Error(err)
			}

			req := c.Request()
			if skip[req.URL.Path] {
				return nil
			}

			res := c.Response()
			duration := time.Since(start)

			var event *zerolog.Event
			status := res.Status
			switch {
			case status >= 500:
				event = reqLog.Error()
			case status >= 400:
				event = reqLog.Warn()
			default:
				event = reqLog.Info()
			}

			event.
				Str("method", req.Method).
				Str("path", req.URL.Path).
				Str("route", c.Path()).
				Str("query", req.URL.RawQuery).
				Int("status", status).
				Int64("duration_ms", duration.Milliseconds()).
				Int64("bytes_out", res.Size).
				Str("client_ip", c.RealIP()).
				Str("user_agent", req.UserAgent()).
				Msg("HTTP request")

			// The error was already handled via c.Error()
			return nil
		}
	}
}

// GetLogger returns the request-scoped logger, or fallback when the
// RequestLogger middleware did not run.
func GetLogger(c echo.Context, fallback *logger.Logger) *logger.Logger {
	if l, ok := c.Get(loggerKey).(*logger.Logger); ok {
		return l
	}
	return fallback
}
