package http

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutes registers all rental search API routes.
// It creates a versioned API group and attaches the handler methods.
func RegisterRoutes(e *echo.Echo, h *RentalSearchHandler, middleware ...echo.MiddlewareFunc) {
	// Health check endpoint (no version prefix, no middleware)
	e.GET("/health", h.Health)

	api := e.Group("/api/v1", middleware...)

	search := api.Group("/rental-search")
	search.GET("/reference", h.Reference)
	search.GET("/calendar", h.Calendar)
	search.GET("/time-slots", h.TimeSlots)
	search.POST("/dropoff", h.Dropoff)
	search.POST("/validate", h.ValidateSelection)
	search.POST("/dispatch", h.Dispatch)
	search.GET("/resume", h.Resume)

	cities := api.Group("/cities")
	cities.GET("", h.Cities)
	cities.GET("/:id", h.City)
	cities.POST("/refresh", h.RefreshCities)
}
