package router // package router defines how HTTP routes are registered for the API

import (
    "github.com/labstack/echo/v4" // import the Echo web framework to handle routing
    "github.com/prometheus/client_golang/prometheus/promhttp"

    "github.com/avionix/cabin-seat-booking/internal/handler" // import the handlers that implement the seat operations
)

// RegisterRoutes registers routes that are not part of the seat API on
// the provided Echo instance: the health check used by load balancers
// and monitoring systems, and the Prometheus metrics endpoint.
func RegisterRoutes(e *echo.Echo) {
    e.GET("/healthz", handler.Health)
    e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
}

// RegisterSeats registers the cabin endpoints under /v1.  All routes
// share the rate limiter; only the cabin snapshot goes through the
// response cache, because seat checks are cheap and mutations must
// never be served from cache.  Both middlewares degrade to
// pass-through when Redis is unavailable.
func RegisterSeats(e *echo.Echo, h *handler.SeatHandler, limiter, cache echo.MiddlewareFunc) {
    g := e.Group("/v1")
    g.Use(limiter)
    // Full cabin snapshot: every cell's classification plus booked references.
    g.GET("/cabin", h.GetCabin, cache)
    // Availability of one seat; :row and :col are 1-based.
    g.GET("/seats/:row/:col", h.CheckSeat)
    // Book a free seat; the body carries the passenger fields.
    g.POST("/seats/:row/:col/booking", h.BookSeat)
    // Release a booked seat.
    g.DELETE("/seats/:row/:col/booking", h.FreeSeat)
}
