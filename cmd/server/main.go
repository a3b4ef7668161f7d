package main // Entry point package

import (
	"log" // Logging library

	"github.com/avionix/cabin-seat-booking/internal/config"     // Internal config loaders
	"github.com/avionix/cabin-seat-booking/internal/engine"     // Booking engine core
	"github.com/avionix/cabin-seat-booking/internal/handler"    // HTTP handlers
	"github.com/avionix/cabin-seat-booking/internal/metrics"    // Prometheus instruments
	"github.com/avionix/cabin-seat-booking/internal/middleware" // Redis rate limit and cache middleware
	"github.com/avionix/cabin-seat-booking/internal/queue"      // Seat event consumer
	"github.com/avionix/cabin-seat-booking/internal/router"     // Route registration
	"github.com/labstack/echo/v4"                               // Echo web framework
)

func main() {
	cfg := config.Load() // Load environment config (and .env if present)

	layout, err := config.LoadLayout() // Cabin shape, reference 7x4 by default
	if err != nil {
		log.Fatalf("invalid cabin layout: %v", err)
	}
	eng := engine.New(layout)    // One engine instance shared by all requests
	m := metrics.New("cabin")    // Registered on the default Prometheus registry
	rdb := config.NewRedisClient() // May be nil; middleware degrades gracefully
	if rdb == nil {
		log.Print("redis unavailable; rate limiting and caching disabled")
	}
	cacheCfg := config.LoadCacheConfig()

	e := echo.New() // Create Echo instance
	router.RegisterRoutes(e)
	router.RegisterSeats(e,
		handler.NewSeatHandler(eng, m, rdb, cacheCfg),
		middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb),
		middleware.NewRedisCache(cacheCfg, rdb),
	)

	// Consume seat events into logs/seat-events.log; reconnects forever.
	go func() {
		if err := queue.StartSeatEventConsumer(); err != nil {
			log.Printf("seat event consumer stopped: %v", err)
		}
	}()

	addr := ":" + cfg.Port                                // Address string with port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env) // Print startup info

	if err := e.Start(addr); err != nil { // Start HTTP server
		log.Fatal(err) // Log and exit if server fails
	}
}
