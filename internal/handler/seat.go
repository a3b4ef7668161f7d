package handler

import (
    "context"
    "log"
    "net/http"
    "strconv"
    "time"

    "github.com/google/uuid"
    "github.com/labstack/echo/v4"
    "github.com/redis/go-redis/v9"

    "github.com/avionix/cabin-seat-booking/internal/config"
    "github.com/avionix/cabin-seat-booking/internal/engine"
    "github.com/avionix/cabin-seat-booking/internal/metrics"
    "github.com/avionix/cabin-seat-booking/internal/middleware"
    "github.com/avionix/cabin-seat-booking/internal/queue"
    queue_publisher "github.com/avionix/cabin-seat-booking/internal/service"
)

// Indirections over the queue publisher so tests can stub the broker.
var (
    publishSeatBooked = queue_publisher.PublishSeatBooked
    publishSeatFreed  = queue_publisher.PublishSeatFreed
)

// SeatHandler exposes the booking engine over HTTP.  Route parameters
// use the same 1-based row/column numbering as the console; the
// handler converts to the engine's 0-based coordinates at the
// boundary.  The engine serializes concurrent requests internally, so
// one shared instance serves every request.
type SeatHandler struct {
    Engine  *engine.Engine   // the single cabin engine
    Metrics *metrics.Metrics // operation counters
    Redis   *redis.Client    // for snapshot cache invalidation; may be nil
    Cache   config.CacheConfig
}

// NewSeatHandler constructs a SeatHandler.  Engine and metrics must be
// non-nil; the Redis client may be nil when caching is disabled.
func NewSeatHandler(eng *engine.Engine, m *metrics.Metrics, rdb *redis.Client, cacheCfg config.CacheConfig) *SeatHandler {
    if eng == nil || m == nil {
        panic("nil dependency passed to NewSeatHandler")
    }
    return &SeatHandler{Engine: eng, Metrics: m, Redis: rdb, Cache: cacheCfg}
}

// seatAddress parses the :row and :col route parameters.  They must be
// integers; any integer is accepted because out-of-range addresses are
// a normal engine outcome, not a transport error.  The returned
// coordinates are 0-based.
func seatAddress(c echo.Context) (row, col int, err error) {
    row, err = strconv.Atoi(c.Param("row"))
    if err != nil {
        return 0, 0, err
    }
    col, err = strconv.Atoi(c.Param("col"))
    if err != nil {
        return 0, 0, err
    }
    return row - 1, col - 1, nil
}

// GetCabin handles GET /v1/cabin.  It returns the full grid snapshot:
// every cell's classification, plus the booking reference on booked
// cells, which is all a renderer needs without further queries.
func (h *SeatHandler) GetCabin(c echo.Context) error {
    snap := h.Engine.Snapshot()
    return c.JSON(http.StatusOK, echo.Map{
        "rows":    h.Engine.Rows(),
        "columns": h.Engine.Columns(),
        "cells":   snap,
    })
}

// CheckSeat handles GET /v1/seats/:row/:col.  Invalid addresses are
// reported as 400 with an INVALID status; an available seat returns
// AVAILABLE and a taken one TAKEN with the full booking details.
func (h *SeatHandler) CheckSeat(c echo.Context) error {
    row, col, err := seatAddress(c)
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "row and column must be integers"})
    }

    res, err := h.Engine.CheckAvailability(row, col)
    if err != nil {
        h.Metrics.LedgerCorruption.Inc()
        log.Printf("handler: availability check failed: %v", err)
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "booking records are inconsistent"})
    }

    switch res.Status {
    case engine.QueryAvailable:
        return c.JSON(http.StatusOK, echo.Map{"status": res.Status})
    case engine.QueryTaken:
        return c.JSON(http.StatusOK, echo.Map{"status": res.Status, "booking": res.Booking})
    default:
        return c.JSON(http.StatusBadRequest, echo.Map{"status": res.Status, "error": "invalid seat selection"})
    }
}

// BookSeat handles POST /v1/seats/:row/:col/booking.  The body must
// carry the passenger fields; their content is stored verbatim, field
// format validation is deliberately not this service's job.  On
// success the fresh booking reference is returned, the snapshot cache
// is invalidated and a SeatBookedEvent is published best effort.
func (h *SeatHandler) BookSeat(c echo.Context) error {
    row, col, err := seatAddress(c)
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "row and column must be integers"})
    }

    var body struct {
        PassportNumber string `json:"passport_number"`
        FirstName      string `json:"first_name"`
        LastName       string `json:"last_name"`
    }
    if err := c.Bind(&body); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
    }

    res := h.Engine.BookSeat(row, col, body.PassportNumber, body.FirstName, body.LastName)
    if res.Status != engine.BookBooked {
        h.Metrics.FailedOperations.WithLabelValues("book", "unavailable").Inc()
        return c.JSON(http.StatusConflict, echo.Map{"status": res.Status, "error": "seat cannot be booked"})
    }

    h.Metrics.SeatsBooked.Inc()
    h.invalidateSnapshotCache(c.Request().Context())

    // Best effort: the seat is booked either way.
    _ = publishSeatBooked(c.Request().Context(), queue.SeatBookedEvent{
        EventID:        uuid.NewString(),
        Reference:      res.Reference,
        Row:            row,
        Column:         col,
        PassportNumber: body.PassportNumber,
        FirstName:      body.FirstName,
        LastName:       body.LastName,
        BookedAt:       time.Now().UTC().Format(time.RFC3339),
    })

    return c.JSON(http.StatusCreated, echo.Map{"status": res.Status, "reference": res.Reference})
}

// FreeSeat handles DELETE /v1/seats/:row/:col/booking.  Freeing an
// already-free seat and an invalid address report the same 404
// outcome.  A booked cell with no ledger entry is a consistency
// violation and reported as 500 without touching the grid.
func (h *SeatHandler) FreeSeat(c echo.Context) error {
    row, col, err := seatAddress(c)
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "row and column must be integers"})
    }

    res := h.Engine.FreeSeat(row, col)
    switch res.Status {
    case engine.FreeFreed:
        h.Metrics.SeatsFreed.Inc()
        h.invalidateSnapshotCache(c.Request().Context())
        _ = publishSeatFreed(c.Request().Context(), queue.SeatFreedEvent{
            EventID:   uuid.NewString(),
            Reference: res.Reference,
            Row:       row,
            Column:    col,
            FreedAt:   time.Now().UTC().Format(time.RFC3339),
        })
        return c.JSON(http.StatusOK, echo.Map{"status": res.Status, "reference": res.Reference})
    case engine.FreeBookingNotFound:
        h.Metrics.LedgerCorruption.Inc()
        log.Printf("handler: free seat (%d,%d): booked cell has no ledger entry", row, col)
        return c.JSON(http.StatusInternalServerError, echo.Map{"status": res.Status, "error": "booking records are inconsistent"})
    default:
        h.Metrics.FailedOperations.WithLabelValues("free", "already_free_or_invalid").Inc()
        return c.JSON(http.StatusNotFound, echo.Map{"status": res.Status, "error": "seat is already free or cannot be freed"})
    }
}

// invalidateSnapshotCache drops cached GET responses after a mutation
// so the next snapshot reflects the new grid immediately.
func (h *SeatHandler) invalidateSnapshotCache(ctx context.Context) {
    if err := middleware.InvalidateCachePrefix(ctx, h.Redis, h.Cache.Prefix); err != nil {
        log.Printf("handler: cache invalidation failed: %v", err)
    }
}
