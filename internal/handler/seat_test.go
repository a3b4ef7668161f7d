package handler

import (
    "context"
    "encoding/json"
    "net/http"
    "net/http/httptest"
    "os"
    "strings"
    "sync/atomic"
    "testing"

    "github.com/labstack/echo/v4"
    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "github.com/avionix/cabin-seat-booking/internal/config"
    "github.com/avionix/cabin-seat-booking/internal/engine"
    "github.com/avionix/cabin-seat-booking/internal/metrics"
    "github.com/avionix/cabin-seat-booking/internal/model"
    "github.com/avionix/cabin-seat-booking/internal/queue"
)

var bookedEvents, freedEvents atomic.Int64

// TestMain stubs the broker publishers so handler tests never dial
// RabbitMQ.
func TestMain(m *testing.M) {
    publishSeatBooked = func(ctx context.Context, ev queue.SeatBookedEvent) error {
        bookedEvents.Add(1)
        return nil
    }
    publishSeatFreed = func(ctx context.Context, ev queue.SeatFreedEvent) error {
        freedEvents.Add(1)
        return nil
    }
    os.Exit(m.Run())
}

// Prometheus collectors register globally, so the whole test binary
// shares one instrument set.
var testMetrics = metrics.New("cabin_handler_test")

// newTestServer wires a fresh engine behind the same paths the router
// registers.  The routes are declared inline because this file must
// stay in package handler to stub the publisher vars, and importing
// internal/router here would close an import cycle.
func newTestServer(t *testing.T) (*echo.Echo, *engine.Engine) {
    t.Helper()
    eng := engine.New(model.DefaultLayout())
    h := NewSeatHandler(eng, testMetrics, nil, config.CacheConfig{})

    e := echo.New()
    e.GET("/healthz", Health)
    e.GET("/v1/cabin", h.GetCabin)
    e.GET("/v1/seats/:row/:col", h.CheckSeat)
    e.POST("/v1/seats/:row/:col/booking", h.BookSeat)
    e.DELETE("/v1/seats/:row/:col/booking", h.FreeSeat)
    return e, eng
}

// do issues a request against the echo instance and decodes the JSON body.
func do(t *testing.T, e *echo.Echo, method, path, body string) (int, map[string]any) {
    t.Helper()
    var reqBody *strings.Reader
    if body == "" {
        reqBody = strings.NewReader("")
    } else {
        reqBody = strings.NewReader(body)
    }
    req := httptest.NewRequest(method, path, reqBody)
    if body != "" {
        req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
    }
    rec := httptest.NewRecorder()
    e.ServeHTTP(rec, req)

    out := map[string]any{}
    if rec.Body.Len() > 0 && strings.HasPrefix(rec.Header().Get(echo.HeaderContentType), echo.MIMEApplicationJSON) {
        require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
    }
    return rec.Code, out
}

func TestHealth(t *testing.T) {
    e, _ := newTestServer(t)
    req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
    rec := httptest.NewRecorder()
    e.ServeHTTP(rec, req)
    assert.Equal(t, http.StatusOK, rec.Code)
    assert.Equal(t, "ok", rec.Body.String())
}

func TestGetCabin(t *testing.T) {
    e, _ := newTestServer(t)

    code, body := do(t, e, http.MethodGet, "/v1/cabin", "")
    require.Equal(t, http.StatusOK, code)
    assert.EqualValues(t, 7, body["rows"])
    assert.EqualValues(t, 4, body["columns"])

    cells, ok := body["cells"].([]any)
    require.True(t, ok)
    require.Len(t, cells, 7)

    // Row 4 (index 3) is the aisle.
    aisleRow, ok := cells[3].([]any)
    require.True(t, ok)
    first, ok := aisleRow[0].(map[string]any)
    require.True(t, ok)
    assert.Equal(t, string(model.CellAisle), first["kind"])
}

func TestCheckSeat(t *testing.T) {
    e, eng := newTestServer(t)

    code, body := do(t, e, http.MethodGet, "/v1/seats/1/1", "")
    assert.Equal(t, http.StatusOK, code)
    assert.Equal(t, string(engine.QueryAvailable), body["status"])

    // Aisle row: user-facing row 4.
    code, body = do(t, e, http.MethodGet, "/v1/seats/4/1", "")
    assert.Equal(t, http.StatusBadRequest, code)
    assert.Equal(t, string(engine.QueryInvalid), body["status"])

    // Out of range is INVALID too, not a transport error.
    code, body = do(t, e, http.MethodGet, "/v1/seats/99/1", "")
    assert.Equal(t, http.StatusBadRequest, code)
    assert.Equal(t, string(engine.QueryInvalid), body["status"])

    // Non-integer coordinates never reach the engine.
    code, _ = do(t, e, http.MethodGet, "/v1/seats/x/1", "")
    assert.Equal(t, http.StatusBadRequest, code)

    // A booked seat reports TAKEN with the passenger details.
    res := eng.BookSeat(0, 0, "P123", "Ann", "Lee")
    require.Equal(t, engine.BookBooked, res.Status)

    code, body = do(t, e, http.MethodGet, "/v1/seats/1/1", "")
    assert.Equal(t, http.StatusOK, code)
    assert.Equal(t, string(engine.QueryTaken), body["status"])
    booking, ok := body["booking"].(map[string]any)
    require.True(t, ok)
    assert.Equal(t, "P123", booking["passport_number"])
    assert.Equal(t, res.Reference, booking["reference"])
}

func TestBookSeat(t *testing.T) {
    e, eng := newTestServer(t)

    before := bookedEvents.Load()
    code, body := do(t, e, http.MethodPost, "/v1/seats/1/1/booking",
        `{"passport_number":"P123","first_name":"Ann","last_name":"Lee"}`)
    require.Equal(t, http.StatusCreated, code)
    assert.Equal(t, before+1, bookedEvents.Load(), "a booked seat publishes one event")
    assert.Equal(t, string(engine.BookBooked), body["status"])
    ref, _ := body["reference"].(string)
    assert.Len(t, ref, engine.ReferenceLength)

    // The engine really holds the booking at (0,0).
    q, err := eng.CheckAvailability(0, 0)
    require.NoError(t, err)
    require.Equal(t, engine.QueryTaken, q.Status)
    assert.Equal(t, ref, q.Booking.Reference)

    // Booking the same seat again conflicts.
    code, body = do(t, e, http.MethodPost, "/v1/seats/1/1/booking",
        `{"passport_number":"P9","first_name":"Bob","last_name":"Ray"}`)
    assert.Equal(t, http.StatusConflict, code)
    assert.Equal(t, string(engine.BookUnavailable), body["status"])

    // So does booking the aisle.
    code, _ = do(t, e, http.MethodPost, "/v1/seats/4/1/booking",
        `{"passport_number":"P9","first_name":"Bob","last_name":"Ray"}`)
    assert.Equal(t, http.StatusConflict, code)

    // Empty passenger fields are accepted: field validation is the
    // caller's responsibility.
    code, _ = do(t, e, http.MethodPost, "/v1/seats/2/1/booking", `{}`)
    assert.Equal(t, http.StatusCreated, code)
}

func TestFreeSeat(t *testing.T) {
    e, eng := newTestServer(t)

    res := eng.BookSeat(0, 1, "P1", "Jo", "March")
    require.Equal(t, engine.BookBooked, res.Status)

    before := freedEvents.Load()
    code, body := do(t, e, http.MethodDelete, "/v1/seats/1/2/booking", "")
    assert.Equal(t, http.StatusOK, code)
    assert.Equal(t, string(engine.FreeFreed), body["status"])
    assert.Equal(t, res.Reference, body["reference"])
    assert.Equal(t, before+1, freedEvents.Load(), "a freed seat publishes one event")

    // Freeing again merges into the already-free-or-invalid outcome.
    code, body = do(t, e, http.MethodDelete, "/v1/seats/1/2/booking", "")
    assert.Equal(t, http.StatusNotFound, code)
    assert.Equal(t, string(engine.FreeAlreadyFreeOrInvalid), body["status"])

    // As does an out-of-bounds address.
    code, _ = do(t, e, http.MethodDelete, "/v1/seats/50/2/booking", "")
    assert.Equal(t, http.StatusNotFound, code)
}
