// Package queue defines message payloads exchanged over the message broker.
package queue

// SeatBookedEvent is published when a seat is successfully booked.
// It carries enough information for downstream consumers to log or
// notify without querying the engine.  Row and Column are the
// engine's 0-based coordinates.
type SeatBookedEvent struct {
    EventID        string `json:"event_id"`        // unique id of this event, not of the booking
    Reference      string `json:"reference"`       // booking reference occupying the seat
    Row            int    `json:"row"`             // 0-based seat row
    Column         int    `json:"column"`          // 0-based seat column
    PassportNumber string `json:"passport_number"` // passenger passport, stored verbatim
    FirstName      string `json:"first_name"`
    LastName       string `json:"last_name"`
    BookedAt       string `json:"booked_at"` // RFC3339 UTC timestamp
}

// SeatFreedEvent is published when a booked seat is released.
type SeatFreedEvent struct {
    EventID   string `json:"event_id"`  // unique id of this event
    Reference string `json:"reference"` // reference of the released booking
    Row       int    `json:"row"`
    Column    int    `json:"column"`
    FreedAt   string `json:"freed_at"` // RFC3339 UTC timestamp
}
