// Package engine implements the cabin booking core: the seat grid,
// the booking ledger keyed by reference, and the operations that
// move cells between free and booked.  The engine owns both
// structures exclusively; callers only ever see structured results
// and defensive copies, never the grid or ledger themselves.
package engine

import (
    "errors"

    "github.com/avionix/cabin-seat-booking/internal/model"
)

// ErrLedgerCorrupted is returned when a booked grid cell references a
// booking that is missing from the ledger.  The grid/ledger pair is
// maintained atomically, so this can only happen through a bug; it is
// surfaced as an error rather than a normal result because retrying
// the same input cannot fix it.  Callers should log it and treat the
// engine state as suspect.
var ErrLedgerCorrupted = errors.New("engine: booked cell has no ledger entry")

// QueryStatus is the outcome of an availability check.
type QueryStatus string

const (
    QueryInvalid   QueryStatus = "INVALID"   // out of bounds or blocked position
    QueryAvailable QueryStatus = "AVAILABLE" // free, can be booked
    QueryTaken     QueryStatus = "TAKEN"     // booked, Booking carries the details
)

// QueryResult carries the outcome of CheckAvailability.  Booking is
// populated only when Status is QueryTaken.
type QueryResult struct {
    Status  QueryStatus    // availability classification
    Booking *model.Booking // details of the occupying booking, if any
}

// BookStatus is the outcome of a booking attempt.
type BookStatus string

const (
    BookBooked      BookStatus = "BOOKED"      // seat booked, Reference is set
    BookUnavailable BookStatus = "UNAVAILABLE" // invalid address or non-free cell
)

// BookResult carries the outcome of BookSeat.  Reference is the fresh
// booking reference on success and empty otherwise.
type BookResult struct {
    Status    BookStatus // whether the booking was made
    Reference string     // new booking reference when Status is BookBooked
}

// FreeStatus is the outcome of a release attempt.
type FreeStatus string

const (
    FreeFreed FreeStatus = "FREED" // seat released, ledger entry removed

    // FreeAlreadyFreeOrInvalid merges two causes on purpose: an
    // address that fails validation and a cell that is already free
    // report the same outcome.
    FreeAlreadyFreeOrInvalid FreeStatus = "ALREADY_FREE_OR_INVALID"

    // FreeBookingNotFound reports a booked cell whose reference is
    // missing from the ledger.  The grid is left untouched in this
    // case so the inconsistency stays visible.
    FreeBookingNotFound FreeStatus = "BOOKING_NOT_FOUND"
)

// FreeResult carries the outcome of FreeSeat.  Reference is the code
// of the booking that was released, set only on FreeFreed.
type FreeResult struct {
    Status    FreeStatus // release classification
    Reference string     // released booking reference on success
}
