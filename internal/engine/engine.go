package engine

import (
    "sync"

    "github.com/avionix/cabin-seat-booking/internal/model"
)

// Engine owns the seat grid and the booking ledger.  All coordinates
// accepted by its methods are 0-based; converting from 1-based
// user-facing input is the caller's job.  A single mutex guards the
// grid and ledger as one unit so that check-then-set on a cell and
// its paired ledger update are atomic with respect to any concurrent
// booking or release of the same seat.
type Engine struct {
    mu     sync.Mutex
    grid   [][]model.Cell           // Rows x Columns cells
    ledger map[string]model.Booking // reference -> booking details
}

// New builds an engine from a layout.  The layout's blocked positions
// are fixed for the lifetime of the engine; every other position
// starts free with an empty ledger.
func New(layout model.Layout) *Engine {
    grid := make([][]model.Cell, layout.Rows)
    for r := range grid {
        grid[r] = make([]model.Cell, layout.Columns)
        for c := range grid[r] {
            grid[r][c] = model.Cell{Kind: layout.Cells[r][c]}
        }
    }
    return &Engine{
        grid:   grid,
        ledger: make(map[string]model.Booking),
    }
}

// Rows returns the number of seat rows in the grid.
func (e *Engine) Rows() int { return len(e.grid) }

// Columns returns the number of seats per row.
func (e *Engine) Columns() int {
    if len(e.grid) == 0 {
        return 0
    }
    return len(e.grid[0])
}

// inBounds reports whether the coordinates fall inside the grid.
func (e *Engine) inBounds(row, col int) bool {
    return row >= 0 && row < len(e.grid) && col >= 0 && col < len(e.grid[row])
}

// ValidCell reports whether a raw cell value is a bookable seat
// position.  It returns false only for the two blocked kinds; free
// and booked cells are valid.  Renderers use it when iterating a
// snapshot without going back to the engine.
func ValidCell(c model.Cell) bool {
    return !c.Blocked()
}

// ValidateSeat reports whether the address names a seat position:
// in-bounds and not blocked.  Out-of-bounds coordinates, including
// negative ones, are an ordinary false, never a panic.
func (e *Engine) ValidateSeat(row, col int) bool {
    e.mu.Lock()
    defer e.mu.Unlock()
    return e.validateLocked(row, col)
}

func (e *Engine) validateLocked(row, col int) bool {
    return e.inBounds(row, col) && !e.grid[row][col].Blocked()
}

// CheckAvailability classifies a seat address.  Invalid addresses are
// a normal outcome, not an error.  For a taken seat the result
// carries a copy of the ledger entry; a booked cell with no ledger
// entry means the grid/ledger invariant was broken elsewhere and is
// reported as ErrLedgerCorrupted.
func (e *Engine) CheckAvailability(row, col int) (QueryResult, error) {
    e.mu.Lock()
    defer e.mu.Unlock()

    if !e.validateLocked(row, col) {
        return QueryResult{Status: QueryInvalid}, nil
    }
    cell := e.grid[row][col]
    if cell.Kind == model.CellFree {
        return QueryResult{Status: QueryAvailable}, nil
    }
    booking, ok := e.ledger[cell.Reference]
    if !ok {
        return QueryResult{}, ErrLedgerCorrupted
    }
    return QueryResult{Status: QueryTaken, Booking: &booking}, nil
}

// BookSeat books a free seat for the given passenger and returns the
// fresh booking reference.  Passport number and names are stored
// verbatim; validating their format is the caller's responsibility.
// Booking fails with BookUnavailable when the address is invalid or
// the cell is anything other than free, and in that case neither the
// grid nor the ledger is touched.
func (e *Engine) BookSeat(row, col int, passport, firstName, lastName string) BookResult {
    e.mu.Lock()
    defer e.mu.Unlock()

    if !e.validateLocked(row, col) || e.grid[row][col].Kind != model.CellFree {
        return BookResult{Status: BookUnavailable}
    }

    ref := e.newReference()
    e.grid[row][col] = model.Cell{Kind: model.CellBooked, Reference: ref}
    e.ledger[ref] = model.Booking{
        Reference:      ref,
        PassportNumber: passport,
        FirstName:      firstName,
        LastName:       lastName,
        Row:            row,
        Column:         col,
    }
    return BookResult{Status: BookBooked, Reference: ref}
}

// FreeSeat releases a booked seat: the ledger entry is removed and
// the cell reset to free in one step.  An invalid address and an
// already-free cell report the same FreeAlreadyFreeOrInvalid outcome.
// A booked cell whose reference is missing from the ledger reports
// FreeBookingNotFound and leaves the grid unchanged rather than
// silently clearing the seat.
func (e *Engine) FreeSeat(row, col int) FreeResult {
    e.mu.Lock()
    defer e.mu.Unlock()

    if !e.validateLocked(row, col) || e.grid[row][col].Kind == model.CellFree {
        return FreeResult{Status: FreeAlreadyFreeOrInvalid}
    }

    ref := e.grid[row][col].Reference
    if _, ok := e.ledger[ref]; !ok {
        return FreeResult{Status: FreeBookingNotFound}
    }
    delete(e.ledger, ref)
    e.grid[row][col] = model.Cell{Kind: model.CellFree}
    return FreeResult{Status: FreeFreed, Reference: ref}
}

// Snapshot returns a copy of every cell's current value.  The copy is
// deep enough that no caller can reach the engine's internal state
// through it.
func (e *Engine) Snapshot() [][]model.Cell {
    e.mu.Lock()
    defer e.mu.Unlock()

    out := make([][]model.Cell, len(e.grid))
    for r, row := range e.grid {
        out[r] = make([]model.Cell, len(row))
        copy(out[r], row)
    }
    return out
}
