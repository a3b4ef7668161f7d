package model

// CellKind classifies one position of the cabin grid.  A cell is
// either bookable and empty (FREE), permanently non-bookable because
// the position is an aisle or a storage space, or occupied by a
// booking (BOOKED).  Blocked kinds are fixed when the grid is built
// and never change for the lifetime of the process.
type CellKind string

const (
    CellFree    CellKind = "FREE"    // bookable, unoccupied
    CellAisle   CellKind = "AISLE"   // blocked: aisle position
    CellStorage CellKind = "STORAGE" // blocked: storage space
    CellBooked  CellKind = "BOOKED"  // occupied, Reference holds the booking reference
)

// Cell is one grid position.  Reference is set only when Kind is
// CellBooked and holds the 8-character booking reference that keys
// the ledger entry for this seat.
//
// Fields:
//  Kind      – classification of the position (FREE, AISLE, STORAGE, BOOKED).
//  Reference – booking reference occupying the seat, empty unless BOOKED.
type Cell struct {
    Kind      CellKind `json:"kind"`                // current classification
    Reference string   `json:"reference,omitempty"` // booking reference when booked
}

// Blocked reports whether the cell can never hold a booking.  Only the
// two blocked sentinel kinds return true; FREE and BOOKED cells are
// considered valid seat positions.
func (c Cell) Blocked() bool {
    return c.Kind == CellAisle || c.Kind == CellStorage
}
