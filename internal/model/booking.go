package model

// Booking records the passenger occupying one seat.  Bookings are
// keyed by their reference in the engine's ledger; the seat
// coordinates stored here always agree with the grid cell holding
// the same reference.
//
// Fields:
//  Reference      – unique 8-character alphanumeric booking code.
//  PassportNumber – passenger's passport number, stored verbatim.
//  FirstName      – passenger's first name, stored verbatim.
//  LastName       – passenger's last name, stored verbatim.
//  Row            – 0-based row of the booked seat.
//  Column         – 0-based column of the booked seat.
type Booking struct {
    Reference      string `json:"reference"`       // ledger key
    PassportNumber string `json:"passport_number"` // free-form, not validated
    FirstName      string `json:"first_name"`      // free-form, not validated
    LastName       string `json:"last_name"`       // free-form, not validated
    Row            int    `json:"row"`             // agrees with the grid cell
    Column         int    `json:"column"`          // agrees with the grid cell
}
