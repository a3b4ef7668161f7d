// Package render turns engine results and grid snapshots into
// color-coded terminal text.  It is a pure formatter: the engine
// hands it structured results and it returns strings, touching no
// process-wide state.  Enabling ANSI handling on consoles that need
// it is the binary's concern, not this package's.
package render

import (
    "fmt"
    "strings"

    "github.com/avionix/cabin-seat-booking/internal/engine"
    "github.com/avionix/cabin-seat-booking/internal/model"
)

// ansiReset restores the terminal's default foreground color.
const ansiReset = "\033[39m"

// textColors maps color names to ANSI foreground escape codes.
var textColors = map[string]string{
    "black": "\033[30m", "dark_blue": "\033[34m", "dark_green": "\033[32m", "dark_aqua": "\033[36m",
    "dark_red": "\033[31m", "dark_purple": "\033[35m", "gold": "\033[33m", "gray": "\033[37m",
    "dark_gray": "\033[90m", "blue": "\033[94m", "green": "\033[92m", "aqua": "\033[96m",
    "red": "\033[91m", "light_purple": "\033[95m", "yellow": "\033[93m", "white": "\033[97m",
}

// Color wraps text in the ANSI escape sequence for the named color
// and resets afterwards.  Unknown color names fall back to white.
func Color(text, color string) string {
    code, ok := textColors[color]
    if !ok {
        code = textColors["white"]
    }
    return code + text + ansiReset
}

// glyph is the single-character display form of a cell: F for free,
// X for aisle, S for storage and R for any booked seat, so booking
// references never leak into the cabin display.
func glyph(c model.Cell) string {
    switch c.Kind {
    case model.CellFree:
        return "F"
    case model.CellAisle:
        return "X"
    case model.CellStorage:
        return "S"
    default:
        return "R"
    }
}

// Grid renders a snapshot as the cabin display: one colored glyph
// per cell, a 1-based row caption on each line, and a legend.  Free
// seats are yellow so they stand out; everything else is white.
func Grid(snapshot [][]model.Cell) string {
    var b strings.Builder
    for i, row := range snapshot {
        for _, cell := range row {
            color := "white"
            if cell.Kind == model.CellFree {
                color = "yellow"
            }
            b.WriteString(Color(glyph(cell), color))
            b.WriteString(" ")
        }
        b.WriteString(Color(fmt.Sprintf(" Row %d", i+1), "white"))
        b.WriteString("\n")
    }
    b.WriteString("F = Free, X = Aisle, S = Storage, R = Booked\n")
    return b.String()
}

// Query formats an availability result for display.  A taken result
// without booking details falls back to the invalid message rather
// than panicking on a missing record.
func Query(res engine.QueryResult) string {
    switch res.Status {
    case engine.QueryAvailable:
        return Color("Seat is available", "green")
    case engine.QueryTaken:
        if res.Booking == nil {
            return Color("Invalid seat selection.", "red")
        }
        return Color("Seat is taken.\n---INFO---", "yellow") +
            "\nReference Number: " + res.Booking.Reference +
            "\nPassport Number: " + res.Booking.PassportNumber +
            "\nFirst Name: " + res.Booking.FirstName +
            "\nLast Name: " + res.Booking.LastName
    default:
        return Color("Invalid seat selection.", "red")
    }
}

// Book formats a booking result for display.
func Book(res engine.BookResult) string {
    if res.Status == engine.BookBooked {
        return Color(fmt.Sprintf("Seat booked successfully with reference %s.", res.Reference), "green")
    }
    return Color("Seat cannot be booked.", "red")
}

// Free formats a release result for display.
func Free(res engine.FreeResult) string {
    switch res.Status {
    case engine.FreeFreed:
        return Color("Seat has been freed.", "green")
    case engine.FreeBookingNotFound:
        return Color("Booking reference not found.", "red")
    default:
        return Color("Seat is already free or cannot be freed.", "yellow")
    }
}
