// Package cli drives the booking engine from an interactive text
// menu.  It owns input collection and well-formedness checks (row
// and column must be positive integers, entered 1-based) and leaves
// every booking rule to the engine.  The loop reads from an
// io.Reader and writes to an io.Writer so sessions can be scripted
// in tests; cmd/console wires it to stdin and stdout.
package cli

import (
    "bufio"
    "fmt"
    "io"
    "log"
    "strconv"

    "github.com/avionix/cabin-seat-booking/internal/engine"
    "github.com/avionix/cabin-seat-booking/internal/render"
)

// menu is printed before every prompt.  Options 1-3 share the
// row/column questions; option 4 renders the cabin; option 5 exits.
const menu = "1. Check seat availability\n2. Book a seat\n3. Free a seat\n4. Show booking state\n5. Exit"

// Loop is one interactive session over a booking engine.
type Loop struct {
    eng *engine.Engine
    in  *bufio.Scanner
    out io.Writer
}

// New returns a session reading commands from in and printing to out.
func New(eng *engine.Engine, in io.Reader, out io.Writer) *Loop {
    return &Loop{eng: eng, in: bufio.NewScanner(in), out: out}
}

// prompt prints a label and reads one line.  ok is false when the
// input is exhausted, which ends the session cleanly.
func (l *Loop) prompt(label string) (string, bool) {
    fmt.Fprint(l.out, label)
    if !l.in.Scan() {
        fmt.Fprintln(l.out)
        return "", false
    }
    return l.in.Text(), true
}

// isDigits reports whether s is a non-empty run of ASCII digits.
// Signs are rejected on purpose: the menu asks for 1-based seat
// numbers, so "-1" is malformed input rather than an address.
func isDigits(s string) bool {
    if s == "" {
        return false
    }
    for _, r := range s {
        if r < '0' || r > '9' {
            return false
        }
    }
    return true
}

// readSeat collects a 1-based row and column pair and converts it to
// the engine's 0-based coordinates.  valid is false for malformed
// input, in which case the caller re-prompts; ok is false on EOF.
func (l *Loop) readSeat() (row, col int, ok, valid bool) {
    rowStr, ok := l.prompt("Enter row number: ")
    if !ok {
        return 0, 0, false, false
    }
    colStr, ok := l.prompt("Enter column number: ")
    if !ok {
        return 0, 0, false, false
    }
    if !isDigits(rowStr) || !isDigits(colStr) {
        fmt.Fprintln(l.out, render.Color("Invalid input. Row and column must be integers.", "red"))
        return 0, 0, true, false
    }
    r, _ := strconv.Atoi(rowStr)
    c, _ := strconv.Atoi(colStr)
    return r - 1, c - 1, true, true
}

// Run executes the menu loop until the user exits or input ends.
func (l *Loop) Run() error {
    for {
        fmt.Fprintln(l.out, render.Color("---------- SBS CLI ----------", "yellow")+"\n"+menu)
        choice, ok := l.prompt("Select an option: ")
        if !ok {
            return nil
        }

        switch choice {
        case "5":
            return nil

        case "1", "3":
            row, col, ok, valid := l.readSeat()
            if !ok {
                return nil
            }
            if !valid {
                continue
            }
            if choice == "1" {
                res, err := l.eng.CheckAvailability(row, col)
                if err != nil {
                    // Grid/ledger mismatch: report it, the session can continue.
                    log.Printf("cli: availability check failed: %v", err)
                    fmt.Fprintln(l.out, render.Color("Internal error: booking records are inconsistent.", "red"))
                    break
                }
                fmt.Fprintln(l.out, render.Query(res))
            } else {
                fmt.Fprintln(l.out, render.Free(l.eng.FreeSeat(row, col)))
            }

        case "2":
            row, col, ok, valid := l.readSeat()
            if !ok {
                return nil
            }
            if !valid {
                continue
            }
            passport, ok := l.prompt("Enter passport number (1234...): ")
            if !ok {
                return nil
            }
            first, ok := l.prompt("Enter first name: ")
            if !ok {
                return nil
            }
            last, ok := l.prompt("Enter last name: ")
            if !ok {
                return nil
            }
            fmt.Fprintln(l.out, render.Book(l.eng.BookSeat(row, col, passport, first, last)))

        case "4":
            fmt.Fprint(l.out, render.Grid(l.eng.Snapshot()))

        default:
            fmt.Fprintln(l.out, render.Color("Invalid option. Please try again.", "red"))
            continue
        }

        if _, ok := l.prompt(render.Color("Press enter to continue...", "white")); !ok {
            return nil
        }
    }
}
