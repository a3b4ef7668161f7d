package cli

import (
    "bytes"
    "strings"
    "testing"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "github.com/avionix/cabin-seat-booking/internal/engine"
    "github.com/avionix/cabin-seat-booking/internal/model"
)

// run feeds a scripted session into the loop and returns everything
// it printed.  Lines are the user's answers in prompt order.
func run(t *testing.T, eng *engine.Engine, lines ...string) string {
    t.Helper()
    in := strings.NewReader(strings.Join(lines, "\n") + "\n")
    var out bytes.Buffer
    require.NoError(t, New(eng, in, &out).Run())
    return out.String()
}

func TestRun_BookCheckFreeSession(t *testing.T) {
    eng := engine.New(model.DefaultLayout())

    out := run(t, eng,
        "2", "1", "1", "P123", "Ann", "Lee", "", // book row 1 col 1
        "1", "1", "1", "", // check the same seat
        "3", "1", "1", "", // free it
        "1", "1", "1", "", // check again
        "5", // exit
    )

    assert.Contains(t, out, "Seat booked successfully with reference")
    assert.Contains(t, out, "Seat is taken.")
    assert.Contains(t, out, "Passport Number: P123")
    assert.Contains(t, out, "First Name: Ann")
    assert.Contains(t, out, "Seat has been freed.")
    assert.Contains(t, out, "Seat is available")

    // The session really freed the seat.
    res, err := eng.CheckAvailability(0, 0)
    require.NoError(t, err)
    assert.Equal(t, engine.QueryAvailable, res.Status)
}

func TestRun_MalformedAndUnknownInput(t *testing.T) {
    eng := engine.New(model.DefaultLayout())

    out := run(t, eng,
        "1", "x", "y", // non-numeric coordinates
        "1", "-1", "2", // signs are not digits
        "9",           // unknown menu option
        "4", "",       // show booking state
        "5",           // exit
    )

    assert.Equal(t, 2, strings.Count(out, "Invalid input. Row and column must be integers."))
    assert.Contains(t, out, "Invalid option. Please try again.")
    assert.Contains(t, out, "F = Free, X = Aisle, S = Storage, R = Booked")
}

func TestRun_OneBasedConversion(t *testing.T) {
    eng := engine.New(model.DefaultLayout())

    // User row 4 is the aisle (0-based index 3): booking must fail.
    out := run(t, eng, "2", "4", "1", "P1", "A", "B", "", "5")
    assert.Contains(t, out, "Seat cannot be booked.")

    // User row 1 col 1 is engine cell (0,0).
    out = run(t, eng, "2", "1", "1", "P1", "A", "B", "", "5")
    assert.Contains(t, out, "Seat booked successfully")
    res, err := eng.CheckAvailability(0, 0)
    require.NoError(t, err)
    assert.Equal(t, engine.QueryTaken, res.Status)
}

func TestRun_EndsCleanlyOnEOF(t *testing.T) {
    eng := engine.New(model.DefaultLayout())
    var out bytes.Buffer
    require.NoError(t, New(eng, strings.NewReader(""), &out).Run())
    assert.Contains(t, out.String(), "Select an option: ")
}
