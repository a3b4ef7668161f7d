package engine

import (
    "strings"
    "testing"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "github.com/avionix/cabin-seat-booking/internal/model"
)

func TestReferences_DistinctAcrossFullCabin(t *testing.T) {
    e := New(model.DefaultLayout())

    // Book every bookable seat; each booking must mint a distinct,
    // well-formed reference.
    seen := make(map[string]struct{})
    for row := 0; row < e.Rows(); row++ {
        for col := 0; col < e.Columns(); col++ {
            res := e.BookSeat(row, col, "P", "A", "B")
            if res.Status != BookBooked {
                continue // blocked position
            }
            require.Len(t, res.Reference, ReferenceLength)
            for _, r := range res.Reference {
                assert.True(t, strings.ContainsRune(referenceAlphabet, r),
                    "reference %q contains %q outside the alphabet", res.Reference, r)
            }
            _, dup := seen[res.Reference]
            require.False(t, dup, "duplicate reference %q", res.Reference)
            seen[res.Reference] = struct{}{}
        }
    }

    // 7x4 minus one aisle row of 4 and four storage spaces.
    assert.Len(t, seen, 20)
}

func TestNewReference_SkipsLiveLedgerKeys(t *testing.T) {
    e := New(model.DefaultLayout())

    // Pre-seed the ledger with a code and make sure minting never
    // returns a key that is already live.
    e.ledger["AAAA1111"] = model.Booking{Reference: "AAAA1111"}
    for i := 0; i < 1000; i++ {
        ref := e.newReference()
        assert.NotEqual(t, "AAAA1111", ref)
        assert.Len(t, ref, ReferenceLength)
    }
}
