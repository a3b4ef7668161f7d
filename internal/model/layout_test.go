package model

import (
    "testing"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"
)

func TestParseLayout_ReferenceCabin(t *testing.T) {
    l, err := ParseLayout(DefaultLayoutSpec)
    require.NoError(t, err)

    assert.Equal(t, 7, l.Rows)
    assert.Equal(t, 4, l.Columns)

    // Row index 3 is the aisle.
    for col := 0; col < 4; col++ {
        assert.Equal(t, CellAisle, l.Cells[3][col])
    }
    // Rows 5 and 6 end with two storage spaces.
    for _, row := range []int{5, 6} {
        assert.Equal(t, CellFree, l.Cells[row][0])
        assert.Equal(t, CellFree, l.Cells[row][1])
        assert.Equal(t, CellStorage, l.Cells[row][2])
        assert.Equal(t, CellStorage, l.Cells[row][3])
    }
}

func TestParseLayout_Errors(t *testing.T) {
    _, err := ParseLayout("")
    assert.ErrorIs(t, err, ErrEmptyLayout)

    _, err = ParseLayout("FFFF;FF")
    assert.Error(t, err, "ragged rows must be rejected")

    _, err = ParseLayout("FFQF")
    assert.Error(t, err, "unknown seat codes must be rejected")
}

func TestParseLayout_CaseAndWhitespace(t *testing.T) {
    l, err := ParseLayout(" ffss ; XXXX ")
    require.NoError(t, err)
    assert.Equal(t, 2, l.Rows)
    assert.Equal(t, CellStorage, l.Cells[0][2])
    assert.Equal(t, CellAisle, l.Cells[1][0])
}

func TestCellBlocked(t *testing.T) {
    assert.True(t, Cell{Kind: CellAisle}.Blocked())
    assert.True(t, Cell{Kind: CellStorage}.Blocked())
    assert.False(t, Cell{Kind: CellFree}.Blocked())
    assert.False(t, Cell{Kind: CellBooked, Reference: "AB12CD34"}.Blocked())
}
