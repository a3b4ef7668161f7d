package model

import (
    "errors"
    "fmt"
    "strings"
)

// DefaultLayoutSpec is the reference cabin: seven rows of four seats,
// the middle row given over to the aisle and the two rear rows ending
// in storage spaces.  The encoding is one rune per seat (F free,
// X aisle, S storage), rows separated by semicolons, front row first.
const DefaultLayoutSpec = "FFFF;FFFF;FFFF;XXXX;FFFF;FFSS;FFSS"

// ErrEmptyLayout is returned when a layout spec contains no rows.
var ErrEmptyLayout = errors.New("layout: empty spec")

// Layout describes the shape of a cabin grid: its dimensions and
// which positions are permanently blocked.  A Layout is pure
// configuration; it is fixed once the engine is built from it.
//
// Fields:
//  Rows    – number of seat rows, front to back.
//  Columns – seats per row.
//  Cells   – initial classification of every position (FREE, AISLE, STORAGE).
type Layout struct {
    Rows    int        // grid extent, first coordinate
    Columns int        // grid extent, second coordinate
    Cells   [][]CellKind // Rows x Columns initial kinds
}

// ParseLayout decodes a layout spec string into a Layout.  Rows are
// separated by ';', each row is a sequence of F/X/S runes, and every
// row must have the same width.  Parsing is case-insensitive and
// ignores surrounding whitespace on each row.
func ParseLayout(spec string) (Layout, error) {
    parts := strings.Split(spec, ";")
    rows := make([][]CellKind, 0, len(parts))
    width := 0
    for i, part := range parts {
        part = strings.TrimSpace(strings.ToUpper(part))
        if part == "" {
            continue
        }
        row := make([]CellKind, 0, len(part))
        for _, r := range part {
            switch r {
            case 'F':
                row = append(row, CellFree)
            case 'X':
                row = append(row, CellAisle)
            case 'S':
                row = append(row, CellStorage)
            default:
                return Layout{}, fmt.Errorf("layout: row %d: unknown seat code %q", i+1, string(r))
            }
        }
        if width == 0 {
            width = len(row)
        } else if len(row) != width {
            return Layout{}, fmt.Errorf("layout: row %d has %d seats, want %d", i+1, len(row), width)
        }
        rows = append(rows, row)
    }
    if len(rows) == 0 {
        return Layout{}, ErrEmptyLayout
    }
    return Layout{Rows: len(rows), Columns: width, Cells: rows}, nil
}

// DefaultLayout returns the reference 7x4 cabin.  The spec constant is
// known to be valid, so a parse failure here is a programming error.
func DefaultLayout() Layout {
    l, err := ParseLayout(DefaultLayoutSpec)
    if err != nil {
        panic(err)
    }
    return l
}
