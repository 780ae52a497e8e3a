package layout

import (
	"fmt"
	"math"

	apperrors "github.com/tallerbv/taller-backend/internal/pkg/errors"
)

type VAlign int

const (
	VTop VAlign = iota
	VMiddle
)

// Span is an inclusive rectangle of grid cells rendered as one cell.
// Coordinates may be negative to count from the end, matching the row and
// column indices the report builders declare.
type Span struct {
	R0, C0, R1, C1 int
	VAlign         VAlign
}

// Table arranges cells into a grid with column-width ratios and merge
// regions. Boxed tables get a box border plus inner grid lines.
type Table struct {
	Rows      [][]Cell
	ColRatios []float64
	Spans     []Span
	Boxed     bool
}

// Cell padding, in pt. Matches common flowable-table defaults.
const (
	padH = 6.0
	padV = 3.0
)

const gridLineWidth = 0.5

type span struct {
	r0, c0, r1, c1 int
	valign         VAlign
}

// normalized carries a validated table ready for measurement and drawing.
type normalized struct {
	rows  [][]Cell // every row padded to the full column count
	spans []span
	// anchor[r][c] indexes spans when (r,c) is a span's top-left cell, -1
	// otherwise; covered[r][c] is true for every cell inside a span.
	anchor  [][]int
	covered [][]bool
}

func normIndex(i, n int) int {
	if i < 0 {
		return n + i
	}
	return i
}

func (t *Table) normalize() (*normalized, error) {
	nCols := len(t.ColRatios)
	nRows := len(t.Rows)
	if nCols == 0 || nRows == 0 {
		return nil, fmt.Errorf("%w: empty table", apperrors.ErrInvalidLayout)
	}

	var sum float64
	for _, r := range t.ColRatios {
		if r <= 0 {
			return nil, fmt.Errorf("%w: non-positive column ratio %v", apperrors.ErrInvalidLayout, r)
		}
		sum += r
	}
	if math.Abs(sum-1.0) > 1e-9 {
		return nil, fmt.Errorf("%w: column ratios sum to %v, want 1.0", apperrors.ErrInvalidLayout, sum)
	}

	rows := make([][]Cell, nRows)
	for i, row := range t.Rows {
		if len(row) > nCols {
			return nil, fmt.Errorf("%w: row %d has %d cells for %d columns", apperrors.ErrInvalidLayout, i, len(row), nCols)
		}
		padded := make([]Cell, nCols)
		copy(padded, row)
		for c := len(row); c < nCols; c++ {
			padded[c] = Blank()
		}
		rows[i] = padded
	}

	n := &normalized{
		rows:    rows,
		anchor:  make([][]int, nRows),
		covered: make([][]bool, nRows),
	}
	for r := range n.anchor {
		n.anchor[r] = make([]int, nCols)
		n.covered[r] = make([]bool, nCols)
		for c := range n.anchor[r] {
			n.anchor[r][c] = -1
		}
	}

	for _, s := range t.Spans {
		ns := span{
			r0:     normIndex(s.R0, nRows),
			c0:     normIndex(s.C0, nCols),
			r1:     normIndex(s.R1, nRows),
			c1:     normIndex(s.C1, nCols),
			valign: s.VAlign,
		}
		if ns.r0 < 0 || ns.r1 >= nRows || ns.c0 < 0 || ns.c1 >= nCols || ns.r0 > ns.r1 || ns.c0 > ns.c1 {
			return nil, fmt.Errorf("%w: span %+v out of range", apperrors.ErrInvalidLayout, s)
		}
		idx := len(n.spans)
		for r := ns.r0; r <= ns.r1; r++ {
			for c := ns.c0; c <= ns.c1; c++ {
				if n.covered[r][c] {
					return nil, fmt.Errorf("%w: overlapping merge regions at (%d,%d)", apperrors.ErrInvalidLayout, r, c)
				}
				n.covered[r][c] = true
			}
		}
		n.anchor[ns.r0][ns.c0] = idx
		n.spans = append(n.spans, ns)
	}
	return n, nil
}

// spanAt returns the span covering (r, c), if any.
func (n *normalized) spanAt(r, c int) (span, bool) {
	if !n.covered[r][c] {
		return span{}, false
	}
	for _, s := range n.spans {
		if r >= s.r0 && r <= s.r1 && c >= s.c0 && c <= s.c1 {
			return s, true
		}
	}
	return span{}, false
}

func (n *normalized) sameSpan(r1, c1, r2, c2 int) bool {
	a, okA := n.spanAt(r1, c1)
	b, okB := n.spanAt(r2, c2)
	return okA && okB && a == b
}
