package layout

import (
	"fmt"

	apperrors "github.com/tallerbv/taller-backend/internal/pkg/errors"
	"github.com/tallerbv/taller-backend/internal/report/canvas"
)

// Draw lays the table out against the canvas body width, paginates rows
// against the remaining body height and records text plus grid strokes.
// Rows tied together by a multi-row merge move to the next page as a unit.
// A row or merge-tied block taller than one full body height cannot be
// placed without spilling into the footer band and is rejected.
func (t *Table) Draw(cv *canvas.Canvas) error {
	n, err := t.normalize()
	if err != nil {
		return err
	}

	nRows := len(n.rows)
	nCols := len(t.ColRatios)

	widths := make([]float64, nCols)
	colX := make([]float64, nCols+1)
	colX[0] = cv.BodyLeft()
	for c, ratio := range t.ColRatios {
		widths[c] = ratio * cv.BodyWidth()
		colX[c+1] = colX[c] + widths[c]
	}

	spanWidth := func(s span) float64 {
		var w float64
		for c := s.c0; c <= s.c1; c++ {
			w += widths[c]
		}
		return w
	}

	// Row heights: tallest cell content plus vertical padding. Content of a
	// multi-row merge is spread over its rows; any deficit goes to the last
	// covered row.
	heights := make([]float64, nRows)
	for r, row := range n.rows {
		h := 2 * padV
		for c, cell := range row {
			if n.covered[r][c] {
				idx := n.anchor[r][c]
				if idx < 0 {
					continue
				}
				s := n.spans[idx]
				if s.r0 != s.r1 {
					continue
				}
				if ch := t.contentHeight(cv, cell, spanWidth(s)) + 2*padV; ch > h {
					h = ch
				}
				continue
			}
			if ch := t.contentHeight(cv, cell, widths[c]) + 2*padV; ch > h {
				h = ch
			}
		}
		heights[r] = h
	}
	for _, s := range n.spans {
		if s.r0 == s.r1 {
			continue
		}
		need := t.contentHeight(cv, n.rows[s.r0][s.c0], spanWidth(s)) + 2*padV
		var avail float64
		for r := s.r0; r <= s.r1; r++ {
			avail += heights[r]
		}
		if avail < need {
			heights[s.r1] += need - avail
		}
	}

	// blockEnd[r] is the last row that must stay on the same page as r.
	blockEnd := func(r int) int {
		end := r
		for {
			grown := false
			for _, s := range n.spans {
				if s.r0 <= end && s.r1 > end && s.r1 >= r {
					end = s.r1
					grown = true
				}
			}
			if !grown {
				return end
			}
		}
	}

	segStart := 0
	segTop := cv.CursorY()

	flushBorders := func(lastRow int) {
		if t.Boxed && lastRow >= segStart {
			t.drawBorders(cv, n, segStart, lastRow, segTop, colX, widths, heights)
		}
	}

	bodyHeight := cv.BodyBottom() - cv.BodyTop()

	r := 0
	for r < nRows {
		end := blockEnd(r)
		var blockH float64
		for i := r; i <= end; i++ {
			blockH += heights[i]
		}
		if blockH > bodyHeight {
			return fmt.Errorf("%w: rows %d-%d are %.1fpt, taller than the %.1fpt page body", apperrors.ErrInvalidLayout, r, end, blockH, bodyHeight)
		}
		if blockH > cv.Remaining() && cv.CursorY() > cv.BodyTop() {
			flushBorders(r - 1)
			cv.NewPage()
			segStart = r
			segTop = cv.CursorY()
		}
		for i := r; i <= end; i++ {
			t.drawRow(cv, n, i, cv.CursorY(), colX, widths, heights, spanWidth)
			cv.SetCursorY(cv.CursorY() + heights[i])
		}
		r = end + 1
	}
	flushBorders(nRows - 1)
	return nil
}

func (t *Table) contentHeight(cv *canvas.Canvas, cell Cell, cellWidth float64) float64 {
	w := cellWidth - 2*padH
	switch c := cell.(type) {
	case TextCell:
		return cv.MeasureText(c.Text, c.Style, w)
	case StackedCell:
		var h float64
		for _, b := range c.Blocks {
			h += cv.MeasureText(b.Text, b.Style, w)
		}
		return h
	}
	return 0
}

func (t *Table) drawRow(cv *canvas.Canvas, n *normalized, r int, rowY float64, colX, widths, heights []float64, spanWidth func(span) float64) {
	for c, cell := range n.rows[r] {
		cellW := widths[c]
		regionH := heights[r]
		valign := VTop

		if n.covered[r][c] {
			idx := n.anchor[r][c]
			if idx < 0 {
				continue // drawn from its anchor
			}
			s := n.spans[idx]
			cellW = spanWidth(s)
			regionH = 0
			for i := s.r0; i <= s.r1; i++ {
				regionH += heights[i]
			}
			valign = s.valign
		}

		if _, ok := cell.(BlankCell); ok {
			continue
		}

		contentH := t.contentHeight(cv, cell, cellW)
		yOff := padV
		if valign == VMiddle {
			if off := (regionH - contentH) / 2; off > yOff {
				yOff = off
			}
		}

		x := colX[c] + padH
		w := cellW - 2*padH
		y := rowY + yOff

		switch cc := cell.(type) {
		case TextCell:
			cv.Text(x, y, w, cc.Text, cc.Style)
		case StackedCell:
			for _, b := range cc.Blocks {
				cv.Text(x, y, w, b.Text, b.Style)
				y += cv.MeasureText(b.Text, b.Style, w)
			}
		}
	}
}

// drawBorders strokes the box around the rows drawn on the current page and
// the inner grid, skipping edges that fall inside a merge region.
func (t *Table) drawBorders(cv *canvas.Canvas, n *normalized, r0, r1 int, yTop float64, colX, widths, heights []float64) {
	nCols := len(widths)

	rowY := make([]float64, r1-r0+2)
	rowY[0] = yTop
	for i := r0; i <= r1; i++ {
		rowY[i-r0+1] = rowY[i-r0] + heights[i]
	}
	yBot := rowY[len(rowY)-1]
	xLeft := colX[0]
	xRight := colX[nCols]

	// Box
	cv.Line(xLeft, yTop, xRight, yTop, gridLineWidth)
	cv.Line(xLeft, yBot, xRight, yBot, gridLineWidth)
	cv.Line(xLeft, yTop, xLeft, yBot, gridLineWidth)
	cv.Line(xRight, yTop, xRight, yBot, gridLineWidth)

	// Inner vertical edges
	for c := 0; c < nCols-1; c++ {
		for r := r0; r <= r1; r++ {
			if n.sameSpan(r, c, r, c+1) {
				continue
			}
			cv.Line(colX[c+1], rowY[r-r0], colX[c+1], rowY[r-r0+1], gridLineWidth)
		}
	}

	// Inner horizontal edges
	for r := r0; r < r1; r++ {
		for c := 0; c < nCols; c++ {
			if n.sameSpan(r, c, r+1, c) {
				continue
			}
			cv.Line(colX[c], rowY[r-r0+1], colX[c+1], rowY[r-r0+1], gridLineWidth)
		}
	}
}
