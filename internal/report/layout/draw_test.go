package layout

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	apperrors "github.com/tallerbv/taller-backend/internal/pkg/errors"
	"github.com/tallerbv/taller-backend/internal/report/style"
)

func TestDrawAdvancesCursorByRowHeights(t *testing.T) {
	cv := testCanvas(t)
	start := cv.CursorY()

	st := plainStyle()
	table := &Table{
		Rows: [][]Cell{
			{Text(st, "a"), Text(st, "b")},
			{Text(st, "c"), Text(st, "d")},
		},
		ColRatios: []float64{0.5, 0.5},
	}
	if err := table.Draw(cv); err != nil {
		t.Fatalf("draw: %v", err)
	}

	// Two single-line rows: (leading + 2*padV) each.
	want := start + 2*(st.Leading+2*padV)
	if got := cv.CursorY(); got != want {
		t.Fatalf("expected cursor at %v, got %v", want, got)
	}
	if cv.PageCount() != 1 {
		t.Fatalf("expected a single page, got %d", cv.PageCount())
	}
}

func TestDrawPaginatesLongTable(t *testing.T) {
	cv := testCanvas(t)
	st := plainStyle()

	var rows [][]Cell
	for i := 0; i < 100; i++ {
		rows = append(rows, []Cell{Text(st, fmt.Sprintf("fila %d", i))})
	}
	table := &Table{Rows: rows, ColRatios: []float64{1.0}, Boxed: true}
	if err := table.Draw(cv); err != nil {
		t.Fatalf("draw: %v", err)
	}

	rowH := st.Leading + 2*padV
	perPage := int((cv.BodyBottom() - cv.BodyTop()) / rowH)
	wantPages := (100 + perPage - 1) / perPage
	if got := cv.PageCount(); got != wantPages {
		t.Fatalf("expected %d pages for 100 rows, got %d", wantPages, got)
	}
}

func TestDrawKeepsMultiRowSpanBlockTogether(t *testing.T) {
	cv := testCanvas(t)
	st := plainStyle()
	rowH := st.Leading + 2*padV

	// Leave room for one row but not two; the two rows are tied by a merge
	// and must move to the next page as a unit.
	cv.SetCursorY(cv.BodyBottom() - rowH - 1)

	table := &Table{
		Rows: [][]Cell{
			{Text(st, "etiqueta"), Text(st, "a")},
			{Blank(), Text(st, "b")},
		},
		ColRatios: []float64{0.5, 0.5},
		Spans:     []Span{{R0: 0, C0: 0, R1: 1, C1: 0, VAlign: VMiddle}},
	}
	if err := table.Draw(cv); err != nil {
		t.Fatalf("draw: %v", err)
	}

	if cv.PageCount() != 2 {
		t.Fatalf("expected the block to break to page 2, got %d pages", cv.PageCount())
	}
	want := cv.BodyTop() + 2*rowH
	if got := cv.CursorY(); got != want {
		t.Fatalf("expected cursor at %v on the new page, got %v", want, got)
	}
}

func TestDrawRejectsBlockTallerThanPageBody(t *testing.T) {
	cv := testCanvas(t)
	st := plainStyle()

	// Enough single-line paragraphs stacked in one cell to exceed a full
	// body height.
	lines := int((cv.BodyBottom()-cv.BodyTop())/st.Leading) + 2
	var blocks []TextCell
	for i := 0; i < lines; i++ {
		blocks = append(blocks, Text(st, fmt.Sprintf("línea %d", i)))
	}
	table := &Table{
		Rows:      [][]Cell{{Stack(blocks...)}},
		ColRatios: []float64{1.0},
	}
	err := table.Draw(cv)
	if !errors.Is(err, apperrors.ErrInvalidLayout) {
		t.Fatalf("expected ErrInvalidLayout for over-tall row, got %v", err)
	}
}

func TestDrawKeepsTextInsideBodyBand(t *testing.T) {
	cv := testCanvas(t)
	st := style.Style{Size: 10, Leading: 12, Align: style.AlignJustify}

	long := strings.Repeat("palabra larga del taller ", 12)
	var rows [][]Cell
	for i := 0; i < 120; i++ {
		rows = append(rows, []Cell{Text(st, fmt.Sprintf("%d", i)), Text(st, long)})
	}
	table := &Table{
		Rows:      rows,
		ColRatios: []float64{0.2, 0.8},
		Boxed:     true,
	}
	if err := table.Draw(cv); err != nil {
		t.Fatalf("draw: %v", err)
	}
	if cv.PageCount() < 3 {
		t.Fatalf("expected at least 3 pages, got %d", cv.PageCount())
	}

	cv.VisitTexts(func(page int, x, y, w float64, text string, ts style.Style) {
		if y < cv.BodyTop() {
			t.Fatalf("page %d: text %q starts at %v, above the body top %v", page, text, y, cv.BodyTop())
		}
		if bottom := y + cv.MeasureText(text, ts, w); bottom > cv.BodyBottom()+1e-9 {
			t.Fatalf("page %d: text %q ends at %v, below the body bottom %v", page, text, bottom, cv.BodyBottom())
		}
	})
}

func TestDrawSplitsUnmergedRowsAcrossPages(t *testing.T) {
	cv := testCanvas(t)
	st := plainStyle()
	rowH := st.Leading + 2*padV

	cv.SetCursorY(cv.BodyBottom() - rowH - 1)

	table := &Table{
		Rows: [][]Cell{
			{Text(st, "a")},
			{Text(st, "b")},
		},
		ColRatios: []float64{1.0},
	}
	if err := table.Draw(cv); err != nil {
		t.Fatalf("draw: %v", err)
	}

	if cv.PageCount() != 2 {
		t.Fatalf("expected 2 pages, got %d", cv.PageCount())
	}
	want := cv.BodyTop() + rowH
	if got := cv.CursorY(); got != want {
		t.Fatalf("expected only the second row on page 2, cursor %v, got %v", want, got)
	}
}
