package layout

import "github.com/tallerbv/taller-backend/internal/report/style"

// Cell is the tagged variant consumed by the table builder: a single styled
// text block, a vertical stack of styled text blocks, or an explicit blank
// placeholder that only satisfies row-length parity under a merge.
type Cell interface {
	cell()
}

type TextCell struct {
	Text  string
	Style style.Style
}

func (TextCell) cell() {}

type StackedCell struct {
	Blocks []TextCell
}

func (StackedCell) cell() {}

type BlankCell struct{}

func (BlankCell) cell() {}

func Text(st style.Style, text string) TextCell { return TextCell{Text: text, Style: st} }

func Stack(blocks ...TextCell) StackedCell { return StackedCell{Blocks: blocks} }

func Blank() BlankCell { return BlankCell{} }
