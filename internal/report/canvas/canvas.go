package canvas

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/go-pdf/fpdf"
	xdraw "golang.org/x/image/draw"

	apperrors "github.com/tallerbv/taller-backend/internal/pkg/errors"
	"github.com/tallerbv/taller-backend/internal/report/style"
)

// Fixed page geometry: US Letter with letterhead margins that match the
// header and footer bands exactly, so body content never overlaps them.
// All values in PostScript points.
const (
	PtPerCm = 72.0 / 2.54

	PageWidth  = 612.0
	PageHeight = 792.0

	MarginTop    = 3.55 * PtPerCm
	MarginBottom = 3.18 * PtPerCm
	MarginSide   = 1.27 * PtPerCm

	HeaderHeight = 3.55 * PtPerCm
	FooterHeight = 3.18 * PtPerCm
)

type Config struct {
	AssetDir    string
	FontFamily  string
	FontRegular string // TTF path relative to AssetDir; empty selects the built-in Helvetica pair
	FontBold    string
	HeaderImage string // relative to AssetDir, defaults to img/header.png
	FooterImage string // relative to AssetDir, defaults to img/footer.png
	Title       string
	Author      string
	CreatedAt   time.Time // pinned so identical inputs render identical bytes
}

type state int

const (
	stateRecording state = iota
	stateClosed
)

// Canvas records page content and defers the letterhead stamp until the
// whole document has been laid out. Phase 1 appends draw ops to the current
// page and seals pages at each break; Render replays every recorded page
// onto a fresh PDF, stamping the header and footer images first, then
// finalizes the document.
type Canvas struct {
	cfg    Config
	family string
	// meter is a metrics-only engine used for text measurement while
	// recording; it never emits output.
	meter     *fpdf.Fpdf
	translate func(string) string

	pages []*page
	state state

	cursorY float64
}

type page struct {
	ops []op
}

type op interface {
	draw(pdf *fpdf.Fpdf, translate func(string) string)
}

type textOp struct {
	x, y, w float64
	text    string
	st      style.Style
}

func (t textOp) draw(pdf *fpdf.Fpdf, translate func(string) string) {
	pdf.SetFont("", fontStyle(t.st), t.st.Size)
	pdf.SetXY(t.x, t.y)
	pdf.MultiCell(t.w, t.st.Leading, translate(t.text), "", alignString(t.st.Align), false)
}

type lineOp struct {
	x1, y1, x2, y2 float64
	width          float64
}

func (l lineOp) draw(pdf *fpdf.Fpdf, _ func(string) string) {
	pdf.SetLineWidth(l.width)
	pdf.Line(l.x1, l.y1, l.x2, l.y2)
}

func fontStyle(st style.Style) string {
	if st.Bold {
		return "B"
	}
	return ""
}

func alignString(a style.Align) string {
	switch a {
	case style.AlignCenter:
		return "C"
	case style.AlignRight:
		return "R"
	case style.AlignJustify:
		return "J"
	}
	return "L"
}

func New(cfg Config) (*Canvas, error) {
	if cfg.FontFamily == "" {
		cfg.FontFamily = "Helvetica"
	}
	if cfg.HeaderImage == "" {
		cfg.HeaderImage = filepath.Join("img", "header.png")
	}
	if cfg.FooterImage == "" {
		cfg.FooterImage = filepath.Join("img", "footer.png")
	}

	cv := &Canvas{
		cfg:     cfg,
		family:  cfg.FontFamily,
		pages:   []*page{{}},
		cursorY: MarginTop,
	}

	meter, translate, err := cv.newEngine()
	if err != nil {
		return nil, err
	}
	cv.meter = meter
	cv.translate = translate
	return cv, nil
}

// newEngine builds a PDF engine with the configured fonts registered. The
// same construction serves measurement and the final render so both see
// identical font metrics.
func (cv *Canvas) newEngine() (*fpdf.Fpdf, func(string) string, error) {
	pdf := fpdf.New("P", "pt", "Letter", "")
	pdf.SetMargins(MarginSide, MarginTop, MarginSide)
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetCellMargin(0)
	// Emit catalog objects in a stable order so identical inputs produce
	// identical bytes.
	pdf.SetCatalogSort(true)

	translate := func(s string) string { return s }
	if cv.cfg.FontRegular != "" {
		regular := filepath.Join(cv.cfg.AssetDir, cv.cfg.FontRegular)
		bold := filepath.Join(cv.cfg.AssetDir, cv.cfg.FontBold)
		for _, p := range []string{regular, bold} {
			if _, err := os.Stat(p); err != nil {
				return nil, nil, fmt.Errorf("%w: font %s", apperrors.ErrAssetUnavailable, p)
			}
		}
		pdf.AddUTF8Font(cv.family, "", regular)
		pdf.AddUTF8Font(cv.family, "B", bold)
	} else {
		cv.family = "Helvetica"
		// Core fonts are cp1252; map accented text into it.
		translate = pdf.UnicodeTranslatorFromDescriptor("")
	}
	pdf.SetFont(cv.family, "", 12)
	if pdf.Err() {
		return nil, nil, fmt.Errorf("%w: %v", apperrors.ErrAssetUnavailable, pdf.Error())
	}
	return pdf, translate, nil
}

func (cv *Canvas) BodyWidth() float64  { return PageWidth - 2*MarginSide }
func (cv *Canvas) BodyLeft() float64   { return MarginSide }
func (cv *Canvas) BodyTop() float64    { return MarginTop }
func (cv *Canvas) BodyBottom() float64 { return PageHeight - MarginBottom }

func (cv *Canvas) CursorY() float64 { return cv.cursorY }

func (cv *Canvas) SetCursorY(y float64) { cv.cursorY = y }

// Advance moves the cursor down without emitting content, clamped to the
// body band; a spacer at the bottom of a page never forces a blank page.
func (cv *Canvas) Advance(h float64) {
	cv.cursorY += h
	if cv.cursorY > cv.BodyBottom() {
		cv.cursorY = cv.BodyBottom()
	}
}

func (cv *Canvas) Remaining() float64 { return cv.BodyBottom() - cv.cursorY }

func (cv *Canvas) PageCount() int { return len(cv.pages) }

// NewPage seals the current page and starts recording the next one.
func (cv *Canvas) NewPage() {
	cv.pages = append(cv.pages, &page{})
	cv.cursorY = MarginTop
}

// MeasureText returns the height of txt wrapped into the given width using
// the style's font and leading. Measurement always sees the UTF-8 string;
// the cp1252 translation for core fonts happens at draw time only.
func (cv *Canvas) MeasureText(txt string, st style.Style, w float64) float64 {
	if txt == "" {
		return 0
	}
	cv.meter.SetFont(cv.family, fontStyle(st), st.Size)
	lines := cv.meter.SplitText(txt, w)
	return float64(len(lines)) * st.Leading
}

// Text records a wrapped text block with its top-left corner at (x, y).
func (cv *Canvas) Text(x, y, w float64, txt string, st style.Style) {
	cur := cv.pages[len(cv.pages)-1]
	cur.ops = append(cur.ops, textOp{x: x, y: y, w: w, text: txt, st: st})
}

// Line records a stroked segment.
func (cv *Canvas) Line(x1, y1, x2, y2, width float64) {
	cur := cv.pages[len(cv.pages)-1]
	cur.ops = append(cur.ops, lineOp{x1: x1, y1: y1, x2: x2, y2: y2, width: width})
}

// VisitTexts calls fn for every recorded text block in page order. It is a
// read-only view for auditing a finished layout, e.g. that content stays
// inside the body band.
func (cv *Canvas) VisitTexts(fn func(pageIndex int, x, y, w float64, text string, st style.Style)) {
	for i, pg := range cv.pages {
		for _, o := range pg.ops {
			if t, ok := o.(textOp); ok {
				fn(i, t.x, t.y, t.w, t.text, t.st)
			}
		}
	}
}

// Render replays every recorded page in order, stamping the letterhead
// underlay (header band at the top margin, footer band at the bottom margin)
// before the page content, then finalizes the document into w. The canvas is
// closed afterwards; rendering twice is an error.
func (cv *Canvas) Render(w io.Writer) error {
	if cv.state == stateClosed {
		return fmt.Errorf("canvas already rendered")
	}
	cv.state = stateClosed

	headerPath := filepath.Join(cv.cfg.AssetDir, cv.cfg.HeaderImage)
	footerPath := filepath.Join(cv.cfg.AssetDir, cv.cfg.FooterImage)
	underlay, err := composeLetterhead(headerPath, footerPath)
	if err != nil {
		return err
	}

	pdf, translate, err := cv.newEngine()
	if err != nil {
		return err
	}
	pdf.SetTitle(cv.cfg.Title, true)
	pdf.SetAuthor(cv.cfg.Author, true)
	created := cv.cfg.CreatedAt
	if created.IsZero() {
		created = time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC)
	}
	pdf.SetCreationDate(created)
	pdf.SetModificationDate(created)

	imgOpts := fpdf.ImageOptions{ImageType: "PNG", ReadDpi: false}
	pdf.RegisterImageOptionsReader("letterhead", imgOpts, bytes.NewReader(underlay))
	for _, pg := range cv.pages {
		pdf.AddPage()
		pdf.ImageOptions("letterhead", 0, 0, PageWidth, PageHeight, false, imgOpts, 0, "")
		pdf.SetDrawColor(0, 0, 0)
		for _, o := range pg.ops {
			o.draw(pdf, translate)
		}
	}

	if pdf.Err() {
		return fmt.Errorf("render pages: %w", pdf.Error())
	}
	return pdf.Output(w)
}

// underlayScale is the pixel density of the composed letterhead, in pixels
// per point.
const underlayScale = 2

// composeLetterhead scales the header and footer PNGs into their margin
// bands on a single white page-sized image. One registered image keeps the
// PDF object order independent of map iteration, which two equal-width
// XObjects would not be.
func composeLetterhead(headerPath, footerPath string) ([]byte, error) {
	header, err := loadPNG(headerPath)
	if err != nil {
		return nil, err
	}
	footer, err := loadPNG(footerPath)
	if err != nil {
		return nil, err
	}

	width := int(PageWidth * underlayScale)
	height := int(PageHeight * underlayScale)
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(dst, dst.Bounds(), image.White, image.Point{}, draw.Src)

	// The bands fill the margins exactly; aspect ratio is intentionally not
	// preserved.
	scale := float64(underlayScale)
	headerRect := image.Rect(0, 0, width, int(HeaderHeight*scale))
	footerRect := image.Rect(0, height-int(FooterHeight*scale), width, height)
	xdraw.ApproxBiLinear.Scale(dst, headerRect, header, header.Bounds(), xdraw.Over, nil)
	xdraw.ApproxBiLinear.Scale(dst, footerRect, footer, footer.Bounds(), xdraw.Over, nil)

	var buf bytes.Buffer
	if err := png.Encode(&buf, dst); err != nil {
		return nil, fmt.Errorf("encode letterhead: %w", err)
	}
	return buf.Bytes(), nil
}

func loadPNG(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: image %s", apperrors.ErrAssetUnavailable, path)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%w: image %s: %v", apperrors.ErrAssetUnavailable, path, err)
	}
	return img, nil
}
