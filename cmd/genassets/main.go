package main

import (
	"flag"
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/tallerbv/taller-backend/internal/report"
)

// genassets renders the letterhead header and footer PNGs the report
// endpoints stamp on every page. Pixel sizes are 200 dpi equivalents of the
// US Letter width and the 3.55 / 3.18 cm margin bands.
const (
	pageWidthPx    = 1700
	headerHeightPx = 280
	footerHeightPx = 250
)

func main() {
	outDir := flag.String("out", "assets/img", "output directory for header.png and footer.png")
	profilePath := flag.String("profile", "", "shop profile YAML (optional)")
	flag.Parse()

	profile, err := report.LoadProfile(*profilePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load profile: %v\n", err)
		os.Exit(1)
	}

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "create output dir: %v\n", err)
		os.Exit(1)
	}

	boldFace, err := face(gobold.TTF, 96)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load bold font: %v\n", err)
		os.Exit(1)
	}
	regularFace, err := face(goregular.TTF, 40)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load regular font: %v\n", err)
		os.Exit(1)
	}

	headerPath := filepath.Join(*outDir, "header.png")
	if err := renderHeader(headerPath, profile, boldFace, regularFace); err != nil {
		fmt.Fprintf(os.Stderr, "render header: %v\n", err)
		os.Exit(1)
	}
	footerPath := filepath.Join(*outDir, "footer.png")
	if err := renderFooter(footerPath, profile, regularFace); err != nil {
		fmt.Fprintf(os.Stderr, "render footer: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("wrote %s and %s\n", headerPath, footerPath)
}

func face(ttf []byte, size float64) (font.Face, error) {
	parsed, err := truetype.Parse(ttf)
	if err != nil {
		return nil, err
	}
	return truetype.NewFace(parsed, &truetype.Options{Size: size}), nil
}

var bandColor = color.NRGBA{R: 0x1f, G: 0x3a, B: 0x5f, A: 0xff}

func renderHeader(path string, profile report.Profile, title, detail font.Face) error {
	dc := gg.NewContext(pageWidthPx, headerHeightPx)
	dc.SetColor(color.White)
	dc.Clear()

	dc.SetColor(bandColor)
	dc.DrawRectangle(0, 0, pageWidthPx, headerHeightPx-24)
	dc.Fill()

	dc.SetColor(color.White)
	dc.SetFontFace(title)
	dc.DrawStringAnchored(profile.ShopName, pageWidthPx/2, headerHeightPx*0.42, 0.5, 0.5)

	dc.SetFontFace(detail)
	dc.DrawStringAnchored("Servicios de mecánica automotriz", pageWidthPx/2, headerHeightPx*0.78, 0.5, 0.5)

	return dc.SavePNG(path)
}

func renderFooter(path string, profile report.Profile, detail font.Face) error {
	dc := gg.NewContext(pageWidthPx, footerHeightPx)
	dc.SetColor(color.White)
	dc.Clear()

	dc.SetColor(bandColor)
	dc.DrawRectangle(0, 24, pageWidthPx, footerHeightPx-24)
	dc.Fill()

	dc.SetColor(color.White)
	dc.SetFontFace(detail)
	dc.DrawStringAnchored(profile.ShopName+" | Moneda: "+profile.Currency, pageWidthPx/2, footerHeightPx*0.55, 0.5, 0.5)

	return dc.SavePNG(path)
}
