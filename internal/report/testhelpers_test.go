package report

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fogleman/gg"
	"github.com/shopspring/decimal"

	"github.com/tallerbv/taller-backend/internal/report/layout"
	"github.com/tallerbv/taller-backend/internal/types"
)

func mustMoney(tb testing.TB, s string) decimal.Decimal {
	tb.Helper()
	d, err := decimal.NewFromString(s)
	if err != nil {
		tb.Fatalf("bad decimal literal %q: %v", s, err)
	}
	return d
}

// testConfig writes a letterhead pair into a temp asset dir so the builders
// can render end to end with the built-in font pair.
func testConfig(tb testing.TB) Config {
	tb.Helper()
	dir := tb.TempDir()
	imgDir := filepath.Join(dir, "img")
	if err := os.MkdirAll(imgDir, 0o755); err != nil {
		tb.Fatalf("mkdir img: %v", err)
	}
	for name, c := range map[string]color.NRGBA{
		"header.png": {R: 0x20, G: 0x40, B: 0x80, A: 0xff},
		"footer.png": {R: 0x80, G: 0x40, B: 0x20, A: 0xff},
	} {
		dc := gg.NewContext(40, 12)
		dc.SetColor(c)
		dc.Clear()
		if err := dc.SavePNG(filepath.Join(imgDir, name)); err != nil {
			tb.Fatalf("write %s: %v", name, err)
		}
	}
	return Config{AssetDir: dir}
}

func fixtureWorkOrder(tb testing.TB) (*types.WorkOrder, []*types.PhysicalState) {
	tb.Helper()
	wo := &types.WorkOrder{
		ID:        7,
		EntryDate: time.Date(2021, 6, 14, 9, 30, 0, 0, time.UTC),
		Vehicle:   &types.Vehicle{Mark: "Lada", Model: "2107", Tag: "P123456"},
		Mechanic:  &types.Mechanic{Name: "Carlos", LastName: "Reyes"},
		Assistant: &types.Mechanic{Name: "Luis", LastName: "Paz"},
		Enterprise: &types.Enterprise{
			Name:    "Transportes Oriente",
			Phone:   "53512345",
			Address: "Calle 1ra e/ A y B",
		},
		Estimation:            mustMoney(tb, "150.00"),
		EstimatedTime:         3,
		Mileage:               20000,
		Defection:             "Frenos desgastados",
		WorkDone:              "Cambio de pastillas y rectificado de discos",
		DeliveryDate:          time.Date(2021, 6, 18, 0, 0, 0, 0, time.UTC),
		ComplaintsSuggestions: "Ninguna",
		PaymentMethod:         &types.PaymentMethod{Type: "Transferencia"},
		WorkforceCost:         mustMoney(tb, "80.00"),
		DescriptionRawParts:   "Pastillas de freno, liquido de frenos",
		Amount:                mustMoney(tb, "45.50"),
		ServiceGuarantee:      &types.ServiceGuarantee{Description: "30 dias de garantia sobre la mano de obra"},
	}
	states := []*types.PhysicalState{
		{Part: &types.Part{Name: "Carrocería"}, Description: "Rayaduras en puerta trasera"},
		{Part: &types.Part{Name: "Parabrisas"}, Description: "Sin daños"},
	}
	return wo, states
}

func fixtureInvoice(tb testing.TB) (*types.Invoice, []*types.Activity) {
	tb.Helper()
	wo, _ := fixtureWorkOrder(tb)
	inv := &types.Invoice{
		WorkOrderID: wo.ID,
		WorkOrder:   wo,
		InvoiceType: &types.InvoiceType{Type: "servicio", Title: "FACTURA DE SERVICIOS"},
		Contact: &types.Contact{
			Name:       "Taller Buen Vecino",
			Address:    "Ave. Central 45",
			Email:      "taller@example.cu",
			Phone:      "53598765",
			TCP:        "Evelio Mojena Alvarez",
			NIT:        "12345678901",
			NoCheckCUP: "0598712345671234",
		},
		ServicesProvided:   mustMoney(tb, "100.00"),
		ExpendableMaterial: mustMoney(tb, "20.00"),
		Workforce:          mustMoney(tb, "30.00"),
		Date:               time.Date(2021, 6, 20, 12, 0, 0, 0, time.UTC),
	}
	activities := []*types.Activity{
		{
			Code:            101,
			Description:     "Cambio de pastillas",
			UnitMeasurement: &types.UnitMeasurement{Name: "u"},
			HoursWorked:     mustMoney(tb, "1.50"),
			Provenance:      &types.Provenance{Provenance: "Taller"},
			Price:           mustMoney(tb, "15.00"),
			Quantity:        2,
		},
	}
	return inv, activities
}

// cellTexts flattens a table into the text of every non-blank cell, in row
// major order.
func cellTexts(t *layout.Table) []string {
	var out []string
	for _, row := range t.Rows {
		for _, cell := range row {
			switch c := cell.(type) {
			case layout.TextCell:
				out = append(out, c.Text)
			case layout.StackedCell:
				for _, b := range c.Blocks {
					out = append(out, b.Text)
				}
			}
		}
	}
	return out
}

func containsText(t *layout.Table, want string) bool {
	for _, s := range cellTexts(t) {
		if s == want {
			return true
		}
	}
	return false
}
