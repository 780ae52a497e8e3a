package report

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/tallerbv/taller-backend/internal/report/canvas"
	"github.com/tallerbv/taller-backend/internal/report/layout"
	"github.com/tallerbv/taller-backend/internal/report/style"
	"github.com/tallerbv/taller-backend/internal/types"
)

func invoiceSheet() *style.Sheet {
	s := style.NewSheet()
	s.Add("normal", style.Style{Size: 11, Leading: 13.2})
	s.Derive("normalCenter", "normal", func(st *style.Style) { st.Align = style.AlignCenter })
	s.Derive("normalRight", "normal", func(st *style.Style) { st.Align = style.AlignRight })
	s.Derive("bold", "normal", func(st *style.Style) { st.Bold = true })
	s.Derive("boldRight", "bold", func(st *style.Style) { st.Align = style.AlignRight })
	s.Derive("boldCenter", "bold", func(st *style.Style) { st.Align = style.AlignCenter })
	return s
}

// invoiceContactTable is the unboxed contact block: the registered TCP the
// invoice is issued on behalf of.
func invoiceContactTable(inv *types.Invoice, s *style.Sheet) *layout.Table {
	rows := [][]layout.Cell{
		{layout.Text(s.Get("boldCenter"), inv.InvoiceType.Title)},
		{
			layout.Text(s.Get("boldRight"), "Nombre:"),
			layout.Text(s.Get("normal"), inv.Contact.Name),
			layout.Text(s.Get("boldRight"), "TCP:"),
			layout.Text(s.Get("normal"), inv.Contact.TCP),
		},
		{
			layout.Text(s.Get("boldRight"), "Dirección:"),
			layout.Text(s.Get("normal"), inv.Contact.Address),
			layout.Text(s.Get("boldRight"), "Nit:"),
			layout.Text(s.Get("normal"), inv.Contact.NIT),
		},
		{
			layout.Text(s.Get("boldRight"), "Email:"),
			layout.Text(s.Get("normal"), inv.Contact.Email),
			layout.Text(s.Get("boldRight"), "No.cuenta CUP:"),
			layout.Text(s.Get("normal"), inv.Contact.NoCheckCUP),
		},
		{
			layout.Text(s.Get("boldRight"), "Teléfono:"),
			layout.Text(s.Get("normal"), inv.Contact.Phone),
		},
	}
	return &layout.Table{
		Rows:      rows,
		ColRatios: []float64{0.11, 0.39, 0.16, 0.34},
		Spans:     []layout.Span{{R0: 0, C0: 0, R1: 0, C1: -1}},
	}
}

// invoiceClientTable is the boxed client + service block.
func invoiceClientTable(inv *types.Invoice, currency string, s *style.Sheet) *layout.Table {
	wo := inv.WorkOrder
	rows := [][]layout.Cell{
		{
			layout.Text(s.Get("boldCenter"), "Datos del Cliente"),
			layout.Blank(),
			layout.Text(s.Get("boldCenter"), "Del Servicio"),
			layout.Blank(),
		},
		{
			layout.Text(s.Get("boldRight"), "Nombre:"),
			layout.Text(s.Get("normal"), wo.Enterprise.Name),
			layout.Text(s.Get("boldRight"), "No. Factura:"),
			layout.Text(s.Get("normalCenter"), fmt.Sprintf("%d", inv.WorkOrderID)),
		},
		{
			layout.Text(s.Get("boldRight"), "Domicilio:"),
			layout.Text(s.Get("normal"), wo.Enterprise.Address),
			layout.Text(s.Get("boldRight"), "Referencia OT No:"),
			layout.Text(s.Get("normalCenter"), fmt.Sprintf("%d", wo.ID)),
		},
		{
			layout.Text(s.Get("boldRight"), "Teléfono:"),
			layout.Text(s.Get("normal"), wo.Enterprise.Phone),
			layout.Text(s.Get("boldRight"), "No. Factura OT No:"),
			layout.Text(s.Get("normalCenter"), fmt.Sprintf("%d - %d", inv.WorkOrderID, wo.ID)),
		},
		{
			layout.Text(s.Get("boldRight"), "Vehículo"),
			layout.Text(s.Get("normal"), fmt.Sprintf("%s / %s", wo.Vehicle.Mark, wo.Vehicle.Model)),
			layout.Text(s.Get("boldRight"), "Fecha:"),
			layout.Text(s.Get("normalCenter"), inv.Date.Format(dateLayout)),
		},
		{
			layout.Text(s.Get("boldRight"), "Chapa:"),
			layout.Text(s.Get("normal"), wo.Vehicle.Tag),
			layout.Text(s.Get("boldRight"), "Moneda:"),
			layout.Text(s.Get("normalCenter"), currency),
		},
	}
	return &layout.Table{
		Rows:      rows,
		ColRatios: []float64{0.11, 0.39, 0.19, 0.31},
		Spans: []layout.Span{
			{R0: 0, C0: 0, R1: 0, C1: 1},
			{R0: 0, C0: 2, R1: 0, C1: 3},
		},
		Boxed: true,
	}
}

// invoiceItemsTable builds the line-items block: header row, one row per
// activity with a 1-based position counter, two spacer rows, the three
// stored subtotals and the grand total. The grand total accumulates while
// the activity rows are emitted.
func invoiceItemsTable(inv *types.Invoice, activities []*types.Activity, s *style.Sheet) *layout.Table {
	rows := [][]layout.Cell{{
		layout.Text(s.Get("bold"), "No."),
		layout.Text(s.Get("bold"), "Código"),
		layout.Text(s.Get("bold"), "Descripción"),
		layout.Text(s.Get("bold"), "u/m"),
		layout.Text(s.Get("bold"), "Horas Trabajo"),
		layout.Text(s.Get("bold"), "Proc."),
		layout.Text(s.Get("bold"), "Precio"),
		layout.Text(s.Get("bold"), "Cant."),
		layout.Text(s.Get("bold"), "Importe"),
	}}

	total := inv.ServicesProvided.Add(inv.ExpendableMaterial).Add(inv.Workforce)
	for pos, a := range activities {
		lineAmount := a.LineAmount()
		total = total.Add(lineAmount)
		rows = append(rows, []layout.Cell{
			layout.Text(s.Get("normalRight"), fmt.Sprintf("%d", pos+1)),
			layout.Text(s.Get("normal"), fmt.Sprintf("%d", a.Code)),
			layout.Text(s.Get("normal"), a.Description),
			layout.Text(s.Get("normal"), a.UnitMeasurement.Name),
			layout.Text(s.Get("normalRight"), a.HoursWorked.StringFixed(2)),
			layout.Text(s.Get("normal"), a.Provenance.Provenance),
			layout.Text(s.Get("normalRight"), money(a.Price)),
			layout.Text(s.Get("normalRight"), fmt.Sprintf("%d", a.Quantity)),
			layout.Text(s.Get("normalRight"), money(lineAmount)),
		})
	}

	rows = append(rows, []layout.Cell{}, []layout.Cell{})

	subtotal := func(label string, amount decimal.Decimal) []layout.Cell {
		return []layout.Cell{
			layout.Blank(),
			layout.Text(s.Get("normal"), label),
			layout.Blank(), layout.Blank(), layout.Blank(), layout.Blank(), layout.Blank(), layout.Blank(),
			layout.Text(s.Get("normalRight"), money(amount)),
		}
	}
	rows = append(rows, subtotal("Servicios Prestados en el Taller", inv.ServicesProvided))
	rows = append(rows, subtotal("Material Gastable", inv.ExpendableMaterial))
	rows = append(rows, subtotal("Mano de Obra", inv.Workforce))
	rows = append(rows, subtotal("Total", total))

	return &layout.Table{
		Rows:      rows,
		ColRatios: []float64{0.06, 0.13, 0.26, 0.06, 0.09, 0.08, 0.12, 0.07, 0.13},
		Spans: []layout.Span{
			{R0: -6, C0: 1, R1: -6, C1: -1},
			{R0: -5, C0: 1, R1: -5, C1: -1},
			{R0: -4, C0: 1, R1: -4, C1: -2},
			{R0: -3, C0: 1, R1: -3, C1: -2},
			{R0: -2, C0: 1, R1: -2, C1: -2},
			{R0: -1, C0: 1, R1: -1, C1: -2},
		},
		Boxed: true,
	}
}

// invoiceSignatureTable is the unboxed biller/receiver signature block.
func invoiceSignatureTable(inv *types.Invoice, profile Profile, s *style.Sheet) *layout.Table {
	yearLine := fmt.Sprintf("____/ ____/ %d", inv.Date.Year())
	signatureLine := strings.Repeat("_", 21)
	rows := [][]layout.Cell{
		{
			layout.Text(s.Get("boldRight"), "Facturado por:"),
			layout.Text(s.Get("normal"), profile.BillerName),
			layout.Text(s.Get("boldRight"), "Recibido por:"),
			layout.Blank(),
		},
		{
			layout.Text(s.Get("boldRight"), "Cargo:"),
			layout.Text(s.Get("normal"), profile.BillerTitle),
			layout.Blank(),
			layout.Blank(),
		},
		{
			layout.Text(s.Get("boldRight"), "Fecha:"),
			layout.Text(s.Get("normal"), yearLine),
			layout.Text(s.Get("boldRight"), "Fecha:"),
			layout.Text(s.Get("normal"), yearLine),
		},
		{
			layout.Text(s.Get("boldRight"), "Firma:"),
			layout.Text(s.Get("normal"), signatureLine),
			layout.Text(s.Get("boldRight"), "Firma:"),
			layout.Text(s.Get("normal"), signatureLine),
		},
	}
	return &layout.Table{
		Rows:      rows,
		ColRatios: []float64{0.15, 0.35, 0.15, 0.35},
	}
}

const invoiceSpacer = 11.0

// BuildInvoice renders the invoice report for a fully-loaded aggregate.
func BuildInvoice(inv *types.Invoice, activities []*types.Activity, cfg Config, profile Profile) ([]byte, error) {
	sheet := invoiceSheet()

	cv, err := canvas.New(canvas.Config{
		AssetDir:    cfg.AssetDir,
		FontFamily:  cfg.FontFamily,
		FontRegular: cfg.FontRegular,
		FontBold:    cfg.FontBold,
		Title:       "Factura",
		Author:      profile.ShopName,
		CreatedAt:   inv.Date,
	})
	if err != nil {
		return nil, err
	}

	tables := []struct {
		t       *layout.Table
		spacers int
	}{
		{invoiceContactTable(inv, sheet), 1},
		{invoiceClientTable(inv, profile.Currency, sheet), 2},
		{invoiceItemsTable(inv, activities, sheet), 4},
		{invoiceSignatureTable(inv, profile, sheet), 0},
	}
	for _, entry := range tables {
		if err := entry.t.Draw(cv); err != nil {
			return nil, err
		}
		cv.Advance(float64(entry.spacers) * invoiceSpacer)
	}

	var buf bytes.Buffer
	if err := cv.Render(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
