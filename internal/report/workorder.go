package report

import (
	"bytes"
	"fmt"

	"github.com/tallerbv/taller-backend/internal/report/canvas"
	"github.com/tallerbv/taller-backend/internal/report/layout"
	"github.com/tallerbv/taller-backend/internal/report/style"
	"github.com/tallerbv/taller-backend/internal/types"
)

// workOrderSheet registers every text role the work-order document uses,
// derived from a 10pt base the way the invoice sheet derives from 11pt.
func workOrderSheet() *style.Sheet {
	s := style.NewSheet()
	s.Add("title", style.Style{Bold: true, Size: 20, Leading: 24, Align: style.AlignCenter})
	s.Add("normal", style.Style{Size: 10})

	s.Derive("normal12", "normal", func(st *style.Style) { st.Size = 12; st.Leading = 14.4 })
	s.Derive("normal12Right", "normal12", func(st *style.Style) { st.Align = style.AlignRight })
	s.Derive("normal12Justify", "normal12", func(st *style.Style) { st.Align = style.AlignJustify })
	s.Derive("bold12", "normal12", func(st *style.Style) { st.Bold = true })
	s.Derive("bold12Right", "bold12", func(st *style.Style) { st.Align = style.AlignRight })
	s.Derive("bold12Center", "bold12", func(st *style.Style) { st.Align = style.AlignCenter })

	s.Derive("normal14", "normal", func(st *style.Style) { st.Size = 14; st.Leading = 16.8 })
	s.Derive("normal14Right", "normal14", func(st *style.Style) { st.Align = style.AlignRight })
	s.Derive("normal14Justify", "normal14", func(st *style.Style) { st.Align = style.AlignJustify })
	s.Derive("normal14Center", "normal14", func(st *style.Style) { st.Align = style.AlignCenter })
	s.Derive("bold14", "normal14", func(st *style.Style) { st.Bold = true })
	s.Derive("bold14Right", "bold14", func(st *style.Style) { st.Align = style.AlignRight })

	s.Derive("normal16", "normal", func(st *style.Style) { st.Size = 16; st.Leading = 19.2 })
	s.Derive("normal16Justify", "normal16", func(st *style.Style) { st.Align = style.AlignJustify })
	return s
}

const dateLayout = "02/01/2006"

// workOrderTable assembles the single flowable table of the work-order
// report: title, header pairs, free-text blocks, one row per physical-state
// entry, the payment footer and the guarantee block.
func workOrderTable(wo *types.WorkOrder, states []*types.PhysicalState, s *style.Sheet) *layout.Table {
	var rows [][]layout.Cell

	rows = append(rows, []layout.Cell{
		layout.Text(s.Get("title"), "ORDEN DE TRABAJO"),
	})
	rows = append(rows, []layout.Cell{
		layout.Text(s.Get("bold14Right"), "No. Orden:"),
		layout.Text(s.Get("normal14"), fmt.Sprintf("%d", wo.ID)),
		layout.Text(s.Get("bold14Right"), "Nombre Cliente o Empresa:"),
		layout.Text(s.Get("normal14"), wo.Enterprise.Name),
	})
	rows = append(rows, []layout.Cell{
		layout.Text(s.Get("bold14Right"), "Fecha de entrada:"),
		layout.Text(s.Get("normal14"), wo.EntryDate.Format(dateLayout)),
		layout.Text(s.Get("bold14Right"), "Presupuesto:"),
		layout.Text(s.Get("normal14Right"), money(wo.Estimation)),
	})
	rows = append(rows, []layout.Cell{
		layout.Text(s.Get("bold14Right"), "Marca y Modelo:"),
		layout.Text(s.Get("normal14"), fmt.Sprintf("%s / %s", wo.Vehicle.Mark, wo.Vehicle.Model)),
		layout.Text(s.Get("bold14Right"), "Tiempo estimado:"),
		layout.Text(s.Get("normal14Right"), fmt.Sprintf("%.2f hs", float64(wo.EstimatedTime))),
	})
	rows = append(rows, []layout.Cell{
		layout.Text(s.Get("bold14Right"), "Chapa:"),
		layout.Text(s.Get("normal14"), wo.Vehicle.Tag),
		layout.Text(s.Get("bold14Right"), "Kilometraje:"),
		layout.Text(s.Get("normal14Right"), fmt.Sprintf("%d km", wo.Mileage)),
	})
	rows = append(rows, []layout.Cell{
		layout.Text(s.Get("bold14Right"), "Mecánico Responsable:"),
		layout.Text(s.Get("normal14"), fmt.Sprintf("%s %s", wo.Mechanic.Name, wo.Mechanic.LastName)),
		layout.Text(s.Get("bold14Right"), "Ayudante:"),
		layout.Text(s.Get("normal14"), fmt.Sprintf("%s %s", wo.Assistant.Name, wo.Assistant.LastName)),
	})
	rows = append(rows, []layout.Cell{
		layout.Stack(
			layout.Text(s.Get("bold14"), "Defectación:"),
			layout.Text(s.Get("normal14Justify"), wo.Defection),
		),
	})
	rows = append(rows, []layout.Cell{
		layout.Stack(
			layout.Text(s.Get("bold14"), "Trabajo realizado:"),
			layout.Text(s.Get("normal14Justify"), wo.WorkDone),
		),
	})
	rows = append(rows, []layout.Cell{
		layout.Text(s.Get("normal14Center"), "Estado físico del vehículo al entrar al taller"),
	})

	spans := []layout.Span{
		{R0: 0, C0: 0, R1: 0, C1: -1},
		{R0: 6, C0: 0, R1: 6, C1: -1},
		{R0: 7, C0: 0, R1: 7, C1: -1},
		{R0: 8, C0: 0, R1: 8, C1: -1},
	}

	for _, ps := range states {
		spans = append(spans, layout.Span{R0: len(rows), C0: 1, R1: len(rows), C1: -1})
		rows = append(rows, []layout.Cell{
			layout.Text(s.Get("normal14Justify"), ps.Part.Name),
			layout.Text(s.Get("normal14Justify"), ps.Description),
		})
	}

	rows = append(rows, []layout.Cell{
		layout.Text(s.Get("bold12Right"), "Fecha de entrega al cliente:"),
		layout.Text(s.Get("normal12"), wo.DeliveryDate.Format(dateLayout)),
		layout.Text(s.Get("bold12Right"), "Forma de pago:"),
		layout.Text(s.Get("normal12"), wo.PaymentMethod.Type),
	})
	rows = append(rows, []layout.Cell{
		layout.Text(s.Get("bold12Right"), "Nombre del cliente:"),
		layout.Text(s.Get("normal12"), wo.Enterprise.Name),
		layout.Text(s.Get("bold12Right"), "Costo mano de obra:"),
		layout.Text(s.Get("normal12Right"), money(wo.WorkforceCost)),
	})
	rows = append(rows, []layout.Cell{
		layout.Stack(
			layout.Text(s.Get("bold12"), "Quejas o sugerencias:"),
			layout.Text(s.Get("normal12Justify"), wo.ComplaintsSuggestions),
		),
		layout.Blank(),
		layout.Stack(
			layout.Text(s.Get("bold12"), "Descripción Materias primas y piezas:"),
			layout.Text(s.Get("normal12Justify"), wo.DescriptionRawParts),
		),
	})
	rows = append(rows, []layout.Cell{
		layout.Text(s.Get("bold12Center"), "Firma Cliente:"),
		layout.Blank(),
		layout.Text(s.Get("bold12Right"), "Importe en Piezas y Materias primas:"),
		layout.Text(s.Get("normal12Right"), money(wo.Amount)),
	})
	rows = append(rows, []layout.Cell{
		layout.Blank(),
		layout.Blank(),
		layout.Text(s.Get("bold12Right"), "Total a pagar:"),
		layout.Text(s.Get("normal12Right"), money(wo.TotalDue())),
	})
	rows = append(rows, []layout.Cell{
		layout.Text(s.Get("normal16"), "Garantia del Servicio:"),
		layout.Text(s.Get("normal16Justify"), wo.ServiceGuarantee.Description),
	})

	spans = append(spans,
		layout.Span{R0: -4, C0: 0, R1: -4, C1: 1},
		layout.Span{R0: -4, C0: 2, R1: -4, C1: 3},
		layout.Span{R0: -3, C0: 0, R1: -2, C1: 0, VAlign: layout.VMiddle},
		layout.Span{R0: -3, C0: 1, R1: -2, C1: 1, VAlign: layout.VMiddle},
		layout.Span{R0: -1, C0: 1, R1: -1, C1: -1},
	)

	return &layout.Table{
		Rows:      rows,
		ColRatios: []float64{0.28, 0.25, 0.22, 0.25},
		Spans:     spans,
		Boxed:     true,
	}
}

// BuildWorkOrder renders the work-order report for a fully-loaded aggregate.
func BuildWorkOrder(wo *types.WorkOrder, states []*types.PhysicalState, cfg Config, profile Profile) ([]byte, error) {
	sheet := workOrderSheet()
	table := workOrderTable(wo, states, sheet)

	cv, err := canvas.New(canvas.Config{
		AssetDir:    cfg.AssetDir,
		FontFamily:  cfg.FontFamily,
		FontRegular: cfg.FontRegular,
		FontBold:    cfg.FontBold,
		Title:       "Orden de taller",
		Author:      profile.ShopName,
		CreatedAt:   wo.EntryDate,
	})
	if err != nil {
		return nil, err
	}
	if err := table.Draw(cv); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := cv.Render(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
