package testutil

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/tallerbv/taller-backend/internal/types"
)

func Money(tb testing.TB, s string) decimal.Decimal {
	tb.Helper()
	d, err := decimal.NewFromString(s)
	if err != nil {
		tb.Fatalf("bad decimal literal %q: %v", s, err)
	}
	return d
}

func SeedEnterprise(tb testing.TB, ctx context.Context, tx *gorm.DB, name string) *types.Enterprise {
	tb.Helper()
	e := &types.Enterprise{
		Name:    name,
		Phone:   "53512345",
		Address: "Calle 1ra e/ A y B",
	}
	if err := tx.WithContext(ctx).Create(e).Error; err != nil {
		tb.Fatalf("seed enterprise: %v", err)
	}
	return e
}

func SeedMechanic(tb testing.TB, ctx context.Context, tx *gorm.DB, name, lastName string) *types.Mechanic {
	tb.Helper()
	m := &types.Mechanic{
		Name:     name,
		LastName: lastName,
		CI:       "85042512345",
		Address:  "Reparto Nuevo",
	}
	if err := tx.WithContext(ctx).Create(m).Error; err != nil {
		tb.Fatalf("seed mechanic: %v", err)
	}
	return m
}

func SeedVehicle(tb testing.TB, ctx context.Context, tx *gorm.DB, enterpriseID uint) *types.Vehicle {
	tb.Helper()
	v := &types.Vehicle{
		Mark:         "Lada",
		Model:        "2107",
		Tag:          "P123456",
		EnterpriseID: enterpriseID,
	}
	if err := tx.WithContext(ctx).Create(v).Error; err != nil {
		tb.Fatalf("seed vehicle: %v", err)
	}
	return v
}

// Columns with a unique index reuse the existing row, so fixtures that build
// several aggregates in one database never collide.

func SeedPaymentMethod(tb testing.TB, ctx context.Context, tx *gorm.DB, kind string) *types.PaymentMethod {
	tb.Helper()
	pm := &types.PaymentMethod{}
	if err := tx.WithContext(ctx).Where(types.PaymentMethod{Type: kind}).FirstOrCreate(pm).Error; err != nil {
		tb.Fatalf("seed payment method: %v", err)
	}
	return pm
}

func SeedServiceGuarantee(tb testing.TB, ctx context.Context, tx *gorm.DB, description string) *types.ServiceGuarantee {
	tb.Helper()
	sg := &types.ServiceGuarantee{}
	if err := tx.WithContext(ctx).Where(types.ServiceGuarantee{Description: description}).FirstOrCreate(sg).Error; err != nil {
		tb.Fatalf("seed service guarantee: %v", err)
	}
	return sg
}

func SeedPart(tb testing.TB, ctx context.Context, tx *gorm.DB, name string) *types.Part {
	tb.Helper()
	p := &types.Part{}
	if err := tx.WithContext(ctx).Where(types.Part{Name: name}).FirstOrCreate(p).Error; err != nil {
		tb.Fatalf("seed part: %v", err)
	}
	return p
}

// SeedWorkOrder creates a work order with a full reference graph so report
// builders can render it without nil checks.
func SeedWorkOrder(tb testing.TB, ctx context.Context, tx *gorm.DB) *types.WorkOrder {
	tb.Helper()
	enterprise := SeedEnterprise(tb, ctx, tx, "Transportes Oriente")
	vehicle := SeedVehicle(tb, ctx, tx, enterprise.ID)
	mechanic := SeedMechanic(tb, ctx, tx, "Carlos", "Reyes")
	assistant := SeedMechanic(tb, ctx, tx, "Luis", "Paz")
	payment := SeedPaymentMethod(tb, ctx, tx, "Transferencia")
	guarantee := SeedServiceGuarantee(tb, ctx, tx, "30 dias de garantia sobre la mano de obra")

	wo := &types.WorkOrder{
		EntryDate:             time.Date(2021, 6, 14, 9, 30, 0, 0, time.UTC),
		VehicleID:             vehicle.ID,
		MechanicID:            mechanic.ID,
		AssistantID:           assistant.ID,
		EnterpriseID:          enterprise.ID,
		Estimation:            Money(tb, "150.00"),
		EstimatedTime:         3,
		Mileage:               20000,
		Defection:             "Frenos desgastados",
		WorkDone:              "Cambio de pastillas y rectificado de discos",
		DeliveryDate:          time.Date(2021, 6, 18, 0, 0, 0, 0, time.UTC),
		ComplaintsSuggestions: "Ninguna",
		PaymentMethodID:       payment.ID,
		WorkforceCost:         Money(tb, "80.00"),
		DescriptionRawParts:   "Pastillas de freno, liquido de frenos",
		Amount:                Money(tb, "45.50"),
		ServiceGuaranteeID:    guarantee.ID,
	}
	if err := tx.WithContext(ctx).Create(wo).Error; err != nil {
		tb.Fatalf("seed work order: %v", err)
	}
	return wo
}

func SeedPhysicalState(tb testing.TB, ctx context.Context, tx *gorm.DB, workOrderID, partID uint, description string) *types.PhysicalState {
	tb.Helper()
	ps := &types.PhysicalState{
		WorkOrderID: workOrderID,
		PartID:      partID,
		Description: description,
	}
	if err := tx.WithContext(ctx).Create(ps).Error; err != nil {
		tb.Fatalf("seed physical state: %v", err)
	}
	return ps
}

func SeedContact(tb testing.TB, ctx context.Context, tx *gorm.DB, name string) *types.Contact {
	tb.Helper()
	c := &types.Contact{
		Name:       name,
		Address:    "Ave. Central 45",
		Email:      "taller@example.cu",
		Phone:      "53598765",
		TCP:        "Evelio Mojena Alvarez",
		NIT:        "12345678901",
		NoCheckCUP: "0598712345671234",
	}
	if err := tx.WithContext(ctx).Create(c).Error; err != nil {
		tb.Fatalf("seed contact: %v", err)
	}
	return c
}

func SeedInvoiceType(tb testing.TB, ctx context.Context, tx *gorm.DB, title string) *types.InvoiceType {
	tb.Helper()
	it := &types.InvoiceType{Type: "servicio", Title: title}
	if err := tx.WithContext(ctx).Create(it).Error; err != nil {
		tb.Fatalf("seed invoice type: %v", err)
	}
	return it
}

func SeedUnitMeasurement(tb testing.TB, ctx context.Context, tx *gorm.DB, name string) *types.UnitMeasurement {
	tb.Helper()
	um := &types.UnitMeasurement{}
	if err := tx.WithContext(ctx).Where(types.UnitMeasurement{Name: name}).FirstOrCreate(um).Error; err != nil {
		tb.Fatalf("seed unit measurement: %v", err)
	}
	return um
}

func SeedProvenance(tb testing.TB, ctx context.Context, tx *gorm.DB, label string) *types.Provenance {
	tb.Helper()
	p := &types.Provenance{Provenance: label}
	if err := tx.WithContext(ctx).Create(p).Error; err != nil {
		tb.Fatalf("seed provenance: %v", err)
	}
	return p
}

// SeedInvoice creates an invoice keyed to a fresh work order.
func SeedInvoice(tb testing.TB, ctx context.Context, tx *gorm.DB) *types.Invoice {
	tb.Helper()
	wo := SeedWorkOrder(tb, ctx, tx)
	contact := SeedContact(tb, ctx, tx, "Taller Buen Vecino")
	invoiceType := SeedInvoiceType(tb, ctx, tx, "FACTURA DE SERVICIOS")

	inv := &types.Invoice{
		WorkOrderID:        wo.ID,
		InvoiceTypeID:      invoiceType.ID,
		ContactID:          contact.ID,
		ServicesProvided:   Money(tb, "100.00"),
		ExpendableMaterial: Money(tb, "20.00"),
		Workforce:          Money(tb, "30.00"),
		Date:               time.Date(2021, 6, 20, 12, 0, 0, 0, time.UTC),
	}
	if err := tx.WithContext(ctx).Create(inv).Error; err != nil {
		tb.Fatalf("seed invoice: %v", err)
	}
	return inv
}

func SeedActivity(tb testing.TB, ctx context.Context, tx *gorm.DB, invoiceID, code uint, price string, quantity uint) *types.Activity {
	tb.Helper()
	unit := SeedUnitMeasurement(tb, ctx, tx, unitName(code))
	prov := SeedProvenance(tb, ctx, tx, "Taller")
	a := &types.Activity{
		InvoiceID:         invoiceID,
		Code:              code,
		Description:       "Actividad de taller",
		UnitMeasurementID: unit.ID,
		HoursWorked:       Money(tb, "1.50"),
		ProvenanceID:      prov.ID,
		Price:             Money(tb, price),
		Quantity:          quantity,
	}
	if err := tx.WithContext(ctx).Create(a).Error; err != nil {
		tb.Fatalf("seed activity: %v", err)
	}
	return a
}

func unitName(code uint) string {
	// Unit names are unique; key them to the activity code.
	return "u-" + strconv.FormatUint(uint64(code), 10)
}
