package repos

import (
	"context"
	"testing"

	"github.com/tallerbv/taller-backend/internal/repos/testutil"
)

func TestInvoiceGetByIDLoadsReferences(t *testing.T) {
	ctx := context.Background()
	gdb := testutil.DB(t)
	tx := testutil.Tx(t, gdb)
	repo := NewInvoiceRepo(gdb, testutil.Logger(t))

	seeded := testutil.SeedInvoice(t, ctx, tx)

	inv, err := repo.GetByID(ctx, tx, seeded.WorkOrderID)
	if err != nil {
		t.Fatalf("get by id: %v", err)
	}
	if inv == nil {
		t.Fatalf("expected invoice %d", seeded.WorkOrderID)
	}
	if inv.Contact == nil || inv.Contact.Name != "Taller Buen Vecino" {
		t.Fatalf("contact not preloaded: %+v", inv.Contact)
	}
	if inv.InvoiceType == nil || inv.InvoiceType.Title != "FACTURA DE SERVICIOS" {
		t.Fatalf("invoice type not preloaded: %+v", inv.InvoiceType)
	}
	if inv.WorkOrder == nil {
		t.Fatalf("work order not preloaded")
	}
	if inv.WorkOrder.Vehicle == nil || inv.WorkOrder.Vehicle.Tag != "P123456" {
		t.Fatalf("work order vehicle not preloaded: %+v", inv.WorkOrder.Vehicle)
	}
	if inv.WorkOrder.Enterprise == nil || inv.WorkOrder.Enterprise.Name != "Transportes Oriente" {
		t.Fatalf("work order enterprise not preloaded: %+v", inv.WorkOrder.Enterprise)
	}
	if !inv.ServicesProvided.Equal(testutil.Money(t, "100.00")) {
		t.Fatalf("services provided %s", inv.ServicesProvided)
	}
}

func TestInvoiceGetByIDMissing(t *testing.T) {
	ctx := context.Background()
	gdb := testutil.DB(t)
	repo := NewInvoiceRepo(gdb, testutil.Logger(t))

	inv, err := repo.GetByID(ctx, nil, 9999)
	if err != nil {
		t.Fatalf("get by id: %v", err)
	}
	if inv != nil {
		t.Fatalf("expected nil for missing id, got %+v", inv)
	}
}

func TestInvoiceListActivities(t *testing.T) {
	ctx := context.Background()
	gdb := testutil.DB(t)
	tx := testutil.Tx(t, gdb)
	repo := NewInvoiceRepo(gdb, testutil.Logger(t))

	inv := testutil.SeedInvoice(t, ctx, tx)
	other := testutil.SeedInvoice(t, ctx, tx)

	first := testutil.SeedActivity(t, ctx, tx, inv.WorkOrderID, 101, "15.00", 2)
	second := testutil.SeedActivity(t, ctx, tx, inv.WorkOrderID, 102, "7.25", 4)
	testutil.SeedActivity(t, ctx, tx, other.WorkOrderID, 103, "9.00", 1)

	activities, err := repo.ListActivities(ctx, tx, inv.WorkOrderID)
	if err != nil {
		t.Fatalf("list activities: %v", err)
	}
	if len(activities) != 2 {
		t.Fatalf("expected 2 activities, got %d", len(activities))
	}
	if activities[0].Code != first.Code || activities[1].Code != second.Code {
		t.Fatalf("activities out of insertion order: %d, %d", activities[0].Code, activities[1].Code)
	}
	if activities[0].UnitMeasurement == nil || activities[0].Provenance == nil {
		t.Fatalf("references not preloaded on first activity")
	}
	if !activities[0].LineAmount().Equal(testutil.Money(t, "30.00")) {
		t.Fatalf("line amount %s, want 30.00", activities[0].LineAmount())
	}
	if !activities[1].LineAmount().Equal(testutil.Money(t, "29.00")) {
		t.Fatalf("line amount %s, want 29.00", activities[1].LineAmount())
	}
}

func TestInvoiceListActivitiesEmpty(t *testing.T) {
	ctx := context.Background()
	gdb := testutil.DB(t)
	tx := testutil.Tx(t, gdb)
	repo := NewInvoiceRepo(gdb, testutil.Logger(t))

	inv := testutil.SeedInvoice(t, ctx, tx)

	activities, err := repo.ListActivities(ctx, tx, inv.WorkOrderID)
	if err != nil {
		t.Fatalf("list activities: %v", err)
	}
	if len(activities) != 0 {
		t.Fatalf("expected no activities, got %d", len(activities))
	}
}
