package testutil

import (
	"context"
	"testing"
)

func TestSeedWorkOrderTwiceInOneDatabase(t *testing.T) {
	ctx := context.Background()
	gdb := DB(t)
	tx := Tx(t, gdb)

	first := SeedWorkOrder(t, ctx, tx)
	second := SeedWorkOrder(t, ctx, tx)

	if first.ID == second.ID {
		t.Fatalf("expected distinct work orders, both got id %d", first.ID)
	}
	// The unique-column references are shared, not duplicated.
	if first.PaymentMethodID != second.PaymentMethodID {
		t.Fatalf("payment method not reused: %d vs %d", first.PaymentMethodID, second.PaymentMethodID)
	}
	if first.ServiceGuaranteeID != second.ServiceGuaranteeID {
		t.Fatalf("service guarantee not reused: %d vs %d", first.ServiceGuaranteeID, second.ServiceGuaranteeID)
	}
}

func TestSeedInvoiceTwiceInOneDatabase(t *testing.T) {
	ctx := context.Background()
	gdb := DB(t)
	tx := Tx(t, gdb)

	first := SeedInvoice(t, ctx, tx)
	second := SeedInvoice(t, ctx, tx)

	if first.WorkOrderID == second.WorkOrderID {
		t.Fatalf("expected distinct invoices, both got id %d", first.WorkOrderID)
	}

	SeedActivity(t, ctx, tx, first.WorkOrderID, 201, "10.00", 1)
	SeedActivity(t, ctx, tx, second.WorkOrderID, 202, "12.00", 2)
}
