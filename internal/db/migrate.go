package db

import (
	"gorm.io/gorm"

	"github.com/tallerbv/taller-backend/internal/types"
)

func AutoMigrateAll(db *gorm.DB) error {
	return db.AutoMigrate(

		// =========================
		// Catalog / lookups
		// =========================
		&types.Contact{},
		&types.InvoiceType{},
		&types.UnitMeasurement{},
		&types.Enterprise{},
		&types.Mechanic{},
		&types.Part{},
		&types.PaymentMethod{},
		&types.ServiceGuarantee{},
		&types.Provenance{},
		&types.Vehicle{},

		// =========================
		// Aggregates
		// =========================
		&types.WorkOrder{},
		&types.PhysicalState{},
		&types.Invoice{},
		&types.Activity{},
	)
}
