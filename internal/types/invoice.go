package types

import (
	"time"

	"github.com/shopspring/decimal"
)

// Invoice shares its primary key with the work order it bills (1:1 enforced
// by the shared key).
type Invoice struct {
	WorkOrderID        uint            `gorm:"column:work_order_id;primaryKey" json:"work_order_id"`
	WorkOrder          *WorkOrder      `gorm:"constraint:OnDelete:CASCADE;foreignKey:WorkOrderID;references:ID" json:"work_order,omitempty"`
	InvoiceTypeID      uint            `gorm:"column:invoice_type_id;not null;index" json:"invoice_type_id"`
	InvoiceType        *InvoiceType    `gorm:"constraint:OnDelete:CASCADE;foreignKey:InvoiceTypeID;references:ID" json:"invoice_type,omitempty"`
	ContactID          uint            `gorm:"column:contact_id;not null;index" json:"contact_id"`
	Contact            *Contact        `gorm:"constraint:OnDelete:CASCADE;foreignKey:ContactID;references:ID" json:"contact,omitempty"`
	ServicesProvided   decimal.Decimal `gorm:"column:services_provided;type:decimal(7,2);not null" json:"services_provided"`
	ExpendableMaterial decimal.Decimal `gorm:"column:expendable_material;type:decimal(7,2);not null" json:"expendable_material"`
	Workforce          decimal.Decimal `gorm:"column:workforce;type:decimal(7,2);not null" json:"workforce"`
	Date               time.Time       `gorm:"column:date;not null;autoCreateTime" json:"date"`
	CreatedAt          time.Time       `json:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at"`
}

func (Invoice) TableName() string { return "invoice" }

// Activity is one billable line item on an invoice. The line amount is
// Price × Quantity, derived at render time.
type Activity struct {
	ID                uint             `gorm:"primaryKey" json:"id"`
	InvoiceID         uint             `gorm:"column:invoice_id;not null;index" json:"invoice_id"`
	Invoice           *Invoice         `gorm:"constraint:OnDelete:CASCADE;foreignKey:InvoiceID;references:WorkOrderID" json:"invoice,omitempty"`
	Code              uint             `gorm:"column:code;uniqueIndex;not null" json:"code"`
	Description       string           `gorm:"column:description;not null" json:"description"`
	UnitMeasurementID uint             `gorm:"column:unit_measurement_id;not null;index" json:"unit_measurement_id"`
	UnitMeasurement   *UnitMeasurement `gorm:"constraint:OnDelete:CASCADE;foreignKey:UnitMeasurementID;references:ID" json:"unit_measurement,omitempty"`
	HoursWorked       decimal.Decimal  `gorm:"column:hours_worked;type:decimal(4,2);not null" json:"hours_worked"`
	ProvenanceID      uint             `gorm:"column:provenance_id;not null;index" json:"provenance_id"`
	Provenance        *Provenance      `gorm:"constraint:OnDelete:CASCADE;foreignKey:ProvenanceID;references:ID" json:"provenance,omitempty"`
	Price             decimal.Decimal  `gorm:"column:price;type:decimal(7,2);not null" json:"price"`
	Quantity          uint             `gorm:"column:quantity;not null" json:"quantity"`
	CreatedAt         time.Time        `json:"created_at"`
	UpdatedAt         time.Time        `json:"updated_at"`
}

func (Activity) TableName() string { return "activity" }

// LineAmount is Price × Quantity at decimal precision.
func (a *Activity) LineAmount() decimal.Decimal {
	return a.Price.Mul(decimal.NewFromInt(int64(a.Quantity)))
}
