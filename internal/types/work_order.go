package types

import (
	"time"

	"github.com/shopspring/decimal"
)

// WorkOrder is the aggregate root of the work-order report. Monetary fields
// are fixed-point decimals with 2 fraction digits.
type WorkOrder struct {
	ID                   uint              `gorm:"primaryKey" json:"id"`
	EntryDate            time.Time         `gorm:"column:entry_date;not null;autoCreateTime" json:"entry_date"`
	VehicleID            uint              `gorm:"column:vehicle_id;not null;index" json:"vehicle_id"`
	Vehicle              *Vehicle          `gorm:"constraint:OnDelete:CASCADE;foreignKey:VehicleID;references:ID" json:"vehicle,omitempty"`
	MechanicID           uint              `gorm:"column:mechanic_id;not null;index" json:"mechanic_id"`
	Mechanic             *Mechanic         `gorm:"constraint:OnDelete:CASCADE;foreignKey:MechanicID;references:ID" json:"mechanic,omitempty"`
	AssistantID          uint              `gorm:"column:assistant_id;not null;index" json:"assistant_id"`
	Assistant            *Mechanic         `gorm:"constraint:OnDelete:CASCADE;foreignKey:AssistantID;references:ID" json:"assistant,omitempty"`
	EnterpriseID         uint              `gorm:"column:enterprise_id;not null;index" json:"enterprise_id"`
	Enterprise           *Enterprise       `gorm:"constraint:OnDelete:CASCADE;foreignKey:EnterpriseID;references:ID" json:"enterprise,omitempty"`
	Estimation           decimal.Decimal   `gorm:"column:estimation;type:decimal(7,2);not null" json:"estimation"`
	EstimatedTime        uint              `gorm:"column:estimated_time;not null" json:"estimated_time"`
	Mileage              uint              `gorm:"column:mileage;not null" json:"mileage"`
	Defection            string            `gorm:"column:defection;not null" json:"defection"`
	WorkDone             string            `gorm:"column:work_done;not null" json:"work_done"`
	DeliveryDate         time.Time         `gorm:"column:delivery_date;not null" json:"delivery_date"`
	ComplaintsSuggestions string           `gorm:"column:complaints_suggestions" json:"complaints_suggestions"`
	PaymentMethodID      uint              `gorm:"column:payment_method_id;not null;index" json:"payment_method_id"`
	PaymentMethod        *PaymentMethod    `gorm:"constraint:OnDelete:CASCADE;foreignKey:PaymentMethodID;references:ID" json:"payment_method,omitempty"`
	WorkforceCost        decimal.Decimal   `gorm:"column:workforce_cost;type:decimal(7,2);not null" json:"workforce_cost"`
	DescriptionRawParts  string            `gorm:"column:description_raw_materials_parts" json:"description_raw_materials_parts"`
	Amount               decimal.Decimal   `gorm:"column:amount;type:decimal(7,2);not null" json:"amount"`
	ServiceGuaranteeID   uint              `gorm:"column:service_guarantee_id;not null;index" json:"service_guarantee_id"`
	ServiceGuarantee     *ServiceGuarantee `gorm:"constraint:OnDelete:CASCADE;foreignKey:ServiceGuaranteeID;references:ID" json:"service_guarantee,omitempty"`
	CreatedAt            time.Time         `json:"created_at"`
	UpdatedAt            time.Time         `json:"updated_at"`
}

func (WorkOrder) TableName() string { return "work_order" }

// TotalDue is derived at render time, never stored.
func (w *WorkOrder) TotalDue() decimal.Decimal {
	return w.WorkforceCost.Add(w.Amount)
}

// PhysicalState records the condition of one vehicle part at intake.
type PhysicalState struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	WorkOrderID uint       `gorm:"column:work_order_id;not null;index" json:"work_order_id"`
	WorkOrder   *WorkOrder `gorm:"constraint:OnDelete:CASCADE;foreignKey:WorkOrderID;references:ID" json:"work_order,omitempty"`
	PartID      uint       `gorm:"column:part_id;not null;index" json:"part_id"`
	Part        *Part      `gorm:"constraint:OnDelete:CASCADE;foreignKey:PartID;references:ID" json:"part,omitempty"`
	Description string     `gorm:"column:description;not null" json:"description"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func (PhysicalState) TableName() string { return "physical_state" }
