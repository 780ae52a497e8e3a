package types

import "time"

// Flat reference records edited through the back office and read by the
// report builders. None of them carry computed behavior.

type InvoiceType struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Type      string    `gorm:"column:type;not null" json:"type"`
	Title     string    `gorm:"column:title;not null" json:"title"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (InvoiceType) TableName() string { return "invoice_type" }

type UnitMeasurement struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"column:name;uniqueIndex;not null" json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (UnitMeasurement) TableName() string { return "unit_measurement" }

type Enterprise struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"column:name;not null" json:"name"`
	Phone     string    `gorm:"column:phone;not null" json:"phone"`
	Address   string    `gorm:"column:address;not null" json:"address"`
	Comments  string    `gorm:"column:comments" json:"comments"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Enterprise) TableName() string { return "enterprise" }

type Mechanic struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"column:name;not null" json:"name"`
	LastName  string    `gorm:"column:last_name;not null" json:"last_name"`
	CI        string    `gorm:"column:ci;not null" json:"ci"`
	Address   string    `gorm:"column:address" json:"address"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Mechanic) TableName() string { return "mechanic" }

type Part struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"column:name;uniqueIndex;not null" json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Part) TableName() string { return "part" }

type PaymentMethod struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Type      string    `gorm:"column:type;uniqueIndex;not null" json:"type"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (PaymentMethod) TableName() string { return "payment_method" }

type ServiceGuarantee struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Description string    `gorm:"column:description;uniqueIndex;not null" json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (ServiceGuarantee) TableName() string { return "service_guarantee" }

type Provenance struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Provenance string    `gorm:"column:provenance;not null" json:"provenance"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (Provenance) TableName() string { return "provenance" }
