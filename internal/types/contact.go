package types

import "time"

// Contact is the self-employed worker (TCP) the invoice is issued on behalf of.
type Contact struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Name       string    `gorm:"column:name;not null" json:"name"`
	Address    string    `gorm:"column:address;not null" json:"address"`
	Email      string    `gorm:"column:email;not null" json:"email"`
	Phone      string    `gorm:"column:phone;not null" json:"phone"`
	TCP        string    `gorm:"column:tcp;not null" json:"tcp"`
	NIT        string    `gorm:"column:nit;not null" json:"nit"`
	NoCheckCUP string    `gorm:"column:no_check_cup;not null" json:"no_check_cup"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (Contact) TableName() string { return "contact" }
