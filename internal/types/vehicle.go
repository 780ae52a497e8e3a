package types

import "time"

type Vehicle struct {
	ID           uint        `gorm:"primaryKey" json:"id"`
	Mark         string      `gorm:"column:mark;not null" json:"mark"`
	Model        string      `gorm:"column:model;not null" json:"model"`
	Tag          string      `gorm:"column:tag;size:7;not null" json:"tag"`
	EnterpriseID uint        `gorm:"column:enterprise_id;not null;index" json:"enterprise_id"`
	Enterprise   *Enterprise `gorm:"constraint:OnDelete:CASCADE;foreignKey:EnterpriseID;references:ID" json:"enterprise,omitempty"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}

func (Vehicle) TableName() string { return "vehicle" }
