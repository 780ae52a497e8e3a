package repos

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/tallerbv/taller-backend/internal/logger"
	"github.com/tallerbv/taller-backend/internal/types"
)

type InvoiceRepo interface {
	GetByID(ctx context.Context, tx *gorm.DB, invoiceID uint) (*types.Invoice, error)
	ListActivities(ctx context.Context, tx *gorm.DB, invoiceID uint) ([]*types.Activity, error)
}

type invoiceRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewInvoiceRepo(db *gorm.DB, baseLog *logger.Logger) InvoiceRepo {
	repoLog := baseLog.With("repo", "InvoiceRepo")
	return &invoiceRepo{db: db, log: repoLog}
}

// GetByID loads the invoice together with the contact, the invoice type and
// the backing work order (vehicle and enterprise included). A missing id
// yields (nil, nil).
func (ir *invoiceRepo) GetByID(ctx context.Context, tx *gorm.DB, invoiceID uint) (*types.Invoice, error) {
	transaction := tx
	if transaction == nil {
		transaction = ir.db
	}

	var result types.Invoice
	err := transaction.WithContext(ctx).
		Preload("Contact").
		Preload("InvoiceType").
		Preload("WorkOrder").
		Preload("WorkOrder.Vehicle").
		Preload("WorkOrder.Enterprise").
		First(&result, invoiceID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (ir *invoiceRepo) ListActivities(ctx context.Context, tx *gorm.DB, invoiceID uint) ([]*types.Activity, error) {
	transaction := tx
	if transaction == nil {
		transaction = ir.db
	}

	var results []*types.Activity
	if err := transaction.WithContext(ctx).
		Preload("UnitMeasurement").
		Preload("Provenance").
		Where("invoice_id = ?", invoiceID).
		Order("id").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
