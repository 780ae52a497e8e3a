package repos

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/tallerbv/taller-backend/internal/logger"
	"github.com/tallerbv/taller-backend/internal/types"
)

type WorkOrderRepo interface {
	GetByID(ctx context.Context, tx *gorm.DB, workOrderID uint) (*types.WorkOrder, error)
	ListPhysicalStates(ctx context.Context, tx *gorm.DB, workOrderID uint) ([]*types.PhysicalState, error)
}

type workOrderRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewWorkOrderRepo(db *gorm.DB, baseLog *logger.Logger) WorkOrderRepo {
	repoLog := baseLog.With("repo", "WorkOrderRepo")
	return &workOrderRepo{db: db, log: repoLog}
}

// GetByID loads the work order with every reference the report prints.
// A missing id yields (nil, nil); callers decide how to report it.
func (wr *workOrderRepo) GetByID(ctx context.Context, tx *gorm.DB, workOrderID uint) (*types.WorkOrder, error) {
	transaction := tx
	if transaction == nil {
		transaction = wr.db
	}

	var result types.WorkOrder
	err := transaction.WithContext(ctx).
		Preload("Vehicle").
		Preload("Mechanic").
		Preload("Assistant").
		Preload("Enterprise").
		Preload("PaymentMethod").
		Preload("ServiceGuarantee").
		First(&result, workOrderID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (wr *workOrderRepo) ListPhysicalStates(ctx context.Context, tx *gorm.DB, workOrderID uint) ([]*types.PhysicalState, error) {
	transaction := tx
	if transaction == nil {
		transaction = wr.db
	}

	var results []*types.PhysicalState
	if err := transaction.WithContext(ctx).
		Preload("Part").
		Where("work_order_id = ?", workOrderID).
		Order("id").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
