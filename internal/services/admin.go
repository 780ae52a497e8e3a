package services

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/tallerbv/taller-backend/internal/admin"
	"github.com/tallerbv/taller-backend/internal/logger"
	apperrors "github.com/tallerbv/taller-backend/internal/pkg/errors"
)

// AdminService is the generic CRUD surface behind the back-office API. Field
// validation beyond the schema and referential integrity stay with the
// database.
type AdminService interface {
	Resource(name string) (admin.Resource, bool)
	Resources() []string
	List(ctx context.Context, tx *gorm.DB, resource string) (any, error)
	Get(ctx context.Context, tx *gorm.DB, resource string, id uint) (any, error)
	Create(ctx context.Context, tx *gorm.DB, resource string, record any) (any, error)
	Update(ctx context.Context, tx *gorm.DB, resource string, id uint, record any) (any, error)
	Delete(ctx context.Context, tx *gorm.DB, resource string, id uint) error
}

type adminService struct {
	db       *gorm.DB
	log      *logger.Logger
	registry *admin.Registry
}

func NewAdminService(db *gorm.DB, baseLog *logger.Logger, registry *admin.Registry) AdminService {
	return &adminService{
		db:       db,
		log:      baseLog.With("service", "AdminService"),
		registry: registry,
	}
}

func (s *adminService) Resource(name string) (admin.Resource, bool) {
	return s.registry.Get(name)
}

func (s *adminService) Resources() []string {
	return s.registry.Names()
}

func (s *adminService) resource(name string) (admin.Resource, error) {
	res, ok := s.registry.Get(name)
	if !ok {
		return admin.Resource{}, fmt.Errorf("%w: resource %q", apperrors.ErrNotFound, name)
	}
	return res, nil
}

func (s *adminService) List(ctx context.Context, tx *gorm.DB, resource string) (any, error) {
	res, err := s.resource(resource)
	if err != nil {
		return nil, err
	}

	transaction := tx
	if transaction == nil {
		transaction = s.db
	}

	records := res.NewSlice()
	if err := transaction.WithContext(ctx).Find(records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (s *adminService) Get(ctx context.Context, tx *gorm.DB, resource string, id uint) (any, error) {
	res, err := s.resource(resource)
	if err != nil {
		return nil, err
	}

	transaction := tx
	if transaction == nil {
		transaction = s.db
	}

	record := res.NewModel()
	err = transaction.WithContext(ctx).First(record, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: %s/%d", apperrors.ErrNotFound, resource, id)
	}
	if err != nil {
		return nil, err
	}
	return record, nil
}

func (s *adminService) Create(ctx context.Context, tx *gorm.DB, resource string, record any) (any, error) {
	if _, err := s.resource(resource); err != nil {
		return nil, err
	}

	transaction := tx
	if transaction == nil {
		transaction = s.db
	}

	if err := transaction.WithContext(ctx).Create(record).Error; err != nil {
		s.log.Warn("Create failed", "resource", resource, "error", err)
		return nil, err
	}
	return record, nil
}

func (s *adminService) Update(ctx context.Context, tx *gorm.DB, resource string, id uint, record any) (any, error) {
	transaction := tx
	if transaction == nil {
		transaction = s.db
	}

	// Existence check keeps Save from upserting a deleted id.
	if _, err := s.Get(ctx, transaction, resource, id); err != nil {
		return nil, err
	}

	if err := transaction.WithContext(ctx).Save(record).Error; err != nil {
		s.log.Warn("Update failed", "resource", resource, "id", id, "error", err)
		return nil, err
	}
	return record, nil
}

func (s *adminService) Delete(ctx context.Context, tx *gorm.DB, resource string, id uint) error {
	res, err := s.resource(resource)
	if err != nil {
		return err
	}

	transaction := tx
	if transaction == nil {
		transaction = s.db
	}

	result := transaction.WithContext(ctx).Delete(res.NewModel(), id)
	if result.Error != nil {
		s.log.Warn("Delete failed", "resource", resource, "id", id, "error", result.Error)
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: %s/%d", apperrors.ErrNotFound, resource, id)
	}
	return nil
}
