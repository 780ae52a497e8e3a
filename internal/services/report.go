package services

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/tallerbv/taller-backend/internal/logger"
	apperrors "github.com/tallerbv/taller-backend/internal/pkg/errors"
	"github.com/tallerbv/taller-backend/internal/report"
	"github.com/tallerbv/taller-backend/internal/repos"
)

// Export is a finished downloadable document.
type Export struct {
	Filename    string
	ContentType string
	Data        []byte
}

// ReportService renders the two letterhead documents. Each export is a
// synchronous read-only build: fetch the aggregate, assemble the tables,
// render, return the bytes.
type ReportService interface {
	ExportWorkOrder(ctx context.Context, tx *gorm.DB, workOrderID uint) (*Export, error)
	ExportInvoice(ctx context.Context, tx *gorm.DB, invoiceID uint) (*Export, error)
}

type reportService struct {
	db            *gorm.DB
	log           *logger.Logger
	workOrderRepo repos.WorkOrderRepo
	invoiceRepo   repos.InvoiceRepo
	cfg           report.Config
	profile       report.Profile
}

func NewReportService(
	db *gorm.DB,
	baseLog *logger.Logger,
	workOrderRepo repos.WorkOrderRepo,
	invoiceRepo repos.InvoiceRepo,
	cfg report.Config,
	profile report.Profile,
) ReportService {
	return &reportService{
		db:            db,
		log:           baseLog.With("service", "ReportService"),
		workOrderRepo: workOrderRepo,
		invoiceRepo:   invoiceRepo,
		cfg:           cfg,
		profile:       profile,
	}
}

func (s *reportService) ExportWorkOrder(ctx context.Context, tx *gorm.DB, workOrderID uint) (*Export, error) {
	transaction := tx
	if transaction == nil {
		transaction = s.db
	}

	wo, err := s.workOrderRepo.GetByID(ctx, transaction, workOrderID)
	if err != nil {
		return nil, err
	}
	if wo == nil {
		return nil, fmt.Errorf("%w: work order %d", apperrors.ErrNotFound, workOrderID)
	}

	states, err := s.workOrderRepo.ListPhysicalStates(ctx, transaction, workOrderID)
	if err != nil {
		return nil, err
	}

	data, err := report.BuildWorkOrder(wo, states, s.cfg, s.profile)
	if err != nil {
		s.log.Error("ExportWorkOrder render failed", "work_order_id", workOrderID, "error", err)
		return nil, err
	}
	return &Export{
		Filename:    "Orden de trabajo.pdf",
		ContentType: "application/pdf",
		Data:        data,
	}, nil
}

func (s *reportService) ExportInvoice(ctx context.Context, tx *gorm.DB, invoiceID uint) (*Export, error) {
	transaction := tx
	if transaction == nil {
		transaction = s.db
	}

	inv, err := s.invoiceRepo.GetByID(ctx, transaction, invoiceID)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, fmt.Errorf("%w: invoice %d", apperrors.ErrNotFound, invoiceID)
	}

	activities, err := s.invoiceRepo.ListActivities(ctx, transaction, invoiceID)
	if err != nil {
		return nil, err
	}

	data, err := report.BuildInvoice(inv, activities, s.cfg, s.profile)
	if err != nil {
		s.log.Error("ExportInvoice render failed", "invoice_id", invoiceID, "error", err)
		return nil, err
	}
	return &Export{
		Filename:    "Factura.pdf",
		ContentType: "application/pdf",
		Data:        data,
	}, nil
}
