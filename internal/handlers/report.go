package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/tallerbv/taller-backend/internal/logger"
	apperrors "github.com/tallerbv/taller-backend/internal/pkg/errors"
	"github.com/tallerbv/taller-backend/internal/services"
)

type ReportHandler struct {
	log           *logger.Logger
	reportService services.ReportService
}

func NewReportHandler(log *logger.Logger, reportService services.ReportService) *ReportHandler {
	return &ReportHandler{
		log:           log.With("handler", "ReportHandler"),
		reportService: reportService,
	}
}

func (h *ReportHandler) ExportWorkOrder(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	export, err := h.reportService.ExportWorkOrder(c.Request.Context(), nil, id)
	if err != nil {
		h.respondExportError(c, "work_order_export_failed", id, err)
		return
	}
	respondAttachment(c, export)
}

func (h *ReportHandler) ExportInvoice(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	export, err := h.reportService.ExportInvoice(c.Request.Context(), nil, id)
	if err != nil {
		h.respondExportError(c, "invoice_export_failed", id, err)
		return
	}
	respondAttachment(c, export)
}

func (h *ReportHandler) respondExportError(c *gin.Context, code string, id uint, err error) {
	if errors.Is(err, apperrors.ErrNotFound) {
		RespondError(c, http.StatusNotFound, "not_found", err)
		return
	}
	h.log.Error("Export failed", "id", id, "error", err)
	RespondError(c, http.StatusInternalServerError, code, err)
}

func respondAttachment(c *gin.Context, export *services.Export) {
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.Filename))
	c.Data(http.StatusOK, export.ContentType, export.Data)
}

func pathID(c *gin.Context) (uint, bool) {
	raw := c.Param("id")
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_id", fmt.Errorf("invalid id %q", raw))
		return 0, false
	}
	return uint(id), true
}
