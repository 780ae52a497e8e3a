package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tallerbv/taller-backend/internal/logger"
	apperrors "github.com/tallerbv/taller-backend/internal/pkg/errors"
	"github.com/tallerbv/taller-backend/internal/services"
)

type AdminHandler struct {
	log          *logger.Logger
	adminService services.AdminService
}

func NewAdminHandler(log *logger.Logger, adminService services.AdminService) *AdminHandler {
	return &AdminHandler{
		log:          log.With("handler", "AdminHandler"),
		adminService: adminService,
	}
}

func (h *AdminHandler) ListResources(c *gin.Context) {
	RespondOK(c, gin.H{"resources": h.adminService.Resources()})
}

func (h *AdminHandler) List(c *gin.Context) {
	records, err := h.adminService.List(c.Request.Context(), nil, c.Param("resource"))
	if err != nil {
		h.respondAdminError(c, "list_failed", err)
		return
	}
	RespondOK(c, gin.H{"records": records})
}

func (h *AdminHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	record, err := h.adminService.Get(c.Request.Context(), nil, c.Param("resource"), id)
	if err != nil {
		h.respondAdminError(c, "get_failed", err)
		return
	}
	RespondOK(c, gin.H{"record": record})
}

func (h *AdminHandler) Create(c *gin.Context) {
	resource := c.Param("resource")
	res, ok := h.adminService.Resource(resource)
	if !ok {
		RespondError(c, http.StatusNotFound, "unknown_resource", errors.New("unknown resource "+resource))
		return
	}

	record := res.NewModel()
	if err := c.ShouldBindJSON(record); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_payload", err)
		return
	}

	created, err := h.adminService.Create(c.Request.Context(), nil, resource, record)
	if err != nil {
		h.respondAdminError(c, "create_failed", err)
		return
	}
	RespondOK(c, gin.H{"record": created})
}

func (h *AdminHandler) Update(c *gin.Context) {
	resource := c.Param("resource")
	id, ok := pathID(c)
	if !ok {
		return
	}

	// Load-then-bind: fields absent from the payload keep their stored value
	// and the primary key stays authoritative.
	record, err := h.adminService.Get(c.Request.Context(), nil, resource, id)
	if err != nil {
		h.respondAdminError(c, "update_failed", err)
		return
	}
	if err := c.ShouldBindJSON(record); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_payload", err)
		return
	}

	updated, err := h.adminService.Update(c.Request.Context(), nil, resource, id, record)
	if err != nil {
		h.respondAdminError(c, "update_failed", err)
		return
	}
	RespondOK(c, gin.H{"record": updated})
}

func (h *AdminHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.adminService.Delete(c.Request.Context(), nil, c.Param("resource"), id); err != nil {
		h.respondAdminError(c, "delete_failed", err)
		return
	}
	RespondOK(c, gin.H{"deleted": id})
}

func (h *AdminHandler) respondAdminError(c *gin.Context, code string, err error) {
	if errors.Is(err, apperrors.ErrNotFound) {
		RespondError(c, http.StatusNotFound, "not_found", err)
		return
	}
	h.log.Error("Admin operation failed", "code", code, "error", err)
	RespondError(c, http.StatusInternalServerError, code, err)
}
