package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"rentorbuy/internal/models"
	"rentorbuy/internal/pagination"
	"rentorbuy/internal/services"
	"rentorbuy/internal/simulation"
)

// AuditHandler exposes the request audit trail to operators.
type AuditHandler struct {
	auditService services.AuditServicer
}

// NewAuditHandler creates a new AuditHandler.
func NewAuditHandler(auditService services.AuditServicer) *AuditHandler {
	return &AuditHandler{auditService: auditService}
}

// ListAuditLogs handles listing audit entries, newest first.
// @Summary     List audit logs
// @Description Paginated request audit trail, optionally filtered by action
// @Tags        admin
// @Produce     json
// @Security    ApiKeyAuth
// @Param       action    query string false "SIMULATE or SCHEDULE"
// @Param       page      query int    false "Page number (default 1)"
// @Param       page_size query int    false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.AuditLog] "Paginated audit logs"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Invalid API key"
// @Failure     503 {object} ErrorResponse "Audit trail disabled"
// @Router      /admin/audit-logs [get]
func (h *AuditHandler) ListAuditLogs(c *gin.Context) {
	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, bindingError(err))
		return
	}

	action := models.AuditAction(c.Query("action"))
	switch action {
	case "", models.AuditActionSimulate, models.AuditActionSchedule:
	default:
		respondWithError(c, invalidFields([]simulation.FieldError{{Field: "action", Reason: "must be SIMULATE or SCHEDULE"}}, nil))
		return
	}

	resp, err := h.auditService.List(action, page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
