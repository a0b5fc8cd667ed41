package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"minops/internal/model"
	"minops/internal/repository"
	"minops/internal/service"
)

// AuditHandler exposes read-only access to the audit log.
type AuditHandler struct {
	auditService service.AuditService
}

// NewAuditHandler creates a new audit handler.
func NewAuditHandler(auditService service.AuditService) *AuditHandler {
	return &AuditHandler{auditService: auditService}
}

// List godoc
// @Summary List audit log entries
// @Description Entries are returned newest first. Filterable by actor and action.
// @Tags audit
// @Produce json
// @Security BearerAuth
// @Param user_id query int false "Filter by actor user ID"
// @Param action query string false "Filter by action" Enums(login, logout, create, update, delete, view)
// @Param limit query int false "Page size (default 50, max 500)"
// @Param offset query int false "Page offset"
// @Success 200 {array} model.UserLog
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /audit-logs [get]
func (h *AuditHandler) List(c echo.Context) error {
	var filter repository.UserLogFilter

	if raw := c.QueryParam("user_id"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid user_id")
		}
		userID := uint(parsed)
		filter.UserID = &userID
	}
	if raw := c.QueryParam("action"); raw != "" {
		filter.Action = model.LogAction(raw)
	}
	if raw := c.QueryParam("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid limit")
		}
		filter.Limit = limit
	}
	if raw := c.QueryParam("offset"); raw != "" {
		offset, err := strconv.Atoi(raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid offset")
		}
		filter.Offset = offset
	}

	logs, err := h.auditService.ListLogs(c.Request().Context(), filter)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, logs)
}
