package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"minops/internal/service"
)

// RoleHandler handles role and permission management endpoints.
type RoleHandler struct {
	roleService service.RoleService
}

// NewRoleHandler creates a new role handler.
func NewRoleHandler(roleService service.RoleService) *RoleHandler {
	return &RoleHandler{roleService: roleService}
}

// CreateRoleRequest represents a role creation request.
type CreateRoleRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}

// SetPermissionsRequest replaces a role's full permission set. An empty
// list is valid and clears the role.
type SetPermissionsRequest struct {
	PermissionIDs []uint `json:"permission_ids" validate:"required"`
}

// ListPermissions godoc
// @Summary List all registered permissions
// @Tags roles
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Permission
// @Failure 401 {object} errors.ErrorResponse
// @Router /permissions [get]
func (h *RoleHandler) ListPermissions(c echo.Context) error {
	permissions, err := h.roleService.ListPermissions(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, permissions)
}

// List godoc
// @Summary List roles
// @Tags roles
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Role
// @Failure 401 {object} errors.ErrorResponse
// @Router /roles [get]
func (h *RoleHandler) List(c echo.Context) error {
	roles, err := h.roleService.ListRoles(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, roles)
}

// Get godoc
// @Summary Get a role with its permissions
// @Tags roles
// @Produce json
// @Security BearerAuth
// @Param id path int true "Role ID"
// @Success 200 {object} model.Role
// @Failure 404 {object} errors.ErrorResponse
// @Router /roles/{id} [get]
func (h *RoleHandler) Get(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	role, err := h.roleService.GetRole(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, role)
}

// Create godoc
// @Summary Create a role
// @Tags roles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateRoleRequest true "Role data"
// @Success 201 {object} model.Role
// @Failure 400 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /roles [post]
func (h *RoleHandler) Create(c echo.Context) error {
	var req CreateRoleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	role, err := h.roleService.CreateRole(c.Request().Context(), req.Name, req.Description, ActorFrom(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, role)
}

// SetPermissions godoc
// @Summary Replace a role's permission set
// @Description The supplied list becomes the role's entire permission set. Unknown IDs reject the whole request.
// @Tags roles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Role ID"
// @Param request body SetPermissionsRequest true "Permission IDs"
// @Success 200 {object} model.Role
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /roles/{id}/permissions [put]
func (h *RoleHandler) SetPermissions(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	var req SetPermissionsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.PermissionIDs == nil {
		return echo.NewHTTPError(http.StatusBadRequest, "permission_ids is required")
	}

	role, err := h.roleService.SetRolePermissions(c.Request().Context(), id, req.PermissionIDs, ActorFrom(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, role)
}

// Delete godoc
// @Summary Delete a role
// @Description Protected roles and roles still assigned to users cannot be deleted.
// @Tags roles
// @Produce json
// @Security BearerAuth
// @Param id path int true "Role ID"
// @Success 204 "No Content"
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /roles/{id} [delete]
func (h *RoleHandler) Delete(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.roleService.DeleteRole(c.Request().Context(), id, ActorFrom(c)); err != nil {
		return respondError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
