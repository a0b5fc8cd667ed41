package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"minops/internal/model"
	"minops/internal/service"
)

// MineHandler handles the mine and sector inventory endpoints.
type MineHandler struct {
	mineService service.MineService
}

// NewMineHandler creates a new mine handler.
func NewMineHandler(mineService service.MineService) *MineHandler {
	return &MineHandler{mineService: mineService}
}

// MineRequest represents mine create/update data.
type MineRequest struct {
	Name     string `json:"name" validate:"required"`
	Location string `json:"location" validate:"required"`
	Status   string `json:"status" validate:"omitempty,oneof=active maintenance closed"`
}

// SectorRequest represents sector create/update data.
type SectorRequest struct {
	Name   string          `json:"name" validate:"required"`
	DepthM decimal.Decimal `json:"depth_m"`
}

// ListMines godoc
// @Summary List mines
// @Tags mines
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Mine
// @Failure 401 {object} errors.ErrorResponse
// @Router /mines [get]
func (h *MineHandler) ListMines(c echo.Context) error {
	mines, err := h.mineService.ListMines(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, mines)
}

// GetMine godoc
// @Summary Get a mine with its sectors
// @Tags mines
// @Produce json
// @Security BearerAuth
// @Param id path int true "Mine ID"
// @Success 200 {object} model.Mine
// @Failure 404 {object} errors.ErrorResponse
// @Router /mines/{id} [get]
func (h *MineHandler) GetMine(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	mine, err := h.mineService.GetMine(c.Request().Context(), id, ActorFrom(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, mine)
}

// CreateMine godoc
// @Summary Create a mine
// @Tags mines
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body MineRequest true "Mine data"
// @Success 201 {object} model.Mine
// @Failure 400 {object} errors.ErrorResponse
// @Router /mines [post]
func (h *MineHandler) CreateMine(c echo.Context) error {
	var req MineRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	mine, err := h.mineService.CreateMine(c.Request().Context(), req.Name, req.Location, model.MineStatus(req.Status), ActorFrom(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, mine)
}

// UpdateMine godoc
// @Summary Update a mine
// @Tags mines
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Mine ID"
// @Param request body MineRequest true "Updated fields"
// @Success 200 {object} model.Mine
// @Failure 404 {object} errors.ErrorResponse
// @Router /mines/{id} [put]
func (h *MineHandler) UpdateMine(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	var req MineRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	mine, err := h.mineService.UpdateMine(c.Request().Context(), id, req.Name, req.Location, model.MineStatus(req.Status), ActorFrom(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, mine)
}

// DeleteMine godoc
// @Summary Delete a mine
// @Description Sectors and their sensors are removed with the mine.
// @Tags mines
// @Produce json
// @Security BearerAuth
// @Param id path int true "Mine ID"
// @Success 204 "No Content"
// @Failure 404 {object} errors.ErrorResponse
// @Router /mines/{id} [delete]
func (h *MineHandler) DeleteMine(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.mineService.DeleteMine(c.Request().Context(), id, ActorFrom(c)); err != nil {
		return respondError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// ListSectors godoc
// @Summary List a mine's sectors
// @Tags sectors
// @Produce json
// @Security BearerAuth
// @Param id path int true "Mine ID"
// @Success 200 {array} model.Sector
// @Failure 404 {object} errors.ErrorResponse
// @Router /mines/{id}/sectors [get]
func (h *MineHandler) ListSectors(c echo.Context) error {
	mineID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	sectors, err := h.mineService.ListSectors(c.Request().Context(), mineID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, sectors)
}

// CreateSector godoc
// @Summary Add a sector to a mine
// @Tags sectors
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Mine ID"
// @Param request body SectorRequest true "Sector data"
// @Success 201 {object} model.Sector
// @Failure 404 {object} errors.ErrorResponse
// @Router /mines/{id}/sectors [post]
func (h *MineHandler) CreateSector(c echo.Context) error {
	mineID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	var req SectorRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	sector, err := h.mineService.CreateSector(c.Request().Context(), mineID, req.Name, req.DepthM, ActorFrom(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, sector)
}

// UpdateSector godoc
// @Summary Update a sector
// @Tags sectors
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Sector ID"
// @Param request body SectorRequest true "Updated fields"
// @Success 200 {object} model.Sector
// @Failure 404 {object} errors.ErrorResponse
// @Router /sectors/{id} [put]
func (h *MineHandler) UpdateSector(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	var req SectorRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	sector, err := h.mineService.UpdateSector(c.Request().Context(), id, req.Name, req.DepthM, ActorFrom(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, sector)
}

// DeleteSector godoc
// @Summary Delete a sector
// @Description The sector's sensors are removed with it.
// @Tags sectors
// @Produce json
// @Security BearerAuth
// @Param id path int true "Sector ID"
// @Success 204 "No Content"
// @Failure 404 {object} errors.ErrorResponse
// @Router /sectors/{id} [delete]
func (h *MineHandler) DeleteSector(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.mineService.DeleteSector(c.Request().Context(), id, ActorFrom(c)); err != nil {
		return respondError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
