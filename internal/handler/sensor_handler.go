package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"minops/internal/model"
	"minops/internal/service"
)

// SensorHandler handles the sensor inventory endpoints.
type SensorHandler struct {
	mineService service.MineService
}

// NewSensorHandler creates a new sensor handler.
func NewSensorHandler(mineService service.MineService) *SensorHandler {
	return &SensorHandler{mineService: mineService}
}

// CreateSensorRequest represents sensor creation data.
type CreateSensorRequest struct {
	Name      string          `json:"name" validate:"required"`
	Type      string          `json:"type" validate:"required,oneof=gas temperature humidity seismic"`
	Unit      string          `json:"unit" validate:"required"`
	Threshold decimal.Decimal `json:"threshold"`
}

// UpdateSensorRequest represents sensor update data. Type is immutable
// once the sensor exists.
type UpdateSensorRequest struct {
	Name        string          `json:"name" validate:"required"`
	Unit        string          `json:"unit" validate:"required"`
	Threshold   decimal.Decimal `json:"threshold"`
	LastReading decimal.Decimal `json:"last_reading"`
	Active      bool            `json:"active"`
}

// ListSensors godoc
// @Summary List a sector's sensors
// @Tags sensors
// @Produce json
// @Security BearerAuth
// @Param id path int true "Sector ID"
// @Success 200 {array} model.Sensor
// @Failure 404 {object} errors.ErrorResponse
// @Router /sectors/{id}/sensors [get]
func (h *SensorHandler) ListSensors(c echo.Context) error {
	sectorID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	sensors, err := h.mineService.ListSensors(c.Request().Context(), sectorID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, sensors)
}

// CreateSensor godoc
// @Summary Add a sensor to a sector
// @Tags sensors
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Sector ID"
// @Param request body CreateSensorRequest true "Sensor data"
// @Success 201 {object} model.Sensor
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /sectors/{id}/sensors [post]
func (h *SensorHandler) CreateSensor(c echo.Context) error {
	sectorID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	var req CreateSensorRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	sensor, err := h.mineService.CreateSensor(c.Request().Context(), sectorID, req.Name, model.SensorType(req.Type), req.Unit, req.Threshold, ActorFrom(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, sensor)
}

// UpdateSensor godoc
// @Summary Update a sensor
// @Tags sensors
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Sensor ID"
// @Param request body UpdateSensorRequest true "Updated fields"
// @Success 200 {object} model.Sensor
// @Failure 404 {object} errors.ErrorResponse
// @Router /sensors/{id} [put]
func (h *SensorHandler) UpdateSensor(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	var req UpdateSensorRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	sensor, err := h.mineService.UpdateSensor(c.Request().Context(), id, req.Name, req.Unit, req.Threshold, req.LastReading, req.Active, ActorFrom(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, sensor)
}

// DeleteSensor godoc
// @Summary Delete a sensor
// @Tags sensors
// @Produce json
// @Security BearerAuth
// @Param id path int true "Sensor ID"
// @Success 204 "No Content"
// @Failure 404 {object} errors.ErrorResponse
// @Router /sensors/{id} [delete]
func (h *SensorHandler) DeleteSensor(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.mineService.DeleteSensor(c.Request().Context(), id, ActorFrom(c)); err != nil {
		return respondError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
