package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fabien/restaurant-booking-api/internal/model"
	"github.com/fabien/restaurant-booking-api/internal/service"
)

// DiningTableHandler exposes CRUD endpoints for dining tables.
type DiningTableHandler struct {
	Tables *service.DiningTableService
}

// NewDiningTableHandler constructs a DiningTableHandler.
func NewDiningTableHandler(tables *service.DiningTableService) *DiningTableHandler {
	if tables == nil {
		panic("nil service passed to NewDiningTableHandler")
	}
	return &DiningTableHandler{Tables: tables}
}

// diningTableCreateRequest is the payload for POST /api/tables.
type diningTableCreateRequest struct {
	RestaurantID uint64 `json:"restaurant_id" validate:"required"`
	Capacity     int    `json:"capacity" validate:"required"`
	Status       string `json:"status" validate:"required,oneof=AVAILABLE MAINTENANCE"`
}

// diningTableUpdateRequest is the payload for PUT /api/tables/:id.
type diningTableUpdateRequest struct {
	RestaurantID uint64 `json:"restaurant_id" validate:"required"`
	Capacity     int    `json:"capacity" validate:"required"`
	Status       string `json:"status" validate:"required,oneof=AVAILABLE MAINTENANCE"`
}

// List handles GET /api/tables.
func (h *DiningTableHandler) List(c echo.Context) error {
	items, err := h.Tables.FindAll(c.Request().Context())
	if err != nil {
		return writeServiceError(c, err)
	}
	if items == nil {
		items = []*model.DiningTable{}
	}
	return c.JSON(http.StatusOK, items)
}

// Get handles GET /api/tables/:id.
func (h *DiningTableHandler) Get(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	t, err := h.Tables.FindByID(c.Request().Context(), id)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, t)
}

// Create handles POST /api/tables.
func (h *DiningTableHandler) Create(c echo.Context) error {
	var req diningTableCreateRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	t, err := h.Tables.Create(c.Request().Context(), &model.DiningTable{
		RestaurantID: req.RestaurantID,
		Capacity:     req.Capacity,
		Status:       model.TableStatus(req.Status),
	})
	if err != nil {
		return writeServiceError(c, err)
	}
	return created(c, t.ID, t)
}

// Update handles PUT /api/tables/:id.
func (h *DiningTableHandler) Update(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var req diningTableUpdateRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	t, err := h.Tables.Update(c.Request().Context(), id, &model.DiningTable{
		RestaurantID: req.RestaurantID,
		Capacity:     req.Capacity,
		Status:       model.TableStatus(req.Status),
	})
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, t)
}

// Delete handles DELETE /api/tables/:id.
func (h *DiningTableHandler) Delete(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	if err := h.Tables.DeleteByID(c.Request().Context(), id); err != nil {
		return writeServiceError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
