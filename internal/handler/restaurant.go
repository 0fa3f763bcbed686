package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fabien/restaurant-booking-api/internal/model"
	"github.com/fabien/restaurant-booking-api/internal/service"
)

// RestaurantHandler exposes CRUD endpoints for restaurants.
type RestaurantHandler struct {
	Restaurants *service.RestaurantService
}

// NewRestaurantHandler constructs a RestaurantHandler.
func NewRestaurantHandler(restaurants *service.RestaurantService) *RestaurantHandler {
	if restaurants == nil {
		panic("nil service passed to NewRestaurantHandler")
	}
	return &RestaurantHandler{Restaurants: restaurants}
}

// restaurantCreateRequest is the payload for POST /api/restaurants.
type restaurantCreateRequest struct {
	Name        string `json:"name" validate:"required"`
	Address     string `json:"address" validate:"required"`
	PhoneNumber string `json:"phone_number" validate:"required"`
}

// restaurantUpdateRequest is the payload for PUT /api/restaurants/:id.
// It currently mirrors the create shape; the types stay separate so the
// two operations can diverge (partial updates) without a breaking change.
type restaurantUpdateRequest struct {
	Name        string `json:"name" validate:"required"`
	Address     string `json:"address" validate:"required"`
	PhoneNumber string `json:"phone_number" validate:"required"`
}

// List handles GET /api/restaurants.
func (h *RestaurantHandler) List(c echo.Context) error {
	items, err := h.Restaurants.FindAll(c.Request().Context())
	if err != nil {
		return writeServiceError(c, err)
	}
	if items == nil {
		items = []*model.Restaurant{}
	}
	return c.JSON(http.StatusOK, items)
}

// Get handles GET /api/restaurants/:id.
func (h *RestaurantHandler) Get(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	r, err := h.Restaurants.FindByID(c.Request().Context(), id)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, r)
}

// Create handles POST /api/restaurants.
func (h *RestaurantHandler) Create(c echo.Context) error {
	var req restaurantCreateRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	r, err := h.Restaurants.Create(c.Request().Context(), &model.Restaurant{
		Name:        req.Name,
		Address:     req.Address,
		PhoneNumber: req.PhoneNumber,
	})
	if err != nil {
		return writeServiceError(c, err)
	}
	return created(c, r.ID, r)
}

// Update handles PUT /api/restaurants/:id.
func (h *RestaurantHandler) Update(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var req restaurantUpdateRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	r, err := h.Restaurants.Update(c.Request().Context(), id, &model.Restaurant{
		Name:        req.Name,
		Address:     req.Address,
		PhoneNumber: req.PhoneNumber,
	})
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, r)
}

// Delete handles DELETE /api/restaurants/:id.
func (h *RestaurantHandler) Delete(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	if err := h.Restaurants.DeleteByID(c.Request().Context(), id); err != nil {
		return writeServiceError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
