package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fabien/restaurant-booking-api/internal/model"
	"github.com/fabien/restaurant-booking-api/internal/service"
)

// CustomerHandler exposes CRUD endpoints for customers.
type CustomerHandler struct {
	Customers *service.CustomerService
}

// NewCustomerHandler constructs a CustomerHandler.
func NewCustomerHandler(customers *service.CustomerService) *CustomerHandler {
	if customers == nil {
		panic("nil service passed to NewCustomerHandler")
	}
	return &CustomerHandler{Customers: customers}
}

// customerCreateRequest is the payload for POST /api/customers.
type customerCreateRequest struct {
	Name        string `json:"name" validate:"required"`
	Email       string `json:"email" validate:"omitempty,email"`
	PhoneNumber string `json:"phone_number" validate:"required"`
}

// customerUpdateRequest is the payload for PUT /api/customers/:id.
type customerUpdateRequest struct {
	Name        string `json:"name" validate:"required"`
	Email       string `json:"email" validate:"omitempty,email"`
	PhoneNumber string `json:"phone_number" validate:"required"`
}

func customerFromFields(name, email, phone string) *model.Customer {
	c := &model.Customer{Name: name, PhoneNumber: phone}
	if email != "" {
		c.Email = &email
	}
	return c
}

// List handles GET /api/customers.
func (h *CustomerHandler) List(c echo.Context) error {
	items, err := h.Customers.FindAll(c.Request().Context())
	if err != nil {
		return writeServiceError(c, err)
	}
	if items == nil {
		items = []*model.Customer{}
	}
	return c.JSON(http.StatusOK, items)
}

// Get handles GET /api/customers/:id.
func (h *CustomerHandler) Get(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	cust, err := h.Customers.FindByID(c.Request().Context(), id)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, cust)
}

// Create handles POST /api/customers.
func (h *CustomerHandler) Create(c echo.Context) error {
	var req customerCreateRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	cust, err := h.Customers.Create(c.Request().Context(), customerFromFields(req.Name, req.Email, req.PhoneNumber))
	if err != nil {
		return writeServiceError(c, err)
	}
	return created(c, cust.ID, cust)
}

// Update handles PUT /api/customers/:id.
func (h *CustomerHandler) Update(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var req customerUpdateRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	cust, err := h.Customers.Update(c.Request().Context(), id, customerFromFields(req.Name, req.Email, req.PhoneNumber))
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, cust)
}

// Delete handles DELETE /api/customers/:id.
func (h *CustomerHandler) Delete(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	if err := h.Customers.DeleteByID(c.Request().Context(), id); err != nil {
		return writeServiceError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
