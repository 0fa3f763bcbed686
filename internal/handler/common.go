package handler // handler defines http handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/fabien/restaurant-booking-api/internal/repository"
	"github.com/fabien/restaurant-booking-api/internal/service"
)

// parseID extracts the numeric :id path parameter.  Zero is rejected
// since identifiers are auto-incremented starting at one.
func parseID(c echo.Context) (uint64, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, errors.New("invalid id")
	}
	return id, nil
}

// bindAndValidate binds the request body into req and runs struct
// validation.  Failures write the 400 response here and return the
// original error so callers stop before touching the service; the
// response is already committed, so Echo's error handler stays quiet.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		_ = c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
		return err
	}
	if err := c.Validate(req); err != nil {
		var ve *ValidationError
		if errors.As(err, &ve) {
			_ = c.JSON(http.StatusBadRequest, ve.Fields)
		} else {
			_ = c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
		}
		return err
	}
	return nil
}

// writeServiceError translates service and repository failures into the
// HTTP responses the API exposes: missing entities map to 404,
// business-rule rejections to 400, uniqueness violations to 409 and
// anything else to 500.
func writeServiceError(c echo.Context, err error) error {
	var capErr *service.CapacityError
	switch {
	case errors.Is(err, repository.ErrRestaurantNotFound),
		errors.Is(err, repository.ErrDiningTableNotFound),
		errors.Is(err, repository.ErrCustomerNotFound),
		errors.Is(err, repository.ErrBookingNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"error": err.Error()})
	case errors.Is(err, service.ErrDateInPast),
		errors.Is(err, service.ErrDateTooFar),
		errors.Is(err, service.ErrInvalidDate),
		errors.Is(err, service.ErrTableUnavailable),
		errors.As(err, &capErr):
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	case repository.IsDuplicateEntry(err):
		return c.JSON(http.StatusConflict, echo.Map{"error": "a resource with these details already exists"})
	}
	return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal server error"})
}

// created writes a 201 response with a Location header pointing at the
// new resource.
func created(c echo.Context, id uint64, body any) error {
	c.Response().Header().Set(echo.HeaderLocation, fmt.Sprintf("%s/%d", c.Request().URL.Path, id))
	return c.JSON(http.StatusCreated, body)
}
