package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/fabien/restaurant-booking-api/internal/model"
	"github.com/fabien/restaurant-booking-api/internal/queue"
	"github.com/fabien/restaurant-booking-api/internal/service"
)

// BookingHandler exposes the booking endpoints.  Admission decisions are
// delegated to the BookingService; this layer only maps requests,
// responses and error statuses, and publishes a best-effort event when a
// booking is created.
type BookingHandler struct {
	Bookings *service.BookingService

	// PublishEvents enables the booking.created queue publication.  It
	// is disabled in tests so handlers do not dial a broker.
	PublishEvents bool
}

// NewBookingHandler constructs a BookingHandler.
func NewBookingHandler(bookings *service.BookingService, publishEvents bool) *BookingHandler {
	if bookings == nil {
		panic("nil service passed to NewBookingHandler")
	}
	return &BookingHandler{Bookings: bookings, PublishEvents: publishEvents}
}

// bookingCreateRequest is the payload for POST /api/bookings.  The
// customer is given either by id or by inline fields; name and phone are
// only required when no id is provided.
type bookingCreateRequest struct {
	DiningTableID uint64 `json:"dining_table_id" validate:"required"`
	CustomerID    uint64 `json:"customer_id"`
	CustomerName  string `json:"customer_name" validate:"required_without=CustomerID"`
	CustomerEmail string `json:"customer_email" validate:"omitempty,email"`
	CustomerPhone string `json:"customer_phone" validate:"required_without=CustomerID"`
	TimeSlot      string `json:"time_slot" validate:"required,oneof=LUNCH_12H14H LUNCH_14H16H DINNER_19H21H DINNER_21H23H"`
	Date          string `json:"date" validate:"required,datetime=2006-01-02"`
	Status        string `json:"status" validate:"required,oneof=IN_PROGRESS CANCELED FINISH"`
}

// bookingUpdateRequest is the payload for PUT /api/bookings/:id.  Update
// is a full replacement, so the shape matches create today; the types
// stay separate so update can move to a partial form without touching
// create.
type bookingUpdateRequest struct {
	DiningTableID uint64 `json:"dining_table_id" validate:"required"`
	CustomerID    uint64 `json:"customer_id"`
	CustomerName  string `json:"customer_name" validate:"required_without=CustomerID"`
	CustomerEmail string `json:"customer_email" validate:"omitempty,email"`
	CustomerPhone string `json:"customer_phone" validate:"required_without=CustomerID"`
	TimeSlot      string `json:"time_slot" validate:"required,oneof=LUNCH_12H14H LUNCH_14H16H DINNER_19H21H DINNER_21H23H"`
	Date          string `json:"date" validate:"required,datetime=2006-01-02"`
	Status        string `json:"status" validate:"required,oneof=IN_PROGRESS CANCELED FINISH"`
}

func candidateBooking(tableID, customerID uint64, name, email, phone, slot, date, status string) *model.Booking {
	customer := &model.Customer{ID: customerID}
	if customerID == 0 {
		customer = customerFromFields(name, email, phone)
	}
	return &model.Booking{
		DiningTableID: tableID,
		Customer:      customer,
		TimeSlot:      model.TimeSlot(slot),
		Date:          date,
		Status:        model.BookingStatus(status),
	}
}

// List handles GET /api/bookings.
func (h *BookingHandler) List(c echo.Context) error {
	items, err := h.Bookings.FindAll(c.Request().Context())
	if err != nil {
		return writeServiceError(c, err)
	}
	if items == nil {
		items = []*model.Booking{}
	}
	return c.JSON(http.StatusOK, items)
}

// Get handles GET /api/bookings/:id.
func (h *BookingHandler) Get(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	b, err := h.Bookings.FindByID(c.Request().Context(), id)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, b)
}

// Create handles POST /api/bookings.  On success the persisted booking
// is returned with a 201 status and a Location header, and a
// booking.created event is published asynchronously.
func (h *BookingHandler) Create(c echo.Context) error {
	var req bookingCreateRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	candidate := candidateBooking(req.DiningTableID, req.CustomerID,
		req.CustomerName, req.CustomerEmail, req.CustomerPhone,
		req.TimeSlot, req.Date, req.Status)

	b, err := h.Bookings.Create(c.Request().Context(), candidate)
	if err != nil {
		return writeServiceError(c, err)
	}
	h.publishCreated(b)
	return created(c, b.ID, b)
}

// Update handles PUT /api/bookings/:id.  The full candidate is
// revalidated; only the identity is preserved.
func (h *BookingHandler) Update(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var req bookingUpdateRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	candidate := candidateBooking(req.DiningTableID, req.CustomerID,
		req.CustomerName, req.CustomerEmail, req.CustomerPhone,
		req.TimeSlot, req.Date, req.Status)

	b, err := h.Bookings.Update(c.Request().Context(), id, candidate)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, b)
}

// Delete handles DELETE /api/bookings/:id.
func (h *BookingHandler) Delete(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	if err := h.Bookings.DeleteByID(c.Request().Context(), id); err != nil {
		return writeServiceError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// publishCreated fires a booking.created event in the background.  The
// booking has already committed; a broker failure is logged inside the
// publisher and never surfaces to the client.
func (h *BookingHandler) publishCreated(b *model.Booking) {
	if !h.PublishEvents || b == nil || b.Table == nil || b.Customer == nil {
		return
	}
	ev := queue.BookingCreatedEvent{
		BookingID:     b.ID,
		TableID:       b.Table.ID,
		TableCapacity: b.Table.Capacity,
		CustomerID:    b.Customer.ID,
		CustomerName:  b.Customer.Name,
		Date:          b.Date,
		TimeSlot:      string(b.TimeSlot),
		Status:        string(b.Status),
		CreatedAt:     time.Now().UTC().Format(time.RFC3339),
	}
	if b.Table.Restaurant != nil {
		ev.RestaurantID = b.Table.Restaurant.ID
		ev.RestaurantName = b.Table.Restaurant.Name
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = queue.PublishBookingCreated(ctx, ev)
	}()
}
