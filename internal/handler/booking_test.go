package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/fabien/restaurant-booking-api/internal/model"
	"github.com/fabien/restaurant-booking-api/internal/repository"
	"github.com/fabien/restaurant-booking-api/internal/service"
)

type stubBookingStore struct {
	mock.Mock
}

func (m *stubBookingStore) List(ctx context.Context) ([]*model.Booking, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Booking), args.Error(1)
}

func (m *stubBookingStore) GetByID(ctx context.Context, id uint64) (*model.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Booking), args.Error(1)
}

func (m *stubBookingStore) Create(ctx context.Context, b *model.Booking) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *stubBookingStore) Update(ctx context.Context, b *model.Booking) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *stubBookingStore) Delete(ctx context.Context, id uint64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *stubBookingStore) ExistsSlot(ctx context.Context, tableID uint64, date string, slot model.TimeSlot, countCanceled bool) (bool, error) {
	args := m.Called(ctx, tableID, date, slot, countCanceled)
	return args.Bool(0), args.Error(1)
}

func (m *stubBookingStore) ExistsSlotExcluding(ctx context.Context, tableID uint64, date string, slot model.TimeSlot, excludeID uint64, countCanceled bool) (bool, error) {
	args := m.Called(ctx, tableID, date, slot, excludeID, countCanceled)
	return args.Bool(0), args.Error(1)
}

type stubCustomerStore struct {
	mock.Mock
}

func (m *stubCustomerStore) GetByID(ctx context.Context, id uint64) (*model.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Customer), args.Error(1)
}

func (m *stubCustomerStore) Create(ctx context.Context, c *model.Customer) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

type stubTableStore struct {
	mock.Mock
}

func (m *stubTableStore) Exists(ctx context.Context, id uint64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

var handlerNow = func() time.Time {
	return time.Date(2025, 6, 15, 10, 30, 0, 0, time.UTC)
}

func handlerDate(n int) string {
	return handlerNow().AddDate(0, 0, n).Format("2006-01-02")
}

// newBookingTestEnv wires a real BookingService over mocked stores behind
// a real echo instance, so requests exercise binding, validation and
// error mapping end to end.  Event publication stays off.
func newBookingTestEnv(bookings *stubBookingStore, customers *stubCustomerStore, tables *stubTableStore) (*echo.Echo, *BookingHandler) {
	e := echo.New()
	e.Validator = NewRequestValidator()
	svc := service.NewBookingService(bookings, customers, tables, service.BookingRules{HorizonDays: 30, CountCanceled: true}, handlerNow)
	return e, NewBookingHandler(svc, false)
}

func doRequest(e *echo.Echo, h echo.HandlerFunc, method, target, body string, pathParams map[string]string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath(target)
	for k, v := range pathParams {
		c.SetParamNames(k)
		c.SetParamValues(v)
	}
	_ = h(c)
	return rec
}

func TestCreateBookingEndpoint_Success(t *testing.T) {
	bookings := new(stubBookingStore)
	customers := new(stubCustomerStore)
	tables := new(stubTableStore)
	e, h := newBookingTestEnv(bookings, customers, tables)

	date := handlerDate(5)
	customers.On("GetByID", mock.Anything, uint64(1)).Return(&model.Customer{ID: 1, Name: "Alice"}, nil)
	tables.On("Exists", mock.Anything, uint64(1)).Return(true, nil)
	bookings.On("ExistsSlot", mock.Anything, uint64(1), date, model.SlotDinner19H21H, true).Return(false, nil)
	bookings.On("Create", mock.Anything, mock.AnythingOfType("*model.Booking")).Run(func(args mock.Arguments) {
		args.Get(1).(*model.Booking).ID = 12
	}).Return(nil)
	bookings.On("GetByID", mock.Anything, uint64(12)).Return(&model.Booking{
		ID:       12,
		TimeSlot: model.SlotDinner19H21H,
		Date:     date,
		Status:   model.BookingInProgress,
		Table:    &model.DiningTable{ID: 1, Capacity: 4},
		Customer: &model.Customer{ID: 1, Name: "Alice"},
	}, nil)

	body := `{"dining_table_id":1,"customer_id":1,"time_slot":"DINNER_19H21H","date":"` + date + `","status":"IN_PROGRESS"}`
	rec := doRequest(e, h.Create, http.MethodPost, "/api/bookings", body, nil)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "/api/bookings/12", rec.Header().Get(echo.HeaderLocation))

	var got map[string]any
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, float64(12), got["id"])
	assert.Equal(t, date, got["date"])
}

func TestCreateBookingEndpoint_ValidationFailures(t *testing.T) {
	bookings := new(stubBookingStore)
	customers := new(stubCustomerStore)
	tables := new(stubTableStore)
	e, h := newBookingTestEnv(bookings, customers, tables)

	// No customer id and no inline fields, a made-up slot and a malformed
	// date, all reported in a single field map.
	body := `{"dining_table_id":1,"time_slot":"BRUNCH","date":"15/06/2025","status":"IN_PROGRESS"}`
	rec := doRequest(e, h.Create, http.MethodPost, "/api/bookings", body, nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var fields map[string][]string
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &fields))
	assert.Contains(t, fields, "customer_name")
	assert.Contains(t, fields, "customer_phone")
	assert.Contains(t, fields, "time_slot")
	assert.Contains(t, fields, "date")
	// Validation rejects the request before the service runs.
	bookings.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateBookingEndpoint_InvalidBodyNotPersisted(t *testing.T) {
	bookings := new(stubBookingStore)
	customers := new(stubCustomerStore)
	tables := new(stubTableStore)
	e, h := newBookingTestEnv(bookings, customers, tables)

	// Valid except for the missing status: the request must die at
	// validation without resolving the customer or writing a booking.
	body := `{"dining_table_id":1,"customer_id":1,"time_slot":"LUNCH_12H14H","date":"` + handlerDate(5) + `"}`
	rec := doRequest(e, h.Create, http.MethodPost, "/api/bookings", body, nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var fields map[string][]string
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &fields))
	assert.Contains(t, fields, "status")
	customers.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	customers.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	bookings.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateBookingEndpoint_PastDate(t *testing.T) {
	bookings := new(stubBookingStore)
	customers := new(stubCustomerStore)
	tables := new(stubTableStore)
	e, h := newBookingTestEnv(bookings, customers, tables)

	customers.On("GetByID", mock.Anything, uint64(1)).Return(&model.Customer{ID: 1}, nil)
	tables.On("Exists", mock.Anything, uint64(1)).Return(true, nil)

	body := `{"dining_table_id":1,"customer_id":1,"time_slot":"LUNCH_12H14H","date":"` + handlerDate(-1) + `","status":"IN_PROGRESS"}`
	rec := doRequest(e, h.Create, http.MethodPost, "/api/bookings", body, nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "booking date cannot be in the past")
}

func TestCreateBookingEndpoint_UnknownTable(t *testing.T) {
	bookings := new(stubBookingStore)
	customers := new(stubCustomerStore)
	tables := new(stubTableStore)
	e, h := newBookingTestEnv(bookings, customers, tables)

	customers.On("GetByID", mock.Anything, uint64(1)).Return(&model.Customer{ID: 1}, nil)
	tables.On("Exists", mock.Anything, uint64(404)).Return(false, nil)

	body := `{"dining_table_id":404,"customer_id":1,"time_slot":"LUNCH_12H14H","date":"` + handlerDate(5) + `","status":"IN_PROGRESS"}`
	rec := doRequest(e, h.Create, http.MethodPost, "/api/bookings", body, nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreateBookingEndpoint_SlotConflict(t *testing.T) {
	bookings := new(stubBookingStore)
	customers := new(stubCustomerStore)
	tables := new(stubTableStore)
	e, h := newBookingTestEnv(bookings, customers, tables)

	date := handlerDate(5)
	customers.On("GetByID", mock.Anything, uint64(1)).Return(&model.Customer{ID: 1}, nil)
	tables.On("Exists", mock.Anything, uint64(1)).Return(true, nil)
	bookings.On("ExistsSlot", mock.Anything, uint64(1), date, model.SlotLunch12H14H, true).Return(true, nil)

	body := `{"dining_table_id":1,"customer_id":1,"time_slot":"LUNCH_12H14H","date":"` + date + `","status":"IN_PROGRESS"}`
	rec := doRequest(e, h.Create, http.MethodPost, "/api/bookings", body, nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "table already booked for this time slot")
}

func TestGetBookingEndpoint(t *testing.T) {
	t.Run("existing booking", func(t *testing.T) {
		bookings := new(stubBookingStore)
		e, h := newBookingTestEnv(bookings, new(stubCustomerStore), new(stubTableStore))

		bookings.On("GetByID", mock.Anything, uint64(9)).Return(&model.Booking{ID: 9, Date: handlerDate(1)}, nil)

		rec := doRequest(e, h.Get, http.MethodGet, "/api/bookings/:id", "", map[string]string{"id": "9"})

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("missing booking", func(t *testing.T) {
		bookings := new(stubBookingStore)
		e, h := newBookingTestEnv(bookings, new(stubCustomerStore), new(stubTableStore))

		bookings.On("GetByID", mock.Anything, uint64(9)).Return(nil, repository.ErrBookingNotFound)

		rec := doRequest(e, h.Get, http.MethodGet, "/api/bookings/:id", "", map[string]string{"id": "9"})

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("non-numeric id", func(t *testing.T) {
		e, h := newBookingTestEnv(new(stubBookingStore), new(stubCustomerStore), new(stubTableStore))

		rec := doRequest(e, h.Get, http.MethodGet, "/api/bookings/:id", "", map[string]string{"id": "abc"})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestDeleteBookingEndpoint(t *testing.T) {
	bookings := new(stubBookingStore)
	e, h := newBookingTestEnv(bookings, new(stubCustomerStore), new(stubTableStore))

	bookings.On("GetByID", mock.Anything, uint64(4)).Return(&model.Booking{ID: 4}, nil)
	bookings.On("Delete", mock.Anything, uint64(4)).Return(nil)

	rec := doRequest(e, h.Delete, http.MethodDelete, "/api/bookings/:id", "", map[string]string{"id": "4"})

	assert.Equal(t, http.StatusNoContent, rec.Code)
	bookings.AssertExpectations(t)
}
