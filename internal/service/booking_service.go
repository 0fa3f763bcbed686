package service

import (
	"context"
	"time"

	"github.com/fabien/restaurant-booking-api/internal/model"
	"github.com/fabien/restaurant-booking-api/internal/repository"
)

// BookingStore is the persistence contract the admission engine needs
// from the booking repository.
type BookingStore interface {
	List(ctx context.Context) ([]*model.Booking, error)
	GetByID(ctx context.Context, id uint64) (*model.Booking, error)
	Create(ctx context.Context, b *model.Booking) error
	Update(ctx context.Context, b *model.Booking) error
	Delete(ctx context.Context, id uint64) error
	ExistsSlot(ctx context.Context, tableID uint64, date string, slot model.TimeSlot, countCanceled bool) (bool, error)
	ExistsSlotExcluding(ctx context.Context, tableID uint64, date string, slot model.TimeSlot, excludeID uint64, countCanceled bool) (bool, error)
}

// CustomerStore resolves and creates customers on behalf of a booking.
type CustomerStore interface {
	GetByID(ctx context.Context, id uint64) (*model.Customer, error)
	Create(ctx context.Context, c *model.Customer) error
}

// TableStore answers existence checks for dining tables.
type TableStore interface {
	Exists(ctx context.Context, id uint64) (bool, error)
}

// BookingRules configures the admission checks.
//
// HorizonDays bounds how far ahead a booking may be placed: the accepted
// window is [today, today+HorizonDays], inclusive on both ends.
//
// CountCanceled controls whether a CANCELED booking still occupies its
// (table, date, slot).  True reproduces the historical behavior where a
// canceled booking keeps blocking the slot; set it to false to let the
// slot be rebooked.
type BookingRules struct {
	HorizonDays   int
	CountCanceled bool
}

// BookingService is the admission engine deciding whether a candidate
// booking may be persisted.  Checks always run in the same order —
// customer resolution, table existence, date window, slot conflict — so
// the first failure a caller observes is deterministic.
//
// The current time is injected through now so the date-window rule can
// be exercised in tests without touching the system clock.
type BookingService struct {
	bookings  BookingStore
	customers CustomerStore
	tables    TableStore
	rules     BookingRules
	now       func() time.Time
}

// NewBookingService constructs a BookingService.  now may be nil, in
// which case time.Now is used.
func NewBookingService(bookings BookingStore, customers CustomerStore, tables TableStore, rules BookingRules, now func() time.Time) *BookingService {
	if bookings == nil || customers == nil || tables == nil {
		panic("nil store passed to NewBookingService")
	}
	if rules.HorizonDays <= 0 {
		rules.HorizonDays = 30
	}
	if now == nil {
		now = time.Now
	}
	return &BookingService{
		bookings:  bookings,
		customers: customers,
		tables:    tables,
		rules:     rules,
		now:       now,
	}
}

// FindAll returns every booking with its related records.
func (s *BookingService) FindAll(ctx context.Context) ([]*model.Booking, error) {
	return s.bookings.List(ctx)
}

// FindByID returns one booking or repository.ErrBookingNotFound.
func (s *BookingService) FindByID(ctx context.Context, id uint64) (*model.Booking, error) {
	return s.bookings.GetByID(ctx, id)
}

// Create admits and persists a candidate booking.  The customer is
// resolved first (which may insert a new customer row), then the table
// must exist, the date must fall inside the booking window and the slot
// must be free.  On success the stored booking is re-read so the caller
// receives the hydrated table, restaurant and customer.
//
// A customer created during resolution is not rolled back when a later
// check fails; only the booking row itself is withheld.
func (s *BookingService) Create(ctx context.Context, b *model.Booking) (*model.Booking, error) {
	customer, err := s.resolveCustomer(ctx, b.Customer)
	if err != nil {
		return nil, err
	}
	b.Customer = customer
	b.CustomerID = customer.ID

	if err := s.checkTableExists(ctx, b.DiningTableID); err != nil {
		return nil, err
	}
	if err := s.validateDate(b.Date); err != nil {
		return nil, err
	}

	taken, err := s.bookings.ExistsSlot(ctx, b.DiningTableID, b.Date, b.TimeSlot, s.rules.CountCanceled)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrTableUnavailable
	}

	if err := s.bookings.Create(ctx, b); err != nil {
		return nil, err
	}
	return s.bookings.GetByID(ctx, b.ID)
}

// Update revalidates the full candidate and replaces the booking with
// the given id.  The conflict check excludes the booking's own row so a
// booking can always be re-saved onto its current slot.
func (s *BookingService) Update(ctx context.Context, id uint64, b *model.Booking) (*model.Booking, error) {
	if _, err := s.bookings.GetByID(ctx, id); err != nil {
		return nil, err
	}

	customer, err := s.resolveCustomer(ctx, b.Customer)
	if err != nil {
		return nil, err
	}
	b.Customer = customer
	b.CustomerID = customer.ID

	if err := s.checkTableExists(ctx, b.DiningTableID); err != nil {
		return nil, err
	}
	if err := s.validateDate(b.Date); err != nil {
		return nil, err
	}

	taken, err := s.bookings.ExistsSlotExcluding(ctx, b.DiningTableID, b.Date, b.TimeSlot, id, s.rules.CountCanceled)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrTableUnavailable
	}

	b.ID = id
	if err := s.bookings.Update(ctx, b); err != nil {
		return nil, err
	}
	return s.bookings.GetByID(ctx, id)
}

// DeleteByID removes a booking after verifying it exists.
func (s *BookingService) DeleteByID(ctx context.Context, id uint64) error {
	if _, err := s.bookings.GetByID(ctx, id); err != nil {
		return err
	}
	return s.bookings.Delete(ctx, id)
}

// resolveCustomer returns the existing customer when the candidate
// carries an id, otherwise creates a new customer from the inline
// fields.  There is no upsert: an inline customer is always inserted,
// and a phone number collision surfaces as the store's duplicate error.
func (s *BookingService) resolveCustomer(ctx context.Context, c *model.Customer) (*model.Customer, error) {
	if c == nil {
		return nil, repository.ErrCustomerNotFound
	}
	if c.ID != 0 {
		return s.customers.GetByID(ctx, c.ID)
	}
	if err := s.customers.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *BookingService) checkTableExists(ctx context.Context, tableID uint64) error {
	exists, err := s.tables.Exists(ctx, tableID)
	if err != nil {
		return err
	}
	if !exists {
		return repository.ErrDiningTableNotFound
	}
	return nil
}

// validateDate enforces the booking window [today, today+horizon],
// inclusive on both ends.  Dates are compared at day granularity.
func (s *BookingService) validateDate(date string) error {
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		return ErrInvalidDate
	}
	now := s.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	maxDate := today.AddDate(0, 0, s.rules.HorizonDays)

	if d.Before(today) {
		return ErrDateInPast
	}
	if d.After(maxDate) {
		return ErrDateTooFar
	}
	return nil
}
