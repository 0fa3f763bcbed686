package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/fabien/restaurant-booking-api/internal/model"
)

// ErrBookingNotFound is returned when a booking cannot be found.
var ErrBookingNotFound = errors.New("booking not found")

// BookingRepo encapsulates all database queries related to bookings.
// Read operations join the dining table, its restaurant and the customer
// so callers receive fully hydrated records.  The slot-availability
// queries back the admission pre-check performed in the service layer;
// the table itself carries a UNIQUE constraint on (dining_table_id,
// date, time_slot) as the final guard against concurrent writers.
type BookingRepo struct {
	db *sql.DB
}

// NewBookingRepo constructs a BookingRepo with the provided DB handle.
func NewBookingRepo(db *sql.DB) *BookingRepo {
	return &BookingRepo{db: db}
}

// bookingSelect formats the DATE column explicitly so it scans into a
// plain YYYY-MM-DD string regardless of the connection's parseTime mode.
const bookingSelect = `SELECT b.id, b.time_slot, DATE_FORMAT(b.date, '%Y-%m-%d'), b.status,
       t.id, t.capacity, t.status, t.restaurant_id,
       r.id, r.name, r.address, r.phone_number,
       c.id, c.name, c.email, c.phone_number
FROM bookings b
JOIN dining_tables t ON t.id = b.dining_table_id
JOIN restaurants r ON r.id = t.restaurant_id
JOIN customers c ON c.id = b.customer_id`

func scanBooking(scan func(dest ...any) error) (*model.Booking, error) {
	b := new(model.Booking)
	b.Table = &model.DiningTable{Restaurant: new(model.Restaurant)}
	b.Customer = new(model.Customer)
	err := scan(
		&b.ID, &b.TimeSlot, &b.Date, &b.Status,
		&b.Table.ID, &b.Table.Capacity, &b.Table.Status, &b.Table.RestaurantID,
		&b.Table.Restaurant.ID, &b.Table.Restaurant.Name, &b.Table.Restaurant.Address, &b.Table.Restaurant.PhoneNumber,
		&b.Customer.ID, &b.Customer.Name, &b.Customer.Email, &b.Customer.PhoneNumber,
	)
	if err != nil {
		return nil, err
	}
	b.DiningTableID = b.Table.ID
	b.CustomerID = b.Customer.ID
	return b, nil
}

// Create inserts a new booking.  On success the ID field is populated
// with the auto-generated value.  A violation of the (table, date, slot)
// uniqueness constraint propagates as the driver's duplicate-key error.
func (r *BookingRepo) Create(ctx context.Context, b *model.Booking) error {
	const q = "INSERT INTO bookings (dining_table_id, customer_id, time_slot, date, status) VALUES (?, ?, ?, ?, ?)"
	result, err := r.db.ExecContext(ctx, q, b.DiningTableID, b.CustomerID, string(b.TimeSlot), b.Date, string(b.Status))
	if err != nil {
		return err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	b.ID = uint64(id)
	return nil
}

// GetByID fetches a booking with its table, restaurant and customer by
// booking id.  It returns ErrBookingNotFound when no row matches.
func (r *BookingRepo) GetByID(ctx context.Context, id uint64) (*model.Booking, error) {
	row := r.db.QueryRowContext(ctx, bookingSelect+" WHERE b.id = ?", id)
	b, err := scanBooking(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return b, nil
}

// List returns all bookings with their related records, ordered by id.
func (r *BookingRepo) List(ctx context.Context) ([]*model.Booking, error) {
	rows, err := r.db.QueryContext(ctx, bookingSelect+" ORDER BY b.id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.Booking
	for rows.Next() {
		b, err := scanBooking(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Update replaces every mutable field of the booking identified by b.ID.
// Callers verify existence first.
func (r *BookingRepo) Update(ctx context.Context, b *model.Booking) error {
	const q = "UPDATE bookings SET dining_table_id = ?, customer_id = ?, time_slot = ?, date = ?, status = ? WHERE id = ?"
	_, err := r.db.ExecContext(ctx, q, b.DiningTableID, b.CustomerID, string(b.TimeSlot), b.Date, string(b.Status), b.ID)
	return err
}

// Delete removes the booking with the given id.
func (r *BookingRepo) Delete(ctx context.Context, id uint64) error {
	const q = "DELETE FROM bookings WHERE id = ?"
	_, err := r.db.ExecContext(ctx, q, id)
	return err
}

// ExistsSlot reports whether any booking occupies the given table, date
// and time slot.  When countCanceled is true (the historical behavior) a
// CANCELED booking still blocks the slot; when false it is ignored.
func (r *BookingRepo) ExistsSlot(ctx context.Context, tableID uint64, date string, slot model.TimeSlot, countCanceled bool) (bool, error) {
	return r.existsSlot(ctx, tableID, date, slot, 0, countCanceled)
}

// ExistsSlotExcluding is ExistsSlot with one booking left out of the
// match, so an update does not conflict with the row it is replacing.
func (r *BookingRepo) ExistsSlotExcluding(ctx context.Context, tableID uint64, date string, slot model.TimeSlot, excludeID uint64, countCanceled bool) (bool, error) {
	return r.existsSlot(ctx, tableID, date, slot, excludeID, countCanceled)
}

func (r *BookingRepo) existsSlot(ctx context.Context, tableID uint64, date string, slot model.TimeSlot, excludeID uint64, countCanceled bool) (bool, error) {
	q := "SELECT EXISTS(SELECT 1 FROM bookings WHERE dining_table_id = ? AND date = ? AND time_slot = ?"
	args := []any{tableID, date, string(slot)}
	if excludeID != 0 {
		q += " AND id <> ?"
		args = append(args, excludeID)
	}
	if !countCanceled {
		q += " AND status <> ?"
		args = append(args, string(model.BookingCanceled))
	}
	q += ")"

	var exists bool
	if err := r.db.QueryRowContext(ctx, q, args...).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}
