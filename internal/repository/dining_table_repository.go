package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/fabien/restaurant-booking-api/internal/model"
)

// ErrDiningTableNotFound is returned when a dining table cannot be found.
var ErrDiningTableNotFound = errors.New("dining table not found")

// DiningTableRepo encapsulates all database queries related to dining
// tables.  Read operations join the owning restaurant so callers receive
// a fully hydrated record.
type DiningTableRepo struct {
	db *sql.DB
}

// NewDiningTableRepo constructs a DiningTableRepo with the provided DB handle.
func NewDiningTableRepo(db *sql.DB) *DiningTableRepo {
	return &DiningTableRepo{db: db}
}

// Create inserts a new dining table.  On success the ID field is
// populated with the auto-generated value.
func (r *DiningTableRepo) Create(ctx context.Context, t *model.DiningTable) error {
	const q = "INSERT INTO dining_tables (capacity, status, restaurant_id) VALUES (?, ?, ?)"
	result, err := r.db.ExecContext(ctx, q, t.Capacity, string(t.Status), t.RestaurantID)
	if err != nil {
		return err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	t.ID = uint64(id)
	return nil
}

const tableSelect = `SELECT t.id, t.capacity, t.status, t.restaurant_id,
       r.id, r.name, r.address, r.phone_number
FROM dining_tables t
JOIN restaurants r ON r.id = t.restaurant_id`

func scanTable(scan func(dest ...any) error) (*model.DiningTable, error) {
	t := new(model.DiningTable)
	t.Restaurant = new(model.Restaurant)
	err := scan(
		&t.ID, &t.Capacity, &t.Status, &t.RestaurantID,
		&t.Restaurant.ID, &t.Restaurant.Name, &t.Restaurant.Address, &t.Restaurant.PhoneNumber,
	)
	if err != nil {
		return nil, err
	}
	return t, nil
}

// GetByID fetches a dining table and its restaurant by table id.  It
// returns ErrDiningTableNotFound when no row matches.
func (r *DiningTableRepo) GetByID(ctx context.Context, id uint64) (*model.DiningTable, error) {
	row := r.db.QueryRowContext(ctx, tableSelect+" WHERE t.id = ?", id)
	t, err := scanTable(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrDiningTableNotFound
		}
		return nil, err
	}
	return t, nil
}

// List returns all dining tables with their restaurants, ordered by id.
func (r *DiningTableRepo) List(ctx context.Context) ([]*model.DiningTable, error) {
	rows, err := r.db.QueryContext(ctx, tableSelect+" ORDER BY t.id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.DiningTable
	for rows.Next() {
		t, err := scanTable(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Exists reports whether a dining table with the given id exists.  Only
// existence is checked; a table under maintenance still counts.
func (r *DiningTableRepo) Exists(ctx context.Context, id uint64) (bool, error) {
	const q = "SELECT EXISTS(SELECT 1 FROM dining_tables WHERE id = ?)"
	var exists bool
	if err := r.db.QueryRowContext(ctx, q, id).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

// Update replaces every mutable field of the dining table identified by
// t.ID.  Callers verify existence first.
func (r *DiningTableRepo) Update(ctx context.Context, t *model.DiningTable) error {
	const q = "UPDATE dining_tables SET capacity = ?, status = ?, restaurant_id = ? WHERE id = ?"
	_, err := r.db.ExecContext(ctx, q, t.Capacity, string(t.Status), t.RestaurantID, t.ID)
	return err
}

// Delete removes the dining table with the given id.
func (r *DiningTableRepo) Delete(ctx context.Context, id uint64) error {
	const q = "DELETE FROM dining_tables WHERE id = ?"
	_, err := r.db.ExecContext(ctx, q, id)
	return err
}
