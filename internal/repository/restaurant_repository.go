package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/fabien/restaurant-booking-api/internal/model"
)

// ErrRestaurantNotFound is returned when a restaurant cannot be found.
var ErrRestaurantNotFound = errors.New("restaurant not found")

// RestaurantRepo encapsulates all database queries related to restaurants.
type RestaurantRepo struct {
	db *sql.DB
}

// NewRestaurantRepo constructs a RestaurantRepo with the provided DB handle.
func NewRestaurantRepo(db *sql.DB) *RestaurantRepo {
	return &RestaurantRepo{db: db}
}

// Create inserts a new restaurant.  On success the ID field is populated
// with the auto-generated value.
func (r *RestaurantRepo) Create(ctx context.Context, res *model.Restaurant) error {
	const q = "INSERT INTO restaurants (name, address, phone_number) VALUES (?, ?, ?)"
	result, err := r.db.ExecContext(ctx, q, res.Name, res.Address, res.PhoneNumber)
	if err != nil {
		return err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	res.ID = uint64(id)
	return nil
}

// GetByID fetches a restaurant by id.  It returns ErrRestaurantNotFound
// when no row matches.
func (r *RestaurantRepo) GetByID(ctx context.Context, id uint64) (*model.Restaurant, error) {
	const q = "SELECT id, name, address, phone_number FROM restaurants WHERE id = ?"
	var res model.Restaurant
	if err := r.db.QueryRowContext(ctx, q, id).Scan(&res.ID, &res.Name, &res.Address, &res.PhoneNumber); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrRestaurantNotFound
		}
		return nil, err
	}
	return &res, nil
}

// List returns all restaurants ordered by id.
func (r *RestaurantRepo) List(ctx context.Context) ([]*model.Restaurant, error) {
	const q = "SELECT id, name, address, phone_number FROM restaurants ORDER BY id"
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.Restaurant
	for rows.Next() {
		res := new(model.Restaurant)
		if err := rows.Scan(&res.ID, &res.Name, &res.Address, &res.PhoneNumber); err != nil {
			return nil, err
		}
		out = append(out, res)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Update replaces every mutable field of the restaurant identified by
// res.ID.  A missing row is not reported here; callers are expected to
// verify existence first.
func (r *RestaurantRepo) Update(ctx context.Context, res *model.Restaurant) error {
	const q = "UPDATE restaurants SET name = ?, address = ?, phone_number = ? WHERE id = ?"
	_, err := r.db.ExecContext(ctx, q, res.Name, res.Address, res.PhoneNumber, res.ID)
	return err
}

// Delete removes the restaurant with the given id.
func (r *RestaurantRepo) Delete(ctx context.Context, id uint64) error {
	const q = "DELETE FROM restaurants WHERE id = ?"
	_, err := r.db.ExecContext(ctx, q, id)
	return err
}
