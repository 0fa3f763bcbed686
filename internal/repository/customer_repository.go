package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/fabien/restaurant-booking-api/internal/model"
)

// ErrCustomerNotFound is returned when a customer cannot be found.
var ErrCustomerNotFound = errors.New("customer not found")

// CustomerRepo encapsulates all database queries related to customers.
// The phone number column carries a UNIQUE constraint; inserts and
// updates that collide surface as a duplicate-key error which callers
// can detect with IsDuplicateEntry.
type CustomerRepo struct {
	db *sql.DB
}

// NewCustomerRepo constructs a CustomerRepo with the provided DB handle.
func NewCustomerRepo(db *sql.DB) *CustomerRepo {
	return &CustomerRepo{db: db}
}

// Create inserts a new customer.  On success the ID field is populated
// with the auto-generated value.  A phone number collision propagates as
// the driver's duplicate-key error.
func (r *CustomerRepo) Create(ctx context.Context, c *model.Customer) error {
	const q = "INSERT INTO customers (name, email, phone_number) VALUES (?, ?, ?)"
	result, err := r.db.ExecContext(ctx, q, c.Name, c.Email, c.PhoneNumber)
	if err != nil {
		return err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	c.ID = uint64(id)
	return nil
}

// GetByID fetches a customer by id.  It returns ErrCustomerNotFound when
// no row matches.
func (r *CustomerRepo) GetByID(ctx context.Context, id uint64) (*model.Customer, error) {
	const q = "SELECT id, name, email, phone_number FROM customers WHERE id = ?"
	var c model.Customer
	if err := r.db.QueryRowContext(ctx, q, id).Scan(&c.ID, &c.Name, &c.Email, &c.PhoneNumber); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrCustomerNotFound
		}
		return nil, err
	}
	return &c, nil
}

// List returns all customers ordered by id.
func (r *CustomerRepo) List(ctx context.Context) ([]*model.Customer, error) {
	const q = "SELECT id, name, email, phone_number FROM customers ORDER BY id"
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.Customer
	for rows.Next() {
		c := new(model.Customer)
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.PhoneNumber); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Update replaces every mutable field of the customer identified by c.ID.
// Callers verify existence first.
func (r *CustomerRepo) Update(ctx context.Context, c *model.Customer) error {
	const q = "UPDATE customers SET name = ?, email = ?, phone_number = ? WHERE id = ?"
	_, err := r.db.ExecContext(ctx, q, c.Name, c.Email, c.PhoneNumber, c.ID)
	return err
}

// Delete removes the customer with the given id.
func (r *CustomerRepo) Delete(ctx context.Context, id uint64) error {
	const q = "DELETE FROM customers WHERE id = ?"
	_, err := r.db.ExecContext(ctx, q, id)
	return err
}
