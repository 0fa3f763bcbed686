package service

import (
	"context"

	"github.com/fabien/restaurant-booking-api/internal/model"
)

// CustomerCRUDStore extends CustomerStore with the remaining operations
// used by the customer endpoints.
type CustomerCRUDStore interface {
	CustomerStore
	List(ctx context.Context) ([]*model.Customer, error)
	Update(ctx context.Context, c *model.Customer) error
	Delete(ctx context.Context, id uint64) error
}

// CustomerService provides plain CRUD over customers.  Phone number
// uniqueness is enforced by the store; a collision surfaces as a
// duplicate-key error for the handler to translate.
type CustomerService struct {
	customers CustomerCRUDStore
}

// NewCustomerService constructs a CustomerService.
func NewCustomerService(customers CustomerCRUDStore) *CustomerService {
	if customers == nil {
		panic("nil store passed to NewCustomerService")
	}
	return &CustomerService{customers: customers}
}

// FindAll returns every customer.
func (s *CustomerService) FindAll(ctx context.Context) ([]*model.Customer, error) {
	return s.customers.List(ctx)
}

// FindByID returns one customer or repository.ErrCustomerNotFound.
func (s *CustomerService) FindByID(ctx context.Context, id uint64) (*model.Customer, error) {
	return s.customers.GetByID(ctx, id)
}

// Create persists a new customer and returns it with its assigned id.
func (s *CustomerService) Create(ctx context.Context, c *model.Customer) (*model.Customer, error) {
	if err := s.customers.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// Update replaces the customer with the given id after checking it exists.
func (s *CustomerService) Update(ctx context.Context, id uint64, c *model.Customer) (*model.Customer, error) {
	if _, err := s.customers.GetByID(ctx, id); err != nil {
		return nil, err
	}
	c.ID = id
	if err := s.customers.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// DeleteByID removes a customer after verifying it exists.
func (s *CustomerService) DeleteByID(ctx context.Context, id uint64) error {
	if _, err := s.customers.GetByID(ctx, id); err != nil {
		return err
	}
	return s.customers.Delete(ctx, id)
}
