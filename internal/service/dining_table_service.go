package service

import (
	"context"

	"github.com/fabien/restaurant-booking-api/internal/model"
)

// DiningTableStore is the persistence contract for dining tables.
type DiningTableStore interface {
	Create(ctx context.Context, t *model.DiningTable) error
	GetByID(ctx context.Context, id uint64) (*model.DiningTable, error)
	List(ctx context.Context) ([]*model.DiningTable, error)
	Update(ctx context.Context, t *model.DiningTable) error
	Delete(ctx context.Context, id uint64) error
}

// DiningTableService provides CRUD over dining tables.  Capacity must
// fall inside the configured [min, max] range and the owning restaurant
// must exist.  Table status is intentionally not consulted when a table
// is booked; bookings only require the table to exist.
type DiningTableService struct {
	tables      DiningTableStore
	restaurants RestaurantStore
	minCapacity int
	maxCapacity int
}

// NewDiningTableService constructs a DiningTableService with the
// configured capacity bounds.
func NewDiningTableService(tables DiningTableStore, restaurants RestaurantStore, minCapacity, maxCapacity int) *DiningTableService {
	if tables == nil || restaurants == nil {
		panic("nil store passed to NewDiningTableService")
	}
	return &DiningTableService{
		tables:      tables,
		restaurants: restaurants,
		minCapacity: minCapacity,
		maxCapacity: maxCapacity,
	}
}

// FindAll returns every dining table with its restaurant.
func (s *DiningTableService) FindAll(ctx context.Context) ([]*model.DiningTable, error) {
	return s.tables.List(ctx)
}

// FindByID returns one dining table or repository.ErrDiningTableNotFound.
func (s *DiningTableService) FindByID(ctx context.Context, id uint64) (*model.DiningTable, error) {
	return s.tables.GetByID(ctx, id)
}

// Create validates capacity and the owning restaurant, then persists the
// table and re-reads it so the restaurant projection is attached.
func (s *DiningTableService) Create(ctx context.Context, t *model.DiningTable) (*model.DiningTable, error) {
	if err := s.validateCapacity(t.Capacity); err != nil {
		return nil, err
	}
	if _, err := s.restaurants.GetByID(ctx, t.RestaurantID); err != nil {
		return nil, err
	}
	if err := s.tables.Create(ctx, t); err != nil {
		return nil, err
	}
	return s.tables.GetByID(ctx, t.ID)
}

// Update revalidates capacity and restaurant, then replaces the table
// with the given id.
func (s *DiningTableService) Update(ctx context.Context, id uint64, t *model.DiningTable) (*model.DiningTable, error) {
	if _, err := s.tables.GetByID(ctx, id); err != nil {
		return nil, err
	}
	if err := s.validateCapacity(t.Capacity); err != nil {
		return nil, err
	}
	if _, err := s.restaurants.GetByID(ctx, t.RestaurantID); err != nil {
		return nil, err
	}
	t.ID = id
	if err := s.tables.Update(ctx, t); err != nil {
		return nil, err
	}
	return s.tables.GetByID(ctx, id)
}

// DeleteByID removes a dining table after verifying it exists.
func (s *DiningTableService) DeleteByID(ctx context.Context, id uint64) error {
	if _, err := s.tables.GetByID(ctx, id); err != nil {
		return err
	}
	return s.tables.Delete(ctx, id)
}

func (s *DiningTableService) validateCapacity(capacity int) error {
	if capacity < s.minCapacity || capacity > s.maxCapacity {
		return &CapacityError{Min: s.minCapacity, Max: s.maxCapacity}
	}
	return nil
}
