package service

import (
	"context"

	"github.com/fabien/restaurant-booking-api/internal/model"
)

// RestaurantStore is the persistence contract for restaurants.
type RestaurantStore interface {
	Create(ctx context.Context, r *model.Restaurant) error
	GetByID(ctx context.Context, id uint64) (*model.Restaurant, error)
	List(ctx context.Context) ([]*model.Restaurant, error)
	Update(ctx context.Context, r *model.Restaurant) error
	Delete(ctx context.Context, id uint64) error
}

// RestaurantService provides plain CRUD over restaurants.
type RestaurantService struct {
	restaurants RestaurantStore
}

// NewRestaurantService constructs a RestaurantService.
func NewRestaurantService(restaurants RestaurantStore) *RestaurantService {
	if restaurants == nil {
		panic("nil store passed to NewRestaurantService")
	}
	return &RestaurantService{restaurants: restaurants}
}

// FindAll returns every restaurant.
func (s *RestaurantService) FindAll(ctx context.Context) ([]*model.Restaurant, error) {
	return s.restaurants.List(ctx)
}

// FindByID returns one restaurant or repository.ErrRestaurantNotFound.
func (s *RestaurantService) FindByID(ctx context.Context, id uint64) (*model.Restaurant, error) {
	return s.restaurants.GetByID(ctx, id)
}

// Create persists a new restaurant and returns it with its assigned id.
func (s *RestaurantService) Create(ctx context.Context, r *model.Restaurant) (*model.Restaurant, error) {
	if err := s.restaurants.Create(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

// Update replaces the restaurant with the given id after checking it exists.
func (s *RestaurantService) Update(ctx context.Context, id uint64, r *model.Restaurant) (*model.Restaurant, error) {
	if _, err := s.restaurants.GetByID(ctx, id); err != nil {
		return nil, err
	}
	r.ID = id
	if err := s.restaurants.Update(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

// DeleteByID removes a restaurant after verifying it exists.
func (s *RestaurantService) DeleteByID(ctx context.Context, id uint64) error {
	if _, err := s.restaurants.GetByID(ctx, id); err != nil {
		return err
	}
	return s.restaurants.Delete(ctx, id)
}
