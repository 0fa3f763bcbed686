package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/fabien/restaurant-booking-api/internal/model"
	"github.com/fabien/restaurant-booking-api/internal/repository"
)

func TestCreateRestaurant(t *testing.T) {
	restaurants := new(MockRestaurantStore)
	svc := NewRestaurantService(restaurants)

	restaurants.On("Create", mock.Anything, mock.AnythingOfType("*model.Restaurant")).Run(func(args mock.Arguments) {
		args.Get(1).(*model.Restaurant).ID = 2
	}).Return(nil)

	out, err := svc.Create(context.Background(), &model.Restaurant{Name: "Chez Nous"})

	assert.NoError(t, err)
	assert.Equal(t, uint64(2), out.ID)
}

func TestUpdateRestaurant_NotFound(t *testing.T) {
	restaurants := new(MockRestaurantStore)
	svc := NewRestaurantService(restaurants)

	restaurants.On("GetByID", mock.Anything, uint64(9)).Return(nil, repository.ErrRestaurantNotFound)

	_, err := svc.Update(context.Background(), 9, &model.Restaurant{Name: "Chez Nous"})

	assert.ErrorIs(t, err, repository.ErrRestaurantNotFound)
	restaurants.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestDeleteRestaurant(t *testing.T) {
	restaurants := new(MockRestaurantStore)
	svc := NewRestaurantService(restaurants)

	restaurants.On("GetByID", mock.Anything, uint64(1)).Return(&model.Restaurant{ID: 1}, nil)
	restaurants.On("Delete", mock.Anything, uint64(1)).Return(nil)

	assert.NoError(t, svc.DeleteByID(context.Background(), 1))
	restaurants.AssertExpectations(t)
}
