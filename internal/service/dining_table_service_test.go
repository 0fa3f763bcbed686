package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/fabien/restaurant-booking-api/internal/model"
	"github.com/fabien/restaurant-booking-api/internal/repository"
)

// MockDiningTableStore is a mock implementation of DiningTableStore.
type MockDiningTableStore struct {
	mock.Mock
}

func (m *MockDiningTableStore) Create(ctx context.Context, t *model.DiningTable) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockDiningTableStore) GetByID(ctx context.Context, id uint64) (*model.DiningTable, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.DiningTable), args.Error(1)
}

func (m *MockDiningTableStore) List(ctx context.Context) ([]*model.DiningTable, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.DiningTable), args.Error(1)
}

func (m *MockDiningTableStore) Update(ctx context.Context, t *model.DiningTable) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockDiningTableStore) Delete(ctx context.Context, id uint64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockRestaurantStore is a mock implementation of RestaurantStore.
type MockRestaurantStore struct {
	mock.Mock
}

func (m *MockRestaurantStore) Create(ctx context.Context, r *model.Restaurant) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockRestaurantStore) GetByID(ctx context.Context, id uint64) (*model.Restaurant, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Restaurant), args.Error(1)
}

func (m *MockRestaurantStore) List(ctx context.Context) ([]*model.Restaurant, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Restaurant), args.Error(1)
}

func (m *MockRestaurantStore) Update(ctx context.Context, r *model.Restaurant) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockRestaurantStore) Delete(ctx context.Context, id uint64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func newTableService(tables *MockDiningTableStore, restaurants *MockRestaurantStore) *DiningTableService {
	return NewDiningTableService(tables, restaurants, 1, 10)
}

func TestCreateDiningTable_Success(t *testing.T) {
	tables := new(MockDiningTableStore)
	restaurants := new(MockRestaurantStore)
	svc := newTableService(tables, restaurants)

	restaurants.On("GetByID", mock.Anything, uint64(1)).Return(&model.Restaurant{ID: 1, Name: "Chez Nous"}, nil)
	tables.On("Create", mock.Anything, mock.AnythingOfType("*model.DiningTable")).Run(func(args mock.Arguments) {
		args.Get(1).(*model.DiningTable).ID = 5
	}).Return(nil)
	tables.On("GetByID", mock.Anything, uint64(5)).Return(&model.DiningTable{ID: 5, Capacity: 4}, nil)

	out, err := svc.Create(context.Background(), &model.DiningTable{Capacity: 4, Status: model.TableAvailable, RestaurantID: 1})

	assert.NoError(t, err)
	assert.Equal(t, uint64(5), out.ID)
	tables.AssertExpectations(t)
}

func TestCreateDiningTable_CapacityOutOfRange(t *testing.T) {
	for _, capacity := range []int{0, 11} {
		tables := new(MockDiningTableStore)
		restaurants := new(MockRestaurantStore)
		svc := newTableService(tables, restaurants)

		_, err := svc.Create(context.Background(), &model.DiningTable{Capacity: capacity, Status: model.TableAvailable, RestaurantID: 1})

		var capErr *CapacityError
		assert.ErrorAs(t, err, &capErr)
		assert.Equal(t, 1, capErr.Min)
		assert.Equal(t, 10, capErr.Max)
		// Capacity is checked before anything touches a store.
		restaurants.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
		tables.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	}
}

func TestCreateDiningTable_UnknownRestaurant(t *testing.T) {
	tables := new(MockDiningTableStore)
	restaurants := new(MockRestaurantStore)
	svc := newTableService(tables, restaurants)

	restaurants.On("GetByID", mock.Anything, uint64(9)).Return(nil, repository.ErrRestaurantNotFound)

	_, err := svc.Create(context.Background(), &model.DiningTable{Capacity: 4, Status: model.TableAvailable, RestaurantID: 9})

	assert.ErrorIs(t, err, repository.ErrRestaurantNotFound)
	tables.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestUpdateDiningTable_NotFound(t *testing.T) {
	tables := new(MockDiningTableStore)
	restaurants := new(MockRestaurantStore)
	svc := newTableService(tables, restaurants)

	tables.On("GetByID", mock.Anything, uint64(3)).Return(nil, repository.ErrDiningTableNotFound)

	_, err := svc.Update(context.Background(), 3, &model.DiningTable{Capacity: 4, RestaurantID: 1})

	assert.ErrorIs(t, err, repository.ErrDiningTableNotFound)
	tables.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}
