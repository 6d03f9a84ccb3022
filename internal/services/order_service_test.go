package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"tienda/internal/models"
	"tienda/internal/repositories"
	"tienda/internal/services"
)

// MockOrderRepository is a mock implementation of repositories.OrderRepository.
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) GetAll() ([]models.Order, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Order), args.Error(1)
}

func (m *MockOrderRepository) GetByID(id int64) (*models.Order, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Order), args.Error(1)
}

func (m *MockOrderRepository) Create(order *models.Order) error {
	args := m.Called(order)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(id int64, fields map[string]interface{}) error {
	args := m.Called(id, fields)
	return args.Error(0)
}

func (m *MockOrderRepository) Delete(id int64) error {
	args := m.Called(id)
	return args.Error(0)
}

func TestOrderService_CreateAssignsID(t *testing.T) {
	mockRepo := new(MockOrderRepository)
	mockSeq := new(MockSequence)
	orderService := services.NewOrderService(mockRepo, mockSeq, testLogger())

	mockSeq.On("Next", "order_id").Return(int64(12), nil).Once()
	mockRepo.On("Create", mock.AnythingOfType("*models.Order")).Return(nil).Once()

	// A client-supplied id must be overwritten by the counter.
	order := &models.Order{
		ID:           999,
		CustomerID:   "42",
		Products:     []map[string]interface{}{{"product_id": 1, "quantity": 2}},
		TotalPrice:   19.98,
		Status:       "pending",
		TrackingInfo: map[string]interface{}{"carrier": "dhl"},
	}
	id, err := orderService.Create(order)
	require.NoError(t, err)
	assert.Equal(t, int64(12), id)
	assert.Equal(t, int64(12), order.ID)
	mockRepo.AssertExpectations(t)
	mockSeq.AssertExpectations(t)
}

func TestOrderService_UpdateMissing(t *testing.T) {
	mockRepo := new(MockOrderRepository)
	orderService := services.NewOrderService(mockRepo, new(MockSequence), testLogger())

	mockRepo.On("Update", int64(42), mock.Anything).Return(repositories.ErrNotFound).Once()

	err := orderService.Update(42, &models.Order{CustomerID: "42", Status: "shipped"})
	assert.ErrorIs(t, err, repositories.ErrNotFound)
	mockRepo.AssertExpectations(t)
}

func TestOrderService_TrackingInfo(t *testing.T) {
	t.Run("returns the tracking document", func(t *testing.T) {
		mockRepo := new(MockOrderRepository)
		orderService := services.NewOrderService(mockRepo, new(MockSequence), testLogger())

		mockRepo.On("GetByID", int64(1)).Return(&models.Order{
			ID:           1,
			TrackingInfo: map[string]interface{}{"carrier": "dhl", "tracking_number": "XY123"},
		}, nil).Once()

		info, err := orderService.TrackingInfo(1)
		require.NoError(t, err)
		assert.Equal(t, "dhl", info["carrier"])
	})

	t.Run("empty tracking is not found", func(t *testing.T) {
		mockRepo := new(MockOrderRepository)
		orderService := services.NewOrderService(mockRepo, new(MockSequence), testLogger())

		mockRepo.On("GetByID", int64(1)).Return(&models.Order{ID: 1}, nil).Once()

		_, err := orderService.TrackingInfo(1)
		assert.ErrorIs(t, err, services.ErrTrackingNotFound)
	})

	t.Run("missing order propagates", func(t *testing.T) {
		mockRepo := new(MockOrderRepository)
		orderService := services.NewOrderService(mockRepo, new(MockSequence), testLogger())

		mockRepo.On("GetByID", int64(9)).Return(nil, repositories.ErrNotFound).Once()

		_, err := orderService.TrackingInfo(9)
		assert.ErrorIs(t, err, repositories.ErrNotFound)
	})
}
