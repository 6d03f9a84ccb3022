package services

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"tienda/internal/models"
	"tienda/internal/repositories"
	"tienda/internal/sequence"
)

// OrderService handles business logic related to orders.
type OrderService struct {
	repo repositories.OrderRepository
	seq  sequence.Generator
	log  *logrus.Entry
}

// NewOrderService creates a new OrderService.
func NewOrderService(repo repositories.OrderRepository, seq sequence.Generator, log *logrus.Entry) *OrderService {
	return &OrderService{repo: repo, seq: seq, log: log}
}

// GetAll retrieves all orders.
func (s *OrderService) GetAll() ([]models.Order, error) {
	orders, err := s.repo.GetAll()
	if err != nil {
		s.log.WithError(err).Error("failed to fetch orders")
		return nil, err
	}
	return orders, nil
}

// GetByID retrieves a single order by its id.
func (s *OrderService) GetByID(id int64) (*models.Order, error) {
	return s.repo.GetByID(id)
}

// Create assigns an id from the order counter and stores the order.
// Client-supplied ids are ignored.
func (s *OrderService) Create(order *models.Order) (int64, error) {
	id, err := s.seq.Next(sequence.OrderID)
	if err != nil {
		s.log.WithError(err).Error("failed to assign order id")
		return 0, err
	}
	order.ID = id

	if err := s.repo.Create(order); err != nil {
		s.log.WithError(err).WithField("order_id", id).Error("failed to create order")
		return 0, fmt.Errorf("failed to create order: %w", err)
	}
	return id, nil
}

// Update merges the validated payload into an existing order. A missing
// order is reported as not found; update never creates.
func (s *OrderService) Update(id int64, order *models.Order) error {
	fields := map[string]interface{}{
		"customer_id":   order.CustomerID,
		"products":      order.Products,
		"total_price":   order.TotalPrice,
		"status":        order.Status,
		"tracking_info": order.TrackingInfo,
	}
	if err := s.repo.Update(id, fields); err != nil {
		if !errors.Is(err, repositories.ErrNotFound) {
			s.log.WithError(err).WithField("order_id", id).Error("failed to update order")
		}
		return err
	}
	return nil
}

// Delete removes an order by its id.
func (s *OrderService) Delete(id int64) error {
	return s.repo.Delete(id)
}

// TrackingInfo returns the tracking document of an order. An order without
// tracking info is distinct from a missing order, but both are not-found
// conditions.
func (s *OrderService) TrackingInfo(id int64) (map[string]interface{}, error) {
	order, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if len(order.TrackingInfo) == 0 {
		return nil, ErrTrackingNotFound
	}
	return order.TrackingInfo, nil
}
