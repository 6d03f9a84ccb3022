package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"tienda/internal/models"
	"tienda/internal/repositories"
	"tienda/internal/sequence"
)

// PaymentService handles business logic related to stored payment methods.
type PaymentService struct {
	repo repositories.PaymentRepository
	seq  sequence.Generator
	log  *logrus.Entry
}

// NewPaymentService creates a new PaymentService.
func NewPaymentService(repo repositories.PaymentRepository, seq sequence.Generator, log *logrus.Entry) *PaymentService {
	return &PaymentService{repo: repo, seq: seq, log: log}
}

// ListByUser returns every payment method registered by one user.
func (s *PaymentService) ListByUser(userID string) ([]models.Payment, error) {
	payments, err := s.repo.GetByUserID(userID)
	if err != nil {
		s.log.WithError(err).WithField("user_id", userID).Error("failed to fetch payments")
		return nil, err
	}
	return payments, nil
}

// GetByID retrieves a single payment by its id.
func (s *PaymentService) GetByID(id int64) (*models.Payment, error) {
	return s.repo.GetByID(id)
}

// Create assigns an id and reference, applies the registration-time default
// when the caller supplied none, and stores the payment.
func (s *PaymentService) Create(payment *models.Payment) (int64, error) {
	id, err := s.seq.Next(sequence.PaymentID)
	if err != nil {
		s.log.WithError(err).Error("failed to assign payment id")
		return 0, err
	}
	payment.ID = id
	payment.Reference = uuid.NewString()
	if payment.RegisteredAt.IsZero() {
		payment.RegisteredAt = time.Now()
	}

	if err := s.repo.Create(payment); err != nil {
		s.log.WithError(err).WithField("payment_id", id).Error("failed to create payment")
		return 0, fmt.Errorf("failed to create payment: %w", err)
	}
	return id, nil
}

// Update merges the validated payload into an existing payment. The id and
// reference are immutable.
func (s *PaymentService) Update(id int64, payment *models.Payment) error {
	fields := map[string]interface{}{
		"user_id":         payment.UserID,
		"cardholder_name": payment.CardholderName,
		"card_number":     payment.CardNumber,
	}
	if payment.ExpiryDate != nil {
		fields["expiry_date"] = payment.ExpiryDate
	}
	if payment.BillingAddress != nil {
		fields["billing_address"] = payment.BillingAddress
	}
	if !payment.RegisteredAt.IsZero() {
		fields["registered_at"] = payment.RegisteredAt
	}

	if err := s.repo.Update(id, fields); err != nil {
		if !errors.Is(err, repositories.ErrNotFound) {
			s.log.WithError(err).WithField("payment_id", id).Error("failed to update payment")
		}
		return err
	}
	return nil
}

// Delete removes a payment by its id.
func (s *PaymentService) Delete(id int64) error {
	return s.repo.Delete(id)
}
