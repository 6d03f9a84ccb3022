package repositories

import (
	"fmt"

	"gorm.io/gorm"

	"tienda/internal/models"
)

// PaymentRepository defines the interface for payment data access.
type PaymentRepository interface {
	Repository[models.Payment]
	GetByUserID(userID string) ([]models.Payment, error)
}

// GormPaymentRepository is a gorm implementation of PaymentRepository.
type GormPaymentRepository struct {
	*GormRepository[models.Payment]
}

// NewGormPaymentRepository creates a new instance of GormPaymentRepository.
func NewGormPaymentRepository(db *gorm.DB) *GormPaymentRepository {
	return &GormPaymentRepository{GormRepository: NewGormRepository[models.Payment](db)}
}

// GetByUserID returns every payment registered by one user.
func (r *GormPaymentRepository) GetByUserID(userID string) ([]models.Payment, error) {
	var payments []models.Payment
	if err := r.db.Find(&payments, "user_id = ?", userID).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch payments for user %s: %w", userID, err)
	}
	return payments, nil
}
