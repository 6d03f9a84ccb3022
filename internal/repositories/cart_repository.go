package repositories

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"tienda/internal/models"
)

// CartRepository defines the interface for cart data access. Carts are keyed
// by user: at most one cart exists per user_id.
type CartRepository interface {
	GetByUserID(userID string) (*models.Cart, error)
	Create(cart *models.Cart) error
	Save(cart *models.Cart) error
}

// GormCartRepository is a gorm implementation of CartRepository.
type GormCartRepository struct {
	*GormRepository[models.Cart]
}

// NewGormCartRepository creates a new instance of GormCartRepository.
func NewGormCartRepository(db *gorm.DB) *GormCartRepository {
	return &GormCartRepository{GormRepository: NewGormRepository[models.Cart](db)}
}

// GetByUserID returns the single cart for a user, or ErrNotFound.
func (r *GormCartRepository) GetByUserID(userID string) (*models.Cart, error) {
	var cart models.Cart
	if err := r.db.First(&cart, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch cart for user %s: %w", userID, err)
	}
	return &cart, nil
}

// Save persists the full cart, product list included.
func (r *GormCartRepository) Save(cart *models.Cart) error {
	if err := r.db.Save(cart).Error; err != nil {
		return fmt.Errorf("failed to save cart %d: %w", cart.ID, err)
	}
	return nil
}
