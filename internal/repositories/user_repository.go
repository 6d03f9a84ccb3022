package repositories

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"tienda/internal/models"
)

// UserRepository defines the interface for credential records.
type UserRepository interface {
	Repository[models.User]
	GetByEmail(email string) (*models.User, error)
}

// GormUserRepository is a gorm implementation of UserRepository.
type GormUserRepository struct {
	*GormRepository[models.User]
}

// NewGormUserRepository creates a new instance of GormUserRepository.
func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{GormRepository: NewGormRepository[models.User](db)}
}

// GetByEmail retrieves a user by email, or ErrNotFound.
func (r *GormUserRepository) GetByEmail(email string) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch user by email: %w", err)
	}
	return &user, nil
}
