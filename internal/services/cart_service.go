package services

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"tienda/internal/models"
	"tienda/internal/repositories"
	"tienda/internal/sequence"
)

// CartService handles business logic for shopping carts.
type CartService struct {
	repo repositories.CartRepository
	seq  sequence.Generator
	log  *logrus.Entry
}

// NewCartService creates a new CartService.
func NewCartService(repo repositories.CartRepository, seq sequence.Generator, log *logrus.Entry) *CartService {
	return &CartService{repo: repo, seq: seq, log: log}
}

// GetByUserID returns the cart for a user, or repositories.ErrNotFound.
func (s *CartService) GetByUserID(userID string) (*models.Cart, error) {
	return s.repo.GetByUserID(userID)
}

// AddProduct appends a product to the user's cart, creating the cart first
// when the user has none. The product is added exactly once either way.
func (s *CartService) AddProduct(userID string, product models.CartProduct) (*models.Cart, error) {
	cart, err := s.repo.GetByUserID(userID)
	if err != nil {
		if !errors.Is(err, repositories.ErrNotFound) {
			s.log.WithError(err).WithField("user_id", userID).Error("failed to fetch cart")
			return nil, err
		}

		id, err := s.seq.Next(sequence.CartID)
		if err != nil {
			s.log.WithError(err).Error("failed to assign cart id")
			return nil, err
		}
		cart = &models.Cart{
			ID:       id,
			UserID:   userID,
			Products: []models.CartProduct{product},
		}
		if err := s.repo.Create(cart); err != nil {
			s.log.WithError(err).WithField("user_id", userID).Error("failed to create cart")
			return nil, fmt.Errorf("failed to create cart: %w", err)
		}
		return cart, nil
	}

	cart.Products = append(cart.Products, product)
	if err := s.repo.Save(cart); err != nil {
		s.log.WithError(err).WithField("cart_id", cart.ID).Error("failed to save cart")
		return nil, err
	}
	return cart, nil
}

// TotalPrice sums the price of every product in the user's cart. A user
// without a cart is an error, not a zero total.
func (s *CartService) TotalPrice(userID string) (float64, error) {
	cart, err := s.repo.GetByUserID(userID)
	if err != nil {
		return 0, err
	}

	var total float64
	for _, product := range cart.Products {
		total += product.Price
	}
	return total, nil
}
