package services

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"tienda/internal/models"
	"tienda/internal/repositories"
	"tienda/internal/sequence"
)

// ProductService handles business logic related to products.
type ProductService struct {
	repo repositories.ProductRepository
	seq  sequence.Generator
	log  *logrus.Entry
}

// NewProductService creates a new ProductService.
func NewProductService(repo repositories.ProductRepository, seq sequence.Generator, log *logrus.Entry) *ProductService {
	return &ProductService{repo: repo, seq: seq, log: log}
}

// GetAll retrieves all products.
func (s *ProductService) GetAll() ([]models.Product, error) {
	products, err := s.repo.GetAll()
	if err != nil {
		s.log.WithError(err).Error("failed to fetch products")
		return nil, err
	}
	return products, nil
}

// GetByID retrieves a single product by its id.
func (s *ProductService) GetByID(id int64) (*models.Product, error) {
	return s.repo.GetByID(id)
}

// Create assigns an id from the product counter and stores the product.
func (s *ProductService) Create(product *models.Product) (int64, error) {
	id, err := s.seq.Next(sequence.ProductID)
	if err != nil {
		s.log.WithError(err).Error("failed to assign product id")
		return 0, err
	}
	product.ID = id

	if err := s.repo.Create(product); err != nil {
		s.log.WithError(err).WithField("product_id", id).Error("failed to create product")
		return 0, fmt.Errorf("failed to create product: %w", err)
	}
	return id, nil
}

// Update merges the validated payload into an existing product.
func (s *ProductService) Update(id int64, product *models.Product) error {
	fields := map[string]interface{}{
		"name":        product.Name,
		"description": product.Description,
		"price":       product.Price,
		"quantity":    product.Quantity,
		"category":    product.Category,
		"brand":       product.Brand,
	}
	if err := s.repo.Update(id, fields); err != nil {
		if !errors.Is(err, repositories.ErrNotFound) {
			s.log.WithError(err).WithField("product_id", id).Error("failed to update product")
		}
		return err
	}
	return nil
}

// Delete removes a product by its id.
func (s *ProductService) Delete(id int64) error {
	return s.repo.Delete(id)
}
