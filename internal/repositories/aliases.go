package repositories

import "tienda/internal/models"

// OrderRepository defines the interface for order data access.
type OrderRepository = Repository[models.Order]

// ProductRepository defines the interface for product data access.
type ProductRepository = Repository[models.Product]
