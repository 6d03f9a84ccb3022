package models

// CartProduct is a product entry inside a shopping cart. Carts keep their
// own copy of the product fields; the same product may appear more than once.
type CartProduct struct {
	ProductID   int64   `json:"product_id" validate:"required"`
	Name        string  `json:"name" validate:"required"`
	Description string  `json:"description" validate:"omitempty"`
	Price       float64 `json:"price" validate:"required"`
	Category    string  `json:"category" validate:"required"`
	Brand       string  `json:"brand" validate:"required"`
}

// Cart represents a shopping cart. At most one cart exists per user.
type Cart struct {
	ID       int64         `json:"id" gorm:"primaryKey;autoIncrement:false"`
	UserID   string        `json:"user_id" gorm:"uniqueIndex;type:varchar(64)"`
	Products []CartProduct `json:"products" gorm:"serializer:json"`
}
