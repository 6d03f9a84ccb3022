package models

// Product represents a product in the inventory.
type Product struct {
	ID          int64   `json:"id" gorm:"primaryKey;autoIncrement:false"`
	Name        string  `json:"name" validate:"required,min=5"`
	Description string  `json:"description" validate:"omitempty,min=10"`
	Price       float64 `json:"price" validate:"required,gt=0"`
	Quantity    int     `json:"quantity" validate:"gte=0"`
	Category    string  `json:"category" validate:"required,min=5"`
	Brand       string  `json:"brand" validate:"required,min=2"`
}
