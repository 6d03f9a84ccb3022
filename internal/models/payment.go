package models

import "time"

// ExpiryDate is the expiration of a payment card.
type ExpiryDate struct {
	Month string `json:"month" validate:"required"`
	Year  string `json:"year" validate:"required"`
}

// BillingAddress is the address a payment method is registered under.
type BillingAddress struct {
	Street     string `json:"street" validate:"required"`
	City       string `json:"city" validate:"required"`
	State      string `json:"state" validate:"required"`
	PostalCode string `json:"postal_code" validate:"required"`
	Country    string `json:"country" validate:"required"`
}

// Payment represents a stored payment method for a user.
type Payment struct {
	ID             int64           `json:"id" gorm:"primaryKey;autoIncrement:false"`
	UserID         string          `json:"user_id" gorm:"index;type:varchar(64)" validate:"required"`
	CardholderName string          `json:"cardholder_name" validate:"required"`
	CardNumber     string          `json:"card_number" validate:"required"`
	ExpiryDate     *ExpiryDate     `json:"expiry_date,omitempty" gorm:"serializer:json" validate:"omitempty"`
	BillingAddress *BillingAddress `json:"billing_address,omitempty" gorm:"serializer:json" validate:"omitempty"`
	Reference      string          `json:"reference" gorm:"type:varchar(36)"`
	RegisteredAt   time.Time       `json:"registered_at"`
}
