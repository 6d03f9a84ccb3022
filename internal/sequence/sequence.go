package sequence

import (
	"fmt"

	"gorm.io/gorm"
)

// Counter names used across the services.
const (
	UserID    = "user_id"
	OrderID   = "order_id"
	PaymentID = "payment_id"
	ProductID = "product_id"
	CartID    = "cart_id"
)

// Generator produces unique, strictly increasing ids per counter name.
type Generator interface {
	Next(name string) (int64, error)
}

// GormGenerator backs a Generator with the counters table. Increment and
// read happen in one statement, so concurrent callers can never observe the
// same value.
type GormGenerator struct {
	db *gorm.DB
}

// NewGormGenerator creates a new GormGenerator.
func NewGormGenerator(db *gorm.DB) *GormGenerator {
	return &GormGenerator{db: db}
}

// Next returns the next value for the named counter. The counter row is
// created on first use; the first value issued for a name is 1.
func (g *GormGenerator) Next(name string) (int64, error) {
	var value int64
	err := g.db.Raw(
		`INSERT INTO counters (name, value) VALUES (?, 1)
		 ON CONFLICT (name) DO UPDATE SET value = counters.value + 1
		 RETURNING value`,
		name,
	).Scan(&value).Error
	if err != nil {
		return 0, fmt.Errorf("failed to advance counter %q: %w", name, err)
	}
	return value, nil
}
