package models

// Order represents a customer order. Products and TrackingInfo keep the
// free-form document shape of the original store and persist as JSON columns.
type Order struct {
	ID           int64                    `json:"id" gorm:"primaryKey;autoIncrement:false"`
	CustomerID   string                   `json:"customer_id" gorm:"type:varchar(64)" validate:"required"`
	Products     []map[string]interface{} `json:"products" gorm:"serializer:json" validate:"required"`
	TotalPrice   float64                  `json:"total_price" validate:"required"`
	Status       string                   `json:"status" gorm:"type:varchar(32)" validate:"required,oneof=pending shipped delivered"`
	TrackingInfo map[string]interface{}   `json:"tracking_info" gorm:"serializer:json" validate:"required"`
}
