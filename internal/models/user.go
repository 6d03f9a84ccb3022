package models

// User represents a registered account.
type User struct {
	ID            int64  `json:"id" gorm:"primaryKey;autoIncrement:false"`
	Email         string `json:"email" gorm:"uniqueIndex;type:varchar(255)" validate:"required,email"`
	PasswordToken string `json:"-" gorm:"type:varchar(64)"` // derived token, never the raw password
}
