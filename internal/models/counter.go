package models

// Counter stores the last issued value for a named id sequence.
// Rows are created lazily by the sequence generator and never deleted.
type Counter struct {
	Name  string `json:"name" gorm:"primaryKey;size:64"`
	Value int64  `json:"value" gorm:"not null"`
}

func (Counter) TableName() string { return "counters" }
