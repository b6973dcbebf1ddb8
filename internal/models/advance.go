package models

import "time"

// AdvanceRecord tracks the deposit a tenant paid up front and how much of it
// has been eaten by rent deductions so far.
type AdvanceRecord struct {
	ID              uint   `gorm:"primaryKey"`
	ShopNo          string `gorm:"size:20;index"`
	TenantName      string `gorm:"size:100;not null"`
	AdvanceAmount   float64 `gorm:"not null"`
	AdvanceDeducted *float64
	AdvanceRemaining *float64
	Status          RecordStatus `gorm:"size:10;default:Active"`
	Comment         string       `gorm:"size:255"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (AdvanceRecord) TableName() string {
	return "advance_tracker"
}
