package models

import "time"

type AgreementStatus string

const (
	AgreementYes AgreementStatus = "Yes"
	AgreementNo  AgreementStatus = "No"
)

type RecordStatus string

const (
	StatusActive   RecordStatus = "Active"
	StatusInactive RecordStatus = "Inactive"
)

// Tenant is one occupancy record for a shop. A shop normally has a single
// active tenant, but older rows for previous tenants of the same shop_no are
// kept, so the join key is (shop_no, tenant_name), not shop_no alone.
type Tenant struct {
	ID              uint   `gorm:"primaryKey"`
	ShopNo          string `gorm:"size:20;uniqueIndex;not null"`
	TenantName      string `gorm:"size:100;not null"`
	FathersName     string `gorm:"size:100"`
	IDNumber        string `gorm:"size:50"`
	MobileNumber    string `gorm:"size:20"`
	Email           string `gorm:"size:100"`
	Address         string `gorm:"size:255"`
	MonthlyRent     float64 `gorm:"not null"`
	AdvancePaid     *float64
	AgreementStatus AgreementStatus `gorm:"size:5;default:No"`
	Status          RecordStatus    `gorm:"size:10;default:Active"`
	Comment         *string         `gorm:"size:255"`
	AdvanceRemaining *float64
	TotalDue        float64
	DueMonths       string `gorm:"size:255"`
	TenantNameHindi string `gorm:"size:100"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
