package models

import "time"

type PaymentStatus string

const (
	PaymentPaid    PaymentStatus = "Paid"
	PaymentDue     PaymentStatus = "Due"
	PaymentPartial PaymentStatus = "Partial"
	// PaymentNA marks months where no rent was applicable (shop vacant,
	// agreement gap). Excluded from due computations.
	PaymentNA PaymentStatus = "N/A"
)

// RentLedgerEntry is the atomic billing unit: one row per shop per calendar
// month per year. The ledger is the source of truth for which shops existed
// in a year, even when the tenant record was deleted later.
type RentLedgerEntry struct {
	ID              uint      `gorm:"primaryKey"`
	PaymentDate     time.Time `gorm:"index;not null"`
	ShopNo          string    `gorm:"size:20;index:idx_ledger_shop_year;not null"`
	TenantName      string    `gorm:"size:100;not null"`
	RentMonth       string    `gorm:"size:20;not null"` // "March", older rows also "Sep-24"
	RentYear        int       `gorm:"index:idx_ledger_shop_year;not null"`
	MonthlyRent     float64   `gorm:"not null"`
	AmountPaid      float64
	AdvanceDeducted float64
	OldShopNo       string  `gorm:"size:20"`
	Comments        *string `gorm:"size:255"`
	PaymentStatus   PaymentStatus `gorm:"size:10;default:Due"`
	PartiallyPaid   float64
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (RentLedgerEntry) TableName() string {
	return "rent_ledger"
}
