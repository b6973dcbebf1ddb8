package models

import "time"

type PaymentMethod string

const (
	MethodCash         PaymentMethod = "Cash"
	MethodUPI          PaymentMethod = "UPI"
	MethodBankTransfer PaymentMethod = "Bank Transfer"
	MethodCheque       PaymentMethod = "Cheque"
	MethodCard         PaymentMethod = "Card"
	MethodOther        PaymentMethod = "Other"
)

// Expense is standalone property bookkeeping; it has no relation to tenants
// or the rent ledger.
type Expense struct {
	ID            uint      `gorm:"primaryKey"`
	TxnDate       time.Time `gorm:"index;not null"`
	Amount        float64   `gorm:"not null"`
	Description   string    `gorm:"size:255;not null"`
	Category      string    `gorm:"size:100;index;not null"`
	SubCategory   string    `gorm:"size:100"`
	PaymentMethod PaymentMethod `gorm:"size:20;not null;default:Cash"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
