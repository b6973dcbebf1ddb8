package ledger

import (
	"context"

	"gorm.io/gorm"

	"rentledger-backend/internal/models"
)

// Store is the read side the year aggregator works against. Row order is
// pinned to insertion order (id asc) because the view's last-write-wins
// rules depend on it.
type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) LedgerForYear(ctx context.Context, year int) ([]models.RentLedgerEntry, error) {
	var rows []models.RentLedgerEntry
	err := s.db.WithContext(ctx).
		Where("rent_year = ?", year).
		Order("id asc").
		Find(&rows).Error
	return rows, err
}

// UnpaidThroughYear returns every not-fully-paid entry of the given shops up
// to and including the requested year. The caller separates the current
// year's rows (monthlyData) from the older ones (previous dues).
func (s *Store) UnpaidThroughYear(ctx context.Context, year int, shops []string) ([]models.RentLedgerEntry, error) {
	var rows []models.RentLedgerEntry
	err := s.db.WithContext(ctx).
		Where("shop_no IN ? AND rent_year <= ? AND payment_status NOT IN ?",
			shops, year, []models.PaymentStatus{models.PaymentPaid, models.PaymentNA}).
		Order("id asc").
		Find(&rows).Error
	return rows, err
}

func (s *Store) TenantsForShops(ctx context.Context, shops []string) ([]models.Tenant, error) {
	var rows []models.Tenant
	err := s.db.WithContext(ctx).
		Where("shop_no IN ?", shops).
		Order("id asc").
		Find(&rows).Error
	return rows, err
}

func (s *Store) AdvancesForShops(ctx context.Context, shops []string) ([]models.AdvanceRecord, error) {
	var rows []models.AdvanceRecord
	err := s.db.WithContext(ctx).
		Where("shop_no IN ?", shops).
		Order("id asc").
		Find(&rows).Error
	return rows, err
}
