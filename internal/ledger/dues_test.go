package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rentledger-backend/internal/models"
)

func dueEntry(shop, month string, year int, rent, paid, advance, partial float64) models.RentLedgerEntry {
	return models.RentLedgerEntry{
		ShopNo:          shop,
		TenantName:      "Vinay Kumar",
		RentMonth:       month,
		RentYear:        year,
		MonthlyRent:     rent,
		AmountPaid:      paid,
		AdvanceDeducted: advance,
		PartiallyPaid:   partial,
		PaymentStatus:   models.PaymentDue,
	}
}

func TestComputePreviousDuesEmpty(t *testing.T) {
	dues := computePreviousDues(nil)
	assert.Equal(t, 0.0, dues.TotalDues)
	assert.Equal(t, []string{}, dues.DueMonths)
	assert.Equal(t, duesDescription, dues.Description)
}

func TestComputePreviousDuesTotalsAndLabels(t *testing.T) {
	entries := []models.RentLedgerEntry{
		dueEntry("063", "August", 2024, 3000, 0, 0, 0),
		dueEntry("063", "November", 2024, 3000, 1000, 500, 0),
	}
	dues := computePreviousDues(entries)
	assert.Equal(t, 4500.0, dues.TotalDues)
	assert.Equal(t, []string{"August 2024", "November 2024"}, dues.DueMonths)
}

func TestComputePreviousDuesSortsByYearThenMonth(t *testing.T) {
	entries := []models.RentLedgerEntry{
		dueEntry("063", "November", 2024, 3000, 0, 0, 0),
		dueEntry("063", "February", 2025, 3000, 0, 0, 0),
		dueEntry("063", "Sep-24", 2024, 3000, 0, 0, 0),
		dueEntry("063", "January", 2023, 3000, 0, 0, 0),
	}
	dues := computePreviousDues(entries)
	require.Len(t, dues.DueMonths, len(entries))
	assert.Equal(t, []string{
		"January 2023",
		"September 2024",
		"November 2024",
		"February 2025",
	}, dues.DueMonths)
}

func TestComputePreviousDuesUnknownMonthSortsFirst(t *testing.T) {
	entries := []models.RentLedgerEntry{
		dueEntry("063", "January", 2024, 3000, 0, 0, 0),
		dueEntry("063", "Monsoon", 2024, 3000, 0, 0, 0),
	}
	dues := computePreviousDues(entries)
	assert.Equal(t, []string{"Monsoon 2024", "January 2024"}, dues.DueMonths)
}

// An overpaid entry pulls the running total down; the total is deliberately
// left unclamped.
func TestComputePreviousDuesKeepsNegativeTotals(t *testing.T) {
	entries := []models.RentLedgerEntry{
		dueEntry("063", "March", 2024, 3000, 5000, 0, 0),
	}
	dues := computePreviousDues(entries)
	assert.Equal(t, -2000.0, dues.TotalDues)
	assert.Equal(t, []string{"March 2024"}, dues.DueMonths)
}

func TestComputePreviousDuesOneLabelPerEntry(t *testing.T) {
	entries := []models.RentLedgerEntry{
		dueEntry("063", "March", 2024, 3000, 0, 0, 0),
		dueEntry("063", "March", 2024, 3000, 0, 0, 0),
	}
	dues := computePreviousDues(entries)
	assert.Equal(t, []string{"March 2024", "March 2024"}, dues.DueMonths)
	assert.Equal(t, 6000.0, dues.TotalDues)
}
