package expense

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rentledger-backend/internal/models"
)

func txn(id uint, date string, amount float64, category string) models.Expense {
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		panic(err)
	}
	return models.Expense{
		ID:            id,
		TxnDate:       d,
		Amount:        amount,
		Category:      category,
		Description:   category + " work",
		PaymentMethod: models.MethodCash,
	}
}

func TestGroupByYearMonth(t *testing.T) {
	rows := []models.Expense{
		txn(1, "2025-03-05", 500, "Repairs"),
		txn(2, "2025-03-20", 1200, "Electricity"),
		txn(3, "2025-07-01", 300, "Water"),
		txn(4, "2024-12-31", 900, "Repairs"),
	}

	grouped := groupByYearMonth(rows)

	require.Len(t, grouped, 2)
	require.Contains(t, grouped, "2025")
	require.Contains(t, grouped, "2024")

	march := grouped["2025"]["March"]
	require.NotNil(t, march)
	require.Len(t, march.ExpenseDetails, 2)
	assert.Equal(t, 0.0, march.IncomeDetails.TotalIncome)
	assert.Equal(t, uint(1), march.ExpenseDetails[0].ID)
	assert.Equal(t, "2025-03-05", march.ExpenseDetails[0].Date)
	assert.Equal(t, 1200.0, march.ExpenseDetails[1].Amount)

	july := grouped["2025"]["July"]
	require.NotNil(t, july)
	assert.Len(t, july.ExpenseDetails, 1)

	december := grouped["2024"]["December"]
	require.NotNil(t, december)
	assert.Equal(t, 900.0, december.ExpenseDetails[0].Amount)
	assert.Equal(t, models.MethodCash, december.ExpenseDetails[0].PaymentMethod)
}

func TestGroupByYearMonthEmpty(t *testing.T) {
	grouped := groupByYearMonth(nil)
	assert.Empty(t, grouped)
	assert.NotNil(t, grouped)
}
