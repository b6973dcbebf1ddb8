package expense

import "rentledger-backend/internal/models"

type ExpenseItem struct {
	ID          uint    `json:"id"`
	Date        string  `json:"date"`
	Amount      float64 `json:"amount"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	SubCategory string  `json:"sub_category"`
	PaymentMethod models.PaymentMethod `json:"paymentMethod"`
}

type IncomeDetails struct {
	TotalIncome float64 `json:"totalIncome"`
}

type MonthData struct {
	IncomeDetails  IncomeDetails `json:"incomeDetails"`
	ExpenseDetails []ExpenseItem `json:"expense_details"`
}

// groupByYearMonth shapes flat rows into { year: { month: { incomeDetails,
// expense_details } } }, the structure the UI renders directly. Income is
// tracked elsewhere, so totalIncome stays zero here.
func groupByYearMonth(rows []models.Expense) map[string]map[string]*MonthData {
	result := make(map[string]map[string]*MonthData)

	for _, row := range rows {
		year := row.TxnDate.Format("2006")
		month := row.TxnDate.Month().String()

		if result[year] == nil {
			result[year] = make(map[string]*MonthData)
		}
		if result[year][month] == nil {
			result[year][month] = &MonthData{ExpenseDetails: []ExpenseItem{}}
		}

		result[year][month].ExpenseDetails = append(result[year][month].ExpenseDetails, ExpenseItem{
			ID:            row.ID,
			Date:          row.TxnDate.Format("2006-01-02"),
			Amount:        row.Amount,
			Category:      row.Category,
			Description:   row.Description,
			SubCategory:   row.SubCategory,
			PaymentMethod: row.PaymentMethod,
		})
	}

	return result
}
