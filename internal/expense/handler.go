package expense

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"rentledger-backend/internal/api"
	"rentledger-backend/internal/models"
)

type CreateExpenseRequest struct {
	TxnDate     string  `json:"txn_date" validate:"required"` // "2025-12-09"
	Amount      float64 `json:"amount" validate:"required,gte=0"`
	Description string  `json:"description" validate:"required"`
	Category    string  `json:"category" validate:"required"`
	SubCategory string  `json:"sub_category"`
	PaymentMethod string `json:"payment_method" validate:"omitempty,oneof=Cash UPI 'Bank Transfer' Cheque Card Other"`
}

type PatchExpenseRequest struct {
	TxnDate     *string  `json:"txn_date"`
	Amount      *float64 `json:"amount"`
	Description *string  `json:"description"`
	Category    *string  `json:"category"`
	SubCategory *string  `json:"sub_category"`
	PaymentMethod *string `json:"payment_method"`
}

type ExpenseResponse struct {
	ID          uint    `json:"id"`
	TxnDate     string  `json:"txn_date"`
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	SubCategory string  `json:"sub_category"`
	PaymentMethod models.PaymentMethod `json:"payment_method"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func toResponse(e *models.Expense) ExpenseResponse {
	return ExpenseResponse{
		ID:            e.ID,
		TxnDate:       e.TxnDate.Format("2006-01-02"),
		Amount:        e.Amount,
		Description:   e.Description,
		Category:      e.Category,
		SubCategory:   e.SubCategory,
		PaymentMethod: e.PaymentMethod,
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
	}
}

// GET /api/v1/expenses?year=2024&category=Repairs&payment_method=Cash&from=...&to=...
// Returns the year→month grouped shape, not a flat list.
func ListExpensesHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		page, limit, offset := api.PageParams(c, 1000, 1000)

		q := db.Model(&models.Expense{})
		if v := c.Query("category"); v != "" {
			q = q.Where("category = ?", v)
		}
		if v := c.Query("payment_method"); v != "" {
			q = q.Where("payment_method = ?", v)
		}
		if v := c.Query("from"); v != "" {
			from, err := time.Parse("2006-01-02", v)
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "Invalid 'from' date, expected YYYY-MM-DD")
			}
			q = q.Where("txn_date >= ?", from)
		}
		if v := c.Query("to"); v != "" {
			to, err := time.Parse("2006-01-02", v)
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "Invalid 'to' date, expected YYYY-MM-DD")
			}
			q = q.Where("txn_date <= ?", to)
		}
		if v := c.Query("year"); v != "" {
			var year int
			if _, err := fmt.Sscan(v, &year); err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "Invalid year parameter")
			}
			q = q.Where("txn_date >= ? AND txn_date <= ?",
				time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC),
				time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC))
		}

		var total int64
		if err := q.Count(&total).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not count expenses")
		}

		var rows []models.Expense
		if err := q.Order("txn_date asc").Offset(offset).Limit(limit).Find(&rows).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not list expenses")
		}

		return c.JSON(api.List(groupByYearMonth(rows), total, page, limit))
	}
}

// GET /api/v1/expenses/:id  (single flat record, for edit forms)
func GetExpenseHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var e models.Expense
		if err := db.First(&e, "id = ?", c.Params("id")).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Expense not found")
		}
		return c.JSON(api.OK(toResponse(&e), "Success"))
	}
}

// POST /api/v1/expenses
func CreateExpenseHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateExpenseRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}
		if err := api.ValidateStruct(&body); err != nil {
			return err
		}

		e, err := fromRequest(&body)
		if err != nil {
			return err
		}
		if err := db.Create(e).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not create expense")
		}

		return c.Status(fiber.StatusCreated).JSON(api.OK(toResponse(e), "Expense created"))
	}
}

// PUT /api/v1/expenses/:id  (full replace)
func UpdateExpenseHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var e models.Expense
		if err := db.First(&e, "id = ?", c.Params("id")).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Expense not found")
		}

		var body CreateExpenseRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}
		if err := api.ValidateStruct(&body); err != nil {
			return err
		}

		replacement, err := fromRequest(&body)
		if err != nil {
			return err
		}
		replacement.ID = e.ID
		replacement.CreatedAt = e.CreatedAt
		if err := db.Save(replacement).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not update expense")
		}

		return c.JSON(api.OK(toResponse(replacement), "Expense updated"))
	}
}

// PATCH /api/v1/expenses/:id
func PatchExpenseHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var e models.Expense
		if err := db.First(&e, "id = ?", c.Params("id")).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Expense not found")
		}

		var body PatchExpenseRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		if body.TxnDate != nil {
			d, err := time.Parse("2006-01-02", *body.TxnDate)
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "Invalid txn_date, expected YYYY-MM-DD")
			}
			e.TxnDate = d
		}
		if body.Amount != nil {
			e.Amount = *body.Amount
		}
		if body.Description != nil {
			e.Description = *body.Description
		}
		if body.Category != nil {
			e.Category = *body.Category
		}
		if body.SubCategory != nil {
			e.SubCategory = *body.SubCategory
		}
		if body.PaymentMethod != nil {
			e.PaymentMethod = models.PaymentMethod(*body.PaymentMethod)
		}

		if err := db.Save(&e).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not update expense")
		}

		return c.JSON(api.OK(toResponse(&e), "Expense partially updated"))
	}
}

// DELETE /api/v1/expenses/:id
func DeleteExpenseHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var e models.Expense
		if err := db.First(&e, "id = ?", c.Params("id")).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Expense not found")
		}
		if err := db.Delete(&e).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not delete expense")
		}
		return c.JSON(api.OK(nil, "Expense deleted"))
	}
}

func fromRequest(body *CreateExpenseRequest) (*models.Expense, error) {
	d, err := time.Parse("2006-01-02", body.TxnDate)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Invalid txn_date, expected YYYY-MM-DD")
	}
	method := models.PaymentMethod(body.PaymentMethod)
	if method == "" {
		method = models.MethodCash
	}
	return &models.Expense{
		TxnDate:       d,
		Amount:        body.Amount,
		Description:   body.Description,
		Category:      body.Category,
		SubCategory:   body.SubCategory,
		PaymentMethod: method,
	}, nil
}
