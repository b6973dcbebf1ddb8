package ledger

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"rentledger-backend/internal/api"
	"rentledger-backend/internal/models"
)

type CreateEntryRequest struct {
	PaymentDate     string  `json:"payment_date" validate:"required"` // "2025-03-01"
	ShopNo          string  `json:"shop_no" validate:"required"`
	TenantName      string  `json:"tenant_name" validate:"required"`
	RentMonth       string  `json:"rent_month" validate:"required"`
	RentYear        int     `json:"rent_year" validate:"required,gte=2000"`
	MonthlyRent     float64 `json:"monthly_rent" validate:"required,gte=0"`
	AmountPaid      float64 `json:"amount_paid" validate:"gte=0"`
	AdvanceDeducted float64 `json:"advance_deducted" validate:"gte=0"`
	OldShopNo       string  `json:"old_shop_no"`
	Comments        *string `json:"comments"`
	PaymentStatus   string  `json:"payment_status" validate:"omitempty,oneof=Paid Due Partial N/A"`
	PartiallyPaid   float64 `json:"partially_paid" validate:"gte=0"`
}

type PatchEntryRequest struct {
	PaymentDate     *string  `json:"payment_date"`
	ShopNo          *string  `json:"shop_no"`
	TenantName      *string  `json:"tenant_name"`
	RentMonth       *string  `json:"rent_month"`
	RentYear        *int     `json:"rent_year"`
	MonthlyRent     *float64 `json:"monthly_rent"`
	AmountPaid      *float64 `json:"amount_paid"`
	AdvanceDeducted *float64 `json:"advance_deducted"`
	OldShopNo       *string  `json:"old_shop_no"`
	Comments        *string  `json:"comments"`
	PaymentStatus   *string  `json:"payment_status"`
	PartiallyPaid   *float64 `json:"partially_paid"`
}

type EntryResponse struct {
	ID              uint    `json:"id"`
	PaymentDate     string  `json:"payment_date"`
	ShopNo          string  `json:"shop_no"`
	TenantName      string  `json:"tenant_name"`
	RentMonth       string  `json:"rent_month"`
	RentYear        int     `json:"rent_year"`
	MonthlyRent     float64 `json:"monthly_rent"`
	AmountPaid      float64 `json:"amount_paid"`
	AdvanceDeducted float64 `json:"advance_deducted"`
	OldShopNo       string  `json:"old_shop_no"`
	Comments        *string `json:"comments"`
	PaymentStatus   models.PaymentStatus `json:"payment_status"`
	PartiallyPaid   float64 `json:"partially_paid"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func toResponse(e *models.RentLedgerEntry) EntryResponse {
	return EntryResponse{
		ID:              e.ID,
		PaymentDate:     e.PaymentDate.Format("2006-01-02"),
		ShopNo:          e.ShopNo,
		TenantName:      e.TenantName,
		RentMonth:       e.RentMonth,
		RentYear:        e.RentYear,
		MonthlyRent:     e.MonthlyRent,
		AmountPaid:      e.AmountPaid,
		AdvanceDeducted: e.AdvanceDeducted,
		OldShopNo:       e.OldShopNo,
		Comments:        e.Comments,
		PaymentStatus:   e.PaymentStatus,
		PartiallyPaid:   e.PartiallyPaid,
		CreatedAt:       e.CreatedAt,
		UpdatedAt:       e.UpdatedAt,
	}
}

// GET /api/v1/rent-ledger?page=1&limit=20&shop_no=063&rent_year=2025&payment_status=Due
func ListEntriesHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		page, limit, offset := api.PageParams(c, 20, 100)

		q := db.Model(&models.RentLedgerEntry{})
		if v := c.Query("shop_no"); v != "" {
			q = q.Where("shop_no = ?", v)
		}
		if v := c.Query("tenant_name"); v != "" {
			q = q.Where("tenant_name ILIKE ?", "%"+v+"%")
		}
		if v := c.Query("rent_year"); v != "" {
			year, err := strconv.Atoi(v)
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "Invalid rent_year parameter")
			}
			q = q.Where("rent_year = ?", year)
		}
		if v := c.Query("rent_month"); v != "" {
			q = q.Where("rent_month = ?", v)
		}
		if v := c.Query("payment_status"); v != "" {
			q = q.Where("payment_status = ?", v)
		}

		var total int64
		if err := q.Count(&total).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not count rent ledger entries")
		}

		var rows []models.RentLedgerEntry
		if err := q.Order("rent_year desc, payment_date desc").Offset(offset).Limit(limit).Find(&rows).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not list rent ledger entries")
		}

		res := make([]EntryResponse, 0, len(rows))
		for i := range rows {
			res = append(res, toResponse(&rows[i]))
		}
		return c.JSON(api.List(res, total, page, limit))
	}
}

// GET /api/v1/rent-ledger/:id
func GetEntryHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var e models.RentLedgerEntry
		if err := db.First(&e, "id = ?", c.Params("id")).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Rent ledger entry not found")
		}
		return c.JSON(api.OK(toResponse(&e), "Success"))
	}
}

// POST /api/v1/rent-ledger
func CreateEntryHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateEntryRequest
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
			return fiber.NewError(fiber.StatusInternalServerError, "Could not create rent ledger entry")
		}

		return c.Status(fiber.StatusCreated).JSON(api.OK(toResponse(e), "Rent ledger entry created"))
	}
}

// PUT /api/v1/rent-ledger/:id  (full replace)
func UpdateEntryHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var e models.RentLedgerEntry
		if err := db.First(&e, "id = ?", c.Params("id")).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Rent ledger entry not found")
		}

		var body CreateEntryRequest
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
			return fiber.NewError(fiber.StatusInternalServerError, "Could not update rent ledger entry")
		}

		return c.JSON(api.OK(toResponse(replacement), "Rent ledger entry updated"))
	}
}

// PATCH /api/v1/rent-ledger/:id  (mark payment / partial update)
func PatchEntryHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var e models.RentLedgerEntry
		if err := db.First(&e, "id = ?", c.Params("id")).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Rent ledger entry not found")
		}

		var body PatchEntryRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		if body.PaymentDate != nil {
			d, err := time.Parse("2006-01-02", *body.PaymentDate)
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "Invalid payment_date, expected YYYY-MM-DD")
			}
			e.PaymentDate = d
		}
		if body.ShopNo != nil {
			e.ShopNo = *body.ShopNo
		}
		if body.TenantName != nil {
			e.TenantName = *body.TenantName
		}
		if body.RentMonth != nil {
			e.RentMonth = *body.RentMonth
		}
		if body.RentYear != nil {
			e.RentYear = *body.RentYear
		}
		if body.MonthlyRent != nil {
			e.MonthlyRent = *body.MonthlyRent
		}
		if body.AmountPaid != nil {
			e.AmountPaid = *body.AmountPaid
		}
		if body.AdvanceDeducted != nil {
			e.AdvanceDeducted = *body.AdvanceDeducted
		}
		if body.OldShopNo != nil {
			e.OldShopNo = *body.OldShopNo
		}
		if body.Comments != nil {
			e.Comments = body.Comments
		}
		if body.PaymentStatus != nil {
			e.PaymentStatus = models.PaymentStatus(*body.PaymentStatus)
		}
		if body.PartiallyPaid != nil {
			e.PartiallyPaid = *body.PartiallyPaid
		}

		if err := db.Save(&e).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not update rent ledger entry")
		}

		return c.JSON(api.OK(toResponse(&e), "Rent ledger entry partially updated"))
	}
}

// DELETE /api/v1/rent-ledger/:id
func DeleteEntryHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var e models.RentLedgerEntry
		if err := db.First(&e, "id = ?", c.Params("id")).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Rent ledger entry not found")
		}
		if err := db.Delete(&e).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not delete rent ledger entry")
		}
		return c.JSON(api.OK(nil, "Rent ledger entry deleted"))
	}
}

// GET /api/v1/rent-ledger/year/:year
//
// The consolidated year view: one entry per shop that has at least one
// ledger row in the requested year, keyed by shop number.
func YearViewHandler(store *Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		year, err := strconv.Atoi(c.Params("year"))
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid year parameter")
		}

		view, err := BuildYearView(c.UserContext(), store, year)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not build year view")
		}

		return c.JSON(api.OK(map[string]*YearView{strconv.Itoa(year): view}, "Success"))
	}
}

func fromRequest(body *CreateEntryRequest) (*models.RentLedgerEntry, error) {
	d, err := time.Parse("2006-01-02", body.PaymentDate)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Invalid payment_date, expected YYYY-MM-DD")
	}
	status := models.PaymentStatus(body.PaymentStatus)
	if status == "" {
		status = models.PaymentDue
	}
	return &models.RentLedgerEntry{
		PaymentDate:     d,
		ShopNo:          body.ShopNo,
		TenantName:      body.TenantName,
		RentMonth:       body.RentMonth,
		RentYear:        body.RentYear,
		MonthlyRent:     body.MonthlyRent,
		AmountPaid:      body.AmountPaid,
		AdvanceDeducted: body.AdvanceDeducted,
		OldShopNo:       body.OldShopNo,
		Comments:        body.Comments,
		PaymentStatus:   status,
		PartiallyPaid:   body.PartiallyPaid,
	}, nil
}
