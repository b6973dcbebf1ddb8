package advance

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"rentledger-backend/internal/api"
	"rentledger-backend/internal/models"
)

type CreateAdvanceRequest struct {
	ShopNo           string   `json:"shop_no"`
	TenantName       string   `json:"tenant_name" validate:"required"`
	AdvanceAmount    float64  `json:"advance_amount" validate:"required,gte=0"`
	AdvanceDeducted  *float64 `json:"advance_deducted"`
	AdvanceRemaining *float64 `json:"advance_remaining"`
	Status           string   `json:"status" validate:"omitempty,oneof=Active Inactive"`
	Comment          string   `json:"comment"`
}

type PatchAdvanceRequest struct {
	ShopNo           *string  `json:"shop_no"`
	TenantName       *string  `json:"tenant_name"`
	AdvanceAmount    *float64 `json:"advance_amount"`
	AdvanceDeducted  *float64 `json:"advance_deducted"`
	AdvanceRemaining *float64 `json:"advance_remaining"`
	Status           *string  `json:"status"`
	Comment          *string  `json:"comment"`
}

// Read shape mirrors the tenant endpoint: flat storage, nested on the wire.
type AdvanceInfo struct {
	TenantName       string   `json:"tenant_name"`
	AdvanceAmount    float64  `json:"advance_amount"`
	AdvanceDeducted  *float64 `json:"advance_deducted"`
	AdvanceRemaining *float64 `json:"advance_remaining"`
	Status           models.RecordStatus `json:"status"`
	Comment          string   `json:"comment"`
}

type AdvanceResponse struct {
	ID        uint        `json:"id"`
	ShopNo    string      `json:"shop_no"`
	Advance   AdvanceInfo `json:"advance"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

func toResponse(a *models.AdvanceRecord) AdvanceResponse {
	return AdvanceResponse{
		ID:     a.ID,
		ShopNo: a.ShopNo,
		Advance: AdvanceInfo{
			TenantName:       a.TenantName,
			AdvanceAmount:    a.AdvanceAmount,
			AdvanceDeducted:  a.AdvanceDeducted,
			AdvanceRemaining: a.AdvanceRemaining,
			Status:           a.Status,
			Comment:          a.Comment,
		},
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

// GET /api/v1/advance-tracker?page=1&limit=20
func ListAdvancesHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		page, limit, offset := api.PageParams(c, 20, 1000)

		var total int64
		if err := db.Model(&models.AdvanceRecord{}).Count(&total).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not count advance records")
		}

		var rows []models.AdvanceRecord
		if err := db.Order("created_at desc").Offset(offset).Limit(limit).Find(&rows).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not list advance records")
		}

		res := make([]AdvanceResponse, 0, len(rows))
		for i := range rows {
			res = append(res, toResponse(&rows[i]))
		}
		return c.JSON(api.List(res, total, page, limit))
	}
}

// GET /api/v1/advance-tracker/:id
func GetAdvanceHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var a models.AdvanceRecord
		if err := db.First(&a, "id = ?", c.Params("id")).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Advance tracker record not found")
		}
		return c.JSON(api.OK(toResponse(&a), "Success"))
	}
}

// POST /api/v1/advance-tracker
func CreateAdvanceHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateAdvanceRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}
		if err := api.ValidateStruct(&body); err != nil {
			return err
		}

		a := fromRequest(&body)
		if err := db.Create(a).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not create advance record")
		}

		return c.Status(fiber.StatusCreated).JSON(api.OK(toResponse(a), "Advance tracker record created"))
	}
}

// PUT /api/v1/advance-tracker/:id  (full replace)
func UpdateAdvanceHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var a models.AdvanceRecord
		if err := db.First(&a, "id = ?", c.Params("id")).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Advance tracker record not found")
		}

		var body CreateAdvanceRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}
		if err := api.ValidateStruct(&body); err != nil {
			return err
		}

		replacement := fromRequest(&body)
		replacement.ID = a.ID
		replacement.CreatedAt = a.CreatedAt
		if err := db.Save(replacement).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not update advance record")
		}

		return c.JSON(api.OK(toResponse(replacement), "Advance tracker record updated"))
	}
}

// PATCH /api/v1/advance-tracker/:id
func PatchAdvanceHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var a models.AdvanceRecord
		if err := db.First(&a, "id = ?", c.Params("id")).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Advance tracker record not found")
		}

		var body PatchAdvanceRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		if body.ShopNo != nil {
			a.ShopNo = *body.ShopNo
		}
		if body.TenantName != nil {
			a.TenantName = *body.TenantName
		}
		if body.AdvanceAmount != nil {
			a.AdvanceAmount = *body.AdvanceAmount
		}
		if body.AdvanceDeducted != nil {
			a.AdvanceDeducted = body.AdvanceDeducted
		}
		if body.AdvanceRemaining != nil {
			a.AdvanceRemaining = body.AdvanceRemaining
		}
		if body.Status != nil {
			a.Status = models.RecordStatus(*body.Status)
		}
		if body.Comment != nil {
			a.Comment = *body.Comment
		}

		if err := db.Save(&a).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not update advance record")
		}

		return c.JSON(api.OK(toResponse(&a), "Advance tracker record partially updated"))
	}
}

// DELETE /api/v1/advance-tracker/:id
func DeleteAdvanceHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var a models.AdvanceRecord
		if err := db.First(&a, "id = ?", c.Params("id")).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Advance tracker record not found")
		}
		if err := db.Delete(&a).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not delete advance record")
		}
		return c.JSON(api.OK(nil, "Advance tracker record deleted"))
	}
}

func fromRequest(body *CreateAdvanceRequest) *models.AdvanceRecord {
	status := models.RecordStatus(body.Status)
	if status == "" {
		status = models.StatusActive
	}
	return &models.AdvanceRecord{
		ShopNo:           body.ShopNo,
		TenantName:       body.TenantName,
		AdvanceAmount:    body.AdvanceAmount,
		AdvanceDeducted:  body.AdvanceDeducted,
		AdvanceRemaining: body.AdvanceRemaining,
		Status:           status,
		Comment:          body.Comment,
	}
}
