package tenant

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"rentledger-backend/internal/api"
	"rentledger-backend/internal/models"
)

type CreateTenantRequest struct {
	ShopNo           string   `json:"shop_no" validate:"required"`
	TenantName       string   `json:"tenant_name" validate:"required"`
	FathersName      string   `json:"fathers_name"`
	IDNumber         string   `json:"id_number"`
	MobileNumber     string   `json:"mobile_number"`
	Email            string   `json:"email" validate:"omitempty,email"`
	Address          string   `json:"address"`
	MonthlyRent      float64  `json:"monthly_rent" validate:"required,gte=0"`
	AdvancePaid      *float64 `json:"advance_paid"`
	AgreementStatus  string   `json:"agreement_status" validate:"omitempty,oneof=Yes No"`
	Status           string   `json:"status" validate:"omitempty,oneof=Active Inactive"`
	Comment          *string  `json:"comment"`
	AdvanceRemaining *float64 `json:"advance_remaining"`
	TotalDue         float64  `json:"total_due"`
	DueMonths        string   `json:"due_months"`
	TenantNameHindi  string   `json:"tenant_name_hindi"`
}

type PatchTenantRequest struct {
	ShopNo           *string  `json:"shop_no"`
	TenantName       *string  `json:"tenant_name"`
	FathersName      *string  `json:"fathers_name"`
	IDNumber         *string  `json:"id_number"`
	MobileNumber     *string  `json:"mobile_number"`
	Email            *string  `json:"email"`
	Address          *string  `json:"address"`
	MonthlyRent      *float64 `json:"monthly_rent"`
	AdvancePaid      *float64 `json:"advance_paid"`
	AgreementStatus  *string  `json:"agreement_status"`
	Status           *string  `json:"status"`
	Comment          *string  `json:"comment"`
	AdvanceRemaining *float64 `json:"advance_remaining"`
	TotalDue         *float64 `json:"total_due"`
	DueMonths        *string  `json:"due_months"`
	TenantNameHindi  *string  `json:"tenant_name_hindi"`
}

// The UI expects { shop_no, tenant: { ...everything else } }. Storage is
// flat; the nesting happens on read only.
type TenantInfo struct {
	TenantName       string   `json:"tenant_name"`
	FathersName      string   `json:"fathers_name"`
	IDNumber         string   `json:"id_number"`
	MobileNumber     string   `json:"mobile_number"`
	Email            string   `json:"email"`
	Address          string   `json:"address"`
	MonthlyRent      float64  `json:"monthly_rent"`
	AdvancePaid      *float64 `json:"advance_paid"`
	AgreementStatus  models.AgreementStatus `json:"agreement_status"`
	Status           models.RecordStatus    `json:"status"`
	Comment          *string  `json:"comment"`
	AdvanceRemaining *float64 `json:"advance_remaining"`
	TotalDue         float64  `json:"total_due"`
	DueMonths        string   `json:"due_months"`
	TenantNameHindi  string   `json:"tenant_name_hindi"`
}

type TenantResponse struct {
	ID        uint       `json:"id"`
	ShopNo    string     `json:"shop_no"`
	Tenant    TenantInfo `json:"tenant"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

func toResponse(t *models.Tenant) TenantResponse {
	return TenantResponse{
		ID:     t.ID,
		ShopNo: t.ShopNo,
		Tenant: TenantInfo{
			TenantName:       t.TenantName,
			FathersName:      t.FathersName,
			IDNumber:         t.IDNumber,
			MobileNumber:     t.MobileNumber,
			Email:            t.Email,
			Address:          t.Address,
			MonthlyRent:      t.MonthlyRent,
			AdvancePaid:      t.AdvancePaid,
			AgreementStatus:  t.AgreementStatus,
			Status:           t.Status,
			Comment:          t.Comment,
			AdvanceRemaining: t.AdvanceRemaining,
			TotalDue:         t.TotalDue,
			DueMonths:        t.DueMonths,
			TenantNameHindi:  t.TenantNameHindi,
		},
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

// GET /api/v1/tenants?page=1&limit=20&status=Active&shop_no=063&tenant_name=vinay
func ListTenantsHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		page, limit, offset := api.PageParams(c, 20, 1000)

		q := db.Model(&models.Tenant{})
		if v := c.Query("status"); v != "" {
			q = q.Where("status = ?", v)
		}
		if v := c.Query("shop_no"); v != "" {
			q = q.Where("shop_no = ?", v)
		}
		if v := c.Query("agreement_status"); v != "" {
			q = q.Where("agreement_status = ?", v)
		}
		if v := c.Query("tenant_name"); v != "" {
			q = q.Where("tenant_name ILIKE ?", "%"+v+"%")
		}

		var total int64
		if err := q.Count(&total).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not count tenants")
		}

		var rows []models.Tenant
		if err := q.Order("shop_no asc").Offset(offset).Limit(limit).Find(&rows).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not list tenants")
		}

		res := make([]TenantResponse, 0, len(rows))
		for i := range rows {
			res = append(res, toResponse(&rows[i]))
		}
		return c.JSON(api.List(res, total, page, limit))
	}
}

// GET /api/v1/tenants/:id
func GetTenantHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var t models.Tenant
		if err := db.First(&t, "id = ?", c.Params("id")).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Tenant not found")
		}
		return c.JSON(api.OK(toResponse(&t), "Success"))
	}
}

// POST /api/v1/tenants
func CreateTenantHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateTenantRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}
		if err := api.ValidateStruct(&body); err != nil {
			return err
		}

		t := fromRequest(&body)
		if err := db.Create(t).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return fiber.NewError(fiber.StatusConflict, "Duplicate value for field: shop_no")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Could not create tenant")
		}

		return c.Status(fiber.StatusCreated).JSON(api.OK(toResponse(t), "Tenant created"))
	}
}

// PUT /api/v1/tenants/:id  (full replace)
func UpdateTenantHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var t models.Tenant
		if err := db.First(&t, "id = ?", c.Params("id")).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Tenant not found")
		}

		var body CreateTenantRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}
		if err := api.ValidateStruct(&body); err != nil {
			return err
		}

		replacement := fromRequest(&body)
		replacement.ID = t.ID
		replacement.CreatedAt = t.CreatedAt
		if err := db.Save(replacement).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return fiber.NewError(fiber.StatusConflict, "Duplicate value for field: shop_no")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Could not update tenant")
		}

		return c.JSON(api.OK(toResponse(replacement), "Tenant updated"))
	}
}

// PATCH /api/v1/tenants/:id  (merge)
func PatchTenantHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var t models.Tenant
		if err := db.First(&t, "id = ?", c.Params("id")).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Tenant not found")
		}

		var body PatchTenantRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		applyPatch(&t, &body)
		if err := db.Save(&t).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return fiber.NewError(fiber.StatusConflict, "Duplicate value for field: shop_no")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Could not update tenant")
		}

		return c.JSON(api.OK(toResponse(&t), "Tenant partially updated"))
	}
}

// DELETE /api/v1/tenants/:id
func DeleteTenantHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var t models.Tenant
		if err := db.First(&t, "id = ?", c.Params("id")).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Tenant not found")
		}
		if err := db.Delete(&t).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not delete tenant")
		}
		return c.JSON(api.OK(nil, "Tenant deleted"))
	}
}

func fromRequest(body *CreateTenantRequest) *models.Tenant {
	agreement := models.AgreementStatus(body.AgreementStatus)
	if agreement == "" {
		agreement = models.AgreementNo
	}
	status := models.RecordStatus(body.Status)
	if status == "" {
		status = models.StatusActive
	}
	return &models.Tenant{
		ShopNo:           body.ShopNo,
		TenantName:       body.TenantName,
		FathersName:      body.FathersName,
		IDNumber:         body.IDNumber,
		MobileNumber:     body.MobileNumber,
		Email:            body.Email,
		Address:          body.Address,
		MonthlyRent:      body.MonthlyRent,
		AdvancePaid:      body.AdvancePaid,
		AgreementStatus:  agreement,
		Status:           status,
		Comment:          body.Comment,
		AdvanceRemaining: body.AdvanceRemaining,
		TotalDue:         body.TotalDue,
		DueMonths:        body.DueMonths,
		TenantNameHindi:  body.TenantNameHindi,
	}
}

func applyPatch(t *models.Tenant, body *PatchTenantRequest) {
	if body.ShopNo != nil {
		t.ShopNo = *body.ShopNo
	}
	if body.TenantName != nil {
		t.TenantName = *body.TenantName
	}
	if body.FathersName != nil {
		t.FathersName = *body.FathersName
	}
	if body.IDNumber != nil {
		t.IDNumber = *body.IDNumber
	}
	if body.MobileNumber != nil {
		t.MobileNumber = *body.MobileNumber
	}
	if body.Email != nil {
		t.Email = *body.Email
	}
	if body.Address != nil {
		t.Address = *body.Address
	}
	if body.MonthlyRent != nil {
		t.MonthlyRent = *body.MonthlyRent
	}
	if body.AdvancePaid != nil {
		t.AdvancePaid = body.AdvancePaid
	}
	if body.AgreementStatus != nil {
		t.AgreementStatus = models.AgreementStatus(*body.AgreementStatus)
	}
	if body.Status != nil {
		t.Status = models.RecordStatus(*body.Status)
	}
	if body.Comment != nil {
		t.Comment = body.Comment
	}
	if body.AdvanceRemaining != nil {
		t.AdvanceRemaining = body.AdvanceRemaining
	}
	if body.TotalDue != nil {
		t.TotalDue = *body.TotalDue
	}
	if body.DueMonths != nil {
		t.DueMonths = *body.DueMonths
	}
	if body.TenantNameHindi != nil {
		t.TenantNameHindi = *body.TenantNameHindi
	}
}
