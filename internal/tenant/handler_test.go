package tenant

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rentledger-backend/internal/models"
)

func TestToResponseNestsTenantFields(t *testing.T) {
	advance := 10000.0
	row := models.Tenant{
		ID:           7,
		ShopNo:       "063",
		TenantName:   "Vinay Kumar",
		FathersName:  "Ram Kumar",
		IDNumber:     "123456789443",
		MobileNumber: "9876543210",
		MonthlyRent:  3000,
		AdvancePaid:  &advance,
		AgreementStatus: models.AgreementYes,
		Status:          models.StatusActive,
	}

	res := toResponse(&row)
	assert.Equal(t, uint(7), res.ID)
	assert.Equal(t, "063", res.ShopNo)
	assert.Equal(t, "Vinay Kumar", res.Tenant.TenantName)
	assert.Equal(t, 3000.0, res.Tenant.MonthlyRent)
	require.NotNil(t, res.Tenant.AdvancePaid)
	assert.Equal(t, 10000.0, *res.Tenant.AdvancePaid)

	out, err := json.Marshal(res)
	require.NoError(t, err)
	var decoded map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(out, &decoded))
	assert.Contains(t, decoded, "shop_no")
	assert.Contains(t, decoded, "tenant")
	assert.NotContains(t, decoded, "tenant_name")
}

func TestFromRequestDefaults(t *testing.T) {
	body := CreateTenantRequest{
		ShopNo:      "063",
		TenantName:  "Vinay Kumar",
		MonthlyRent: 3000,
	}
	row := fromRequest(&body)
	assert.Equal(t, models.AgreementNo, row.AgreementStatus)
	assert.Equal(t, models.StatusActive, row.Status)
}

func TestApplyPatchOnlyTouchesSetFields(t *testing.T) {
	row := models.Tenant{
		ShopNo:      "063",
		TenantName:  "Vinay Kumar",
		MonthlyRent: 3000,
		Status:      models.StatusActive,
	}

	rent := 3500.0
	status := "Inactive"
	applyPatch(&row, &PatchTenantRequest{
		MonthlyRent: &rent,
		Status:      &status,
	})

	assert.Equal(t, 3500.0, row.MonthlyRent)
	assert.Equal(t, models.StatusInactive, row.Status)
	assert.Equal(t, "063", row.ShopNo)
	assert.Equal(t, "Vinay Kumar", row.TenantName)
}
