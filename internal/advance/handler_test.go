package advance

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rentledger-backend/internal/models"
)

func TestToResponseNestsAdvanceFields(t *testing.T) {
	remaining := 7000.0
	row := models.AdvanceRecord{
		ID:               3,
		ShopNo:           "063",
		TenantName:       "Vinay Kumar",
		AdvanceAmount:    10000,
		AdvanceRemaining: &remaining,
		Status:           models.StatusActive,
	}

	res := toResponse(&row)
	assert.Equal(t, uint(3), res.ID)
	assert.Equal(t, "063", res.ShopNo)
	assert.Equal(t, "Vinay Kumar", res.Advance.TenantName)
	assert.Equal(t, 10000.0, res.Advance.AdvanceAmount)
	require.NotNil(t, res.Advance.AdvanceRemaining)
	assert.Equal(t, 7000.0, *res.Advance.AdvanceRemaining)

	out, err := json.Marshal(res)
	require.NoError(t, err)
	var decoded map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(out, &decoded))
	assert.Contains(t, decoded, "advance")
	assert.NotContains(t, decoded, "advance_amount")
}

func TestFromRequestDefaultsStatusActive(t *testing.T) {
	row := fromRequest(&CreateAdvanceRequest{
		TenantName:    "Vinay Kumar",
		AdvanceAmount: 10000,
	})
	assert.Equal(t, models.StatusActive, row.Status)
	assert.Nil(t, row.AdvanceDeducted)
}
