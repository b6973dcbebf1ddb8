package api

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListTotalPages(t *testing.T) {
	tests := []struct {
		name  string
		total int64
		limit int
		want  int
	}{
		{name: "exact multiple", total: 40, limit: 20, want: 2},
		{name: "rounds up", total: 41, limit: 20, want: 3},
		{name: "less than one page", total: 5, limit: 20, want: 1},
		{name: "empty", total: 0, limit: 20, want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := List([]string{}, tt.total, 1, tt.limit)
			require.NotNil(t, res.Pagination)
			assert.Equal(t, tt.want, res.Pagination.TotalPages)
			assert.Equal(t, tt.total, res.Pagination.Total)
		})
	}
}

func TestEnvelopeShapes(t *testing.T) {
	ok, err := json.Marshal(OK(fiber.Map{"token": "abc"}, "Login successful"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"success":true,"message":"Login successful","data":{"token":"abc"}}`, string(ok))

	fail, err := json.Marshal(Error("Tenant not found"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"success":false,"message":"Tenant not found","data":null}`, string(fail))
}

func TestPageParams(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		wantPage   int
		wantLimit  int
		wantOffset int
	}{
		{name: "defaults", query: "", wantPage: 1, wantLimit: 20, wantOffset: 0},
		{name: "explicit page", query: "?page=3&limit=10", wantPage: 3, wantLimit: 10, wantOffset: 20},
		{name: "limit clamped to max", query: "?limit=500", wantPage: 1, wantLimit: 100, wantOffset: 0},
		{name: "zero page becomes one", query: "?page=0", wantPage: 1, wantLimit: 20, wantOffset: 0},
		{name: "negative limit becomes one", query: "?limit=-5", wantPage: 1, wantLimit: 1, wantOffset: 0},
		{name: "garbage falls back", query: "?page=abc&limit=xyz", wantPage: 1, wantLimit: 20, wantOffset: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var page, limit, offset int
			app := fiber.New()
			app.Get("/", func(c *fiber.Ctx) error {
				page, limit, offset = PageParams(c, 20, 100)
				return c.SendStatus(fiber.StatusOK)
			})

			resp, err := app.Test(httptest.NewRequest("GET", "/"+tt.query, nil))
			require.NoError(t, err)
			require.Equal(t, fiber.StatusOK, resp.StatusCode)

			assert.Equal(t, tt.wantPage, page)
			assert.Equal(t, tt.wantLimit, limit)
			assert.Equal(t, tt.wantOffset, offset)
		})
	}
}
