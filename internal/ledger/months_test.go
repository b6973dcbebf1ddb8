package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseMonthLabel(t *testing.T) {
	tests := []struct {
		raw          string
		fallbackYear int
		wantName     string
		wantYear     int
		wantIndex    int
	}{
		{"March", 2025, "March", 2025, 2},
		{"January", 2023, "January", 2023, 0},
		{"December", 2023, "December", 2023, 11},
		{"Sep-24", 2025, "September", 2024, 8},
		{"Jan-2026", 2025, "January", 2026, 0},
		{"May-24", 2025, "May", 2024, 4},
		{"Aug", 2024, "August", 2024, 7},
		{" March ", 2025, "March", 2025, 2},
		// unrecognized names pass through and sort before January
		{"Monsoon", 2025, "Monsoon", 2025, -1},
		{"Xyz-24", 2025, "Xyz-24", 2025, -1},
		{"", 2025, "", 2025, -1},
		// malformed year suffixes keep the entry's own year
		{"Sep-abc", 2025, "September", 2025, 8},
		{"Sep-241", 2025, "September", 2025, 8},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			name, year, index := parseMonthLabel(tt.raw, tt.fallbackYear)
			assert.Equal(t, tt.wantName, name)
			assert.Equal(t, tt.wantYear, year)
			assert.Equal(t, tt.wantIndex, index)
		})
	}
}
