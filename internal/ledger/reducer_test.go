package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMaxString(t *testing.T) {
	tests := []struct {
		name   string
		values []string
		want   string
	}{
		{name: "empty group", values: nil, want: ""},
		{name: "all empty values", values: []string{"", ""}, want: ""},
		{name: "single value", values: []string{"Vinay Kumar"}, want: "Vinay Kumar"},
		{name: "picks lexicographic max", values: []string{"Anil", "Vinay", "Mohan"}, want: "Vinay"},
		{name: "empties are dropped", values: []string{"", "Anil", ""}, want: "Anil"},
		{name: "ties collapse to the same value", values: []string{"Anil", "Anil"}, want: "Anil"},
		{name: "digits compare as text", values: []string{"9", "10"}, want: "9"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, maxString(tt.values))
		})
	}
}

func TestMaxStringIdempotent(t *testing.T) {
	got := maxString([]string{"Mohan", "Anil", "Vinay"})
	assert.Equal(t, got, maxString([]string{got}))
}

func TestMaxFloat(t *testing.T) {
	v, ok := maxFloat([]float64{1500, 3000, 2000})
	assert.True(t, ok)
	assert.Equal(t, 3000.0, v)

	v, ok = maxFloat(nil)
	assert.False(t, ok)
	assert.Equal(t, 0.0, v)
}

func TestMaxFloatDoesNotMutateInput(t *testing.T) {
	in := []float64{3, 1, 2}
	maxFloat(in)
	assert.Equal(t, []float64{3, 1, 2}, in)
}
