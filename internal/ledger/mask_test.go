package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMaskIDNumber(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "twelve digit id", in: "123456789443", want: "XXXX-XXXX-9443"},
		{name: "exactly four digits", in: "9443", want: "XXXX-XXXX-9443"},
		{name: "letters then digits", in: "AB123456789012", want: "XXXX-XXXX-9012"},
		{name: "no trailing digits", in: "ABC", want: "ABC"},
		{name: "three trailing digits", in: "AB-943", want: "AB-943"},
		{name: "digits not at the end", in: "9443-AB", want: "9443-AB"},
		{name: "empty", in: "", want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, maskIDNumber(tt.in))
		})
	}
}
