package utils

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatRupiah(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"0", "Rp 0"},
		{"500", "Rp 500"},
		{"70000", "Rp 70.000"},
		{"1250000", "Rp 1.250.000"},
		{"-30000.6", "-Rp 30.001"},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			assert.Equal(t, tc.want, FormatRupiah(decimal.RequireFromString(tc.in)))
		})
	}
}
