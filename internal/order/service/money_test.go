package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatLKR(t *testing.T) {
	cases := []struct {
		name   string
		amount int
		want   string
	}{
		{"small amount", 650, "LKR 650"},
		{"thousands", 1300, "LKR 1,300"},
		{"tens of thousands", 11500, "LKR 11,500"},
		{"hundreds of thousands", 250000, "LKR 250,000"},
		{"millions", 1234567, "LKR 1,234,567"},
		{"zero", 0, "LKR 0"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, FormatLKR(tc.amount))
		})
	}
}
