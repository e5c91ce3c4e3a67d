package currency_test

import (
	"testing"

	"ordering-kiosk/pkg/currency"
)

func TestFormat(t *testing.T) {
	cases := []struct {
		name   string
		amount float64
		want   string
	}{
		{"typical price", 5.25, "$5.25"},
		{"whole dollars", 12, "$12.00"},
		{"single cent", 0.01, "$0.01"},
		{"zero", 0, "$0.00"},
		{"large total", 1234.56, "$1234.56"},
		{"negative adjustment", -3.5, "-$3.50"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := currency.Format(tc.amount)
			if got != tc.want {
				t.Errorf("Format(%v) = %q, want %q", tc.amount, got, tc.want)
			}
		})
	}
}
