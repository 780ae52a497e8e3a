package report

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestMoney(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"0", "$ 0.00"},
		{"45.5", "$ 45.50"},
		{"125.5", "$ 125.50"},
		{"1234.5", "$ 1,234.50"},
		{"1234567.89", "$ 1,234,567.89"},
		{"999", "$ 999.00"},
		{"1000", "$ 1,000.00"},
		{"-1234.5", "$ -1,234.50"},
		{"0.005", "$ 0.01"},
	}
	for _, c := range cases {
		d, err := decimal.NewFromString(c.in)
		if err != nil {
			t.Fatalf("bad literal %q: %v", c.in, err)
		}
		if got := money(d); got != c.want {
			t.Fatalf("money(%s) = %q, want %q", c.in, got, c.want)
		}
	}
}
