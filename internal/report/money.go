package report

import (
	"strings"

	"github.com/shopspring/decimal"
)

// money renders a fixed-point amount as "$ 1,234.50": two fraction digits
// and comma thousands grouping.
func money(d decimal.Decimal) string {
	s := d.StringFixed(2)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	intPart, fracPart, _ := strings.Cut(s, ".")

	var grouped strings.Builder
	for i, ch := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			grouped.WriteByte(',')
		}
		grouped.WriteRune(ch)
	}

	out := "$ " + grouped.String() + "." + fracPart
	if neg {
		out = "$ -" + grouped.String() + "." + fracPart
	}
	return out
}
