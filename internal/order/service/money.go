package service

import (
	"strconv"
	"strings"
)

// FormatLKR renders an amount as "LKR 11,500" with comma thousands
// separators, matching the storefront's price formatting.
func FormatLKR(amount int) string {
	neg := amount < 0
	if neg {
		amount = -amount
	}

	s := strconv.Itoa(amount)
	if len(s) > 3 {
		var b strings.Builder
		b.Grow(len(s) + len(s)/3)
		rem := len(s) % 3
		if rem == 0 {
			rem = 3
		}
		b.WriteString(s[:rem])
		for i := rem; i < len(s); i += 3 {
			b.WriteByte(',')
			b.WriteString(s[i : i+3])
		}
		s = b.String()
	}

	if neg {
		return "LKR -" + s
	}
	return "LKR " + s
}
