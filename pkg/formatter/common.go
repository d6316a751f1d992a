package formatter

import "github.com/dustin/go-humanize"

// commaf formats an amount with comma grouping and two decimals,
// e.g. 1234.5 -> "1,234.50".
func commaf(v float64) string {
	return humanize.FormatFloat("#,###.##", v)
}
