// Package format renders numbers for metric cards and chart labels.
package format

import "fmt"

// scale is the unit ladder used by Scaled. It stops at millions: larger values
// are shown as a multiple of millions instead of gaining a new tier.
var scale = []string{"", "thousand", "million"}

// Scaled divides v by 1000 while it is at least 1000 and a larger tier exists,
// then joins prefix, the two-decimal value and the tier label with spaces.
//
//	Scaled(999, "R$")       == "R$ 999.00 "
//	Scaled(1500, "R$")      == "R$ 1.50 thousand"
//	Scaled(2_500_000, "R$") == "R$ 2.50 million"
func Scaled(v float64, prefix string) string {
	tier := 0
	for v >= 1000 && tier < len(scale)-1 {
		v /= 1000
		tier++
	}
	return fmt.Sprintf("%s %.2f %s", prefix, v, scale[tier])
}

// Plain joins prefix and v rounded to two decimals, without unit scaling.
func Plain(v float64, prefix string) string {
	return fmt.Sprintf("%s %.2f", prefix, v)
}
