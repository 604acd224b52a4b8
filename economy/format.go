package economy

import (
	"math"
	"strconv"
)

// FormatAmount renders a money amount for display, shortening large values
// to one truncated decimal with a k, M or B suffix: 640, 6.4k, 640k, 6.4M.
func FormatAmount(v float64) string {
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	whole := math.Floor(v)

	switch {
	case whole >= 1e9:
		return sign + tenths(whole/1e9) + "B"
	case whole >= 1e6:
		return sign + tenths(whole/1e6) + "M"
	case whole >= 1e3:
		return sign + tenths(whole/1e3) + "k"
	default:
		return sign + strconv.FormatFloat(whole, 'f', 0, 64)
	}
}

// FormatDelta renders a balance change with an explicit sign.
func FormatDelta(v float64) string {
	if v > 0 {
		return "+" + FormatAmount(v)
	}
	return FormatAmount(v)
}

// tenths truncates to one decimal and drops a trailing ".0".
func tenths(v float64) string {
	return strconv.FormatFloat(math.Floor(v*10)/10, 'f', -1, 64)
}
