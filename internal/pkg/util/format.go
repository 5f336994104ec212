package util

import (
	"strconv"
)

// FormatNumber 以 K/M 后缀缩写，保留一位小数
func FormatNumber(n float64) string {
	switch {
	case n >= 1_000_000:
		return strconv.FormatFloat(n/1_000_000, 'f', 1, 64) + "M"
	case n >= 1000:
		return strconv.FormatFloat(n/1000, 'f', 1, 64) + "K"
	default:
		return strconv.FormatFloat(n, 'f', -1, 64)
	}
}

// FormatPercent 趋势值带符号输出，例如 +12.5%
func FormatPercent(v float64) string {
	s := strconv.FormatFloat(v, 'f', 1, 64) + "%"
	if v > 0 {
		return "+" + s
	}
	return s
}
