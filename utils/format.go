package utils

import (
	"fmt"
	"strings"
)

// FormatCount renders a large counter compactly: 950 -> "950", 1200 -> "1.2K",
// 1200000 -> "1.2M", 2500000000 -> "2.5B".
func FormatCount(n int64) string {
	switch {
	case n >= 1_000_000_000:
		return trimZero(fmt.Sprintf("%.1fB", float64(n)/1_000_000_000))
	case n >= 1_000_000:
		return trimZero(fmt.Sprintf("%.1fM", float64(n)/1_000_000))
	case n >= 1_000:
		return trimZero(fmt.Sprintf("%.1fK", float64(n)/1_000))
	default:
		return fmt.Sprintf("%d", n)
	}
}

func trimZero(s string) string {
	s = strings.Replace(s, ".0", "", 1)
	return s
}
