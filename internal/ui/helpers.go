package ui

import "fmt"

// truncate truncates a string to max runes with ellipsis.
func truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max <= 3 {
		return string(runes[:max])
	}
	return string(runes[:max-3]) + "..."
}

// formatPrice renders a price the way the storefront displays it.
func formatPrice(price float64) string {
	return fmt.Sprintf("$%.2f", price)
}

// formatRating renders the star rating column.
func formatRating(rating float64) string {
	return fmt.Sprintf("★ %.1f", rating)
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
