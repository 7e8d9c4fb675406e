package main

import (
	"fmt"
	"math"
	"strings"
	"unicode"
)

func resolvePath(flagValue, fallback string) string {
	if flagValue != "" {
		return flagValue
	}
	return fallback
}

// formatAmount prints game amounts with a metric suffix, like the game does
func formatAmount(v float64) string {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return fmt.Sprintf("%v", v)
	}
	suffixes := []string{"", "K", "M", "G", "T", "P"}
	i := 0
	for math.Abs(v) >= 1000 && i < len(suffixes)-1 {
		v /= 1000
		i++
	}
	return fmt.Sprintf("%.2f%s", v, suffixes[i])
}

// formatName turns camelCase IDs into title case words
func formatName(name string) string {
	if name == "" {
		return ""
	}
	var b strings.Builder
	for i, r := range name {
		if i > 0 && unicode.IsUpper(r) {
			b.WriteRune(' ')
		}
		if i == 0 {
			r = unicode.ToUpper(r)
		}
		b.WriteRune(r)
	}
	return b.String()
}
