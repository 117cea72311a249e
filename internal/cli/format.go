// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

// FormatMoney formats an amount with space-grouped thousands, two decimals
// and an optional currency suffix.
// e.g., 12345.67, "RUB" -> "12 345.67 RUB"
func FormatMoney(d decimal.Decimal, currency string) string {
	s := humanize.FormatFloat("# ###.##", d.RoundBank(2).InexactFloat64())
	if currency == "" {
		return s
	}
	return s + " " + currency
}

// FormatWhole formats an amount rounded to a whole number.
// e.g., 1234.5, "RUB" -> "1 234 RUB"
func FormatWhole(d decimal.Decimal, currency string) string {
	s := humanize.FormatFloat("# ###.", d.RoundBank(0).InexactFloat64())
	if currency == "" {
		return s
	}
	return s + " " + currency
}

// FormatPercent formats a value already scaled to 0-100.
func FormatPercent(pct decimal.Decimal) string {
	return pct.StringFixed(1) + "%"
}

// FormatNumber adds space separators to an integer.
// e.g., 1234567 -> "1 234 567"
func FormatNumber(n int64) string {
	if n < 0 {
		return "-" + FormatNumber(-n)
	}

	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}

	var result strings.Builder
	remainder := len(s) % 3
	if remainder > 0 {
		result.WriteString(s[:remainder])
	}
	for i := remainder; i < len(s); i += 3 {
		if result.Len() > 0 {
			result.WriteByte(' ')
		}
		result.WriteString(s[i : i+3])
	}
	return result.String()
}

// FormatCount formats a count with a singular or plural noun.
func FormatCount(n int, singular, plural string) string {
	if n == 1 {
		return "1 " + singular
	}
	return FormatNumber(int64(n)) + " " + plural
}

// FormatMonth turns a "2006-01" key into "Jan 2006". Unknown keys pass through.
func FormatMonth(key string) string {
	months := []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}
	if len(key) != 7 || key[4] != '-' {
		return key
	}
	m, err := strconv.Atoi(key[5:])
	if err != nil || m < 1 || m > 12 {
		return key
	}
	return months[m-1] + " " + key[:4]
}
