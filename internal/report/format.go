// Package report renders normalized records for tool callers: markdown
// documents, indented JSON, money and percentage formatting, grouping, and
// the response size guard.
package report

import (
	"bytes"
	"encoding/json"
	"math"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

// DefaultCurrency is used when an account currency is unknown.
const DefaultCurrency = "USD"

var micro = decimal.New(1, -6)

// Micros formats a micros amount as currency units with thousands
// separators and two decimals: 1234500000 → "1,234.50".
func Micros(micros int64) string {
	return fixed2(decimal.NewFromInt(micros).Mul(micro))
}

// Money formats a micros amount with its currency code: "USD 1,234.50".
func Money(micros int64, currency string) string {
	if currency == "" {
		currency = DefaultCurrency
	}
	return currency + " " + Micros(micros)
}

// Units formats an amount already in currency units: 1234.5 → "1,234.50".
func Units(amount float64) string {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		amount = 0
	}
	return fixed2(decimal.NewFromFloat(amount))
}

// ToUnits converts micros to currency units.
func ToUnits(micros int64) float64 {
	return decimal.NewFromInt(micros).Mul(micro).InexactFloat64()
}

// Count formats an integer with thousands separators.
func Count(n int64) string {
	return humanize.Comma(n)
}

func fixed2(d decimal.Decimal) string {
	d = d.Round(2)
	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Abs()
	}
	whole := d.IntPart()
	frac := d.Sub(decimal.NewFromInt(whole)).StringFixed(2) // "0.50"
	return sign + humanize.Comma(whole) + frac[1:]
}

// SafeDiv returns a/b, or 0 when the result is undefined.
func SafeDiv(a, b float64) float64 {
	if b == 0 {
		return 0
	}
	r := a / b
	if math.IsNaN(r) || math.IsInf(r, 0) {
		return 0
	}
	return r
}

// Round2 rounds to two decimal places.
func Round2(f float64) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return decimal.NewFromFloat(f).Round(2).InexactFloat64()
}

// Percent converts a fraction to a percentage rounded to two decimals:
// 0.04567 → 4.57. Apply it exactly once per value.
func Percent(fraction float64) float64 {
	if math.IsNaN(fraction) || math.IsInf(fraction, 0) {
		return 0
	}
	return decimal.NewFromFloat(fraction).Mul(decimal.NewFromInt(100)).Round(2).InexactFloat64()
}

// Clip shortens s to at most n runes, without an ellipsis.
func Clip(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

// Preview shortens s to n runes and appends "..." when it was cut.
func Preview(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}

// Mark renders a boolean as ✓ or ✗.
func Mark(b bool) string {
	if b {
		return "✓"
	}
	return "✗"
}

// YesNo renders a boolean as Yes or No.
func YesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

// JSON renders v with two-space indentation. HTML characters in ad text and
// URLs are left unescaped.
func JSON(v any) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return "", err
	}
	return strings.TrimRight(buf.String(), "\n"), nil
}
