package calculator

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// CurrencySymbol prefixes every formatted amount.
const CurrencySymbol = "₹"

// FormatCurrency renders value as the rupee symbol followed by a fixed
// two-decimal amount. NaN and infinities render as the zero amount.
func FormatCurrency(value float64) string {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return CurrencySymbol + "0.00"
	}
	return CurrencySymbol + decimal.NewFromFloat(value).StringFixed(2)
}

// ParseCurrency reads back an amount from display text. Everything except
// digits and '.' is stripped first, so symbols, thousands separators and stray
// words are tolerated. The longest leading number is used; anything that
// still fails to parse yields 0.
//
// ParseCurrency(FormatCurrency(x)) equals x rounded to two decimals for any
// finite non-negative x.
func ParseCurrency(text string) float64 {
	cleaned := strings.Map(func(r rune) rune {
		if (r >= '0' && r <= '9') || r == '.' {
			return r
		}
		return -1
	}, text)
	d, ok := parseDecimal(leadingNumber(cleaned))
	if !ok {
		return 0
	}
	f, _ := toFloat(d)
	return f
}

// ParseAmount coerces a raw quantity or price to a non-negative number.
// Empty, unparsable, negative and non-finite input all become 0.
func ParseAmount(raw string) float64 {
	f, ok := ParseNumber(raw)
	if !ok || f < 0 {
		return 0
	}
	return f
}

// ParseNumber parses a signed decimal, exponent notation included. It fails
// for text that is not a number and for values beyond the float64 range.
func ParseNumber(raw string) (float64, bool) {
	d, ok := parseDecimal(strings.TrimSpace(raw))
	if !ok {
		return 0, false
	}
	return toFloat(d)
}

// Round2 rounds value half away from zero to two decimal places.
// Non-finite values round to 0.
func Round2(value float64) float64 {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0
	}
	return decimal.NewFromFloat(value).Round(2).InexactFloat64()
}

// leadingNumber returns the longest prefix of s shaped like digits[.digits].
// s must already contain only digits and dots.
func leadingNumber(s string) string {
	end := 0
	seenDot := false
	for end < len(s) {
		if s[end] == '.' {
			if seenDot {
				break
			}
			seenDot = true
		}
		end++
	}
	return s[:end]
}

// Decimal magnitudes (digits before the point) outside these bounds overflow
// or underflow a float64.
const (
	maxMagnitude = 310
	minMagnitude = -325
)

// toFloat converts d without expanding its exponent when the result would
// not fit a float64, so inputs like "1e99999999" stay cheap.
func toFloat(d decimal.Decimal) (float64, bool) {
	if d.IsZero() {
		return 0, true
	}
	magnitude := int64(d.NumDigits()) + int64(d.Exponent())
	if magnitude > maxMagnitude {
		return 0, false
	}
	if magnitude < minMagnitude {
		return 0, true
	}
	f := d.InexactFloat64()
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return 0, false
	}
	return f, true
}

func parseDecimal(s string) (decimal.Decimal, bool) {
	s = strings.TrimSuffix(s, ".")
	if strings.HasPrefix(s, ".") {
		s = "0" + s
	}
	if s == "" {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}
