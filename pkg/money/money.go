package money

import (
	"strings"

	"github.com/shopspring/decimal"
)

// symbols maps supported currency codes to their display symbol.
// Unknown codes fall back to the code itself.
var symbols = map[string]string{
	"NGN": "₦",
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
}

// Symbol returns the display symbol for a currency code
func Symbol(currency string) string {
	if s, ok := symbols[currency]; ok {
		return s
	}
	return currency
}

// Format renders an amount with two decimal places and thousands grouping,
// e.g. 1234.5 -> "1,234.50". The grouping convention is fixed regardless of
// currency.
func Format(amount decimal.Decimal) string {
	fixed := amount.StringFixed(2)

	negative := strings.HasPrefix(fixed, "-")
	if negative {
		fixed = fixed[1:]
	}

	intPart := fixed
	fracPart := ""
	if idx := strings.IndexByte(fixed, '.'); idx >= 0 {
		intPart = fixed[:idx]
		fracPart = fixed[idx:]
	}

	grouped := groupThousands(intPart)
	if negative {
		return "-" + grouped + fracPart
	}
	return grouped + fracPart
}

// FormatWithSymbol renders the amount prefixed with the currency symbol
func FormatWithSymbol(amount decimal.Decimal, currency string) string {
	return Symbol(currency) + Format(amount)
}

// ParseAmount converts free-form user input into a decimal amount. Grouping
// commas and any other non-numeric characters are stripped; input that still
// does not parse coerces to zero. It never returns an error: malformed input
// must become 0, not propagate into totals.
func ParseAmount(input string) decimal.Decimal {
	var b strings.Builder
	seenDot := false
	for _, r := range input {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.' && !seenDot:
			seenDot = true
			b.WriteRune(r)
		}
	}

	cleaned := b.String()
	if cleaned == "" || cleaned == "." {
		return decimal.Zero
	}

	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// EditingValue returns the raw, ungrouped form of an amount for a focused
// input field. Grouped commas must never appear while the field has focus,
// and a zero amount shows as an empty editable field.
func EditingValue(amount decimal.Decimal) string {
	if amount.IsZero() {
		return ""
	}
	return amount.String()
}

func groupThousands(digits string) string {
	n := len(digits)
	if n <= 3 {
		return digits
	}

	var b strings.Builder
	head := n % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < n; i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
