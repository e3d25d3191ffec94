package money

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestFormatZero(t *testing.T) {
	if got := Format(decimal.Zero); got != "0.00" {
		t.Fatalf("expected 0.00, got %q", got)
	}
}

func TestFormatGrouping(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"1234.5", "1,234.50"},
		{"999", "999.00"},
		{"1000", "1,000.00"},
		{"1234567.891", "1,234,567.89"},
		{"-12345", "-12,345.00"},
		{"0.005", "0.01"},
	}
	for _, tc := range cases {
		d, err := decimal.NewFromString(tc.in)
		if err != nil {
			t.Fatalf("bad test input %q: %v", tc.in, err)
		}
		if got := Format(d); got != tc.want {
			t.Fatalf("Format(%s) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestParseAmountRoundTrip(t *testing.T) {
	orig := decimal.NewFromFloat(1234.5)
	formatted := Format(orig)
	parsed := ParseAmount(formatted)
	if !parsed.Equal(decimal.NewFromFloat(1234.50)) {
		t.Fatalf("round trip of %q gave %s", formatted, parsed)
	}
}

func TestParseAmountCoercesGarbage(t *testing.T) {
	cases := []string{"", "abc", ".", "not a number", "--"}
	for _, in := range cases {
		if got := ParseAmount(in); !got.IsZero() {
			t.Fatalf("ParseAmount(%q) = %s, want 0", in, got)
		}
	}
}

func TestParseAmountStripsGrouping(t *testing.T) {
	got := ParseAmount("1,234,567.89")
	want := decimal.RequireFromString("1234567.89")
	if !got.Equal(want) {
		t.Fatalf("got %s, want %s", got, want)
	}
}

func TestSymbol(t *testing.T) {
	cases := map[string]string{
		"NGN": "₦",
		"USD": "$",
		"EUR": "€",
		"GBP": "£",
		"JPY": "JPY",
	}
	for code, want := range cases {
		if got := Symbol(code); got != want {
			t.Fatalf("Symbol(%s) = %q, want %q", code, got, want)
		}
	}
}

func TestEditingValue(t *testing.T) {
	if got := EditingValue(decimal.Zero); got != "" {
		t.Fatalf("zero should edit as empty string, got %q", got)
	}
	if got := EditingValue(decimal.RequireFromString("1234.5")); got != "1234.5" {
		t.Fatalf("editing value must stay ungrouped, got %q", got)
	}
}
