package model

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestLineItemTotalWithTax(t *testing.T) {
	// Persisted line {quantity: 3, unit_price: 10, tax_rate: 10} displays 33.00
	line := LineItem{
		Quantity:  decimal.NewFromInt(3),
		UnitPrice: decimal.NewFromInt(10),
		TaxRate:   decimal.NewFromInt(10),
	}

	if got := line.TotalWithTax(); !got.Equal(decimal.NewFromInt(33)) {
		t.Fatalf("view-mode total = %s, want 33", got)
	}
	if got := line.Total(); !got.Equal(decimal.NewFromInt(30)) {
		t.Fatalf("draft-mode total = %s, want 30 (tax rate not applied)", got)
	}
}

func TestNormalizeTemplateID(t *testing.T) {
	cases := map[int]int{0: 1, 1: 1, 2: 2, 3: 3, 4: 1, -7: 1}
	for in, want := range cases {
		if got := NormalizeTemplateID(in); got != want {
			t.Fatalf("NormalizeTemplateID(%d) = %d, want %d", in, got, want)
		}
	}
}

func TestUserDisplayCurrency(t *testing.T) {
	u := User{PreferredCurrency: CurrencyEUR}
	if u.DisplayCurrency() != CurrencyEUR {
		t.Fatalf("expected EUR")
	}
	u.PreferredCurrency = Currency("ZZZ")
	if u.DisplayCurrency() != DefaultCurrency {
		t.Fatalf("expected fallback to %s", DefaultCurrency)
	}
}
