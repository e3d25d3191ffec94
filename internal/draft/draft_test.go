package draft

import (
	"errors"
	"testing"

	"invoicer/internal/model"
	"invoicer/pkg/money"

	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestNewStartsWithOneDefaultLine(t *testing.T) {
	d := New(model.CurrencyUSD)
	if len(d.LineItems) != 1 {
		t.Fatalf("expected 1 line, got %d", len(d.LineItems))
	}
	line := d.LineItems[0]
	if line.Description != "" || !line.Quantity.Equal(dec("1")) || !line.UnitPrice.IsZero() || !line.TaxRate.IsZero() {
		t.Fatalf("unexpected default line: %+v", line)
	}
	if !d.Subtotal().IsZero() {
		t.Fatalf("fresh draft subtotal should be zero, got %s", d.Subtotal())
	}
}

func TestNewFallsBackToDefaultCurrency(t *testing.T) {
	d := New(model.Currency("XXX"))
	if d.Currency != model.DefaultCurrency {
		t.Fatalf("expected %s, got %s", model.DefaultCurrency, d.Currency)
	}
}

func TestSubtotalAndTotal(t *testing.T) {
	// Scenario: lines [{qty:2, price:50}, {qty:1, price:25}], discount 10, tax 5
	d := New(model.CurrencyUSD)
	q2, p50 := dec("2"), dec("50")
	if err := d.UpdateLine(0, LinePatch{Quantity: &q2, UnitPrice: &p50}); err != nil {
		t.Fatal(err)
	}
	d.AddLine()
	q1, p25 := dec("1"), dec("25")
	if err := d.UpdateLine(1, LinePatch{Quantity: &q1, UnitPrice: &p25}); err != nil {
		t.Fatal(err)
	}
	d.DiscountAmount = dec("10")
	d.TaxAmount = dec("5")

	if got := d.Subtotal(); !got.Equal(dec("125")) {
		t.Fatalf("subtotal = %s, want 125", got)
	}
	if got := d.Total(); !got.Equal(dec("120")) {
		t.Fatalf("total = %s, want 120", got)
	}
}

func TestTotalCanGoNegative(t *testing.T) {
	d := New(model.CurrencyUSD)
	q1, p10 := dec("1"), dec("10")
	if err := d.UpdateLine(0, LinePatch{Quantity: &q1, UnitPrice: &p10}); err != nil {
		t.Fatal(err)
	}
	d.DiscountAmount = dec("25")

	if got := d.Total(); !got.Equal(dec("-15")) {
		t.Fatalf("total = %s, want -15 (no floor at zero)", got)
	}
}

func TestRemoveLastLineRejected(t *testing.T) {
	d := New(model.CurrencyUSD)
	err := d.RemoveLine(0)
	if !errors.Is(err, ErrLastLine) {
		t.Fatalf("expected ErrLastLine, got %v", err)
	}
	if len(d.LineItems) != 1 {
		t.Fatalf("draft should still have exactly 1 line, has %d", len(d.LineItems))
	}
}

func TestRemoveLinePreservesOrder(t *testing.T) {
	d := New(model.CurrencyUSD)
	d.AddLine()
	d.AddLine()
	for i := 0; i < 3; i++ {
		desc := string(rune('a' + i))
		if err := d.UpdateLine(i, LinePatch{Description: &desc}); err != nil {
			t.Fatal(err)
		}
	}

	if err := d.RemoveLine(1); err != nil {
		t.Fatal(err)
	}
	if len(d.LineItems) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(d.LineItems))
	}
	if d.LineItems[0].Description != "a" || d.LineItems[1].Description != "c" {
		t.Fatalf("insertion order not preserved: %+v", d.LineItems)
	}
}

func TestRemoveLineOutOfRange(t *testing.T) {
	d := New(model.CurrencyUSD)
	d.AddLine()
	if err := d.RemoveLine(5); err == nil {
		t.Fatal("expected error for out-of-range index")
	}
	if err := d.RemoveLine(-1); err == nil {
		t.Fatal("expected error for negative index")
	}
}

func TestUpdateLineOutOfRange(t *testing.T) {
	d := New(model.CurrencyUSD)
	desc := "x"
	if err := d.UpdateLine(3, LinePatch{Description: &desc}); err == nil {
		t.Fatal("expected error for out-of-range index")
	}
}

func TestNonNumericPriceCoercesToZero(t *testing.T) {
	d := New(model.CurrencyUSD)
	price := money.ParseAmount("twelve dollars")
	q3 := dec("3")
	if err := d.UpdateLine(0, LinePatch{Quantity: &q3, UnitPrice: &price}); err != nil {
		t.Fatal(err)
	}
	if got := d.Subtotal(); !got.IsZero() {
		t.Fatalf("subtotal = %s, want 0 after coerced input", got)
	}
}

func TestDraftSubtotalIgnoresPerLineTax(t *testing.T) {
	d := New(model.CurrencyUSD)
	q3, p10, r10 := dec("3"), dec("10"), dec("10")
	if err := d.UpdateLine(0, LinePatch{Quantity: &q3, UnitPrice: &p10, TaxRate: &r10}); err != nil {
		t.Fatal(err)
	}
	if got := d.Subtotal(); !got.Equal(dec("30")) {
		t.Fatalf("draft subtotal = %s, want 30 (tax rate ignored while drafting)", got)
	}
}

func TestRandomOpSequenceKeepsInvariant(t *testing.T) {
	d := New(model.CurrencyUSD)
	ops := []func(){
		func() { d.AddLine() },
		func() { _ = d.RemoveLine(0) },
		func() { _ = d.RemoveLine(len(d.LineItems) - 1) },
		func() {
			q, p := dec("2"), dec("7.5")
			_ = d.UpdateLine(0, LinePatch{Quantity: &q, UnitPrice: &p})
		},
	}
	for i := 0; i < 200; i++ {
		ops[i%len(ops)]()
		if len(d.LineItems) < 1 {
			t.Fatalf("invariant broken after op %d: %d lines", i, len(d.LineItems))
		}
		want := decimal.Zero
		for _, line := range d.LineItems {
			want = want.Add(line.Quantity.Mul(line.UnitPrice))
		}
		if !d.Subtotal().Equal(want) {
			t.Fatalf("subtotal mismatch after op %d", i)
		}
	}
}
