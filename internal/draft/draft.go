// Package draft holds the in-memory invoice being composed. A draft is owned
// by exactly one editing session and is never persisted locally; submitting it
// hands ownership to the backend.
package draft

import (
	"errors"
	"fmt"

	"invoicer/internal/model"

	"github.com/shopspring/decimal"
)

var (
	// ErrLastLine is returned when removing a line would leave the draft
	// empty. A draft always keeps at least one line.
	ErrLastLine = errors.New("draft must keep at least one line item")
)

// Draft is an invoice under composition. Derived values (subtotal, total) are
// never stored; they are recomputed from the lines on demand.
type Draft struct {
	ClientID       int64
	IssueDate      string
	DueDate        string
	Currency       model.Currency
	LineItems      []model.LineItem
	DiscountAmount decimal.Decimal
	TaxAmount      decimal.Decimal
	Notes          string
	PaymentTerms   string
	TemplateID     int
}

// LinePatch updates individual fields of a single line. Nil fields are left
// untouched. Numeric values are expected to be pre-coerced by the caller
// (garbage input becomes zero before it reaches the draft).
type LinePatch struct {
	Description *string
	Quantity    *decimal.Decimal
	UnitPrice   *decimal.Decimal
	TaxRate     *decimal.Decimal
}

// New returns a draft with a single default line, ready for editing.
func New(currency model.Currency) *Draft {
	if !currency.Valid() {
		currency = model.DefaultCurrency
	}
	return &Draft{
		Currency:   currency,
		LineItems:  []model.LineItem{defaultLine()},
		TemplateID: model.DefaultTemplateID,
	}
}

func defaultLine() model.LineItem {
	return model.LineItem{
		Description: "",
		Quantity:    decimal.NewFromInt(1),
		UnitPrice:   decimal.Zero,
		TaxRate:     decimal.Zero,
	}
}

// AddLine appends a new line with default values. There is no upper bound on
// line count.
func (d *Draft) AddLine() {
	d.LineItems = append(d.LineItems, defaultLine())
}

// RemoveLine removes the line at index. Removing the last remaining line is
// rejected with ErrLastLine; an out-of-range index is a caller bug and errors.
func (d *Draft) RemoveLine(index int) error {
	if index < 0 || index >= len(d.LineItems) {
		return fmt.Errorf("line index %d out of range", index)
	}
	if len(d.LineItems) == 1 {
		return ErrLastLine
	}
	d.LineItems = append(d.LineItems[:index], d.LineItems[index+1:]...)
	return nil
}

// UpdateLine applies a patch to the line at index. Cross-field consistency is
// not validated here.
func (d *Draft) UpdateLine(index int, patch LinePatch) error {
	if index < 0 || index >= len(d.LineItems) {
		return fmt.Errorf("line index %d out of range", index)
	}
	line := &d.LineItems[index]
	if patch.Description != nil {
		line.Description = *patch.Description
	}
	if patch.Quantity != nil {
		line.Quantity = *patch.Quantity
	}
	if patch.UnitPrice != nil {
		line.UnitPrice = *patch.UnitPrice
	}
	if patch.TaxRate != nil {
		line.TaxRate = *patch.TaxRate
	}
	return nil
}

// Subtotal recomputes Σ(quantity × unit price) from scratch over all lines.
// Per-line tax rates are ignored while drafting.
func (d *Draft) Subtotal() decimal.Decimal {
	sum := decimal.Zero
	for _, line := range d.LineItems {
		sum = sum.Add(line.Total())
	}
	return sum
}

// Total is subtotal − discount + tax, with both adjustments flat amounts
// applied once at the invoice level. A discount exceeding the subtotal yields
// a negative total; there is no floor at zero.
func (d *Draft) Total() decimal.Decimal {
	return d.Subtotal().Sub(d.DiscountAmount).Add(d.TaxAmount)
}
