package model

import (
	"github.com/shopspring/decimal"
)

// InvoiceStatus enum constants
const (
	StatusDraft     = "draft"
	StatusSent      = "sent"
	StatusPaid      = "paid"
	StatusOverdue   = "overdue"
	StatusCancelled = "cancelled"
)

var hundred = decimal.NewFromInt(100)

// ValidStatus reports whether s is one of the known invoice statuses.
func ValidStatus(s string) bool {
	switch s {
	case StatusDraft, StatusSent, StatusPaid, StatusOverdue, StatusCancelled:
		return true
	}
	return false
}

// LineItem is one billable row on an invoice. Amounts are decimals to keep
// totals free of float rounding drift.
type LineItem struct {
	ID          int64           `json:"id,omitempty"`
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	TaxRate     decimal.Decimal `json:"tax_rate"`
}

// Total returns quantity × unit price. This is the drafting formula: the
// per-line tax rate is deliberately not applied here.
func (li LineItem) Total() decimal.Decimal {
	return li.Quantity.Mul(li.UnitPrice)
}

// TotalWithTax returns quantity × unit price × (1 + tax rate / 100). This is
// the view-mode formula for persisted invoice lines only; drafts never use it.
func (li LineItem) TotalWithTax() decimal.Decimal {
	base := li.Quantity.Mul(li.UnitPrice)
	return base.Add(base.Mul(li.TaxRate.Div(hundred)))
}

// ClientBasic is the denormalized client view embedded in invoice listings.
type ClientBasic struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Invoice is a read-only view of a server-owned invoice record. The amount is
// server-computed; nothing here is recalculated except per-line display
// totals.
type Invoice struct {
	ID            int64           `json:"id"`
	UserID        int64           `json:"user_id"`
	ClientID      int64           `json:"client_id"`
	Client        ClientBasic     `json:"client"`
	InvoiceNumber string          `json:"invoice_number"`
	Status        string          `json:"status"`
	Currency      Currency        `json:"currency"`
	Amount        decimal.Decimal `json:"amount"`
	IssueDate     string          `json:"issue_date"`
	DueDate       string          `json:"due_date"`
	PaymentTerms  *string         `json:"payment_terms"`
	Notes         *string         `json:"notes"`
	CreatedAt     string          `json:"created_at"`
	UpdatedAt     string          `json:"updated_at"`
	LineItems     []LineItem      `json:"line_items,omitempty"`
}
