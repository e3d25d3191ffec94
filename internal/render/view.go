package render

import (
	"invoicer/internal/draft"
	"invoicer/internal/model"

	"github.com/shopspring/decimal"
)

// Placeholder text shown for fields the user has not filled in yet. A
// partially filled draft must render, never fail.
const (
	PlaceholderClient      = "Select a client"
	PlaceholderDescription = "Item description"
	PlaceholderDate        = "Not set"
)

// PartyView is one side of the bill-to/from block.
type PartyView struct {
	Name    string
	Email   string
	Address string
}

// LineView is one rendered invoice row.
type LineView struct {
	Description string
	Quantity    decimal.Decimal
	UnitPrice   decimal.Decimal
	TaxRate     decimal.Decimal
	Total       decimal.Decimal
}

// DocumentView carries every field the layouts render. All three layouts draw
// from the same view, so identical values render in each; only presentation
// differs.
type DocumentView struct {
	InvoiceNumber string
	Status        string
	BillTo        PartyView
	From          PartyView
	IssueDate     string
	DueDate       string
	Currency      model.Currency
	Lines         []LineView
	ShowTaxColumn bool
	Subtotal      decimal.Decimal
	Discount      decimal.Decimal
	Tax           decimal.Decimal
	Total         decimal.Decimal
	Notes         string
	PaymentTerms  string
}

// BuildDraftView maps an in-progress draft onto the renderable document.
// Draft mode: line totals are quantity × unit price, the invoice-level flat
// discount/tax apply once, per-line tax rates are ignored. Missing fields get
// placeholder text.
func BuildDraftView(d *draft.Draft, client *model.Client, user *model.User) DocumentView {
	view := DocumentView{
		InvoiceNumber: "Draft",
		IssueDate:     orPlaceholder(d.IssueDate, PlaceholderDate),
		DueDate:       orPlaceholder(d.DueDate, PlaceholderDate),
		Currency:      d.Currency,
		Subtotal:      d.Subtotal(),
		Discount:      d.DiscountAmount,
		Tax:           d.TaxAmount,
		Total:         d.Total(),
		Notes:         d.Notes,
		PaymentTerms:  d.PaymentTerms,
	}

	if client != nil {
		view.BillTo = PartyView{Name: client.Name, Email: client.Email, Address: strVal(client.Address)}
	} else {
		view.BillTo = PartyView{Name: PlaceholderClient}
	}
	if user != nil {
		view.From = PartyView{Name: user.BillerName(), Email: user.Email, Address: strVal(user.CompanyAddress)}
	}

	for _, line := range d.LineItems {
		view.Lines = append(view.Lines, LineView{
			Description: orPlaceholder(line.Description, PlaceholderDescription),
			Quantity:    line.Quantity,
			UnitPrice:   line.UnitPrice,
			Total:       line.Total(),
		})
	}
	return view
}

// BuildInvoiceView maps a persisted invoice onto the renderable document.
// View mode: each line total is quantity × unit price × (1 + tax rate / 100)
// and the tax rate column is shown. The invoice amount is the server-computed
// total and is displayed as-is.
func BuildInvoiceView(inv model.Invoice, user *model.User) DocumentView {
	view := DocumentView{
		InvoiceNumber: inv.InvoiceNumber,
		Status:        inv.Status,
		BillTo:        PartyView{Name: inv.Client.Name, Email: inv.Client.Email},
		IssueDate:     orPlaceholder(inv.IssueDate, PlaceholderDate),
		DueDate:       orPlaceholder(inv.DueDate, PlaceholderDate),
		Currency:      inv.Currency,
		ShowTaxColumn: true,
		Total:         inv.Amount,
		Notes:         strVal(inv.Notes),
		PaymentTerms:  strVal(inv.PaymentTerms),
	}

	if user != nil {
		view.From = PartyView{Name: user.BillerName(), Email: user.Email, Address: strVal(user.CompanyAddress)}
	}

	subtotal := decimal.Zero
	for _, line := range inv.LineItems {
		total := line.TotalWithTax()
		subtotal = subtotal.Add(total)
		view.Lines = append(view.Lines, LineView{
			Description: orPlaceholder(line.Description, PlaceholderDescription),
			Quantity:    line.Quantity,
			UnitPrice:   line.UnitPrice,
			TaxRate:     line.TaxRate,
			Total:       total,
		})
	}
	view.Subtotal = subtotal
	return view
}

func orPlaceholder(s, placeholder string) string {
	if s == "" {
		return placeholder
	}
	return s
}

func strVal(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
