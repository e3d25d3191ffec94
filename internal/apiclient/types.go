package apiclient

import (
	"invoicer/internal/model"

	"github.com/shopspring/decimal"
)

// --- Auth ---

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	Username    string  `json:"username"`
	Email       string  `json:"email"`
	Password    string  `json:"password"`
	CompanyName *string `json:"company_name,omitempty"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
}

// --- Clients ---

type ClientPayload struct {
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	Phone   *string `json:"phone,omitempty"`
	Address *string `json:"address,omitempty"`
	TaxID   *string `json:"tax_id,omitempty"`
}

// --- Invoices ---

// Paginated is the backend's envelope for list endpoints.
type Paginated[T any] struct {
	Items      []T   `json:"items"`
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	TotalPages int   `json:"total_pages"`
}

type InvoiceListFilter struct {
	Page      int
	PageSize  int
	Status    string
	ClientID  int64
	StartDate string
	EndDate   string
}

// LineItemPayload is one line of an invoice submission. TaxRate is always
// zero when submitting a draft: flat invoice-level adjustments are the
// drafting model, per-line rates only exist on persisted records.
type LineItemPayload struct {
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	TaxRate     decimal.Decimal `json:"tax_rate"`
}

type CreateInvoiceRequest struct {
	ClientID       int64             `json:"client_id"`
	IssueDate      string            `json:"issue_date"`
	DueDate        string            `json:"due_date"`
	Currency       model.Currency    `json:"currency"`
	PaymentTerms   *string           `json:"payment_terms,omitempty"`
	Notes          *string           `json:"notes,omitempty"`
	DiscountAmount decimal.Decimal   `json:"discount_amount"`
	TaxAmount      decimal.Decimal   `json:"tax_amount"`
	TemplateID     *int              `json:"template_id,omitempty"`
	LineItems      []LineItemPayload `json:"line_items"`
}

type SendInvoiceRequest struct {
	Recipient string `json:"recipient"`
	Subject   string `json:"subject"`
	Message   string `json:"message"`
}

type SendInvoiceResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// --- Currency ---

type ConvertResponse struct {
	ConvertedAmount decimal.Decimal `json:"converted_amount"`
}

type RatesResponse struct {
	Base  string                     `json:"base"`
	Rates map[string]decimal.Decimal `json:"rates"`
}
