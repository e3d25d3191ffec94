package apiclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"invoicer/internal/model"

	"github.com/shopspring/decimal"
)

// --- Auth ---

func (c *Client) Login(ctx context.Context, req LoginRequest) (TokenResponse, error) {
	var out TokenResponse
	err := c.do(ctx, http.MethodPost, "/api/v1/auth/login", nil, req, &out)
	return out, err
}

func (c *Client) Register(ctx context.Context, req RegisterRequest) (model.User, error) {
	var out model.User
	err := c.do(ctx, http.MethodPost, "/api/v1/auth/register", nil, req, &out)
	return out, err
}

func (c *Client) Me(ctx context.Context) (model.User, error) {
	var out model.User
	err := c.do(ctx, http.MethodGet, "/api/v1/auth/me", nil, nil, &out)
	return out, err
}

// --- Clients ---

func (c *Client) ListClients(ctx context.Context, page, pageSize int) (Paginated[model.Client], error) {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("page_size", strconv.Itoa(pageSize))

	var out Paginated[model.Client]
	err := c.do(ctx, http.MethodGet, "/api/v1/clients", q, nil, &out)
	return out, err
}

func (c *Client) CreateClient(ctx context.Context, req ClientPayload) (model.Client, error) {
	var out model.Client
	err := c.do(ctx, http.MethodPost, "/api/v1/clients", nil, req, &out)
	return out, err
}

func (c *Client) UpdateClient(ctx context.Context, id int64, req ClientPayload) (model.Client, error) {
	var out model.Client
	err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/v1/clients/%d", id), nil, req, &out)
	return out, err
}

func (c *Client) DeleteClient(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/v1/clients/%d", id), nil, nil, nil)
}

// --- Invoices ---

func (c *Client) ListInvoices(ctx context.Context, filter InvoiceListFilter) (Paginated[model.Invoice], error) {
	q := url.Values{}
	q.Set("page", strconv.Itoa(filter.Page))
	q.Set("page_size", strconv.Itoa(filter.PageSize))
	if filter.Status != "" {
		q.Set("status", filter.Status)
	}
	if filter.ClientID != 0 {
		q.Set("client_id", strconv.FormatInt(filter.ClientID, 10))
	}
	if filter.StartDate != "" {
		q.Set("start_date", filter.StartDate)
	}
	if filter.EndDate != "" {
		q.Set("end_date", filter.EndDate)
	}

	var out Paginated[model.Invoice]
	err := c.do(ctx, http.MethodGet, "/api/v1/invoices", q, nil, &out)
	return out, err
}

func (c *Client) GetInvoice(ctx context.Context, id int64) (model.Invoice, error) {
	var out model.Invoice
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/v1/invoices/%d", id), nil, nil, &out)
	return out, err
}

func (c *Client) CreateInvoice(ctx context.Context, req CreateInvoiceRequest) (model.Invoice, error) {
	var out model.Invoice
	err := c.do(ctx, http.MethodPost, "/api/v1/invoices", nil, req, &out)
	return out, err
}

func (c *Client) UpdateInvoice(ctx context.Context, id int64, req CreateInvoiceRequest) (model.Invoice, error) {
	var out model.Invoice
	err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/v1/invoices/%d", id), nil, req, &out)
	return out, err
}

func (c *Client) DeleteInvoice(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/v1/invoices/%d", id), nil, nil, nil)
}

func (c *Client) UpdateInvoiceStatus(ctx context.Context, id int64, status string) (model.Invoice, error) {
	q := url.Values{}
	q.Set("status", status)

	var out model.Invoice
	err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/api/v1/invoices/%d/status", id), q, nil, &out)
	return out, err
}

func (c *Client) SendInvoice(ctx context.Context, id int64, req SendInvoiceRequest) (SendInvoiceResponse, error) {
	var out SendInvoiceResponse
	err := c.do(ctx, http.MethodPost, fmt.Sprintf("/api/v1/invoices/%d/send", id), nil, req, &out)
	return out, err
}

func (c *Client) CloneInvoice(ctx context.Context, id int64) (model.Invoice, error) {
	var out model.Invoice
	err := c.do(ctx, http.MethodPost, fmt.Sprintf("/api/v1/invoices/%d/clone", id), nil, nil, &out)
	return out, err
}

// DownloadPDF fetches the rendered document bytes for a persisted invoice.
func (c *Client) DownloadPDF(ctx context.Context, id int64) ([]byte, error) {
	return c.doRaw(ctx, http.MethodGet, fmt.Sprintf("/api/v1/invoices/%d/pdf", id))
}

// --- Currency ---

func (c *Client) ConvertCurrency(ctx context.Context, amount decimal.Decimal, from, to model.Currency) (ConvertResponse, error) {
	q := url.Values{}
	q.Set("amount", amount.String())
	q.Set("from", from.String())
	q.Set("to", to.String())

	var out ConvertResponse
	err := c.do(ctx, http.MethodGet, "/api/v1/currency/convert", q, nil, &out)
	return out, err
}

func (c *Client) ExchangeRates(ctx context.Context, base model.Currency) (RatesResponse, error) {
	q := url.Values{}
	q.Set("base", base.String())

	var out RatesResponse
	err := c.do(ctx, http.MethodGet, "/api/v1/currency/rates", q, nil, &out)
	return out, err
}
