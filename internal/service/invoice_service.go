package service

import (
	"context"
	"log/slog"

	"invoicer/internal/apiclient"
	"invoicer/internal/model"
	"invoicer/internal/render"
	"invoicer/pkg/logging"
	"invoicer/pkg/money"
)

// --- DTOs ---

// InvoiceLineDetail carries the taxed per-line display total alongside the
// stored fields. Persisted invoices show tax per line; drafts do not.
type InvoiceLineDetail struct {
	ID          int64  `json:"id"`
	Description string `json:"description"`
	Quantity    string `json:"quantity"`
	UnitPrice   string `json:"unit_price"`
	TaxRate     string `json:"tax_rate"`
	Total       string `json:"total"`
}

type InvoiceDetail struct {
	Invoice        model.Invoice       `json:"invoice"`
	Lines          []InvoiceLineDetail `json:"line_items"`
	AmountDisplay  string              `json:"amount_display"`
	CurrencySymbol string              `json:"currency_symbol"`
}

type InvoiceListResponse struct {
	Items      []model.Invoice `json:"items"`
	Total      int64           `json:"total"`
	Page       int             `json:"page"`
	PageSize   int             `json:"page_size"`
	TotalPages int             `json:"total_pages"`
}

type SendRequest struct {
	Recipient string `json:"recipient" binding:"required,email"`
	Subject   string `json:"subject"`
	Message   string `json:"message"`
}

// --- Interface ---

// InvoiceService reads and transitions persisted invoices. Mutation of
// invoice content happens through draft sessions; this service only covers
// whole-record operations.
type InvoiceService interface {
	List(ctx context.Context, filter apiclient.InvoiceListFilter) (InvoiceListResponse, error)
	Get(ctx context.Context, id int64) (InvoiceDetail, error)
	ViewHTML(ctx context.Context, id int64, templateID int) (string, error)
	DownloadPDF(ctx context.Context, id int64) ([]byte, string, error)
	Send(ctx context.Context, id int64, req SendRequest) (apiclient.SendInvoiceResponse, error)
	Clone(ctx context.Context, id int64) (model.Invoice, error)
	UpdateStatus(ctx context.Context, id int64, status string) (model.Invoice, error)
	Delete(ctx context.Context, id int64) error
}

type invoiceService struct {
	api      *apiclient.Client
	auth     AuthService
	renderer render.Renderer
	log      *slog.Logger
}

func NewInvoiceService(api *apiclient.Client, auth AuthService, renderer render.Renderer, logger *slog.Logger) InvoiceService {
	return &invoiceService{
		api:      api,
		auth:     auth,
		renderer: renderer,
		log:      logger.With(logging.Module("invoices")),
	}
}

// --- Implementation ---

func (s *invoiceService) List(ctx context.Context, filter apiclient.InvoiceListFilter) (InvoiceListResponse, error) {
	resp, err := s.api.ListInvoices(ctx, filter)
	if err != nil {
		return InvoiceListResponse{}, err
	}
	return InvoiceListResponse{
		Items:      resp.Items,
		Total:      resp.Total,
		Page:       resp.Page,
		PageSize:   resp.PageSize,
		TotalPages: resp.TotalPages,
	}, nil
}

func (s *invoiceService) Get(ctx context.Context, id int64) (InvoiceDetail, error) {
	inv, err := s.api.GetInvoice(ctx, id)
	if err != nil {
		return InvoiceDetail{}, err
	}

	detail := InvoiceDetail{
		Invoice:        inv,
		AmountDisplay:  money.FormatWithSymbol(inv.Amount, inv.Currency.String()),
		CurrencySymbol: money.Symbol(inv.Currency.String()),
	}
	for _, line := range inv.LineItems {
		detail.Lines = append(detail.Lines, InvoiceLineDetail{
			ID:          line.ID,
			Description: line.Description,
			Quantity:    line.Quantity.String(),
			UnitPrice:   money.Format(line.UnitPrice),
			TaxRate:     line.TaxRate.String(),
			Total:       money.Format(line.TotalWithTax()),
		})
	}
	return detail, nil
}

// ViewHTML renders a persisted invoice through one of the fixed layouts. The
// current user fills the from block when reachable; the view renders either
// way.
func (s *invoiceService) ViewHTML(ctx context.Context, id int64, templateID int) (string, error) {
	inv, err := s.api.GetInvoice(ctx, id)
	if err != nil {
		return "", err
	}

	var userPtr *model.User
	if user, err := s.auth.CurrentUser(ctx); err == nil {
		userPtr = &user
	}

	view := render.BuildInvoiceView(inv, userPtr)
	return s.renderer.RenderHTML(view, templateID)
}

// DownloadPDF returns the backend-generated PDF bytes plus a filename built
// from the invoice number.
func (s *invoiceService) DownloadPDF(ctx context.Context, id int64) ([]byte, string, error) {
	inv, err := s.api.GetInvoice(ctx, id)
	if err != nil {
		return nil, "", err
	}
	data, err := s.api.DownloadPDF(ctx, id)
	if err != nil {
		return nil, "", err
	}
	return data, "invoice-" + inv.InvoiceNumber + ".pdf", nil
}

func (s *invoiceService) Send(ctx context.Context, id int64, req SendRequest) (apiclient.SendInvoiceResponse, error) {
	resp, err := s.api.SendInvoice(ctx, id, apiclient.SendInvoiceRequest{
		Recipient: req.Recipient,
		Subject:   req.Subject,
		Message:   req.Message,
	})
	if err != nil {
		return apiclient.SendInvoiceResponse{}, err
	}
	s.log.Info("invoice sent", slog.Int64("id", id), slog.String("recipient", req.Recipient))
	return resp, nil
}

func (s *invoiceService) Clone(ctx context.Context, id int64) (model.Invoice, error) {
	inv, err := s.api.CloneInvoice(ctx, id)
	if err != nil {
		return model.Invoice{}, err
	}
	s.log.Info("invoice cloned", slog.Int64("source", id), slog.Int64("copy", inv.ID))
	return inv, nil
}

func (s *invoiceService) UpdateStatus(ctx context.Context, id int64, status string) (model.Invoice, error) {
	if !model.ValidStatus(status) {
		return model.Invoice{}, validationError("unknown status " + status)
	}
	inv, err := s.api.UpdateInvoiceStatus(ctx, id, status)
	if err != nil {
		return model.Invoice{}, err
	}
	s.log.Info("invoice status changed", slog.Int64("id", id), slog.String("status", string(status)))
	return inv, nil
}

func (s *invoiceService) Delete(ctx context.Context, id int64) error {
	if err := s.api.DeleteInvoice(ctx, id); err != nil {
		return err
	}
	s.log.Info("invoice deleted", slog.Int64("id", id))
	return nil
}
