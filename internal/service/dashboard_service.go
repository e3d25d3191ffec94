package service

import (
	"context"
	"log/slog"

	"invoicer/internal/apiclient"
	"invoicer/internal/model"
	"invoicer/pkg/logging"
	"invoicer/pkg/money"

	"github.com/shopspring/decimal"
)

// summaryPageSize bounds how many invoices the summary aggregates over.
const summaryPageSize = 100

// --- DTOs ---

// DashboardSummary aggregates the invoice book into headline numbers, all
// expressed in the user's preferred display currency.
type DashboardSummary struct {
	Currency             model.Currency  `json:"currency"`
	TotalRevenue         string          `json:"total_revenue"`
	PaidInvoices         int             `json:"paid_invoices"`
	PendingAmount        string          `json:"pending_amount"`
	OverdueCount         int             `json:"overdue_count"`
	RecentInvoices       []model.Invoice `json:"recent_invoices"`
	ConversionIncomplete bool            `json:"conversion_incomplete"`
}

// --- Interface ---

type DashboardService interface {
	Summary(ctx context.Context) (DashboardSummary, error)
}

type dashboardService struct {
	api      *apiclient.Client
	auth     AuthService
	currency CurrencyService
	log      *slog.Logger
}

func NewDashboardService(api *apiclient.Client, auth AuthService, currency CurrencyService, logger *slog.Logger) DashboardService {
	return &dashboardService{
		api:      api,
		auth:     auth,
		currency: currency,
		log:      logger.With(logging.Module("dashboard")),
	}
}

// --- Implementation ---

// Summary folds the invoice book into totals: revenue from paid invoices,
// pending amount from sent ones, plus overdue and paid counts. Each amount is
// converted into the user's display currency; when a conversion degrades the
// source amount is summed as-is and the summary is flagged incomplete.
func (s *dashboardService) Summary(ctx context.Context) (DashboardSummary, error) {
	user, err := s.auth.CurrentUser(ctx)
	if err != nil {
		return DashboardSummary{}, err
	}
	display := user.DisplayCurrency()

	resp, err := s.api.ListInvoices(ctx, apiclient.InvoiceListFilter{Page: 1, PageSize: summaryPageSize})
	if err != nil {
		return DashboardSummary{}, err
	}

	summary := DashboardSummary{Currency: display}
	revenue, pending := decimal.Zero, decimal.Zero

	for _, inv := range resp.Items {
		switch inv.Status {
		case model.StatusPaid:
			summary.PaidInvoices++
			amount, ok := s.inDisplayCurrency(ctx, inv, display)
			if !ok {
				summary.ConversionIncomplete = true
			}
			revenue = revenue.Add(amount)
		case model.StatusSent:
			amount, ok := s.inDisplayCurrency(ctx, inv, display)
			if !ok {
				summary.ConversionIncomplete = true
			}
			pending = pending.Add(amount)
		case model.StatusOverdue:
			summary.OverdueCount++
		}
	}

	summary.TotalRevenue = money.FormatWithSymbol(revenue, display.String())
	summary.PendingAmount = money.FormatWithSymbol(pending, display.String())

	if n := len(resp.Items); n > 5 {
		summary.RecentInvoices = resp.Items[:5]
	} else {
		summary.RecentInvoices = resp.Items
	}
	return summary, nil
}

func (s *dashboardService) inDisplayCurrency(ctx context.Context, inv model.Invoice, display model.Currency) (decimal.Decimal, bool) {
	result := s.currency.Convert(ctx, inv.Amount, inv.Currency, display)
	if !result.Converted {
		s.log.Warn("summary includes unconverted amount",
			slog.Int64("invoice", inv.ID),
			slog.String("currency", inv.Currency.String()))
	}
	return result.Amount, result.Converted
}
