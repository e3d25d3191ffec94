package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"invoicer/internal/apiclient"
	"invoicer/internal/cache"
	"invoicer/internal/model"
	"invoicer/pkg/logging"
	"invoicer/pkg/money"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/singleflight"
)

// rateFreshness bounds how long a conversion result stays valid. Matches the
// staleness window the rate service itself advertises.
const rateFreshness = 5 * time.Minute

// ConvertResult is a display-ready conversion outcome. When the lookup fails
// the result degrades to the unconverted source amount with Converted=false —
// never a silent zero.
type ConvertResult struct {
	Amount    decimal.Decimal `json:"amount"`
	Currency  model.Currency  `json:"currency"`
	Converted bool            `json:"converted"`
	Display   string          `json:"display"`
}

// --- Interface ---

// CurrencyService adapts the external rate service for display conversions.
type CurrencyService interface {
	Convert(ctx context.Context, amount decimal.Decimal, from, to model.Currency) ConvertResult
	Rates(ctx context.Context, base model.Currency) (apiclient.RatesResponse, error)
}

type currencyService struct {
	api      *apiclient.Client
	convs    *cache.TTL[string, decimal.Decimal]
	rates    *cache.TTL[model.Currency, apiclient.RatesResponse]
	inFlight singleflight.Group
	log      *slog.Logger
}

func NewCurrencyService(api *apiclient.Client, logger *slog.Logger) CurrencyService {
	return &currencyService{
		api:   api,
		convs: cache.NewTTL[string, decimal.Decimal](),
		rates: cache.NewTTL[model.Currency, apiclient.RatesResponse](),
		log:   logger.With(logging.Module("currency")),
	}
}

// --- Implementation ---

// Convert resolves a cross-currency display amount. Identity conversions
// return immediately with no network call. Results are cached per exact
// (amount, from, to) tuple for the freshness window, and concurrent lookups
// for the same tuple share a single request.
func (s *currencyService) Convert(ctx context.Context, amount decimal.Decimal, from, to model.Currency) ConvertResult {
	if from == to {
		return converted(amount, to)
	}

	key := fmt.Sprintf("%s|%s|%s", amount.String(), from, to)
	if cached, ok := s.convs.Get(key); ok {
		return converted(cached, to)
	}

	value, err, _ := s.inFlight.Do(key, func() (interface{}, error) {
		resp, err := s.api.ConvertCurrency(ctx, amount, from, to)
		if err != nil {
			return decimal.Zero, err
		}
		s.convs.Set(key, resp.ConvertedAmount, rateFreshness)
		return resp.ConvertedAmount, nil
	})
	if err != nil {
		// Degrade to the unconverted source amount; conversion errors are
		// never fatal to the display.
		s.log.Warn("conversion failed, showing source amount",
			slog.String("from", from.String()),
			slog.String("to", to.String()),
			logging.Err(err))
		return ConvertResult{
			Amount:    amount,
			Currency:  from,
			Converted: false,
			Display:   money.FormatWithSymbol(amount, from.String()),
		}
	}

	return converted(value.(decimal.Decimal), to)
}

func (s *currencyService) Rates(ctx context.Context, base model.Currency) (apiclient.RatesResponse, error) {
	if cached, ok := s.rates.Get(base); ok {
		return cached, nil
	}

	resp, err := s.api.ExchangeRates(ctx, base)
	if err != nil {
		return apiclient.RatesResponse{}, err
	}
	s.rates.Set(base, resp, rateFreshness)
	return resp, nil
}

func converted(amount decimal.Decimal, currency model.Currency) ConvertResult {
	return ConvertResult{
		Amount:    amount,
		Currency:  currency,
		Converted: true,
		Display:   money.FormatWithSymbol(amount, currency.String()),
	}
}
