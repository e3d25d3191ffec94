package model

// Currency is an ISO 4217 code from the fixed set the backend supports.
type Currency string

const (
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
	CurrencyGBP Currency = "GBP"
	CurrencyNGN Currency = "NGN"
)

// DefaultCurrency is used when a user has no preferred currency set.
const DefaultCurrency = CurrencyNGN

// SupportedCurrencies lists every currency invoices may be issued in.
var SupportedCurrencies = []Currency{CurrencyUSD, CurrencyEUR, CurrencyGBP, CurrencyNGN}

// Valid reports whether c is one of the supported currency codes
func (c Currency) Valid() bool {
	switch c {
	case CurrencyUSD, CurrencyEUR, CurrencyGBP, CurrencyNGN:
		return true
	}
	return false
}

func (c Currency) String() string {
	return string(c)
}
