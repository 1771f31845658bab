package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Currency is an ISO-4217 currency code supported by the dashboard.
type Currency string

const (
	USD Currency = "USD"
	EUR Currency = "EUR"
	MXN Currency = "MXN"
	GBP Currency = "GBP"
	JPY Currency = "JPY"
	CAD Currency = "CAD"
	AUD Currency = "AUD"
	CHF Currency = "CHF"
	CNY Currency = "CNY"
	BRL Currency = "BRL"
)

// BaseCurrency is the currency all amounts are stored in.
const BaseCurrency = USD

// SupportedCurrencies lists every currency the settings engine accepts.
var SupportedCurrencies = []Currency{USD, EUR, MXN, GBP, JPY, CAD, AUD, CHF, CNY, BRL}

// IsSupportedCurrency reports whether code is in SupportedCurrencies.
func IsSupportedCurrency(code Currency) bool {
	for _, c := range SupportedCurrencies {
		if c == code {
			return true
		}
	}
	return false
}

// DateFormat selects one of the three supported date renderings.
type DateFormat string

const (
	DateFormatDMY DateFormat = "dd/mm/yyyy"
	DateFormatMDY DateFormat = "mm/dd/yyyy"
	DateFormatYMD DateFormat = "yyyy-mm-dd"
)

// ConversionRate is a USD→currency multiplier. Rate positivity is expected of
// callers, not enforced here.
type ConversionRate struct {
	Currency    Currency        `json:"currency"`
	Rate        decimal.Decimal `json:"rate"`
	LastUpdated time.Time       `json:"lastUpdated"`
}

// Settings is the durable per-installation configuration, the replacement for
// the browser localStorage keys of the original dashboard.
type Settings struct {
	Currency   Currency   `json:"currency"`
	DateFormat DateFormat `json:"dateFormat"`
	UserName   string     `json:"userName"`
}

// DefaultSettings returns the out-of-the-box configuration.
func DefaultSettings() Settings {
	return Settings{
		Currency:   BaseCurrency,
		DateFormat: DateFormatMDY,
		UserName:   "User",
	}
}
