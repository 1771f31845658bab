package dto

import (
	"time"

	"github.com/M-Vasconez/fin/internal/core/domain"
	"github.com/shopspring/decimal"
)

// UpdateCurrencyRequest selects the display currency.
type UpdateCurrencyRequest struct {
	Currency domain.Currency `json:"currency" binding:"required,oneof=USD EUR MXN GBP JPY CAD AUD CHF CNY BRL"`
}

// UpdateDateFormatRequest selects the date rendering.
type UpdateDateFormatRequest struct {
	DateFormat domain.DateFormat `json:"dateFormat" binding:"required,dateformat"`
}

// UpdateUserNameRequest sets the greeting name.
type UpdateUserNameRequest struct {
	UserName string `json:"userName" binding:"required"`
}

// UpsertConversionRateRequest registers or replaces a USD→currency rate.
// Positivity is checked at this boundary, not by the engine.
type UpsertConversionRateRequest struct {
	Currency domain.Currency `json:"currency" binding:"required,oneof=USD EUR MXN GBP JPY CAD AUD CHF CNY BRL"`
	Rate     decimal.Decimal `json:"rate" binding:"required"`
}

// SettingsResponse mirrors domain.Settings.
type SettingsResponse struct {
	Currency   domain.Currency   `json:"currency"`
	DateFormat domain.DateFormat `json:"dateFormat"`
	UserName   string            `json:"userName"`
}

// ToSettingsResponse converts domain.Settings to SettingsResponse.
func ToSettingsResponse(s domain.Settings) SettingsResponse {
	return SettingsResponse{
		Currency:   s.Currency,
		DateFormat: s.DateFormat,
		UserName:   s.UserName,
	}
}

// ConversionRateResponse defines the data returned for a conversion rate.
type ConversionRateResponse struct {
	Currency    domain.Currency `json:"currency"`
	Rate        decimal.Decimal `json:"rate"`
	LastUpdated time.Time       `json:"lastUpdated"`
}

// ListConversionRatesResponse wraps the rate table.
type ListConversionRatesResponse struct {
	Rates []ConversionRateResponse `json:"rates"`
}

// ToListConversionRatesResponse converts rates to response DTOs.
func ToListConversionRatesResponse(rates []domain.ConversionRate) ListConversionRatesResponse {
	res := make([]ConversionRateResponse, len(rates))
	for i, r := range rates {
		res[i] = ConversionRateResponse{
			Currency:    r.Currency,
			Rate:        r.Rate,
			LastUpdated: r.LastUpdated,
		}
	}
	return ListConversionRatesResponse{Rates: res}
}
