package services

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/M-Vasconez/fin/internal/core/domain"
)

// SettingsSvcFacade is the preferences and currency engine surface.
type SettingsSvcFacade interface {
	// GetSettings returns the stored preferences, falling back to defaults for
	// any key never written.
	GetSettings(ctx context.Context) (*domain.Settings, error)

	// SetCurrency switches the display currency. It fails when no conversion
	// rate is known for the requested currency.
	SetCurrency(ctx context.Context, currency domain.Currency) error

	// SetDateFormat stores the preferred date format.
	SetDateFormat(ctx context.Context, format domain.DateFormat) error

	// SetUserName stores the display name.
	SetUserName(ctx context.Context, name string) error

	// ListConversionRates returns every known USD-relative rate.
	ListConversionRates(ctx context.Context) ([]domain.ConversionRate, error)

	// SetConversionRate upserts a USD-relative rate, stamping LastUpdated.
	SetConversionRate(ctx context.Context, currency domain.Currency, rate decimal.Decimal) (*domain.ConversionRate, error)

	// ConvertFromUSD converts a USD amount into the target currency. When the
	// rate is unknown the amount passes through unchanged.
	ConvertFromUSD(ctx context.Context, amount decimal.Decimal, to domain.Currency) (decimal.Decimal, error)

	// ConvertToUSD converts an amount in the given currency back to USD. When
	// the rate is unknown the amount passes through unchanged.
	ConvertToUSD(ctx context.Context, amount decimal.Decimal, from domain.Currency) (decimal.Decimal, error)

	// FormatCurrency renders an amount with the symbol and conventions of the
	// active display currency.
	FormatCurrency(ctx context.Context, amount decimal.Decimal) (string, error)

	// FormatDate renders a timestamp using the stored date format preference.
	FormatDate(ctx context.Context, t time.Time) (string, error)
}
