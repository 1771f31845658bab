package repositories

import (
	"context"

	"github.com/M-Vasconez/fin/internal/core/domain"
)

// SettingsRepository is the durable key-value store behind the settings
// engine, the injected replacement for the original browser localStorage.
type SettingsRepository interface {
	// GetSetting reads one settings key; returns apperrors.ErrNotFound when
	// the key was never written.
	GetSetting(ctx context.Context, key string) (string, error)

	// PutSetting upserts one settings key.
	PutSetting(ctx context.Context, key, value string) error
}

// ConversionRateRepository persists the USD→currency rate table.
type ConversionRateRepository interface {
	// UpsertConversionRate inserts or replaces the rate for a currency.
	UpsertConversionRate(ctx context.Context, rate domain.ConversionRate) error

	// FindConversionRate retrieves the rate for a currency; returns
	// apperrors.ErrNotFound when none is registered.
	FindConversionRate(ctx context.Context, currency domain.Currency) (*domain.ConversionRate, error)

	// ListConversionRates retrieves every registered rate.
	ListConversionRates(ctx context.Context) ([]domain.ConversionRate, error)
}
