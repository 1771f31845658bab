package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"

	"github.com/M-Vasconez/fin/internal/apperrors"
	"github.com/M-Vasconez/fin/internal/core/domain"
	portsrepo "github.com/M-Vasconez/fin/internal/core/ports/repositories"
	portssvc "github.com/M-Vasconez/fin/internal/core/ports/services"
)

// Settings keys. These mirror the original per-browser preference names so
// exported data stays recognizable.
const (
	settingKeyCurrency   = "currency"
	settingKeyDateFormat = "dateFormat"
	settingKeyUserName   = "userName"
)

// settingsService implements preferences and the currency conversion engine.
// All amounts are stored in USD; rates are USD-relative multipliers.
type settingsService struct {
	BaseService
	settingsRepo portsrepo.SettingsRepository
	rateRepo     portsrepo.ConversionRateRepository
}

// NewSettingsService creates a new settings service.
func NewSettingsService(settingsRepo portsrepo.SettingsRepository, rateRepo portsrepo.ConversionRateRepository) portssvc.SettingsSvcFacade {
	return &settingsService{
		settingsRepo: settingsRepo,
		rateRepo:     rateRepo,
	}
}

// GetSettings returns the stored preferences, falling back to defaults for
// any key never written.
func (s *settingsService) GetSettings(ctx context.Context) (*domain.Settings, error) {
	settings := domain.DefaultSettings()

	currency, err := s.getOrDefault(ctx, settingKeyCurrency, string(settings.Currency))
	if err != nil {
		return nil, err
	}
	settings.Currency = domain.Currency(currency)

	format, err := s.getOrDefault(ctx, settingKeyDateFormat, string(settings.DateFormat))
	if err != nil {
		return nil, err
	}
	settings.DateFormat = domain.DateFormat(format)

	name, err := s.getOrDefault(ctx, settingKeyUserName, settings.UserName)
	if err != nil {
		return nil, err
	}
	settings.UserName = name

	return &settings, nil
}

func (s *settingsService) getOrDefault(ctx context.Context, key, fallback string) (string, error) {
	value, err := s.settingsRepo.GetSetting(ctx, key)
	if err != nil {
		if errorsIsNotFound(err) {
			return fallback, nil
		}
		s.LogError(ctx, err, "failed to read setting", slog.String("key", key))
		return "", fmt.Errorf("failed to read setting %s: %w", key, err)
	}
	return value, nil
}

// SetCurrency switches the display currency. Switching requires a known
// conversion rate so every stored USD amount stays renderable.
func (s *settingsService) SetCurrency(ctx context.Context, currency domain.Currency) error {
	if !domain.IsSupportedCurrency(currency) {
		return fmt.Errorf("unsupported currency %s: %w", currency, apperrors.ErrValidation)
	}

	if currency != domain.BaseCurrency {
		if _, err := s.rateRepo.FindConversionRate(ctx, currency); err != nil {
			if errorsIsNotFound(err) {
				return fmt.Errorf("no conversion rate registered for %s: %w", currency, apperrors.ErrValidation)
			}
			return fmt.Errorf("failed to look up conversion rate for %s: %w", currency, err)
		}
	}

	if err := s.settingsRepo.PutSetting(ctx, settingKeyCurrency, string(currency)); err != nil {
		s.LogError(ctx, err, "failed to store currency setting", slog.String("currency", string(currency)))
		return fmt.Errorf("failed to store currency setting: %w", err)
	}

	s.LogInfo(ctx, "display currency changed", slog.String("currency", string(currency)))
	return nil
}

// SetDateFormat stores the preferred date format.
func (s *settingsService) SetDateFormat(ctx context.Context, format domain.DateFormat) error {
	switch format {
	case domain.DateFormatDMY, domain.DateFormatMDY, domain.DateFormatYMD:
	default:
		return fmt.Errorf("unsupported date format %q: %w", format, apperrors.ErrValidation)
	}

	if err := s.settingsRepo.PutSetting(ctx, settingKeyDateFormat, string(format)); err != nil {
		s.LogError(ctx, err, "failed to store date format setting")
		return fmt.Errorf("failed to store date format setting: %w", err)
	}
	return nil
}

// SetUserName stores the display name used in greetings.
func (s *settingsService) SetUserName(ctx context.Context, name string) error {
	if name == "" {
		return fmt.Errorf("user name cannot be empty: %w", apperrors.ErrValidation)
	}

	if err := s.settingsRepo.PutSetting(ctx, settingKeyUserName, name); err != nil {
		s.LogError(ctx, err, "failed to store user name setting")
		return fmt.Errorf("failed to store user name setting: %w", err)
	}
	return nil
}

// ListConversionRates returns every known USD-relative rate.
func (s *settingsService) ListConversionRates(ctx context.Context) ([]domain.ConversionRate, error) {
	rates, err := s.rateRepo.ListConversionRates(ctx)
	if err != nil {
		s.LogError(ctx, err, "failed to list conversion rates")
		return nil, fmt.Errorf("failed to list conversion rates: %w", err)
	}
	return rates, nil
}

// SetConversionRate upserts a USD-relative rate, stamping LastUpdated.
func (s *settingsService) SetConversionRate(ctx context.Context, currency domain.Currency, rate decimal.Decimal) (*domain.ConversionRate, error) {
	if !domain.IsSupportedCurrency(currency) {
		return nil, fmt.Errorf("unsupported currency %s: %w", currency, apperrors.ErrValidation)
	}
	if !rate.IsPositive() {
		return nil, fmt.Errorf("conversion rate must be positive: %w", apperrors.ErrValidation)
	}

	record := domain.ConversionRate{
		Currency:    currency,
		Rate:        rate,
		LastUpdated: time.Now(),
	}
	if err := s.rateRepo.UpsertConversionRate(ctx, record); err != nil {
		s.LogError(ctx, err, "failed to upsert conversion rate", slog.String("currency", string(currency)))
		return nil, fmt.Errorf("failed to upsert conversion rate for %s: %w", currency, err)
	}

	s.LogInfo(ctx, "conversion rate updated",
		slog.String("currency", string(currency)),
		slog.String("rate", rate.String()))
	return &record, nil
}

// ConvertFromUSD converts a USD amount into the target currency. When the
// rate is unknown the amount passes through unchanged so display never
// breaks on a missing rate.
func (s *settingsService) ConvertFromUSD(ctx context.Context, amount decimal.Decimal, to domain.Currency) (decimal.Decimal, error) {
	if to == domain.BaseCurrency {
		return amount, nil
	}
	rate, err := s.rateRepo.FindConversionRate(ctx, to)
	if err != nil {
		if errorsIsNotFound(err) {
			return amount, nil
		}
		return decimal.Zero, fmt.Errorf("failed to look up conversion rate for %s: %w", to, err)
	}
	return amount.Mul(rate.Rate), nil
}

// ConvertToUSD converts an amount in the given currency back to USD, the
// inverse of ConvertFromUSD with the same missing-rate passthrough.
func (s *settingsService) ConvertToUSD(ctx context.Context, amount decimal.Decimal, from domain.Currency) (decimal.Decimal, error) {
	if from == domain.BaseCurrency {
		return amount, nil
	}
	rate, err := s.rateRepo.FindConversionRate(ctx, from)
	if err != nil {
		if errorsIsNotFound(err) {
			return amount, nil
		}
		return decimal.Zero, fmt.Errorf("failed to look up conversion rate for %s: %w", from, err)
	}
	if rate.Rate.IsZero() {
		return decimal.Zero, fmt.Errorf("conversion rate for %s is zero: %w", from, apperrors.ErrValidation)
	}
	return amount.Div(rate.Rate), nil
}

// FormatCurrency converts a stored USD amount to the active display currency
// and renders it with that currency's symbol and digit conventions.
func (s *settingsService) FormatCurrency(ctx context.Context, amount decimal.Decimal) (string, error) {
	settings, err := s.GetSettings(ctx)
	if err != nil {
		return "", err
	}

	converted, err := s.ConvertFromUSD(ctx, amount, settings.Currency)
	if err != nil {
		return "", err
	}

	return FormatAmount(converted, settings.Currency), nil
}

// FormatDate renders a timestamp using the stored date format preference.
func (s *settingsService) FormatDate(ctx context.Context, t time.Time) (string, error) {
	settings, err := s.GetSettings(ctx)
	if err != nil {
		return "", err
	}
	return t.Format(GoLayoutFor(settings.DateFormat)), nil
}

// FormatAmount renders an amount in the given currency using its registered
// symbol, separators and minor-unit count.
func FormatAmount(amount decimal.Decimal, currency domain.Currency) string {
	cur := money.GetCurrency(string(currency))
	if cur == nil {
		return amount.StringFixed(2) + " " + string(currency)
	}
	minor := amount.Shift(int32(cur.Fraction)).Round(0).IntPart()
	return money.New(minor, cur.Code).Display()
}

// GoLayoutFor maps a date format preference to a time layout string.
// Unknown values fall back to the default preference.
func GoLayoutFor(format domain.DateFormat) string {
	switch format {
	case domain.DateFormatDMY:
		return "02/01/2006"
	case domain.DateFormatYMD:
		return "2006-01-02"
	default:
		return "01/02/2006"
	}
}
