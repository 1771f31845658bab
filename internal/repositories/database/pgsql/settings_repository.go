package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/M-Vasconez/fin/internal/apperrors"
	"github.com/M-Vasconez/fin/internal/core/domain"
	portsrepo "github.com/M-Vasconez/fin/internal/core/ports/repositories"
)

// PgxSettingsRepository is the durable key-value store behind preferences.
type PgxSettingsRepository struct {
	pool *pgxpool.Pool
}

// newPgxSettingsRepository creates a new repository for settings data.
func newPgxSettingsRepository(pool *pgxpool.Pool) portsrepo.SettingsRepository {
	return &PgxSettingsRepository{pool: pool}
}

var _ portsrepo.SettingsRepository = (*PgxSettingsRepository)(nil)

// GetSetting reads one settings key.
func (r *PgxSettingsRepository) GetSetting(ctx context.Context, key string) (string, error) {
	var value string
	err := r.pool.QueryRow(ctx, `SELECT value FROM settings WHERE key = $1;`, key).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", apperrors.ErrNotFound
		}
		return "", fmt.Errorf("failed to read setting %s: %w", key, err)
	}
	return value, nil
}

// PutSetting upserts one settings key.
func (r *PgxSettingsRepository) PutSetting(ctx context.Context, key, value string) error {
	query := `
		INSERT INTO settings (key, value)
		VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value;
	`
	if _, err := r.pool.Exec(ctx, query, key, value); err != nil {
		return fmt.Errorf("failed to store setting %s: %w", key, err)
	}
	return nil
}

// PgxConversionRateRepository persists the USD-relative rate table.
type PgxConversionRateRepository struct {
	pool *pgxpool.Pool
}

// newPgxConversionRateRepository creates a new repository for conversion
// rates.
func newPgxConversionRateRepository(pool *pgxpool.Pool) portsrepo.ConversionRateRepository {
	return &PgxConversionRateRepository{pool: pool}
}

var _ portsrepo.ConversionRateRepository = (*PgxConversionRateRepository)(nil)

// UpsertConversionRate inserts or replaces the rate for a currency.
func (r *PgxConversionRateRepository) UpsertConversionRate(ctx context.Context, rate domain.ConversionRate) error {
	query := `
		INSERT INTO conversion_rates (currency_code, rate, last_updated)
		VALUES ($1, $2, $3)
		ON CONFLICT (currency_code) DO UPDATE SET rate = EXCLUDED.rate, last_updated = EXCLUDED.last_updated;
	`
	if _, err := r.pool.Exec(ctx, query, rate.Currency, rate.Rate, rate.LastUpdated); err != nil {
		return fmt.Errorf("failed to upsert conversion rate for %s: %w", rate.Currency, err)
	}
	return nil
}

// FindConversionRate retrieves the rate for a currency.
func (r *PgxConversionRateRepository) FindConversionRate(ctx context.Context, currency domain.Currency) (*domain.ConversionRate, error) {
	var rate domain.ConversionRate
	err := r.pool.QueryRow(ctx,
		`SELECT currency_code, rate, last_updated FROM conversion_rates WHERE currency_code = $1;`,
		currency,
	).Scan(&rate.Currency, &rate.Rate, &rate.LastUpdated)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find conversion rate for %s: %w", currency, err)
	}
	return &rate, nil
}

// ListConversionRates retrieves every registered rate.
func (r *PgxConversionRateRepository) ListConversionRates(ctx context.Context) ([]domain.ConversionRate, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT currency_code, rate, last_updated FROM conversion_rates ORDER BY currency_code;`)
	if err != nil {
		return nil, fmt.Errorf("failed to query conversion rates: %w", err)
	}
	defer rows.Close()

	rates := []domain.ConversionRate{}
	for rows.Next() {
		var rate domain.ConversionRate
		if err := rows.Scan(&rate.Currency, &rate.Rate, &rate.LastUpdated); err != nil {
			return nil, fmt.Errorf("failed to scan conversion rate row: %w", err)
		}
		rates = append(rates, rate)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating conversion rate rows: %w", err)
	}
	return rates, nil
}
