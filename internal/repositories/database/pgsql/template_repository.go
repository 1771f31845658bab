package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/M-Vasconez/fin/internal/apperrors"
	"github.com/M-Vasconez/fin/internal/core/domain"
	portsrepo "github.com/M-Vasconez/fin/internal/core/ports/repositories"
)

const templateColumns = "template_id, name, description, amount, category, payment_method, is_active, created_at, created_by, last_updated_at, last_updated_by"

type PgxTemplateRepository struct {
	pool *pgxpool.Pool
}

// newPgxTemplateRepository creates a new repository for expense templates.
func newPgxTemplateRepository(pool *pgxpool.Pool) portsrepo.TemplateRepository {
	return &PgxTemplateRepository{pool: pool}
}

var _ portsrepo.TemplateRepository = (*PgxTemplateRepository)(nil)

func scanTemplate(row pgx.Row) (domain.ExpenseTemplate, error) {
	var t domain.ExpenseTemplate
	var amount decimal.NullDecimal
	err := row.Scan(
		&t.TemplateID,
		&t.Name,
		&t.Description,
		&amount,
		&t.Category,
		&t.PaymentMethod,
		&t.IsActive,
		&t.CreatedAt,
		&t.CreatedBy,
		&t.LastUpdatedAt,
		&t.LastUpdatedBy,
	)
	if amount.Valid {
		t.Amount = &amount.Decimal
	}
	return t, err
}

func nullableAmount(amount *decimal.Decimal) decimal.NullDecimal {
	if amount == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NullDecimal{Decimal: *amount, Valid: true}
}

// SaveTemplate inserts a new template.
func (r *PgxTemplateRepository) SaveTemplate(ctx context.Context, template domain.ExpenseTemplate) error {
	query := `
		INSERT INTO expense_templates (` + templateColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := r.pool.Exec(ctx, query,
		template.TemplateID,
		template.Name,
		template.Description,
		nullableAmount(template.Amount),
		template.Category,
		template.PaymentMethod,
		template.IsActive,
		template.CreatedAt,
		template.CreatedBy,
		template.LastUpdatedAt,
		template.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: template with ID %s already exists", apperrors.ErrDuplicate, template.TemplateID)
		}
		return fmt.Errorf("failed to save template %s: %w", template.TemplateID, err)
	}
	return nil
}

// FindTemplateByID retrieves a template by its ID.
func (r *PgxTemplateRepository) FindTemplateByID(ctx context.Context, templateID string) (*domain.ExpenseTemplate, error) {
	query := `
		SELECT ` + templateColumns + `
		FROM expense_templates
		WHERE template_id = $1;
	`
	t, err := scanTemplate(r.pool.QueryRow(ctx, query, templateID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find template by ID %s: %w", templateID, err)
	}
	return &t, nil
}

// ListTemplates retrieves templates ordered by name, optionally only active
// ones.
func (r *PgxTemplateRepository) ListTemplates(ctx context.Context, activeOnly bool) ([]domain.ExpenseTemplate, error) {
	query := `
		SELECT ` + templateColumns + `
		FROM expense_templates
	`
	if activeOnly {
		query += ` WHERE is_active = TRUE`
	}
	query += ` ORDER BY name;`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query templates: %w", err)
	}
	defer rows.Close()

	templates := []domain.ExpenseTemplate{}
	for rows.Next() {
		t, err := scanTemplate(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan template row: %w", err)
		}
		templates = append(templates, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating template rows: %w", err)
	}
	return templates, nil
}

// UpdateTemplate updates an existing template.
func (r *PgxTemplateRepository) UpdateTemplate(ctx context.Context, template domain.ExpenseTemplate) error {
	query := `
		UPDATE expense_templates
		SET name = $2, description = $3, amount = $4, category = $5, payment_method = $6, is_active = $7, last_updated_at = $8, last_updated_by = $9
		WHERE template_id = $1;
	`
	tag, err := r.pool.Exec(ctx, query,
		template.TemplateID,
		template.Name,
		template.Description,
		nullableAmount(template.Amount),
		template.Category,
		template.PaymentMethod,
		template.IsActive,
		template.LastUpdatedAt,
		template.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update template %s: %w", template.TemplateID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeactivateTemplate marks a template inactive.
func (r *PgxTemplateRepository) DeactivateTemplate(ctx context.Context, templateID string, userID string, now time.Time) error {
	query := `
		UPDATE expense_templates
		SET is_active = FALSE, last_updated_at = $2, last_updated_by = $3
		WHERE template_id = $1;
	`
	tag, err := r.pool.Exec(ctx, query, templateID, now, userID)
	if err != nil {
		return fmt.Errorf("failed to deactivate template %s: %w", templateID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
