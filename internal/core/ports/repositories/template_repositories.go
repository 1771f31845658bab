package repositories

import (
	"context"
	"time"

	"github.com/M-Vasconez/fin/internal/core/domain"
)

// TemplateRepository persists expense templates.
type TemplateRepository interface {
	// SaveTemplate persists a new template.
	SaveTemplate(ctx context.Context, template domain.ExpenseTemplate) error

	// FindTemplateByID retrieves a template by id.
	FindTemplateByID(ctx context.Context, templateID string) (*domain.ExpenseTemplate, error)

	// ListTemplates retrieves templates, optionally only active ones.
	ListTemplates(ctx context.Context, activeOnly bool) ([]domain.ExpenseTemplate, error)

	// UpdateTemplate updates an existing template.
	UpdateTemplate(ctx context.Context, template domain.ExpenseTemplate) error

	// DeactivateTemplate marks a template as inactive.
	DeactivateTemplate(ctx context.Context, templateID string, userID string, now time.Time) error
}
