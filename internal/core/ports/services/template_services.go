package services

import (
	"context"

	"github.com/M-Vasconez/fin/internal/core/domain"
	"github.com/M-Vasconez/fin/internal/dto"
)

// TemplateSvcFacade is the expense-templates engine surface.
type TemplateSvcFacade interface {
	// CreateTemplate persists a new expense template.
	CreateTemplate(ctx context.Context, req dto.CreateTemplateRequest) (*domain.ExpenseTemplate, error)

	// GetTemplateByID retrieves a template by id.
	GetTemplateByID(ctx context.Context, templateID string) (*domain.ExpenseTemplate, error)

	// ListTemplates retrieves templates, optionally only active ones.
	ListTemplates(ctx context.Context, activeOnly bool) ([]domain.ExpenseTemplate, error)

	// UpdateTemplate applies a partial update to a template.
	UpdateTemplate(ctx context.Context, templateID string, req dto.UpdateTemplateRequest) (*domain.ExpenseTemplate, error)

	// DeactivateTemplate soft-deletes a template.
	DeactivateTemplate(ctx context.Context, templateID string) error
}
