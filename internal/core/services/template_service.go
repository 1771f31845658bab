package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/M-Vasconez/fin/internal/apperrors"
	"github.com/M-Vasconez/fin/internal/core/domain"
	portsrepo "github.com/M-Vasconez/fin/internal/core/ports/repositories"
	portssvc "github.com/M-Vasconez/fin/internal/core/ports/services"
	"github.com/M-Vasconez/fin/internal/dto"
)

// templateService implements the expense-templates engine.
type templateService struct {
	BaseService
	templateRepo portsrepo.TemplateRepository
}

// NewTemplateService creates a new template service.
func NewTemplateService(repo portsrepo.TemplateRepository) portssvc.TemplateSvcFacade {
	return &templateService{
		templateRepo: repo,
	}
}

// CreateTemplate persists a new expense template.
func (s *templateService) CreateTemplate(ctx context.Context, req dto.CreateTemplateRequest) (*domain.ExpenseTemplate, error) {
	if req.Amount != nil && req.Amount.IsNegative() {
		return nil, fmt.Errorf("template amount cannot be negative: %w", apperrors.ErrValidation)
	}

	now := time.Now()
	template := domain.ExpenseTemplate{
		TemplateID:    uuid.NewString(),
		Name:          req.Name,
		Description:   req.Description,
		Amount:        req.Amount,
		Category:      req.Category,
		PaymentMethod: req.PaymentMethod,
		IsActive:      true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     domain.DefaultUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: domain.DefaultUserID,
		},
	}

	if err := s.templateRepo.SaveTemplate(ctx, template); err != nil {
		s.LogError(ctx, err, "failed to save template", slog.String("template_name", req.Name))
		return nil, fmt.Errorf("failed to save template: %w", err)
	}

	s.LogInfo(ctx, "template created", slog.String("template_id", template.TemplateID))
	return &template, nil
}

// GetTemplateByID retrieves one template.
func (s *templateService) GetTemplateByID(ctx context.Context, templateID string) (*domain.ExpenseTemplate, error) {
	template, err := s.templateRepo.FindTemplateByID(ctx, templateID)
	if err != nil {
		return nil, fmt.Errorf("failed to find template %s: %w", templateID, err)
	}
	return template, nil
}

// ListTemplates retrieves templates, optionally only active ones.
func (s *templateService) ListTemplates(ctx context.Context, activeOnly bool) ([]domain.ExpenseTemplate, error) {
	templates, err := s.templateRepo.ListTemplates(ctx, activeOnly)
	if err != nil {
		s.LogError(ctx, err, "failed to list templates")
		return nil, fmt.Errorf("failed to list templates: %w", err)
	}
	return templates, nil
}

// UpdateTemplate applies a partial update to a template.
func (s *templateService) UpdateTemplate(ctx context.Context, templateID string, req dto.UpdateTemplateRequest) (*domain.ExpenseTemplate, error) {
	template, err := s.templateRepo.FindTemplateByID(ctx, templateID)
	if err != nil {
		return nil, fmt.Errorf("failed to find template %s: %w", templateID, err)
	}

	if req.Name != nil {
		template.Name = *req.Name
	}
	if req.Description != nil {
		template.Description = *req.Description
	}
	if req.Amount != nil {
		if req.Amount.IsNegative() {
			return nil, fmt.Errorf("template amount cannot be negative: %w", apperrors.ErrValidation)
		}
		template.Amount = req.Amount
	}
	if req.Category != nil {
		template.Category = *req.Category
	}
	if req.PaymentMethod != nil {
		template.PaymentMethod = *req.PaymentMethod
	}
	if req.IsActive != nil {
		template.IsActive = *req.IsActive
	}
	template.LastUpdatedAt = time.Now()
	template.LastUpdatedBy = domain.DefaultUserID

	if err := s.templateRepo.UpdateTemplate(ctx, *template); err != nil {
		s.LogError(ctx, err, "failed to update template", slog.String("template_id", templateID))
		return nil, fmt.Errorf("failed to update template %s: %w", templateID, err)
	}

	return template, nil
}

// DeactivateTemplate soft-deletes a template so it drops out of the
// active-only listing but keeps its history.
func (s *templateService) DeactivateTemplate(ctx context.Context, templateID string) error {
	if _, err := s.templateRepo.FindTemplateByID(ctx, templateID); err != nil {
		return fmt.Errorf("failed to find template %s: %w", templateID, err)
	}

	if err := s.templateRepo.DeactivateTemplate(ctx, templateID, domain.DefaultUserID, time.Now()); err != nil {
		s.LogError(ctx, err, "failed to deactivate template", slog.String("template_id", templateID))
		return fmt.Errorf("failed to deactivate template %s: %w", templateID, err)
	}

	s.LogInfo(ctx, "template deactivated", slog.String("template_id", templateID))
	return nil
}
