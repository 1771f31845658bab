package dto

import (
	"time"

	"github.com/M-Vasconez/fin/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTemplateRequest defines the data needed to create an expense template.
// Amount and PaymentMethod are optional because they may vary per use.
type CreateTemplateRequest struct {
	Name          string             `json:"name" binding:"required"`
	Description   string             `json:"description"`
	Amount        *decimal.Decimal   `json:"amount"`
	Category      string             `json:"category" binding:"required"`
	PaymentMethod domain.AccountType `json:"paymentMethod" binding:"omitempty,oneof=cash debit_card credit_card bank_transfer check digital_wallet other"`
}

// UpdateTemplateRequest defines the data allowed for updating a template.
type UpdateTemplateRequest struct {
	Name          *string             `json:"name"`
	Description   *string             `json:"description"`
	Amount        *decimal.Decimal    `json:"amount"`
	Category      *string             `json:"category"`
	PaymentMethod *domain.AccountType `json:"paymentMethod" binding:"omitempty,oneof=cash debit_card credit_card bank_transfer check digital_wallet other"`
	IsActive      *bool               `json:"isActive"`
}

// TemplateResponse defines the data returned for an expense template.
type TemplateResponse struct {
	TemplateID    string             `json:"templateID"`
	Name          string             `json:"name"`
	Description   string             `json:"description"`
	Amount        *decimal.Decimal   `json:"amount,omitempty"`
	Category      string             `json:"category"`
	PaymentMethod domain.AccountType `json:"paymentMethod,omitempty"`
	IsActive      bool               `json:"isActive"`
	CreatedAt     time.Time          `json:"createdAt"`
	LastUpdatedAt time.Time          `json:"lastUpdatedAt"`
}

// ToTemplateResponse converts a domain.ExpenseTemplate to TemplateResponse.
func ToTemplateResponse(t *domain.ExpenseTemplate) TemplateResponse {
	return TemplateResponse{
		TemplateID:    t.TemplateID,
		Name:          t.Name,
		Description:   t.Description,
		Amount:        t.Amount,
		Category:      t.Category,
		PaymentMethod: t.PaymentMethod,
		IsActive:      t.IsActive,
		CreatedAt:     t.CreatedAt,
		LastUpdatedAt: t.LastUpdatedAt,
	}
}

// ListTemplatesParams defines query parameters for listing templates.
type ListTemplatesParams struct {
	ActiveOnly bool `form:"active,default=false"`
}

// ListTemplatesResponse wraps the list of templates.
type ListTemplatesResponse struct {
	Templates []TemplateResponse `json:"templates"`
}

// ToListTemplatesResponse converts templates to response DTOs.
func ToListTemplatesResponse(templates []domain.ExpenseTemplate) ListTemplatesResponse {
	res := make([]TemplateResponse, len(templates))
	for i, t := range templates {
		res[i] = ToTemplateResponse(&t)
	}
	return ListTemplatesResponse{Templates: res}
}
