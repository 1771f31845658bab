package domain

import (
	"github.com/shopspring/decimal"
)

// ExpenseTemplate pre-fills an expense entry form. Amount and PaymentMethod
// are optional because they may vary each time the template is used.
type ExpenseTemplate struct {
	TemplateID    string           `json:"templateID"`
	Name          string           `json:"name"`
	Description   string           `json:"description"`
	Amount        *decimal.Decimal `json:"amount,omitempty"`
	Category      string           `json:"category"`
	PaymentMethod AccountType      `json:"paymentMethod,omitempty"`
	IsActive      bool             `json:"isActive"`
	AuditFields
}
