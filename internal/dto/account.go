package dto

import (
	"time"

	"github.com/M-Vasconez/fin/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateAccountRequest defines the data needed to create a new account.
type CreateAccountRequest struct {
	Name          string             `json:"name" binding:"required"`
	AccountType   domain.AccountType `json:"accountType" binding:"required,oneof=cash debit_card credit_card bank_transfer check digital_wallet other"`
	Balance       decimal.Decimal    `json:"balance"`
	AccountNumber string             `json:"accountNumber"` // Optional
	Description   string             `json:"description"`   // Optional
}

// UpdateAccountRequest defines the data allowed for updating an account.
// Pointers distinguish zero-value updates from fields not provided.
type UpdateAccountRequest struct {
	Name          *string `json:"name"`
	AccountNumber *string `json:"accountNumber"`
	Description   *string `json:"description"`
	IsActive      *bool   `json:"isActive"`
}

// AccountResponse defines the data returned for an account.
type AccountResponse struct {
	AccountID      string                `json:"accountID"`
	Name           string                `json:"name"`
	AccountType    domain.AccountType    `json:"accountType"`
	Balance        decimal.Decimal       `json:"balance"`
	DisplayBalance domain.BalanceDisplay `json:"displayBalance"`
	AccountNumber  string                `json:"accountNumber"`
	Description    string                `json:"description"`
	IsActive       bool                  `json:"isActive"`
	CreatedAt      time.Time             `json:"createdAt"`
	LastUpdatedAt  time.Time             `json:"lastUpdatedAt"`
}

// ToAccountResponse converts a domain.Account to AccountResponse.
func ToAccountResponse(acc *domain.Account) AccountResponse {
	return AccountResponse{
		AccountID:      acc.AccountID,
		Name:           acc.Name,
		AccountType:    acc.AccountType,
		Balance:        acc.Balance,
		DisplayBalance: acc.DisplayBalance(),
		AccountNumber:  acc.AccountNumber,
		Description:    acc.Description,
		IsActive:       acc.IsActive,
		CreatedAt:      acc.CreatedAt,
		LastUpdatedAt:  acc.LastUpdatedAt,
	}
}

// ToListAccountResponse converts a slice of domain.Account to response DTOs.
func ToListAccountResponse(accounts []domain.Account) []AccountResponse {
	res := make([]AccountResponse, len(accounts))
	for i, acc := range accounts {
		res[i] = ToAccountResponse(&acc)
	}
	return res
}

// ListAccountsResponse wraps the list of accounts.
type ListAccountsResponse struct {
	Accounts []AccountResponse `json:"accounts"`
}
