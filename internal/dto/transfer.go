package dto

import (
	"time"

	"github.com/M-Vasconez/fin/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTransferRequest defines the data needed to record a transfer.
// Fee defaults to zero; Description defaults to "Transfer from X to Y".
type CreateTransferRequest struct {
	FromAccountID string          `json:"fromAccountID" binding:"required"`
	ToAccountID   string          `json:"toAccountID" binding:"required,nefield=FromAccountID"`
	Amount        decimal.Decimal `json:"amount" binding:"required"`
	Fee           decimal.Decimal `json:"fee"`
	Description   string          `json:"description"`
	Date          time.Time       `json:"date"`
}

// TransferResult is the tagged outcome of a successful transfer, carrying the
// human-readable message that distinguishes plain transfers, credit card
// payments and cash advances.
type TransferResult struct {
	Transfer domain.Transfer     `json:"transfer"`
	Kind     domain.TransferKind `json:"kind"`
	Message  string              `json:"message"`
}

// TransferResponse defines the data returned for a transfer record.
type TransferResponse struct {
	TransferID    string          `json:"transferID"`
	FromAccountID string          `json:"fromAccountID"`
	ToAccountID   string          `json:"toAccountID"`
	Amount        decimal.Decimal `json:"amount"`
	Fee           decimal.Decimal `json:"fee"`
	Description   string          `json:"description"`
	Date          time.Time       `json:"date"`
}

// ToTransferResponse converts a domain.Transfer to TransferResponse.
func ToTransferResponse(t *domain.Transfer) TransferResponse {
	return TransferResponse{
		TransferID:    t.TransferID,
		FromAccountID: t.FromAccountID,
		ToAccountID:   t.ToAccountID,
		Amount:        t.Amount,
		Fee:           t.Fee,
		Description:   t.Description,
		Date:          t.Date,
	}
}

// ListTransfersResponse wraps transfer history.
type ListTransfersResponse struct {
	Transfers []TransferResponse `json:"transfers"`
}

// ToListTransfersResponse converts transfer history to response DTOs.
func ToListTransfersResponse(transfers []domain.Transfer) ListTransfersResponse {
	res := make([]TransferResponse, len(transfers))
	for i, t := range transfers {
		res[i] = ToTransferResponse(&t)
	}
	return ListTransfersResponse{Transfers: res}
}
