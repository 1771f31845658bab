package services

import (
	"context"

	"github.com/M-Vasconez/fin/internal/core/domain"
	"github.com/M-Vasconez/fin/internal/dto"
)

// TransferSvcFacade is the accounts-and-transfers engine surface.
type TransferSvcFacade interface {
	// CreateTransfer validates affordability, applies the paired balance
	// mutation atomically and appends an immutable transfer record. On any
	// failure no balance changes and no record is appended.
	CreateTransfer(ctx context.Context, req dto.CreateTransferRequest) (*dto.TransferResult, error)

	// ListTransfers returns transfer history, newest first.
	ListTransfers(ctx context.Context) ([]domain.Transfer, error)
}
