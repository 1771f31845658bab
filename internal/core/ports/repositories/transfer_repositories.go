package repositories

import (
	"context"

	"github.com/M-Vasconez/fin/internal/core/domain"
	"github.com/shopspring/decimal"
)

// TransferRepository persists transfer history and applies the paired balance
// mutation atomically.
type TransferRepository interface {
	// SaveTransfer inserts the transfer record and applies the balance deltas
	// to both accounts in a single database transaction; on any error nothing
	// is persisted.
	SaveTransfer(ctx context.Context, transfer domain.Transfer, balanceChanges map[string]decimal.Decimal) error

	// ListTransfers returns transfer history, newest first.
	ListTransfers(ctx context.Context) ([]domain.Transfer, error)
}

// TransferRepositoryWithTx extends TransferRepository with transaction control.
type TransferRepositoryWithTx interface {
	TransferRepository
	TransactionManager
}
