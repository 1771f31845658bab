package repositories

import (
	"context"
	"time"

	"github.com/M-Vasconez/fin/internal/core/domain"
)

// TransactionRepository reads and bulk-writes the income/expense entries that
// feed reporting.
type TransactionRepository interface {
	// ListTransactionsInRange retrieves transactions whose date falls within
	// [start, end], inclusive on both ends.
	ListTransactionsInRange(ctx context.Context, start, end time.Time) ([]domain.Transaction, error)

	// ReplaceAllTransactions overwrites the whole transaction set in a single
	// database transaction (CSV import).
	ReplaceAllTransactions(ctx context.Context, transactions []domain.Transaction) error
}
