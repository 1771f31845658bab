package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/M-Vasconez/fin/internal/core/domain"
	portsrepo "github.com/M-Vasconez/fin/internal/core/ports/repositories"
)

const transferColumns = "transfer_id, from_account_id, to_account_id, amount, fee, description, date, created_at, created_by, last_updated_at, last_updated_by"

type PgxTransferRepository struct {
	BaseRepository
	accountRepo portsrepo.AccountRepository
}

// newPgxTransferRepository creates a new repository for transfer data. It
// needs the account repository to apply balance deltas inside its own
// transactions.
func newPgxTransferRepository(pool *pgxpool.Pool, accountRepo portsrepo.AccountRepository) portsrepo.TransferRepositoryWithTx {
	return &PgxTransferRepository{
		BaseRepository: BaseRepository{Pool: pool},
		accountRepo:    accountRepo,
	}
}

var _ portsrepo.TransferRepositoryWithTx = (*PgxTransferRepository)(nil)

// SaveTransfer inserts the transfer record and applies the balance deltas to
// both accounts in one database transaction. The rows are locked first so a
// concurrent transfer cannot interleave between read and write.
func (r *PgxTransferRepository) SaveTransfer(ctx context.Context, transfer domain.Transfer, balanceChanges map[string]decimal.Decimal) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	accountIDs := make([]string, 0, len(balanceChanges))
	for accountID := range balanceChanges {
		accountIDs = append(accountIDs, accountID)
	}
	locked, err := r.accountRepo.FindAccountsByIDsForUpdate(ctx, tx, accountIDs)
	if err != nil {
		return err
	}
	if len(locked) != len(accountIDs) {
		return fmt.Errorf("not all transfer accounts exist: expected %d, locked %d", len(accountIDs), len(locked))
	}

	query := `
		INSERT INTO transfers (` + transferColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	if _, err := tx.Exec(ctx, query,
		transfer.TransferID,
		transfer.FromAccountID,
		transfer.ToAccountID,
		transfer.Amount,
		transfer.Fee,
		transfer.Description,
		transfer.Date,
		transfer.CreatedAt,
		transfer.CreatedBy,
		transfer.LastUpdatedAt,
		transfer.LastUpdatedBy,
	); err != nil {
		return fmt.Errorf("failed to insert transfer %s: %w", transfer.TransferID, err)
	}

	if err := r.accountRepo.UpdateAccountBalancesInTx(ctx, tx, balanceChanges, transfer.CreatedBy, transfer.CreatedAt); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

// ListTransfers returns transfer history, newest first.
func (r *PgxTransferRepository) ListTransfers(ctx context.Context) ([]domain.Transfer, error) {
	query := `
		SELECT ` + transferColumns + `
		FROM transfers
		ORDER BY date DESC, created_at DESC;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query transfers: %w", err)
	}
	defer rows.Close()

	transfers := []domain.Transfer{}
	for rows.Next() {
		var t domain.Transfer
		if err := rows.Scan(
			&t.TransferID,
			&t.FromAccountID,
			&t.ToAccountID,
			&t.Amount,
			&t.Fee,
			&t.Description,
			&t.Date,
			&t.CreatedAt,
			&t.CreatedBy,
			&t.LastUpdatedAt,
			&t.LastUpdatedBy,
		); err != nil {
			return nil, fmt.Errorf("failed to scan transfer row: %w", err)
		}
		transfers = append(transfers, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transfer rows: %w", err)
	}
	return transfers, nil
}
