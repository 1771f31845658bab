package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/M-Vasconez/fin/internal/core/ports/repositories"
)

// NewRepositoryProvider wires every pgsql repository over one pool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) *portsrepo.RepositoryProvider {
	accountRepo := newPgxAccountRepository(dbPool)
	transferRepo := newPgxTransferRepository(dbPool, accountRepo)
	goalRepo := newPgxGoalRepository(dbPool)
	templateRepo := newPgxTemplateRepository(dbPool)
	transactionRepo := newPgxTransactionRepository(dbPool)
	settingsRepo := newPgxSettingsRepository(dbPool)
	rateRepo := newPgxConversionRateRepository(dbPool)

	return &portsrepo.RepositoryProvider{
		AccountRepo:     accountRepo,
		TransferRepo:    transferRepo,
		GoalRepo:        goalRepo,
		TemplateRepo:    templateRepo,
		TransactionRepo: transactionRepo,
		SettingsRepo:    settingsRepo,
		RateRepo:        rateRepo,
	}
}
