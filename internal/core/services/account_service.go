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

// accountService implements the account engine on top of the account
// repository.
type accountService struct {
	BaseService
	accountRepo portsrepo.AccountRepository
}

// NewAccountService creates a new account service.
func NewAccountService(repo portsrepo.AccountRepository) portssvc.AccountSvcFacade {
	return &accountService{
		accountRepo: repo,
	}
}

// CreateAccount persists a new account. The opening balance is taken as-is;
// for credit cards a negative opening balance means existing debt.
func (s *accountService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest) (*domain.Account, error) {
	now := time.Now()
	account := domain.Account{
		AccountID:     uuid.NewString(),
		Name:          req.Name,
		AccountType:   req.AccountType,
		Balance:       req.Balance,
		AccountNumber: req.AccountNumber,
		Description:   req.Description,
		IsActive:      true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     domain.DefaultUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: domain.DefaultUserID,
		},
	}

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		s.LogError(ctx, err, "failed to save account", slog.String("account_name", req.Name))
		return nil, fmt.Errorf("failed to save account: %w", err)
	}

	s.LogInfo(ctx, "account created", slog.String("account_id", account.AccountID))
	return &account, nil
}

// GetAccountByID retrieves one account.
func (s *accountService) GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to find account %s: %w", accountID, err)
	}
	return account, nil
}

// ListAccounts retrieves all accounts.
func (s *accountService) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	accounts, err := s.accountRepo.ListAccounts(ctx)
	if err != nil {
		s.LogError(ctx, err, "failed to list accounts")
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	return accounts, nil
}

// UpdateAccount applies a partial update. Balance and account type are not
// updatable here; balances only move through transfers or bulk import.
func (s *accountService) UpdateAccount(ctx context.Context, accountID string, req dto.UpdateAccountRequest) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to find account %s: %w", accountID, err)
	}

	if req.Name != nil {
		account.Name = *req.Name
	}
	if req.AccountNumber != nil {
		account.AccountNumber = *req.AccountNumber
	}
	if req.Description != nil {
		account.Description = *req.Description
	}
	if req.IsActive != nil {
		account.IsActive = *req.IsActive
	}
	account.LastUpdatedAt = time.Now()
	account.LastUpdatedBy = domain.DefaultUserID

	if err := s.accountRepo.UpdateAccount(ctx, *account); err != nil {
		s.LogError(ctx, err, "failed to update account", slog.String("account_id", accountID))
		return nil, fmt.Errorf("failed to update account %s: %w", accountID, err)
	}

	return account, nil
}

// DeactivateAccount soft-deletes an account. History referencing it stays
// intact.
func (s *accountService) DeactivateAccount(ctx context.Context, accountID string) error {
	if _, err := s.accountRepo.FindAccountByID(ctx, accountID); err != nil {
		return fmt.Errorf("failed to find account %s: %w", accountID, err)
	}

	if err := s.accountRepo.DeactivateAccount(ctx, accountID, domain.DefaultUserID, time.Now()); err != nil {
		s.LogError(ctx, err, "failed to deactivate account", slog.String("account_id", accountID))
		return fmt.Errorf("failed to deactivate account %s: %w", accountID, err)
	}

	s.LogInfo(ctx, "account deactivated", slog.String("account_id", accountID))
	return nil
}

// ReplaceAllAccounts bulk-overwrites the account collection (CSV import).
// Transfer history is cleared in the same database transaction because it
// would otherwise reference accounts that no longer exist.
func (s *accountService) ReplaceAllAccounts(ctx context.Context, accounts []domain.Account) error {
	for _, acc := range accounts {
		if acc.AccountID == "" || acc.Name == "" {
			return fmt.Errorf("account missing id or name: %w", apperrors.ErrValidation)
		}
	}

	if err := s.accountRepo.ReplaceAllAccounts(ctx, accounts); err != nil {
		s.LogError(ctx, err, "failed to replace accounts", slog.Int("count", len(accounts)))
		return fmt.Errorf("failed to replace accounts: %w", err)
	}

	s.LogInfo(ctx, "accounts replaced", slog.Int("count", len(accounts)))
	return nil
}
