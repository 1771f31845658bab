package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/M-Vasconez/fin/internal/apperrors"
	"github.com/M-Vasconez/fin/internal/core/domain"
	portsrepo "github.com/M-Vasconez/fin/internal/core/ports/repositories"
	portssvc "github.com/M-Vasconez/fin/internal/core/ports/services"
	"github.com/M-Vasconez/fin/internal/dto"
)

// transferService implements the transfer engine: affordability checks, the
// atomic paired balance mutation, and the immutable history record.
type transferService struct {
	BaseService
	accountRepo  portsrepo.AccountRepository
	transferRepo portsrepo.TransferRepositoryWithTx
}

// NewTransferService creates a new transfer service.
func NewTransferService(accountRepo portsrepo.AccountRepository, transferRepo portsrepo.TransferRepositoryWithTx) portssvc.TransferSvcFacade {
	return &transferService{
		accountRepo:  accountRepo,
		transferRepo: transferRepo,
	}
}

// CreateTransfer moves money between two accounts. The fee is debited from
// the source on top of the amount but never credited anywhere. Credit card
// sources are checked against available credit (the debt magnitude); all
// other sources against their balance.
func (s *transferService) CreateTransfer(ctx context.Context, req dto.CreateTransferRequest) (*dto.TransferResult, error) {
	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("transfer amount must be positive: %w", apperrors.ErrValidation)
	}
	if req.Fee.IsNegative() {
		return nil, fmt.Errorf("transfer fee cannot be negative: %w", apperrors.ErrValidation)
	}
	if req.FromAccountID == req.ToAccountID {
		return nil, fmt.Errorf("source and destination accounts must differ: %w", apperrors.ErrValidation)
	}

	from, err := s.accountRepo.FindAccountByID(ctx, req.FromAccountID)
	if err != nil {
		return nil, fmt.Errorf("failed to find source account %s: %w", req.FromAccountID, err)
	}
	to, err := s.accountRepo.FindAccountByID(ctx, req.ToAccountID)
	if err != nil {
		return nil, fmt.Errorf("failed to find destination account %s: %w", req.ToAccountID, err)
	}

	totalDebit := req.Amount.Add(req.Fee)
	if err := checkAffordability(*from, totalDebit); err != nil {
		s.LogInfo(ctx, "transfer rejected",
			slog.String("from_account_id", from.AccountID),
			slog.String("total_debit", totalDebit.String()),
			slog.String("reason", err.Error()))
		return nil, err
	}

	now := time.Now()
	date := req.Date
	if date.IsZero() {
		date = now
	}
	description := req.Description
	if description == "" {
		description = fmt.Sprintf("Transfer from %s to %s", from.Name, to.Name)
	}

	transfer := domain.Transfer{
		TransferID:    uuid.NewString(),
		FromAccountID: from.AccountID,
		ToAccountID:   to.AccountID,
		Amount:        req.Amount,
		Fee:           req.Fee,
		Description:   description,
		Date:          date,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     domain.DefaultUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: domain.DefaultUserID,
		},
	}

	// The destination receives the amount only; the fee leaves the system.
	balanceChanges := map[string]decimal.Decimal{
		from.AccountID: totalDebit.Neg(),
		to.AccountID:   req.Amount,
	}

	if err := s.transferRepo.SaveTransfer(ctx, transfer, balanceChanges); err != nil {
		s.LogError(ctx, err, "failed to save transfer",
			slog.String("from_account_id", from.AccountID),
			slog.String("to_account_id", to.AccountID))
		return nil, fmt.Errorf("failed to save transfer: %w", err)
	}

	kind := domain.ClassifyTransfer(*from, *to)
	s.LogInfo(ctx, "transfer completed",
		slog.String("transfer_id", transfer.TransferID),
		slog.String("kind", string(kind)),
		slog.String("amount", req.Amount.String()))

	return &dto.TransferResult{
		Transfer: transfer,
		Kind:     kind,
		Message:  transferMessage(kind),
	}, nil
}

// ListTransfers returns transfer history, newest first.
func (s *transferService) ListTransfers(ctx context.Context) ([]domain.Transfer, error) {
	transfers, err := s.transferRepo.ListTransfers(ctx)
	if err != nil {
		s.LogError(ctx, err, "failed to list transfers")
		return nil, fmt.Errorf("failed to list transfers: %w", err)
	}
	return transfers, nil
}

// checkAffordability verifies the source account can cover the total debit.
// For credit cards the ceiling is the current debt magnitude, so a card with
// balance -850 can pay out up to 850 more.
func checkAffordability(from domain.Account, totalDebit decimal.Decimal) error {
	if from.AccountType == domain.CreditCard {
		availableCredit := from.Balance.Abs()
		if availableCredit.LessThan(totalDebit) {
			return apperrors.ErrInsufficientCredit
		}
		return nil
	}
	if from.Balance.LessThan(totalDebit) {
		return apperrors.ErrInsufficientFunds
	}
	return nil
}

func transferMessage(kind domain.TransferKind) string {
	switch kind {
	case domain.KindCreditCardPayment:
		return "Credit card payment completed successfully"
	case domain.KindCashAdvance:
		return "Cash advance completed successfully"
	default:
		return "Transfer completed successfully"
	}
}
