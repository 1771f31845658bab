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

// goalService implements the savings-goals engine.
type goalService struct {
	BaseService
	goalRepo portsrepo.GoalRepository
}

// NewGoalService creates a new goal service.
func NewGoalService(repo portsrepo.GoalRepository) portssvc.GoalSvcFacade {
	return &goalService{
		goalRepo: repo,
	}
}

// CreateGoal persists a new goal. The account reference is a weak link; it is
// not validated against the account table so goals survive account imports.
func (s *goalService) CreateGoal(ctx context.Context, req dto.CreateGoalRequest) (*domain.Goal, error) {
	if req.TargetAmount.IsNegative() {
		return nil, fmt.Errorf("target amount cannot be negative: %w", apperrors.ErrValidation)
	}
	if req.CurrentAmount.IsNegative() {
		return nil, fmt.Errorf("current amount cannot be negative: %w", apperrors.ErrValidation)
	}

	now := time.Now()
	goal := domain.Goal{
		GoalID:        uuid.NewString(),
		Name:          req.Name,
		Description:   req.Description,
		TargetAmount:  req.TargetAmount,
		CurrentAmount: req.CurrentAmount,
		TargetDate:    req.TargetDate,
		Category:      req.Category,
		AccountID:     req.AccountID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     domain.DefaultUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: domain.DefaultUserID,
		},
	}

	if err := s.goalRepo.SaveGoal(ctx, goal); err != nil {
		s.LogError(ctx, err, "failed to save goal", slog.String("goal_name", req.Name))
		return nil, fmt.Errorf("failed to save goal: %w", err)
	}

	s.LogInfo(ctx, "goal created", slog.String("goal_id", goal.GoalID))
	return &goal, nil
}

// GetGoalByID retrieves one goal.
func (s *goalService) GetGoalByID(ctx context.Context, goalID string) (*domain.Goal, error) {
	goal, err := s.goalRepo.FindGoalByID(ctx, goalID)
	if err != nil {
		return nil, fmt.Errorf("failed to find goal %s: %w", goalID, err)
	}
	return goal, nil
}

// ListGoals retrieves every goal.
func (s *goalService) ListGoals(ctx context.Context) ([]domain.Goal, error) {
	goals, err := s.goalRepo.ListGoals(ctx)
	if err != nil {
		s.LogError(ctx, err, "failed to list goals")
		return nil, fmt.Errorf("failed to list goals: %w", err)
	}
	return goals, nil
}

// ListGoalsByAccount retrieves the goals referencing an account.
func (s *goalService) ListGoalsByAccount(ctx context.Context, accountID string) ([]domain.Goal, error) {
	goals, err := s.goalRepo.ListGoalsByAccount(ctx, accountID)
	if err != nil {
		s.LogError(ctx, err, "failed to list goals by account", slog.String("account_id", accountID))
		return nil, fmt.Errorf("failed to list goals for account %s: %w", accountID, err)
	}
	return goals, nil
}

// UpdateGoal applies a partial update to a goal.
func (s *goalService) UpdateGoal(ctx context.Context, goalID string, req dto.UpdateGoalRequest) (*domain.Goal, error) {
	goal, err := s.goalRepo.FindGoalByID(ctx, goalID)
	if err != nil {
		return nil, fmt.Errorf("failed to find goal %s: %w", goalID, err)
	}

	if req.Name != nil {
		goal.Name = *req.Name
	}
	if req.Description != nil {
		goal.Description = *req.Description
	}
	if req.TargetAmount != nil {
		if req.TargetAmount.IsNegative() {
			return nil, fmt.Errorf("target amount cannot be negative: %w", apperrors.ErrValidation)
		}
		goal.TargetAmount = *req.TargetAmount
	}
	if req.CurrentAmount != nil {
		if req.CurrentAmount.IsNegative() {
			return nil, fmt.Errorf("current amount cannot be negative: %w", apperrors.ErrValidation)
		}
		goal.CurrentAmount = *req.CurrentAmount
	}
	if req.TargetDate != nil {
		goal.TargetDate = *req.TargetDate
	}
	if req.Category != nil {
		goal.Category = *req.Category
	}
	if req.AccountID != nil {
		goal.AccountID = *req.AccountID
	}
	goal.LastUpdatedAt = time.Now()
	goal.LastUpdatedBy = domain.DefaultUserID

	if err := s.goalRepo.UpdateGoal(ctx, *goal); err != nil {
		s.LogError(ctx, err, "failed to update goal", slog.String("goal_id", goalID))
		return nil, fmt.Errorf("failed to update goal %s: %w", goalID, err)
	}

	return goal, nil
}

// DeleteGoal removes a goal permanently.
func (s *goalService) DeleteGoal(ctx context.Context, goalID string) error {
	if _, err := s.goalRepo.FindGoalByID(ctx, goalID); err != nil {
		return fmt.Errorf("failed to find goal %s: %w", goalID, err)
	}

	if err := s.goalRepo.DeleteGoal(ctx, goalID); err != nil {
		s.LogError(ctx, err, "failed to delete goal", slog.String("goal_id", goalID))
		return fmt.Errorf("failed to delete goal %s: %w", goalID, err)
	}

	s.LogInfo(ctx, "goal deleted", slog.String("goal_id", goalID))
	return nil
}
