package services

import (
	"context"

	"github.com/M-Vasconez/fin/internal/core/domain"
	"github.com/M-Vasconez/fin/internal/dto"
)

// GoalSvcFacade is the savings-goals engine surface.
type GoalSvcFacade interface {
	// CreateGoal persists a new goal.
	CreateGoal(ctx context.Context, req dto.CreateGoalRequest) (*domain.Goal, error)

	// GetGoalByID retrieves a goal by id.
	GetGoalByID(ctx context.Context, goalID string) (*domain.Goal, error)

	// ListGoals retrieves every goal.
	ListGoals(ctx context.Context) ([]domain.Goal, error)

	// ListGoalsByAccount retrieves the goals weakly referencing an account.
	ListGoalsByAccount(ctx context.Context, accountID string) ([]domain.Goal, error)

	// UpdateGoal applies a partial update to a goal.
	UpdateGoal(ctx context.Context, goalID string, req dto.UpdateGoalRequest) (*domain.Goal, error)

	// DeleteGoal removes a goal permanently.
	DeleteGoal(ctx context.Context, goalID string) error
}
