package repositories

import (
	"context"

	"github.com/M-Vasconez/fin/internal/core/domain"
)

// GoalRepository persists savings goals.
type GoalRepository interface {
	// SaveGoal persists a new goal.
	SaveGoal(ctx context.Context, goal domain.Goal) error

	// FindGoalByID retrieves a goal by id.
	FindGoalByID(ctx context.Context, goalID string) (*domain.Goal, error)

	// ListGoals retrieves every goal.
	ListGoals(ctx context.Context) ([]domain.Goal, error)

	// ListGoalsByAccount retrieves the goals weakly referencing an account.
	ListGoalsByAccount(ctx context.Context, accountID string) ([]domain.Goal, error)

	// UpdateGoal updates an existing goal.
	UpdateGoal(ctx context.Context, goal domain.Goal) error

	// DeleteGoal removes a goal permanently.
	DeleteGoal(ctx context.Context, goalID string) error
}
