package dto

import (
	"time"

	"github.com/M-Vasconez/fin/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateGoalRequest defines the data needed to create a savings goal.
type CreateGoalRequest struct {
	Name          string              `json:"name" binding:"required"`
	Description   string              `json:"description"`
	TargetAmount  decimal.Decimal     `json:"targetAmount" binding:"required"`
	CurrentAmount decimal.Decimal     `json:"currentAmount"`
	TargetDate    time.Time           `json:"targetDate" binding:"required"`
	Category      domain.GoalCategory `json:"category" binding:"required,oneof=travel emergency vehicle home education investment other"`
	AccountID     string              `json:"accountID"`
}

// UpdateGoalRequest defines the data allowed for updating a goal.
type UpdateGoalRequest struct {
	Name          *string              `json:"name"`
	Description   *string              `json:"description"`
	TargetAmount  *decimal.Decimal     `json:"targetAmount"`
	CurrentAmount *decimal.Decimal     `json:"currentAmount"`
	TargetDate    *time.Time           `json:"targetDate"`
	Category      *domain.GoalCategory `json:"category" binding:"omitempty,oneof=travel emergency vehicle home education investment other"`
	AccountID     *string              `json:"accountID"`
}

// GoalResponse returns a goal together with its derived progress fields.
type GoalResponse struct {
	GoalID             string              `json:"goalID"`
	Name               string              `json:"name"`
	Description        string              `json:"description"`
	TargetAmount       decimal.Decimal     `json:"targetAmount"`
	CurrentAmount      decimal.Decimal     `json:"currentAmount"`
	TargetDate         time.Time           `json:"targetDate"`
	Category           domain.GoalCategory `json:"category"`
	AccountID          string              `json:"accountID"`
	Status             domain.GoalStatus   `json:"status"`
	ProgressPercentage decimal.Decimal     `json:"progressPercentage"`
	DaysRemaining      int                 `json:"daysRemaining"`
	CreatedAt          time.Time           `json:"createdAt"`
	LastUpdatedAt      time.Time           `json:"lastUpdatedAt"`
}

// ToGoalResponse converts a domain.Goal to GoalResponse, deriving status
// fields relative to now.
func ToGoalResponse(g *domain.Goal, now time.Time) GoalResponse {
	return GoalResponse{
		GoalID:             g.GoalID,
		Name:               g.Name,
		Description:        g.Description,
		TargetAmount:       g.TargetAmount,
		CurrentAmount:      g.CurrentAmount,
		TargetDate:         g.TargetDate,
		Category:           g.Category,
		AccountID:          g.AccountID,
		Status:             g.Status(now),
		ProgressPercentage: g.ProgressPercentage(),
		DaysRemaining:      g.DaysRemaining(now),
		CreatedAt:          g.CreatedAt,
		LastUpdatedAt:      g.LastUpdatedAt,
	}
}

// ToListGoalsResponse converts goals to response DTOs.
func ToListGoalsResponse(goals []domain.Goal, now time.Time) ListGoalsResponse {
	res := make([]GoalResponse, len(goals))
	for i, g := range goals {
		res[i] = ToGoalResponse(&g, now)
	}
	return ListGoalsResponse{Goals: res}
}

// ListGoalsResponse wraps the list of goals.
type ListGoalsResponse struct {
	Goals []GoalResponse `json:"goals"`
}
