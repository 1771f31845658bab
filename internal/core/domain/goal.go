package domain

import (
	"math"
	"time"

	"github.com/shopspring/decimal"
)

// GoalCategory is the closed set of savings-goal categories.
type GoalCategory string

const (
	GoalTravel     GoalCategory = "travel"
	GoalEmergency  GoalCategory = "emergency"
	GoalVehicle    GoalCategory = "vehicle"
	GoalHome       GoalCategory = "home"
	GoalEducation  GoalCategory = "education"
	GoalInvestment GoalCategory = "investment"
	GoalOther      GoalCategory = "other"
)

// GoalStatus is the derived lifecycle state of a goal.
type GoalStatus string

const (
	GoalCompleted  GoalStatus = "completed"
	GoalInProgress GoalStatus = "inProgress"
	GoalOverdue    GoalStatus = "overdue"
	GoalNotStarted GoalStatus = "notStarted"
)

// Goal is a savings target funded over time. AccountID is a weak reference
// used for lookups only; no ownership is enforced.
type Goal struct {
	GoalID        string          `json:"goalID"`
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	TargetAmount  decimal.Decimal `json:"targetAmount"`
	CurrentAmount decimal.Decimal `json:"currentAmount"`
	TargetDate    time.Time       `json:"targetDate"`
	Category      GoalCategory    `json:"category"`
	AccountID     string          `json:"accountID"`
	AuditFields
}

// Status classifies the goal relative to now. Completion is checked before
// overdue, so a fully funded goal past its target date reports completed.
// A non-positive target can never complete; it falls through to the
// date/amount checks.
func (g Goal) Status(now time.Time) GoalStatus {
	if g.TargetAmount.IsPositive() && g.CurrentAmount.GreaterThanOrEqual(g.TargetAmount) {
		return GoalCompleted
	}
	if g.TargetDate.Before(now) {
		return GoalOverdue
	}
	if g.CurrentAmount.IsPositive() {
		return GoalInProgress
	}
	return GoalNotStarted
}

// ProgressPercentage returns current/target*100 clamped to 100.
// A non-positive target yields 0 rather than dividing by zero.
func (g Goal) ProgressPercentage() decimal.Decimal {
	if !g.TargetAmount.IsPositive() {
		return decimal.Zero
	}
	hundred := decimal.NewFromInt(100)
	pct := g.CurrentAmount.Div(g.TargetAmount).Mul(hundred)
	if pct.GreaterThan(hundred) {
		return hundred
	}
	return pct
}

// DaysRemaining is the ceiling of the calendar-day difference between the
// target date and now; negative values mean overdue by that many days.
func (g Goal) DaysRemaining(now time.Time) int {
	diff := g.TargetDate.Sub(now)
	return int(math.Ceil(diff.Hours() / 24))
}
