package domain_test

import (
	"testing"
	"time"

	"github.com/M-Vasconez/fin/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

var now = time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

func TestGoal_Status(t *testing.T) {
	tests := []struct {
		name string
		goal domain.Goal
		want domain.GoalStatus
	}{
		{
			name: "fully funded goal is completed",
			goal: domain.Goal{
				TargetAmount:  decimal.NewFromInt(10000),
				CurrentAmount: decimal.NewFromInt(10000),
				TargetDate:    now.AddDate(0, 6, 0),
			},
			want: domain.GoalCompleted,
		},
		{
			name: "fully funded but past due still reports completed",
			goal: domain.Goal{
				TargetAmount:  decimal.NewFromInt(10000),
				CurrentAmount: decimal.NewFromInt(10000),
				TargetDate:    now.AddDate(0, -1, 0),
			},
			want: domain.GoalCompleted,
		},
		{
			name: "past due and underfunded is overdue",
			goal: domain.Goal{
				TargetAmount:  decimal.NewFromInt(5000),
				CurrentAmount: decimal.NewFromInt(2100),
				TargetDate:    now.AddDate(0, -1, 0),
			},
			want: domain.GoalOverdue,
		},
		{
			name: "partially funded before target date is in progress",
			goal: domain.Goal{
				TargetAmount:  decimal.NewFromInt(5000),
				CurrentAmount: decimal.NewFromInt(2100),
				TargetDate:    now.AddDate(0, 2, 0),
			},
			want: domain.GoalInProgress,
		},
		{
			name: "unfunded goal before target date is not started",
			goal: domain.Goal{
				TargetAmount:  decimal.NewFromInt(5000),
				CurrentAmount: decimal.Zero,
				TargetDate:    now.AddDate(0, 2, 0),
			},
			want: domain.GoalNotStarted,
		},
		{
			name: "zero target never completes",
			goal: domain.Goal{
				TargetAmount:  decimal.Zero,
				CurrentAmount: decimal.NewFromInt(100),
				TargetDate:    now.AddDate(0, 2, 0),
			},
			want: domain.GoalInProgress,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.goal.Status(now))
		})
	}
}

func TestGoal_ProgressPercentage(t *testing.T) {
	tests := []struct {
		name    string
		current int64
		target  int64
		want    string
	}{
		{name: "partial progress", current: 3500, target: 10000, want: "35"},
		{name: "exactly funded", current: 5000, target: 5000, want: "100"},
		{name: "overfunded clamps to 100", current: 12000, target: 10000, want: "100"},
		{name: "zero target yields zero", current: 500, target: 0, want: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := domain.Goal{
				CurrentAmount: decimal.NewFromInt(tt.current),
				TargetAmount:  decimal.NewFromInt(tt.target),
			}
			assert.True(t, g.ProgressPercentage().Equal(decimal.RequireFromString(tt.want)),
				"got %s", g.ProgressPercentage())
		})
	}
}

func TestGoal_DaysRemaining(t *testing.T) {
	g := domain.Goal{TargetDate: now.AddDate(0, 0, 10)}
	assert.Equal(t, 10, g.DaysRemaining(now))

	overdue := domain.Goal{TargetDate: now.AddDate(0, 0, -3)}
	assert.Equal(t, -3, overdue.DaysRemaining(now))

	partialDay := domain.Goal{TargetDate: now.Add(36 * time.Hour)}
	assert.Equal(t, 2, partialDay.DaysRemaining(now))
}

func TestAccount_DisplayBalance(t *testing.T) {
	cc := domain.Account{AccountType: domain.CreditCard, Balance: decimal.NewFromFloat(-850)}
	disp := cc.DisplayBalance()
	assert.True(t, disp.IsDebt)
	assert.True(t, disp.Amount.Equal(decimal.NewFromFloat(850)))

	checking := domain.Account{AccountType: domain.BankTransfer, Balance: decimal.NewFromFloat(-120)}
	disp = checking.DisplayBalance()
	assert.False(t, disp.IsDebt, "only credit cards mark negative balances as debt")
	assert.True(t, disp.Amount.Equal(decimal.NewFromFloat(120)))

	positiveCC := domain.Account{AccountType: domain.CreditCard, Balance: decimal.NewFromFloat(25)}
	assert.False(t, positiveCC.DisplayBalance().IsDebt)
}
