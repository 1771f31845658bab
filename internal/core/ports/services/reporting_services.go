package services

import (
	"context"
	"time"

	"github.com/M-Vasconez/fin/internal/core/domain"
)

// ReportRange is a resolved inclusive date window.
type ReportRange struct {
	Start time.Time
	End   time.Time
}

// ReportingSvcFacade is the reporting and insights engine surface.
type ReportingSvcFacade interface {
	// ResolveRange turns a named filter (or custom bounds) into a concrete
	// inclusive window anchored at the current clock.
	ResolveRange(filter domain.RangeFilter, start, end time.Time) (ReportRange, error)

	// Summary computes headline income, expense, balance and savings-rate
	// figures over the window.
	Summary(ctx context.Context, r ReportRange) (*domain.Summary, error)

	// Categories breaks one transaction type down per category, sorted by
	// amount descending with share-of-total percentages.
	Categories(ctx context.Context, r ReportRange, txType domain.TransactionType) ([]domain.CategoryBreakdown, error)

	// Trends buckets income and expenses over time. Bucket granularity follows
	// the window length: daily, weekly or monthly.
	Trends(ctx context.Context, r ReportRange, filter domain.RangeFilter) ([]domain.TrendPoint, error)

	// Insights runs the advisory battery over the window's figures.
	Insights(ctx context.Context, r ReportRange) ([]domain.Insight, error)

	// ListTransactions returns the raw transactions in the window, newest
	// first.
	ListTransactions(ctx context.Context, r ReportRange) ([]domain.Transaction, error)
}
