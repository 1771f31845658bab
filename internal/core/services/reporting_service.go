package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/M-Vasconez/fin/internal/apperrors"
	"github.com/M-Vasconez/fin/internal/core/domain"
	portsrepo "github.com/M-Vasconez/fin/internal/core/ports/repositories"
	portssvc "github.com/M-Vasconez/fin/internal/core/ports/services"
)

// The all-time window is a fixed decade so the filter never needs a min/max
// scan over the transaction table.
var (
	allTimeStart = time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC)
	allTimeEnd   = time.Date(2030, time.December, 31, 0, 0, 0, 0, time.UTC)
)

// reportingService implements the reporting and insights engine over the
// transaction store.
type reportingService struct {
	BaseService
	transactionRepo portsrepo.TransactionRepository
	now             func() time.Time
}

// NewReportingService creates a new reporting service.
func NewReportingService(repo portsrepo.TransactionRepository) portssvc.ReportingSvcFacade {
	return &reportingService{
		transactionRepo: repo,
		now:             time.Now,
	}
}

// ResolveRange turns a named filter into a concrete inclusive window anchored
// at the current clock. Day boundaries are midnight-to-end-of-day so a
// transaction stamped anywhere inside the end day is included.
func (s *reportingService) ResolveRange(filter domain.RangeFilter, start, end time.Time) (portssvc.ReportRange, error) {
	now := s.now()
	today := startOfDay(now)

	switch filter {
	case domain.RangeToday:
		return window(today, today), nil
	case domain.RangeLast7Days:
		return window(today.AddDate(0, 0, -6), today), nil
	case domain.RangeLast30Days:
		return window(today.AddDate(0, 0, -29), today), nil
	case domain.RangeLast90Days:
		return window(today.AddDate(0, 0, -89), today), nil
	case domain.RangeThisMonth:
		first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		return window(first, today), nil
	case domain.RangeThisYear:
		first := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
		return window(first, today), nil
	case domain.RangeAllTime:
		return window(allTimeStart, allTimeEnd), nil
	case domain.RangeCustomRange:
		if start.IsZero() || end.IsZero() {
			return portssvc.ReportRange{}, fmt.Errorf("custom range requires start and end dates: %w", apperrors.ErrValidation)
		}
		if end.Before(start) {
			return portssvc.ReportRange{}, fmt.Errorf("custom range end precedes start: %w", apperrors.ErrValidation)
		}
		return window(startOfDay(start), startOfDay(end)), nil
	default:
		return portssvc.ReportRange{}, fmt.Errorf("unknown range filter %q: %w", filter, apperrors.ErrValidation)
	}
}

// Summary computes the headline figures over the window. Savings rate is
// balance/income as a percentage, defined as 0 when there is no income.
func (s *reportingService) Summary(ctx context.Context, r portssvc.ReportRange) (*domain.Summary, error) {
	transactions, err := s.listRange(ctx, r)
	if err != nil {
		return nil, err
	}

	summary := domain.Summary{TransactionCount: len(transactions)}
	for _, txn := range transactions {
		switch txn.Type {
		case domain.Income:
			summary.TotalIncome = summary.TotalIncome.Add(txn.Amount)
		case domain.Expense:
			summary.TotalExpenses = summary.TotalExpenses.Add(txn.Amount)
		}
	}
	summary.Balance = summary.TotalIncome.Sub(summary.TotalExpenses)
	if summary.TotalIncome.IsPositive() {
		summary.SavingsRate = summary.Balance.Div(summary.TotalIncome).Mul(decimal.NewFromInt(100))
	}

	return &summary, nil
}

// Categories breaks one transaction type down per category, sorted by amount
// descending, with each category's share of the type total.
func (s *reportingService) Categories(ctx context.Context, r portssvc.ReportRange, txType domain.TransactionType) ([]domain.CategoryBreakdown, error) {
	transactions, err := s.listRange(ctx, r)
	if err != nil {
		return nil, err
	}

	totals := make(map[string]decimal.Decimal)
	grandTotal := decimal.Zero
	for _, txn := range transactions {
		if txn.Type != txType {
			continue
		}
		totals[txn.Category] = totals[txn.Category].Add(txn.Amount)
		grandTotal = grandTotal.Add(txn.Amount)
	}

	breakdown := make([]domain.CategoryBreakdown, 0, len(totals))
	for category, amount := range totals {
		entry := domain.CategoryBreakdown{Category: category, Amount: amount}
		if grandTotal.IsPositive() {
			entry.Percentage = amount.Div(grandTotal).Mul(decimal.NewFromInt(100))
		}
		breakdown = append(breakdown, entry)
	}

	sort.Slice(breakdown, func(i, j int) bool {
		if breakdown[i].Amount.Equal(breakdown[j].Amount) {
			return breakdown[i].Category < breakdown[j].Category
		}
		return breakdown[i].Amount.GreaterThan(breakdown[j].Amount)
	})

	return breakdown, nil
}

// Trends buckets income and expenses over time. Short windows bucket by day,
// medium windows by week starting Sunday, anything longer by month. Points
// are ordered by bucket start, never by label, so series crossing a year
// boundary stay sorted.
func (s *reportingService) Trends(ctx context.Context, r portssvc.ReportRange, filter domain.RangeFilter) ([]domain.TrendPoint, error) {
	transactions, err := s.listRange(ctx, r)
	if err != nil {
		return nil, err
	}

	granularity := bucketGranularity(filter)
	buckets := make(map[time.Time]*domain.TrendPoint)
	for _, txn := range transactions {
		start, label := bucketFor(txn.Date, granularity)
		point, ok := buckets[start]
		if !ok {
			point = &domain.TrendPoint{Label: label, BucketStart: start}
			buckets[start] = point
		}
		switch txn.Type {
		case domain.Income:
			point.Income = point.Income.Add(txn.Amount)
		case domain.Expense:
			point.Expenses = point.Expenses.Add(txn.Amount)
		}
	}

	points := make([]domain.TrendPoint, 0, len(buckets))
	for _, point := range buckets {
		point.Net = point.Income.Sub(point.Expenses)
		points = append(points, *point)
	}
	sort.Slice(points, func(i, j int) bool {
		return points[i].BucketStart.Before(points[j].BucketStart)
	})

	return points, nil
}

// Insights runs the advisory threshold battery over the window's figures.
func (s *reportingService) Insights(ctx context.Context, r portssvc.ReportRange) ([]domain.Insight, error) {
	transactions, err := s.listRange(ctx, r)
	if err != nil {
		return nil, err
	}

	summary := domain.Summary{TransactionCount: len(transactions)}
	incomeSources := make(map[string]struct{})
	expenseByCategory := make(map[string]decimal.Decimal)
	for _, txn := range transactions {
		switch txn.Type {
		case domain.Income:
			summary.TotalIncome = summary.TotalIncome.Add(txn.Amount)
			incomeSources[txn.Category] = struct{}{}
		case domain.Expense:
			summary.TotalExpenses = summary.TotalExpenses.Add(txn.Amount)
			expenseByCategory[txn.Category] = expenseByCategory[txn.Category].Add(txn.Amount)
		}
	}
	summary.Balance = summary.TotalIncome.Sub(summary.TotalExpenses)
	if summary.TotalIncome.IsPositive() {
		summary.SavingsRate = summary.Balance.Div(summary.TotalIncome).Mul(decimal.NewFromInt(100))
	}

	insights := make([]domain.Insight, 0, 4)
	insights = append(insights, savingsRateInsight(summary))

	if top, ok := topExpenseCategory(expenseByCategory); ok {
		insights = append(insights, topExpenseInsight(top, expenseByCategory[top], summary.TotalExpenses))
	}

	if summary.TotalIncome.IsPositive() {
		insights = append(insights, incomeSourcesInsight(len(incomeSources)))
	}

	if summary.TransactionCount > 0 {
		total := summary.TotalIncome.Add(summary.TotalExpenses)
		avg := total.Div(decimal.NewFromInt(int64(summary.TransactionCount)))
		if avg.GreaterThan(decimal.NewFromInt(1000)) {
			insights = append(insights, domain.Insight{
				Severity:    domain.InsightNeutral,
				Title:       "Large average transaction size",
				Description: fmt.Sprintf("Your average transaction is %s. A few large movements dominate this period.", avg.StringFixed(2)),
			})
		}
	}

	return insights, nil
}

// ListTransactions returns the raw transactions in the window, newest first.
func (s *reportingService) ListTransactions(ctx context.Context, r portssvc.ReportRange) ([]domain.Transaction, error) {
	transactions, err := s.listRange(ctx, r)
	if err != nil {
		return nil, err
	}
	sort.Slice(transactions, func(i, j int) bool {
		return transactions[i].Date.After(transactions[j].Date)
	})
	return transactions, nil
}

func (s *reportingService) listRange(ctx context.Context, r portssvc.ReportRange) ([]domain.Transaction, error) {
	transactions, err := s.transactionRepo.ListTransactionsInRange(ctx, r.Start, r.End)
	if err != nil {
		s.LogError(ctx, err, "failed to list transactions in range")
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return transactions, nil
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// window widens end to the last instant of its day so the range is inclusive.
func window(start, end time.Time) portssvc.ReportRange {
	return portssvc.ReportRange{
		Start: start,
		End:   end.AddDate(0, 0, 1).Add(-time.Nanosecond),
	}
}

type trendGranularity int

const (
	granularityDay trendGranularity = iota
	granularityWeek
	granularityMonth
)

func bucketGranularity(filter domain.RangeFilter) trendGranularity {
	switch filter {
	case domain.RangeToday, domain.RangeLast7Days:
		return granularityDay
	case domain.RangeLast30Days, domain.RangeLast90Days:
		return granularityWeek
	default:
		return granularityMonth
	}
}

// bucketFor maps a transaction date to its bucket start and display label.
// Weeks start on Sunday.
func bucketFor(t time.Time, g trendGranularity) (time.Time, string) {
	day := startOfDay(t)
	switch g {
	case granularityDay:
		return day, day.Format("Jan 2")
	case granularityWeek:
		weekStart := day.AddDate(0, 0, -int(day.Weekday()))
		return weekStart, "Week of " + weekStart.Format("Jan 2")
	default:
		monthStart := time.Date(day.Year(), day.Month(), 1, 0, 0, 0, 0, day.Location())
		return monthStart, monthStart.Format("Jan 2006")
	}
}

func savingsRateInsight(summary domain.Summary) domain.Insight {
	rate := summary.SavingsRate
	switch {
	case rate.GreaterThanOrEqual(decimal.NewFromInt(20)):
		return domain.Insight{
			Severity:    domain.InsightPositive,
			Title:       "Strong savings rate",
			Description: fmt.Sprintf("You are saving %s%% of your income. Keep it up.", rate.StringFixed(1)),
		}
	case rate.GreaterThanOrEqual(decimal.NewFromInt(10)):
		return domain.Insight{
			Severity:    domain.InsightNeutral,
			Title:       "Moderate savings rate",
			Description: fmt.Sprintf("You are saving %s%% of your income. Aim for 20%% or more.", rate.StringFixed(1)),
		}
	case rate.IsPositive():
		return domain.Insight{
			Severity:    domain.InsightWarning,
			Title:       "Low savings rate",
			Description: fmt.Sprintf("You are only saving %s%% of your income.", rate.StringFixed(1)),
		}
	default:
		return domain.Insight{
			Severity:    domain.InsightNegative,
			Title:       "Spending exceeds income",
			Description: "You spent as much as or more than you earned in this period.",
		}
	}
}

func topExpenseCategory(expenseByCategory map[string]decimal.Decimal) (string, bool) {
	var top string
	var topAmount decimal.Decimal
	for category, amount := range expenseByCategory {
		if top == "" || amount.GreaterThan(topAmount) || (amount.Equal(topAmount) && category < top) {
			top = category
			topAmount = amount
		}
	}
	return top, top != ""
}

func topExpenseInsight(category string, amount, totalExpenses decimal.Decimal) domain.Insight {
	share := decimal.Zero
	if totalExpenses.IsPositive() {
		share = amount.Div(totalExpenses).Mul(decimal.NewFromInt(100))
	}
	if share.GreaterThan(decimal.NewFromInt(50)) {
		return domain.Insight{
			Severity:    domain.InsightWarning,
			Title:       "One category dominates spending",
			Description: fmt.Sprintf("%s accounts for %s%% of your expenses.", category, share.StringFixed(1)),
		}
	}
	return domain.Insight{
		Severity:    domain.InsightNeutral,
		Title:       "Top spending category",
		Description: fmt.Sprintf("Your largest expense category is %s at %s%% of spending.", category, share.StringFixed(1)),
	}
}

func incomeSourcesInsight(sources int) domain.Insight {
	switch {
	case sources >= 3:
		return domain.Insight{
			Severity:    domain.InsightPositive,
			Title:       "Diversified income",
			Description: fmt.Sprintf("Income came from %d different sources this period.", sources),
		}
	case sources == 1:
		return domain.Insight{
			Severity:    domain.InsightWarning,
			Title:       "Single income source",
			Description: "All income this period came from one source.",
		}
	default:
		return domain.Insight{
			Severity:    domain.InsightNeutral,
			Title:       "Income sources",
			Description: fmt.Sprintf("Income came from %d sources this period.", sources),
		}
	}
}
