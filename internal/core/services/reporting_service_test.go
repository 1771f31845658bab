package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/M-Vasconez/fin/internal/apperrors"
	"github.com/M-Vasconez/fin/internal/core/domain"
	portssvc "github.com/M-Vasconez/fin/internal/core/ports/services"
	"github.com/M-Vasconez/fin/internal/core/services"
)

type ReportingServiceTestSuite struct {
	suite.Suite
	mockTxnRepo *MockTransactionRepository
	service     portssvc.ReportingSvcFacade
	window      portssvc.ReportRange
}

func (suite *ReportingServiceTestSuite) SetupTest() {
	suite.mockTxnRepo = new(MockTransactionRepository)
	suite.service = services.NewReportingService(suite.mockTxnRepo)
	suite.window = portssvc.ReportRange{
		Start: time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2024, time.June, 30, 23, 59, 59, 0, time.UTC),
	}
}

func txn(id string, date time.Time, amount float64, category string, txType domain.TransactionType) domain.Transaction {
	return domain.Transaction{
		TransactionID: id,
		Date:          date,
		Amount:        decimal.NewFromFloat(amount),
		Category:      category,
		Type:          txType,
	}
}

func (suite *ReportingServiceTestSuite) expectTransactions(transactions []domain.Transaction) {
	suite.mockTxnRepo.On("ListTransactionsInRange", context.Background(), suite.window.Start, suite.window.End).
		Return(transactions, nil).Once()
}

func (suite *ReportingServiceTestSuite) TestSummary() {
	day := time.Date(2024, time.June, 10, 12, 0, 0, 0, time.UTC)
	suite.expectTransactions([]domain.Transaction{
		txn("t1", day, 4000, "Salary", domain.Income),
		txn("t2", day, 1000, "Housing", domain.Expense),
		txn("t3", day, 2000, "Food", domain.Expense),
	})

	summary, err := suite.service.Summary(context.Background(), suite.window)

	suite.Require().NoError(err)
	suite.True(summary.TotalIncome.Equal(decimal.NewFromInt(4000)))
	suite.True(summary.TotalExpenses.Equal(decimal.NewFromInt(3000)))
	suite.True(summary.Balance.Equal(decimal.NewFromInt(1000)))
	suite.True(summary.SavingsRate.Equal(decimal.NewFromInt(25)), "got %s", summary.SavingsRate)
	suite.Equal(3, summary.TransactionCount)
}

func (suite *ReportingServiceTestSuite) TestSummary_ZeroIncomeMeansZeroSavingsRate() {
	day := time.Date(2024, time.June, 10, 12, 0, 0, 0, time.UTC)
	suite.expectTransactions([]domain.Transaction{
		txn("t1", day, 500, "Food", domain.Expense),
	})

	summary, err := suite.service.Summary(context.Background(), suite.window)

	suite.Require().NoError(err)
	suite.True(summary.SavingsRate.IsZero())
	suite.True(summary.Balance.Equal(decimal.NewFromInt(-500)))
}

func (suite *ReportingServiceTestSuite) TestCategories_SortedDescendingWithPercentages() {
	day := time.Date(2024, time.June, 10, 12, 0, 0, 0, time.UTC)
	suite.expectTransactions([]domain.Transaction{
		txn("t1", day, 100, "Food", domain.Expense),
		txn("t2", day, 300, "Housing", domain.Expense),
		txn("t3", day, 100, "Food", domain.Expense),
		txn("t4", day, 9999, "Salary", domain.Income), // wrong type, excluded
	})

	breakdown, err := suite.service.Categories(context.Background(), suite.window, domain.Expense)

	suite.Require().NoError(err)
	suite.Require().Len(breakdown, 2)
	suite.Equal("Housing", breakdown[0].Category)
	suite.True(breakdown[0].Percentage.Equal(decimal.NewFromInt(60)), "got %s", breakdown[0].Percentage)
	suite.Equal("Food", breakdown[1].Category)
	suite.True(breakdown[1].Percentage.Equal(decimal.NewFromInt(40)), "got %s", breakdown[1].Percentage)
}

func (suite *ReportingServiceTestSuite) TestTrends_MonthlyBucketsStaySortedAcrossYears() {
	suite.window = portssvc.ReportRange{
		Start: time.Date(2023, time.November, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2024, time.February, 29, 23, 59, 59, 0, time.UTC),
	}
	suite.expectTransactions([]domain.Transaction{
		txn("t1", time.Date(2024, time.January, 5, 0, 0, 0, 0, time.UTC), 100, "Food", domain.Expense),
		txn("t2", time.Date(2023, time.December, 5, 0, 0, 0, 0, time.UTC), 200, "Food", domain.Expense),
		txn("t3", time.Date(2023, time.November, 5, 0, 0, 0, 0, time.UTC), 1000, "Salary", domain.Income),
	})

	points, err := suite.service.Trends(context.Background(), suite.window, domain.RangeCustomRange)

	suite.Require().NoError(err)
	suite.Require().Len(points, 3)
	suite.Equal("Nov 2023", points[0].Label)
	suite.Equal("Dec 2023", points[1].Label)
	suite.Equal("Jan 2024", points[2].Label)
	suite.True(points[0].Net.Equal(decimal.NewFromInt(1000)))
	suite.True(points[1].Net.Equal(decimal.NewFromInt(-200)))
}

func (suite *ReportingServiceTestSuite) TestTrends_WeeklyBucketsStartSunday() {
	suite.expectTransactions([]domain.Transaction{
		// 2024-06-12 is a Wednesday; its week starts Sunday 2024-06-09.
		txn("t1", time.Date(2024, time.June, 12, 10, 0, 0, 0, time.UTC), 50, "Food", domain.Expense),
		txn("t2", time.Date(2024, time.June, 9, 8, 0, 0, 0, time.UTC), 30, "Food", domain.Expense),
	})

	points, err := suite.service.Trends(context.Background(), suite.window, domain.RangeLast30Days)

	suite.Require().NoError(err)
	suite.Require().Len(points, 1)
	suite.Equal("Week of Jun 9", points[0].Label)
	suite.Equal(time.Date(2024, time.June, 9, 0, 0, 0, 0, time.UTC), points[0].BucketStart)
	suite.True(points[0].Expenses.Equal(decimal.NewFromInt(80)))
}

func (suite *ReportingServiceTestSuite) TestInsights_StrongSaverSingleSource() {
	day := time.Date(2024, time.June, 10, 12, 0, 0, 0, time.UTC)
	suite.expectTransactions([]domain.Transaction{
		txn("t1", day, 4000, "Salary", domain.Income),
		txn("t2", day, 1000, "Housing", domain.Expense),
		txn("t3", day, 500, "Food", domain.Expense),
	})

	insights, err := suite.service.Insights(context.Background(), suite.window)

	suite.Require().NoError(err)

	bySeverity := map[domain.InsightSeverity]int{}
	titles := map[string]domain.InsightSeverity{}
	for _, in := range insights {
		bySeverity[in.Severity]++
		titles[in.Title] = in.Severity
	}
	// Savings rate 62.5% is positive; one income source is a warning;
	// housing at 66.7% of spending is a concentration warning.
	suite.Equal(domain.InsightPositive, titles["Strong savings rate"])
	suite.Equal(domain.InsightWarning, titles["Single income source"])
	suite.Equal(domain.InsightWarning, titles["One category dominates spending"])
}

func (suite *ReportingServiceTestSuite) TestInsights_OverspendingIsNegative() {
	day := time.Date(2024, time.June, 10, 12, 0, 0, 0, time.UTC)
	suite.expectTransactions([]domain.Transaction{
		txn("t1", day, 1000, "Salary", domain.Income),
		txn("t2", day, 1500, "Housing", domain.Expense),
	})

	insights, err := suite.service.Insights(context.Background(), suite.window)

	suite.Require().NoError(err)
	suite.Require().NotEmpty(insights)
	suite.Equal(domain.InsightNegative, insights[0].Severity)
	suite.Equal("Spending exceeds income", insights[0].Title)
}

func (suite *ReportingServiceTestSuite) TestListTransactions_NewestFirst() {
	older := txn("t1", time.Date(2024, time.June, 2, 0, 0, 0, 0, time.UTC), 10, "Food", domain.Expense)
	newer := txn("t2", time.Date(2024, time.June, 20, 0, 0, 0, 0, time.UTC), 20, "Food", domain.Expense)
	suite.expectTransactions([]domain.Transaction{older, newer})

	transactions, err := suite.service.ListTransactions(context.Background(), suite.window)

	suite.Require().NoError(err)
	suite.Require().Len(transactions, 2)
	suite.Equal("t2", transactions[0].TransactionID)
	suite.Equal("t1", transactions[1].TransactionID)
}

func (suite *ReportingServiceTestSuite) TestResolveRange_CustomRange() {
	start := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, time.January, 31, 0, 0, 0, 0, time.UTC)

	r, err := suite.service.ResolveRange(domain.RangeCustomRange, start, end)

	suite.Require().NoError(err)
	suite.Equal(start, r.Start)
	// The end day is included in full.
	suite.True(r.End.After(time.Date(2024, time.January, 31, 23, 59, 59, 0, time.UTC)))
	suite.True(r.End.Before(time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC)))
}

func (suite *ReportingServiceTestSuite) TestResolveRange_CustomRangeValidation() {
	start := time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

	_, err := suite.service.ResolveRange(domain.RangeCustomRange, start, end)
	suite.ErrorIs(err, apperrors.ErrValidation)

	_, err = suite.service.ResolveRange(domain.RangeCustomRange, time.Time{}, time.Time{})
	suite.ErrorIs(err, apperrors.ErrValidation)

	_, err = suite.service.ResolveRange(domain.RangeFilter("lastCentury"), time.Time{}, time.Time{})
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *ReportingServiceTestSuite) TestResolveRange_AllTimeIsFixedDecade() {
	r, err := suite.service.ResolveRange(domain.RangeAllTime, time.Time{}, time.Time{})

	suite.Require().NoError(err)
	suite.Equal(2020, r.Start.Year())
	suite.Equal(2030, r.End.Year())
}

func TestReportingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}
