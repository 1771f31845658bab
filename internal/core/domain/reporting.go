package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// RangeFilter names a predefined reporting window.
type RangeFilter string

const (
	RangeToday       RangeFilter = "today"
	RangeLast7Days   RangeFilter = "last7Days"
	RangeLast30Days  RangeFilter = "last30Days"
	RangeLast90Days  RangeFilter = "last90Days"
	RangeThisMonth   RangeFilter = "thisMonth"
	RangeThisYear    RangeFilter = "thisYear"
	RangeAllTime     RangeFilter = "allTime"
	RangeCustomRange RangeFilter = "customRange"
)

// Summary holds the headline figures for a reporting window.
type Summary struct {
	TotalIncome      decimal.Decimal `json:"totalIncome"`
	TotalExpenses    decimal.Decimal `json:"totalExpenses"`
	Balance          decimal.Decimal `json:"balance"`
	SavingsRate      decimal.Decimal `json:"savingsRate"` // Percent; 0 when income is 0
	TransactionCount int             `json:"transactionCount"`
}

// CategoryBreakdown is one category's share of a transaction type's total.
type CategoryBreakdown struct {
	Category   string          `json:"category"`
	Amount     decimal.Decimal `json:"amount"`
	Percentage decimal.Decimal `json:"percentage"`
}

// TrendPoint is one time bucket of the income/expense series. BucketStart is
// kept alongside the display label so ordering never depends on re-parsing
// the label.
type TrendPoint struct {
	Label       string          `json:"label"`
	BucketStart time.Time       `json:"bucketStart"`
	Income      decimal.Decimal `json:"income"`
	Expenses    decimal.Decimal `json:"expenses"`
	Net         decimal.Decimal `json:"net"`
}

// InsightSeverity tags how an insight should be read.
type InsightSeverity string

const (
	InsightPositive InsightSeverity = "positive"
	InsightNeutral  InsightSeverity = "neutral"
	InsightWarning  InsightSeverity = "warning"
	InsightNegative InsightSeverity = "negative"
)

// Insight is one advisory message produced by the threshold battery.
type Insight struct {
	Severity    InsightSeverity `json:"severity"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
}
