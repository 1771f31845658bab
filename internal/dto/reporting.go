package dto

import (
	"time"

	"github.com/M-Vasconez/fin/internal/core/domain"
)

// ReportParams defines query parameters shared by every reporting endpoint.
// StartDate/EndDate are only consulted when filter is customRange.
type ReportParams struct {
	Filter    domain.RangeFilter `form:"filter,default=thisMonth" binding:"omitempty,oneof=today last7Days last30Days last90Days thisMonth thisYear allTime customRange"`
	StartDate string             `form:"startDate"` // 2006-01-02
	EndDate   string             `form:"endDate"`   // 2006-01-02
}

// CategoryParams adds the transaction type to ReportParams for breakdowns.
type CategoryParams struct {
	ReportParams
	Type domain.TransactionType `form:"type,default=expense" binding:"omitempty,oneof=income expense"`
}

// SummaryResponse wraps the headline figures.
type SummaryResponse struct {
	Filter  domain.RangeFilter `json:"filter"`
	Start   time.Time          `json:"start"`
	End     time.Time          `json:"end"`
	Summary domain.Summary     `json:"summary"`
}

// CategoryBreakdownResponse wraps a per-category breakdown.
type CategoryBreakdownResponse struct {
	Type       domain.TransactionType     `json:"type"`
	Categories []domain.CategoryBreakdown `json:"categories"`
}

// TrendsResponse wraps the time-bucketed series.
type TrendsResponse struct {
	Points []domain.TrendPoint `json:"points"`
}

// InsightsResponse wraps the advisory battery output.
type InsightsResponse struct {
	Insights []domain.Insight `json:"insights"`
}

// TransactionResponse defines the data returned for a transaction.
type TransactionResponse struct {
	TransactionID string                 `json:"transactionID"`
	Date          time.Time              `json:"date"`
	Amount        string                 `json:"amount"`
	Description   string                 `json:"description"`
	Category      string                 `json:"category"`
	Type          domain.TransactionType `json:"type"`
	PaymentMethod domain.AccountType     `json:"paymentMethod"`
}

// ListTransactionsResponse wraps the list of transactions.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
}

// ToListTransactionsResponse converts transactions to response DTOs.
func ToListTransactionsResponse(transactions []domain.Transaction) ListTransactionsResponse {
	res := make([]TransactionResponse, len(transactions))
	for i, txn := range transactions {
		res[i] = TransactionResponse{
			TransactionID: txn.TransactionID,
			Date:          txn.Date,
			Amount:        txn.Amount.String(),
			Description:   txn.Description,
			Category:      txn.Category,
			Type:          txn.Type,
			PaymentMethod: txn.PaymentMethod,
		}
	}
	return ListTransactionsResponse{Transactions: res}
}
