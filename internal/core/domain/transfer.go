package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transfer records money moved between two accounts. Transfers are immutable
// once created; there is no update or delete path.
type Transfer struct {
	TransferID    string          `json:"transferID"`
	FromAccountID string          `json:"fromAccountID"`
	ToAccountID   string          `json:"toAccountID"`
	Amount        decimal.Decimal `json:"amount"`
	Fee           decimal.Decimal `json:"fee"` // Absorbed by the transfer, never credited
	Description   string          `json:"description"`
	Date          time.Time       `json:"date"`
	AuditFields
}

// TransferKind classifies a transfer by the account types involved, used to
// phrase the result message.
type TransferKind string

const (
	KindTransfer          TransferKind = "transfer"
	KindCreditCardPayment TransferKind = "credit_card_payment"
	KindCashAdvance       TransferKind = "cash_advance"
)

// ClassifyTransfer picks the transfer kind: paying a credit card wins over
// drawing from one.
func ClassifyTransfer(from, to Account) TransferKind {
	switch {
	case to.AccountType == CreditCard:
		return KindCreditCardPayment
	case from.AccountType == CreditCard:
		return KindCashAdvance
	default:
		return KindTransfer
	}
}
