package domain

import (
	"github.com/shopspring/decimal"
)

// AccountType mirrors the payment methods an account can be backed by.
type AccountType string

const (
	Cash          AccountType = "cash"
	DebitCard     AccountType = "debit_card"
	CreditCard    AccountType = "credit_card"
	BankTransfer  AccountType = "bank_transfer"
	Check         AccountType = "check"
	DigitalWallet AccountType = "digital_wallet"
	Other         AccountType = "other"
)

// Account represents a financial account within the core domain.
// For credit_card accounts a negative balance denotes owed debt.
type Account struct {
	AccountID     string          `json:"accountID"`
	Name          string          `json:"name"`
	AccountType   AccountType     `json:"accountType"`
	Balance       decimal.Decimal `json:"balance"`
	AccountNumber string          `json:"accountNumber"` // Nullable, masked externally
	Description   string          `json:"description"`   // Nullable user description
	IsActive      bool            `json:"isActive"`
	AuditFields
}

// BalanceDisplay is the presentation form of an account balance:
// the unsigned magnitude plus a debt marker.
type BalanceDisplay struct {
	Amount decimal.Decimal `json:"amount"`
	IsDebt bool            `json:"isDebt"`
}

// DisplayBalance reports IsDebt exactly when the account is a credit card
// carrying a negative balance; the displayed magnitude is always |balance|.
func (a Account) DisplayBalance() BalanceDisplay {
	return BalanceDisplay{
		Amount: a.Balance.Abs(),
		IsDebt: a.AccountType == CreditCard && a.Balance.IsNegative(),
	}
}
