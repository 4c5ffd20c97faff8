package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// The blob and export schema carry balance and amounts as JSON numbers,
// not decimal's default quoted strings.
func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// TransactionType is the direction of a transaction.
type TransactionType string

const (
	TypeIncome  TransactionType = "income"
	TypeExpense TransactionType = "expense"
)

// Valid reports whether t is one of the known transaction types.
func (t TransactionType) Valid() bool {
	return t == TypeIncome || t == TypeExpense
}

// Transaction is a single ledger entry.
type Transaction struct {
	ID       string          `json:"id"`
	Type     TransactionType `json:"type"`
	Amount   decimal.Decimal `json:"amount"` // signed: positive = income, negative = expense
	Category string          `json:"category"`
	Notes    string          `json:"notes"`
	Date     time.Time       `json:"date"`
}

// SignedAmount returns amount with the sign required by typ: positive for
// income, negative for expense. amount is expected to be non-negative.
func SignedAmount(typ TransactionType, amount decimal.Decimal) decimal.Decimal {
	if typ == TypeExpense {
		return amount.Neg()
	}
	return amount
}

// Day returns the transaction's local calendar date as "YYYY-MM-DD".
func (t Transaction) Day() string {
	return t.Date.Format("2006-01-02")
}
