package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType distinguishes money coming in from money going out.
type TransactionType string

const (
	TransactionIncome  TransactionType = "income"
	TransactionExpense TransactionType = "expense"
)

// Transaction is a single income or expense entry.
type Transaction struct {
	ID       int64           `json:"id"`
	Title    string          `json:"title"`
	Amount   decimal.Decimal `json:"amount"`
	Type     TransactionType `json:"type"`
	Category string          `json:"category"`
	Date     time.Time       `json:"date"`
}

// TransactionInput is the payload for creating a transaction.
// Date defaults to the creation time when omitted.
type TransactionInput struct {
	Title    string           `json:"title"`
	Amount   *decimal.Decimal `json:"amount"`
	Type     TransactionType  `json:"type"`
	Category string           `json:"category"`
	Date     *Timestamp       `json:"date"`
}

// TransactionPatch carries the fields of a partial transaction update.
type TransactionPatch struct {
	Title    *string          `json:"title"`
	Amount   *decimal.Decimal `json:"amount"`
	Type     *TransactionType `json:"type"`
	Category *string          `json:"category"`
	Date     *Timestamp       `json:"date"`
}

// NewTransaction builds a transaction from input.
func NewTransaction(in TransactionInput, now time.Time) Transaction {
	t := Transaction{
		Title:    in.Title,
		Type:     in.Type,
		Category: in.Category,
		Date:     now,
	}
	if in.Amount != nil {
		t.Amount = *in.Amount
	}
	if in.Date != nil {
		t.Date = in.Date.Time
	}
	return t
}

// Apply merges the patch into t.
func (p TransactionPatch) Apply(t *Transaction) {
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.Amount != nil {
		t.Amount = *p.Amount
	}
	if p.Type != nil {
		t.Type = *p.Type
	}
	if p.Category != nil {
		t.Category = *p.Category
	}
	if p.Date != nil {
		t.Date = p.Date.Time
	}
}
