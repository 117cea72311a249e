// Package model defines the ledger, statistics and budget types shared by spendlens.
package model

import (
	"strings"

	"github.com/shopspring/decimal"
)

// RawRow is one ledger entry as read from an input file, before any parsing.
type RawRow struct {
	Date        string
	Amount      string
	Description string
	Source      string // file the row came from
}

// Transaction is a ledger entry with its amount parsed.
// Amount.Valid is false when the raw amount is not a number; such
// transactions are kept but skipped by every aggregate.
type Transaction struct {
	Date        string
	Amount      decimal.NullDecimal
	RawAmount   string
	Description string
	Category    Category
}

// ParseAmount parses a signed decimal amount. Surrounding whitespace is ignored.
func ParseAmount(s string) decimal.NullDecimal {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.NullDecimal{}
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(d)
}

// NewTransaction converts a raw row into an uncategorized transaction.
func NewTransaction(r RawRow) Transaction {
	return Transaction{
		Date:        r.Date,
		Amount:      ParseAmount(r.Amount),
		RawAmount:   r.Amount,
		Description: r.Description,
	}
}

// TransactionsFromRows converts rows in order.
func TransactionsFromRows(rows []RawRow) []Transaction {
	txs := make([]Transaction, 0, len(rows))
	for _, r := range rows {
		txs = append(txs, NewTransaction(r))
	}
	return txs
}

// IsIncome reports whether the amount parsed and is zero or positive.
func (t Transaction) IsIncome() bool {
	return t.Amount.Valid && t.Amount.Decimal.Sign() >= 0
}

// IsExpense reports whether the amount parsed and is negative.
func (t Transaction) IsExpense() bool {
	return t.Amount.Valid && t.Amount.Decimal.Sign() < 0
}
