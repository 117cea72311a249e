package model

import "github.com/shopspring/decimal"

// BasicStats holds totals over the whole ledger.
type BasicStats struct {
	TotalIncome       decimal.Decimal `json:"total_income"`
	TotalExpense      decimal.Decimal `json:"total_expense"`
	Balance           decimal.Decimal `json:"balance"`
	TransactionsCount int             `json:"transactions_count"`
	IncomeCount       int             `json:"income_count"`
	ExpenseCount      int             `json:"expense_count"`
}

// CategoryStat holds aggregates for one category.
type CategoryStat struct {
	Category          Category        `json:"category"`
	Total             decimal.Decimal `json:"total"`
	ExpenseTotal      decimal.Decimal `json:"expense_total"`
	Count             int             `json:"count"`
	PercentOfExpenses decimal.Decimal `json:"percent_of_expenses"`
}

// CategoryStats lists categories in the order they were first seen.
type CategoryStats []CategoryStat

// Find returns the stats for c.
func (cs CategoryStats) Find(c Category) (CategoryStat, bool) {
	for _, s := range cs {
		if s.Category == c {
			return s, true
		}
	}
	return CategoryStat{}, false
}

// ExpenseTotal returns the sum of all category expense totals.
func (cs CategoryStats) ExpenseTotal() decimal.Decimal {
	total := decimal.Zero
	for _, s := range cs {
		total = total.Add(s.ExpenseTotal)
	}
	return total
}

// CategoryAmount pairs a category with a money amount.
type CategoryAmount struct {
	Category Category        `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
}

// AmountOf returns the amount recorded for c in list.
func AmountOf(list []CategoryAmount, c Category) (decimal.Decimal, bool) {
	for _, ca := range list {
		if ca.Category == c {
			return ca.Amount, true
		}
	}
	return decimal.Zero, false
}

// MonthStats holds income, expense and category spend for one YYYY-MM month.
type MonthStats struct {
	Month         string           `json:"month"`
	Income        decimal.Decimal  `json:"income"`
	Expense       decimal.Decimal  `json:"expense"`
	TopCategories []CategoryAmount `json:"top_categories"`
	Categories    []CategoryAmount `json:"categories"`
}

// MonthlyAnalysis lists months in ascending order.
type MonthlyAnalysis []MonthStats

// Find returns the stats for a YYYY-MM month.
func (m MonthlyAnalysis) Find(month string) (MonthStats, bool) {
	for _, ms := range m {
		if ms.Month == month {
			return ms, true
		}
	}
	return MonthStats{}, false
}

// Months returns the month keys in order.
func (m MonthlyAnalysis) Months() []string {
	keys := make([]string, 0, len(m))
	for _, ms := range m {
		keys = append(keys, ms.Month)
	}
	return keys
}
