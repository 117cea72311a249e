// Package pipeline loads ledger files and turns them into statistics,
// budgets and budget comparisons.
package pipeline

import (
	"sort"

	"github.com/theirongolddev/spendlens/internal/model"

	"github.com/shopspring/decimal"
)

// moneyPlaces is the precision reported for money and percentages.
const moneyPlaces = 2

var hundred = decimal.NewFromInt(100)

// MonthKeyFunc maps a ledger date to its YYYY-MM month, or false if the date
// cannot be parsed.
type MonthKeyFunc func(date string) (string, bool)

// BasicStats totals income and expense over all transactions. Transactions
// with an unparsable amount are left out of the sums and the income/expense
// counts, but TransactionsCount is always len(txs).
func BasicStats(txs []model.Transaction) model.BasicStats {
	stats := model.BasicStats{TransactionsCount: len(txs)}
	income := decimal.Zero
	expense := decimal.Zero

	for _, tx := range txs {
		switch {
		case tx.IsIncome():
			income = income.Add(tx.Amount.Decimal)
			stats.IncomeCount++
		case tx.IsExpense():
			expense = expense.Add(tx.Amount.Decimal.Abs())
			stats.ExpenseCount++
		}
	}

	stats.TotalIncome = income.RoundBank(moneyPlaces)
	stats.TotalExpense = expense.RoundBank(moneyPlaces)
	stats.Balance = stats.TotalIncome.Sub(stats.TotalExpense)
	return stats
}

type categoryAcc struct {
	total   decimal.Decimal
	expense decimal.Decimal
	count   int
}

// CategoryStats aggregates transactions per category, in first-seen order.
// Every parseable transaction counts toward its category total; only negative
// amounts count toward the expense total and the expense share.
func CategoryStats(txs []model.Transaction) model.CategoryStats {
	accs := make(map[model.Category]*categoryAcc)
	var order []model.Category
	totalExpense := decimal.Zero

	for _, tx := range txs {
		if !tx.Amount.Valid {
			continue
		}
		cat := tx.Category.OrOther()
		acc, ok := accs[cat]
		if !ok {
			acc = &categoryAcc{}
			accs[cat] = acc
			order = append(order, cat)
		}

		amt := tx.Amount.Decimal
		if amt.Sign() < 0 {
			acc.expense = acc.expense.Add(amt.Abs())
			totalExpense = totalExpense.Add(amt.Abs())
		}
		acc.total = acc.total.Add(amt)
		acc.count++
	}

	result := make(model.CategoryStats, 0, len(order))
	for _, cat := range order {
		acc := accs[cat]
		pct := decimal.Zero
		if totalExpense.Sign() > 0 {
			pct = acc.expense.Mul(hundred).Div(totalExpense)
		}
		result = append(result, model.CategoryStat{
			Category:          cat,
			Total:             acc.total.RoundBank(moneyPlaces),
			ExpenseTotal:      acc.expense.RoundBank(moneyPlaces),
			Count:             acc.count,
			PercentOfExpenses: pct.RoundBank(moneyPlaces),
		})
	}
	return result
}

type monthAcc struct {
	income   decimal.Decimal
	expense  decimal.Decimal
	catSpend map[model.Category]decimal.Decimal
	catOrder []model.Category
}

// topCategoryCount is the length of each month's top spending list.
const topCategoryCount = 3

// MonthlyAnalysis groups transactions by month. Transactions whose date or
// amount cannot be parsed are left out entirely. Months are returned in
// ascending order; each month's category list is sorted by expense,
// descending, keeping first-seen order on ties.
func MonthlyAnalysis(txs []model.Transaction, monthOf MonthKeyFunc) model.MonthlyAnalysis {
	months := make(map[string]*monthAcc)

	for _, tx := range txs {
		key, ok := monthOf(tx.Date)
		if !ok || !tx.Amount.Valid {
			continue
		}
		acc, ok := months[key]
		if !ok {
			acc = &monthAcc{catSpend: make(map[model.Category]decimal.Decimal)}
			months[key] = acc
		}

		amt := tx.Amount.Decimal
		if amt.Sign() >= 0 {
			acc.income = acc.income.Add(amt)
			continue
		}
		cat := tx.Category.OrOther()
		if _, seen := acc.catSpend[cat]; !seen {
			acc.catOrder = append(acc.catOrder, cat)
		}
		acc.expense = acc.expense.Add(amt.Abs())
		acc.catSpend[cat] = acc.catSpend[cat].Add(amt.Abs())
	}

	keys := make([]string, 0, len(months))
	for k := range months {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	result := make(model.MonthlyAnalysis, 0, len(keys))
	for _, k := range keys {
		acc := months[k]
		cats := make([]model.CategoryAmount, 0, len(acc.catOrder))
		for _, cat := range acc.catOrder {
			cats = append(cats, model.CategoryAmount{Category: cat, Amount: acc.catSpend[cat]})
		}
		cats = rankDescending(cats)
		for i := range cats {
			cats[i].Amount = cats[i].Amount.RoundBank(moneyPlaces)
		}

		result = append(result, model.MonthStats{
			Month:         k,
			Income:        acc.income.RoundBank(moneyPlaces),
			Expense:       acc.expense.RoundBank(moneyPlaces),
			TopCategories: firstN(cats, topCategoryCount),
			Categories:    cats,
		})
	}
	return result
}

// rankDescending sorts amounts largest first. Equal amounts keep their order.
func rankDescending(list []model.CategoryAmount) []model.CategoryAmount {
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].Amount.GreaterThan(list[j].Amount)
	})
	return list
}

// firstN returns a copy of at most n leading entries.
func firstN(list []model.CategoryAmount, n int) []model.CategoryAmount {
	if len(list) < n {
		n = len(list)
	}
	out := make([]model.CategoryAmount, n)
	copy(out, list[:n])
	return out
}
