package pipeline

import (
	"github.com/theirongolddev/spendlens/internal/model"

	"github.com/shopspring/decimal"
)

// CompareBudget checks each budgeted category's actual expense against its
// limit. Categories without a limit are not compared, and TotalActual only
// sums budgeted categories.
func CompareBudget(b model.BudgetTemplate, stats model.CategoryStats) model.BudgetComparison {
	cmp := model.BudgetComparison{
		Lines:          make([]model.BudgetLine, 0, len(b.BudgetLimits)),
		WithinBudget:   []model.Category{},
		ExceededBudget: []model.Category{},
		TotalBudget:    decimal.Zero,
		TotalActual:    decimal.Zero,
	}

	for _, limit := range b.BudgetLimits {
		actual := decimal.Zero
		if s, ok := stats.Find(limit.Category); ok {
			actual = s.ExpenseTotal
		}

		line := model.BudgetLine{
			Category:   limit.Category,
			Budget:     limit.Amount,
			Actual:     actual,
			Difference: limit.Amount.Sub(actual).Abs(),
			Status:     model.StatusWithin,
		}
		if actual.GreaterThan(limit.Amount) {
			line.Status = model.StatusExceeded
			cmp.ExceededBudget = append(cmp.ExceededBudget, limit.Category)
		} else {
			cmp.WithinBudget = append(cmp.WithinBudget, limit.Category)
		}
		cmp.Lines = append(cmp.Lines, line)

		cmp.TotalBudget = cmp.TotalBudget.Add(limit.Amount)
		cmp.TotalActual = cmp.TotalActual.Add(actual)
	}

	if cmp.TotalActual.GreaterThan(cmp.TotalBudget) {
		cmp.OverallStatus = model.StatusExceeded
	}
	return cmp
}
