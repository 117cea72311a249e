package pipeline

import (
	"fmt"

	"github.com/theirongolddev/spendlens/internal/model"

	"github.com/shopspring/decimal"
)

var (
	limitFactor   = decimal.RequireFromString("0.9")
	savingsRate   = decimal.RequireFromString("0.2")
	reductionRate = decimal.RequireFromString("0.1")
)

// BuildBudget derives next-period limits from history and judges the current
// period against it.
//
// Each category with a historical average gets a limit of 90% of that
// average, rounded to a whole amount. The verdict is good when income is at
// least the average and spending at most the average; otherwise an income
// shortfall takes precedence over overspending.
func BuildBudget(h model.HistoricalAnalysis, current model.BasicStats) model.BudgetTemplate {
	b := model.BudgetTemplate{
		BudgetLimits: make([]model.CategoryAmount, 0, len(h.AverageMonthlySpending)),
	}
	for _, avg := range h.AverageMonthlySpending {
		b.BudgetLimits = append(b.BudgetLimits, model.CategoryAmount{
			Category: avg.Category,
			Amount:   avg.Amount.Mul(limitFactor).RoundBank(0),
		})
	}

	income := current.TotalIncome
	expense := current.TotalExpense

	switch {
	case income.GreaterThanOrEqual(h.AverageMonthlyIncome) && expense.LessThanOrEqual(h.TotalAvgSpending):
		b.Verdict = model.VerdictGood
		if len(h.TopCategories) > 0 {
			top := h.TopCategories[0]
			b.Focus = top.Category
			b.Adjustment = top.Amount.Mul(reductionRate).RoundBank(0)
			b.Advice = fmt.Sprintf("Tip: try cutting %s spending by %s.", top.Category, b.Adjustment)
		} else {
			b.Advice = "Tip: keep it up!"
		}
	case income.LessThan(h.AverageMonthlyIncome):
		b.Verdict = model.VerdictIncomeBelowAverage
		b.Adjustment = h.AverageMonthlyIncome.Sub(income)
		b.Advice = fmt.Sprintf("Tip: look for ways to raise income by %s.", b.Adjustment.RoundBank(0))
	default:
		b.Verdict = model.VerdictSpendingAboveAverage
		b.Adjustment = expense.Sub(h.TotalAvgSpending)
		b.Advice = fmt.Sprintf("Tip: try to cut expenses by %s.", b.Adjustment.RoundBank(0))
	}

	b.SavingsTarget = income.Mul(savingsRate).RoundBank(0)
	b.Goal = fmt.Sprintf("Goal: save %s by the end of the month.", b.SavingsTarget)
	return b
}
