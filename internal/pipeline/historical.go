package pipeline

import (
	"github.com/theirongolddev/spendlens/internal/model"

	"github.com/shopspring/decimal"
)

// AnalyzeHistory reduces monthly analysis to monthly averages.
//
// In model.AverageTopThree mode the per-category average only sees the
// amounts that made each month's top three list; a category is still divided
// by the total number of months, not by the months it appeared in. In
// model.AverageAllCategories mode every category's monthly spend is averaged.
//
// TopCategories ranks categories by their summed (not averaged) amounts.
// With no months every average is zero.
func AnalyzeHistory(months model.MonthlyAnalysis, mode model.AverageMode) model.HistoricalAnalysis {
	if mode == "" {
		mode = model.AverageTopThree
	}

	totalSpending := decimal.Zero
	totalIncome := decimal.Zero
	sums := make(map[model.Category]decimal.Decimal)
	var order []model.Category

	for _, m := range months {
		totalSpending = totalSpending.Add(m.Expense)
		totalIncome = totalIncome.Add(m.Income)

		source := m.TopCategories
		if mode == model.AverageAllCategories {
			source = m.Categories
		}
		for _, ca := range source {
			if _, ok := sums[ca.Category]; !ok {
				order = append(order, ca.Category)
			}
			sums[ca.Category] = sums[ca.Category].Add(ca.Amount)
		}
	}

	h := model.HistoricalAnalysis{
		AverageMonthlySpending: make([]model.CategoryAmount, 0, len(order)),
		AverageMonthlyIncome:   decimal.Zero,
		TotalAvgSpending:       decimal.Zero,
		TopCategories:          []model.CategoryAmount{},
		MonthCount:             len(months),
		Mode:                   mode,
	}

	totals := make([]model.CategoryAmount, 0, len(order))
	for _, cat := range order {
		totals = append(totals, model.CategoryAmount{Category: cat, Amount: sums[cat]})
	}

	if h.MonthCount > 0 {
		n := decimal.NewFromInt(int64(h.MonthCount))
		h.AverageMonthlyIncome = totalIncome.Div(n).RoundBank(moneyPlaces)
		h.TotalAvgSpending = totalSpending.Div(n).RoundBank(moneyPlaces)
		for _, t := range totals {
			h.AverageMonthlySpending = append(h.AverageMonthlySpending, model.CategoryAmount{
				Category: t.Category,
				Amount:   t.Amount.Div(n).RoundBank(moneyPlaces),
			})
		}
	}

	ranked := rankDescending(totals)
	h.TopCategories = firstN(ranked, topCategoryCount)
	for i := range h.TopCategories {
		h.TopCategories[i].Amount = h.TopCategories[i].Amount.RoundBank(moneyPlaces)
	}
	return h
}
