package pipeline

import (
	"github.com/theirongolddev/spendlens/internal/categorize"
	"github.com/theirongolddev/spendlens/internal/model"
	"github.com/theirongolddev/spendlens/internal/source"
)

// Options configures an analysis run. Zero values select the defaults.
type Options struct {
	Table    model.CategoryTable
	Mode     model.AverageMode
	MonthKey MonthKeyFunc
}

func (o Options) withDefaults() Options {
	if o.Table == nil {
		o.Table = model.DefaultCategoryTable()
	}
	if o.Mode == "" {
		o.Mode = model.AverageTopThree
	}
	if o.MonthKey == nil {
		o.MonthKey = source.MonthKey
	}
	return o
}

// Analyze runs every stage over rows and returns the combined report.
// It has no side effects; the same rows always produce the same report.
func Analyze(rows []model.RawRow, opts Options) model.Report {
	opts = opts.withDefaults()

	txs := categorize.CategorizeAll(model.TransactionsFromRows(rows), opts.Table)

	basic := BasicStats(txs)
	cats := CategoryStats(txs)
	months := MonthlyAnalysis(txs, opts.MonthKey)
	history := AnalyzeHistory(months, opts.Mode)
	budget := BuildBudget(history, basic)

	return model.Report{
		Transactions: txs,
		Basic:        basic,
		Categories:   cats,
		Monthly:      months,
		History:      history,
		Budget:       budget,
		Comparison:   CompareBudget(budget, cats),
	}
}
