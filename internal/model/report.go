package model

// Report is the full output of one analysis run.
type Report struct {
	Transactions []Transaction      `json:"-"`
	Basic        BasicStats         `json:"basic_stats"`
	Categories   CategoryStats      `json:"category_stats"`
	Monthly      MonthlyAnalysis    `json:"monthly_analysis"`
	History      HistoricalAnalysis `json:"historical_analysis"`
	Budget       BudgetTemplate     `json:"budget"`
	Comparison   BudgetComparison   `json:"budget_comparison"`
}
