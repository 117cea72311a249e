package model

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ErrUnknownAverageMode is returned for an average mode that is not recognized.
var ErrUnknownAverageMode = errors.New("unknown average mode")

// AverageMode selects which per-month category amounts feed historical averages.
type AverageMode string

const (
	// AverageTopThree averages only the amounts that made each month's top three.
	AverageTopThree AverageMode = "top-three"
	// AverageAllCategories averages every category's monthly spend.
	AverageAllCategories AverageMode = "all-categories"
)

// AverageModes lists the accepted modes, default first.
var AverageModes = []AverageMode{AverageTopThree, AverageAllCategories}

// ParseAverageMode parses a mode name. An empty string selects the default.
func ParseAverageMode(s string) (AverageMode, error) {
	switch AverageMode(s) {
	case "":
		return AverageTopThree, nil
	case AverageTopThree, AverageAllCategories:
		return AverageMode(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownAverageMode, s)
}

// HistoricalAnalysis holds month-over-month averages.
type HistoricalAnalysis struct {
	AverageMonthlySpending []CategoryAmount `json:"average_monthly_spending"`
	AverageMonthlyIncome   decimal.Decimal  `json:"average_monthly_income"`
	TotalAvgSpending       decimal.Decimal  `json:"total_avg_spending"`
	TopCategories          []CategoryAmount `json:"top_categories"`
	MonthCount             int              `json:"month_count"`
	Mode                   AverageMode      `json:"mode"`
}

// Verdict is the qualitative outcome of the current period against history.
type Verdict int

const (
	VerdictGood Verdict = iota
	VerdictIncomeBelowAverage
	VerdictSpendingAboveAverage
)

func (v Verdict) String() string {
	switch v {
	case VerdictGood:
		return "good"
	case VerdictIncomeBelowAverage:
		return "income below average"
	case VerdictSpendingAboveAverage:
		return "spending above average"
	}
	return "unknown"
}

// MarshalText encodes the verdict by name.
func (v Verdict) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// BudgetTemplate holds spending limits and recommendations for the next period.
type BudgetTemplate struct {
	Verdict Verdict `json:"verdict"`
	Advice  string  `json:"advice"`
	Goal    string  `json:"goal"`

	// Focus and Adjustment carry the numbers behind Advice: the category to
	// cut (empty unless the verdict is good) and the amount to cut or raise.
	Focus      Category        `json:"focus,omitempty"`
	Adjustment decimal.Decimal `json:"adjustment"`

	BudgetLimits  []CategoryAmount `json:"budget_limits"`
	SavingsTarget decimal.Decimal  `json:"savings_target"`
}

// Limit returns the spending limit for c.
func (b BudgetTemplate) Limit(c Category) (decimal.Decimal, bool) {
	return AmountOf(b.BudgetLimits, c)
}

// BudgetStatus says whether spending stayed within a limit.
type BudgetStatus int

const (
	StatusWithin BudgetStatus = iota
	StatusExceeded
)

func (s BudgetStatus) String() string {
	if s == StatusExceeded {
		return "exceeded"
	}
	return "within budget"
}

// MarshalText encodes the status by name.
func (s BudgetStatus) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// BudgetLine compares one category's limit with its actual spend.
type BudgetLine struct {
	Category   Category        `json:"category"`
	Budget     decimal.Decimal `json:"budget"`
	Actual     decimal.Decimal `json:"actual"`
	Difference decimal.Decimal `json:"difference"`
	Status     BudgetStatus    `json:"status"`
}

// BudgetComparison holds actual spending against budget limits.
type BudgetComparison struct {
	Lines          []BudgetLine    `json:"comparison"`
	WithinBudget   []Category      `json:"within_budget"`
	ExceededBudget []Category      `json:"exceeded_budget"`
	TotalBudget    decimal.Decimal `json:"total_budget"`
	TotalActual    decimal.Decimal `json:"total_actual"`
	OverallStatus  BudgetStatus    `json:"overall_status"`
}

// Line returns the comparison line for c.
func (bc BudgetComparison) Line(c Category) (BudgetLine, bool) {
	for _, l := range bc.Lines {
		if l.Category == c {
			return l, true
		}
	}
	return BudgetLine{}, false
}

// Overspend returns how far total actual spending exceeds the total budget, or zero.
func (bc BudgetComparison) Overspend() decimal.Decimal {
	over := bc.TotalActual.Sub(bc.TotalBudget)
	if over.Sign() < 0 {
		return decimal.Zero
	}
	return over
}
