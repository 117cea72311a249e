// Package export serializes an analysis report as a JSON document.
package export

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/theirongolddev/spendlens/internal/model"

	"github.com/google/uuid"
)

// Document is the exported form of a report plus run metadata.
type Document struct {
	RunID       string                   `json:"run_id"`
	GeneratedAt time.Time                `json:"generated_at"`
	Sources     []string                 `json:"sources"`
	AverageMode model.AverageMode        `json:"average_mode"`
	Basic       model.BasicStats         `json:"basic_stats"`
	Categories  model.CategoryStats      `json:"category_stats"`
	Monthly     model.MonthlyAnalysis    `json:"monthly_analysis"`
	History     model.HistoricalAnalysis `json:"historical_analysis"`
	Budget      model.BudgetTemplate     `json:"budget"`
	Comparison  model.BudgetComparison   `json:"budget_comparison"`
}

// Build wraps report in a new Document stamped with a fresh run id.
func Build(report model.Report, sources []string, mode model.AverageMode) Document {
	return buildAt(report, sources, mode, uuid.New(), time.Now().UTC())
}

func buildAt(report model.Report, sources []string, mode model.AverageMode, id uuid.UUID, now time.Time) Document {
	if sources == nil {
		sources = []string{}
	}
	cats := report.Categories
	if cats == nil {
		cats = model.CategoryStats{}
	}
	months := report.Monthly
	if months == nil {
		months = model.MonthlyAnalysis{}
	}
	return Document{
		RunID:       id.String(),
		GeneratedAt: now,
		Sources:     sources,
		AverageMode: mode,
		Basic:       report.Basic,
		Categories:  cats,
		Monthly:     months,
		History:     report.History,
		Budget:      report.Budget,
		Comparison:  report.Comparison,
	}
}

// Write encodes doc as indented JSON.
func Write(w io.Writer, doc Document) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}
	return nil
}
