package export

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/theirongolddev/spendlens/internal/model"
	"github.com/theirongolddev/spendlens/internal/pipeline"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleReport() model.Report {
	return pipeline.Analyze([]model.RawRow{
		{Date: "2024-01-05", Amount: "1000", Description: "salary"},
		{Date: "2024-01-10", Amount: "-200", Description: "grocery store"},
		{Date: "2024-02-03", Amount: "-80.50", Description: "taxi home"},
	}, pipeline.Options{})
}

func TestWriteDocument(t *testing.T) {
	id := uuid.MustParse("6f1c2a9e-3b7d-4c55-9a0e-1d2b3c4d5e6f")
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	doc := buildAt(sampleReport(), []string{"/ledger/money.csv"}, model.AverageTopThree, id, now)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, doc))

	var got map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))

	assert.Equal(t, id.String(), got["run_id"])
	assert.Equal(t, "2024-03-01T12:00:00Z", got["generated_at"])
	assert.Equal(t, []any{"/ledger/money.csv"}, got["sources"])
	assert.Equal(t, "top-three", got["average_mode"])

	basic := got["basic_stats"].(map[string]any)
	income, err := decimal.NewFromString(basic["total_income"].(string))
	require.NoError(t, err)
	assert.True(t, income.Equal(decimal.NewFromInt(1000)))
	assert.EqualValues(t, 3, basic["transactions_count"])

	assert.Len(t, got["monthly_analysis"], 2)
	budget := got["budget"].(map[string]any)
	assert.Contains(t, []string{"good", "income below average", "spending above average"}, budget["verdict"])
	assert.Contains(t, got, "budget_comparison")
}

func TestBuildEmptyReportUsesArrays(t *testing.T) {
	doc := Build(pipeline.Analyze(nil, pipeline.Options{}), nil, model.AverageAllCategories)

	_, err := uuid.Parse(doc.RunID)
	assert.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, doc))
	assert.Contains(t, buf.String(), `"sources": []`)
	assert.Contains(t, buf.String(), `"category_stats": []`)
	assert.Contains(t, buf.String(), `"monthly_analysis": []`)
}

func TestBuildGivesFreshRunIDs(t *testing.T) {
	r := sampleReport()
	a := Build(r, nil, model.AverageTopThree)
	b := Build(r, nil, model.AverageTopThree)
	assert.NotEqual(t, a.RunID, b.RunID)
	assert.Equal(t, a.Basic, b.Basic)
}
