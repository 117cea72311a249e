package categorize

import (
	"testing"

	"github.com/theirongolddev/spendlens/internal/model"

	"github.com/stretchr/testify/assert"
)

func testTable() model.CategoryTable {
	return model.CategoryTable{
		{Name: model.Food, Keywords: []string{"grocery", "cafe"}},
		{Name: model.Transport, Keywords: []string{"taxi"}},
		{Name: model.Entertainment, Keywords: []string{"cafe concert"}},
	}
}

func TestCategorize(t *testing.T) {
	tests := []struct {
		desc string
		want model.Category
	}{
		{"Grocery Store", model.Food},
		{"night TAXI home", model.Transport},
		{"", model.Other},
		{"salary", model.Other},
		// Food is registered first, so its keyword wins.
		{"cafe concert tickets", model.Food},
		{"taxi to the grocery", model.Food},
	}
	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			assert.Equal(t, tt.want, Categorize(tt.desc, testTable()))
		})
	}
}

func TestCategorizeEmptyTable(t *testing.T) {
	assert.Equal(t, model.Other, Categorize("grocery", nil))
}

func TestCategorizeAllDoesNotMutateInput(t *testing.T) {
	in := model.TransactionsFromRows([]model.RawRow{
		{Date: "2024-01-05", Amount: "1000", Description: "salary"},
		{Date: "2024-01-10", Amount: "-200", Description: "grocery store"},
	})

	out := CategorizeAll(in, testTable())

	assert.Len(t, out, 2)
	assert.Equal(t, model.Other, out[0].Category)
	assert.Equal(t, model.Food, out[1].Category)
	assert.Equal(t, "grocery store", out[1].Description)
	for _, tx := range in {
		assert.Empty(t, tx.Category, "input must stay uncategorized")
	}
}

func TestNormalize(t *testing.T) {
	got := Normalize(model.CategoryTable{
		{Name: " Food ", Keywords: []string{" Grocery", "", "CAFE "}},
		{Name: "", Keywords: []string{"ignored"}},
	})
	assert.Equal(t, model.CategoryTable{
		{Name: model.Food, Keywords: []string{"grocery", "cafe"}},
	}, got)
}

func TestCount(t *testing.T) {
	txs := CategorizeAll(model.TransactionsFromRows([]model.RawRow{
		{Description: "grocery"},
		{Description: "cafe"},
		{Description: "rent"},
	}), testTable())

	got := Count(txs, testTable())
	assert.Equal(t, []Tally{
		{model.Food, 2},
		{model.Transport, 0},
		{model.Entertainment, 0},
		{model.Other, 1},
	}, got)
}
