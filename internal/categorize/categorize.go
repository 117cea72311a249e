// Package categorize assigns ledger transactions to spending categories by keyword.
package categorize

import (
	"strings"

	"github.com/theirongolddev/spendlens/internal/model"
)

// Categorize returns the first category in table with a keyword contained in
// the lower-cased description, or model.Other.
func Categorize(description string, table model.CategoryTable) model.Category {
	if description == "" {
		return model.Other
	}
	lower := strings.ToLower(description)
	for _, rule := range table {
		for _, kw := range rule.Keywords {
			if kw == "" {
				continue
			}
			if strings.Contains(lower, kw) {
				return rule.Name
			}
		}
	}
	return model.Other
}

// CategorizeAll returns categorized copies of txs in the same order.
// The input slice is not modified.
func CategorizeAll(txs []model.Transaction, table model.CategoryTable) []model.Transaction {
	out := make([]model.Transaction, len(txs))
	for i, tx := range txs {
		tx.Category = Categorize(tx.Description, table)
		out[i] = tx
	}
	return out
}

// Normalize lower-cases and trims keywords, dropping empty ones and rules
// without a name. Matching is case-insensitive only for normalized tables.
func Normalize(table model.CategoryTable) model.CategoryTable {
	out := make(model.CategoryTable, 0, len(table))
	for _, rule := range table {
		name := model.Category(strings.TrimSpace(string(rule.Name)))
		if name == "" {
			continue
		}
		kws := make([]string, 0, len(rule.Keywords))
		for _, kw := range rule.Keywords {
			kw = strings.ToLower(strings.TrimSpace(kw))
			if kw != "" {
				kws = append(kws, kw)
			}
		}
		out = append(out, model.CategoryRule{Name: name, Keywords: kws})
	}
	return out
}

// Count returns how many transactions fall into each category, in table
// order followed by model.Other.
func Count(txs []model.Transaction, table model.CategoryTable) []Tally {
	counts := make(map[model.Category]int)
	for _, tx := range txs {
		counts[tx.Category.OrOther()]++
	}

	tallies := make([]Tally, 0, len(table)+1)
	for _, name := range table.Names() {
		tallies = append(tallies, Tally{Category: name, Count: counts[name]})
		delete(counts, name)
	}
	if n := counts[model.Other]; n > 0 {
		tallies = append(tallies, Tally{Category: model.Other, Count: n})
	}
	return tallies
}

// Tally is a per-category transaction count.
type Tally struct {
	Category model.Category
	Count    int
}
