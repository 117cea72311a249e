package source

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/theirongolddev/spendlens/internal/model"
)

// ReadJSON reads a JSON array of objects with date, amount and an optional
// description. Amounts may be numbers or strings and are kept verbatim.
func ReadJSON(r io.Reader) ([]model.RawRow, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	var raw []map[string]any
	if err := dec.Decode(&raw); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, fmt.Errorf("decoding ledger: %w", err)
	}

	rows := make([]model.RawRow, 0, len(raw))
	for i, obj := range raw {
		if _, ok := obj["amount"]; !ok {
			slog.Warn("ledger entry has no amount", "index", i)
		}
		rows = append(rows, model.RawRow{
			Date:        jsonText(obj["date"]),
			Amount:      jsonText(obj["amount"]),
			Description: jsonText(obj["description"]),
		})
	}
	return rows, nil
}

func jsonText(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case json.Number:
		return x.String()
	default:
		return fmt.Sprint(x)
	}
}
