package source

import (
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"strings"

	"github.com/theirongolddev/spendlens/internal/model"

	"github.com/aclindsa/ofxgo"
)

var (
	severityRe = regexp.MustCompile(`(?i)<SEVERITY>(Info|Warn|Error)</SEVERITY>`)
	openTagRe  = regexp.MustCompile(`(?m)^(\s*<[A-Z][A-Z0-9._]*[A-Z0-9])$`)
)

// normalizeOFX repairs formatting quirks some banks emit that ofxgo rejects.
func normalizeOFX(content string) string {
	content = strings.TrimLeft(content, " \t\r\n")
	content = severityRe.ReplaceAllStringFunc(content, strings.ToUpper)
	return openTagRe.ReplaceAllString(content, "$1>")
}

// ReadOFX reads bank and credit card statement transactions from an OFX or
// QFX export.
func ReadOFX(r io.Reader) ([]model.RawRow, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading ofx: %w", err)
	}

	resp, err := ofxgo.ParseResponse(strings.NewReader(normalizeOFX(string(content))))
	if err != nil {
		return nil, fmt.Errorf("parsing ofx: %w", err)
	}

	var rows []model.RawRow
	for _, msg := range resp.Bank {
		stmt, ok := msg.(*ofxgo.StatementResponse)
		if !ok || stmt.BankTranList == nil {
			continue
		}
		rows = append(rows, ofxRows(stmt.BankTranList.Transactions)...)
	}
	for _, msg := range resp.CreditCard {
		stmt, ok := msg.(*ofxgo.CCStatementResponse)
		if !ok || stmt.BankTranList == nil {
			continue
		}
		rows = append(rows, ofxRows(stmt.BankTranList.Transactions)...)
	}

	slog.Debug("parsed ofx", "transactions", len(rows),
		"bank_statements", len(resp.Bank), "cc_statements", len(resp.CreditCard))
	return rows, nil
}

func ofxRows(txs []ofxgo.Transaction) []model.RawRow {
	rows := make([]model.RawRow, 0, len(txs))
	for _, tx := range txs {
		rows = append(rows, model.RawRow{
			Date:        tx.DtPosted.Time.Format("2006-01-02"),
			Amount:      tx.TrnAmt.FloatString(2),
			Description: ofxDescription(tx),
		})
	}
	return rows
}

// ofxDescription prefers the payee, then the name, then the memo.
func ofxDescription(tx ofxgo.Transaction) string {
	if tx.Payee != nil && tx.Payee.Name != "" {
		return strings.TrimSpace(string(tx.Payee.Name))
	}
	if name := strings.TrimSpace(string(tx.Name)); name != "" {
		return name
	}
	return strings.TrimSpace(string(tx.Memo))
}
