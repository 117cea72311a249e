package source

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/theirongolddev/spendlens/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeLedger creates a file under a temp dir and returns its path.
func writeLedger(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		in    string
		month string
		ok    bool
	}{
		{"2024-01-05", "2024-01", true},
		{"2024-1-5", "2024-01", true},
		{"05.02.2024", "2024-02", true},
		{"2024/03/10", "2024-03", true},
		{"10/04/2024", "2024-04", true},
		{" 2024-05-01 ", "2024-05", true},
		{"", "", false},
		{"yesterday", "", false},
		{"2024-13-01", "", false},
		{"01-05-2024", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			month, ok := MonthKey(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.month, month)
		})
	}
}

func TestReadCSV(t *testing.T) {
	rows, err := ReadCSV(strings.NewReader(
		"Date,Amount,Description\n" +
			"2024-01-05,1000,salary\n" +
			"2024-01-10,-200,\"grocery store, downtown\"\n" +
			"2024-01-11,oops\n" +
			"\n"))
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, model.RawRow{Date: "2024-01-05", Amount: "1000", Description: "salary"}, rows[0])
	assert.Equal(t, "grocery store, downtown", rows[1].Description)
	assert.Equal(t, model.RawRow{Date: "2024-01-11", Amount: "oops"}, rows[2])
}

func TestReadCSVWithoutDescriptionColumn(t *testing.T) {
	rows, err := ReadCSV(strings.NewReader("amount,date\n-5,2024-02-01\n"))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, model.RawRow{Date: "2024-02-01", Amount: "-5"}, rows[0])
}

func TestReadCSVMissingColumn(t *testing.T) {
	_, err := ReadCSV(strings.NewReader("date,description\n2024-01-01,x\n"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMissingColumn))
}

func TestReadCSVEmpty(t *testing.T) {
	rows, err := ReadCSV(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestReadJSON(t *testing.T) {
	rows, err := ReadJSON(strings.NewReader(`[
		{"date": "2024-01-05", "amount": 1000, "description": "salary"},
		{"date": "2024-01-10", "amount": "-200.50", "description": "grocery store"},
		{"date": "2024-01-11", "amount": 1e2},
		{"date": "2024-01-12", "amount": null, "description": "broken"}
	]`))
	require.NoError(t, err)
	require.Len(t, rows, 4)

	assert.Equal(t, "1000", rows[0].Amount)
	assert.Equal(t, "-200.50", rows[1].Amount)
	assert.Equal(t, "1e2", rows[2].Amount)
	assert.Equal(t, "", rows[2].Description)
	assert.Equal(t, "", rows[3].Amount)
}

func TestReadJSONInvalid(t *testing.T) {
	_, err := ReadJSON(strings.NewReader(`{"date": "2024-01-05"}`))
	assert.Error(t, err)
}

const sampleOFX = `OFXHEADER:100
DATA:OFXSGML
VERSION:102
SECURITY:NONE
ENCODING:USASCII
CHARSET:1252
COMPRESSION:NONE
OLDFILEUID:NONE
NEWFILEUID:NONE

<OFX>
<SIGNONMSGSRSV1>
<SONRS>
<STATUS>
<CODE>0
<SEVERITY>INFO
</STATUS>
<DTSERVER>20240315120000[0:GMT]
<LANGUAGE>ENG
</SONRS>
</SIGNONMSGSRSV1>
<BANKMSGSRSV1>
<STMTTRNRS>
<TRNUID>1
<STATUS>
<CODE>0
<SEVERITY>INFO
</STATUS>
<STMTRS>
<CURDEF>USD
<BANKACCTFROM>
<BANKID>123456789
<ACCTID>1234567890
<ACCTTYPE>CHECKING
</BANKACCTFROM>
<BANKTRANLIST>
<DTSTART>20240101120000[0:GMT]
<DTEND>20240131120000[0:GMT]
<STMTTRN>
<TRNTYPE>DEBIT
<DTPOSTED>20240115120000[0:GMT]
<TRNAMT>-25.50
<FITID>2024011501
<NAME>CORNER CAFE #12
</STMTTRN>
<STMTTRN>
<TRNTYPE>CREDIT
<DTPOSTED>20240131120000[0:GMT]
<TRNAMT>2500.00
<FITID>2024013101
<NAME>PAYROLL
<MEMO>January salary
</STMTTRN>
</BANKTRANLIST>
<LEDGERBAL>
<BALAMT>1000.00
<DTASOF>20240131120000[0:GMT]
</LEDGERBAL>
</STMTRS>
</STMTTRNRS>
</BANKMSGSRSV1>
</OFX>`

func TestReadOFX(t *testing.T) {
	rows, err := ReadOFX(strings.NewReader("\n\n" + sampleOFX))
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, model.RawRow{Date: "2024-01-15", Amount: "-25.50", Description: "CORNER CAFE #12"}, rows[0])
	assert.Equal(t, "2500.00", rows[1].Amount)
	assert.Equal(t, "PAYROLL", rows[1].Description)
}

func TestReadFileDispatch(t *testing.T) {
	dir := t.TempDir()
	csvPath := writeLedger(t, dir, "money.csv", "date,amount,description\n2024-01-05,1000,salary\n")
	jsonPath := writeLedger(t, dir, "money.json", `[{"date":"2024-01-05","amount":-3}]`)
	ofxPath := writeLedger(t, dir, "bank.QFX", sampleOFX)

	rows, err := ReadFile(csvPath)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, csvPath, rows[0].Source)

	rows, err = ReadFile(jsonPath)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "-3", rows[0].Amount)

	rows, err = ReadFile(ofxPath)
	require.NoError(t, err)
	assert.Len(t, rows, 2)
}

func TestReadFileErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := ReadFile(writeLedger(t, dir, "notes.txt", "hello"))
	assert.True(t, errors.Is(err, ErrUnsupportedFormat))

	_, err = ReadFile(filepath.Join(dir, "missing.csv"))
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestDiscover(t *testing.T) {
	dir := t.TempDir()
	b := writeLedger(t, dir, "ledger/b.json", "[]")
	a := writeLedger(t, dir, "ledger/a.csv", "date,amount\n")
	writeLedger(t, dir, "ledger/readme.md", "ignored")
	writeLedger(t, dir, "ledger/.hidden/c.csv", "date,amount\n")
	nested := writeLedger(t, dir, "ledger/2023/old.ofx", sampleOFX)
	single := writeLedger(t, dir, "extra.csv", "date,amount\n")

	files, err := Discover([]string{single, filepath.Join(dir, "ledger"), a})
	require.NoError(t, err)
	assert.Equal(t, []string{single, nested, a, b}, files)
}

func TestDiscoverMissingPath(t *testing.T) {
	_, err := Discover([]string{filepath.Join(t.TempDir(), "nope")})
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestNormalizeOFX(t *testing.T) {
	in := "  \n<SEVERITY>Warn</SEVERITY>\n<BANKTRANLIST\n<NAME>x"
	got := normalizeOFX(in)
	assert.Equal(t, "<SEVERITY>WARN</SEVERITY>\n<BANKTRANLIST>\n<NAME>x", got)
}
