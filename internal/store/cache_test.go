package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/theirongolddev/spendlens/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestCache(t *testing.T) (*Cache, string) {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "cache", "rows.db")
	c, err := Open(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })
	return c, dbPath
}

func TestSaveAndLoadRows(t *testing.T) {
	c, _ := openTestCache(t)

	rows := []model.RawRow{
		{Date: "2024-01-05", Amount: "1000", Description: "salary"},
		{Date: "2024-01-10", Amount: "oops", Description: ""},
	}
	require.NoError(t, c.SaveRows("/ledger/money.csv", rows, FileInfo{MtimeNs: 42, SizeBytes: 100}))

	got, err := c.LoadRows("/ledger/money.csv")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, model.RawRow{Date: "2024-01-05", Amount: "1000", Description: "salary", Source: "/ledger/money.csv"}, got[0])
	assert.Equal(t, "oops", got[1].Amount)

	tracked, err := c.TrackedFiles()
	require.NoError(t, err)
	assert.Equal(t, FileInfo{MtimeNs: 42, SizeBytes: 100, RowCount: 2}, tracked["/ledger/money.csv"])
}

func TestSaveRowsReplacesPreviousRows(t *testing.T) {
	c, _ := openTestCache(t)

	require.NoError(t, c.SaveRows("a.csv", []model.RawRow{{Amount: "1"}, {Amount: "2"}, {Amount: "3"}}, FileInfo{MtimeNs: 1}))
	require.NoError(t, c.SaveRows("a.csv", []model.RawRow{{Amount: "9"}}, FileInfo{MtimeNs: 2}))

	got, err := c.LoadRows("a.csv")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "9", got[0].Amount)

	n, err := c.RowCount()
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestDeleteFileAndClear(t *testing.T) {
	c, _ := openTestCache(t)

	require.NoError(t, c.SaveRows("a.csv", []model.RawRow{{Amount: "1"}}, FileInfo{}))
	require.NoError(t, c.SaveRows("b.csv", []model.RawRow{{Amount: "2"}}, FileInfo{}))

	require.NoError(t, c.DeleteFile("a.csv"))
	tracked, err := c.TrackedFiles()
	require.NoError(t, err)
	assert.NotContains(t, tracked, "a.csv")
	n, err := c.RowCount()
	require.NoError(t, err)
	assert.Equal(t, 1, n, "rows cascade with their file")

	require.NoError(t, c.Clear())
	n, err = c.RowCount()
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestReopenKeepsData(t *testing.T) {
	c, dbPath := openTestCache(t)
	require.NoError(t, c.SaveRows("a.csv", []model.RawRow{{Amount: "1"}}, FileInfo{}))
	require.NoError(t, c.Close())

	again, err := Open(dbPath)
	require.NoError(t, err)
	defer again.Close()

	got, err := again.LoadRows("a.csv")
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestFileInfoMatches(t *testing.T) {
	path := filepath.Join(t.TempDir(), "x.csv")
	require.NoError(t, os.WriteFile(path, []byte("date,amount\n"), 0o600))
	info, err := os.Stat(path)
	require.NoError(t, err)

	fi := FileInfoOf(info, 0)
	assert.True(t, fi.Matches(info))

	fi.SizeBytes++
	assert.False(t, fi.Matches(info))
}
