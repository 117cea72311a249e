// Package store provides a SQLite-backed cache of rows read from ledger files.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/theirongolddev/spendlens/internal/model"

	_ "modernc.org/sqlite" // register sqlite driver
)

// Cache stores raw ledger rows keyed by source file.
type Cache struct {
	db *sql.DB
}

// Open opens or creates the cache database at the given path.
func Open(dbPath string) (*Cache, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating cache dir: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		return nil, fmt.Errorf("migrating cache: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)&_pragma=foreign_keys(on)")
	if err != nil {
		return nil, fmt.Errorf("opening cache db: %w", err)
	}
	return &Cache{db: db}, nil
}

// Close closes the cache database.
func (c *Cache) Close() error {
	return c.db.Close()
}

// FileInfo holds the tracked state of one ledger file.
type FileInfo struct {
	MtimeNs   int64
	SizeBytes int64
	RowCount  int
}

// Matches reports whether a file on disk is unchanged since it was cached.
func (fi FileInfo) Matches(info os.FileInfo) bool {
	return fi.MtimeNs == info.ModTime().UnixNano() && fi.SizeBytes == info.Size()
}

// FileInfoOf builds the tracked state for a file on disk.
func FileInfoOf(info os.FileInfo, rowCount int) FileInfo {
	return FileInfo{
		MtimeNs:   info.ModTime().UnixNano(),
		SizeBytes: info.Size(),
		RowCount:  rowCount,
	}
}

// TrackedFiles returns a map of file_path -> FileInfo for all cached files.
func (c *Cache) TrackedFiles() (map[string]FileInfo, error) {
	rows, err := c.db.Query("SELECT file_path, mtime_ns, size_bytes, row_count FROM ledger_files")
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	result := make(map[string]FileInfo)
	for rows.Next() {
		var path string
		var fi FileInfo
		if err := rows.Scan(&path, &fi.MtimeNs, &fi.SizeBytes, &fi.RowCount); err != nil {
			return nil, err
		}
		result[path] = fi
	}
	return result, rows.Err()
}

// SaveRows replaces the cached rows for path.
func (c *Cache) SaveRows(path string, rows []model.RawRow, fi FileInfo) error {
	tx, err := c.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec("DELETE FROM ledger_rows WHERE file_path = ?", path); err != nil {
		return err
	}

	now := time.Now().UTC().Format(time.RFC3339)
	_, err = tx.Exec(`INSERT INTO ledger_files (file_path, mtime_ns, size_bytes, row_count, read_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(file_path) DO UPDATE SET
			mtime_ns = excluded.mtime_ns,
			size_bytes = excluded.size_bytes,
			row_count = excluded.row_count,
			read_at = excluded.read_at`,
		path, fi.MtimeNs, fi.SizeBytes, len(rows), now)
	if err != nil {
		return err
	}

	stmt, err := tx.Prepare(`INSERT INTO ledger_rows (file_path, row_index, date, amount, description)
		VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer func() { _ = stmt.Close() }()

	for i, r := range rows {
		if _, err := stmt.Exec(path, i, r.Date, r.Amount, r.Description); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// LoadRows returns the cached rows for path in their original order.
func (c *Cache) LoadRows(path string) ([]model.RawRow, error) {
	rows, err := c.db.Query(`SELECT date, amount, description FROM ledger_rows
		WHERE file_path = ? ORDER BY row_index`, path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var result []model.RawRow
	for rows.Next() {
		r := model.RawRow{Source: path}
		if err := rows.Scan(&r.Date, &r.Amount, &r.Description); err != nil {
			return nil, err
		}
		result = append(result, r)
	}
	return result, rows.Err()
}

// DeleteFile removes a file and its rows from the cache.
func (c *Cache) DeleteFile(path string) error {
	_, err := c.db.Exec("DELETE FROM ledger_files WHERE file_path = ?", path)
	return err
}

// Clear removes every cached file.
func (c *Cache) Clear() error {
	tx, err := c.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec("DELETE FROM ledger_rows"); err != nil {
		return err
	}
	if _, err := tx.Exec("DELETE FROM ledger_files"); err != nil {
		return err
	}
	return tx.Commit()
}

// RowCount returns the number of cached rows.
func (c *Cache) RowCount() (int, error) {
	var count int
	err := c.db.QueryRow("SELECT COUNT(*) FROM ledger_rows").Scan(&count)
	return count, err
}
