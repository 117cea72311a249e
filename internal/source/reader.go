// Package source reads ledger rows from CSV, JSON and OFX/QFX files.
package source

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/theirongolddev/spendlens/internal/model"
)

var (
	// ErrUnsupportedFormat is returned for files with an unknown extension.
	ErrUnsupportedFormat = errors.New("unsupported file format")
	// ErrMissingColumn is returned when a CSV header lacks a required column.
	ErrMissingColumn = errors.New("missing required column")
)

// Format identifies an input file type.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
	FormatOFX  Format = "ofx"
)

// FormatOf returns the format implied by a file extension.
func FormatOf(path string) (Format, bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return FormatCSV, true
	case ".json":
		return FormatJSON, true
	case ".ofx", ".qfx":
		return FormatOFX, true
	}
	return "", false
}

// ReadFile reads every ledger row from path. Each row's Source is set to path.
func ReadFile(path string) ([]model.RawRow, error) {
	format, ok := FormatOf(path)
	if !ok {
		return nil, fmt.Errorf("%w: %s (supported: .csv, .json, .ofx, .qfx)", ErrUnsupportedFormat, path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	var rows []model.RawRow
	switch format {
	case FormatCSV:
		rows, err = ReadCSV(f)
	case FormatJSON:
		rows, err = ReadJSON(f)
	case FormatOFX:
		rows, err = ReadOFX(f)
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	for i := range rows {
		rows[i].Source = path
	}
	return rows, nil
}
