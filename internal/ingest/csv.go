// Package ingest reads spreadsheet exports into raw rows for the analyzer.
// It owns header normalization; value coercion stays in the analysis core.
package ingest

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/danisworo/stocklens/internal/domain"
)

// ReadFile loads a CSV or XLSX inventory export into raw rows.
func ReadFile(path string) ([]domain.RawRow, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open %s: %w", path, err)
		}
		defer f.Close()
		return ReadCSV(f)
	case ".xlsx":
		return ReadXLSX(path)
	default:
		return nil, fmt.Errorf("unsupported file extension for %s (csv and xlsx supported)", path)
	}
}

// ReadCSV parses CSV content. The first row is the header; each header cell
// is trimmed, lowercased and space-normalized to underscores, so "Product
// Name" and " product_name " both become product_name. Cell values are kept
// as untrimmed-typed strings for the analyzer to coerce.
func ReadCSV(r io.Reader) ([]domain.RawRow, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return []domain.RawRow{}, nil
		}
		return nil, fmt.Errorf("failed to read csv header: %w", err)
	}

	columns := make([]string, len(header))
	for i, h := range header {
		columns[i] = NormalizeColumnName(h)
	}

	rows := make([]domain.RawRow, 0)
	for {
		record, err := reader.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("failed to read csv row: %w", err)
		}
		rows = append(rows, rowFromRecord(columns, record))
	}

	return rows, nil
}

func rowFromRecord(columns []string, record []string) domain.RawRow {
	row := make(domain.RawRow, len(columns))
	for i, col := range columns {
		if col == "" {
			continue
		}
		if i < len(record) {
			row[col] = strings.TrimSpace(record[i])
		} else {
			row[col] = ""
		}
	}
	return row
}

// NormalizeColumnName maps a raw header cell to its canonical form: trimmed,
// lowercased, internal whitespace collapsed to single underscores.
func NormalizeColumnName(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), "_")
}
