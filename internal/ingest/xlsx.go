package ingest

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/danisworo/stocklens/internal/domain"
)

// ReadXLSX reads the first sheet of an XLSX export. The first row is treated
// as the header, normalized the same way as CSV headers.
func ReadXLSX(path string) ([]domain.RawRow, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open xlsx file %s: %w", path, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("xlsx file %s has no sheets", path)
	}

	iter, err := f.Rows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read rows from sheet %s: %w", sheets[0], err)
	}
	defer iter.Close()

	var columns []string
	rows := make([]domain.RawRow, 0)
	for iter.Next() {
		record, err := iter.Columns()
		if err != nil {
			return nil, fmt.Errorf("failed to read row from %s: %w", path, err)
		}
		if columns == nil {
			columns = make([]string, len(record))
			for i, h := range record {
				columns[i] = NormalizeColumnName(h)
			}
			continue
		}
		rows = append(rows, rowFromRecord(columns, record))
	}
	if err := iter.Error(); err != nil {
		return nil, fmt.Errorf("error iterating rows in %s: %w", path, err)
	}

	return rows, nil
}
