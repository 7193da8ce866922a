package analyze

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/danisworo/stocklens/internal/domain"
)

// Normalize validates the row shape and coerces raw values into
// InventoryRecords with the derived inventory value computed.
//
// Shape validation is fail-fast: if any row is missing a required column the
// whole run aborts with a SchemaError before any record is built. Value
// problems are not errors: non-numeric or empty stock and price coerce
// silently to 0, the forgiving-ingestion policy inherited from the original
// spreadsheet workflow.
func Normalize(rows []domain.RawRow) ([]domain.InventoryRecord, error) {
	for _, row := range rows {
		var missing []string
		for _, field := range domain.RequiredFields {
			if _, ok := row[field]; !ok {
				missing = append(missing, field)
			}
		}
		if len(missing) > 0 {
			return nil, domain.NewSchemaError(missing...)
		}
	}

	records := make([]domain.InventoryRecord, 0, len(rows))
	for _, row := range rows {
		stock := coerceStock(row[domain.FieldCurrentStock])
		price := coercePrice(row[domain.FieldPrice])

		records = append(records, domain.InventoryRecord{
			Name:           coerceString(row[domain.FieldProductName]),
			Category:       coerceString(row[domain.FieldCategory]),
			Stock:          stock,
			UnitPrice:      price,
			InventoryValue: price.Mul(decimal.NewFromInt(int64(stock))),
		})
	}

	return records, nil
}

func coerceString(v any) string {
	switch s := v.(type) {
	case string:
		return strings.TrimSpace(s)
	case nil:
		return ""
	default:
		return strings.TrimSpace(strconv.FormatFloat(asFloat(v), 'f', -1, 64))
	}
}

// coerceStock turns an untyped scalar into a non-negative stock count.
// Fractional input is truncated toward zero.
func coerceStock(v any) int {
	f := asFloat(v)
	if f < 0 {
		return 0
	}
	return int(f)
}

// coercePrice turns an untyped scalar into a non-negative price.
func coercePrice(v any) decimal.Decimal {
	switch p := v.(type) {
	case decimal.Decimal:
		if p.IsNegative() {
			return decimal.Zero
		}
		return p
	case string:
		d, err := decimal.NewFromString(cleanNumeric(p))
		if err != nil || d.IsNegative() {
			return decimal.Zero
		}
		return d
	default:
		f := asFloat(v)
		if f <= 0 {
			return decimal.Zero
		}
		return decimal.NewFromFloat(f)
	}
}

func asFloat(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int64:
		return float64(n)
	case decimal.Decimal:
		return n.InexactFloat64()
	case string:
		f, err := strconv.ParseFloat(cleanNumeric(n), 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}

// cleanNumeric strips whitespace and thousands separators so values exported
// with display formatting ("1,200") still parse.
func cleanNumeric(s string) string {
	return strings.ReplaceAll(strings.TrimSpace(s), ",", "")
}
