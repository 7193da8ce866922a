package analyze

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/danisworo/stocklens/internal/domain"
)

// assertDecimal compares a decimal against its expected string form ignoring
// exponent representation.
func assertDecimal(t *testing.T, want string, got decimal.Decimal, msgAndArgs ...any) {
	t.Helper()
	if !got.Equal(decimal.RequireFromString(want)) {
		t.Errorf("decimal mismatch: want %s, got %s %v", want, got.String(), msgAndArgs)
	}
}

func rawRow(name, category string, stock, price any) domain.RawRow {
	return domain.RawRow{
		domain.FieldProductName:  name,
		domain.FieldCategory:     category,
		domain.FieldCurrentStock: stock,
		domain.FieldPrice:        price,
	}
}

func mustNormalize(t *testing.T, rows []domain.RawRow) []domain.InventoryRecord {
	t.Helper()
	records, err := Normalize(rows)
	if err != nil {
		t.Fatalf("Normalize failed: %v", err)
	}
	return records
}
