package ingest

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadCSV_NormalizesHeaders(t *testing.T) {
	input := "Product Name, Category ,Current Stock,Price\nWidget,A,3,10.00\n"

	rows, err := ReadCSV(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, rows, 1)

	assert.Equal(t, "Widget", rows[0]["product_name"])
	assert.Equal(t, "A", rows[0]["category"])
	assert.Equal(t, "3", rows[0]["current_stock"])
	assert.Equal(t, "10.00", rows[0]["price"])
}

func TestReadCSV_ExtraColumnsCarriedThrough(t *testing.T) {
	input := "Product Name,Category,Current Stock,Price,Supplier,Last Updated\n" +
		"Widget,A,3,10.00,Supplier_1,2026-08-30\n"

	rows, err := ReadCSV(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Supplier_1", rows[0]["supplier"])
	assert.Equal(t, "2026-08-30", rows[0]["last_updated"])
}

// A short record still yields a row with empty strings for the missing
// cells; column absence is a header-level concern, not a row-level one.
func TestReadCSV_ShortRecordFillsEmpty(t *testing.T) {
	input := "Product Name,Category,Current Stock,Price\nWidget,A\n"

	rows, err := ReadCSV(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "", rows[0]["current_stock"])
	assert.Equal(t, "", rows[0]["price"])
}

func TestReadCSV_MissingColumnStaysMissing(t *testing.T) {
	input := "Product Name,Category,Current Stock\nWidget,A,3\n"

	rows, err := ReadCSV(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, rows, 1)

	_, ok := rows[0]["price"]
	assert.False(t, ok, "absent header must not materialize as a key")
}

func TestReadCSV_EmptyInput(t *testing.T) {
	rows, err := ReadCSV(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestReadCSV_HeaderOnly(t *testing.T) {
	rows, err := ReadCSV(strings.NewReader("Product Name,Category,Current Stock,Price\n"))
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestNormalizeColumnName(t *testing.T) {
	tests := []struct{ in, want string }{
		{"Product Name", "product_name"},
		{"  Current   Stock  ", "current_stock"},
		{"PRICE", "price"},
		{"category", "category"},
		{"Last Updated", "last_updated"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeColumnName(tt.in), "input %q", tt.in)
	}
}

func TestReadFile_UnsupportedExtension(t *testing.T) {
	_, err := ReadFile("inventory.pdf")
	assert.Error(t, err)
}
