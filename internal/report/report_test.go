package report

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danisworo/stocklens/internal/analyze"
	"github.com/danisworo/stocklens/internal/domain"
)

func demoReport(t *testing.T) *domain.Report {
	t.Helper()
	rep, err := analyze.NewWithDefaults().Run([]domain.RawRow{
		{
			domain.FieldProductName: "Widget", domain.FieldCategory: "A",
			domain.FieldCurrentStock: "3", domain.FieldPrice: "10.00",
		},
		{
			domain.FieldProductName: "Gadget", domain.FieldCategory: "B",
			domain.FieldCurrentStock: "20", domain.FieldPrice: "4.00",
		},
		{
			domain.FieldProductName: "Anvil", domain.FieldCategory: "B",
			domain.FieldCurrentStock: "120", domain.FieldPrice: "55.00",
		},
	})
	require.NoError(t, err)
	return rep
}

func TestWriteReorderCSV_SeparatesTotals(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteReorderCSV(&buf, demoReport(t).Plan))

	records, err := csv.NewReader(strings.NewReader(buf.String())).ReadAll()
	require.NoError(t, err)

	// header + 2 lines + separator + totals
	require.Len(t, records, 5)
	assert.Equal(t, "Product", records[0][0])
	assert.Equal(t, "Widget", records[1][0])
	assert.Equal(t, "47", records[1][3])
	assert.Equal(t, "470.00", records[1][5])
	assert.Equal(t, "Gadget", records[2][0])
	assert.Equal(t, "30", records[2][3])

	assert.Equal(t, "", records[3][0], "blank separator before totals")
	assert.Equal(t, "TOTAL", records[4][0])
	assert.Equal(t, "77", records[4][3])
	assert.Equal(t, "590.00", records[4][5])
}

func TestWriteReorderCSV_EmptyPlan(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteReorderCSV(&buf, domain.ReorderPlan{}))

	records, err := csv.NewReader(strings.NewReader(buf.String())).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "TOTAL", records[2][0])
	assert.Equal(t, "0", records[2][3])
}

func TestRenderConsole(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderConsole(&buf, demoReport(t)))

	out := buf.String()
	assert.Contains(t, out, "Total products: 3")
	assert.Contains(t, out, "[CRITICAL] Widget")
	assert.Contains(t, out, "[LOW] Gadget")
	assert.Contains(t, out, "INVENTORY BY CATEGORY")
	assert.Contains(t, out, "total reorder investment: $590.00")
	assert.Contains(t, out, "Highest value category: B")
}

func TestBuildChartData_TopN(t *testing.T) {
	rep := demoReport(t)
	data := BuildChartData(rep, 1)

	require.Len(t, data.TopRestock, 1)
	assert.Equal(t, "Widget", data.TopRestock[0].Name)
	assert.Equal(t, domain.SeverityCritical, data.TopRestock[0].Severity)
	assert.Len(t, data.StockByCategory, 2)
}

func TestBuildChartData_TruncatesLongNames(t *testing.T) {
	rep, err := analyze.NewWithDefaults().Run([]domain.RawRow{
		{
			domain.FieldProductName: strings.Repeat("x", 40), domain.FieldCategory: "A",
			domain.FieldCurrentStock: "1", domain.FieldPrice: "1.00",
		},
	})
	require.NoError(t, err)

	data := BuildChartData(rep, 0)
	require.Len(t, data.TopRestock, 1)
	assert.Equal(t, strings.Repeat("x", 30)+"...", data.TopRestock[0].Name)
}
