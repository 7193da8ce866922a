package analyze

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danisworo/stocklens/internal/domain"
)

func TestAnalyzer_SingleCriticalWidget(t *testing.T) {
	report, err := NewWithDefaults().Run([]domain.RawRow{
		rawRow("Widget", "A", 3, "10.0"),
	})
	require.NoError(t, err)

	assert.Equal(t, 1, report.TotalProducts)
	assertDecimal(t, "30", report.TotalValue)
	assert.Equal(t, 1, report.CriticalCount)

	require.Len(t, report.Alerts, 1)
	assert.Equal(t, domain.SeverityCritical, report.Alerts[0].Severity)

	require.Len(t, report.Plan.Lines, 1)
	assert.Equal(t, 47, report.Plan.Lines[0].SuggestedQty)
	assertDecimal(t, "470", report.Plan.Lines[0].EstimatedCost)

	require.Len(t, report.Categories, 1)
	s := report.Categories[0]
	assert.Equal(t, "A", s.Category)
	assert.Equal(t, 3, s.TotalStock)
	assert.Equal(t, 1, s.ProductCount)
	assertDecimal(t, "3", s.AvgStock)
	assertDecimal(t, "30", s.TotalValue)

	assert.Equal(t, "A", report.HighestValueCategory)
	assert.Equal(t, "A", report.LowestStockCategory)
}

// Missing or non-numeric stock is coerced to zero and treated as a critical
// out-of-stock product, never an error.
func TestAnalyzer_NonNumericStockIsCriticalZero(t *testing.T) {
	report, err := NewWithDefaults().Run([]domain.RawRow{
		rawRow("Ghost", "A", "unknown", "10.00"),
	})
	require.NoError(t, err)

	require.Len(t, report.Alerts, 1)
	assert.Equal(t, domain.SeverityCritical, report.Alerts[0].Severity)
	assert.Equal(t, 0, report.Alerts[0].Record.Stock)
	assertDecimal(t, "0", report.Alerts[0].Record.InventoryValue)
}

// Two records at the threshold are both flagged LOW and both planned with 30
// units each.
func TestAnalyzer_BothAtThresholdFlaggedLow(t *testing.T) {
	report, err := NewWithDefaults().Run([]domain.RawRow{
		rawRow("B1", "B", 20, "1.00"),
		rawRow("B2", "B", 20, "1.00"),
	})
	require.NoError(t, err)

	require.Len(t, report.Alerts, 2)
	for _, alert := range report.Alerts {
		assert.Equal(t, domain.SeverityLow, alert.Severity)
	}
	require.Len(t, report.Plan.Lines, 2)
	for _, line := range report.Plan.Lines {
		assert.Equal(t, 30, line.SuggestedQty)
	}
	assert.Equal(t, 0, report.CriticalCount)
}

func TestAnalyzer_EmptyInput(t *testing.T) {
	report, err := NewWithDefaults().Run(nil)
	require.NoError(t, err)

	assert.Equal(t, 0, report.TotalProducts)
	assertDecimal(t, "0", report.TotalValue)
	assert.Empty(t, report.Alerts)
	assert.Empty(t, report.Categories)
	assert.Empty(t, report.Plan.Lines)
	assert.Equal(t, "", report.HighestValueCategory)
	assert.Equal(t, "", report.LowestStockCategory)
	assertDecimal(t, "0", report.AvgCostPerLine)
}

func TestAnalyzer_SchemaErrorAbortsRun(t *testing.T) {
	report, err := NewWithDefaults().Run([]domain.RawRow{
		{
			domain.FieldProductName:  "Widget",
			domain.FieldCategory:     "A",
			domain.FieldCurrentStock: 3,
		},
	})

	require.Error(t, err)
	assert.Nil(t, report)

	var schemaErr *domain.SchemaError
	assert.ErrorAs(t, err, &schemaErr)
}

func TestAnalyzer_InsightTieBreaksFirstSeen(t *testing.T) {
	report, err := NewWithDefaults().Run([]domain.RawRow{
		rawRow("P1", "First", 30, "2.00"),  // value 60
		rawRow("P2", "Second", 30, "2.00"), // same value, same stock
	})
	require.NoError(t, err)

	assert.Equal(t, "First", report.HighestValueCategory)
	assert.Equal(t, "First", report.LowestStockCategory)
}

func TestAnalyzer_Insights(t *testing.T) {
	report, err := NewWithDefaults().Run([]domain.RawRow{
		rawRow("P1", "Electronics", 100, "50.00"), // value 5000
		rawRow("P2", "Books", 2, "3.00"),          // low stock, value 6
		rawRow("P3", "Beauty", 40, "1.00"),        // value 40
	})
	require.NoError(t, err)

	assert.Equal(t, "Electronics", report.HighestValueCategory)
	assert.Equal(t, "Books", report.LowestStockCategory)
}

// The average cost per line is taken over line items only; the plan totals
// live in their own field and cannot skew it.
func TestAnalyzer_AvgCostPerLineExcludesTotals(t *testing.T) {
	report, err := NewWithDefaults().Run([]domain.RawRow{
		rawRow("P1", "A", 10, "1.00"), // qty 40, cost 40
		rawRow("P2", "A", 30, "1.00"), // healthy
		rawRow("P3", "A", 0, "2.00"),  // qty 50, cost 100
	})
	require.NoError(t, err)

	require.Len(t, report.Plan.Lines, 2)
	assertDecimal(t, "140", report.Plan.Totals.EstimatedCost)
	assertDecimal(t, "70.00", report.AvgCostPerLine)
}

// Running twice over the same input must produce identical results: the
// pipeline has no hidden randomness and mutates no shared state.
func TestAnalyzer_Idempotent(t *testing.T) {
	rows := []domain.RawRow{
		rawRow("P1", "A", 13, "5.25"),
		rawRow("P2", "B", 7, "12.40"),
		rawRow("P3", "A", 2, "0.99"),
		rawRow("P4", "C", 150, "3.10"),
		rawRow("P5", "B", 20, "42.00"),
	}

	analyzer := NewWithDefaults()
	first, err := analyzer.Run(rows)
	require.NoError(t, err)
	second, err := analyzer.Run(rows)
	require.NoError(t, err)

	firstJSON, err := json.Marshal(first)
	require.NoError(t, err)
	secondJSON, err := json.Marshal(second)
	require.NoError(t, err)
	assert.Equal(t, string(firstJSON), string(secondJSON))
}

// Whole-dataset total value equals the sum over category summaries.
func TestAnalyzer_TotalValueMatchesCategoryPartition(t *testing.T) {
	report, err := NewWithDefaults().Run([]domain.RawRow{
		rawRow("P1", "A", 13, "5.25"),
		rawRow("P2", "B", 7, "12.40"),
		rawRow("P3", "A", 2, "0.99"),
	})
	require.NoError(t, err)

	sum := decimal.Zero
	for _, s := range report.Categories {
		sum = sum.Add(s.TotalValue)
	}
	assert.True(t, sum.Equal(report.TotalValue))
}
