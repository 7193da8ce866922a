package analyze

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danisworo/stocklens/internal/domain"
)

func TestAggregateCategories_FirstSeenOrder(t *testing.T) {
	records := mustNormalize(t, []domain.RawRow{
		rawRow("P1", "Electronics", 10, "5.00"),
		rawRow("P2", "Books", 4, "2.00"),
		rawRow("P3", "Electronics", 6, "3.00"),
		rawRow("P4", "Beauty", 1, "9.99"),
	})

	summaries := AggregateCategories(records)

	require.Len(t, summaries, 3)
	assert.Equal(t, "Electronics", summaries[0].Category)
	assert.Equal(t, "Books", summaries[1].Category)
	assert.Equal(t, "Beauty", summaries[2].Category)
}

func TestAggregateCategories_Statistics(t *testing.T) {
	records := mustNormalize(t, []domain.RawRow{
		rawRow("P1", "Electronics", 10, "5.00"),
		rawRow("P2", "Electronics", 5, "2.00"),
	})

	summaries := AggregateCategories(records)

	require.Len(t, summaries, 1)
	s := summaries[0]
	assert.Equal(t, 15, s.TotalStock)
	assert.Equal(t, 2, s.ProductCount)
	assertDecimal(t, "7.5", s.AvgStock)
	assertDecimal(t, "60.00", s.TotalValue) // 10*5 + 5*2
	assertDecimal(t, "30.00", s.AvgValue)
	assertDecimal(t, "3.50", s.AvgPrice)
}

// Averages round half-up to two decimal places: 1.005 becomes 1.01, not the
// banker's 1.00.
func TestAggregateCategories_RoundingHalfUp(t *testing.T) {
	records := mustNormalize(t, []domain.RawRow{
		rawRow("P1", "X", 1, "1.00"),
		rawRow("P2", "X", 1, "1.01"),
	})

	summaries := AggregateCategories(records)

	require.Len(t, summaries, 1)
	assertDecimal(t, "1.01", summaries[0].AvgPrice)
	assertDecimal(t, "1.01", summaries[0].AvgValue)
	assertDecimal(t, "1", summaries[0].AvgStock)
}

func TestAggregateCategories_CaseSensitiveGrouping(t *testing.T) {
	records := mustNormalize(t, []domain.RawRow{
		rawRow("P1", "books", 1, "1.00"),
		rawRow("P2", "Books", 1, "1.00"),
	})

	summaries := AggregateCategories(records)
	assert.Len(t, summaries, 2)
}

func TestAggregateCategories_SingleRecordCategory(t *testing.T) {
	records := mustNormalize(t, []domain.RawRow{
		rawRow("Solo", "Niche", 7, "3.00"),
	})

	summaries := AggregateCategories(records)

	require.Len(t, summaries, 1)
	assertDecimal(t, "7", summaries[0].AvgStock)
	assertDecimal(t, "21.00", summaries[0].AvgValue)
}

func TestAggregateCategories_EmptyInput(t *testing.T) {
	summaries := AggregateCategories(nil)
	assert.NotNil(t, summaries)
	assert.Empty(t, summaries)
}

// Category totals partition the dataset: summing total_value across all
// summaries reproduces the whole-set inventory value.
func TestAggregateCategories_PartitionInvariant(t *testing.T) {
	records := mustNormalize(t, []domain.RawRow{
		rawRow("P1", "A", 13, "5.25"),
		rawRow("P2", "B", 7, "12.40"),
		rawRow("P3", "A", 2, "0.99"),
		rawRow("P4", "C", 150, "3.10"),
		rawRow("P5", "B", 0, "42.00"),
	})

	summaries := AggregateCategories(records)

	total := decimal.Zero
	count := 0
	for _, s := range summaries {
		total = total.Add(s.TotalValue)
		count += s.ProductCount
	}

	wholeSet := decimal.Zero
	for _, r := range records {
		wholeSet = wholeSet.Add(r.InventoryValue)
	}

	assert.True(t, total.Equal(wholeSet), "sum of category totals %s != dataset total %s", total, wholeSet)
	assert.Equal(t, len(records), count)
}
