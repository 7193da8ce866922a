package analyze

import (
	"github.com/shopspring/decimal"

	"github.com/danisworo/stocklens/internal/domain"
)

type categoryAccumulator struct {
	category   string
	totalStock int
	count      int
	totalValue decimal.Decimal
	totalPrice decimal.Decimal
}

// AggregateCategories groups records by exact category string and computes
// the six summary statistics, each rounded half-up to 2 decimal places.
// Summaries come back in first-seen order and partition the record set: every
// record contributes to exactly one summary.
func AggregateCategories(records []domain.InventoryRecord) []domain.CategorySummary {
	index := make(map[string]*categoryAccumulator)
	order := make([]*categoryAccumulator, 0)

	for i := range records {
		rec := &records[i]
		acc, ok := index[rec.Category]
		if !ok {
			acc = &categoryAccumulator{
				category:   rec.Category,
				totalValue: decimal.Zero,
				totalPrice: decimal.Zero,
			}
			index[rec.Category] = acc
			order = append(order, acc)
		}
		acc.totalStock += rec.Stock
		acc.count++
		acc.totalValue = acc.totalValue.Add(rec.InventoryValue)
		acc.totalPrice = acc.totalPrice.Add(rec.UnitPrice)
	}

	summaries := make([]domain.CategorySummary, 0, len(order))
	for _, acc := range order {
		// Grouping guarantees count >= 1, so the divisions are always safe.
		count := decimal.NewFromInt(int64(acc.count))
		summaries = append(summaries, domain.CategorySummary{
			Category:     acc.category,
			TotalStock:   acc.totalStock,
			ProductCount: acc.count,
			AvgStock:     decimal.NewFromInt(int64(acc.totalStock)).DivRound(count, 2),
			TotalValue:   acc.totalValue.Round(2),
			AvgValue:     acc.totalValue.DivRound(count, 2),
			AvgPrice:     acc.totalPrice.DivRound(count, 2),
		})
	}

	return summaries
}
