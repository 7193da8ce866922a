package analyze

import (
	"github.com/shopspring/decimal"

	"github.com/danisworo/stocklens/internal/domain"
)

// BuildReorderPlan computes one reorder line per alert, preserving the alert
// ordering, plus plan-wide totals. The suggested quantity restores stock to
// the reorder target but never drops below the minimum reorder; the estimated
// cost is quantity times unit price with no intermediate truncation.
func BuildReorderPlan(alerts []domain.LowStockAlert, cfg Config) domain.ReorderPlan {
	lines := make([]domain.ReorderLine, 0, len(alerts))
	totals := domain.ReorderTotals{EstimatedCost: decimal.Zero}

	for _, alert := range alerts {
		qty := cfg.ReorderTarget - alert.Record.Stock
		if qty < cfg.MinimumReorder {
			qty = cfg.MinimumReorder
		}
		cost := alert.Record.UnitPrice.Mul(decimal.NewFromInt(int64(qty)))

		lines = append(lines, domain.ReorderLine{
			Record:        alert.Record,
			SuggestedQty:  qty,
			EstimatedCost: cost,
		})
		totals.SuggestedUnits += qty
		totals.EstimatedCost = totals.EstimatedCost.Add(cost)
	}

	return domain.ReorderPlan{Lines: lines, Totals: totals}
}
