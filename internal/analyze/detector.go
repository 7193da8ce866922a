package analyze

import (
	"sort"

	"github.com/danisworo/stocklens/internal/domain"
)

// DetectLowStock flags every record whose stock is at or below the configured
// low-stock threshold, escalating to CRITICAL at or below the critical
// threshold. Alerts come back sorted ascending by stock; ties keep the input
// order so output is deterministic.
func DetectLowStock(records []domain.InventoryRecord, cfg Config) []domain.LowStockAlert {
	alerts := make([]domain.LowStockAlert, 0)
	for i := range records {
		rec := &records[i]
		if rec.Stock > cfg.LowStockThreshold {
			continue
		}

		severity := domain.SeverityLow
		if rec.Stock <= cfg.CriticalThreshold {
			severity = domain.SeverityCritical
		}

		alerts = append(alerts, domain.LowStockAlert{Record: rec, Severity: severity})
	}

	sort.SliceStable(alerts, func(i, j int) bool {
		return alerts[i].Record.Stock < alerts[j].Record.Stock
	})

	return alerts
}
