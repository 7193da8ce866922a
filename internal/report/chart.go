package report

import (
	"github.com/shopspring/decimal"

	"github.com/danisworo/stocklens/internal/domain"
)

// DefaultTopRestock caps the restock chart at the ten neediest products.
const DefaultTopRestock = 10

// CategoryPoint is one bar/slice in a per-category chart.
type CategoryPoint struct {
	Category   string          `json:"category"`
	TotalStock int             `json:"total_stock"`
	TotalValue decimal.Decimal `json:"total_value"`
}

// RestockPoint is one bar in the "products needing restock" chart.
type RestockPoint struct {
	Name     string          `json:"name"`
	Stock    int             `json:"stock"`
	Severity domain.Severity `json:"severity"`
}

// ChartData is the structured payload handed to an external charting
// collaborator; no image rendering happens in this repo.
type ChartData struct {
	StockByCategory []CategoryPoint `json:"stock_by_category"`
	ValueShare      []CategoryPoint `json:"value_share"`
	TopRestock      []RestockPoint  `json:"top_restock"`
}

// BuildChartData derives chart series from a finished report. TopRestock
// takes the first topN alerts, which are already sorted by ascending stock.
func BuildChartData(rep *domain.Report, topN int) ChartData {
	if topN <= 0 {
		topN = DefaultTopRestock
	}

	points := make([]CategoryPoint, 0, len(rep.Categories))
	for _, s := range rep.Categories {
		points = append(points, CategoryPoint{
			Category:   s.Category,
			TotalStock: s.TotalStock,
			TotalValue: s.TotalValue,
		})
	}

	top := make([]RestockPoint, 0, topN)
	for i, alert := range rep.Alerts {
		if i == topN {
			break
		}
		top = append(top, RestockPoint{
			Name:     truncateName(alert.Record.Name, 30),
			Stock:    alert.Record.Stock,
			Severity: alert.Severity,
		})
	}

	return ChartData{
		StockByCategory: points,
		ValueShare:      points,
		TopRestock:      top,
	}
}

func truncateName(name string, max int) string {
	if len(name) <= max {
		return name
	}
	return name[:max] + "..."
}
