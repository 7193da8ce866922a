// Package analyze turns normalized inventory rows into business signals:
// low-stock alerts, category rollups and a costed reorder plan. Every stage
// is a pure function over its input; the only failure mode is a SchemaError
// from normalization, surfaced before any analysis runs.
package analyze

import (
	"github.com/shopspring/decimal"

	"github.com/danisworo/stocklens/internal/domain"
)

// Analyzer runs the full pipeline with a fixed configuration. One Analyzer
// may serve concurrent runs; it holds no per-run state.
type Analyzer struct {
	cfg Config
}

// New creates an Analyzer with the given thresholds.
func New(cfg Config) *Analyzer {
	return &Analyzer{cfg: cfg}
}

// NewWithDefaults creates an Analyzer using the standard thresholds.
func NewWithDefaults() *Analyzer {
	return New(DefaultConfig())
}

// Config returns the thresholds this Analyzer runs with.
func (a *Analyzer) Config() Config {
	return a.cfg
}

// Run executes the pipeline over one record set and assembles the report.
// Stages run in fixed order: normalize, detect, aggregate, plan. Empty input
// yields an empty report, not an error.
func (a *Analyzer) Run(rows []domain.RawRow) (*domain.Report, error) {
	records, err := Normalize(rows)
	if err != nil {
		return nil, err
	}

	alerts := DetectLowStock(records, a.cfg)
	categories := AggregateCategories(records)
	plan := BuildReorderPlan(alerts, a.cfg)

	report := &domain.Report{
		TotalProducts: len(records),
		TotalValue:    decimal.Zero,
		Alerts:        alerts,
		Categories:    categories,
		Plan:          plan,
	}

	for i := range records {
		report.TotalValue = report.TotalValue.Add(records[i].InventoryValue)
	}
	for _, alert := range alerts {
		if alert.Severity == domain.SeverityCritical {
			report.CriticalCount++
		}
	}

	report.HighestValueCategory = highestValueCategory(categories)
	report.LowestStockCategory = lowestStockCategory(categories)
	report.AvgCostPerLine = avgCostPerLine(plan)

	return report, nil
}

// highestValueCategory returns the category with the largest total value.
// Strict comparison keeps the first-seen category on ties.
func highestValueCategory(summaries []domain.CategorySummary) string {
	best := ""
	var bestValue decimal.Decimal
	for i, s := range summaries {
		if i == 0 || s.TotalValue.GreaterThan(bestValue) {
			best = s.Category
			bestValue = s.TotalValue
		}
	}
	return best
}

// lowestStockCategory returns the category with the smallest total stock,
// first-seen on ties.
func lowestStockCategory(summaries []domain.CategorySummary) string {
	best := ""
	bestStock := 0
	for i, s := range summaries {
		if i == 0 || s.TotalStock < bestStock {
			best = s.Category
			bestStock = s.TotalStock
		}
	}
	return best
}

// avgCostPerLine averages the estimated cost over the plan's line items only.
// The plan totals live in a separate field, so they can never leak into this
// mean.
func avgCostPerLine(plan domain.ReorderPlan) decimal.Decimal {
	if len(plan.Lines) == 0 {
		return decimal.Zero
	}
	return plan.Totals.EstimatedCost.DivRound(decimal.NewFromInt(int64(len(plan.Lines))), 2)
}
