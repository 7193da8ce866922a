// internal/domain/models.go
package domain

import "github.com/shopspring/decimal"

// Canonical column names the analyzer expects after header normalization.
const (
	FieldProductName  = "product_name"
	FieldCurrentStock = "current_stock"
	FieldPrice        = "price"
	FieldCategory     = "category"
)

// RequiredFields lists the columns that must be present in every input row.
var RequiredFields = []string{FieldProductName, FieldCurrentStock, FieldPrice, FieldCategory}

// RawRow is one input row as delivered by an ingest collaborator: canonical
// field names mapped to whatever scalar the source file contained.
type RawRow map[string]any

// InventoryRecord is one product after normalization. InventoryValue is
// derived exactly once (stock x unit price) and never recomputed.
type InventoryRecord struct {
	Name           string          `json:"product_name"`
	Category       string          `json:"category"`
	Stock          int             `json:"current_stock"`
	UnitPrice      decimal.Decimal `json:"price"`
	InventoryValue decimal.Decimal `json:"inventory_value"`
}

// Severity is the urgency tier of a low-stock alert.
type Severity string

const (
	SeverityCritical Severity = "CRITICAL"
	SeverityLow      Severity = "LOW"
)

// LowStockAlert flags a record whose stock is at or below the low-stock
// threshold. It references the originating record rather than copying it.
type LowStockAlert struct {
	Record   *InventoryRecord `json:"record"`
	Severity Severity         `json:"severity"`
}

// CategorySummary holds per-category rollups, all rounded to 2 decimal places.
type CategorySummary struct {
	Category     string          `json:"category"`
	TotalStock   int             `json:"total_stock"`
	ProductCount int             `json:"product_count"`
	AvgStock     decimal.Decimal `json:"avg_stock"`
	TotalValue   decimal.Decimal `json:"total_value"`
	AvgValue     decimal.Decimal `json:"avg_value"`
	AvgPrice     decimal.Decimal `json:"avg_price"`
}

// ReorderLine is one suggested purchase for a flagged record.
type ReorderLine struct {
	Record        *InventoryRecord `json:"record"`
	SuggestedQty  int              `json:"suggested_reorder_qty"`
	EstimatedCost decimal.Decimal  `json:"estimated_cost"`
}

// ReorderTotals aggregates a whole plan. Kept as a dedicated field on
// ReorderPlan so callers never have to slice a totals row off the line items.
type ReorderTotals struct {
	SuggestedUnits int             `json:"total_suggested_units"`
	EstimatedCost  decimal.Decimal `json:"total_estimated_cost"`
}

// ReorderPlan is the ordered reorder suggestions plus plan-wide totals.
type ReorderPlan struct {
	Lines  []ReorderLine `json:"lines"`
	Totals ReorderTotals `json:"totals"`
}

// Report is the assembled result of one full analysis run, the sole output
// handed to presentation and export collaborators.
type Report struct {
	TotalProducts        int               `json:"total_products"`
	TotalValue           decimal.Decimal   `json:"total_inventory_value"`
	CriticalCount        int               `json:"critical_count"`
	Alerts               []LowStockAlert   `json:"alerts"`
	Categories           []CategorySummary `json:"categories"`
	Plan                 ReorderPlan       `json:"reorder_plan"`
	HighestValueCategory string            `json:"highest_value_category"`
	LowestStockCategory  string            `json:"lowest_stock_category"`
	AvgCostPerLine       decimal.Decimal   `json:"avg_cost_per_line"`
}
