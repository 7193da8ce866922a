package report

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/danisworo/stocklens/internal/domain"
)

// RenderConsole writes a human-readable rendition of the report: overview,
// low-stock alerts, category table and reorder analysis.
func RenderConsole(w io.Writer, rep *domain.Report) error {
	fmt.Fprintf(w, "Total products: %d\n", rep.TotalProducts)
	fmt.Fprintf(w, "Total inventory value: $%s\n", rep.TotalValue.StringFixed(2))
	fmt.Fprintf(w, "Critical stock items: %d\n\n", rep.CriticalCount)

	renderAlerts(w, rep.Alerts)
	renderCategories(w, rep.Categories)
	renderPlan(w, rep)

	if rep.HighestValueCategory != "" {
		fmt.Fprintf(w, "Highest value category: %s\n", rep.HighestValueCategory)
		fmt.Fprintf(w, "Lowest stock category:  %s\n", rep.LowestStockCategory)
	}
	return nil
}

func renderAlerts(w io.Writer, alerts []domain.LowStockAlert) {
	fmt.Fprintf(w, "LOW STOCK ALERTS (%d)\n", len(alerts))
	if len(alerts) == 0 {
		fmt.Fprintln(w, "  all products have adequate stock levels")
		fmt.Fprintln(w)
		return
	}
	for _, alert := range alerts {
		rec := alert.Record
		fmt.Fprintf(w, "  [%s] %s (%s) stock=%d value=$%s\n",
			alert.Severity, rec.Name, rec.Category, rec.Stock, rec.InventoryValue.StringFixed(2))
	}
	fmt.Fprintln(w)
}

func renderCategories(w io.Writer, summaries []domain.CategorySummary) {
	if len(summaries) == 0 {
		return
	}
	fmt.Fprintln(w, "INVENTORY BY CATEGORY")
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "Category\tTotal_Stock\tProduct_Count\tAvg_Stock\tTotal_Value\tAvg_Value\tAvg_Price")
	for _, s := range summaries {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%s\t%s\t%s\t%s\n",
			s.Category, s.TotalStock, s.ProductCount,
			s.AvgStock.StringFixed(2), s.TotalValue.StringFixed(2),
			s.AvgValue.StringFixed(2), s.AvgPrice.StringFixed(2))
	}
	tw.Flush()
	fmt.Fprintln(w)
}

func renderPlan(w io.Writer, rep *domain.Report) {
	if len(rep.Plan.Lines) == 0 {
		fmt.Fprintln(w, "No items currently need reordering")
		fmt.Fprintln(w)
		return
	}
	fmt.Fprintln(w, "REORDER ANALYSIS")
	fmt.Fprintf(w, "  items needing reorder:    %d\n", len(rep.Plan.Lines))
	fmt.Fprintf(w, "  total suggested units:    %d\n", rep.Plan.Totals.SuggestedUnits)
	fmt.Fprintf(w, "  total reorder investment: $%s\n", rep.Plan.Totals.EstimatedCost.StringFixed(2))
	fmt.Fprintf(w, "  average cost per item:    $%s\n", rep.AvgCostPerLine.StringFixed(2))
	fmt.Fprintln(w)
}
