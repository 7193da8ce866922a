// Package report formats analysis results for humans and export targets.
// Everything here is presentation; no business numbers are computed in this
// package.
package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/danisworo/stocklens/internal/domain"
)

var reorderHeader = []string{"Product", "Category", "Current_Stock", "Suggested_Reorder", "Unit_Price", "Estimated_Cost"}

// WriteReorderCSV serializes the plan's line items, then a blank record and a
// TOTAL summary row. The totals come from the plan's dedicated field, so
// parsers that stop at the blank record see line items only.
func WriteReorderCSV(w io.Writer, plan domain.ReorderPlan) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(reorderHeader); err != nil {
		return err
	}

	for _, line := range plan.Lines {
		record := []string{
			line.Record.Name,
			line.Record.Category,
			strconv.Itoa(line.Record.Stock),
			strconv.Itoa(line.SuggestedQty),
			line.Record.UnitPrice.StringFixed(2),
			line.EstimatedCost.StringFixed(2),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	if err := cw.Write([]string{"", "", "", "", "", ""}); err != nil {
		return err
	}
	totals := []string{
		"TOTAL",
		"",
		"",
		strconv.Itoa(plan.Totals.SuggestedUnits),
		"",
		plan.Totals.EstimatedCost.StringFixed(2),
	}
	if err := cw.Write(totals); err != nil {
		return err
	}

	cw.Flush()
	return cw.Error()
}

// ExportReorderCSV writes the reorder report to path.
func ExportReorderCSV(path string, plan domain.ReorderPlan) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create reorder report %s: %w", path, err)
	}
	defer f.Close()

	return WriteReorderCSV(f, plan)
}
