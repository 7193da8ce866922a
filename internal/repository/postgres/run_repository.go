package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"

	"github.com/danisworo/stocklens/internal/analyze"
	"github.com/danisworo/stocklens/internal/domain"
)

// RunSummary is one persisted analysis run as listed back to callers.
type RunSummary struct {
	ID                 int64           `json:"id" db:"id"`
	SourceFile         string          `json:"source_file" db:"source_file"`
	TotalProducts      int             `json:"total_products" db:"total_products"`
	TotalValue         decimal.Decimal `json:"total_value" db:"total_value"`
	AlertCount         int             `json:"alert_count" db:"alert_count"`
	CriticalCount      int             `json:"critical_count" db:"critical_count"`
	ReorderUnits       int             `json:"reorder_units" db:"reorder_units"`
	ReorderCost        decimal.Decimal `json:"reorder_cost" db:"reorder_cost"`
	LowStockThreshold  int             `json:"low_stock_threshold" db:"low_stock_threshold"`
	CriticalThreshold  int             `json:"critical_threshold" db:"critical_threshold"`
	CreatedAt          time.Time       `json:"created_at" db:"created_at"`
}

// RunRepository persists finished analysis runs. The analysis core never
// touches it; persistence is a boundary collaborator.
type RunRepository struct {
	db *DB
}

func NewRunRepository(db *DB) *RunRepository {
	return &RunRepository{db: db}
}

const schema = `
CREATE TABLE IF NOT EXISTS analysis_runs (
    id BIGSERIAL PRIMARY KEY,
    source_file TEXT NOT NULL,
    total_products INT NOT NULL,
    total_value NUMERIC(14,2) NOT NULL,
    alert_count INT NOT NULL,
    critical_count INT NOT NULL,
    reorder_units INT NOT NULL,
    reorder_cost NUMERIC(14,2) NOT NULL,
    low_stock_threshold INT NOT NULL,
    critical_threshold INT NOT NULL,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS analysis_category_summaries (
    id BIGSERIAL PRIMARY KEY,
    run_id BIGINT NOT NULL REFERENCES analysis_runs(id) ON DELETE CASCADE,
    category TEXT NOT NULL,
    total_stock INT NOT NULL,
    product_count INT NOT NULL,
    avg_stock NUMERIC(14,2) NOT NULL,
    total_value NUMERIC(14,2) NOT NULL,
    avg_value NUMERIC(14,2) NOT NULL,
    avg_price NUMERIC(14,2) NOT NULL
);

CREATE TABLE IF NOT EXISTS analysis_reorder_lines (
    id BIGSERIAL PRIMARY KEY,
    run_id BIGINT NOT NULL REFERENCES analysis_runs(id) ON DELETE CASCADE,
    product_name TEXT NOT NULL,
    category TEXT NOT NULL,
    current_stock INT NOT NULL,
    severity TEXT NOT NULL,
    suggested_qty INT NOT NULL,
    unit_price NUMERIC(14,2) NOT NULL,
    estimated_cost NUMERIC(14,2) NOT NULL
);
`

// EnsureSchema creates the run history tables when missing.
func (r *RunRepository) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to ensure run history schema: %w", err)
	}
	return nil
}

// SaveRun stores one report with its category summaries and reorder lines in
// a single transaction and returns the new run id.
func (r *RunRepository) SaveRun(ctx context.Context, sourceFile string, cfg analyze.Config, rep *domain.Report) (int64, error) {
	var runID int64

	err := r.db.WithTx(ctx, func(tx *sqlx.Tx) error {
		row := tx.QueryRowxContext(ctx, `
			INSERT INTO analysis_runs (
				source_file, total_products, total_value, alert_count, critical_count,
				reorder_units, reorder_cost, low_stock_threshold, critical_threshold
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			RETURNING id`,
			sourceFile,
			rep.TotalProducts,
			rep.TotalValue,
			len(rep.Alerts),
			rep.CriticalCount,
			rep.Plan.Totals.SuggestedUnits,
			rep.Plan.Totals.EstimatedCost,
			cfg.LowStockThreshold,
			cfg.CriticalThreshold,
		)
		if err := row.Scan(&runID); err != nil {
			return fmt.Errorf("failed to insert analysis run: %w", err)
		}

		for _, s := range rep.Categories {
			_, err := tx.ExecContext(ctx, `
				INSERT INTO analysis_category_summaries (
					run_id, category, total_stock, product_count,
					avg_stock, total_value, avg_value, avg_price
				) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
				runID, s.Category, s.TotalStock, s.ProductCount,
				s.AvgStock, s.TotalValue, s.AvgValue, s.AvgPrice,
			)
			if err != nil {
				return fmt.Errorf("failed to insert category summary for %s: %w", s.Category, err)
			}
		}

		severityByRecord := make(map[*domain.InventoryRecord]domain.Severity, len(rep.Alerts))
		for _, alert := range rep.Alerts {
			severityByRecord[alert.Record] = alert.Severity
		}
		for _, line := range rep.Plan.Lines {
			_, err := tx.ExecContext(ctx, `
				INSERT INTO analysis_reorder_lines (
					run_id, product_name, category, current_stock,
					severity, suggested_qty, unit_price, estimated_cost
				) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
				runID, line.Record.Name, line.Record.Category, line.Record.Stock,
				string(severityByRecord[line.Record]), line.SuggestedQty,
				line.Record.UnitPrice, line.EstimatedCost,
			)
			if err != nil {
				return fmt.Errorf("failed to insert reorder line for %s: %w", line.Record.Name, err)
			}
		}

		return nil
	})
	if err != nil {
		return 0, err
	}

	return runID, nil
}

// RecentRuns lists the most recent persisted runs, newest first.
func (r *RunRepository) RecentRuns(ctx context.Context, limit int) ([]RunSummary, error) {
	if limit <= 0 {
		limit = 20
	}

	runs := make([]RunSummary, 0, limit)
	err := r.db.SelectContext(ctx, &runs, `
		SELECT id, source_file, total_products, total_value, alert_count,
		       critical_count, reorder_units, reorder_cost,
		       low_stock_threshold, critical_threshold, created_at
		FROM analysis_runs
		ORDER BY created_at DESC, id DESC
		LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list analysis runs: %w", err)
	}
	return runs, nil
}
