package analyze

// Default thresholds, matching the tool's long-standing business rules.
const (
	DefaultLowStockThreshold = 20
	DefaultCriticalThreshold = 5
	DefaultReorderTarget     = 50
	DefaultMinimumReorder    = 20
)

// Config holds the thresholds for one analysis run. It is an immutable value
// passed into each stage, so concurrent runs with different thresholds never
// interfere.
type Config struct {
	// LowStockThreshold flags a product for reorder attention when its stock
	// is at or below this level.
	LowStockThreshold int

	// CriticalThreshold escalates a flagged product to CRITICAL severity.
	CriticalThreshold int

	// ReorderTarget is the stock level a reorder suggestion aims to restore.
	ReorderTarget int

	// MinimumReorder is the floor quantity for any suggestion, even when the
	// gap to target is small.
	MinimumReorder int
}

// DefaultConfig returns the standard thresholds.
func DefaultConfig() Config {
	return Config{
		LowStockThreshold: DefaultLowStockThreshold,
		CriticalThreshold: DefaultCriticalThreshold,
		ReorderTarget:     DefaultReorderTarget,
		MinimumReorder:    DefaultMinimumReorder,
	}
}
