package domain

import (
	"fmt"
	"strings"
)

// SchemaError reports input whose row shape is missing one or more required
// columns. It is the only error the analysis pipeline surfaces: the run is
// aborted before any stage executes, never per-record.
type SchemaError struct {
	Missing []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("input is missing required columns: %s", strings.Join(e.Missing, ", "))
}

// NewSchemaError builds a SchemaError for the given missing column names.
func NewSchemaError(missing ...string) *SchemaError {
	return &SchemaError{Missing: missing}
}
