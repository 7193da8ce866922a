package sample

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danisworo/stocklens/internal/analyze"
	"github.com/danisworo/stocklens/internal/ingest"
)

func TestGenerator_Deterministic(t *testing.T) {
	var first, second bytes.Buffer
	require.NoError(t, New(DefaultSeed).WriteCSV(&first, 50))
	require.NoError(t, New(DefaultSeed).WriteCSV(&second, 50))
	assert.Equal(t, first.String(), second.String())
}

func TestGenerator_OutputFeedsAnalyzer(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, New(DefaultSeed).WriteCSV(&buf, 75))

	rows, err := ingest.ReadCSV(&buf)
	require.NoError(t, err)
	require.Len(t, rows, 75)

	report, err := analyze.NewWithDefaults().Run(rows)
	require.NoError(t, err)
	assert.Equal(t, 75, report.TotalProducts)
	assert.NotEmpty(t, report.Categories)
	assert.True(t, report.TotalValue.IsPositive())
}

func TestGenerator_ZeroProducts(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, New(DefaultSeed).WriteCSV(&buf, 0))

	rows, err := ingest.ReadCSV(&buf)
	require.NoError(t, err)
	assert.Empty(t, rows)
}
