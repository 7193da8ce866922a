package service

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/danisworo/stocklens/internal/analyze"
	"github.com/danisworo/stocklens/internal/cache"
	"github.com/danisworo/stocklens/internal/domain"
	"github.com/danisworo/stocklens/internal/ingest"
	"github.com/danisworo/stocklens/internal/repository/postgres"
)

// AnalysisService runs the analysis pipeline behind a cache and persists run
// history when a repository is configured. Cache and persistence failures
// are logged and swallowed; only pipeline errors reach the caller.
type AnalysisService struct {
	defaults analyze.Config
	cache    cache.ReportCache
	runs     *postgres.RunRepository
}

func NewAnalysisService(defaults analyze.Config, cacheImpl cache.ReportCache, runs *postgres.RunRepository) *AnalysisService {
	if cacheImpl == nil {
		cacheImpl = cache.NewNoopReportCache()
	}
	return &AnalysisService{defaults: defaults, cache: cacheImpl, runs: runs}
}

// Defaults returns the service's baseline thresholds.
func (s *AnalysisService) Defaults() analyze.Config {
	return s.defaults
}

// AnalyzeRows runs one analysis with the service defaults.
func (s *AnalysisService) AnalyzeRows(ctx context.Context, source string, rows []domain.RawRow) (*domain.Report, error) {
	return s.AnalyzeRowsWithConfig(ctx, source, rows, s.defaults)
}

// AnalyzeRowsWithConfig runs one analysis with explicit thresholds. Each call
// builds its own analyzer, so concurrent callers with different thresholds
// never interfere.
func (s *AnalysisService) AnalyzeRowsWithConfig(ctx context.Context, source string, rows []domain.RawRow, cfg analyze.Config) (*domain.Report, error) {
	key := cache.Key(rows, cfg)
	if rep, ok, err := s.cache.Get(ctx, key); err == nil && ok {
		return rep, nil
	} else if err != nil {
		log.Warn().Err(err).Str("source", source).Msg("analysis: cache get failed")
	}

	rep, err := analyze.New(cfg).Run(rows)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, key, rep); err != nil {
		log.Warn().Err(err).Str("source", source).Msg("analysis: cache set failed")
	}

	if s.runs != nil {
		if _, err := s.runs.SaveRun(ctx, source, cfg, rep); err != nil {
			log.Warn().Err(err).Str("source", source).Msg("analysis: failed to persist run")
		}
	}

	return rep, nil
}

// AnalyzeFile loads one CSV or XLSX export and analyzes it with the service
// defaults.
func (s *AnalysisService) AnalyzeFile(ctx context.Context, path string) (*domain.Report, error) {
	rows, err := ingest.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return s.AnalyzeRows(ctx, path, rows)
}

// RecentRuns lists persisted run history, newest first. Returns an empty
// slice when persistence is not configured.
func (s *AnalysisService) RecentRuns(ctx context.Context, limit int) ([]postgres.RunSummary, error) {
	if s.runs == nil {
		return []postgres.RunSummary{}, nil
	}
	return s.runs.RecentRuns(ctx, limit)
}
