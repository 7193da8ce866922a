package handlers

import (
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/danisworo/stocklens/internal/analyze"
	"github.com/danisworo/stocklens/internal/domain"
	"github.com/danisworo/stocklens/internal/ingest"
	"github.com/danisworo/stocklens/internal/report"
	"github.com/danisworo/stocklens/internal/service"
)

type AnalysisHandler struct {
	service *service.AnalysisService
}

func NewAnalysisHandler(service *service.AnalysisService) *AnalysisHandler {
	return &AnalysisHandler{service: service}
}

// Analyze accepts a multipart CSV/XLSX upload, runs the pipeline and returns
// the report plus chart series. Threshold form fields override the server
// defaults for this request only.
func (h *AnalysisHandler) Analyze(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing file upload"})
		return
	}

	rows, err := h.readUpload(c, fileHeader.Filename)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cfg := h.parseConfig(c)
	rep, err := h.service.AnalyzeRowsWithConfig(c.Request.Context(), fileHeader.Filename, rows, cfg)
	if err != nil {
		var schemaErr *domain.SchemaError
		if errors.As(err, &schemaErr) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": schemaErr.Error(), "missing_columns": schemaErr.Missing})
			return
		}
		log.Error().Err(err).Str("file", fileHeader.Filename).Msg("analysis failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "analysis failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"report": rep,
		"charts": report.BuildChartData(rep, report.DefaultTopRestock),
	})
}

// Runs lists persisted analysis runs, newest first.
func (h *AnalysisHandler) Runs(c *gin.Context) {
	limit := 20
	if v, err := strconv.Atoi(c.DefaultQuery("limit", "20")); err == nil && v > 0 {
		limit = v
	}

	runs, err := h.service.RecentRuns(c.Request.Context(), limit)
	if err != nil {
		log.Error().Err(err).Msg("failed to list runs")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list runs"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"runs": runs})
}

func (h *AnalysisHandler) readUpload(c *gin.Context, filename string) ([]domain.RawRow, error) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return nil, err
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv":
		src, err := fileHeader.Open()
		if err != nil {
			return nil, err
		}
		defer src.Close()
		return ingest.ReadCSV(src)
	case ".xlsx":
		// excelize needs a seekable file, so spool the upload to disk first.
		tmp, err := os.CreateTemp("", "stocklens-upload-*.xlsx")
		if err != nil {
			return nil, err
		}
		defer os.Remove(tmp.Name())
		tmp.Close()

		if err := c.SaveUploadedFile(fileHeader, tmp.Name()); err != nil {
			return nil, err
		}
		return ingest.ReadXLSX(tmp.Name())
	default:
		return nil, errors.New("unsupported file type (csv and xlsx supported)")
	}
}

// parseConfig starts from the service defaults and applies any valid
// threshold overrides in the form fields.
func (h *AnalysisHandler) parseConfig(c *gin.Context) analyze.Config {
	cfg := h.service.Defaults()

	if v, err := strconv.Atoi(c.PostForm("low_stock_threshold")); err == nil && v >= 0 {
		cfg.LowStockThreshold = v
	}
	if v, err := strconv.Atoi(c.PostForm("critical_threshold")); err == nil && v >= 0 {
		cfg.CriticalThreshold = v
	}
	if v, err := strconv.Atoi(c.PostForm("reorder_target")); err == nil && v >= 0 {
		cfg.ReorderTarget = v
	}
	if v, err := strconv.Atoi(c.PostForm("minimum_reorder")); err == nil && v >= 0 {
		cfg.MinimumReorder = v
	}

	return cfg
}
