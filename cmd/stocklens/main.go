package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"

	"github.com/danisworo/stocklens/internal/analyze"
	"github.com/danisworo/stocklens/internal/archive"
	"github.com/danisworo/stocklens/internal/config"
	"github.com/danisworo/stocklens/internal/domain"
	"github.com/danisworo/stocklens/internal/drive"
	"github.com/danisworo/stocklens/internal/ingest"
	"github.com/danisworo/stocklens/internal/report"
	"github.com/danisworo/stocklens/internal/sample"
	"github.com/danisworo/stocklens/pkg/logger"
)

func thresholdFlags(defaults analyze.Config) []cli.Flag {
	return []cli.Flag{
		&cli.IntFlag{
			Name:    "low-stock-threshold",
			Usage:   "flag products at or below this stock level",
			Value:   defaults.LowStockThreshold,
			EnvVars: []string{"LOW_STOCK_THRESHOLD"},
		},
		&cli.IntFlag{
			Name:    "critical-threshold",
			Usage:   "escalate to CRITICAL at or below this stock level",
			Value:   defaults.CriticalThreshold,
			EnvVars: []string{"CRITICAL_THRESHOLD"},
		},
		&cli.IntFlag{
			Name:    "reorder-target",
			Usage:   "stock level a reorder suggestion restores to",
			Value:   defaults.ReorderTarget,
			EnvVars: []string{"REORDER_TARGET"},
		},
		&cli.IntFlag{
			Name:    "minimum-reorder",
			Usage:   "floor quantity for any reorder suggestion",
			Value:   defaults.MinimumReorder,
			EnvVars: []string{"MINIMUM_REORDER"},
		},
	}
}

func configFromFlags(c *cli.Context) analyze.Config {
	return analyze.Config{
		LowStockThreshold: c.Int("low-stock-threshold"),
		CriticalThreshold: c.Int("critical-threshold"),
		ReorderTarget:     c.Int("reorder-target"),
		MinimumReorder:    c.Int("minimum-reorder"),
	}
}

func main() {
	cfg := config.Load()
	defaults := cfg.Analysis.Analyze()

	app := &cli.App{
		Name:  "stocklens",
		Usage: "Analyze retail inventory exports and plan reorders",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "zerolog level (debug, info, warn, error)",
				Value:   "info",
				EnvVars: []string{"LOG_LEVEL"},
			},
		},
		Before: func(c *cli.Context) error {
			logger.SetLevel(c.String("log-level"))
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:      "analyze",
				Usage:     "Analyze one or more inventory files (CSV or XLSX)",
				ArgsUsage: "FILE [FILE...]",
				Flags: append(thresholdFlags(defaults),
					&cli.BoolFlag{
						Name:  "export",
						Usage: "write a reorder report CSV per input file",
					},
					&cli.BoolFlag{
						Name:  "archive",
						Usage: "upload exported reorder reports to object storage",
					},
					&cli.StringFlag{
						Name:    "output-dir",
						Usage:   "directory for exported reorder reports",
						Value:   cfg.App.OutputDir,
						EnvVars: []string{"APP_OUTPUT_DIR"},
					},
					&cli.IntFlag{
						Name:  "concurrency",
						Usage: "number of files analyzed in parallel",
						Value: 4,
					},
				),
				Action: runAnalyze,
			},
			{
				Name:  "sample",
				Usage: "Generate a deterministic demo inventory CSV",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "out",
						Usage: "output path",
						Value: "sample_inventory.csv",
					},
					&cli.IntFlag{
						Name:  "products",
						Usage: "number of products to generate",
						Value: 50,
					},
					&cli.Int64Flag{
						Name:  "seed",
						Usage: "PRNG seed",
						Value: sample.DefaultSeed,
					},
				},
				Action: runSample,
			},
			{
				Name:  "fetch",
				Usage: "Download spreadsheet exports from a Google Drive folder",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "folder-id",
						Usage:   "Drive folder to pull from",
						Value:   cfg.Drive.FolderID,
						EnvVars: []string{"DRIVE_FOLDER_ID"},
					},
					&cli.StringFlag{
						Name:    "dest",
						Usage:   "local directory for downloaded files",
						Value:   cfg.App.InputDir,
						EnvVars: []string{"APP_INPUT_DIR"},
					},
				},
				Action: runFetch,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		logger.Log.Fatal().Err(err).Msg("command failed")
	}
}

// runAnalyze analyzes each input file as an isolated run. Files are processed
// concurrently; each worker owns its record set and report, so no
// coordination is needed beyond collecting results.
func runAnalyze(c *cli.Context) error {
	files := c.Args().Slice()
	if len(files) == 0 {
		return cli.Exit("at least one input file is required", 1)
	}

	cfg := config.Load()
	analysisCfg := configFromFlags(c)
	analyzer := analyze.New(analysisCfg)

	uploader := archive.NewNoopUploader()
	if c.Bool("archive") {
		var err error
		uploader, err = archive.NewUploader(cfg.Archive)
		if err != nil {
			return fmt.Errorf("archive not available: %w", err)
		}
	}

	reports := make([]*domain.Report, len(files))
	g, ctx := errgroup.WithContext(c.Context)
	g.SetLimit(c.Int("concurrency"))
	for i, path := range files {
		g.Go(func() error {
			rows, err := ingest.ReadFile(path)
			if err != nil {
				return err
			}
			rep, err := analyzer.Run(rows)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			reports[i] = rep

			if c.Bool("export") {
				exportPath := reorderReportPath(c.String("output-dir"), path)
				if err := report.ExportReorderCSV(exportPath, rep.Plan); err != nil {
					return err
				}
				logger.Log.Info().Str("path", exportPath).Msg("reorder report written")

				if key, err := uploader.Upload(ctx, exportPath); err != nil {
					return err
				} else if key != "" {
					logger.Log.Info().Str("key", key).Msg("reorder report archived")
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for i, rep := range reports {
		fmt.Printf("=== %s ===\n", files[i])
		if err := report.RenderConsole(os.Stdout, rep); err != nil {
			return err
		}
	}
	return nil
}

func runSample(c *cli.Context) error {
	path := c.String("out")
	if err := sample.GenerateFile(path, c.Int("products"), c.Int64("seed")); err != nil {
		return err
	}
	logger.Log.Info().
		Str("path", path).
		Int("products", c.Int("products")).
		Msg("sample inventory generated")
	return nil
}

func runFetch(c *cli.Context) error {
	cfg := config.Load()
	if cfg.Drive.CredentialsJSON == "" {
		return cli.Exit("DRIVE_CREDENTIALS_JSON is required for fetch", 1)
	}

	svc, err := drive.NewService(context.Background(), cfg.Drive.CredentialsJSON)
	if err != nil {
		return err
	}

	paths, err := svc.FetchAll(c.String("folder-id"), c.String("dest"))
	if err != nil {
		return err
	}

	for _, path := range paths {
		logger.Log.Info().Str("path", path).Msg("downloaded")
	}
	logger.Log.Info().Int("files", len(paths)).Msg("fetch complete")
	return nil
}

func reorderReportPath(outputDir, inputPath string) string {
	base := strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath))
	return filepath.Join(outputDir, "reorder_"+base+".csv")
}
