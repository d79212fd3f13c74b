package main

import (
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/airmetrics/rrmreport/internal/adapters/reporting"
	"github.com/airmetrics/rrmreport/internal/config"
	"github.com/airmetrics/rrmreport/internal/core/domain"
	"github.com/airmetrics/rrmreport/internal/core/services/collector"
	"github.com/airmetrics/rrmreport/internal/mock"
)

var sampleCmd = &cobra.Command{
	Use:   "sample",
	Short: "Write a demo PDF report from built-in sample data, no controller needed",
	RunE:  runSample,
}

func runSample(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadOptional()
	if err != nil {
		return &exitError{code: 1, err: err}
	}
	setupLogging(cfg.LogLevel)

	if flagLogo != "" {
		cfg.LogoPath = flagLogo
	}

	metrics := mock.SampleMetrics(cfg.Bands)
	stats := collector.Summarize(metrics, cfg.Thresholds)
	slog.Info("Sample dataset ready", "sites", mock.SampleSiteCount(), "metrics", len(metrics))

	report := &domain.Report{
		Metadata: domain.ReportMetadata{
			ID:          uuid.New().String(),
			Title:       "AI-RRM Performance Report (Sample)",
			GeneratedAt: time.Now(),
			GeneratedBy: "rrmreport",
			LogoPath:    cfg.LogoPath,
		},
		Metrics:    metrics,
		Stats:      stats,
		Thresholds: cfg.Thresholds,
	}

	data, err := reporting.NewPDFExporter().Export(report)
	if err != nil {
		return classifyRunError(err)
	}

	path := outputPath()
	if err := reporting.WriteFile(path, data); err != nil {
		return classifyRunError(&domain.RenderError{Path: path, Err: err})
	}

	slog.Info("Sample report generated", "path", path, "bytes", len(data))
	return nil
}
