package app

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/airmetrics/rrmreport/internal/adapters/dnac"
	"github.com/airmetrics/rrmreport/internal/adapters/reporting"
	"github.com/airmetrics/rrmreport/internal/config"
	"github.com/airmetrics/rrmreport/internal/core/domain"
	"github.com/airmetrics/rrmreport/internal/core/ports"
	"github.com/airmetrics/rrmreport/internal/core/services/collector"
	"github.com/airmetrics/rrmreport/internal/telemetry"
)

const reportTitle = "AI-RRM Performance Report"

// Application wires the session, query client, collector and exporter
// together. It acts as the facade for one report run.
type Application struct {
	Config    *config.Config
	Client    ports.ControllerClient
	Collector *collector.Collector
	Exporter  ports.ReportExporter
}

// New creates a new Application instance and bootstraps its components.
func New(cfg *config.Config) (*Application, error) {
	telemetry.InitMetrics()

	session, err := dnac.NewSession(cfg.BaseURL, cfg.Username, cfg.Password, cfg.VerifyTLS)
	if err != nil {
		return nil, fmt.Errorf("application bootstrap failed: %w", err)
	}

	client := dnac.NewClient(session)
	return &Application{
		Config:    cfg,
		Client:    client,
		Collector: collector.New(client, cfg.Bands, cfg.Thresholds),
		Exporter:  reporting.NewPDFExporter(),
	}, nil
}

// RunOptions carries the per-invocation settings.
type RunOptions struct {
	OutputPath string
	LogoPath   string
}

// Run executes one report cycle: collect, summarize, render, write.
// A run with zero eligible sites succeeds without writing a document.
// Nothing touches the output path until rendering has succeeded.
func (app *Application) Run(ctx context.Context, opts RunOptions) error {
	defer logRunCounters()

	metrics, err := app.Collector.CollectAll(ctx)
	if err != nil {
		return err
	}
	if len(metrics) == 0 {
		slog.Warn("No metrics collected, skipping report")
		return nil
	}

	stats := app.Collector.Summarize(metrics)
	slog.Info("Summary ready",
		"sites", stats.TotalSites,
		"with_issues", stats.SitesWithIssues,
		"insights", stats.TotalInsights,
	)

	report := &domain.Report{
		Metadata: domain.ReportMetadata{
			ID:          uuid.New().String(),
			Title:       reportTitle,
			GeneratedAt: time.Now(),
			GeneratedBy: "rrmreport",
			LogoPath:    opts.LogoPath,
		},
		Metrics:    metrics,
		Stats:      stats,
		Thresholds: app.Collector.Thresholds(),
	}

	data, err := app.Exporter.Export(report)
	if err != nil {
		return err
	}
	if err := reporting.WriteFile(opts.OutputPath, data); err != nil {
		return &domain.RenderError{Path: opts.OutputPath, Err: err}
	}

	slog.Info("Report generated", "path", opts.OutputPath, "bytes", len(data))
	return nil
}

// logRunCounters writes the request and collection totals to the log
// once the run is over, on success and failure alike.
func logRunCounters() {
	totals := telemetry.Snapshot()
	names := make([]string, 0, len(totals))
	for name := range totals {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		slog.Info("Run counter", "metric", name, "value", totals[name])
	}
}
