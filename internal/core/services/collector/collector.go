package collector

import (
	"context"
	"log/slog"
	"math"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/airmetrics/rrmreport/internal/core/domain"
	"github.com/airmetrics/rrmreport/internal/core/ports"
	"github.com/airmetrics/rrmreport/internal/telemetry"
)

// Collector gathers AI-RRM metrics for every discovered site across
// the enabled bands. Collection is strictly sequential; the three
// fetches for a (site, band) pair complete before the next pair
// starts, and output order is site discovery order then configured
// band order, so a given controller state always yields the same
// record sequence.
type Collector struct {
	client     ports.ControllerClient
	bands      []domain.Band
	thresholds domain.Thresholds
}

// New creates a collector for the given band list and thresholds.
func New(client ports.ControllerClient, bands []domain.Band, thresholds domain.Thresholds) *Collector {
	return &Collector{
		client:     client,
		bands:      bands,
		thresholds: thresholds,
	}
}

// Thresholds returns the classification limits this collector applies.
func (c *Collector) Thresholds() domain.Thresholds {
	return c.thresholds
}

// CollectAll discovers the eligible sites and builds exactly one
// BandMetric per (site, enabled band) pair. Missing data for a pair
// degrades to zero-valued defaults, never to a missing record. Only a
// discovery failure returns an error; per-metric fetch failures are
// absorbed by the client.
func (c *Collector) CollectAll(ctx context.Context) ([]domain.BandMetric, error) {
	tracer := otel.Tracer("rrmreport/collector")
	ctx, span := tracer.Start(ctx, "collect_all")
	defer span.End()

	slog.Info("Starting data collection")

	sites, err := c.client.ListSites(ctx)
	if err != nil {
		return nil, err
	}
	if len(sites) == 0 {
		slog.Warn("No AI-RRM enabled sites found")
		return nil, nil
	}

	metrics := make([]domain.BandMetric, 0, len(sites)*len(c.bands))
	for _, site := range sites {
		slog.Info("Collecting site data", "site", site.Name, "hierarchy", site.Hierarchy)
		for _, band := range c.bands {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			metrics = append(metrics, c.collectSiteBand(ctx, site, band))
			telemetry.MetricsCollected.WithLabelValues(band.Label()).Inc()
		}
	}

	span.SetAttributes(
		attribute.Int("sites", len(sites)),
		attribute.Int("metrics", len(metrics)),
	)
	slog.Info("Collection complete", "sites", len(sites), "metrics", len(metrics))
	return metrics, nil
}

// collectSiteBand issues the three fetches for one pair and merges the
// results.
func (c *Collector) collectSiteBand(ctx context.Context, site domain.Site, band domain.Band) domain.BandMetric {
	slog.Debug("Fetching band data", "site", site.Name, "band", band.Label())

	coverage := c.client.CoverageSummary(ctx, site.ID, band)
	performance := c.client.PerformanceSummary(ctx, site.ID, band)
	insights := c.client.CurrentInsights(ctx, site.ID, band)

	return BuildMetric(site, band, coverage, performance, insights)
}

// BuildMetric merges the three query results into one record. Fields
// absent from coverage or performance keep their zero defaults;
// insights are taken verbatim. The coverage timestamp wins, with the
// performance timestamp as fallback.
func BuildMetric(
	site domain.Site,
	band domain.Band,
	coverage *ports.CoverageSummary,
	performance *ports.PerformanceSummary,
	insights []domain.Insight,
) domain.BandMetric {
	metric := domain.BandMetric{
		Site:     site,
		Band:     band,
		Insights: insights,
	}

	if coverage != nil {
		metric.APCount = coverage.APCount
		metric.ClientCount = coverage.ClientCount
		metric.Timestamp = coverage.Timestamp
	}
	if performance != nil {
		metric.HealthScore = performance.HealthScore
		metric.ChangeCount = performance.ChangeCount
		if metric.Timestamp == "" {
			metric.Timestamp = performance.Timestamp
		}
	}

	return metric
}

// Summarize computes the roll-up for this collector's thresholds.
func (c *Collector) Summarize(metrics []domain.BandMetric) domain.SummaryStats {
	return Summarize(metrics, c.thresholds)
}

// Summarize computes the run roll-up in a single pass. Site counts are
// over distinct site IDs since each site appears once per band. An
// empty input yields all-zero stats.
//
// The health average includes zero-defaulted no-data records, matching
// the controller UI behavior; partially instrumented deployments pull
// the average toward zero.
func Summarize(metrics []domain.BandMetric, thresholds domain.Thresholds) domain.SummaryStats {
	stats := domain.SummaryStats{CollectedAt: time.Now()}
	if len(metrics) == 0 {
		return stats
	}

	siteIDs := make(map[string]bool)
	flaggedIDs := make(map[string]bool)
	var healthSum float64

	for _, m := range metrics {
		siteIDs[m.Site.ID] = true
		if m.HasIssues(thresholds) {
			flaggedIDs[m.Site.ID] = true
		}
		stats.TotalAPs += m.APCount
		stats.TotalClients += m.ClientCount
		stats.TotalInsights += len(m.Insights)
		healthSum += m.HealthScore
	}

	stats.TotalSites = len(siteIDs)
	stats.SitesWithIssues = len(flaggedIDs)
	stats.AverageHealthScore = math.Round(healthSum/float64(len(metrics))*100) / 100
	return stats
}
