package ports

import (
	"context"

	"github.com/airmetrics/rrmreport/internal/core/domain"
)

// CoverageSummary is the typed shape of one coverage query result.
type CoverageSummary struct {
	APCount     int
	ClientCount int
	Timestamp   string
}

// PerformanceSummary is the typed shape of one performance query result.
type PerformanceSummary struct {
	HealthScore float64
	ChangeCount int
	Timestamp   string
}

// ControllerClient is the read-only view of the network controller the
// collector needs. Fetch methods signal absence of data with a nil
// pointer or empty slice, never with an error: a single missing metric
// must not abort a report run.
type ControllerClient interface {
	// ListSites returns every site with AI-RRM enabled. An empty slice
	// with a nil error means no sites are eligible.
	ListSites(ctx context.Context) ([]domain.Site, error)

	// CoverageSummary returns the latest coverage record for the
	// site/band, or nil when the controller has no data.
	CoverageSummary(ctx context.Context, siteID string, band domain.Band) *CoverageSummary

	// PerformanceSummary returns the latest performance record for the
	// site/band, or nil when the controller has no data.
	PerformanceSummary(ctx context.Context, siteID string, band domain.Band) *PerformanceSummary

	// CurrentInsights returns the active insights for the site/band,
	// empty when there are none or the query failed.
	CurrentInsights(ctx context.Context, siteID string, band domain.Band) []domain.Insight
}

// ReportExporter renders an assembled report into document bytes.
type ReportExporter interface {
	Export(report *domain.Report) ([]byte, error)
}
