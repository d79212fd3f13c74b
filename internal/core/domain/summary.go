package domain

import "time"

// SummaryStats is the roll-up over all BandMetric records of one run.
type SummaryStats struct {
	TotalSites         int       `json:"total_sites"`
	SitesWithIssues    int       `json:"sites_with_issues"`
	TotalAPs           int       `json:"total_aps"`
	TotalClients       int       `json:"total_clients"`
	TotalInsights      int       `json:"total_insights"`
	AverageHealthScore float64   `json:"average_health_score"`
	CollectedAt        time.Time `json:"collected_at"`
}
