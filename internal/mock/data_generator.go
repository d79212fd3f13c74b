package mock

import (
	"math/rand"

	"github.com/airmetrics/rrmreport/internal/core/domain"
)

// Sample sites for demo reports
var sampleSites = []domain.Site{
	{ID: "sample-001", Name: "Admin Building", Hierarchy: "Global/Australia/Sydney/Admin Building", ProfileName: "CatC-Production"},
	{ID: "sample-002", Name: "Lab Building", Hierarchy: "Global/Australia/Sydney/Lab Building", ProfileName: "CatC-Production"},
	{ID: "sample-003", Name: "Conference Center", Hierarchy: "Global/Australia/Sydney/Conference Center", ProfileName: "CatC-Production"},
}

type sampleEntry struct {
	apCount     int
	clientCount int
	healthScore float64
	changeCount int
	insights    []domain.Insight
}

// Canned values for the demo dataset: one healthy building, one with
// degraded bands, one with multiple issues.
var sampleData = map[string]map[domain.Band]sampleEntry{
	"sample-001": {
		domain.Band24GHz: {apCount: 12, clientCount: 45, healthScore: 85.5, changeCount: 23},
		domain.Band5GHz: {apCount: 12, clientCount: 128, healthScore: 65.2, changeCount: 87, insights: []domain.Insight{
			{
				Type:        "High Co-Channel Interference",
				Description: "Multiple APs detected on overlapping channels causing interference",
				Reason:      "Automatic channel assignment optimization recommended. Consider enabling DCA (Dynamic Channel Assignment).",
			},
			{
				Type:        "Channel Utilization Warning",
				Description: "Channel utilization exceeds recommended threshold on channels 36, 40, and 44",
				Reason:      "High client density detected. Additional APs may be required in high-traffic areas.",
			},
		}},
		domain.Band6GHz: {apCount: 8, clientCount: 34, healthScore: 72.8, changeCount: 156, insights: []domain.Insight{
			{
				Type:        "Excessive RRM Changes",
				Description: "RRM has made 156 optimization changes in the last 24 hours",
				Reason:      "Unstable RF environment detected. Review AP placement and external interference sources.",
			},
		}},
	},
	"sample-002": {
		domain.Band24GHz: {apCount: 8, clientCount: 22, healthScore: 92.3, changeCount: 12},
		domain.Band5GHz:  {apCount: 8, clientCount: 67, healthScore: 88.7, changeCount: 18},
		domain.Band6GHz:  {apCount: 6, clientCount: 15, healthScore: 94.1, changeCount: 8},
	},
	"sample-003": {
		domain.Band24GHz: {apCount: 15, clientCount: 156, healthScore: 58.4, changeCount: 203, insights: []domain.Insight{
			{
				Type:        "Poor Coverage Quality",
				Description: "Coverage gaps detected in east wing and main hall areas",
				Reason:      "AP density insufficient for current client load. Consider adding 3-4 APs in identified coverage gaps.",
			},
			{
				Type:        "Client Distribution Imbalance",
				Description: "Uneven client distribution with some APs serving 20+ clients",
				Reason:      "Load balancing optimization needed. Enable client band steering and AP load balancing features.",
			},
		}},
		domain.Band5GHz: {apCount: 15, clientCount: 243, healthScore: 61.9, changeCount: 178, insights: []domain.Insight{
			{
				Type:        "High Client Density",
				Description: "Client count per AP exceeds design target during peak hours",
				Reason:      "Consider enabling 6 GHz band steering for capable clients to offload the 5 GHz band.",
			},
		}},
		domain.Band6GHz: {apCount: 10, clientCount: 52, healthScore: 81.3, changeCount: 44},
	},
}

const sampleTimestamp = "2026-02-03T10:00:00Z"

// SampleMetrics builds a deterministic demo dataset covering the given
// bands for every sample site. Bands without a canned entry get
// healthy values from a fixed-seed generator, so the output is stable
// across runs and still rectangular.
func SampleMetrics(bands []domain.Band) []domain.BandMetric {
	rng := rand.New(rand.NewSource(42))

	var metrics []domain.BandMetric
	for _, site := range sampleSites {
		for _, band := range bands {
			entry, ok := sampleData[site.ID][band]
			if !ok {
				entry = sampleEntry{
					apCount:     4 + rng.Intn(12),
					clientCount: 10 + rng.Intn(90),
					healthScore: 80 + rng.Float64()*15,
					changeCount: rng.Intn(40),
				}
			}
			metrics = append(metrics, domain.BandMetric{
				Site:        site,
				Band:        band,
				APCount:     entry.apCount,
				ClientCount: entry.clientCount,
				HealthScore: entry.healthScore,
				ChangeCount: entry.changeCount,
				Insights:    entry.insights,
				Timestamp:   sampleTimestamp,
			})
		}
	}
	return metrics
}

// SampleSiteCount reports how many demo sites the dataset contains.
func SampleSiteCount() int {
	return len(sampleSites)
}
