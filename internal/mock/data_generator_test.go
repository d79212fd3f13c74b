package mock

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/airmetrics/rrmreport/internal/core/domain"
)

func TestSampleMetricsIsRectangular(t *testing.T) {
	bands := []domain.Band{domain.Band24GHz, domain.Band5GHz, domain.Band6GHz}

	metrics := SampleMetrics(bands)
	require.Len(t, metrics, SampleSiteCount()*len(bands))

	// One record per site/band pair, bands in configured order.
	i := 0
	for s := 0; s < SampleSiteCount(); s++ {
		site := metrics[i].Site
		for _, band := range bands {
			assert.Equal(t, site.ID, metrics[i].Site.ID)
			assert.Equal(t, band, metrics[i].Band)
			assert.NotEmpty(t, metrics[i].Timestamp)
			i++
		}
	}
}

func TestSampleMetricsIsDeterministic(t *testing.T) {
	bands := []domain.Band{domain.Band5GHz, domain.Band6GHz}

	first := SampleMetrics(bands)
	second := SampleMetrics(bands)
	assert.Equal(t, first, second)
}

func TestSampleMetricsContainsFlaggedSites(t *testing.T) {
	metrics := SampleMetrics(domain.AllBands)
	thresholds := domain.DefaultThresholds()

	flagged := 0
	insights := 0
	for _, m := range metrics {
		if m.HasIssues(thresholds) {
			flagged++
		}
		insights += len(m.Insights)
	}

	// The demo dataset must exercise both report paths: healthy rows
	// and rows requiring attention.
	assert.Greater(t, flagged, 0)
	assert.Less(t, flagged, len(metrics))
	assert.Greater(t, insights, 0)
}

func TestSampleMetricsSubsetOfBands(t *testing.T) {
	metrics := SampleMetrics([]domain.Band{domain.Band6GHz})
	require.Len(t, metrics, SampleSiteCount())
	for _, m := range metrics {
		assert.Equal(t, domain.Band6GHz, m.Band)
	}
}
